package server

import (
  "github.com/gin-contrib/cors"
  "github.com/gin-gonic/gin"
  "go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
  "github.com/classcal/classcal-backend/internal/handlers"
  "github.com/classcal/classcal-backend/internal/middleware"
)

type RouterConfig struct {
  ServiceName     string
  AuthHandler     *handlers.AuthHandler
  AuthMiddleware  *middleware.AuthMiddleware
  ClassHandler    *handlers.ClassHandler
  ScheduleHandler *handlers.ScheduleHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
  router := gin.Default()

  serviceName := cfg.ServiceName
  if serviceName == "" {
    serviceName = "classcal"
  }
  router.Use(otelgin.Middleware(serviceName))

  // Cors
  router.Use(cors.New(cors.Config{
    AllowOrigins: []string{
      "http://localhost:80",
      "http://localhost:3000",
      "http://localhost:5173",
    },
    AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
    AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
    AllowCredentials: true,
  }))

// ===============
// || Public    ||
// ===============
  router.GET("/healthcheck", handlers.HealthCheck)
  router.POST("/register", cfg.AuthHandler.Register)
  router.POST("/login", cfg.AuthHandler.Login)

// ===============
// || Protected ||
// ===============
  protected := router.Group("/")
  protected.Use(cfg.AuthMiddleware.RequireAuth())
  // Auth
  protected.POST("/refresh", cfg.AuthHandler.Refresh)
  protected.POST("/logout", cfg.AuthHandler.Logout)

  api := protected.Group("/api")
  // Classes
  api.GET("/classes", cfg.ClassHandler.List)
  api.POST("/classes", cfg.ClassHandler.Create)
  api.PUT("/classes/:class_id", cfg.ClassHandler.Update)
  api.DELETE("/classes/:class_id", cfg.ClassHandler.Delete)
  api.POST("/classes/parse", cfg.ClassHandler.Parse)
  // Schedule
  api.GET("/schedule", cfg.ScheduleHandler.Get)
  api.POST("/schedule/add", cfg.ScheduleHandler.Add)
  api.DELETE("/schedule/:event_id", cfg.ScheduleHandler.Delete)
  api.POST("/schedule/plan", cfg.ScheduleHandler.Plan)

  return router
}
