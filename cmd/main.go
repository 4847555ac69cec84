package main

import (
  "context"
  "fmt"
  "os"
  "strings"
  "time"
  "github.com/joho/godotenv"
  "gorm.io/gorm"
  "github.com/classcal/classcal-backend/internal/logger"
  "github.com/classcal/classcal-backend/internal/utils"
  "github.com/classcal/classcal-backend/internal/db"
  "github.com/classcal/classcal-backend/internal/observability"
  "github.com/classcal/classcal-backend/internal/repos"
  "github.com/classcal/classcal-backend/internal/services"
  "github.com/classcal/classcal-backend/internal/handlers"
  "github.com/classcal/classcal-backend/internal/middleware"
  "github.com/classcal/classcal-backend/internal/server"
)

func main() {
  _ = godotenv.Load()

  // Logger
  logMode := os.Getenv("LOG_MODE")
  if logMode == "" {
    logMode = "development"
  }
  log, err := logger.New(logMode)
  if err != nil {
    fmt.Printf("Failed to init logger: %v\n", err)
    os.Exit(1)
  }
  defer log.Sync()

  // Env
  log.Info("Loading environment variables from main...")
  jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
  accessTokenTTL := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
  refreshTokenTTL := utils.GetEnvAsInt("REFRESH_TOKEN_TTL", 86400, log)
  dbDriver := utils.GetEnv("DB_DRIVER", "postgres", log)

  // Tracing
  otelShutdown := observability.InitOTel(context.Background(), log, observability.OtelConfig{
    ServiceName: "classcal-backend",
    Environment: utils.GetEnv("APP_ENV", "development", nil),
    Version:     utils.GetEnv("APP_VERSION", "dev", nil),
  })
  if otelShutdown != nil {
    defer func() {
      shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
      defer cancel()
      _ = otelShutdown(shutdownCtx)
    }()
  }

  // Database
  var gormDB *gorm.DB
  if strings.EqualFold(dbDriver, "sqlite") {
    sqliteService, err := db.NewSQLiteService(log)
    if err != nil {
      log.Error("SQLite init failed", "error", err)
      os.Exit(1)
    }
    if err := sqliteService.AutoMigrateAll(); err != nil {
      log.Warn("SQLite auto migration failed", "error", err)
    }
    gormDB = sqliteService.DB()
  } else {
    postgresService, err := db.NewPostgresService(log)
    if err != nil {
      log.Error("Postgres init failed", "error", err)
      os.Exit(1)
    }
    if err := postgresService.AutoMigrateAll(); err != nil {
      log.Warn("Postgres auto migration failed", "error", err)
    }
    gormDB = postgresService.DB()
  }

  // Repos
  log.Info("Setting up Repos from main...")
  userRepo := repos.NewUserRepo(gormDB, log)
  userTokenRepo := repos.NewUserTokenRepo(gormDB, log)
  classRepo := repos.NewClassRepo(gormDB, log)

  // Services
  log.Info("Setting up Services from main...")
  openaiClient, err := services.NewOpenAIClient(log)
  if err != nil {
    log.Error("Could not init OpenAIClient", "error", err)
    os.Exit(1)
  }
  locks := services.NewUserLockRegistry()
  authService := services.NewAuthService(gormDB, log, userRepo, userTokenRepo, jwtSecretKey, time.Duration(accessTokenTTL)*time.Second, time.Duration(refreshTokenTTL)*time.Second)
  classService := services.NewClassService(gormDB, log, classRepo)
  syllabusService := services.NewSyllabusService(log, openaiClient)
  scheduleService := services.NewScheduleService(gormDB, log, classRepo, locks)
  plannerService := services.NewPlannerService(gormDB, log, classRepo, openaiClient, locks)

  // Handlers
  log.Info("Setting up handlers from main...")
  authHandler := handlers.NewAuthHandler(authService)
  classHandler := handlers.NewClassHandler(classService, syllabusService)
  scheduleHandler := handlers.NewScheduleHandler(scheduleService, plannerService)

  // Middleware
  log.Info("Setting up middleware from main...")
  authMiddleware := middleware.NewAuthMiddleware(log, authService)

  // Router
  log.Info("Setting up router from main...")
  router := server.NewRouter(server.RouterConfig{
    ServiceName:     "classcal-backend",
    AuthHandler:     authHandler,
    AuthMiddleware:  authMiddleware,
    ClassHandler:    classHandler,
    ScheduleHandler: scheduleHandler,
  })

  port := utils.GetEnv("PORT", "8080", log)
  fmt.Printf("Server listening on :%s\n", port)
  if err := router.Run(":" + port); err != nil {
    log.Warn("Server failed", "error", err)
  }
}
