package db

import (
  "fmt"
  "gorm.io/driver/sqlite"
  "gorm.io/gorm"
  "github.com/classcal/classcal-backend/internal/types"
  "github.com/classcal/classcal-backend/internal/utils"
  "github.com/classcal/classcal-backend/internal/logger"
)

// SQLiteService is the zero-dependency local development database. Selected
// with DB_DRIVER=sqlite; production runs Postgres.
type SQLiteService struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewSQLiteService(log *logger.Logger) (*SQLiteService, error) {
  serviceLog := log.With("service", "SQLiteService")

  path := utils.GetEnv("SQLITE_PATH", "classcal.db", log)

  log.Info("Opening SQLite database...", "path", path)
  gormDB, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
  if err != nil {
    serviceLog.Error("Failed to open SQLite database", "error", err)
    return nil, fmt.Errorf("failed to open sqlite database: %w", err)
  }

  return &SQLiteService{db: gormDB, log: serviceLog}, nil
}

func (s *SQLiteService) AutoMigrateAll() error {
  s.log.Info("Auto migrating sqlite tables...")
  err := s.db.AutoMigrate(
    &types.User{},
    &types.UserToken{},
    &types.Class{},
  )
  if err != nil {
    s.log.Error("Auto migration failed for sqlite tables", "error", err)
    return err
  }
  return nil
}

func (s *SQLiteService) DB() *gorm.DB {
  return s.db
}
