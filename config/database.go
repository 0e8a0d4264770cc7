package config

import (
	"fmt"

	"fitmanager-backend/repositories"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// OpenStore builds the repository store for the configured driver. The
// caller owns the store and must Close it on shutdown.
func OpenStore(cfg DatabaseConfig, log *zap.Logger) (*repositories.Store, error) {
	switch cfg.Driver {
	case DriverMemory:
		log.Warn("Using in-memory store, data will not survive a restart")
		return repositories.NewMemoryStore(), nil
	case DriverPostgres:
		db, err := ConnectDB(cfg)
		if err != nil {
			return nil, err
		}
		if cfg.AutoMigrate {
			if err := Migrate(db); err != nil {
				return nil, err
			}
			log.Info("Database schema migrated")
		}
		return repositories.NewGormStore(db), nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
}

func ConnectDB(cfg DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.URL), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(repositories.Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
