package database

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/max-shi/game-api-server/internal/config"
	"github.com/max-shi/game-api-server/internal/models"
)

// Connect opens the configured backend (sqlite or mysql), migrates the
// schema and seeds the catalog tables when empty.
func Connect(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDialect {
	case "mysql":
		dialector = mysql.Open(cfg.DatabaseURL)
	case "sqlite":
		dialector = sqlite.Open(cfg.DatabaseURL)
	default:
		return nil, fmt.Errorf("unsupported DB_DIALECT %q", cfg.DBDialect)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}

	// Verify the connection
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.DBDialect == "mysql" {
		sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
		sqlDB.SetConnMaxLifetime(time.Hour)
	} else {
		// sqlite serialises writes on a single file handle
		sqlDB.SetMaxOpenConns(1)
	}

	if err := runMigrations(db, logger); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := Seed(db, logger); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to seed database: %w", err)
	}

	logger.Info("Connected to the database successfully", "dialect", cfg.DBDialect)
	return db, nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func runMigrations(db *gorm.DB, logger *slog.Logger) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Genre{},
		&models.Platform{},
		&models.Game{},
		&models.GamePlatform{},
		&models.WishlistEntry{},
		&models.OwnedEntry{},
		&models.Review{},
	)
	if err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}

	logger.Info("Database migrations applied successfully")
	return nil
}
