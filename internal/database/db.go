package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/dileepkakara/portfolio/internal/config"
	"github.com/dileepkakara/portfolio/internal/models"
)

func Connect(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres", "":
		dialector = postgres.Open(cfg.DSN())
	case "sqlite":
		dialector = sqlite.Open(cfg.DSN())
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	return Open(dialector)
}

// Open opens a gorm handle with driver errors translated to gorm sentinels
// such as gorm.ErrDuplicatedKey.
func Open(dialector gorm.Dialector) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Skill{},
		&models.About{},
		&models.ContactMessage{},
		&models.VisitorStat{},
		&models.RevokedToken{},
	)
}

// Setup migrates and seeds the admin account.
func Setup(db *gorm.DB, cfg *config.Config, log *zap.Logger) error {
	if err := Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if err := SeedAdmin(db, cfg, log); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	return nil
}
