package database

import (
	"errors"
	"fmt"

	"github.com/sangkips/salgaderia-api/internal/config"
	"github.com/sangkips/salgaderia-api/internal/domain/entity"
	"github.com/sangkips/salgaderia-api/internal/logging"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig, debug bool) (*gorm.DB, error) {
	logLevel := logger.Warn
	if debug {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(25)

	log := logging.Get("database")
	log.Info().Str("host", cfg.Host).Str("database", cfg.Name).Msg("Connected to PostgreSQL")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log := logging.Get("database")
	log.Info().Msg("Running database migrations")

	err := db.AutoMigrate(
		&entity.Operator{},
		&entity.StoreSettings{},
		&entity.Product{},
		&entity.Order{},
		&entity.OrderItem{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info().Msg("Database migrations completed")
	return nil
}

// SeedDefaultData creates the store settings row and the first operator
// when they do not exist yet
func SeedDefaultData(db *gorm.DB, store config.StoreConfig, admin config.AdminConfig) error {
	log := logging.Get("database")

	var settings entity.StoreSettings
	err := db.Order("created_at ASC").First(&settings).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		settings = entity.StoreSettings{
			Name:           store.Name,
			Phone:          store.Phone,
			TicketTitle:    entity.DefaultTicketTitle,
			TicketSubtitle: entity.DefaultTicketSubtitle,
			FooterMessage:  entity.DefaultFooterMessage,
		}
		if err := db.Create(&settings).Error; err != nil {
			return fmt.Errorf("failed to seed store settings: %w", err)
		}
		log.Info().Str("store", settings.Name).Msg("Default store settings created")
	case err != nil:
		return fmt.Errorf("failed to load store settings: %w", err)
	}

	if admin.Email == "" || admin.Password == "" {
		log.Warn().Msg("ADMIN_EMAIL or ADMIN_PASSWORD not set, skipping operator seed")
		return nil
	}

	var existing entity.Operator
	err = db.Where("email = ?", admin.Email).First(&existing).Error
	if err == nil {
		log.Debug().Str("email", admin.Email).Msg("Admin operator already exists")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to look up admin operator: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	name := admin.Name
	if name == "" {
		name = "Administrador"
	}
	operator := entity.Operator{
		Name:     name,
		Email:    admin.Email,
		Password: string(hashed),
		Active:   true,
	}
	if err := db.Create(&operator).Error; err != nil {
		return fmt.Errorf("failed to create admin operator: %w", err)
	}

	log.Info().Str("email", admin.Email).Msg("Admin operator created")
	return nil
}
