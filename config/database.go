package config

import (
	"log"
	"os"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Infinite-Leo/CollectiQ/models"
)

// ConnectDB opens the Postgres connection and migrates the schema.
func ConnectDB(cfg *Config) (*gorm.DB, error) {
	dbURL := cfg.DatabaseURL

	// Managed hosts usually need sslmode=require; add it when absent.
	if !strings.Contains(dbURL, "sslmode=") {
		sep := "?"
		if strings.Contains(dbURL, "?") {
			sep = "&"
		}
		dbURL = dbURL + sep + "sslmode=require"
	}

	gormLogger := logger.New(
		log.New(os.Stdout, "[GORM] ", log.LstdFlags),
		logger.Config{
			SlowThreshold: 200 * time.Millisecond,
			LogLevel:      logger.Warn,
		},
	)

	db, err := gorm.Open(postgres.Open(dbURL), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, err
	}

	if err := db.Exec(`SET TIME ZONE 'UTC'`).Error; err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.Club{},
		&models.Event{},
		&models.User{},
		&models.Zone{},
		&models.Donor{},
		&models.House{},
		&models.Donation{},
		&models.DonationAdjustment{},
		&models.FraudFlag{},
		&models.AuditLog{},
		&models.ReceiptSequence{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
