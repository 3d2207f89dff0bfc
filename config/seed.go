package config

import (
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Infinite-Leo/CollectiQ/models"
	"github.com/Infinite-Leo/CollectiQ/store"
)

// SeedDevData creates the fixed dev club, its active event and a president
// login if they don't exist yet. Idempotent; skipped in production.
func SeedDevData(db *gorm.DB, cfg *Config, log *zap.Logger) error {
	if cfg.Production() {
		return nil
	}

	var cnt int64
	if err := db.Model(&models.Club{}).Where("id = ?", store.DevClubID).Count(&cnt).Error; err != nil {
		return err
	}
	if cnt > 0 {
		log.Info("dev club already exists, skipping seed")
		return nil
	}

	log.Info("seeding development data")
	return db.Transaction(func(tx *gorm.DB) error {
		club := models.Club{
			ID:      store.DevClubID,
			Name:    "Durga Nagar Club",
			Slug:    "durga-nagar-club",
			Address: "24 Pally Road, Durga Nagar",
			City:    "Kolkata",
			State:   "West Bengal",
			Pincode: "700032",
			Phone:   "9876543210",
		}
		if err := tx.Create(&club).Error; err != nil {
			return err
		}

		event := models.Event{
			ID:           store.DevEventID,
			ClubID:       store.DevClubID,
			Name:         "Durga Puja 2026",
			Code:         "DP26",
			Description:  "Annual Durga Puja collection drive",
			StartDate:    time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			EndDate:      time.Date(2026, 10, 31, 0, 0, 0, 0, time.UTC),
			Status:       models.EventActive,
			TargetAmount: decimal.NewFromInt(500000),
		}
		if err := tx.Create(&event).Error; err != nil {
			return err
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(store.DevPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		president := models.User{
			ID:           store.DevUserID,
			ClubID:       store.DevClubID,
			FullName:     "Debashis Chatterjee",
			Email:        "president@durganagar.com",
			Phone:        "9876543210",
			Role:         models.RolePresident,
			PasswordHash: string(hash),
			IsActive:     true,
		}
		return tx.Create(&president).Error
	})
}
