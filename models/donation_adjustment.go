package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AdjustmentVoid       = "void"
	AdjustmentCorrection = "correction"
)

// DonationAdjustment is an append-only correction referencing an immutable
// donation. Voiding a donation inserts one of these; the donation row keeps
// its original amount and receipt number.
type DonationAdjustment struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ClubID     uuid.UUID `gorm:"type:uuid;index;not null" json:"club_id"`
	DonationID uuid.UUID `gorm:"type:uuid;index;not null" json:"donation_id"`
	AdjustedBy uuid.UUID `gorm:"type:uuid;not null" json:"adjusted_by"`

	AdjustmentType string `gorm:"size:20;not null" json:"adjustment_type"` // void | correction
	Reason         string `gorm:"size:255" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
}

func (a *DonationAdjustment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
