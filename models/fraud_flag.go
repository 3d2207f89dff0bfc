package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	FlagOpen          = "open"
	FlagInvestigating = "investigating"
	FlagResolved      = "resolved"
	FlagDismissed     = "dismissed"

	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// FraudFlag is a reviewable suspicion record attached to a donation or a
// collector. Flags are inserted by an external detection process (or the dev
// seeder); this API only supports listing and resolving them.
type FraudFlag struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	ClubID        uuid.UUID  `gorm:"type:uuid;index;not null" json:"club_id"`
	DonationID    *uuid.UUID `gorm:"type:uuid" json:"donation_id,omitempty"`
	FlaggedUserID *uuid.UUID `gorm:"type:uuid" json:"flagged_user_id,omitempty"`

	Severity string `gorm:"size:10;not null;default:medium" json:"severity"` // low | medium | high
	Reason   string `gorm:"size:255" json:"reason"`
	Status   string `gorm:"size:20;not null;default:open" json:"status"` // open | investigating | resolved | dismissed

	ResolutionNotes string     `gorm:"size:255" json:"resolution_notes"`
	ResolvedBy      *uuid.UUID `gorm:"type:uuid" json:"resolved_by,omitempty"`
	ResolvedAt      *time.Time `json:"resolved_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (f *FraudFlag) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// ValidFlagTransition reports whether a status change is allowed:
// open → investigating | resolved | dismissed, investigating → resolved.
func ValidFlagTransition(from, to string) bool {
	switch from {
	case FlagOpen:
		return to == FlagInvestigating || to == FlagResolved || to == FlagDismissed
	case FlagInvestigating:
		return to == FlagResolved
	default:
		return false
	}
}
