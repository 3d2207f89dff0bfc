package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	PriorityLow      = "low"
	PriorityNormal   = "normal"
	PriorityHigh     = "high"
	PriorityCritical = "critical"
)

// House is a physical address targeted for door-to-door collection.
type House struct {
	ID       uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	ClubID   uuid.UUID  `gorm:"type:uuid;index;not null" json:"club_id"`
	EventID  *uuid.UUID `gorm:"type:uuid;index" json:"event_id,omitempty"`
	ZoneID   *uuid.UUID `gorm:"type:uuid;index" json:"zone_id,omitempty"`
	Address  string     `gorm:"size:255;not null" json:"address"`
	DonorName string    `gorm:"size:120" json:"donor_name"`
	Phone    string     `gorm:"size:20" json:"phone"`

	LastYearAmount decimal.Decimal `gorm:"type:numeric(12,2)" json:"last_year_amount"`
	IsCollected    bool            `gorm:"default:false" json:"is_collected"`
	Priority       string          `gorm:"size:10;not null;default:normal" json:"priority"` // low | normal | high | critical

	Lat *float64 `json:"lat,omitempty"`
	Lng *float64 `json:"lng,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (h *House) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}

// PriorityRank orders houses for listing, highest urgency first.
func PriorityRank(p string) int {
	switch p {
	case PriorityCritical:
		return 3
	case PriorityHigh:
		return 2
	case PriorityNormal:
		return 1
	default:
		return 0
	}
}
