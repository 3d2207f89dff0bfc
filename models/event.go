package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	EventActive    = "active"
	EventUpcoming  = "upcoming"
	EventCompleted = "completed"
	EventArchived  = "archived"
)

type Event struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ClubID      uuid.UUID `gorm:"type:uuid;index;not null" json:"club_id"`
	Name        string    `gorm:"size:120;not null" json:"name"`
	Code        string    `gorm:"size:20;not null" json:"code"` // short code embedded in receipt numbers, e.g. DP26
	Description string    `gorm:"size:255" json:"description"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Status      string    `gorm:"size:20;not null;default:active" json:"status"` // active | upcoming | completed | archived

	TargetAmount decimal.Decimal `gorm:"type:numeric(12,2)" json:"target_amount"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
