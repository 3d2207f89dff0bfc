package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Zone struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ClubID uuid.UUID `gorm:"type:uuid;index;not null" json:"club_id"`
	Name   string    `gorm:"size:40;not null" json:"name"`

	CreatedAt time.Time `json:"created_at"`
}

func (z *Zone) BeforeCreate(tx *gorm.DB) error {
	if z.ID == uuid.Nil {
		z.ID = uuid.New()
	}
	return nil
}
