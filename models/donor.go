package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Donor struct {
	ID       uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	ClubID   uuid.UUID  `gorm:"type:uuid;index;not null" json:"club_id"`
	FullName string     `gorm:"size:120;not null" json:"full_name"`
	Phone    string     `gorm:"size:20;index" json:"phone"`
	HouseID  *uuid.UUID `gorm:"type:uuid" json:"house_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (d *Donor) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
