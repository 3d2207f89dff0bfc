package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Club struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name    string    `gorm:"size:120;not null" json:"name"`
	Slug    string    `gorm:"size:120;uniqueIndex" json:"slug"`
	Address string    `gorm:"size:255" json:"address"`
	City    string    `gorm:"size:80" json:"city"`
	State   string    `gorm:"size:80" json:"state"`
	Pincode string    `gorm:"size:10" json:"pincode"`
	Phone   string    `gorm:"size:20" json:"phone"`
	Email   string    `gorm:"size:120" json:"email"`
	LogoURL string    `gorm:"size:255" json:"logo_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Club) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
