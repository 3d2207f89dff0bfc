package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RolePresident = "president"
	RoleSecretary = "secretary"
	RoleCollector = "collector"
	RoleCashier   = "cashier"
)

// User is a club member identity: president, secretary, cashier, or a
// field collector who records donations.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ClubID       uuid.UUID `gorm:"type:uuid;index;not null" json:"club_id"`
	FullName     string    `gorm:"size:120;not null" json:"full_name"`
	Email        string    `gorm:"size:120;uniqueIndex" json:"email"`
	Phone        string    `gorm:"size:20" json:"phone"`
	Role         string    `gorm:"size:20;not null" json:"role"`
	Zone         string    `gorm:"size:40" json:"zone"`
	PasswordHash string    `gorm:"size:100" json:"-"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
