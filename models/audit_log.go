package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	ActionInsert = "INSERT"
	ActionUpdate = "UPDATE"
	ActionDelete = "DELETE"
)

// AuditLog is an append-only record of table-level mutations, written by the
// store alongside each write.
type AuditLog struct {
	ID       uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	ClubID   uuid.UUID  `gorm:"type:uuid;index;not null" json:"club_id"`
	ActorID  *uuid.UUID `gorm:"type:uuid" json:"actor_id,omitempty"`

	TableName string    `gorm:"size:40;index;not null" json:"table_name"`
	RecordID  uuid.UUID `gorm:"type:uuid" json:"record_id"`
	Action    string    `gorm:"size:10;index;not null" json:"action"` // INSERT | UPDATE | DELETE

	OldValues datatypes.JSON `json:"old_values,omitempty"`
	NewValues datatypes.JSON `json:"new_values,omitempty"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (a *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
