package models

import "github.com/google/uuid"

// ReceiptSequence holds the last issued receipt number per (club, event).
// The Postgres store locks this row FOR UPDATE inside the donation
// transaction so concurrent recordings never reuse a number.
type ReceiptSequence struct {
	ClubID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"club_id"`
	EventID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"event_id"`
	LastValue int64     `gorm:"not null;default:0" json:"last_value"`
}
