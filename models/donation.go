package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	ModeCash         = "cash"
	ModeUPI          = "upi"
	ModeBankTransfer = "bank_transfer"
	ModeCheque       = "cheque"

	StatusPaid = "paid"
	StatusDue  = "due"
)

// Donation is the core ledger row. Once persisted it is never mutated or
// deleted; corrections are recorded as DonationAdjustment rows. IsVoid is a
// denormalized marker maintained alongside the adjustment insert so listing
// can exclude voided rows cheaply.
type Donation struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	ClubID      uuid.UUID  `gorm:"type:uuid;index;not null;uniqueIndex:idx_donations_receipt" json:"club_id"`
	EventID     uuid.UUID  `gorm:"type:uuid;index;not null;uniqueIndex:idx_donations_receipt" json:"event_id"`
	DonorID     *uuid.UUID `gorm:"type:uuid;index" json:"donor_id,omitempty"`
	CollectorID uuid.UUID  `gorm:"type:uuid;index;not null" json:"collector_id"`
	ZoneID      *uuid.UUID `gorm:"type:uuid" json:"zone_id,omitempty"`
	HouseID     *uuid.UUID `gorm:"type:uuid" json:"house_id,omitempty"`

	Amount        decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	PaymentMode   string          `gorm:"size:20;not null;default:cash" json:"payment_mode"`   // cash | upi | bank_transfer | cheque
	PaymentStatus string          `gorm:"size:10;not null;default:paid" json:"payment_status"` // paid | due
	ReceiptNumber string          `gorm:"size:30;not null;uniqueIndex:idx_donations_receipt" json:"receipt_number"`

	IdempotencyKey *string `gorm:"size:64;uniqueIndex" json:"idempotency_key,omitempty"`
	Notes          string  `gorm:"size:255" json:"notes"`

	CollectionLat *float64 `json:"collection_lat,omitempty"`
	CollectionLng *float64 `json:"collection_lng,omitempty"`
	DeviceID      string   `gorm:"size:64" json:"device_id"`

	CollectedAt time.Time `gorm:"index;not null" json:"collected_at"`
	IsVoid      bool      `gorm:"default:false" json:"is_void"`

	// Filled by list queries via join; not a stored column.
	DonorName     string `gorm:"->;-:migration" json:"donor_name,omitempty"`
	CollectorName string `gorm:"->;-:migration" json:"collector_name,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (d *Donation) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	if d.CollectedAt.IsZero() {
		d.CollectedAt = time.Now()
	}
	return nil
}
