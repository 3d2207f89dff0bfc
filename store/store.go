package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Infinite-Leo/CollectiQ/models"
)

var (
	ErrNotFound          = errors.New("record not found")
	ErrNoActiveEvent     = errors.New("no active event found. Please create or start an event")
	ErrDuplicate         = errors.New("duplicate entry")
	ErrVoided            = errors.New("donation is already voided")
	ErrInvalidTransition = errors.New("invalid fraud flag status transition")
)

// Fixed identities for the development seed. The auth middleware's dev
// bypass references the same club and president so unauthenticated local
// requests land in seeded data.
var (
	DevClubID  = uuid.MustParse("a1b2c3d4-e5f6-7890-abcd-ef1234567890")
	DevEventID = uuid.MustParse("b2c3d4e5-f6a7-8901-bcde-f12345678901")
	DevUserID  = uuid.MustParse("c3d4e5f6-a7b8-9012-cdef-123456789012")
)

type DonationFilter struct {
	EventID       *uuid.UUID
	PaymentStatus string
	PaymentMode   string
	CollectorID   *uuid.UUID
	Page          int
	Limit         int
}

type HouseFilter struct {
	EventID     *uuid.UUID
	ZoneID      *uuid.UUID
	IsCollected *bool
	Priority    string
	Page        int
	Limit       int
}

type FraudFilter struct {
	Status   string
	Severity string
}

type AuditFilter struct {
	TableName string
	Action    string
	Page      int
	Limit     int
}

// DonationInput carries the validated fields of a recording request. The
// collector identity comes from the authenticated caller, never the body.
type DonationInput struct {
	EventID        *uuid.UUID
	DonorID        *uuid.UUID
	ZoneID         *uuid.UUID
	HouseID        *uuid.UUID
	Amount         decimal.Decimal
	PaymentMode    string
	PaymentStatus  string
	IdempotencyKey *string
	Notes          string
	CollectionLat  *float64
	CollectionLng  *float64
	DeviceID       string
}

type Summary struct {
	TotalCollection decimal.Decimal `json:"total_collection"`
	TotalDonations  int64           `json:"total_donations"`
	TodayCollection decimal.Decimal `json:"today_collection"`
	TodayDonations  int64           `json:"today_donations"`
	TotalHouses     int64           `json:"total_houses"`
	CollectedHouses int64           `json:"collected_houses"`
	PendingHouses   int64           `json:"pending_houses"`
}

type CollectorStat struct {
	CollectorID uuid.UUID       `json:"collector_id"`
	FullName    string          `json:"full_name"`
	Donations   int64           `json:"donations"`
	Amount      decimal.Decimal `json:"amount"`
}

type PaymentSplitRow struct {
	Mode    string          `json:"mode"`
	Amount  decimal.Decimal `json:"amount"`
	Count   int64           `json:"count"`
	Percent float64         `json:"percent"`
}

type TrendPoint struct {
	Date   string          `json:"date"` // YYYY-MM-DD
	Amount decimal.Decimal `json:"amount"`
	Count  int64           `json:"count"`
}

// Store is the persistence boundary. Every method is tenant-scoped: rows are
// only visible to, and mutable by, the club they belong to. Two
// implementations exist — Postgres for real deployments and Memory for
// development fixtures — selected at startup.
type Store interface {
	ClubByID(ctx context.Context, clubID uuid.UUID) (*models.Club, error)
	UpdateClub(ctx context.Context, clubID uuid.UUID, updates map[string]any) (*models.Club, error)

	Events(ctx context.Context, clubID uuid.UUID) ([]models.Event, error)
	ActiveEvent(ctx context.Context, clubID uuid.UUID) (*models.Event, error)
	CreateEvent(ctx context.Context, ev *models.Event) error
	UpdateEvent(ctx context.Context, clubID, id uuid.UUID, updates map[string]any) (*models.Event, error)

	Donations(ctx context.Context, clubID uuid.UUID, f DonationFilter) ([]models.Donation, int64, error)
	DonationByID(ctx context.Context, clubID, id uuid.UUID) (*models.Donation, error)
	RecordDonation(ctx context.Context, clubID, collectorID uuid.UUID, in DonationInput) (*models.Donation, error)
	VoidDonation(ctx context.Context, clubID, donationID, adjustedBy uuid.UUID, reason string) (*models.DonationAdjustment, error)

	Donors(ctx context.Context, clubID uuid.UUID, query string, limit int) ([]models.Donor, error)
	CreateDonor(ctx context.Context, actorID uuid.UUID, d *models.Donor) error

	Houses(ctx context.Context, clubID uuid.UUID, f HouseFilter) ([]models.House, int64, error)
	CreateHouse(ctx context.Context, actorID uuid.UUID, h *models.House) error
	CreateHouses(ctx context.Context, actorID uuid.UUID, hs []models.House) error
	UpdateHouse(ctx context.Context, clubID, id uuid.UUID, updates map[string]any) (*models.House, error)

	FraudFlags(ctx context.Context, clubID uuid.UUID, f FraudFilter) ([]models.FraudFlag, error)
	ResolveFraudFlag(ctx context.Context, clubID, id, resolvedBy uuid.UUID, status, notes string) (*models.FraudFlag, error)

	AuditLogs(ctx context.Context, clubID uuid.UUID, f AuditFilter) ([]models.AuditLog, int64, error)

	UserByEmail(ctx context.Context, email string) (*models.User, error)

	DashboardSummary(ctx context.Context, clubID uuid.UUID, eventID *uuid.UUID) (*Summary, error)
	CollectorStats(ctx context.Context, clubID uuid.UUID, eventID *uuid.UUID) ([]CollectorStat, error)
	PaymentSplit(ctx context.Context, clubID uuid.UUID, eventID *uuid.UUID) ([]PaymentSplitRow, error)
	CollectionTrend(ctx context.Context, clubID uuid.UUID, eventID *uuid.UUID, days int) ([]TrendPoint, error)
}
