package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Infinite-Leo/CollectiQ/models"
)

// Aggregation queries behind the dashboard endpoints. Only paid, non-void
// donations count toward collection figures.

func (s *Postgres) paidDonations(ctx context.Context, clubID uuid.UUID, eventID *uuid.UUID) *gorm.DB {
	q := s.db.WithContext(ctx).Model(&models.Donation{}).
		Where("club_id = ? AND is_void = false AND payment_status = ?", clubID, models.StatusPaid)
	if eventID != nil {
		q = q.Where("event_id = ?", *eventID)
	}
	return q
}

func (s *Postgres) DashboardSummary(ctx context.Context, clubID uuid.UUID, eventID *uuid.UUID) (*Summary, error) {
	type totals struct {
		Total decimal.Decimal
		Count int64
	}

	var all, today totals
	if err := s.paidDonations(ctx, clubID, eventID).
		Select("COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count").
		Scan(&all).Error; err != nil {
		return nil, err
	}
	if err := s.paidDonations(ctx, clubID, eventID).
		Where("collected_at >= ?", startOfDay(time.Now())).
		Select("COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count").
		Scan(&today).Error; err != nil {
		return nil, err
	}

	houseQuery := func() *gorm.DB {
		q := s.db.WithContext(ctx).Model(&models.House{}).Where("club_id = ?", clubID)
		if eventID != nil {
			q = q.Where("event_id = ?", *eventID)
		}
		return q
	}
	var totalHouses, collected int64
	if err := houseQuery().Count(&totalHouses).Error; err != nil {
		return nil, err
	}
	if err := houseQuery().Where("is_collected = true").Count(&collected).Error; err != nil {
		return nil, err
	}

	return &Summary{
		TotalCollection: all.Total,
		TotalDonations:  all.Count,
		TodayCollection: today.Total,
		TodayDonations:  today.Count,
		TotalHouses:     totalHouses,
		CollectedHouses: collected,
		PendingHouses:   totalHouses - collected,
	}, nil
}

func (s *Postgres) CollectorStats(ctx context.Context, clubID uuid.UUID, eventID *uuid.UUID) ([]CollectorStat, error) {
	var stats []CollectorStat
	err := s.paidDonations(ctx, clubID, eventID).
		Select("donations.collector_id, users.full_name, COUNT(*) AS donations, COALESCE(SUM(donations.amount), 0) AS amount").
		Joins("LEFT JOIN users ON users.id = donations.collector_id").
		Group("donations.collector_id, users.full_name").
		Order("amount DESC").
		Scan(&stats).Error
	return stats, err
}

func (s *Postgres) PaymentSplit(ctx context.Context, clubID uuid.UUID, eventID *uuid.UUID) ([]PaymentSplitRow, error) {
	var rows []PaymentSplitRow
	err := s.paidDonations(ctx, clubID, eventID).
		Select("payment_mode AS mode, COALESCE(SUM(amount), 0) AS amount, COUNT(*) AS count").
		Group("payment_mode").
		Order("amount DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	fillPercents(rows)
	return rows, nil
}

func (s *Postgres) CollectionTrend(ctx context.Context, clubID uuid.UUID, eventID *uuid.UUID, days int) ([]TrendPoint, error) {
	if days <= 0 {
		days = 7
	}
	since := startOfDay(time.Now().AddDate(0, 0, -(days - 1)))

	var points []TrendPoint
	err := s.paidDonations(ctx, clubID, eventID).
		Where("collected_at >= ?", since).
		Select("TO_CHAR(collected_at, 'YYYY-MM-DD') AS date, COALESCE(SUM(amount), 0) AS amount, COUNT(*) AS count").
		Group("TO_CHAR(collected_at, 'YYYY-MM-DD')").
		Order("date ASC").
		Scan(&points).Error
	return points, err
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// fillPercents computes each mode's share of the grand total, rounded to two
// decimal places.
func fillPercents(rows []PaymentSplitRow) {
	total := decimal.Zero
	for i := range rows {
		total = total.Add(rows[i].Amount)
	}
	if total.IsZero() {
		return
	}
	for i := range rows {
		pct, _ := rows[i].Amount.Div(total).Mul(decimal.NewFromInt(100)).Round(2).Float64()
		rows[i].Percent = pct
	}
}
