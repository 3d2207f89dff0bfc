package store

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Infinite-Leo/CollectiQ/models"
)

// In-memory counterparts of the dashboard aggregates, recomputed from the
// current collections on every call.

func (m *Memory) paidDonationsLocked(clubID uuid.UUID, eventID *uuid.UUID) []models.Donation {
	var out []models.Donation
	for _, d := range m.donations {
		if d.ClubID != clubID || d.IsVoid || d.PaymentStatus != models.StatusPaid {
			continue
		}
		if eventID != nil && d.EventID != *eventID {
			continue
		}
		out = append(out, d)
	}
	return out
}

func (m *Memory) DashboardSummary(_ context.Context, clubID uuid.UUID, eventID *uuid.UUID) (*Summary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sum := &Summary{TotalCollection: decimal.Zero, TodayCollection: decimal.Zero}
	today := startOfDay(time.Now())
	for _, d := range m.paidDonationsLocked(clubID, eventID) {
		sum.TotalCollection = sum.TotalCollection.Add(d.Amount)
		sum.TotalDonations++
		if !d.CollectedAt.Before(today) {
			sum.TodayCollection = sum.TodayCollection.Add(d.Amount)
			sum.TodayDonations++
		}
	}

	for _, h := range m.houses {
		if h.ClubID != clubID {
			continue
		}
		if eventID != nil && (h.EventID == nil || *h.EventID != *eventID) {
			continue
		}
		sum.TotalHouses++
		if h.IsCollected {
			sum.CollectedHouses++
		}
	}
	sum.PendingHouses = sum.TotalHouses - sum.CollectedHouses
	return sum, nil
}

func (m *Memory) CollectorStats(_ context.Context, clubID uuid.UUID, eventID *uuid.UUID) ([]CollectorStat, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	byCollector := make(map[uuid.UUID]*CollectorStat)
	for _, d := range m.paidDonationsLocked(clubID, eventID) {
		st, ok := byCollector[d.CollectorID]
		if !ok {
			st = &CollectorStat{
				CollectorID: d.CollectorID,
				FullName:    m.userNameLocked(d.CollectorID),
				Amount:      decimal.Zero,
			}
			byCollector[d.CollectorID] = st
		}
		st.Donations++
		st.Amount = st.Amount.Add(d.Amount)
	}

	stats := make([]CollectorStat, 0, len(byCollector))
	for _, st := range byCollector {
		stats = append(stats, *st)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Amount.GreaterThan(stats[j].Amount) })
	return stats, nil
}

func (m *Memory) PaymentSplit(_ context.Context, clubID uuid.UUID, eventID *uuid.UUID) ([]PaymentSplitRow, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	byMode := make(map[string]*PaymentSplitRow)
	for _, d := range m.paidDonationsLocked(clubID, eventID) {
		row, ok := byMode[d.PaymentMode]
		if !ok {
			row = &PaymentSplitRow{Mode: d.PaymentMode, Amount: decimal.Zero}
			byMode[d.PaymentMode] = row
		}
		row.Count++
		row.Amount = row.Amount.Add(d.Amount)
	}

	rows := make([]PaymentSplitRow, 0, len(byMode))
	for _, row := range byMode {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Amount.GreaterThan(rows[j].Amount) })
	fillPercents(rows)
	return rows, nil
}

func (m *Memory) CollectionTrend(_ context.Context, clubID uuid.UUID, eventID *uuid.UUID, days int) ([]TrendPoint, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if days <= 0 {
		days = 7
	}
	since := startOfDay(time.Now().AddDate(0, 0, -(days - 1)))

	byDate := make(map[string]*TrendPoint)
	for _, d := range m.paidDonationsLocked(clubID, eventID) {
		if d.CollectedAt.Before(since) {
			continue
		}
		key := d.CollectedAt.Format("2006-01-02")
		pt, ok := byDate[key]
		if !ok {
			pt = &TrendPoint{Date: key, Amount: decimal.Zero}
			byDate[key] = pt
		}
		pt.Count++
		pt.Amount = pt.Amount.Add(d.Amount)
	}

	points := make([]TrendPoint, 0, len(byDate))
	for _, pt := range byDate {
		points = append(points, *pt)
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points, nil
}
