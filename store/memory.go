package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Infinite-Leo/CollectiQ/models"
	"github.com/Infinite-Leo/CollectiQ/utils"
)

// Memory is the development Store: mutex-guarded slices seeded with fixture
// data so the dashboard renders populated from the first request. It mirrors
// the Postgres contract closely enough that handlers are agnostic to which
// backend they talk to. Not a system of record and not meant for
// multi-instance deployment.
type Memory struct {
	mu sync.RWMutex

	clubs       []models.Club
	events      []models.Event
	users       []models.User
	zones       []models.Zone
	donors      []models.Donor
	houses      []models.House
	donations   []models.Donation
	adjustments []models.DonationAdjustment
	flags       []models.FraudFlag
	logs        []models.AuditLog

	receiptSeq map[uuid.UUID]int64 // event id -> last issued value
}

func NewMemory() *Memory {
	m := &Memory{receiptSeq: make(map[uuid.UUID]int64)}
	m.seed()
	return m
}

func (m *Memory) ClubByID(_ context.Context, clubID uuid.UUID) (*models.Club, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.clubs {
		if m.clubs[i].ID == clubID {
			club := m.clubs[i]
			return &club, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) UpdateClub(_ context.Context, clubID uuid.UUID, updates map[string]any) (*models.Club, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.clubs {
		if m.clubs[i].ID != clubID {
			continue
		}
		c := &m.clubs[i]
		for k, v := range updates {
			switch k {
			case "name":
				c.Name = v.(string)
			case "address":
				c.Address = v.(string)
			case "phone":
				c.Phone = v.(string)
			case "email":
				c.Email = v.(string)
			case "logo_url":
				c.LogoURL = v.(string)
			}
		}
		c.UpdatedAt = time.Now()
		m.appendAudit(clubID, nil, "clubs", c.ID, models.ActionUpdate)
		club := *c
		return &club, nil
	}
	return nil, ErrNotFound
}

func (m *Memory) Events(_ context.Context, clubID uuid.UUID) ([]models.Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []models.Event
	for _, ev := range m.events {
		if ev.ClubID == clubID {
			out = append(out, ev)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *Memory) ActiveEvent(_ context.Context, clubID uuid.UUID) (*models.Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.activeEventLocked(clubID)
}

func (m *Memory) activeEventLocked(clubID uuid.UUID) (*models.Event, error) {
	for i := range m.events {
		if m.events[i].ClubID == clubID && m.events[i].Status == models.EventActive {
			ev := m.events[i]
			return &ev, nil
		}
	}
	return nil, ErrNoActiveEvent
}

func (m *Memory) CreateEvent(_ context.Context, ev *models.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if ev.ID == uuid.Nil {
		ev.ID = uuid.New()
	}
	if ev.Code == "" {
		ev.Code = "EV" + ev.ID.String()[:4]
	}
	now := time.Now()
	ev.CreatedAt, ev.UpdatedAt = now, now
	m.events = append(m.events, *ev)
	m.appendAudit(ev.ClubID, nil, "events", ev.ID, models.ActionInsert)
	return nil
}

func (m *Memory) UpdateEvent(_ context.Context, clubID, id uuid.UUID, updates map[string]any) (*models.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.events {
		if m.events[i].ID != id || m.events[i].ClubID != clubID {
			continue
		}
		ev := &m.events[i]
		for k, v := range updates {
			switch k {
			case "name":
				ev.Name = v.(string)
			case "code":
				ev.Code = v.(string)
			case "description":
				ev.Description = v.(string)
			case "status":
				ev.Status = v.(string)
			case "start_date":
				ev.StartDate = v.(time.Time)
			case "end_date":
				ev.EndDate = v.(time.Time)
			case "target_amount":
				ev.TargetAmount = v.(decimal.Decimal)
			}
		}
		ev.UpdatedAt = time.Now()
		m.appendAudit(clubID, nil, "events", ev.ID, models.ActionUpdate)
		out := *ev
		return &out, nil
	}
	return nil, ErrNotFound
}

func (m *Memory) Donations(_ context.Context, clubID uuid.UUID, f DonationFilter) ([]models.Donation, int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var matched []models.Donation
	for _, d := range m.donations {
		if d.ClubID != clubID || d.IsVoid {
			continue
		}
		if f.EventID != nil && d.EventID != *f.EventID {
			continue
		}
		if f.PaymentStatus != "" && d.PaymentStatus != f.PaymentStatus {
			continue
		}
		if f.PaymentMode != "" && d.PaymentMode != f.PaymentMode {
			continue
		}
		if f.CollectorID != nil && d.CollectorID != *f.CollectorID {
			continue
		}
		d.DonorName = m.donorNameLocked(d.DonorID)
		d.CollectorName = m.userNameLocked(d.CollectorID)
		matched = append(matched, d)
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CollectedAt.Equal(matched[j].CollectedAt) {
			return matched[i].CollectedAt.After(matched[j].CollectedAt)
		}
		return matched[i].ReceiptNumber > matched[j].ReceiptNumber
	})

	total := int64(len(matched))
	page, limit := normalizePage(f.Page, f.Limit, 50)
	return slicePage(matched, page, limit), total, nil
}

func (m *Memory) DonationByID(_ context.Context, clubID, id uuid.UUID) (*models.Donation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, d := range m.donations {
		if d.ID == id && d.ClubID == clubID {
			d.DonorName = m.donorNameLocked(d.DonorID)
			d.CollectorName = m.userNameLocked(d.CollectorID)
			return &d, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) RecordDonation(_ context.Context, clubID, collectorID uuid.UUID, in DonationInput) (*models.Donation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var ev *models.Event
	if in.EventID != nil {
		for i := range m.events {
			if m.events[i].ID == *in.EventID && m.events[i].ClubID == clubID {
				e := m.events[i]
				ev = &e
				break
			}
		}
		if ev == nil {
			return nil, ErrNotFound
		}
	} else {
		var err error
		if ev, err = m.activeEventLocked(clubID); err != nil {
			return nil, err
		}
	}

	if in.IdempotencyKey != nil {
		for _, d := range m.donations {
			if d.IdempotencyKey != nil && *d.IdempotencyKey == *in.IdempotencyKey {
				return nil, ErrDuplicate
			}
		}
	}

	m.receiptSeq[ev.ID]++
	seq := m.receiptSeq[ev.ID]

	now := time.Now()
	donation := models.Donation{
		ID:             uuid.New(),
		ClubID:         clubID,
		EventID:        ev.ID,
		DonorID:        in.DonorID,
		CollectorID:    collectorID,
		ZoneID:         in.ZoneID,
		HouseID:        in.HouseID,
		Amount:         in.Amount,
		PaymentMode:    in.PaymentMode,
		PaymentStatus:  in.PaymentStatus,
		ReceiptNumber:  formatReceiptFor(ev, seq),
		IdempotencyKey: in.IdempotencyKey,
		Notes:          in.Notes,
		CollectionLat:  in.CollectionLat,
		CollectionLng:  in.CollectionLng,
		DeviceID:       in.DeviceID,
		CollectedAt:    now,
		CreatedAt:      now,
	}
	m.donations = append(m.donations, donation)

	if in.HouseID != nil {
		for i := range m.houses {
			if m.houses[i].ID == *in.HouseID && m.houses[i].ClubID == clubID {
				m.houses[i].IsCollected = true
				m.houses[i].UpdatedAt = now
			}
		}
	}

	m.appendAudit(clubID, &collectorID, "donations", donation.ID, models.ActionInsert)
	return &donation, nil
}

func (m *Memory) VoidDonation(_ context.Context, clubID, donationID, adjustedBy uuid.UUID, reason string) (*models.DonationAdjustment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.donations {
		if m.donations[i].ID != donationID || m.donations[i].ClubID != clubID {
			continue
		}
		if m.donations[i].IsVoid {
			return nil, ErrVoided
		}
		adj := models.DonationAdjustment{
			ID:             uuid.New(),
			ClubID:         clubID,
			DonationID:     donationID,
			AdjustedBy:     adjustedBy,
			AdjustmentType: models.AdjustmentVoid,
			Reason:         reason,
			CreatedAt:      time.Now(),
		}
		m.adjustments = append(m.adjustments, adj)
		m.donations[i].IsVoid = true
		m.appendAudit(clubID, &adjustedBy, "donation_adjustments", adj.ID, models.ActionInsert)
		return &adj, nil
	}
	return nil, ErrNotFound
}

func (m *Memory) Donors(_ context.Context, clubID uuid.UUID, query string, limit int) ([]models.Donor, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if limit <= 0 {
		limit = 10
	}
	q := strings.ToLower(query)
	var out []models.Donor
	for _, d := range m.donors {
		if d.ClubID != clubID {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(d.FullName), q) && !strings.Contains(d.Phone, query) {
			continue
		}
		out = append(out, d)
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (m *Memory) CreateDonor(_ context.Context, actorID uuid.UUID, d *models.Donor) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	now := time.Now()
	d.CreatedAt, d.UpdatedAt = now, now
	m.donors = append(m.donors, *d)
	m.appendAudit(d.ClubID, &actorID, "donors", d.ID, models.ActionInsert)
	return nil
}

func (m *Memory) Houses(_ context.Context, clubID uuid.UUID, f HouseFilter) ([]models.House, int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var matched []models.House
	for _, h := range m.houses {
		if h.ClubID != clubID {
			continue
		}
		if f.EventID != nil && (h.EventID == nil || *h.EventID != *f.EventID) {
			continue
		}
		if f.ZoneID != nil && (h.ZoneID == nil || *h.ZoneID != *f.ZoneID) {
			continue
		}
		if f.IsCollected != nil && h.IsCollected != *f.IsCollected {
			continue
		}
		if f.Priority != "" && h.Priority != f.Priority {
			continue
		}
		matched = append(matched, h)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		ri, rj := models.PriorityRank(matched[i].Priority), models.PriorityRank(matched[j].Priority)
		if ri != rj {
			return ri > rj
		}
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	page, limit := normalizePage(f.Page, f.Limit, 100)
	return slicePage(matched, page, limit), total, nil
}

func (m *Memory) CreateHouse(_ context.Context, actorID uuid.UUID, h *models.House) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.createHouseLocked(actorID, h)
	return nil
}

func (m *Memory) CreateHouses(_ context.Context, actorID uuid.UUID, hs []models.House) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range hs {
		m.createHouseLocked(actorID, &hs[i])
	}
	return nil
}

func (m *Memory) createHouseLocked(actorID uuid.UUID, h *models.House) {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	if h.Priority == "" {
		h.Priority = models.PriorityNormal
	}
	now := time.Now()
	h.CreatedAt, h.UpdatedAt = now, now
	m.houses = append(m.houses, *h)
	m.appendAudit(h.ClubID, &actorID, "houses", h.ID, models.ActionInsert)
}

func (m *Memory) UpdateHouse(_ context.Context, clubID, id uuid.UUID, updates map[string]any) (*models.House, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.houses {
		if m.houses[i].ID != id || m.houses[i].ClubID != clubID {
			continue
		}
		h := &m.houses[i]
		for k, v := range updates {
			switch k {
			case "address":
				h.Address = v.(string)
			case "donor_name":
				h.DonorName = v.(string)
			case "phone":
				h.Phone = v.(string)
			case "priority":
				h.Priority = v.(string)
			case "is_collected":
				h.IsCollected = v.(bool)
			case "zone_id":
				h.ZoneID = v.(*uuid.UUID)
			case "event_id":
				h.EventID = v.(*uuid.UUID)
			case "last_year_amount":
				h.LastYearAmount = v.(decimal.Decimal)
			case "lat":
				h.Lat = v.(*float64)
			case "lng":
				h.Lng = v.(*float64)
			}
		}
		h.UpdatedAt = time.Now()
		m.appendAudit(clubID, nil, "houses", h.ID, models.ActionUpdate)
		out := *h
		return &out, nil
	}
	return nil, ErrNotFound
}

func (m *Memory) FraudFlags(_ context.Context, clubID uuid.UUID, f FraudFilter) ([]models.FraudFlag, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []models.FraudFlag
	for _, fl := range m.flags {
		if fl.ClubID != clubID {
			continue
		}
		if f.Status != "" && fl.Status != f.Status {
			continue
		}
		if f.Severity != "" && fl.Severity != f.Severity {
			continue
		}
		out = append(out, fl)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *Memory) ResolveFraudFlag(_ context.Context, clubID, id, resolvedBy uuid.UUID, status, notes string) (*models.FraudFlag, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.flags {
		if m.flags[i].ID != id || m.flags[i].ClubID != clubID {
			continue
		}
		fl := &m.flags[i]
		if !models.ValidFlagTransition(fl.Status, status) {
			return nil, ErrInvalidTransition
		}
		fl.Status = status
		fl.ResolutionNotes = notes
		if status == models.FlagResolved || status == models.FlagDismissed {
			now := time.Now()
			by := resolvedBy
			fl.ResolvedBy = &by
			fl.ResolvedAt = &now
		}
		fl.UpdatedAt = time.Now()
		m.appendAudit(clubID, &resolvedBy, "fraud_flags", fl.ID, models.ActionUpdate)
		out := *fl
		return &out, nil
	}
	return nil, ErrNotFound
}

func (m *Memory) AuditLogs(_ context.Context, clubID uuid.UUID, f AuditFilter) ([]models.AuditLog, int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var matched []models.AuditLog
	for _, l := range m.logs {
		if l.ClubID != clubID {
			continue
		}
		if f.TableName != "" && l.TableName != f.TableName {
			continue
		}
		if f.Action != "" && l.Action != f.Action {
			continue
		}
		matched = append(matched, l)
	}
	sort.SliceStable(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })

	total := int64(len(matched))
	page, limit := normalizePage(f.Page, f.Limit, 50)
	return slicePage(matched, page, limit), total, nil
}

func (m *Memory) UserByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Email == email && u.IsActive {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

// ---- helpers ----

func formatReceiptFor(ev *models.Event, seq int64) string {
	return utils.FormatReceipt(ev.Code, seq)
}

func (m *Memory) donorNameLocked(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	for _, d := range m.donors {
		if d.ID == *id {
			return d.FullName
		}
	}
	return ""
}

func (m *Memory) userNameLocked(id uuid.UUID) string {
	for _, u := range m.users {
		if u.ID == id {
			return u.FullName
		}
	}
	return ""
}

func (m *Memory) appendAudit(clubID uuid.UUID, actorID *uuid.UUID, table string, recordID uuid.UUID, action string) {
	m.logs = append(m.logs, models.AuditLog{
		ID:        uuid.New(),
		ClubID:    clubID,
		ActorID:   actorID,
		TableName: table,
		RecordID:  recordID,
		Action:    action,
		CreatedAt: time.Now(),
	})
}

func slicePage[T any](items []T, page, limit int) []T {
	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end:end]
}
