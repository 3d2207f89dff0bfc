package store

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Infinite-Leo/CollectiQ/models"
	"github.com/Infinite-Leo/CollectiQ/utils"
)

// Postgres is the gorm-backed Store. Uniqueness of receipt numbers is
// guaranteed by locking the club/event sequence row FOR UPDATE inside the
// donation transaction; the unique index on (club_id, event_id,
// receipt_number) is the backstop.
type Postgres struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *Postgres {
	return &Postgres{db: db}
}

func (s *Postgres) ClubByID(ctx context.Context, clubID uuid.UUID) (*models.Club, error) {
	var club models.Club
	if err := s.db.WithContext(ctx).First(&club, "id = ?", clubID).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &club, nil
}

func (s *Postgres) UpdateClub(ctx context.Context, clubID uuid.UUID, updates map[string]any) (*models.Club, error) {
	var club models.Club
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&club, "id = ?", clubID).Error; err != nil {
			return wrapNotFound(err)
		}
		old := club
		if err := tx.Model(&club).Updates(updates).Error; err != nil {
			return err
		}
		return s.audit(tx, clubID, nil, "clubs", club.ID, models.ActionUpdate, old, club)
	})
	if err != nil {
		return nil, err
	}
	return &club, nil
}

func (s *Postgres) Events(ctx context.Context, clubID uuid.UUID) ([]models.Event, error) {
	var events []models.Event
	err := s.db.WithContext(ctx).
		Where("club_id = ?", clubID).
		Order("created_at DESC").
		Find(&events).Error
	return events, err
}

func (s *Postgres) ActiveEvent(ctx context.Context, clubID uuid.UUID) (*models.Event, error) {
	var ev models.Event
	err := s.db.WithContext(ctx).
		Where("club_id = ? AND status = ?", clubID, models.EventActive).
		Order("created_at DESC").
		First(&ev).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoActiveEvent
	}
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

func (s *Postgres) CreateEvent(ctx context.Context, ev *models.Event) error {
	if ev.Code == "" {
		ev.Code = utils.EventCode(ev.Name, ev.StartDate)
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(ev).Error; err != nil {
			return err
		}
		return s.audit(tx, ev.ClubID, nil, "events", ev.ID, models.ActionInsert, nil, ev)
	})
}

func (s *Postgres) UpdateEvent(ctx context.Context, clubID, id uuid.UUID, updates map[string]any) (*models.Event, error) {
	var ev models.Event
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("club_id = ?", clubID).First(&ev, "id = ?", id).Error; err != nil {
			return wrapNotFound(err)
		}
		old := ev
		if err := tx.Model(&ev).Updates(updates).Error; err != nil {
			return err
		}
		return s.audit(tx, clubID, nil, "events", ev.ID, models.ActionUpdate, old, ev)
	})
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

func (s *Postgres) Donations(ctx context.Context, clubID uuid.UUID, f DonationFilter) ([]models.Donation, int64, error) {
	page, limit := normalizePage(f.Page, f.Limit, 50)

	q := s.db.WithContext(ctx).Model(&models.Donation{}).
		Where("donations.club_id = ? AND donations.is_void = false", clubID)
	if f.EventID != nil {
		q = q.Where("donations.event_id = ?", *f.EventID)
	}
	if f.PaymentStatus != "" {
		q = q.Where("donations.payment_status = ?", f.PaymentStatus)
	}
	if f.PaymentMode != "" {
		q = q.Where("donations.payment_mode = ?", f.PaymentMode)
	}
	if f.CollectorID != nil {
		q = q.Where("donations.collector_id = ?", *f.CollectorID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var donations []models.Donation
	err := q.
		Select("donations.*, donors.full_name AS donor_name, users.full_name AS collector_name").
		Joins("LEFT JOIN donors ON donors.id = donations.donor_id").
		Joins("LEFT JOIN users ON users.id = donations.collector_id").
		Order("donations.collected_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&donations).Error
	return donations, total, err
}

func (s *Postgres) DonationByID(ctx context.Context, clubID, id uuid.UUID) (*models.Donation, error) {
	var d models.Donation
	err := s.db.WithContext(ctx).
		Where("club_id = ?", clubID).
		First(&d, "id = ?", id).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &d, nil
}

func (s *Postgres) RecordDonation(ctx context.Context, clubID, collectorID uuid.UUID, in DonationInput) (*models.Donation, error) {
	var ev *models.Event
	var err error
	if in.EventID != nil {
		var found models.Event
		if err = s.db.WithContext(ctx).Where("club_id = ?", clubID).First(&found, "id = ?", *in.EventID).Error; err != nil {
			return nil, wrapNotFound(err)
		}
		ev = &found
	} else {
		if ev, err = s.ActiveEvent(ctx, clubID); err != nil {
			return nil, err
		}
	}

	donation := models.Donation{
		ClubID:         clubID,
		EventID:        ev.ID,
		DonorID:        in.DonorID,
		CollectorID:    collectorID,
		ZoneID:         in.ZoneID,
		HouseID:        in.HouseID,
		Amount:         in.Amount,
		PaymentMode:    in.PaymentMode,
		PaymentStatus:  in.PaymentStatus,
		IdempotencyKey: in.IdempotencyKey,
		Notes:          in.Notes,
		CollectionLat:  in.CollectionLat,
		CollectionLng:  in.CollectionLng,
		DeviceID:       in.DeviceID,
		CollectedAt:    time.Now(),
	}

	// Sequence lock + retry in case a concurrent writer still wins the
	// unique index race.
	const maxRetries = 3
	for attempt := 0; attempt < maxRetries; attempt++ {
		err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var seq models.ReceiptSequence
			seqErr := tx.
				Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("club_id = ? AND event_id = ?", clubID, ev.ID).
				First(&seq).Error
			if errors.Is(seqErr, gorm.ErrRecordNotFound) {
				seq = models.ReceiptSequence{ClubID: clubID, EventID: ev.ID}
				if seqErr = tx.Create(&seq).Error; seqErr != nil {
					return seqErr
				}
			} else if seqErr != nil {
				return seqErr
			}

			seq.LastValue++
			if err := tx.Model(&models.ReceiptSequence{}).
				Where("club_id = ? AND event_id = ?", clubID, ev.ID).
				Update("last_value", seq.LastValue).Error; err != nil {
				return err
			}

			donation.ID = uuid.Nil
			donation.ReceiptNumber = utils.FormatReceipt(ev.Code, seq.LastValue)
			if err := tx.Create(&donation).Error; err != nil {
				return err
			}

			// Same transaction as the insert: a crash can never leave the
			// donation recorded with the house still pending.
			if in.HouseID != nil {
				if err := tx.Model(&models.House{}).
					Where("id = ? AND club_id = ?", *in.HouseID, clubID).
					Update("is_collected", true).Error; err != nil {
					return err
				}
			}

			return s.audit(tx, clubID, &collectorID, "donations", donation.ID, models.ActionInsert, nil, donation)
		})

		if isReceiptCollision(err) {
			continue
		}
		break
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return &donation, nil
}

func (s *Postgres) VoidDonation(ctx context.Context, clubID, donationID, adjustedBy uuid.UUID, reason string) (*models.DonationAdjustment, error) {
	adj := models.DonationAdjustment{
		ClubID:         clubID,
		DonationID:     donationID,
		AdjustedBy:     adjustedBy,
		AdjustmentType: models.AdjustmentVoid,
		Reason:         reason,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var d models.Donation
		if err := tx.Where("club_id = ?", clubID).First(&d, "id = ?", donationID).Error; err != nil {
			return wrapNotFound(err)
		}
		if d.IsVoid {
			return ErrVoided
		}
		if err := tx.Create(&adj).Error; err != nil {
			return err
		}
		// The only write ever applied to a persisted donation: the
		// denormalized void marker. Amount and receipt stay untouched.
		if err := tx.Model(&models.Donation{}).
			Where("id = ? AND club_id = ?", donationID, clubID).
			Update("is_void", true).Error; err != nil {
			return err
		}
		return s.audit(tx, clubID, &adjustedBy, "donation_adjustments", adj.ID, models.ActionInsert, nil, adj)
	})
	if err != nil {
		return nil, err
	}
	return &adj, nil
}

func (s *Postgres) Donors(ctx context.Context, clubID uuid.UUID, query string, limit int) ([]models.Donor, error) {
	if limit <= 0 {
		limit = 10
	}
	q := s.db.WithContext(ctx).Where("club_id = ?", clubID).Limit(limit)
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("full_name ILIKE ? OR phone ILIKE ?", like, like)
	}
	var donors []models.Donor
	err := q.Find(&donors).Error
	return donors, err
}

func (s *Postgres) CreateDonor(ctx context.Context, actorID uuid.UUID, d *models.Donor) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(d).Error; err != nil {
			return err
		}
		return s.audit(tx, d.ClubID, &actorID, "donors", d.ID, models.ActionInsert, nil, d)
	})
}

func (s *Postgres) Houses(ctx context.Context, clubID uuid.UUID, f HouseFilter) ([]models.House, int64, error) {
	page, limit := normalizePage(f.Page, f.Limit, 100)

	q := s.db.WithContext(ctx).Model(&models.House{}).Where("club_id = ?", clubID)
	if f.EventID != nil {
		q = q.Where("event_id = ?", *f.EventID)
	}
	if f.ZoneID != nil {
		q = q.Where("zone_id = ?", *f.ZoneID)
	}
	if f.IsCollected != nil {
		q = q.Where("is_collected = ?", *f.IsCollected)
	}
	if f.Priority != "" {
		q = q.Where("priority = ?", f.Priority)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var houses []models.House
	err := q.
		Order("CASE priority WHEN 'critical' THEN 3 WHEN 'high' THEN 2 WHEN 'normal' THEN 1 ELSE 0 END DESC").
		Order("created_at ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&houses).Error
	return houses, total, err
}

func (s *Postgres) CreateHouse(ctx context.Context, actorID uuid.UUID, h *models.House) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(h).Error; err != nil {
			return err
		}
		return s.audit(tx, h.ClubID, &actorID, "houses", h.ID, models.ActionInsert, nil, h)
	})
}

func (s *Postgres) CreateHouses(ctx context.Context, actorID uuid.UUID, hs []models.House) error {
	if len(hs) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&hs).Error; err != nil {
			return err
		}
		for i := range hs {
			if err := s.audit(tx, hs[i].ClubID, &actorID, "houses", hs[i].ID, models.ActionInsert, nil, hs[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Postgres) UpdateHouse(ctx context.Context, clubID, id uuid.UUID, updates map[string]any) (*models.House, error) {
	var h models.House
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("club_id = ?", clubID).First(&h, "id = ?", id).Error; err != nil {
			return wrapNotFound(err)
		}
		old := h
		if err := tx.Model(&h).Updates(updates).Error; err != nil {
			return err
		}
		return s.audit(tx, clubID, nil, "houses", h.ID, models.ActionUpdate, old, h)
	})
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (s *Postgres) FraudFlags(ctx context.Context, clubID uuid.UUID, f FraudFilter) ([]models.FraudFlag, error) {
	q := s.db.WithContext(ctx).Where("club_id = ?", clubID).Order("created_at DESC")
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Severity != "" {
		q = q.Where("severity = ?", f.Severity)
	}
	var flags []models.FraudFlag
	err := q.Find(&flags).Error
	return flags, err
}

func (s *Postgres) ResolveFraudFlag(ctx context.Context, clubID, id, resolvedBy uuid.UUID, status, notes string) (*models.FraudFlag, error) {
	var flag models.FraudFlag
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("club_id = ?", clubID).First(&flag, "id = ?", id).Error; err != nil {
			return wrapNotFound(err)
		}
		if !models.ValidFlagTransition(flag.Status, status) {
			return ErrInvalidTransition
		}
		old := flag
		now := time.Now()
		updates := map[string]any{"status": status, "resolution_notes": notes}
		if status == models.FlagResolved || status == models.FlagDismissed {
			updates["resolved_by"] = &resolvedBy
			updates["resolved_at"] = &now
		}
		if err := tx.Model(&flag).Updates(updates).Error; err != nil {
			return err
		}
		return s.audit(tx, clubID, &resolvedBy, "fraud_flags", flag.ID, models.ActionUpdate, old, flag)
	})
	if err != nil {
		return nil, err
	}
	return &flag, nil
}

func (s *Postgres) AuditLogs(ctx context.Context, clubID uuid.UUID, f AuditFilter) ([]models.AuditLog, int64, error) {
	page, limit := normalizePage(f.Page, f.Limit, 50)

	q := s.db.WithContext(ctx).Model(&models.AuditLog{}).Where("club_id = ?", clubID)
	if f.TableName != "" {
		q = q.Where("table_name = ?", f.TableName)
	}
	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.AuditLog
	err := q.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&logs).Error
	return logs, total, err
}

func (s *Postgres) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.db.WithContext(ctx).
		Where("email = ? AND is_active = true", email).
		First(&u).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &u, nil
}

// ---- helpers ----

func (s *Postgres) audit(tx *gorm.DB, clubID uuid.UUID, actorID *uuid.UUID, table string, recordID uuid.UUID, action string, oldV, newV any) error {
	log := models.AuditLog{
		ClubID:    clubID,
		ActorID:   actorID,
		TableName: table,
		RecordID:  recordID,
		Action:    action,
	}
	if oldV != nil {
		b, err := json.Marshal(oldV)
		if err != nil {
			return err
		}
		log.OldValues = datatypes.JSON(b)
	}
	if newV != nil {
		b, err := json.Marshal(newV)
		if err != nil {
			return err
		}
		log.NewValues = datatypes.JSON(b)
	}
	return tx.Create(&log).Error
}

func normalizePage(page, limit, defLimit int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = defLimit
	}
	return page, limit
}

func wrapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func isReceiptCollision(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" &&
		strings.Contains(pgErr.ConstraintName, "idx_donations_receipt")
}
