package store

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Infinite-Leo/CollectiQ/models"
)

func TestTenantIsolationOnDonationLists(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	// A second club with its own active event and one donation.
	otherClub := uuid.New()
	otherEvent := &models.Event{ClubID: otherClub, Name: "Kali Puja 2026", Code: "KP26", Status: models.EventActive}
	require.NoError(t, m.CreateEvent(ctx, otherEvent))
	_, err := m.RecordDonation(ctx, otherClub, uuid.New(), DonationInput{
		Amount:        decimal.NewFromInt(999),
		PaymentMode:   models.ModeCash,
		PaymentStatus: models.StatusPaid,
	})
	require.NoError(t, err)

	donations, _, err := m.Donations(ctx, DevClubID, DonationFilter{Limit: 1000})
	require.NoError(t, err)
	require.NotEmpty(t, donations)
	for _, d := range donations {
		assert.Equal(t, DevClubID, d.ClubID)
	}

	others, total, err := m.Donations(ctx, otherClub, DonationFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, otherClub, others[0].ClubID)
}

func TestReceiptNumbersUniqueAndIncreasing(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	seen := make(map[string]bool)
	var last string
	for i := 0; i < 20; i++ {
		d, err := m.RecordDonation(ctx, DevClubID, DevUserID, DonationInput{
			Amount:        decimal.NewFromInt(100),
			PaymentMode:   models.ModeCash,
			PaymentStatus: models.StatusPaid,
		})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(d.ReceiptNumber, "DNC-DP26-"))
		assert.False(t, seen[d.ReceiptNumber], "receipt %s issued twice", d.ReceiptNumber)
		seen[d.ReceiptNumber] = true
		if last != "" {
			// Zero-padded to six digits, so string order matches numeric order.
			assert.Greater(t, d.ReceiptNumber, last)
		}
		last = d.ReceiptNumber
	}
}

func TestVoidKeepsOriginalDonationIntact(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	d, err := m.RecordDonation(ctx, DevClubID, DevUserID, DonationInput{
		Amount:        decimal.NewFromInt(2500),
		PaymentMode:   models.ModeUPI,
		PaymentStatus: models.StatusPaid,
	})
	require.NoError(t, err)
	assert.False(t, d.IsVoid)

	adj, err := m.VoidDonation(ctx, DevClubID, d.ID, DevUserID, "duplicate receipt")
	require.NoError(t, err)
	assert.Equal(t, models.AdjustmentVoid, adj.AdjustmentType)
	assert.Equal(t, d.ID, adj.DonationID)

	// Original row still retrievable with original amount and receipt.
	got, err := m.DonationByID(ctx, DevClubID, d.ID)
	require.NoError(t, err)
	assert.True(t, got.IsVoid)
	assert.True(t, got.Amount.Equal(decimal.NewFromInt(2500)))
	assert.Equal(t, d.ReceiptNumber, got.ReceiptNumber)

	// Voided rows disappear from listings.
	donations, _, err := m.Donations(ctx, DevClubID, DonationFilter{Limit: 1000})
	require.NoError(t, err)
	for _, row := range donations {
		assert.NotEqual(t, d.ID, row.ID)
	}

	// Double void is rejected.
	_, err = m.VoidDonation(ctx, DevClubID, d.ID, DevUserID, "again")
	assert.ErrorIs(t, err, ErrVoided)
}

func TestRecordDonationWithoutActiveEvent(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	club := uuid.New() // fresh club, no events at all
	_, err := m.RecordDonation(ctx, club, uuid.New(), DonationInput{
		Amount:        decimal.NewFromInt(500),
		PaymentMode:   models.ModeCash,
		PaymentStatus: models.StatusPaid,
	})
	assert.ErrorIs(t, err, ErrNoActiveEvent)
}

func TestIdempotencyKeyRejectsDuplicates(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	key := "device42-00017"
	in := DonationInput{
		Amount:         decimal.NewFromInt(750),
		PaymentMode:    models.ModeCash,
		PaymentStatus:  models.StatusPaid,
		IdempotencyKey: &key,
	}
	_, err := m.RecordDonation(ctx, DevClubID, DevUserID, in)
	require.NoError(t, err)

	_, err = m.RecordDonation(ctx, DevClubID, DevUserID, in)
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestRecordDonationMarksHouseCollected(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	collected := false
	houses, _, err := m.Houses(ctx, DevClubID, HouseFilter{IsCollected: &collected})
	require.NoError(t, err)
	require.NotEmpty(t, houses)
	target := houses[0]

	_, err = m.RecordDonation(ctx, DevClubID, DevUserID, DonationInput{
		HouseID:       &target.ID,
		Amount:        decimal.NewFromInt(1000),
		PaymentMode:   models.ModeCash,
		PaymentStatus: models.StatusPaid,
	})
	require.NoError(t, err)

	yes := true
	nowCollected, _, err := m.Houses(ctx, DevClubID, HouseFilter{IsCollected: &yes})
	require.NoError(t, err)
	found := false
	for _, h := range nowCollected {
		if h.ID == target.ID {
			found = true
		}
	}
	assert.True(t, found, "house should be marked collected after the donation")
}

func TestPaginationIsIdempotent(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	first, total1, err := m.Donations(ctx, DevClubID, DonationFilter{Page: 2, Limit: 5})
	require.NoError(t, err)
	second, total2, err := m.Donations(ctx, DevClubID, DonationFilter{Page: 2, Limit: 5})
	require.NoError(t, err)

	assert.Equal(t, total1, total2)
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
	}
}

func TestHouseOrderingByPriority(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	houses, _, err := m.Houses(ctx, DevClubID, HouseFilter{})
	require.NoError(t, err)
	require.NotEmpty(t, houses)
	for i := 1; i < len(houses); i++ {
		assert.GreaterOrEqual(t,
			models.PriorityRank(houses[i-1].Priority),
			models.PriorityRank(houses[i].Priority))
	}
}

func TestFraudFlagTransitions(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	flags, err := m.FraudFlags(ctx, DevClubID, FraudFilter{Status: models.FlagOpen})
	require.NoError(t, err)
	require.NotEmpty(t, flags)
	flag := flags[0]

	// open -> investigating leaves no resolver.
	got, err := m.ResolveFraudFlag(ctx, DevClubID, flag.ID, DevUserID, models.FlagInvestigating, "")
	require.NoError(t, err)
	assert.Nil(t, got.ResolvedBy)

	// investigating -> dismissed is not a valid transition.
	_, err = m.ResolveFraudFlag(ctx, DevClubID, flag.ID, DevUserID, models.FlagDismissed, "")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// investigating -> resolved records resolver and timestamp.
	got, err = m.ResolveFraudFlag(ctx, DevClubID, flag.ID, DevUserID, models.FlagResolved, "checked with donor")
	require.NoError(t, err)
	require.NotNil(t, got.ResolvedBy)
	assert.Equal(t, DevUserID, *got.ResolvedBy)
	assert.NotNil(t, got.ResolvedAt)
	assert.Equal(t, "checked with donor", got.ResolutionNotes)

	// Terminal states accept no further updates.
	_, err = m.ResolveFraudFlag(ctx, DevClubID, flag.ID, DevUserID, models.FlagInvestigating, "")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestDashboardCountsOnlyPaidNonVoid(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	before, err := m.DashboardSummary(ctx, DevClubID, nil)
	require.NoError(t, err)

	paid, err := m.RecordDonation(ctx, DevClubID, DevUserID, DonationInput{
		Amount:        decimal.NewFromInt(3000),
		PaymentMode:   models.ModeCash,
		PaymentStatus: models.StatusPaid,
	})
	require.NoError(t, err)

	_, err = m.RecordDonation(ctx, DevClubID, DevUserID, DonationInput{
		Amount:        decimal.NewFromInt(8000),
		PaymentMode:   models.ModeCash,
		PaymentStatus: models.StatusDue,
	})
	require.NoError(t, err)

	after, err := m.DashboardSummary(ctx, DevClubID, nil)
	require.NoError(t, err)
	assert.True(t, after.TotalCollection.Sub(before.TotalCollection).Equal(decimal.NewFromInt(3000)),
		"only the paid donation should count")
	assert.Equal(t, before.TotalDonations+1, after.TotalDonations)

	// Voiding removes it from the totals.
	_, err = m.VoidDonation(ctx, DevClubID, paid.ID, DevUserID, "test")
	require.NoError(t, err)
	final, err := m.DashboardSummary(ctx, DevClubID, nil)
	require.NoError(t, err)
	assert.True(t, final.TotalCollection.Equal(before.TotalCollection))
}

func TestPaymentSplitPercentsSumNear100(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	rows, err := m.PaymentSplit(ctx, DevClubID, nil)
	require.NoError(t, err)
	require.NotEmpty(t, rows)

	var sum float64
	for _, r := range rows {
		sum += r.Percent
	}
	assert.InDelta(t, 100, sum, 0.5)
}

func TestDonorSearch(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	byName, err := m.Donors(ctx, DevClubID, "banerjee", 10)
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Rajesh Banerjee", byName[0].FullName)

	byPhone, err := m.Donors(ctx, DevClubID, "98765 43210", 10)
	require.NoError(t, err)
	require.Len(t, byPhone, 1)
	assert.Equal(t, "Sunita Devi", byPhone[0].FullName)

	all, err := m.Donors(ctx, DevClubID, "", 3)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestAuditLogRecordsMutations(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	_, err := m.RecordDonation(ctx, DevClubID, DevUserID, DonationInput{
		Amount:        decimal.NewFromInt(100),
		PaymentMode:   models.ModeCash,
		PaymentStatus: models.StatusPaid,
	})
	require.NoError(t, err)

	logs, total, err := m.AuditLogs(ctx, DevClubID, AuditFilter{TableName: "donations", Action: models.ActionInsert})
	require.NoError(t, err)
	assert.Positive(t, total)
	for _, l := range logs {
		assert.Equal(t, "donations", l.TableName)
		assert.Equal(t, models.ActionInsert, l.Action)
		assert.Equal(t, DevClubID, l.ClubID)
	}
}

func TestCollectorStatsRankedByAmount(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	stats, err := m.CollectorStats(ctx, DevClubID, nil)
	require.NoError(t, err)
	require.NotEmpty(t, stats)
	for i := 1; i < len(stats); i++ {
		assert.True(t, stats[i-1].Amount.GreaterThanOrEqual(stats[i].Amount),
			fmt.Sprintf("stats not sorted at %d", i))
	}
	for _, st := range stats {
		assert.NotEmpty(t, st.FullName)
	}
}
