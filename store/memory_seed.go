package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/Infinite-Leo/CollectiQ/models"
	"github.com/Infinite-Leo/CollectiQ/utils"
)

// DevPassword is accepted for every seeded user when logging in against the
// memory store. Development only.
const DevPassword = "collectiq-dev"

// seed populates the store with the Durga Nagar fixtures: one club, one
// active event, zones, users, donors, houses with coordinates, ten days of
// donations with sequential receipts, and a few open fraud flags.
func (m *Memory) seed() {
	now := time.Now()
	hash, _ := bcrypt.GenerateFromPassword([]byte(DevPassword), bcrypt.DefaultCost)

	m.clubs = []models.Club{{
		ID:        DevClubID,
		Name:      "Durga Nagar Club",
		Slug:      "durga-nagar-club",
		Address:   "24 Pally Road, Durga Nagar",
		City:      "Kolkata",
		State:     "West Bengal",
		Pincode:   "700032",
		Phone:     "9876543210",
		CreatedAt: now,
		UpdatedAt: now,
	}}

	event := models.Event{
		ID:           DevEventID,
		ClubID:       DevClubID,
		Name:         "Durga Puja 2026",
		Code:         "DP26",
		Description:  "Annual Durga Puja collection drive",
		StartDate:    time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local),
		EndDate:      time.Date(2026, 10, 31, 0, 0, 0, 0, time.Local),
		Status:       models.EventActive,
		TargetAmount: decimal.NewFromInt(500000),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	m.events = []models.Event{event}

	zoneNames := []string{"Zone A", "Zone B", "Zone C", "Zone D"}
	zones := make(map[string]uuid.UUID, len(zoneNames))
	for _, name := range zoneNames {
		z := models.Zone{ID: uuid.New(), ClubID: DevClubID, Name: name, CreatedAt: now}
		zones[name] = z.ID
		m.zones = append(m.zones, z)
	}

	m.users = append(m.users, models.User{
		ID:           DevUserID,
		ClubID:       DevClubID,
		FullName:     "Debashis Chatterjee",
		Email:        "president@durganagar.com",
		Phone:        "9876543210",
		Role:         models.RolePresident,
		PasswordHash: string(hash),
		IsActive:     true,
		CreatedAt:    now,
	})

	collectorSeed := []struct {
		name, zone, phone string
		active            bool
	}{
		{"Ravi Kumar", "Zone A", "+91 98321 11111", true},
		{"Priya Sen", "Zone A", "+91 98321 22222", true},
		{"Ankit Sharma", "Zone B", "+91 98321 33333", true},
		{"Sneha Das", "Zone B", "+91 98321 44444", true},
		{"Manoj Ghosh", "Zone C", "+91 98321 55555", true},
		{"Suman Roy", "Zone D", "+91 65432 10987", false},
	}
	var collectors []models.User
	for i, c := range collectorSeed {
		u := models.User{
			ID:           uuid.New(),
			ClubID:       DevClubID,
			FullName:     c.name,
			Email:        fmt.Sprintf("collector%d@durganagar.com", i+1),
			Phone:        c.phone,
			Role:         models.RoleCollector,
			Zone:         c.zone,
			PasswordHash: string(hash),
			IsActive:     c.active,
			CreatedAt:    now,
		}
		m.users = append(m.users, u)
		if c.active {
			collectors = append(collectors, u)
		}
	}

	donorSeed := []struct{ name, phone, zone string }{
		{"Rajesh Banerjee", "+91 98321 45678", "Zone A"},
		{"Sunita Devi", "+91 98765 43210", "Zone B"},
		{"Amit Poddar", "+91 90876 54321", "Zone A"},
		{"Kavita Roy", "+91 87654 32109", "Zone C"},
		{"Dipak Mandal", "+91 76543 21098", "Zone B"},
		{"Meena Agarwal", "+91 65432 10987", "Zone A"},
		{"Suresh Patel", "+91 54321 09876", "Zone D"},
		{"Lalita Ghosh", "+91 43210 98765", "Zone A"},
	}
	for _, d := range donorSeed {
		m.donors = append(m.donors, models.Donor{
			ID:        uuid.New(),
			ClubID:    DevClubID,
			FullName:  d.name,
			Phone:     d.phone,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	houseSeed := []struct {
		address, donor, phone, zone, priority string
		lastYear                              int64
		collected                             bool
		lat, lng                              float64
	}{
		{"12/A, Maniktala Main Rd", "Rajesh Banerjee", "+91 98321 45678", "Zone A", models.PriorityHigh, 5000, true, 22.5876, 88.3775},
		{"45, Lake Town Block B", "Sunita Devi", "+91 98765 43210", "Zone B", models.PriorityNormal, 2000, true, 22.5997, 88.4013},
		{"78/3, Bagmari Rd", "Amit Poddar", "+91 90876 54321", "Zone A", models.PriorityCritical, 10000, false, 22.5742, 88.3741},
		{"22, Dum Dum Park", "Kavita Roy", "+91 87654 32109", "Zone C", models.PriorityNormal, 1500, false, 22.6197, 88.4098},
		{"56, Shyambazar 5 Point", "Dipak Mandal", "+91 76543 21098", "Zone B", models.PriorityHigh, 3000, false, 22.5953, 88.3730},
		{"9, Gariahat Rd South", "Meena Agarwal", "+91 65432 10987", "Zone A", models.PriorityNormal, 7500, true, 22.5168, 88.3665},
		{"101, Salt Lake Sector V", "Suresh Patel", "+91 54321 09876", "Zone D", models.PriorityLow, 2500, false, 22.5724, 88.4348},
		{"34, Jadavpur Station Rd", "Lalita Ghosh", "+91 43210 98765", "Zone A", models.PriorityNormal, 4000, true, 22.4988, 88.3706},
	}
	for i, h := range houseSeed {
		zoneID := zones[h.zone]
		eventID := event.ID
		lat, lng := h.lat, h.lng
		m.houses = append(m.houses, models.House{
			ID:             uuid.New(),
			ClubID:         DevClubID,
			EventID:        &eventID,
			ZoneID:         &zoneID,
			Address:        h.address,
			DonorName:      h.donor,
			Phone:          h.phone,
			LastYearAmount: decimal.NewFromInt(h.lastYear),
			IsCollected:    h.collected,
			Priority:       h.priority,
			Lat:            &lat,
			Lng:            &lng,
			CreatedAt:      now.Add(time.Duration(i) * time.Second),
			UpdatedAt:      now,
		})
	}

	// Ten days of donations with receipts continuing from 249, deterministic
	// so tests can rely on the aggregates.
	amounts := []int64{1000, 1500, 2000, 2500, 3000, 5000, 7500, 10000}
	modes := []string{models.ModeCash, models.ModeUPI, models.ModeBankTransfer}
	seq := int64(248)
	for dayOffset := 9; dayOffset >= 0; dayOffset-- {
		day := now.AddDate(0, 0, -dayOffset)
		for j := 0; j < 3; j++ {
			seq++
			donor := m.donors[int(seq)%len(m.donors)]
			collector := collectors[int(seq)%len(collectors)]
			status := models.StatusPaid
			if seq%10 == 0 {
				status = models.StatusDue
			}
			donorID := donor.ID
			collectedAt := time.Date(day.Year(), day.Month(), day.Day(), 8+j*3, int(seq)%60, 0, 0, time.Local)
			m.donations = append(m.donations, models.Donation{
				ID:            uuid.New(),
				ClubID:        DevClubID,
				EventID:       event.ID,
				DonorID:       &donorID,
				CollectorID:   collector.ID,
				Amount:        decimal.NewFromInt(amounts[int(seq)%len(amounts)]),
				PaymentMode:   modes[int(seq)%len(modes)],
				PaymentStatus: status,
				ReceiptNumber: utils.FormatReceipt(event.Code, seq),
				CollectedAt:   collectedAt,
				CreatedAt:     collectedAt,
			})
		}
	}
	// Continue issuing above the mock counter floor the SPA uses.
	if seq < 300 {
		seq = 300
	}
	m.receiptSeq[event.ID] = seq

	flagged := collectors[len(collectors)-1].ID
	lastDonation := m.donations[len(m.donations)-1]
	m.flags = []models.FraudFlag{
		{
			ID:         uuid.New(),
			ClubID:     DevClubID,
			DonationID: &lastDonation.ID,
			Severity:   models.SeverityHigh,
			Reason:     "Receipt amount differs from donor-reported amount",
			Status:     models.FlagOpen,
			CreatedAt:  now.Add(-2 * time.Hour),
			UpdatedAt:  now.Add(-2 * time.Hour),
		},
		{
			ID:            uuid.New(),
			ClubID:        DevClubID,
			FlaggedUserID: &flagged,
			Severity:      models.SeverityMedium,
			Reason:        "Collection recorded far outside assigned zone",
			Status:        models.FlagInvestigating,
			CreatedAt:     now.Add(-26 * time.Hour),
			UpdatedAt:     now.Add(-20 * time.Hour),
		},
		{
			ID:            uuid.New(),
			ClubID:        DevClubID,
			FlaggedUserID: &flagged,
			Severity:      models.SeverityLow,
			Reason:        "Unusually long gap between consecutive receipts",
			Status:        models.FlagOpen,
			CreatedAt:     now.Add(-50 * time.Hour),
			UpdatedAt:     now.Add(-50 * time.Hour),
		},
	}
}
