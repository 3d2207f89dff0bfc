package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardSummaryShape(t *testing.T) {
	r, _ := newTestAPI(t)

	w := doJSON(t, r, http.MethodGet, "/api/dashboard/summary", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Flat response, no {data} wrapper.
	body := decode(t, w)
	for _, key := range []string{
		"total_collection", "total_donations",
		"today_collection", "today_donations",
		"total_houses", "collected_houses", "pending_houses",
	} {
		assert.Contains(t, body, key)
	}
	assert.NotContains(t, body, "data")
	assert.EqualValues(t, 8, body["total_houses"])
	assert.EqualValues(t, 4, body["collected_houses"])
	assert.EqualValues(t, 4, body["pending_houses"])
}

func TestDashboardCollectorStats(t *testing.T) {
	r, _ := newTestAPI(t)

	w := doJSON(t, r, http.MethodGet, "/api/dashboard/collector-stats", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	stats := decode(t, w)["data"].([]any)
	require.NotEmpty(t, stats)
	for _, s := range stats {
		row := s.(map[string]any)
		assert.NotEmpty(t, row["full_name"])
		assert.NotEmpty(t, row["collector_id"])
	}
}

func TestDashboardPaymentSplit(t *testing.T) {
	r, _ := newTestAPI(t)

	w := doJSON(t, r, http.MethodGet, "/api/dashboard/payment-split", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	rows := decode(t, w)["data"].([]any)
	require.NotEmpty(t, rows)
	var pct float64
	for _, s := range rows {
		pct += s.(map[string]any)["percent"].(float64)
	}
	assert.InDelta(t, 100, pct, 0.5)
}

func TestDashboardTrend(t *testing.T) {
	r, _ := newTestAPI(t)

	w := doJSON(t, r, http.MethodGet, "/api/dashboard/trend?days=30", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	points := decode(t, w)["data"].([]any)
	// The seed writes ten consecutive days of donations.
	require.Len(t, points, 10)
	var prev string
	for _, p := range points {
		pt := p.(map[string]any)
		date := pt["date"].(string)
		assert.Greater(t, date, prev, "trend should be date ascending")
		prev = date
		assert.Positive(t, pt["count"].(float64))
	}
}

func TestDashboardAvailableToAllRoles(t *testing.T) {
	r, _ := newTestAPI(t)

	for _, role := range []string{"collector", "cashier", "secretary"} {
		w := doJSON(t, r, http.MethodGet, "/api/dashboard/summary", tokenFor(t, role), nil)
		assert.Equal(t, http.StatusOK, w.Code, "role %s", role)
	}
}
