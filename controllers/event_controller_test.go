package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListEvents(t *testing.T) {
	r, _ := newTestAPI(t)

	w := doJSON(t, r, http.MethodGet, "/api/events", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	events := decode(t, w)["data"].([]any)
	require.Len(t, events, 1)
	ev := events[0].(map[string]any)
	assert.Equal(t, "Durga Puja 2026", ev["name"])
	assert.Equal(t, "DP26", ev["code"])
	assert.Equal(t, "active", ev["status"])
}

func TestCreateEvent(t *testing.T) {
	r, _ := newTestAPI(t)

	w := doJSON(t, r, http.MethodPost, "/api/events", "", map[string]any{
		"name":          "Kali Puja 2026",
		"code":          "KP26",
		"start_date":    "2026-11-05T00:00:00Z",
		"end_date":      "2026-11-10T00:00:00Z",
		"target_amount": 100000,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	ev := decode(t, w)["data"].(map[string]any)
	assert.Equal(t, "KP26", ev["code"])
	assert.Equal(t, "active", ev["status"])
	assert.NotEmpty(t, ev["id"])

	// Missing dates fail validation.
	w = doJSON(t, r, http.MethodPost, "/api/events", "", map[string]any{"name": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateEventStatus(t *testing.T) {
	r, _ := newTestAPI(t)

	w := doJSON(t, r, http.MethodGet, "/api/events", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	id := decode(t, w)["data"].([]any)[0].(map[string]any)["id"].(string)

	w = doJSON(t, r, http.MethodPatch, "/api/events/"+id, "", map[string]any{"status": "completed"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "completed", decode(t, w)["data"].(map[string]any)["status"])

	w = doJSON(t, r, http.MethodPatch, "/api/events/"+id, "", map[string]any{"status": "paused"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEventWritesRequireSecretaryOrPresident(t *testing.T) {
	r, _ := newTestAPI(t)

	w := doJSON(t, r, http.MethodPost, "/api/events", tokenFor(t, "collector"), map[string]any{
		"name":       "Rath Yatra",
		"start_date": "2027-06-20T00:00:00Z",
		"end_date":   "2027-06-28T00:00:00Z",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}
