package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditTrailCapturesDonation(t *testing.T) {
	r, _ := newTestAPI(t)

	w := doJSON(t, r, http.MethodPost, "/api/donations", "", map[string]any{"amount": 100})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/audit?table_name=donations&action=INSERT", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.EqualValues(t, 1, body["total"])
	entry := body["data"].([]any)[0].(map[string]any)
	assert.Equal(t, "donations", entry["table_name"])
	assert.Equal(t, "INSERT", entry["action"])
}

func TestAuditListForbiddenForCollector(t *testing.T) {
	r, _ := newTestAPI(t)

	w := doJSON(t, r, http.MethodGet, "/api/audit", tokenFor(t, "collector"), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
