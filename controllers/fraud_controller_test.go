package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListFraudFlags(t *testing.T) {
	r, _ := newTestAPI(t)

	w := doJSON(t, r, http.MethodGet, "/api/fraud", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	flags := decode(t, w)["data"].([]any)
	assert.Len(t, flags, 3)

	w = doJSON(t, r, http.MethodGet, "/api/fraud?status=open", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	open := decode(t, w)["data"].([]any)
	assert.Len(t, open, 2)
	for _, f := range open {
		assert.Equal(t, "open", f.(map[string]any)["status"])
	}
}

func TestListFraudForbiddenForCollector(t *testing.T) {
	r, _ := newTestAPI(t)

	w := doJSON(t, r, http.MethodGet, "/api/fraud", tokenFor(t, "collector"), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestListFraudAllowedForCashier(t *testing.T) {
	r, _ := newTestAPI(t)

	w := doJSON(t, r, http.MethodGet, "/api/fraud", tokenFor(t, "cashier"), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestResolveFraudFlag(t *testing.T) {
	r, _ := newTestAPI(t)

	w := doJSON(t, r, http.MethodGet, "/api/fraud?status=open", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	id := decode(t, w)["data"].([]any)[0].(map[string]any)["id"].(string)

	w = doJSON(t, r, http.MethodPatch, "/api/fraud/"+id, "", map[string]any{
		"status":           "resolved",
		"resolution_notes": "verified with donor over phone",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	flag := decode(t, w)["data"].(map[string]any)
	assert.Equal(t, "resolved", flag["status"])
	assert.NotNil(t, flag["resolved_by"])
	assert.NotNil(t, flag["resolved_at"])

	// Resolved is terminal.
	w = doJSON(t, r, http.MethodPatch, "/api/fraud/"+id, "", map[string]any{"status": "investigating"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResolveFraudFlagValidation(t *testing.T) {
	r, _ := newTestAPI(t)

	w := doJSON(t, r, http.MethodGet, "/api/fraud", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	id := decode(t, w)["data"].([]any)[0].(map[string]any)["id"].(string)

	// "open" is not a target status anyone can set.
	w = doJSON(t, r, http.MethodPatch, "/api/fraud/"+id, "", map[string]any{"status": "open"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Only the president may update flags.
	w = doJSON(t, r, http.MethodPatch, "/api/fraud/"+id, tokenFor(t, "cashier"),
		map[string]any{"status": "resolved"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}
