package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetClub(t *testing.T) {
	r, _ := newTestAPI(t)

	w := doJSON(t, r, http.MethodGet, "/api/clubs", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	club := decode(t, w)["data"].(map[string]any)
	assert.Equal(t, "Durga Nagar Club", club["name"])
	assert.Equal(t, "Kolkata", club["city"])
}

func TestUpdateClubPartial(t *testing.T) {
	r, _ := newTestAPI(t)

	w := doJSON(t, r, http.MethodPatch, "/api/clubs", "", map[string]any{
		"phone": "033-2455-0000",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	club := decode(t, w)["data"].(map[string]any)
	assert.Equal(t, "033-2455-0000", club["phone"])
	assert.Equal(t, "Durga Nagar Club", club["name"]) // untouched

	w = doJSON(t, r, http.MethodPatch, "/api/clubs", "", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateClubPresidentOnly(t *testing.T) {
	r, _ := newTestAPI(t)

	w := doJSON(t, r, http.MethodPatch, "/api/clubs", tokenFor(t, "secretary"), map[string]any{
		"name": "Renamed Club",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}
