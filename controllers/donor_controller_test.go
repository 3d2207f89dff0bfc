package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchDonors(t *testing.T) {
	r, _ := newTestAPI(t)

	w := doJSON(t, r, http.MethodGet, "/api/donors?query=banerjee", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	donors := decode(t, w)["data"].([]any)
	require.Len(t, donors, 1)
	assert.Equal(t, "Rajesh Banerjee", donors[0].(map[string]any)["full_name"])

	w = doJSON(t, r, http.MethodGet, "/api/donors?limit=3", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["data"].([]any), 3)
}

func TestCreateDonorThenFindIt(t *testing.T) {
	r, _ := newTestAPI(t)

	w := doJSON(t, r, http.MethodPost, "/api/donors", "", map[string]any{
		"full_name": "Bimal Chakraborty",
		"phone":     "+91 11111 22222",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.NotEmpty(t, decode(t, w)["data"].(map[string]any)["id"])

	w = doJSON(t, r, http.MethodGet, "/api/donors?query=chakraborty", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["data"].([]any), 1)
}

func TestCreateDonorRequiresName(t *testing.T) {
	r, _ := newTestAPI(t)

	w := doJSON(t, r, http.MethodPost, "/api/donors", "", map[string]any{"phone": "123"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
