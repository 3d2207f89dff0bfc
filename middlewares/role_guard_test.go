package middlewares

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roleTestRouter(role string, allowed ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if role != "" {
			c.Set(CtxRole, role)
		}
	})
	r.PATCH("/guarded", RequireRoles(allowed...), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestRequireRolesAllows(t *testing.T) {
	r := roleTestRouter("president", "president", "secretary")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/guarded", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRequireRolesRejectsWithDetails(t *testing.T) {
	r := roleTestRouter("collector", "president")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/guarded", nil))
	require.Equal(t, http.StatusForbidden, w.Code)

	var body struct {
		Error    string   `json:"error"`
		Required []string `json:"required"`
		Current  string   `json:"current"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Insufficient permissions", body.Error)
	assert.Equal(t, []string{"president"}, body.Required)
	assert.Equal(t, "collector", body.Current)
}

func TestRequireRolesRejectsUnauthenticated(t *testing.T) {
	r := roleTestRouter("", "president")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/guarded", nil))
	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), `"current":"none"`)
}
