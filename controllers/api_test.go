package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Infinite-Leo/CollectiQ/config"
	"github.com/Infinite-Leo/CollectiQ/middlewares"
	"github.com/Infinite-Leo/CollectiQ/routes"
	"github.com/Infinite-Leo/CollectiQ/store"
	"github.com/Infinite-Leo/CollectiQ/utils"
)

const testSecret = "test-secret"

// newTestAPI wires the full router over a fresh memory store, the same way
// main does minus CORS and rate limiting. The dev bypass is active, so
// requests without a token run as the seeded president.
func newTestAPI(t *testing.T) (*gin.Engine, *store.Memory) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	m := store.NewMemory()
	cfg := &config.Config{
		AppEnv:    "development",
		JWTSecret: testSecret,
		StoreKind: "memory",
	}

	r := gin.New()
	r.Use(middlewares.ErrorHandler(zap.NewNop(), false))
	routes.Setup(r, m, cfg)
	return r, m
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// doRaw sends the body verbatim, for requests that are deliberately not
// valid JSON.
func doRaw(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}

func tokenFor(t *testing.T, role string) string {
	t.Helper()
	tok, err := utils.GenerateToken([]byte(testSecret), utils.Claims{
		UserID: uuid.New(),
		ClubID: store.DevClubID,
		Role:   role,
	}, time.Hour)
	require.NoError(t, err)
	return tok
}
