package middlewares

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/Infinite-Leo/CollectiQ/store"
)

func errorTestRouter(err error) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler(zap.NewNop(), true))
	r.GET("/boom", func(c *gin.Context) {
		_ = c.Error(err)
		c.Abort()
	})
	return r
}

func statusFor(err error) int {
	w := httptest.NewRecorder()
	errorTestRouter(err).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	return w.Code
}

func TestErrorHandlerMapsMalformedBodies(t *testing.T) {
	// Broken JSON from the decoder.
	var syntaxErr error = &json.SyntaxError{Offset: 12}
	assert.Equal(t, http.StatusBadRequest, statusFor(syntaxErr))

	// Wrong-typed field.
	var typeErr error = &json.UnmarshalTypeError{Value: "array", Type: reflect.TypeOf(""), Field: "amount"}
	assert.Equal(t, http.StatusBadRequest, statusFor(typeErr))

	// Empty and truncated payloads.
	assert.Equal(t, http.StatusBadRequest, statusFor(io.EOF))
	assert.Equal(t, http.StatusBadRequest, statusFor(io.ErrUnexpectedEOF))

	// Custom unmarshalers surface plain errors; the bind tag maps them.
	plain := errors.New("can't convert [] to decimal")
	assert.Equal(t, http.StatusInternalServerError, statusFor(plain))
	assert.Equal(t, http.StatusBadRequest, statusFor(Binding(plain)))
}

func TestErrorHandlerMapsStoreSentinels(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, statusFor(store.ErrNotFound))
	assert.Equal(t, http.StatusBadRequest, statusFor(store.ErrNoActiveEvent))
	assert.Equal(t, http.StatusConflict, statusFor(store.ErrDuplicate))
	assert.Equal(t, http.StatusConflict, statusFor(store.ErrVoided))
	assert.Equal(t, http.StatusBadRequest, statusFor(store.ErrInvalidTransition))
	assert.Equal(t, http.StatusBadRequest, statusFor(BadRequest("nope")))
}

func TestErrorHandlerHidesStackInProduction(t *testing.T) {
	w := httptest.NewRecorder()
	errorTestRouter(errors.New("kaboom")).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "stack")
	assert.NotContains(t, w.Body.String(), "kaboom")
}
