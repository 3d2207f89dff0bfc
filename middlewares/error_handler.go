package middlewares

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/Infinite-Leo/CollectiQ/store"
)

// ErrorHandler is the single place request errors become responses. Handlers
// push errors with c.Error and return; this middleware maps them onto the
// taxonomy: validation 400, duplicates 409, dangling references 400, unknown
// failures 500 (with a stack outside production).
func ErrorHandler(log *zap.Logger, production bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		log.Error("request failed",
			zap.String("path", c.FullPath()),
			zap.String("method", c.Request.Method),
			zap.Error(err),
		)

		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			details := make([]gin.H, 0, len(verrs))
			for _, fe := range verrs {
				details = append(details, gin.H{
					"field":   fe.Field(),
					"message": fe.Tag(),
				})
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": "Validation error", "details": details})
			return
		}

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				c.JSON(http.StatusConflict, gin.H{"error": "Duplicate entry", "detail": pgErr.Detail})
				return
			case "23503":
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reference", "detail": pgErr.Detail})
				return
			}
		}

		if isMalformedBody(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "detail": err.Error()})
			return
		}

		switch {
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		case errors.Is(err, store.ErrNoActiveEvent):
			c.JSON(http.StatusBadRequest, gin.H{"error": "No active event found. Please create or start an event."})
		case errors.Is(err, store.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"error": "Duplicate entry", "detail": err.Error()})
		case errors.Is(err, store.ErrVoided):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, store.ErrInvalidTransition):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, errBadRequest):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			resp := gin.H{"error": "Internal server error"}
			if !production {
				resp["error"] = err.Error()
				resp["stack"] = string(debug.Stack())
			}
			c.JSON(http.StatusInternalServerError, resp)
		}
	}
}

// isMalformedBody reports whether the error came from decoding the request
// body: broken JSON, a wrong-typed field, or a truncated/empty payload. All
// of these are the client's fault and answer 400, never 500.
func isMalformedBody(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	var bindErr *bindingError
	return errors.As(err, &syntaxErr) ||
		errors.As(err, &typeErr) ||
		errors.As(err, &bindErr) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF)
}

// Binding marks an error as a request-body decode failure. Custom
// unmarshalers (decimal, uuid, time) return plain errors that carry no type
// the handler could sniff, so controllers tag them at the bind site.
func Binding(err error) error {
	return &bindingError{err: err}
}

type bindingError struct{ err error }

func (e *bindingError) Error() string { return e.err.Error() }
func (e *bindingError) Unwrap() error { return e.err }

var errBadRequest = errors.New("bad request")

// BadRequest wraps a message so the error handler answers 400 instead of 500.
func BadRequest(msg string) error {
	return &badRequestError{msg: msg}
}

type badRequestError struct{ msg string }

func (e *badRequestError) Error() string { return e.msg }
func (e *badRequestError) Is(target error) bool {
	return target == errBadRequest
}
