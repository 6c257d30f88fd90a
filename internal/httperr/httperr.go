// Package httperr defines the closed error taxonomy the API exposes and the
// translation from storage-layer failures into it. Every error the service
// returns maps to exactly one HTTP status and one machine-readable code;
// internal causes are logged server-side and never serialized into responses.
package httperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Kind classifies an error into one of the taxonomy's closed set of variants.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindInvalidID
	KindUnauthenticated
	KindNotFound
	KindConflict
)

// Machine-readable error codes surfaced in response bodies.
const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeInvalidUUID  = "INVALID_UUID"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeEmailExists  = "EMAIL_ALREADY_EXISTS"
	CodeDuplicate    = "DUPLICATE_RESOURCE"
	CodeInternal     = "INTERNAL_SERVER_ERROR"
)

// FieldError is one validation violation, addressed by the offending field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is a tagged API error. Err carries the underlying cause for
// server-side logging; it is never written to the client.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Details []FieldError
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Status returns the HTTP status code for the error's kind.
func (e *Error) Status() int {
	switch e.Kind {
	case KindValidation, KindInvalidID:
		return http.StatusBadRequest
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Validation reports one or more field-level violations. The details list is
// expected to carry every violation found, not just the first.
func Validation(details []FieldError) *Error {
	return &Error{
		Kind:    KindValidation,
		Code:    CodeValidation,
		Message: "Validation failed",
		Details: details,
	}
}

// InvalidID reports a malformed identifier in a path position.
func InvalidID() *Error {
	return &Error{
		Kind:    KindInvalidID,
		Code:    CodeInvalidUUID,
		Message: "Invalid UUID format",
	}
}

// Unauthenticated returns the single generic authentication failure. The
// provider-level cause (missing, malformed, expired, revoked) is deliberately
// not distinguished for the caller.
func Unauthenticated(cause error) *Error {
	return &Error{
		Kind:    KindUnauthenticated,
		Code:    CodeUnauthorized,
		Message: "Authentication required",
		Err:     cause,
	}
}

// NotFound reports a missing resource. It is used both when the resource does
// not exist and when it exists but belongs to another user, so the two cases
// are indistinguishable to the caller.
func NotFound(resource string) *Error {
	return &Error{
		Kind:    KindNotFound,
		Code:    strings.ToUpper(resource) + "_NOT_FOUND",
		Message: resource + " not found",
	}
}

// Conflict reports a duplicate unique key.
func Conflict(code, message string) *Error {
	return &Error{Kind: KindConflict, Code: code, Message: message}
}

// Internal wraps an unexpected failure behind the generic 500 response.
func Internal(cause error) *Error {
	return &Error{
		Kind:    KindInternal,
		Code:    CodeInternal,
		Message: "Internal server error",
		Err:     cause,
	}
}

// uniqueViolation is the Postgres SQLSTATE for unique-constraint failures.
const uniqueViolation = "23505"

// FromStore translates a storage-layer error for the given resource name.
// Record-not-found becomes NotFound; a unique-constraint violation becomes
// Conflict, with the customer email constraint mapped to its dedicated code;
// anything else is Internal. Concurrent duplicate inserts rely on this path:
// the database's constraint is the arbiter, the pre-check is only a shortcut.
func FromStore(err error, resource string) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound(resource)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		if strings.Contains(pgErr.ConstraintName, "email") {
			return Conflict(CodeEmailExists, "A customer with this email already exists")
		}
		return Conflict(CodeDuplicate, "Duplicate value detected")
	}
	return Internal(err)
}

type envelope struct {
	Error body `json:"error"`
}

type body struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Details []FieldError `json:"details,omitempty"`
}

// Write serializes err into the {error:{code,message,details?}} envelope and
// aborts the request. Non-taxonomy errors are treated as Internal. Internal
// causes are logged here; the response body stays generic.
func Write(c *gin.Context, err error) {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		apiErr = Internal(err)
	}
	if apiErr.Kind == KindInternal {
		slog.Error("request failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", apiErr.Error(),
		)
	}
	c.AbortWithStatusJSON(apiErr.Status(), envelope{Error: body{
		Code:    apiErr.Code,
		Message: apiErr.Message,
		Details: apiErr.Details,
	}})
}
