// Package validate implements strict request-body validation: unknown fields
// are rejected, every violation is collected rather than stopping at the
// first, and each violation is addressed by field path. The rules mirror the
// declared shape of each endpoint's payload.
package validate

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/clienthub/backend/internal/httperr"
)

// Payload is implemented by request types that know their own field rules.
// Violations returns every rule breach found, or nil when the payload is valid.
type Payload interface {
	Violations() []httperr.FieldError
}

// Body decodes the request body into dst under a strict shape: unknown fields
// and malformed JSON are validation errors, and dst's own field rules run
// afterwards with all violations collected into one error.
func Body(r io.Reader, dst Payload) *httperr.Error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return httperr.Validation([]httperr.FieldError{decodeViolation(err)})
	}
	// Reject trailing garbage after the JSON document.
	if dec.More() {
		return httperr.Validation([]httperr.FieldError{
			{Field: "body", Message: "unexpected data after JSON body"},
		})
	}
	if violations := dst.Violations(); len(violations) > 0 {
		return httperr.Validation(violations)
	}
	return nil
}

func decodeViolation(err error) httperr.FieldError {
	var unmarshalErr *json.UnmarshalTypeError
	if errors.As(err, &unmarshalErr) {
		return httperr.FieldError{
			Field:   unmarshalErr.Field,
			Message: fmt.Sprintf("must be of type %s", unmarshalErr.Type),
		}
	}
	// encoding/json reports unknown fields as `json: unknown field "name"`.
	msg := err.Error()
	if rest, ok := strings.CutPrefix(msg, `json: unknown field `); ok {
		return httperr.FieldError{
			Field:   strings.Trim(rest, `"`),
			Message: "unknown field",
		}
	}
	return httperr.FieldError{Field: "body", Message: "invalid JSON body"}
}

// Required reports a violation when value is empty after trimming.
func Required(field, value string) *httperr.FieldError {
	if strings.TrimSpace(value) == "" {
		return &httperr.FieldError{Field: field, Message: field + " is required"}
	}
	return nil
}

// MaxLen reports a violation when value exceeds max characters.
func MaxLen(field, value string, max int) *httperr.FieldError {
	if len(value) > max {
		return &httperr.FieldError{
			Field:   field,
			Message: fmt.Sprintf("%s must be at most %d characters", field, max),
		}
	}
	return nil
}

// Enum reports a violation when value is not one of the allowed literals.
func Enum(field, value string, allowed []string) *httperr.FieldError {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return &httperr.FieldError{
		Field:   field,
		Message: fmt.Sprintf("%s must be one of: %s", field, strings.Join(allowed, ", ")),
	}
}

// Timestamp parses value as RFC 3339 and reports a violation when it does not
// parse. The parsed time is returned for valid input.
func Timestamp(field, value string) (time.Time, *httperr.FieldError) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, &httperr.FieldError{Field: field, Message: "Invalid date format"}
	}
	return t, nil
}

// Email reports a violation when value fails the conservative email grammar:
// exactly one @, a local part and domain without leading/trailing or
// consecutive dots, and a domain containing at least one dot.
func Email(field, value string) *httperr.FieldError {
	if !validEmail(value) {
		return &httperr.FieldError{Field: field, Message: "Invalid email address"}
	}
	return nil
}

func validEmail(s string) bool {
	at := strings.LastIndex(s, "@")
	if at <= 0 || at == len(s)-1 {
		return false
	}
	local, domain := s[:at], s[at+1:]
	if !validDotted(local, localByte) {
		return false
	}
	if !strings.Contains(domain, ".") {
		return false
	}
	return validDotted(domain, domainByte)
}

// validDotted checks a dot-separated part: no leading, trailing, or
// consecutive dots, and every other byte accepted by ok.
func validDotted(part string, ok func(byte) bool) bool {
	if strings.HasPrefix(part, ".") || strings.HasSuffix(part, ".") {
		return false
	}
	if strings.Contains(part, "..") {
		return false
	}
	for i := 0; i < len(part); i++ {
		if part[i] != '.' && !ok(part[i]) {
			return false
		}
	}
	return true
}

func localByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return true
	case b == '_' || b == '%' || b == '+' || b == '-':
		return true
	}
	return false
}

func domainByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return true
	case b == '-':
		return true
	}
	return false
}
