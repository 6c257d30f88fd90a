package validate_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/clienthub/backend/internal/httperr"
	"github.com/clienthub/backend/internal/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (p *signupPayload) Violations() []httperr.FieldError {
	var violations []httperr.FieldError
	if v := validate.Required("email", p.Email); v != nil {
		violations = append(violations, *v)
	} else if v := validate.Email("email", p.Email); v != nil {
		violations = append(violations, *v)
	}
	if v := validate.Required("password", p.Password); v != nil {
		violations = append(violations, *v)
	}
	return violations
}

func TestBody(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		var p signupPayload
		err := validate.Body(strings.NewReader(`{"email":"a.b@x.co","password":"secret1"}`), &p)
		assert.Nil(t, err)
		assert.Equal(t, "a.b@x.co", p.Email)
	})

	t.Run("collects every violation", func(t *testing.T) {
		var p signupPayload
		err := validate.Body(strings.NewReader(`{"email":"","password":""}`), &p)
		require.NotNil(t, err)
		assert.Equal(t, httperr.CodeValidation, err.Code)
		require.Len(t, err.Details, 2)
		assert.Equal(t, "email", err.Details[0].Field)
		assert.Equal(t, "password", err.Details[1].Field)
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		var p signupPayload
		err := validate.Body(strings.NewReader(`{"email":"a.b@x.co","password":"secret1","extra":1}`), &p)
		require.NotNil(t, err)
		require.Len(t, err.Details, 1)
		assert.Equal(t, "extra", err.Details[0].Field)
		assert.Equal(t, "unknown field", err.Details[0].Message)
	})

	t.Run("rejects wrong types", func(t *testing.T) {
		var p signupPayload
		err := validate.Body(strings.NewReader(`{"email":42}`), &p)
		require.NotNil(t, err)
		require.Len(t, err.Details, 1)
		assert.Equal(t, "email", err.Details[0].Field)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		var p signupPayload
		err := validate.Body(strings.NewReader(`{"email":`), &p)
		require.NotNil(t, err)
		assert.Equal(t, "body", err.Details[0].Field)
	})
}

func TestEmail(t *testing.T) {
	valid := []string{
		"a.b@x.co",
		"user+tag@example.com",
		"USER_1%x@sub-domain.example.org",
	}
	for _, email := range valid {
		assert.Nil(t, validate.Email("email", email), email)
	}

	invalid := []string{
		"",
		"plain",
		"@x.co",
		"a@",
		"a@x",         // domain has no dot
		"a@@x.co",     // double @
		"a@b@x.co",    // two @s
		".a@x.co",     // leading dot in local
		"a.@x.co",     // trailing dot in local
		"a..b@x.co",   // consecutive dots in local
		"a@.x.co",     // leading dot in domain
		"a@x.co.",     // trailing dot in domain
		"a@x..co",     // consecutive dots in domain
		"a b@x.co",    // space in local
		"a@x co.uk",   // space in domain
		"a@x.co uk",   // trailing junk
		"<a@x.co>",    // angle brackets
	}
	for _, email := range invalid {
		assert.NotNil(t, validate.Email("email", email), email)
	}
}

func TestRequired(t *testing.T) {
	assert.Nil(t, validate.Required("firstName", "Jon"))
	assert.NotNil(t, validate.Required("firstName", ""))
	assert.NotNil(t, validate.Required("firstName", "   "))
}

func TestMaxLen(t *testing.T) {
	assert.Nil(t, validate.MaxLen("note", strings.Repeat("a", 512), 512))
	assert.NotNil(t, validate.MaxLen("note", strings.Repeat("a", 513), 512))
}

func TestEnum(t *testing.T) {
	priorities := []string{"low", "medium", "high"}
	assert.Nil(t, validate.Enum("priority", "medium", priorities))

	v := validate.Enum("priority", "urgent", priorities)
	require.NotNil(t, v)
	assert.Equal(t, "priority must be one of: low, medium, high", v.Message)
}

func TestTimestamp(t *testing.T) {
	parsed, v := validate.Timestamp("dueDate", "2026-09-01T10:00:00Z")
	assert.Nil(t, v)
	assert.Equal(t, 2026, parsed.Year())

	_, v = validate.Timestamp("dueDate", "next tuesday")
	require.NotNil(t, v)
	assert.Equal(t, "Invalid date format", v.Message)
}

func TestNullableString(t *testing.T) {
	type patch struct {
		Description validate.NullableString `json:"description"`
	}

	t.Run("absent", func(t *testing.T) {
		var p patch
		require.NoError(t, json.Unmarshal([]byte(`{}`), &p))
		assert.False(t, p.Description.Set)
	})

	t.Run("null", func(t *testing.T) {
		var p patch
		require.NoError(t, json.Unmarshal([]byte(`{"description":null}`), &p))
		assert.True(t, p.Description.Set)
		assert.False(t, p.Description.Valid)
	})

	t.Run("value", func(t *testing.T) {
		var p patch
		require.NoError(t, json.Unmarshal([]byte(`{"description":"call back"}`), &p))
		assert.True(t, p.Description.Set)
		assert.True(t, p.Description.Valid)
		assert.Equal(t, "call back", p.Description.Value)
	})
}
