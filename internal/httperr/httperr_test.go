package httperr_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/clienthub/backend/internal/httperr"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestStatus(t *testing.T) {
	cases := []struct {
		err    *httperr.Error
		status int
	}{
		{httperr.Validation(nil), http.StatusBadRequest},
		{httperr.InvalidID(), http.StatusBadRequest},
		{httperr.Unauthenticated(nil), http.StatusUnauthorized},
		{httperr.NotFound("Customer"), http.StatusNotFound},
		{httperr.Conflict(httperr.CodeDuplicate, "dup"), http.StatusConflict},
		{httperr.Internal(errors.New("boom")), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, tc.err.Status(), tc.err.Code)
	}
}

func TestNotFoundCode(t *testing.T) {
	err := httperr.NotFound("Customer")
	assert.Equal(t, "CUSTOMER_NOT_FOUND", err.Code)
	assert.Equal(t, "Customer not found", err.Message)
}

func TestFromStore(t *testing.T) {
	t.Run("record not found", func(t *testing.T) {
		err := httperr.FromStore(gorm.ErrRecordNotFound, "Reminder")
		assert.Equal(t, "REMINDER_NOT_FOUND", err.Code)
		assert.Equal(t, http.StatusNotFound, err.Status())
	})

	t.Run("email unique violation", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "idx_customers_email_user"}
		err := httperr.FromStore(pgErr, "Customer")
		assert.Equal(t, httperr.CodeEmailExists, err.Code)
		assert.Equal(t, http.StatusConflict, err.Status())
	})

	t.Run("other unique violation", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "idx_phones_number_customer"}
		err := httperr.FromStore(pgErr, "Phone")
		assert.Equal(t, httperr.CodeDuplicate, err.Code)
	})

	t.Run("wrapped errors unwrap", func(t *testing.T) {
		wrapped := errors.Join(errors.New("query failed"), gorm.ErrRecordNotFound)
		err := httperr.FromStore(wrapped, "Note")
		assert.Equal(t, "NOTE_NOT_FOUND", err.Code)
	})

	t.Run("taxonomy errors pass through", func(t *testing.T) {
		original := httperr.InvalidID()
		assert.Same(t, original, httperr.FromStore(original, "Customer"))
	})

	t.Run("anything else is internal", func(t *testing.T) {
		err := httperr.FromStore(errors.New("connection reset"), "Customer")
		assert.Equal(t, httperr.CodeInternal, err.Code)
		assert.Equal(t, http.StatusInternalServerError, err.Status())
	})
}

func TestWrite(t *testing.T) {
	gin.SetMode(gin.TestMode)

	serve := func(err error) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r := gin.New()
		r.GET("/t", func(c *gin.Context) { httperr.Write(c, err) })
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/t", nil))
		return w
	}

	t.Run("envelope shape", func(t *testing.T) {
		w := serve(httperr.Validation([]httperr.FieldError{
			{Field: "firstName", Message: "firstName is required"},
		}))
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var body struct {
			Error struct {
				Code    string               `json:"code"`
				Message string               `json:"message"`
				Details []httperr.FieldError `json:"details"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, httperr.CodeValidation, body.Error.Code)
		assert.Equal(t, "Validation failed", body.Error.Message)
		require.Len(t, body.Error.Details, 1)
		assert.Equal(t, "firstName", body.Error.Details[0].Field)
	})

	t.Run("details omitted when empty", func(t *testing.T) {
		w := serve(httperr.NotFound("Customer"))
		assert.NotContains(t, w.Body.String(), "details")
	})

	t.Run("internal cause never serialized", func(t *testing.T) {
		w := serve(httperr.Internal(errors.New("password=hunter2 leaked")))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "hunter2")
		assert.Contains(t, w.Body.String(), httperr.CodeInternal)
	})

	t.Run("untagged errors become internal", func(t *testing.T) {
		w := serve(errors.New("boom"))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "boom")
	})
}
