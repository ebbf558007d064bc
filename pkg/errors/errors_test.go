package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromDatabase_MapsConstraintViolations(t *testing.T) {
	cases := []struct {
		code   string
		status int
	}{
		{"23505", http.StatusConflict},
		{"23503", http.StatusConflict},
		{"23514", http.StatusBadRequest},
		{"23502", http.StatusBadRequest},
		{"22007", http.StatusBadRequest},
		{"40001", http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			pgErr := &pgconn.PgError{Code: tc.code, Message: "violates something"}
			err := FromDatabase(fmt.Errorf("exec: %w", pgErr))

			var httpErr *HttpError
			require.True(t, errors.As(err, &httpErr))
			assert.Equal(t, tc.status, httpErr.Code)
			assert.Contains(t, httpErr.Message, "violates something")
			assert.Equal(t, tc.status, StatusOf(err))
		})
	}
}

func TestFromDatabase_PassesOtherErrors(t *testing.T) {
	assert.Nil(t, FromDatabase(nil))
	plain := errors.New("connection refused")
	assert.Same(t, plain, FromDatabase(plain))
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, StatusOf(fmt.Errorf("wrap: %w", ErrNotFound)))
	assert.Equal(t, http.StatusBadRequest, StatusOf(ErrTableNotAllowed))
	assert.Equal(t, http.StatusBadRequest, StatusOf(NewInvalidInputError("bad %s", "date")))
	assert.Equal(t, http.StatusUnauthorized, StatusOf(ErrInvalidCredentials))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(errors.New("boom")))
}
