package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/phrazzld/contacts-api/internal/store"
)

func newPgError(code string) *pgconn.PgError {
	return &pgconn.PgError{
		Code:           code,
		ConstraintName: "test_constraint",
		ColumnName:     "test_column",
	}
}

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{name: "no rows", err: sql.ErrNoRows, expected: store.ErrNotFound},
		{name: "unique violation", err: newPgError(uniqueViolationCode), expected: store.ErrDuplicate},
		{name: "foreign key violation", err: newPgError(foreignKeyViolationCode), expected: store.ErrInvalidEntity},
		{name: "check violation", err: newPgError(checkViolationCode), expected: store.ErrInvalidEntity},
		{name: "not null violation", err: newPgError(notNullViolationCode), expected: store.ErrInvalidEntity},
		{
			name:     "wrapped unique violation",
			err:      fmt.Errorf("insert: %w", newPgError(uniqueViolationCode)),
			expected: store.ErrDuplicate,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mapped := MapError(tt.err)
			assert.ErrorIs(t, mapped, tt.expected)
			assert.ErrorIs(t, mapped, tt.err, "original error should stay in the chain")
		})
	}

	t.Run("nil", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, MapError(nil))
	})

	t.Run("unclassified errors pass through", func(t *testing.T) {
		t.Parallel()

		connErr := errors.New("connection refused")
		assert.Same(t, connErr, MapError(connErr))

		other := newPgError("42P01")
		assert.Equal(t, error(other), MapError(other))
	})
}

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	assert.True(t, IsUniqueViolation(newPgError(uniqueViolationCode)))
	assert.True(t, IsUniqueViolation(fmt.Errorf("wrapped: %w", newPgError(uniqueViolationCode))))
	assert.False(t, IsUniqueViolation(newPgError(foreignKeyViolationCode)))
	assert.False(t, IsUniqueViolation(errors.New("duplicate key")))
	assert.False(t, IsUniqueViolation(nil))
}

func TestIsForeignKeyViolation(t *testing.T) {
	t.Parallel()

	assert.True(t, IsForeignKeyViolation(newPgError(foreignKeyViolationCode)))
	assert.False(t, IsForeignKeyViolation(newPgError(uniqueViolationCode)))
	assert.False(t, IsForeignKeyViolation(nil))
}
