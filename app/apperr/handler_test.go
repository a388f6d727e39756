package apperr

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromPQUniqueViolation(t *testing.T) {
	e := fromPQ(&pq.Error{Code: "23505", Constraint: "users_email_key"})
	assert.Equal(t, KindConflict, e.Kind)
	assert.Contains(t, e.Fields, "email")
}

func TestFromPQForeignKeyViolation(t *testing.T) {
	e := fromPQ(&pq.Error{Code: "23503"})
	assert.Equal(t, KindInvalidReference, e.Kind)
}

func TestFromPQCheckViolationWithColumn(t *testing.T) {
	e := fromPQ(&pq.Error{Code: "23502", Column: "title", Message: "null value in column"})
	require.Equal(t, KindValidation, e.Kind)
	assert.Contains(t, e.Fields, "title")
}

func TestFromPQCheckViolationWithoutColumn(t *testing.T) {
	// Check and cast failures usually arrive without a column name; the
	// field key must never be the empty string.
	for _, code := range []string{"23502", "23514", "22P02"} {
		e := fromPQ(&pq.Error{Code: pq.ErrorCode(code), Message: "invalid input"})
		require.Equal(t, KindValidation, e.Kind, code)
		assert.NotContains(t, e.Fields, "", code)
		assert.Contains(t, e.Fields, "value", code)
	}
}
