package shared

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainError_Is(t *testing.T) {
	err := NewDomainError("NOT_FOUND", "Project not found")

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrInvalidInput))

	wrapped := fmt.Errorf("load project: %w", err)
	assert.True(t, errors.Is(wrapped, ErrNotFound))
}

func TestAsDomainError(t *testing.T) {
	wrapped := fmt.Errorf("save: %w", NewDomainError("INVALID_INPUT", "title is required"))

	de, ok := AsDomainError(wrapped)
	require.True(t, ok)
	assert.Equal(t, "INVALID_INPUT", de.Code)
	assert.Equal(t, "title is required", de.Message)

	_, ok = AsDomainError(errors.New("plain"))
	assert.False(t, ok)
}

func TestBaseEntity_Touch(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	var e BaseEntity
	assert.True(t, e.IsNew())

	e.Touch(fixedTime)
	assert.False(t, e.IsNew())
	assert.Equal(t, fixedTime, e.CreatedAt)
	assert.Equal(t, fixedTime, e.UpdatedAt)

	id := e.ID
	later := fixedTime.Add(1)
	e.Touch(later)
	assert.Equal(t, id, e.ID)
	assert.Equal(t, fixedTime, e.CreatedAt)
	assert.Equal(t, later, e.UpdatedAt)
}
