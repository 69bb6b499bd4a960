package shared

import (
	"time"

	"github.com/google/uuid"
)

// BaseEntity carries the identity and audit timestamps every content record
// shares. The zero value is an unsaved record.
type BaseEntity struct {
	ID        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (e *BaseEntity) GetID() uuid.UUID { return e.ID }

// IsNew reports whether the record has never been saved
func (e *BaseEntity) IsNew() bool { return e.ID == uuid.Nil }

// Touch stamps UpdatedAt. The first call also assigns the ID and CreatedAt,
// later calls leave both alone.
func (e *BaseEntity) Touch(now time.Time) {
	if e.IsNew() {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	e.UpdatedAt = now
}
