package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dicky/portfolio/internal/domain/shared"
	"github.com/google/uuid"
)

// BaseModel holds the identity columns shared by every content table
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func baseModelOf(e shared.BaseEntity) BaseModel {
	return BaseModel{ID: e.ID, CreatedAt: e.CreatedAt, UpdatedAt: e.UpdatedAt}
}

func (m BaseModel) entity() shared.BaseEntity {
	return shared.BaseEntity{ID: m.ID, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}
}

// JSONList stores a slice as a JSON array. Postgres keeps it in a jsonb
// column, SQLite in text.
type JSONList[T any] []T

// Value encodes nil as an empty array so the column is never NULL
func (l JSONList[T]) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]T(l))
	return string(b), err
}

// Scan accepts the []byte postgres returns and the string sqlite returns
func (l *JSONList[T]) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*l = JSONList[T]{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("JSONList: unsupported source type %T", src)
	}
	if len(data) == 0 {
		*l = JSONList[T]{}
		return nil
	}
	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		return fmt.Errorf("JSONList: %w", err)
	}
	*l = out
	return nil
}
