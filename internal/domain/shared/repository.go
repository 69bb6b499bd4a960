package shared

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the base interface for all content repositories.
// Collections are small enough that listing returns every record in the
// entity's natural display order.
type Repository[T any] interface {
	FindByID(ctx context.Context, id uuid.UUID) (*T, error)
	FindAll(ctx context.Context) ([]T, error)
	Save(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id uuid.UUID) error
}
