package persistence

import (
	"context"
	"errors"

	"github.com/dicky/portfolio/internal/domain/shared"
	"github.com/dicky/portfolio/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AllModels lists every persistence model, in dependency order
func AllModels() []any {
	return []any{
		&models.ProjectModel{},
		&models.JourneyItemModel{},
		&models.ServicePackageModel{},
		&models.SocialLinkModel{},
		&models.BlogPostModel{},
	}
}

// record is implemented by a persistence model pointer that can produce
// its domain entity.
type record[E any, M any] interface {
	*M
	ToDomain() *E
}

// gormRepository holds the CRUD plumbing shared by the content repositories.
// E is the domain entity, M the persistence model.
type gormRepository[E any, M any, PM record[E, M]] struct {
	db         *gorm.DB
	order      string
	fromDomain func(*E) PM
}

func (r *gormRepository[E, M, PM]) findByID(ctx context.Context, id uuid.UUID) (*E, error) {
	var m M
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return PM(&m).ToDomain(), nil
}

func (r *gormRepository[E, M, PM]) find(ctx context.Context, scope func(*gorm.DB) *gorm.DB) ([]E, error) {
	var rows []M
	query := r.db.WithContext(ctx).Order(r.order)
	if scope != nil {
		query = scope(query)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]E, 0, len(rows))
	for i := range rows {
		out = append(out, *PM(&rows[i]).ToDomain())
	}
	return out, nil
}

func (r *gormRepository[E, M, PM]) save(ctx context.Context, entity *E) error {
	return r.db.WithContext(ctx).Save(r.fromDomain(entity)).Error
}

func (r *gormRepository[E, M, PM]) delete(ctx context.Context, id uuid.UUID) error {
	var m M
	result := r.db.WithContext(ctx).Delete(&m, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
