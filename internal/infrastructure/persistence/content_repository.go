package persistence

import (
	"context"
	"errors"

	"github.com/dicky/portfolio/internal/domain/portfolio"
	"github.com/dicky/portfolio/internal/domain/shared"
	"github.com/dicky/portfolio/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProjectRepository implements portfolio.ProjectRepository using GORM
type GormProjectRepository struct {
	gormRepository[portfolio.Project, models.ProjectModel, *models.ProjectModel]
}

// NewGormProjectRepository creates a new GormProjectRepository
func NewGormProjectRepository(db *gorm.DB) *GormProjectRepository {
	return &GormProjectRepository{gormRepository[portfolio.Project, models.ProjectModel, *models.ProjectModel]{
		db:         db,
		order:      "featured DESC, year DESC, created_at DESC",
		fromDomain: models.ProjectModelFromDomain,
	}}
}

// FindByID finds a project by its ID
func (r *GormProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*portfolio.Project, error) {
	return r.findByID(ctx, id)
}

// FindAll lists projects, featured first
func (r *GormProjectRepository) FindAll(ctx context.Context) ([]portfolio.Project, error) {
	return r.find(ctx, nil)
}

// Save creates or replaces a project
func (r *GormProjectRepository) Save(ctx context.Context, p *portfolio.Project) error {
	return r.save(ctx, p)
}

// Delete removes a project
func (r *GormProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.delete(ctx, id)
}

// GormJourneyRepository implements portfolio.JourneyRepository using GORM
type GormJourneyRepository struct {
	gormRepository[portfolio.JourneyItem, models.JourneyItemModel, *models.JourneyItemModel]
}

// NewGormJourneyRepository creates a new GormJourneyRepository
func NewGormJourneyRepository(db *gorm.DB) *GormJourneyRepository {
	return &GormJourneyRepository{gormRepository[portfolio.JourneyItem, models.JourneyItemModel, *models.JourneyItemModel]{
		db:         db,
		order:      "year DESC, sort_order ASC",
		fromDomain: models.JourneyItemModelFromDomain,
	}}
}

// FindByID finds a journey item by its ID
func (r *GormJourneyRepository) FindByID(ctx context.Context, id uuid.UUID) (*portfolio.JourneyItem, error) {
	return r.findByID(ctx, id)
}

// FindAll lists the timeline, most recent year first
func (r *GormJourneyRepository) FindAll(ctx context.Context) ([]portfolio.JourneyItem, error) {
	return r.find(ctx, nil)
}

// Save creates or replaces a journey item
func (r *GormJourneyRepository) Save(ctx context.Context, j *portfolio.JourneyItem) error {
	return r.save(ctx, j)
}

// Delete removes a journey item
func (r *GormJourneyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.delete(ctx, id)
}

// GormServicePackageRepository implements portfolio.ServicePackageRepository using GORM
type GormServicePackageRepository struct {
	gormRepository[portfolio.ServicePackage, models.ServicePackageModel, *models.ServicePackageModel]
}

// NewGormServicePackageRepository creates a new GormServicePackageRepository
func NewGormServicePackageRepository(db *gorm.DB) *GormServicePackageRepository {
	return &GormServicePackageRepository{gormRepository[portfolio.ServicePackage, models.ServicePackageModel, *models.ServicePackageModel]{
		db:         db,
		order:      "position ASC, created_at ASC",
		fromDomain: models.ServicePackageModelFromDomain,
	}}
}

// FindByID finds a service package by its ID
func (r *GormServicePackageRepository) FindByID(ctx context.Context, id uuid.UUID) (*portfolio.ServicePackage, error) {
	return r.findByID(ctx, id)
}

// FindAll lists packages by position
func (r *GormServicePackageRepository) FindAll(ctx context.Context) ([]portfolio.ServicePackage, error) {
	return r.find(ctx, nil)
}

// Save creates or replaces a service package
func (r *GormServicePackageRepository) Save(ctx context.Context, s *portfolio.ServicePackage) error {
	return r.save(ctx, s)
}

// Delete removes a service package
func (r *GormServicePackageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.delete(ctx, id)
}

// GormSocialLinkRepository implements portfolio.SocialLinkRepository using GORM
type GormSocialLinkRepository struct {
	gormRepository[portfolio.SocialLink, models.SocialLinkModel, *models.SocialLinkModel]
}

// NewGormSocialLinkRepository creates a new GormSocialLinkRepository
func NewGormSocialLinkRepository(db *gorm.DB) *GormSocialLinkRepository {
	return &GormSocialLinkRepository{gormRepository[portfolio.SocialLink, models.SocialLinkModel, *models.SocialLinkModel]{
		db:         db,
		order:      "created_at ASC",
		fromDomain: models.SocialLinkModelFromDomain,
	}}
}

// FindByID finds a social link by its ID
func (r *GormSocialLinkRepository) FindByID(ctx context.Context, id uuid.UUID) (*portfolio.SocialLink, error) {
	return r.findByID(ctx, id)
}

// FindAll lists every link, including inactive ones
func (r *GormSocialLinkRepository) FindAll(ctx context.Context) ([]portfolio.SocialLink, error) {
	return r.find(ctx, nil)
}

// FindActive lists links shown on the public site
func (r *GormSocialLinkRepository) FindActive(ctx context.Context) ([]portfolio.SocialLink, error) {
	return r.find(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("active = ?", true)
	})
}

// Save creates or replaces a social link
func (r *GormSocialLinkRepository) Save(ctx context.Context, s *portfolio.SocialLink) error {
	return r.save(ctx, s)
}

// Delete removes a social link
func (r *GormSocialLinkRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.delete(ctx, id)
}

// GormPostRepository implements portfolio.PostRepository using GORM
type GormPostRepository struct {
	gormRepository[portfolio.BlogPost, models.BlogPostModel, *models.BlogPostModel]
}

// NewGormPostRepository creates a new GormPostRepository
func NewGormPostRepository(db *gorm.DB) *GormPostRepository {
	return &GormPostRepository{gormRepository[portfolio.BlogPost, models.BlogPostModel, *models.BlogPostModel]{
		db:         db,
		order:      "created_at DESC",
		fromDomain: models.BlogPostModelFromDomain,
	}}
}

// FindByID finds a post by its ID
func (r *GormPostRepository) FindByID(ctx context.Context, id uuid.UUID) (*portfolio.BlogPost, error) {
	return r.findByID(ctx, id)
}

// FindAll lists every post including drafts, newest first
func (r *GormPostRepository) FindAll(ctx context.Context) ([]portfolio.BlogPost, error) {
	return r.find(ctx, nil)
}

// FindPublished lists published posts by publication date, newest first
func (r *GormPostRepository) FindPublished(ctx context.Context) ([]portfolio.BlogPost, error) {
	var rows []models.BlogPostModel
	if err := r.db.WithContext(ctx).
		Where("published = ?", true).
		Order("published_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	posts := make([]portfolio.BlogPost, 0, len(rows))
	for i := range rows {
		posts = append(posts, *rows[i].ToDomain())
	}
	return posts, nil
}

// FindBySlug finds a post by its slug
func (r *GormPostRepository) FindBySlug(ctx context.Context, slug string) (*portfolio.BlogPost, error) {
	var m models.BlogPostModel
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return m.ToDomain(), nil
}

// Save creates or replaces a post. A slug already used by another post is
// reported as ErrAlreadyExists.
func (r *GormPostRepository) Save(ctx context.Context, p *portfolio.BlogPost) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.BlogPostModel{}).
		Where("slug = ? AND id <> ?", p.Slug, p.ID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return shared.NewDomainError("ALREADY_EXISTS", "a post with slug \""+p.Slug+"\" already exists")
	}
	return r.save(ctx, p)
}

// Delete removes a post
func (r *GormPostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.delete(ctx, id)
}

var (
	_ portfolio.ProjectRepository        = (*GormProjectRepository)(nil)
	_ portfolio.JourneyRepository        = (*GormJourneyRepository)(nil)
	_ portfolio.ServicePackageRepository = (*GormServicePackageRepository)(nil)
	_ portfolio.SocialLinkRepository     = (*GormSocialLinkRepository)(nil)
	_ portfolio.PostRepository           = (*GormPostRepository)(nil)
)
