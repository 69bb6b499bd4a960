// Package portfolio holds the use cases behind the public site and the admin
// endpoints, and builds the context blob handed to the chat assistant.
package portfolio

import (
	"context"
	"time"

	"github.com/dicky/portfolio/internal/domain/portfolio"
	"github.com/dicky/portfolio/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Repositories groups the content repositories
type Repositories struct {
	Projects portfolio.ProjectRepository
	Journey  portfolio.JourneyRepository
	Services portfolio.ServicePackageRepository
	Socials  portfolio.SocialLinkRepository
	Posts    portfolio.PostRepository
}

// ContentService handles portfolio content reads and admin writes
type ContentService struct {
	repos  Repositories
	events shared.EventPublisher
	logger *zap.Logger
	now    func() time.Time
}

// NewContentService creates a new ContentService. Every successful write
// publishes a portfolio.ContentChangedEvent on events, which may be nil.
func NewContentService(repos Repositories, events shared.EventPublisher, logger *zap.Logger) *ContentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContentService{
		repos:  repos,
		events: events,
		logger: logger,
		now:    time.Now,
	}
}

type entity[T any] interface {
	*T
	Validate() error
	Touch(now time.Time)
	GetID() uuid.UUID
}

// repo is the slice of shared.Repository the write helpers need
type repo[T any] struct {
	kind string
	find func(context.Context, uuid.UUID) (*T, error)
	save func(context.Context, *T) error
}

func repoOf[T any](r shared.Repository[T], kind string) repo[T] {
	return repo[T]{kind: kind, find: r.FindByID, save: r.Save}
}

// create applies the input to a zero entity and stores it
func create[T any, PT entity[T]](ctx context.Context, s *ContentService, r repo[T], apply func(PT)) (*T, error) {
	e := PT(new(T))
	apply(e)
	if err := store(ctx, s, r, e); err != nil {
		return nil, err
	}
	return (*T)(e), nil
}

// update merges the input into the stored entity
func update[T any, PT entity[T]](ctx context.Context, s *ContentService, r repo[T], id uuid.UUID, apply func(PT)) (*T, error) {
	current, err := r.find(ctx, id)
	if err != nil {
		return nil, err
	}
	apply(PT(current))
	if err := store(ctx, s, r, PT(current)); err != nil {
		return nil, err
	}
	return current, nil
}

func store[T any, PT entity[T]](ctx context.Context, s *ContentService, r repo[T], e PT) error {
	if err := e.Validate(); err != nil {
		return err
	}
	e.Touch(s.now())
	if err := r.save(ctx, (*T)(e)); err != nil {
		return err
	}
	s.publish(ctx, portfolio.NewContentSavedEvent(r.kind, e.GetID(), s.now()))
	return nil
}

func (s *ContentService) remove(ctx context.Context, kind string, del func(context.Context, uuid.UUID) error, id uuid.UUID) error {
	if err := del(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, portfolio.NewContentDeletedEvent(kind, id, s.now()))
	return nil
}

// publish never fails the write; subscribers only refresh derived state
func (s *ContentService) publish(ctx context.Context, event shared.DomainEvent) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.Warn("Failed to publish content event",
			zap.String("event_type", event.EventType()),
			zap.String("aggregate_type", event.AggregateType()),
			zap.Error(err),
		)
	}
}

// Projects

// ListProjects returns every project, featured first
func (s *ContentService) ListProjects(ctx context.Context) ([]ProjectResponse, error) {
	items, err := s.repos.Projects.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapAll(items, ToProjectResponse), nil
}

// GetProject returns one project
func (s *ContentService) GetProject(ctx context.Context, id uuid.UUID) (*ProjectResponse, error) {
	p, err := s.repos.Projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToProjectResponse(p), nil
}

// CreateProject stores a new project
func (s *ContentService) CreateProject(ctx context.Context, in ProjectInput) (*ProjectResponse, error) {
	p, err := create(ctx, s, repoOf[portfolio.Project](s.repos.Projects, portfolio.AggregateProject), in.apply)
	if err != nil {
		return nil, err
	}
	return ToProjectResponse(p), nil
}

// UpdateProject merges the input into an existing project
func (s *ContentService) UpdateProject(ctx context.Context, id uuid.UUID, in ProjectInput) (*ProjectResponse, error) {
	p, err := update(ctx, s, repoOf[portfolio.Project](s.repos.Projects, portfolio.AggregateProject), id, in.apply)
	if err != nil {
		return nil, err
	}
	return ToProjectResponse(p), nil
}

// DeleteProject removes a project
func (s *ContentService) DeleteProject(ctx context.Context, id uuid.UUID) error {
	return s.remove(ctx, portfolio.AggregateProject, s.repos.Projects.Delete, id)
}

// Journey

// ListJourney returns the career timeline, newest year first
func (s *ContentService) ListJourney(ctx context.Context) ([]JourneyResponse, error) {
	items, err := s.repos.Journey.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapAll(items, ToJourneyResponse), nil
}

// CreateJourney stores a new timeline entry
func (s *ContentService) CreateJourney(ctx context.Context, in JourneyInput) (*JourneyResponse, error) {
	j, err := create(ctx, s, repoOf[portfolio.JourneyItem](s.repos.Journey, portfolio.AggregateJourneyItem), in.apply)
	if err != nil {
		return nil, err
	}
	return ToJourneyResponse(j), nil
}

// UpdateJourney merges the input into an existing entry
func (s *ContentService) UpdateJourney(ctx context.Context, id uuid.UUID, in JourneyInput) (*JourneyResponse, error) {
	j, err := update(ctx, s, repoOf[portfolio.JourneyItem](s.repos.Journey, portfolio.AggregateJourneyItem), id, in.apply)
	if err != nil {
		return nil, err
	}
	return ToJourneyResponse(j), nil
}

// DeleteJourney removes a timeline entry
func (s *ContentService) DeleteJourney(ctx context.Context, id uuid.UUID) error {
	return s.remove(ctx, portfolio.AggregateJourneyItem, s.repos.Journey.Delete, id)
}

// Services

// ListServices returns the service packages by position
func (s *ContentService) ListServices(ctx context.Context) ([]ServicePackageResponse, error) {
	items, err := s.repos.Services.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapAll(items, ToServicePackageResponse), nil
}

// CreateService stores a new service package
func (s *ContentService) CreateService(ctx context.Context, in ServicePackageInput) (*ServicePackageResponse, error) {
	p, err := create(ctx, s, repoOf[portfolio.ServicePackage](s.repos.Services, portfolio.AggregateServicePackage), in.apply)
	if err != nil {
		return nil, err
	}
	return ToServicePackageResponse(p), nil
}

// UpdateService merges the input into an existing package
func (s *ContentService) UpdateService(ctx context.Context, id uuid.UUID, in ServicePackageInput) (*ServicePackageResponse, error) {
	p, err := update(ctx, s, repoOf[portfolio.ServicePackage](s.repos.Services, portfolio.AggregateServicePackage), id, in.apply)
	if err != nil {
		return nil, err
	}
	return ToServicePackageResponse(p), nil
}

// DeleteService removes a service package
func (s *ContentService) DeleteService(ctx context.Context, id uuid.UUID) error {
	return s.remove(ctx, portfolio.AggregateServicePackage, s.repos.Services.Delete, id)
}

// Socials

// ListSocials returns social links. Public callers only see active links.
func (s *ContentService) ListSocials(ctx context.Context, includeInactive bool) ([]SocialLinkResponse, error) {
	var (
		items []portfolio.SocialLink
		err   error
	)
	if includeInactive {
		items, err = s.repos.Socials.FindAll(ctx)
	} else {
		items, err = s.repos.Socials.FindActive(ctx)
	}
	if err != nil {
		return nil, err
	}
	return mapAll(items, ToSocialLinkResponse), nil
}

// CreateSocial stores a new social link
func (s *ContentService) CreateSocial(ctx context.Context, in SocialLinkInput) (*SocialLinkResponse, error) {
	l, err := create(ctx, s, repoOf[portfolio.SocialLink](s.repos.Socials, portfolio.AggregateSocialLink), in.apply)
	if err != nil {
		return nil, err
	}
	return ToSocialLinkResponse(l), nil
}

// UpdateSocial merges the input into an existing link
func (s *ContentService) UpdateSocial(ctx context.Context, id uuid.UUID, in SocialLinkInput) (*SocialLinkResponse, error) {
	l, err := update(ctx, s, repoOf[portfolio.SocialLink](s.repos.Socials, portfolio.AggregateSocialLink), id, in.apply)
	if err != nil {
		return nil, err
	}
	return ToSocialLinkResponse(l), nil
}

// DeleteSocial removes a social link
func (s *ContentService) DeleteSocial(ctx context.Context, id uuid.UUID) error {
	return s.remove(ctx, portfolio.AggregateSocialLink, s.repos.Socials.Delete, id)
}

// Posts

// ListPublishedPosts returns published posts without their bodies
func (s *ContentService) ListPublishedPosts(ctx context.Context) ([]PostResponse, error) {
	items, err := s.repos.Posts.FindPublished(ctx)
	if err != nil {
		return nil, err
	}
	return mapAll(items, ToPostSummary), nil
}

// ListAllPosts returns every post including drafts
func (s *ContentService) ListAllPosts(ctx context.Context) ([]PostResponse, error) {
	items, err := s.repos.Posts.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapAll(items, ToPostSummary), nil
}

// GetPublishedPost returns a published post by slug. Drafts are reported as
// not found.
func (s *ContentService) GetPublishedPost(ctx context.Context, slug string) (*PostResponse, error) {
	p, err := s.repos.Posts.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !p.Published {
		return nil, shared.ErrNotFound
	}
	return ToPostResponse(p), nil
}

// GetPost returns any post by ID
func (s *ContentService) GetPost(ctx context.Context, id uuid.UUID) (*PostResponse, error) {
	p, err := s.repos.Posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToPostResponse(p), nil
}

// CreatePost stores a new post, deriving its slug from the title when none
// is given
func (s *ContentService) CreatePost(ctx context.Context, in PostInput) (*PostResponse, error) {
	p, err := create(ctx, s, repoOf[portfolio.BlogPost](s.repos.Posts, portfolio.AggregateBlogPost), s.applyPost(in))
	if err != nil {
		return nil, err
	}
	return ToPostResponse(p), nil
}

// UpdatePost merges the input into an existing post
func (s *ContentService) UpdatePost(ctx context.Context, id uuid.UUID, in PostInput) (*PostResponse, error) {
	p, err := update(ctx, s, repoOf[portfolio.BlogPost](s.repos.Posts, portfolio.AggregateBlogPost), id, s.applyPost(in))
	if err != nil {
		return nil, err
	}
	return ToPostResponse(p), nil
}

// DeletePost removes a post
func (s *ContentService) DeletePost(ctx context.Context, id uuid.UUID) error {
	return s.remove(ctx, portfolio.AggregateBlogPost, s.repos.Posts.Delete, id)
}

func (s *ContentService) applyPost(in PostInput) func(*portfolio.BlogPost) {
	return func(p *portfolio.BlogPost) {
		in.apply(p)
		p.Prepare(s.now())
	}
}
