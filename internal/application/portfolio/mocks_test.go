package portfolio

import (
	"context"
	"time"

	"github.com/dicky/portfolio/internal/domain/portfolio"
	"github.com/dicky/portfolio/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// mockRepo is a generic testify mock for the shared repository contract
type mockRepo[T any] struct {
	mock.Mock
}

func (m *mockRepo[T]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *mockRepo[T]) FindAll(ctx context.Context) ([]T, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *mockRepo[T]) Save(ctx context.Context, e *T) error {
	return m.Called(ctx, e).Error(0)
}

func (m *mockRepo[T]) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockSocialRepo struct {
	mockRepo[portfolio.SocialLink]
}

func (m *mockSocialRepo) FindActive(ctx context.Context) ([]portfolio.SocialLink, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]portfolio.SocialLink), args.Error(1)
}

type mockPostRepo struct {
	mockRepo[portfolio.BlogPost]
}

func (m *mockPostRepo) FindPublished(ctx context.Context) ([]portfolio.BlogPost, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]portfolio.BlogPost), args.Error(1)
}

func (m *mockPostRepo) FindBySlug(ctx context.Context, slug string) (*portfolio.BlogPost, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portfolio.BlogPost), args.Error(1)
}

type mockInvalidator struct {
	mock.Mock
}

func (m *mockInvalidator) Invalidate(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	return m.Called(ctx, events).Error(0)
}

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Get(ctx context.Context) (string, bool, error) {
	args := m.Called(ctx)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *mockCache) Set(ctx context.Context, value string, ttl time.Duration) error {
	return m.Called(ctx, value, ttl).Error(0)
}

func (m *mockCache) Delete(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type mockRepos struct {
	projects *mockRepo[portfolio.Project]
	journey  *mockRepo[portfolio.JourneyItem]
	services *mockRepo[portfolio.ServicePackage]
	socials  *mockSocialRepo
	posts    *mockPostRepo
}

func newMockRepos() *mockRepos {
	return &mockRepos{
		projects: new(mockRepo[portfolio.Project]),
		journey:  new(mockRepo[portfolio.JourneyItem]),
		services: new(mockRepo[portfolio.ServicePackage]),
		socials:  new(mockSocialRepo),
		posts:    new(mockPostRepo),
	}
}

func (m *mockRepos) repositories() Repositories {
	return Repositories{
		Projects: m.projects,
		Journey:  m.journey,
		Services: m.services,
		Socials:  m.socials,
		Posts:    m.posts,
	}
}
