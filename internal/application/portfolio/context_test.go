package portfolio

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dicky/portfolio/internal/domain/portfolio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func seededRepos() *mockRepos {
	repos := newMockRepos()
	repos.projects.On("FindAll", mock.Anything).Return([]portfolio.Project{{
		Title:       "Kasir Online",
		Description: "POS untuk UMKM",
		TechStack:   []portfolio.TechTag{{Name: "Go"}, {Name: "React"}},
		DemoLink:    "https://kasir.example",
	}}, nil)
	repos.journey.On("FindAll", mock.Anything).Return([]portfolio.JourneyItem{{
		Year: "2024", Role: "Backend Engineer", Company: "Tokopedia", Description: "Payments",
	}}, nil)
	repos.services.On("FindAll", mock.Anything).Return([]portfolio.ServicePackage{{
		Title: "Landing Page", Description: "Satu halaman", Price: "Rp 1.500.000",
	}}, nil)
	repos.posts.On("FindPublished", mock.Anything).Return([]portfolio.BlogPost{{
		Title: "Belajar Go", Excerpt: "Dasar", Slug: "belajar-go",
	}}, nil)
	repos.socials.On("FindActive", mock.Anything).Return([]portfolio.SocialLink{{
		Platform: "GitHub", Label: "@dicky", URL: "https://github.com/dicky",
	}}, nil)
	return repos
}

func TestContextAggregator_Build(t *testing.T) {
	agg := NewContextAggregator(seededRepos().repositories(), time.Second, nil)

	text, err := agg.Build(context.Background())
	require.NoError(t, err)

	sections := []string{
		"INFORMASI PORTOFOLIO",
		"1. PROYEK",
		"2. PERJALANAN KARIR",
		"3. LAYANAN",
		"4. ARTIKEL BLOG",
		"5. KONTAK & SOSIAL MEDIA",
		"INSTRUKSI TAMBAHAN UNTUK AI",
	}
	last := -1
	for _, s := range sections {
		idx := strings.Index(text, s)
		require.GreaterOrEqual(t, idx, 0, "missing section %q", s)
		assert.Greater(t, idx, last, "section %q out of order", s)
		last = idx
	}

	assert.Contains(t, text, "Teknologi: Go, React")
	assert.Contains(t, text, "Link Demo: https://kasir.example")
	assert.Contains(t, text, "Link Repo: Tidak tersedia")
	assert.Contains(t, text, "Institusi: Tokopedia")
	assert.Contains(t, text, "Harga: Rp 1.500.000")
	assert.Contains(t, text, "Topik/Tags: Umum")
	assert.Contains(t, text, "Slug/Link: /blog/belajar-go")
	assert.Contains(t, text, "Link: https://github.com/dicky")
}

func TestContextAggregator_FallbackOnError(t *testing.T) {
	repos := newMockRepos()
	repos.projects.On("FindAll", mock.Anything).Return([]portfolio.Project{}, nil)
	repos.journey.On("FindAll", mock.Anything).Return(nil, errors.New("connection refused"))
	repos.services.On("FindAll", mock.Anything).Return([]portfolio.ServicePackage{}, nil).Maybe()
	repos.posts.On("FindPublished", mock.Anything).Return([]portfolio.BlogPost{}, nil).Maybe()
	repos.socials.On("FindActive", mock.Anything).Return([]portfolio.SocialLink{}, nil).Maybe()

	agg := NewContextAggregator(repos.repositories(), 0, nil)

	_, err := agg.Build(context.Background())
	assert.ErrorContains(t, err, "fetch journey")

	assert.Equal(t, FallbackContext, agg.PortfolioContext(context.Background()))
}

func TestContextAggregator_EmptyStore(t *testing.T) {
	repos := newMockRepos()
	repos.projects.On("FindAll", mock.Anything).Return([]portfolio.Project{}, nil)
	repos.journey.On("FindAll", mock.Anything).Return([]portfolio.JourneyItem{}, nil)
	repos.services.On("FindAll", mock.Anything).Return([]portfolio.ServicePackage{}, nil)
	repos.posts.On("FindPublished", mock.Anything).Return([]portfolio.BlogPost{}, nil)
	repos.socials.On("FindActive", mock.Anything).Return([]portfolio.SocialLink{}, nil)

	text := NewContextAggregator(repos.repositories(), 0, nil).PortfolioContext(context.Background())
	assert.NotEqual(t, FallbackContext, text)
	assert.Contains(t, text, "INSTRUKSI TAMBAHAN UNTUK AI")
}

type countingBuilder struct {
	calls atomic.Int32
	text  string
	err   error
	delay time.Duration
}

func (b *countingBuilder) Build(ctx context.Context) (string, error) {
	b.calls.Add(1)
	time.Sleep(b.delay)
	return b.text, b.err
}

func TestCachedContextSource_HitAndMiss(t *testing.T) {
	ctx := context.Background()
	builder := &countingBuilder{text: "fresh"}
	cache := new(mockCache)
	src := NewCachedContextSource(builder, cache, time.Minute, nil)

	cache.On("Get", ctx).Return("", false, nil).Once()
	cache.On("Set", mock.Anything, "fresh", time.Minute).Return(nil).Once()
	assert.Equal(t, "fresh", src.PortfolioContext(ctx))

	cache.On("Get", ctx).Return("cached", true, nil).Once()
	assert.Equal(t, "cached", src.PortfolioContext(ctx))

	assert.Equal(t, int32(1), builder.calls.Load())
	cache.AssertExpectations(t)
}

func TestCachedContextSource_FailureNotCached(t *testing.T) {
	ctx := context.Background()
	builder := &countingBuilder{err: errors.New("db down")}
	cache := new(mockCache)
	cache.On("Get", ctx).Return("", false, nil)

	src := NewCachedContextSource(builder, cache, time.Minute, nil)
	assert.Equal(t, FallbackContext, src.PortfolioContext(ctx))
	cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
}

func TestCachedContextSource_CacheReadErrorFallsThrough(t *testing.T) {
	ctx := context.Background()
	builder := &countingBuilder{text: "fresh"}
	cache := new(mockCache)
	cache.On("Get", ctx).Return("", false, errors.New("timeout"))
	cache.On("Set", mock.Anything, "fresh", time.Minute).Return(errors.New("timeout"))

	src := NewCachedContextSource(builder, cache, time.Minute, nil)
	assert.Equal(t, "fresh", src.PortfolioContext(ctx))
}

func TestCachedContextSource_SharesConcurrentRebuilds(t *testing.T) {
	ctx := context.Background()
	builder := &countingBuilder{text: "fresh", delay: 50 * time.Millisecond}
	cache := new(mockCache)
	cache.On("Get", ctx).Return("", false, nil)
	cache.On("Set", mock.Anything, "fresh", time.Minute).Return(nil)

	src := NewCachedContextSource(builder, cache, time.Minute, nil)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, "fresh", src.PortfolioContext(ctx))
		}()
	}
	wg.Wait()
	assert.Less(t, builder.calls.Load(), int32(8))
}

func TestCachedContextSource_Invalidate(t *testing.T) {
	ctx := context.Background()
	cache := new(mockCache)
	cache.On("Delete", ctx).Return(nil)

	src := NewCachedContextSource(&countingBuilder{}, cache, time.Minute, nil)
	require.NoError(t, src.Invalidate(ctx))
	cache.AssertExpectations(t)
}

// gatedBuilder blocks every Build until release is closed
type gatedBuilder struct {
	calls   atomic.Int32
	started chan struct{}
	release chan struct{}
}

func newGatedBuilder() *gatedBuilder {
	return &gatedBuilder{started: make(chan struct{}), release: make(chan struct{})}
}

func (b *gatedBuilder) Build(ctx context.Context) (string, error) {
	if b.calls.Add(1) == 1 {
		close(b.started)
	}
	<-b.release
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return "fresh", nil
}

func liveContext(ctx context.Context) bool { return ctx.Err() == nil }

func TestCachedContextSource_FirstCallerCancelDoesNotFailWaiters(t *testing.T) {
	builder := newGatedBuilder()
	cache := new(mockCache)
	cache.On("Get", mock.Anything).Return("", false, nil)
	cache.On("Set", mock.MatchedBy(liveContext), "fresh", time.Minute).Return(nil).Once()
	src := NewCachedContextSource(builder, cache, time.Minute, nil)

	ctxA, cancelA := context.WithCancel(context.Background())
	defer cancelA()
	resA := make(chan string, 1)
	go func() { resA <- src.PortfolioContext(ctxA) }()
	<-builder.started

	resB := make(chan string, 1)
	go func() { resB <- src.PortfolioContext(context.Background()) }()
	time.Sleep(50 * time.Millisecond)

	cancelA()
	close(builder.release)

	assert.Equal(t, "fresh", <-resB)
	assert.Equal(t, "fresh", <-resA)
	assert.Equal(t, int32(1), builder.calls.Load())
	cache.AssertExpectations(t)
}

func TestCachedContextSource_InvalidateDuringRebuildSkipsStaleWrite(t *testing.T) {
	ctx := context.Background()
	builder := newGatedBuilder()
	cache := new(mockCache)
	cache.On("Get", mock.Anything).Return("", false, nil)
	cache.On("Delete", mock.Anything).Return(nil).Once()
	src := NewCachedContextSource(builder, cache, time.Minute, nil)

	done := make(chan string, 1)
	go func() { done <- src.PortfolioContext(ctx) }()
	<-builder.started

	require.NoError(t, src.Invalidate(ctx))
	close(builder.release)

	assert.Equal(t, "fresh", <-done)
	cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)

	cache.On("Set", mock.Anything, "fresh", time.Minute).Return(nil).Once()
	assert.Equal(t, "fresh", src.PortfolioContext(ctx))
	assert.Equal(t, int32(2), builder.calls.Load())
	cache.AssertExpectations(t)
}
