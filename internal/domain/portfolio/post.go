package portfolio

import (
	"context"
	"strings"
	"time"

	"github.com/dicky/portfolio/internal/domain/shared"
)

// BlogPost is an article. Only published posts are visible publicly.
type BlogPost struct {
	shared.BaseEntity
	Slug        string
	Title       string
	Excerpt     string
	Content     string
	CoverImage  string
	Tags        []string
	PublishedAt time.Time
	Published   bool
}

// Prepare derives the slug from the title when none is set and stamps
// PublishedAt the first time a post is published.
func (p *BlogPost) Prepare(now time.Time) {
	if strings.TrimSpace(p.Slug) == "" {
		p.Slug = Slugify(p.Title)
	} else {
		p.Slug = Slugify(p.Slug)
	}
	if p.Published && p.PublishedAt.IsZero() {
		p.PublishedAt = now
	}
}

// Validate checks the post
func (p *BlogPost) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return shared.NewDomainError("INVALID_INPUT", "post title is required")
	}
	if p.Slug == "" {
		return shared.NewDomainError("INVALID_INPUT", "post slug cannot be empty")
	}
	return nil
}

// PostRepository persists blog posts. FindAll includes drafts.
type PostRepository interface {
	shared.Repository[BlogPost]
	FindPublished(ctx context.Context) ([]BlogPost, error)
	FindBySlug(ctx context.Context, slug string) (*BlogPost, error)
}
