package portfolio

import (
	"context"
	"net/url"
	"strings"

	"github.com/dicky/portfolio/internal/domain/shared"
)

// SocialLink is a contact channel shown in the footer and contact page
type SocialLink struct {
	shared.BaseEntity
	Platform string
	Label    string
	URL      string
	Category string
	Icon     string
	Active   bool
}

// DisplayName returns the label, falling back to the platform name
func (s *SocialLink) DisplayName() string {
	if s.Label != "" {
		return s.Label
	}
	return s.Platform
}

// Validate checks the link
func (s *SocialLink) Validate() error {
	if strings.TrimSpace(s.Platform) == "" {
		return shared.NewDomainError("INVALID_INPUT", "social platform is required")
	}
	u, err := url.Parse(s.URL)
	if err != nil || u.Scheme == "" {
		return shared.NewDomainError("INVALID_INPUT", "social url must be absolute")
	}
	return nil
}

// SocialLinkRepository persists links
type SocialLinkRepository interface {
	shared.Repository[SocialLink]
	FindActive(ctx context.Context) ([]SocialLink, error)
}
