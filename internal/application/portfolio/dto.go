package portfolio

import (
	"time"

	"github.com/dicky/portfolio/internal/domain/portfolio"
	"github.com/google/uuid"
)

// Inputs carry pointer fields so a nil field leaves the stored value
// untouched on update. Create applies the same input to a zero entity.

// TechTagInput is a technology badge in a project input
type TechTagInput struct {
	Name  string `json:"name" binding:"required,max=100"`
	Color string `json:"color" binding:"omitempty,max=20"`
}

// ProjectInput creates or updates a project
type ProjectInput struct {
	Title       *string         `json:"title" binding:"omitempty,max=200"`
	Subtitle    *string         `json:"subtitle" binding:"omitempty,max=300"`
	Description *string         `json:"description"`
	Category    *string         `json:"category" binding:"omitempty,max=100"`
	TechStack   *[]TechTagInput `json:"tech_stack" binding:"omitempty,dive"`
	Image       *string         `json:"image" binding:"omitempty,url"`
	DemoLink    *string         `json:"demo_link" binding:"omitempty,url"`
	RepoLink    *string         `json:"repo_link" binding:"omitempty,url"`
	Featured    *bool           `json:"featured"`
	Challenge   *string         `json:"challenge"`
	Solution    *string         `json:"solution"`
	Features    *[]string       `json:"features"`
	Year        *string         `json:"year" binding:"omitempty,max=20"`
	Role        *string         `json:"role" binding:"omitempty,max=100"`
	Client      *string         `json:"client" binding:"omitempty,max=200"`
}

func (in ProjectInput) apply(p *portfolio.Project) {
	set(&p.Title, in.Title)
	set(&p.Subtitle, in.Subtitle)
	set(&p.Description, in.Description)
	set(&p.Category, in.Category)
	if in.TechStack != nil {
		tags := make([]portfolio.TechTag, 0, len(*in.TechStack))
		for _, t := range *in.TechStack {
			tags = append(tags, portfolio.TechTag{Name: t.Name, Color: t.Color})
		}
		p.TechStack = tags
	}
	set(&p.Image, in.Image)
	set(&p.DemoLink, in.DemoLink)
	set(&p.RepoLink, in.RepoLink)
	set(&p.Featured, in.Featured)
	set(&p.Challenge, in.Challenge)
	set(&p.Solution, in.Solution)
	set(&p.Features, in.Features)
	set(&p.Year, in.Year)
	set(&p.Role, in.Role)
	set(&p.Client, in.Client)
}

// JourneyInput creates or updates a journey entry
type JourneyInput struct {
	Year        *string `json:"year" binding:"omitempty,max=20"`
	Role        *string `json:"role" binding:"omitempty,max=200"`
	Company     *string `json:"company" binding:"omitempty,max=200"`
	Type        *string `json:"type" binding:"omitempty,oneof=work education certification"`
	Description *string `json:"description"`
	Order       *int    `json:"order"`
}

func (in JourneyInput) apply(j *portfolio.JourneyItem) {
	set(&j.Year, in.Year)
	set(&j.Role, in.Role)
	set(&j.Company, in.Company)
	if in.Type != nil {
		j.Type = portfolio.JourneyType(*in.Type)
	}
	set(&j.Description, in.Description)
	set(&j.Order, in.Order)
}

// ServicePackageInput creates or updates a service package
type ServicePackageInput struct {
	Title       *string   `json:"title" binding:"omitempty,max=200"`
	Price       *string   `json:"price" binding:"omitempty,max=100"`
	Duration    *string   `json:"duration" binding:"omitempty,max=100"`
	Description *string   `json:"description"`
	Category    *string   `json:"category" binding:"omitempty,oneof=frontend fullstack backend"`
	Features    *[]string `json:"features"`
	Recommended *bool     `json:"recommended"`
	Position    *int      `json:"position"`
}

func (in ServicePackageInput) apply(s *portfolio.ServicePackage) {
	set(&s.Title, in.Title)
	set(&s.Price, in.Price)
	set(&s.Duration, in.Duration)
	set(&s.Description, in.Description)
	if in.Category != nil {
		s.Category = portfolio.ServiceCategory(*in.Category)
	}
	set(&s.Features, in.Features)
	set(&s.Recommended, in.Recommended)
	set(&s.Position, in.Position)
}

// SocialLinkInput creates or updates a social link
type SocialLinkInput struct {
	Platform *string `json:"platform" binding:"omitempty,max=100"`
	Label    *string `json:"label" binding:"omitempty,max=200"`
	URL      *string `json:"url" binding:"omitempty,url"`
	Category *string `json:"category" binding:"omitempty,max=100"`
	Icon     *string `json:"icon" binding:"omitempty,max=100"`
	Active   *bool   `json:"active"`
}

func (in SocialLinkInput) apply(s *portfolio.SocialLink) {
	set(&s.Platform, in.Platform)
	set(&s.Label, in.Label)
	set(&s.URL, in.URL)
	set(&s.Category, in.Category)
	set(&s.Icon, in.Icon)
	set(&s.Active, in.Active)
}

// PostInput creates or updates a blog post
type PostInput struct {
	Slug       *string   `json:"slug" binding:"omitempty,max=200"`
	Title      *string   `json:"title" binding:"omitempty,max=300"`
	Excerpt    *string   `json:"excerpt"`
	Content    *string   `json:"content"`
	CoverImage *string   `json:"cover_image" binding:"omitempty,url"`
	Tags       *[]string `json:"tags"`
	Published  *bool     `json:"published"`
}

func (in PostInput) apply(p *portfolio.BlogPost) {
	set(&p.Slug, in.Slug)
	set(&p.Title, in.Title)
	set(&p.Excerpt, in.Excerpt)
	set(&p.Content, in.Content)
	set(&p.CoverImage, in.CoverImage)
	set(&p.Tags, in.Tags)
	set(&p.Published, in.Published)
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// ProjectResponse represents a project in API responses
type ProjectResponse struct {
	ID          uuid.UUID           `json:"id"`
	Title       string              `json:"title"`
	Subtitle    string              `json:"subtitle"`
	Description string              `json:"description"`
	Category    string              `json:"category"`
	TechStack   []portfolio.TechTag `json:"tech_stack"`
	Image       string              `json:"image"`
	DemoLink    string              `json:"demo_link"`
	RepoLink    string              `json:"repo_link"`
	Featured    bool                `json:"featured"`
	Challenge   string              `json:"challenge"`
	Solution    string              `json:"solution"`
	Features    []string            `json:"features"`
	Year        string              `json:"year"`
	Role        string              `json:"role"`
	Client      string              `json:"client"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// ToProjectResponse converts a domain project to its response
func ToProjectResponse(p *portfolio.Project) *ProjectResponse {
	return &ProjectResponse{
		ID:          p.ID,
		Title:       p.Title,
		Subtitle:    p.Subtitle,
		Description: p.Description,
		Category:    p.Category,
		TechStack:   nonNil(p.TechStack),
		Image:       p.Image,
		DemoLink:    p.DemoLink,
		RepoLink:    p.RepoLink,
		Featured:    p.Featured,
		Challenge:   p.Challenge,
		Solution:    p.Solution,
		Features:    nonNil(p.Features),
		Year:        p.Year,
		Role:        p.Role,
		Client:      p.Client,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// JourneyResponse represents a journey entry in API responses
type JourneyResponse struct {
	ID          uuid.UUID `json:"id"`
	Year        string    `json:"year"`
	Role        string    `json:"role"`
	Company     string    `json:"company"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Order       int       `json:"order"`
}

// ToJourneyResponse converts a domain journey item to its response
func ToJourneyResponse(j *portfolio.JourneyItem) *JourneyResponse {
	return &JourneyResponse{
		ID:          j.ID,
		Year:        j.Year,
		Role:        j.Role,
		Company:     j.Company,
		Type:        string(j.Type),
		Description: j.Description,
		Order:       j.Order,
	}
}

// ServicePackageResponse represents a service package in API responses
type ServicePackageResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Price       string    `json:"price"`
	Duration    string    `json:"duration"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Features    []string  `json:"features"`
	Recommended bool      `json:"recommended"`
	Position    int       `json:"position"`
}

// ToServicePackageResponse converts a domain package to its response
func ToServicePackageResponse(s *portfolio.ServicePackage) *ServicePackageResponse {
	return &ServicePackageResponse{
		ID:          s.ID,
		Title:       s.Title,
		Price:       s.Price,
		Duration:    s.Duration,
		Description: s.Description,
		Category:    string(s.Category),
		Features:    nonNil(s.Features),
		Recommended: s.Recommended,
		Position:    s.Position,
	}
}

// SocialLinkResponse represents a social link in API responses
type SocialLinkResponse struct {
	ID       uuid.UUID `json:"id"`
	Platform string    `json:"platform"`
	Label    string    `json:"label"`
	URL      string    `json:"url"`
	Category string    `json:"category"`
	Icon     string    `json:"icon"`
	Active   bool      `json:"active"`
}

// ToSocialLinkResponse converts a domain link to its response
func ToSocialLinkResponse(s *portfolio.SocialLink) *SocialLinkResponse {
	return &SocialLinkResponse{
		ID:       s.ID,
		Platform: s.Platform,
		Label:    s.Label,
		URL:      s.URL,
		Category: s.Category,
		Icon:     s.Icon,
		Active:   s.Active,
	}
}

// PostResponse represents a blog post in API responses
type PostResponse struct {
	ID          uuid.UUID  `json:"id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Excerpt     string     `json:"excerpt"`
	Content     string     `json:"content,omitempty"`
	CoverImage  string     `json:"cover_image"`
	Tags        []string   `json:"tags"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ToPostResponse converts a domain post to its response
func ToPostResponse(p *portfolio.BlogPost) *PostResponse {
	r := &PostResponse{
		ID:         p.ID,
		Slug:       p.Slug,
		Title:      p.Title,
		Excerpt:    p.Excerpt,
		Content:    p.Content,
		CoverImage: p.CoverImage,
		Tags:       nonNil(p.Tags),
		Published:  p.Published,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
	if !p.PublishedAt.IsZero() {
		t := p.PublishedAt
		r.PublishedAt = &t
	}
	return r
}

// ToPostSummary converts a post for list views, without its body
func ToPostSummary(p *portfolio.BlogPost) *PostResponse {
	r := ToPostResponse(p)
	r.Content = ""
	return r
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func mapAll[E any, R any](items []E, fn func(*E) *R) []R {
	out := make([]R, 0, len(items))
	for i := range items {
		out = append(out, *fn(&items[i]))
	}
	return out
}
