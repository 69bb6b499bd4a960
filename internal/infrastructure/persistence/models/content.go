package models

import (
	"time"

	"github.com/dicky/portfolio/internal/domain/portfolio"
)

// ProjectModel is the persistence model for portfolio.Project
type ProjectModel struct {
	BaseModel
	Title       string                      `gorm:"type:varchar(200);not null"`
	Subtitle    string                      `gorm:"type:varchar(300)"`
	Description string                      `gorm:"type:text"`
	Category    string                      `gorm:"type:varchar(100);index"`
	TechStack   JSONList[portfolio.TechTag] `gorm:"type:jsonb"`
	Image       string                      `gorm:"type:text"`
	DemoLink    string                      `gorm:"type:text"`
	RepoLink    string                      `gorm:"type:text"`
	Featured    bool                        `gorm:"not null;default:false"`
	Challenge   string                      `gorm:"type:text"`
	Solution    string                      `gorm:"type:text"`
	Features    JSONList[string]            `gorm:"type:jsonb"`
	Year        string                      `gorm:"type:varchar(20)"`
	Role        string                      `gorm:"type:varchar(100)"`
	Client      string                      `gorm:"type:varchar(200)"`
}

// TableName returns the table name for GORM
func (ProjectModel) TableName() string { return "projects" }

// ToDomain converts the model to a domain entity
func (m *ProjectModel) ToDomain() *portfolio.Project {
	return &portfolio.Project{
		BaseEntity:  m.BaseModel.entity(),
		Title:       m.Title,
		Subtitle:    m.Subtitle,
		Description: m.Description,
		Category:    m.Category,
		TechStack:   []portfolio.TechTag(m.TechStack),
		Image:       m.Image,
		DemoLink:    m.DemoLink,
		RepoLink:    m.RepoLink,
		Featured:    m.Featured,
		Challenge:   m.Challenge,
		Solution:    m.Solution,
		Features:    []string(m.Features),
		Year:        m.Year,
		Role:        m.Role,
		Client:      m.Client,
	}
}

// ProjectModelFromDomain converts a domain project to its model
func ProjectModelFromDomain(p *portfolio.Project) *ProjectModel {
	m := &ProjectModel{
		Title:       p.Title,
		Subtitle:    p.Subtitle,
		Description: p.Description,
		Category:    p.Category,
		TechStack:   JSONList[portfolio.TechTag](p.TechStack),
		Image:       p.Image,
		DemoLink:    p.DemoLink,
		RepoLink:    p.RepoLink,
		Featured:    p.Featured,
		Challenge:   p.Challenge,
		Solution:    p.Solution,
		Features:    JSONList[string](p.Features),
		Year:        p.Year,
		Role:        p.Role,
		Client:      p.Client,
	}
	m.BaseModel = baseModelOf(p.BaseEntity)
	return m
}

// JourneyItemModel is the persistence model for portfolio.JourneyItem
type JourneyItemModel struct {
	BaseModel
	Year        string `gorm:"type:varchar(20);not null;index"`
	Role        string `gorm:"type:varchar(200);not null"`
	Company     string `gorm:"type:varchar(200)"`
	Type        string `gorm:"type:varchar(20);not null"`
	Description string `gorm:"type:text"`
	SortOrder   int    `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (JourneyItemModel) TableName() string { return "journey_items" }

// ToDomain converts the model to a domain entity
func (m *JourneyItemModel) ToDomain() *portfolio.JourneyItem {
	return &portfolio.JourneyItem{
		BaseEntity:  m.BaseModel.entity(),
		Year:        m.Year,
		Role:        m.Role,
		Company:     m.Company,
		Type:        portfolio.JourneyType(m.Type),
		Description: m.Description,
		Order:       m.SortOrder,
	}
}

// JourneyItemModelFromDomain converts a domain journey item to its model
func JourneyItemModelFromDomain(j *portfolio.JourneyItem) *JourneyItemModel {
	m := &JourneyItemModel{
		Year:        j.Year,
		Role:        j.Role,
		Company:     j.Company,
		Type:        string(j.Type),
		Description: j.Description,
		SortOrder:   j.Order,
	}
	m.BaseModel = baseModelOf(j.BaseEntity)
	return m
}

// ServicePackageModel is the persistence model for portfolio.ServicePackage
type ServicePackageModel struct {
	BaseModel
	Title       string           `gorm:"type:varchar(200);not null"`
	Price       string           `gorm:"type:varchar(100)"`
	Duration    string           `gorm:"type:varchar(100)"`
	Description string           `gorm:"type:text"`
	Category    string           `gorm:"type:varchar(20);not null"`
	Features    JSONList[string] `gorm:"type:jsonb"`
	Recommended bool             `gorm:"not null;default:false"`
	Position    int              `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (ServicePackageModel) TableName() string { return "service_packages" }

// ToDomain converts the model to a domain entity
func (m *ServicePackageModel) ToDomain() *portfolio.ServicePackage {
	return &portfolio.ServicePackage{
		BaseEntity:  m.BaseModel.entity(),
		Title:       m.Title,
		Price:       m.Price,
		Duration:    m.Duration,
		Description: m.Description,
		Category:    portfolio.ServiceCategory(m.Category),
		Features:    []string(m.Features),
		Recommended: m.Recommended,
		Position:    m.Position,
	}
}

// ServicePackageModelFromDomain converts a domain package to its model
func ServicePackageModelFromDomain(s *portfolio.ServicePackage) *ServicePackageModel {
	m := &ServicePackageModel{
		Title:       s.Title,
		Price:       s.Price,
		Duration:    s.Duration,
		Description: s.Description,
		Category:    string(s.Category),
		Features:    JSONList[string](s.Features),
		Recommended: s.Recommended,
		Position:    s.Position,
	}
	m.BaseModel = baseModelOf(s.BaseEntity)
	return m
}

// SocialLinkModel is the persistence model for portfolio.SocialLink
type SocialLinkModel struct {
	BaseModel
	Platform string `gorm:"type:varchar(100);not null"`
	Label    string `gorm:"type:varchar(200)"`
	URL      string `gorm:"type:text;not null"`
	Category string `gorm:"type:varchar(100)"`
	Icon     string `gorm:"type:varchar(100)"`
	Active   bool   `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (SocialLinkModel) TableName() string { return "social_links" }

// ToDomain converts the model to a domain entity
func (m *SocialLinkModel) ToDomain() *portfolio.SocialLink {
	return &portfolio.SocialLink{
		BaseEntity: m.BaseModel.entity(),
		Platform:   m.Platform,
		Label:      m.Label,
		URL:        m.URL,
		Category:   m.Category,
		Icon:       m.Icon,
		Active:     m.Active,
	}
}

// SocialLinkModelFromDomain converts a domain link to its model
func SocialLinkModelFromDomain(s *portfolio.SocialLink) *SocialLinkModel {
	m := &SocialLinkModel{
		Platform: s.Platform,
		Label:    s.Label,
		URL:      s.URL,
		Category: s.Category,
		Icon:     s.Icon,
		Active:   s.Active,
	}
	m.BaseModel = baseModelOf(s.BaseEntity)
	return m
}

// BlogPostModel is the persistence model for portfolio.BlogPost
type BlogPostModel struct {
	BaseModel
	Slug        string           `gorm:"type:varchar(200);not null;uniqueIndex"`
	Title       string           `gorm:"type:varchar(300);not null"`
	Excerpt     string           `gorm:"type:text"`
	Content     string           `gorm:"type:text"`
	CoverImage  string           `gorm:"type:text"`
	Tags        JSONList[string] `gorm:"type:jsonb"`
	PublishedAt *time.Time       `gorm:"index"`
	Published   bool             `gorm:"not null;default:false;index"`
}

// TableName returns the table name for GORM
func (BlogPostModel) TableName() string { return "blog_posts" }

// ToDomain converts the model to a domain entity
func (m *BlogPostModel) ToDomain() *portfolio.BlogPost {
	p := &portfolio.BlogPost{
		BaseEntity: m.BaseModel.entity(),
		Slug:       m.Slug,
		Title:      m.Title,
		Excerpt:    m.Excerpt,
		Content:    m.Content,
		CoverImage: m.CoverImage,
		Tags:       []string(m.Tags),
		Published:  m.Published,
	}
	if m.PublishedAt != nil {
		p.PublishedAt = *m.PublishedAt
	}
	return p
}

// BlogPostModelFromDomain converts a domain post to its model
func BlogPostModelFromDomain(p *portfolio.BlogPost) *BlogPostModel {
	m := &BlogPostModel{
		Slug:       p.Slug,
		Title:      p.Title,
		Excerpt:    p.Excerpt,
		Content:    p.Content,
		CoverImage: p.CoverImage,
		Tags:       JSONList[string](p.Tags),
		Published:  p.Published,
	}
	if !p.PublishedAt.IsZero() {
		t := p.PublishedAt
		m.PublishedAt = &t
	}
	m.BaseModel = baseModelOf(p.BaseEntity)
	return m
}
