// Package portfolio models the public content of the portfolio site:
// projects, career journey, service packages, social links and blog posts.
package portfolio

import (
	"strings"

	"github.com/dicky/portfolio/internal/domain/shared"
)

// TechTag is a technology badge shown on a project card
type TechTag struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// Project is a showcased piece of work
type Project struct {
	shared.BaseEntity
	Title       string
	Subtitle    string
	Description string
	Category    string
	TechStack   []TechTag
	Image       string
	DemoLink    string
	RepoLink    string
	Featured    bool
	Challenge   string
	Solution    string
	Features    []string
	Year        string
	Role        string
	Client      string
}

// Validate checks the fields required to publish a project
func (p *Project) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return shared.NewDomainError("INVALID_INPUT", "project title is required")
	}
	for _, t := range p.TechStack {
		if strings.TrimSpace(t.Name) == "" {
			return shared.NewDomainError("INVALID_INPUT", "tech stack entries need a name")
		}
	}
	return nil
}

// TechNames returns the names of the project's technologies
func (p *Project) TechNames() []string {
	names := make([]string, 0, len(p.TechStack))
	for _, t := range p.TechStack {
		names = append(names, t.Name)
	}
	return names
}

// ProjectRepository persists projects. FindAll returns featured projects
// first, then newest year first.
type ProjectRepository interface {
	shared.Repository[Project]
}
