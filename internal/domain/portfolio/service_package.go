package portfolio

import (
	"strings"

	"github.com/dicky/portfolio/internal/domain/shared"
)

// ServiceCategory groups service packages
type ServiceCategory string

const (
	ServiceFrontend  ServiceCategory = "frontend"
	ServiceFullstack ServiceCategory = "fullstack"
	ServiceBackend   ServiceCategory = "backend"
)

// IsValid reports whether c is a known category
func (c ServiceCategory) IsValid() bool {
	switch c {
	case ServiceFrontend, ServiceFullstack, ServiceBackend:
		return true
	}
	return false
}

// ServicePackage is an offer listed on the services page. Price is display
// text ("Rp 3.500.000", "Mulai 1jt") and is never computed on.
type ServicePackage struct {
	shared.BaseEntity
	Title       string
	Price       string
	Duration    string
	Description string
	Category    ServiceCategory
	Features    []string
	Recommended bool
	Position    int
}

// Validate checks the package
func (s *ServicePackage) Validate() error {
	if strings.TrimSpace(s.Title) == "" {
		return shared.NewDomainError("INVALID_INPUT", "service title is required")
	}
	if !s.Category.IsValid() {
		return shared.NewDomainError("INVALID_INPUT", "service category must be one of: frontend, fullstack, backend")
	}
	return nil
}

// ServicePackageRepository persists packages, ordered by Position
type ServicePackageRepository interface {
	shared.Repository[ServicePackage]
}
