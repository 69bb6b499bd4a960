package portfolio

import (
	"strings"

	"github.com/dicky/portfolio/internal/domain/shared"
)

// JourneyType classifies a career timeline entry
type JourneyType string

const (
	JourneyWork          JourneyType = "work"
	JourneyEducation     JourneyType = "education"
	JourneyCertification JourneyType = "certification"
)

// IsValid reports whether t is a known journey type
func (t JourneyType) IsValid() bool {
	switch t {
	case JourneyWork, JourneyEducation, JourneyCertification:
		return true
	}
	return false
}

// JourneyItem is one entry in the career timeline
type JourneyItem struct {
	shared.BaseEntity
	Year        string
	Role        string
	Company     string
	Type        JourneyType
	Description string
	Order       int
}

// Validate checks the journey entry
func (j *JourneyItem) Validate() error {
	if strings.TrimSpace(j.Role) == "" {
		return shared.NewDomainError("INVALID_INPUT", "journey role is required")
	}
	if strings.TrimSpace(j.Year) == "" {
		return shared.NewDomainError("INVALID_INPUT", "journey year is required")
	}
	if !j.Type.IsValid() {
		return shared.NewDomainError("INVALID_INPUT", "journey type must be one of: work, education, certification")
	}
	return nil
}

// JourneyRepository persists the timeline. FindAll orders by year
// descending, compared as text, then by Order.
type JourneyRepository interface {
	shared.Repository[JourneyItem]
}
