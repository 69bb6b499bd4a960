package portfolio

import (
	"time"

	"github.com/dicky/portfolio/internal/domain/shared"
	"github.com/google/uuid"
)

// Content event types
const (
	EventTypeContentSaved   = "content.saved"
	EventTypeContentDeleted = "content.deleted"
)

// Aggregate types carried by content events
const (
	AggregateProject        = "project"
	AggregateJourneyItem    = "journey_item"
	AggregateServicePackage = "service_package"
	AggregateSocialLink     = "social_link"
	AggregateBlogPost       = "blog_post"
)

// ContentChangedEvent is published after an admin write to any content
// collection.
type ContentChangedEvent struct {
	shared.BaseDomainEvent
}

// NewContentSavedEvent records a create or update of one record
func NewContentSavedEvent(aggType string, id uuid.UUID, at time.Time) *ContentChangedEvent {
	return &ContentChangedEvent{BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeContentSaved, aggType, id, at)}
}

// NewContentDeletedEvent records the removal of one record
func NewContentDeletedEvent(aggType string, id uuid.UUID, at time.Time) *ContentChangedEvent {
	return &ContentChangedEvent{BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeContentDeleted, aggType, id, at)}
}
