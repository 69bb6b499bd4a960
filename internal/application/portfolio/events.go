package portfolio

import (
	"context"

	"github.com/dicky/portfolio/internal/domain/portfolio"
	"github.com/dicky/portfolio/internal/domain/shared"
	"go.uber.org/zap"
)

// ContextInvalidator drops any cached copy of the assistant context
type ContextInvalidator interface {
	Invalidate(ctx context.Context) error
}

// ContextInvalidationHandler drops the cached assistant context whenever
// content changes so the next chat sees the new data.
type ContextInvalidationHandler struct {
	target ContextInvalidator
	logger *zap.Logger
}

// NewContextInvalidationHandler creates a handler for content events
func NewContextInvalidationHandler(target ContextInvalidator, logger *zap.Logger) *ContextInvalidationHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContextInvalidationHandler{target: target, logger: logger}
}

// EventTypes returns the content event types
func (h *ContextInvalidationHandler) EventTypes() []string {
	return []string{portfolio.EventTypeContentSaved, portfolio.EventTypeContentDeleted}
}

// Handle invalidates the cached context
func (h *ContextInvalidationHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	h.logger.Debug("Invalidating assistant context",
		zap.String("event_type", event.EventType()),
		zap.String("aggregate_type", event.AggregateType()),
		zap.String("aggregate_id", event.AggregateID().String()),
	)
	return h.target.Invalidate(ctx)
}

var _ shared.EventHandler = (*ContextInvalidationHandler)(nil)
