package portfolio

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dicky/portfolio/internal/domain/portfolio"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestContextInvalidationHandler(t *testing.T) {
	inv := new(mockInvalidator)
	h := NewContextInvalidationHandler(inv, nil)
	ctx := context.Background()

	assert.ElementsMatch(t,
		[]string{portfolio.EventTypeContentSaved, portfolio.EventTypeContentDeleted},
		h.EventTypes())

	inv.On("Invalidate", ctx).Return(nil).Once()
	assert.NoError(t, h.Handle(ctx, portfolio.NewContentSavedEvent(portfolio.AggregateProject, uuid.New(), time.Now())))

	inv.On("Invalidate", ctx).Return(errors.New("redis down")).Once()
	assert.EqualError(t,
		h.Handle(ctx, portfolio.NewContentDeletedEvent(portfolio.AggregateBlogPost, uuid.New(), time.Now())),
		"redis down")

	inv.AssertExpectations(t)
}
