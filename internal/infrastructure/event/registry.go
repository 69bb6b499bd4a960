package event

import (
	"slices"
	"sync"

	"github.com/dicky/portfolio/internal/domain/shared"
)

// subscription binds a handler to the event types it receives. An empty
// type list matches every event.
type subscription struct {
	handler shared.EventHandler
	types   []string
}

func (s subscription) matches(eventType string) bool {
	return len(s.types) == 0 || slices.Contains(s.types, eventType)
}

// HandlerRegistry keeps subscriptions in registration order
type HandlerRegistry struct {
	mu   sync.RWMutex
	subs []subscription
}

// NewHandlerRegistry creates an empty registry
func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

// Register subscribes handler to eventTypes, or to every event when none
// are given. Registering the same handler again widens its subscription.
func (r *HandlerRegistry) Register(handler shared.EventHandler, eventTypes ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.subs {
		if r.subs[i].handler != handler {
			continue
		}
		if len(eventTypes) == 0 || len(r.subs[i].types) == 0 {
			r.subs[i].types = nil
			return
		}
		for _, t := range eventTypes {
			if !slices.Contains(r.subs[i].types, t) {
				r.subs[i].types = append(r.subs[i].types, t)
			}
		}
		return
	}
	r.subs = append(r.subs, subscription{handler: handler, types: slices.Clone(eventTypes)})
}

// Unregister drops every subscription of handler
func (r *HandlerRegistry) Unregister(handler shared.EventHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subs = slices.DeleteFunc(r.subs, func(s subscription) bool { return s.handler == handler })
}

// GetHandlers returns the handlers subscribed to eventType
func (r *HandlerRegistry) GetHandlers(eventType string) []shared.EventHandler {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []shared.EventHandler
	for _, s := range r.subs {
		if s.matches(eventType) {
			out = append(out, s.handler)
		}
	}
	return out
}

// GetAllHandlers returns each registered handler once
func (r *HandlerRegistry) GetAllHandlers() []shared.EventHandler {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]shared.EventHandler, 0, len(r.subs))
	for _, s := range r.subs {
		out = append(out, s.handler)
	}
	return out
}
