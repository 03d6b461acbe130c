package events

import (
	"context"
	"errors"
	"sync"

	"gotofork-core/internal/logger"

	"go.uber.org/zap"
)

// EventHandler is a function that handles a domain event
type EventHandler func(ctx context.Context, event DomainEvent) error

// Publisher is what the pipeline depends on
type Publisher interface {
	Dispatch(ctx context.Context, event DomainEvent) error
}

// Dispatcher delivers events to registered handlers in registration order.
// Handler failures are logged and joined; they never stop later handlers.
type Dispatcher struct {
	handlers map[string][]EventHandler
	mu       sync.RWMutex
}

// NewDispatcher creates a new event dispatcher
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		handlers: make(map[string][]EventHandler),
	}
}

// Register registers an event handler for a specific event type
func (d *Dispatcher) Register(eventType string, handler EventHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.handlers[eventType] = append(d.handlers[eventType], handler)
}

// Dispatch dispatches an event to all handlers registered for its type
func (d *Dispatcher) Dispatch(ctx context.Context, event DomainEvent) error {
	d.mu.RLock()
	handlers := append([]EventHandler(nil), d.handlers[event.EventType()]...)
	d.mu.RUnlock()

	var errs []error
	for _, h := range handlers {
		if err := h(ctx, event); err != nil {
			logger.Named("events").Warn("event handler failed",
				zap.String("event_type", event.EventType()),
				zap.String("event_id", event.EventID()),
				logger.RunID(event.RunID()),
				logger.Err(err))
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// DispatchAll dispatches multiple events, stopping at the first failure
func (d *Dispatcher) DispatchAll(ctx context.Context, events []DomainEvent) error {
	for _, event := range events {
		if err := d.Dispatch(ctx, event); err != nil {
			return err
		}
	}
	return nil
}
