package events_test

import (
	"context"
	"errors"
	"testing"

	"gotofork-core/internal/domain/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEvent struct {
	events.BaseEvent
}

func newTestEvent(eventType string) testEvent {
	return testEvent{BaseEvent: events.NewBaseEvent(eventType, "run-1")}
}

func TestDispatchInRegistrationOrder(t *testing.T) {
	d := events.NewDispatcher()
	var order []int
	d.Register("a", func(ctx context.Context, e events.DomainEvent) error {
		order = append(order, 1)
		return nil
	})
	d.Register("a", func(ctx context.Context, e events.DomainEvent) error {
		order = append(order, 2)
		return nil
	})
	d.Register("b", func(ctx context.Context, e events.DomainEvent) error {
		order = append(order, 3)
		return nil
	})

	require.NoError(t, d.Dispatch(context.Background(), newTestEvent("a")))
	assert.Equal(t, []int{1, 2}, order)
}

func TestDispatchWithoutHandlers(t *testing.T) {
	d := events.NewDispatcher()
	assert.NoError(t, d.Dispatch(context.Background(), newTestEvent("none")))
}

func TestDispatchJoinsErrors(t *testing.T) {
	d := events.NewDispatcher()
	boom := errors.New("boom")
	called := false
	d.Register("a", func(ctx context.Context, e events.DomainEvent) error { return boom })
	d.Register("a", func(ctx context.Context, e events.DomainEvent) error {
		called = true
		return nil
	})

	err := d.Dispatch(context.Background(), newTestEvent("a"))
	assert.ErrorIs(t, err, boom)
	assert.True(t, called, "later handlers still run")
}

func TestBaseEvent(t *testing.T) {
	e := events.NewBaseEvent("x", "run-9")
	assert.Equal(t, "x", e.EventType())
	assert.Equal(t, "run-9", e.RunID())
	assert.NotEmpty(t, e.EventID())
	assert.False(t, e.OccurredAt().IsZero())
}
