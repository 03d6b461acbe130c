package fork

import (
	"gotofork-core/internal/domain/events"
)

// Event types
const (
	EventTypeUpstreamResolved = "fork.upstream_resolved"
	EventTypeForksDiscovered  = "fork.forks_discovered"
)

// UpstreamResolvedEvent is raised when the viewed repository is a fork with a known parent
type UpstreamResolvedEvent struct {
	events.BaseEvent
	Repository string
	Upstream   string
	URL        string
}

// NewUpstreamResolvedEvent creates a new UpstreamResolvedEvent
func NewUpstreamResolvedEvent(runID string, repository RepositoryRef, upstream UpstreamLink) *UpstreamResolvedEvent {
	return &UpstreamResolvedEvent{
		BaseEvent:  events.NewBaseEvent(EventTypeUpstreamResolved, runID),
		Repository: repository.FullName(),
		Upstream:   upstream.FullName(),
		URL:        upstream.URL,
	}
}

// ForksDiscoveredEvent is raised after fork enumeration completes
type ForksDiscoveredEvent struct {
	events.BaseEvent
	Source string
	Login  string
	Count  int
}

// NewForksDiscoveredEvent creates a new ForksDiscoveredEvent
func NewForksDiscoveredEvent(runID string, source RepositoryRef, login string, count int) *ForksDiscoveredEvent {
	return &ForksDiscoveredEvent{
		BaseEvent: events.NewBaseEvent(EventTypeForksDiscovered, runID),
		Source:    source.FullName(),
		Login:     login,
		Count:     count,
	}
}
