package service_test

import (
	"context"
	"errors"
	"testing"

	"gotofork-core/internal/application/dto"
	"gotofork-core/internal/application/service"
	"gotofork-core/internal/domain/events"
	"gotofork-core/internal/domain/fork"
	"gotofork-core/internal/infrastructure/credential"
	"gotofork-core/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct{}

func (failingStore) Get(ctx context.Context, key string) (string, bool, error) {
	return "", false, errors.New("store offline")
}

func newPipeline(gh *mockGitHubService, store fork.CredentialStore, publisher events.Publisher) *service.Pipeline {
	return service.NewPipeline(
		fork.NewPageMatcher("github.com"),
		service.NewRepositoryResolver(gh),
		service.NewForkLocator(gh, 100),
		store,
		publisher,
		metrics.New(prometheus.NewRegistry()),
	)
}

func tokenStore() *credential.MemoryStore {
	return credential.NewMemoryStore(map[string]string{fork.CredentialKey: "token"})
}

func TestPipeline_MissingCredentialMakesNoCalls(t *testing.T) {
	gh := newMockGitHubService("me")
	p := newPipeline(gh, credential.NewMemoryStore(nil), nil)

	result := p.Run(context.Background(), "https://github.com/octocat/hello-world")

	assert.Equal(t, dto.SkipNoCredential, result.Skipped)
	assert.False(t, result.HasButtons())
	assert.Zero(t, gh.callCount())
}

func TestPipeline_CredentialStoreError(t *testing.T) {
	gh := newMockGitHubService("me")
	p := newPipeline(gh, failingStore{}, nil)

	result := p.Run(context.Background(), "https://github.com/octocat/hello-world")

	assert.Equal(t, dto.SkipCredentialError, result.Skipped)
	assert.Zero(t, gh.callCount())
}

func TestPipeline_NonRepositoryURL(t *testing.T) {
	gh := newMockGitHubService("me")
	p := newPipeline(gh, tokenStore(), nil)

	result := p.Run(context.Background(), "https://github.com/octocat")

	assert.Equal(t, dto.SkipInvalidURL, result.Skipped)
	assert.Zero(t, gh.callCount())
}

func TestPipeline_NonForkShowsOnlyForkButton(t *testing.T) {
	gh := newMockGitHubService("me")
	gh.addRepo(ghRepo("octocat", "hello-world"))
	gh.addForkPage(source, ghRepo("me", "hello-world"))
	p := newPipeline(gh, tokenStore(), nil)

	result := p.Run(context.Background(), "https://github.com/octocat/hello-world/pulls")

	assert.Empty(t, result.Skipped)
	assert.Nil(t, result.Upstream)
	require.Len(t, result.Forks, 1)
	assert.Equal(t, "me/hello-world", result.Forks[0].FullName)
	assert.Equal(t, "https://github.com/me/hello-world", result.Forks[0].URL)
	assert.NotEmpty(t, result.RunID)
}

func TestPipeline_ForkOfForkSearchesSource(t *testing.T) {
	gh := newMockGitHubService("me")
	original := ghRepo("octocat", "hello-world")
	middle := ghFork("middle", "hello-world", original, original)
	gh.addRepo(ghFork("someone", "hello-world", middle, original))
	gh.addForkPage(source, ghRepo("me", "hello-world"))
	p := newPipeline(gh, tokenStore(), nil)

	result := p.Run(context.Background(), "https://github.com/someone/hello-world")

	require.NotNil(t, result.Upstream)
	assert.Equal(t, "https://github.com/middle/hello-world", result.Upstream.URL)
	assert.Equal(t, "middle/hello-world", result.Upstream.FullName)
	require.NotEmpty(t, gh.forkCalls)
	assert.Contains(t, gh.forkCalls[0], "forks octocat/hello-world ")
	assert.Len(t, result.Forks, 1)
}

func TestPipeline_OwnRepositorySkipsForkSearch(t *testing.T) {
	gh := newMockGitHubService("Me")
	original := ghRepo("octocat", "hello-world")
	gh.addRepo(ghFork("me", "hello-world", original, original))
	gh.addForkPage(source, ghRepo("me", "hello-world"), ghRepo("Me", "other"))
	p := newPipeline(gh, tokenStore(), nil)

	result := p.Run(context.Background(), "https://github.com/me/hello-world")

	assert.True(t, result.OwnRepository)
	assert.Empty(t, result.Forks)
	assert.Empty(t, gh.forkCalls)
	require.NotNil(t, result.Upstream, "upstream is still offered on your own fork")
	assert.Equal(t, "octocat/hello-world", result.Upstream.FullName)
}

func TestPipeline_AuthFailureRendersNothing(t *testing.T) {
	gh := newMockGitHubService("me")
	gh.userErr = fork.ErrAuth(errors.New("status 401"))
	p := newPipeline(gh, tokenStore(), nil)

	result := p.Run(context.Background(), "https://github.com/octocat/hello-world")

	assert.Equal(t, dto.SkipAuthFailed, result.Skipped)
	assert.False(t, result.HasButtons())
}

func TestPipeline_NotFoundRendersNothing(t *testing.T) {
	gh := newMockGitHubService("me")
	p := newPipeline(gh, tokenStore(), nil)

	result := p.Run(context.Background(), "https://github.com/octocat/missing")

	assert.Equal(t, dto.SkipNotFound, result.Skipped)
	assert.False(t, result.HasButtons())
	assert.Empty(t, gh.forkCalls)
}

func TestPipeline_PublishesEvents(t *testing.T) {
	gh := newMockGitHubService("me")
	original := ghRepo("octocat", "hello-world")
	gh.addRepo(ghFork("someone", "hello-world", original, original))
	gh.addForkPage(source, ghRepo("me", "hello-world"))

	d := events.NewDispatcher()
	var seen []string
	record := func(ctx context.Context, e events.DomainEvent) error {
		seen = append(seen, e.EventType())
		return nil
	}
	d.Register(fork.EventTypeUpstreamResolved, record)
	d.Register(fork.EventTypeForksDiscovered, func(ctx context.Context, e events.DomainEvent) error {
		discovered, ok := e.(*fork.ForksDiscoveredEvent)
		require.True(t, ok)
		assert.Equal(t, 1, discovered.Count)
		assert.Equal(t, "octocat/hello-world", discovered.Source)
		return record(ctx, e)
	})
	p := newPipeline(gh, tokenStore(), d)

	result := p.Run(context.Background(), "https://github.com/someone/hello-world")

	assert.Equal(t, []string{fork.EventTypeUpstreamResolved, fork.EventTypeForksDiscovered}, seen)
	assert.Len(t, result.Forks, 1)
}
