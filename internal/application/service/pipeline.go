package service

import (
	"context"
	"strings"

	"gotofork-core/internal/application/dto"
	"gotofork-core/internal/domain/events"
	"gotofork-core/internal/domain/fork"
	"gotofork-core/internal/logger"
	"gotofork-core/internal/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OutcomeCompleted is the metrics outcome of a run that reached the end
const OutcomeCompleted = "completed"

// Pipeline runs the resolver and the locator for one repository page.
// Every failure yields an empty result; nothing is surfaced to the page.
type Pipeline struct {
	matcher     *fork.PageMatcher
	resolver    *RepositoryResolver
	locator     *ForkLocator
	credentials fork.CredentialStore
	publisher   events.Publisher
	metrics     *metrics.Metrics
	log         *zap.Logger
}

// NewPipeline creates a new pipeline. publisher and m may be nil.
func NewPipeline(
	matcher *fork.PageMatcher,
	resolver *RepositoryResolver,
	locator *ForkLocator,
	credentials fork.CredentialStore,
	publisher events.Publisher,
	m *metrics.Metrics,
) *Pipeline {
	return &Pipeline{
		matcher:     matcher,
		resolver:    resolver,
		locator:     locator,
		credentials: credentials,
		publisher:   publisher,
		metrics:     m,
		log:         logger.Named("pipeline"),
	}
}

// Run computes the shortcuts for pageURL
func (p *Pipeline) Run(ctx context.Context, pageURL string) *dto.AugmentResult {
	result := &dto.AugmentResult{
		RunID: uuid.New().String(),
		URL:   pageURL,
		Forks: []dto.ForkResponse{},
	}
	log := p.log.With(logger.RunID(result.RunID))

	ref, ok := p.matcher.Match(pageURL)
	if !ok {
		return p.skip(result, dto.SkipInvalidURL)
	}
	result.Repository = ref.FullName()
	log = log.With(logger.Repository(ref.FullName()))

	token, ok, err := p.credentials.Get(ctx, fork.CredentialKey)
	if err != nil {
		log.Warn("could not read the GitHub token", logger.Err(err))
		return p.skip(result, dto.SkipCredentialError)
	}
	if !ok || token == "" {
		log.Info("no GitHub token configured, set one up in the extension settings")
		return p.skip(result, dto.SkipNoCredential)
	}

	resolution, err := p.resolver.Resolve(ctx, ref, token)
	switch {
	case fork.IsAuthError(err):
		log.Warn("authentication failed, check your token in the extension settings", logger.Err(err))
		return p.skip(result, dto.SkipAuthFailed)
	case err != nil:
		log.Debug("repository unavailable", logger.Err(err))
		return p.skip(result, dto.SkipNotFound)
	}

	metadata := resolution.Metadata
	if parent, ok := metadata.Parent(); ok {
		result.Upstream = &dto.UpstreamResponse{URL: parent.URL, FullName: parent.FullName()}
		p.publish(ctx, fork.NewUpstreamResolvedEvent(result.RunID, ref, parent))
	}

	// a user never needs a shortcut to a fork of their own repository
	if strings.EqualFold(resolution.Login, ref.Owner()) {
		result.OwnRepository = true
		p.metrics.ObservePipelineRun(OutcomeCompleted)
		return result
	}

	source := metadata.SearchSource()
	forks := p.locator.FindForks(ctx, resolution.Login, source, token)
	for _, f := range forks {
		result.Forks = append(result.Forks, dto.ForkResponse{
			Owner:    f.Owner,
			Name:     f.Name,
			FullName: f.Ref().FullName(),
			URL:      f.URL,
		})
	}
	p.metrics.ObserveForksFound(len(forks))
	p.publish(ctx, fork.NewForksDiscoveredEvent(result.RunID, source, resolution.Login, len(forks)))

	p.metrics.ObservePipelineRun(OutcomeCompleted)
	return result
}

func (p *Pipeline) skip(result *dto.AugmentResult, reason string) *dto.AugmentResult {
	result.Skipped = reason
	p.metrics.ObservePipelineRun(reason)
	return result
}

func (p *Pipeline) publish(ctx context.Context, event events.DomainEvent) {
	if p.publisher == nil {
		return
	}
	// handler failures are logged by the dispatcher
	_ = p.publisher.Dispatch(ctx, event)
}
