// Package app assembles the pipeline from configuration. The server and the
// CLI share it.
package app

import (
	"context"
	"fmt"

	"gotofork-core/internal/application/service"
	"gotofork-core/internal/config"
	"gotofork-core/internal/database"
	"gotofork-core/internal/domain/events"
	"gotofork-core/internal/domain/fork"
	"gotofork-core/internal/github"
	"gotofork-core/internal/infrastructure/credential"
	"gotofork-core/internal/infrastructure/encryption"
	infraGitHub "gotofork-core/internal/infrastructure/github"
	"gotofork-core/internal/infrastructure/persistence"
	"gotofork-core/internal/logger"
	"gotofork-core/internal/metrics"
	"gotofork-core/internal/presentation/render"

	"go.uber.org/zap"
)

// App holds the wired components
type App struct {
	Pipeline    *service.Pipeline
	Renderer    *render.Renderer
	Dispatcher  *events.Dispatcher
	Credentials fork.CredentialStore
	Metrics     *metrics.Metrics

	// DB is nil unless credentials live in the database
	DB *database.DB
}

// New builds the application. m may be nil.
func New(cfg *config.Config, store fork.CredentialStore, m *metrics.Metrics) *App {
	client := github.NewClient(
		github.WithBaseURL(cfg.GitHub.APIURL),
		github.WithTimeout(cfg.HTTPTimeout()),
		github.WithMetrics(m),
	)
	githubService := infraGitHub.NewGitHubService(client)

	dispatcher := events.NewDispatcher()
	RegisterEventLogging(dispatcher, logger.Named("events"))

	pipeline := service.NewPipeline(
		fork.NewPageMatcher(cfg.GitHub.WebHost),
		service.NewRepositoryResolver(githubService),
		service.NewForkLocator(githubService, cfg.GitHub.PageSize),
		store,
		dispatcher,
		m,
	)

	return &App{
		Pipeline:    pipeline,
		Renderer:    render.NewRenderer(),
		Dispatcher:  dispatcher,
		Credentials: store,
		Metrics:     m,
	}
}

// OpenCredentialStore returns the store selected by CREDENTIAL_SOURCE. The
// returned DB is non-nil only for the database source and must be closed by
// the caller.
func OpenCredentialStore(ctx context.Context, cfg *config.Config) (fork.CredentialStore, *database.DB, error) {
	switch cfg.Credential.Source {
	case config.CredentialSourceDatabase:
		enc, err := encryption.NewEncryptionService(cfg.Credential.EncryptionKey)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize encryption: %w", err)
		}
		db, err := database.NewConnection(ctx, &cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return persistence.NewSettingsRepository(db, enc), db, nil
	default:
		return credential.NewEnvStore(nil), nil, nil
	}
}

// RegisterEventLogging logs every pipeline event on log
func RegisterEventLogging(d *events.Dispatcher, log *zap.Logger) {
	d.Register(fork.EventTypeUpstreamResolved, func(ctx context.Context, event events.DomainEvent) error {
		e, ok := event.(*fork.UpstreamResolvedEvent)
		if !ok {
			return fmt.Errorf("unexpected event %T", event)
		}
		log.Info("upstream resolved",
			logger.RunID(e.RunID()),
			logger.Repository(e.Repository),
			zap.String("upstream", e.Upstream),
		)
		return nil
	})
	d.Register(fork.EventTypeForksDiscovered, func(ctx context.Context, event events.DomainEvent) error {
		e, ok := event.(*fork.ForksDiscoveredEvent)
		if !ok {
			return fmt.Errorf("unexpected event %T", event)
		}
		log.Info("forks discovered",
			logger.RunID(e.RunID()),
			logger.Repository(e.Source),
			logger.Count(e.Count),
		)
		return nil
	})
}
