package service

import (
	"context"

	"gotofork-core/internal/domain/fork"
	"gotofork-core/internal/logger"

	"go.uber.org/zap"
)

// RepositoryResolver determines the login behind a credential and the fork
// state of a repository
type RepositoryResolver struct {
	githubService fork.GitHubService
	log           *zap.Logger
}

// NewRepositoryResolver creates a new repository resolver
func NewRepositoryResolver(githubService fork.GitHubService) *RepositoryResolver {
	return &RepositoryResolver{
		githubService: githubService,
		log:           logger.Named("resolver"),
	}
}

// Resolve looks up the authenticated login, then the repository.
// It fails with an auth error when the credential is rejected and with a
// not-found error when the repository cannot be read.
func (r *RepositoryResolver) Resolve(ctx context.Context, ref fork.RepositoryRef, accessToken string) (*fork.Resolution, error) {
	user, err := r.githubService.AuthenticatedUser(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	ghRepo, err := r.githubService.Repository(ctx, accessToken, ref)
	if err != nil {
		return nil, err
	}

	metadata := r.toMetadata(ref, ghRepo)
	r.log.Debug("repository resolved",
		logger.Repository(ref.FullName()),
		zap.Bool("fork", metadata.IsFork()),
		zap.String("search_source", metadata.SearchSource().FullName()))

	return &fork.Resolution{
		Login:    user.Login,
		Metadata: metadata,
	}, nil
}

func (r *RepositoryResolver) toMetadata(ref fork.RepositoryRef, ghRepo *fork.GitHubRepository) fork.RepositoryMetadata {
	if !ghRepo.Fork {
		return fork.NewRepositoryMetadata(ref)
	}

	var parent *fork.UpstreamLink
	if ghRepo.Parent != nil {
		if parentRef, err := fork.NewRepositoryRef(ghRepo.Parent.Owner.Login, ghRepo.Parent.Name); err == nil {
			parent = &fork.UpstreamLink{Ref: parentRef, URL: ghRepo.Parent.HTMLURL}
		} else {
			r.log.Warn("ignoring malformed parent", logger.Repository(ref.FullName()), logger.Err(err))
		}
	}

	var source *fork.RepositoryRef
	if ghRepo.Source != nil {
		if sourceRef, err := fork.NewRepositoryRef(ghRepo.Source.Owner.Login, ghRepo.Source.Name); err == nil {
			source = &sourceRef
		} else {
			r.log.Warn("ignoring malformed source", logger.Repository(ref.FullName()), logger.Err(err))
		}
	}

	return fork.NewForkMetadata(ref, parent, source)
}
