package service

import (
	"context"

	"gotofork-core/internal/domain/fork"
	"gotofork-core/internal/logger"

	"go.uber.org/zap"
)

// DefaultForksPageSize is the page size of the list-forks enumeration
const DefaultForksPageSize = 100

// ForkLocator finds forks of a source repository owned by the user or one of
// their organizations.
//
// Enumeration stops at the first page that yields a match: a fork owned by
// the user on a later page is not reported once an earlier page matched.
type ForkLocator struct {
	githubService fork.GitHubService
	pageSize      int
	log           *zap.Logger
}

// NewForkLocator creates a new fork locator. A pageSize outside 1..100 uses the default.
func NewForkLocator(githubService fork.GitHubService, pageSize int) *ForkLocator {
	if pageSize < 1 || pageSize > DefaultForksPageSize {
		pageSize = DefaultForksPageSize
	}
	return &ForkLocator{
		githubService: githubService,
		pageSize:      pageSize,
		log:           logger.Named("locator"),
	}
}

// Identity builds the namespace set of login. An organization lookup failure
// narrows the set to the personal login.
func (l *ForkLocator) Identity(ctx context.Context, login, accessToken string) fork.Identity {
	orgs, err := l.githubService.Organizations(ctx, accessToken)
	if err != nil {
		l.log.Info("could not fetch organizations", logger.Err(err))
		return fork.NewIdentity(login)
	}
	return fork.NewIdentity(login, orgs...)
}

// FindForks returns the forks of source owned by login's namespaces, in the
// order GitHub lists them. It never fails: errors end the enumeration and
// whatever was accumulated is returned.
func (l *ForkLocator) FindForks(ctx context.Context, login string, source fork.RepositoryRef, accessToken string) []fork.ForkCandidate {
	l.log.Info("searching forks", logger.Repository(source.FullName()))

	identity := l.Identity(ctx, login, accessToken)
	forks := l.enumerate(ctx, identity, source, accessToken)

	if len(forks) > 0 {
		l.log.Info("found forks", logger.Repository(source.FullName()), logger.Count(len(forks)))
	}
	return forks
}

func (l *ForkLocator) enumerate(ctx context.Context, identity fork.Identity, source fork.RepositoryRef, accessToken string) []fork.ForkCandidate {
	var found []fork.ForkCandidate

	for page := 1; ; page++ {
		result, err := l.githubService.Forks(ctx, accessToken, source, page, l.pageSize)
		if err != nil {
			l.log.Info("failed to fetch forks", logger.Repository(source.FullName()), logger.Page(page), logger.Err(err))
			return found
		}
		if len(result.Forks) == 0 {
			return found
		}

		for _, f := range result.Forks {
			if f == nil || !identity.Owns(f.Owner.Login) {
				continue
			}
			found = append(found, fork.ForkCandidate{
				Owner: f.Owner.Login,
				Name:  f.Name,
				URL:   f.HTMLURL,
			})
		}

		if len(found) > 0 || len(result.Forks) < l.pageSize {
			return found
		}
	}
}
