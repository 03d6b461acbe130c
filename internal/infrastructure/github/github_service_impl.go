package github

import (
	"context"
	"errors"
	"net/http"

	"gotofork-core/internal/domain/fork"
	"gotofork-core/internal/github"
)

// GitHubServiceImpl implements the domain fork.GitHubService interface and
// translates transport failures into the domain error taxonomy.
type GitHubServiceImpl struct {
	client *github.Client
}

// NewGitHubService creates a new GitHub service implementation
func NewGitHubService(client *github.Client) fork.GitHubService {
	return &GitHubServiceImpl{client: client}
}

// AuthenticatedUser fails with an auth error on any failure
func (g *GitHubServiceImpl) AuthenticatedUser(ctx context.Context, accessToken string) (*fork.GitHubUser, error) {
	user, err := g.client.GetAuthenticatedUser(ctx, accessToken)
	if err != nil {
		return nil, fork.ErrAuth(err)
	}
	if user.Login == "" {
		return nil, fork.ErrAuth(errors.New("identity lookup returned no login"))
	}
	return &fork.GitHubUser{ID: user.ID, Login: user.Login}, nil
}

// Repository fails with an auth error on 401 and a not-found error otherwise
func (g *GitHubServiceImpl) Repository(ctx context.Context, accessToken string, ref fork.RepositoryRef) (*fork.GitHubRepository, error) {
	repo, err := g.client.GetRepository(ctx, accessToken, ref.Owner(), ref.Name())
	if err != nil {
		var apiErr *github.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
			return nil, fork.ErrAuth(err)
		}
		return nil, fork.ErrNotFound(ref.FullName(), err)
	}
	return toDomain(repo), nil
}

// Organizations fails with a transient error
func (g *GitHubServiceImpl) Organizations(ctx context.Context, accessToken string) ([]string, error) {
	orgs, err := g.client.ListUserOrganizations(ctx, accessToken)
	if err != nil {
		return nil, fork.ErrTransient("list organizations", err)
	}

	logins := make([]string, 0, len(orgs))
	for _, org := range orgs {
		logins = append(logins, org.Login)
	}
	return logins, nil
}

// Forks fails with a transient error
func (g *GitHubServiceImpl) Forks(ctx context.Context, accessToken string, ref fork.RepositoryRef, page, perPage int) (*fork.ForksPage, error) {
	forks, err := g.client.ListForks(ctx, accessToken, ref.Owner(), ref.Name(), page, perPage)
	if err != nil {
		return nil, fork.ErrTransient("list forks", err)
	}

	domainForks := make([]*fork.GitHubRepository, len(forks))
	for i := range forks {
		domainForks[i] = toDomain(&forks[i])
	}
	return &fork.ForksPage{Page: page, Forks: domainForks}, nil
}

func toDomain(r *github.Repository) *fork.GitHubRepository {
	if r == nil {
		return nil
	}
	return &fork.GitHubRepository{
		ID:       r.ID,
		Name:     r.Name,
		FullName: r.FullName,
		HTMLURL:  r.HTMLURL,
		Owner:    fork.GitHubOwner{Login: r.Owner.Login},
		Fork:     r.Fork,
		Parent:   toDomain(r.Parent),
		Source:   toDomain(r.Source),
	}
}
