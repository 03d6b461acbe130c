package fork

import (
	"context"
)

// GitHubUser is the authenticated user as reported by GitHub
type GitHubUser struct {
	ID    int64
	Login string
}

// GitHubOwner is a repository owner reference
type GitHubOwner struct {
	Login string
}

// GitHubRepository represents a repository fetched from GitHub API
type GitHubRepository struct {
	ID       int64
	Name     string
	FullName string
	HTMLURL  string
	Owner    GitHubOwner
	Fork     bool
	Parent   *GitHubRepository
	Source   *GitHubRepository
}

// ForksPage is one page of the list-forks endpoint
type ForksPage struct {
	Page  int
	Forks []*GitHubRepository
}

// GitHubService is a domain service interface for interacting with GitHub.
// Implementations return *DomainError values from this package.
type GitHubService interface {
	// AuthenticatedUser resolves the login behind the token
	AuthenticatedUser(ctx context.Context, accessToken string) (*GitHubUser, error)

	// Repository looks up a repository by owner and name
	Repository(ctx context.Context, accessToken string, ref RepositoryRef) (*GitHubRepository, error)

	// Organizations lists the organizations the token's user belongs to
	Organizations(ctx context.Context, accessToken string) ([]string, error)

	// Forks fetches one page of forks of ref
	Forks(ctx context.Context, accessToken string, ref RepositoryRef, page, perPage int) (*ForksPage, error)
}

// CredentialKey is the credential store key holding the GitHub token
const CredentialKey = "githubToken"

// CredentialStore is the read-only view of the externally populated credential store
type CredentialStore interface {
	// Get returns the value stored under key, and false when absent
	Get(ctx context.Context, key string) (string, bool, error)
}

// WritableCredentialStore is implemented by stores the settings endpoint can populate
type WritableCredentialStore interface {
	CredentialStore
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
