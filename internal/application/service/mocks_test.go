package service_test

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"gotofork-core/internal/domain/fork"
)

// mockGitHubService serves canned GitHub data and records every call
type mockGitHubService struct {
	mu sync.Mutex

	login   string
	userErr error

	repos   map[string]*fork.GitHubRepository
	repoErr error

	orgs    []string
	orgsErr error

	// forkPages[source][page-1]
	forkPages map[string][][]*fork.GitHubRepository
	forksErr  map[int]error

	calls     []string
	forkCalls []string
}

func newMockGitHubService(login string) *mockGitHubService {
	return &mockGitHubService{
		login:     login,
		repos:     make(map[string]*fork.GitHubRepository),
		forkPages: make(map[string][][]*fork.GitHubRepository),
		forksErr:  make(map[int]error),
	}
}

func (m *mockGitHubService) record(call string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, call)
}

func (m *mockGitHubService) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func (m *mockGitHubService) AuthenticatedUser(ctx context.Context, accessToken string) (*fork.GitHubUser, error) {
	m.record("user")
	if m.userErr != nil {
		return nil, m.userErr
	}
	return &fork.GitHubUser{ID: 1, Login: m.login}, nil
}

func (m *mockGitHubService) Repository(ctx context.Context, accessToken string, ref fork.RepositoryRef) (*fork.GitHubRepository, error) {
	m.record("repo " + ref.FullName())
	if m.repoErr != nil {
		return nil, m.repoErr
	}
	repo, ok := m.repos[ref.FullName()]
	if !ok {
		return nil, fork.ErrNotFound(ref.FullName(), errors.New("status 404"))
	}
	return repo, nil
}

func (m *mockGitHubService) Organizations(ctx context.Context, accessToken string) ([]string, error) {
	m.record("orgs")
	if m.orgsErr != nil {
		return nil, m.orgsErr
	}
	return m.orgs, nil
}

func (m *mockGitHubService) Forks(ctx context.Context, accessToken string, ref fork.RepositoryRef, page, perPage int) (*fork.ForksPage, error) {
	call := fmt.Sprintf("forks %s page=%d per_page=%d", ref.FullName(), page, perPage)
	m.record(call)
	m.mu.Lock()
	m.forkCalls = append(m.forkCalls, call)
	m.mu.Unlock()

	if err, ok := m.forksErr[page]; ok {
		return nil, err
	}
	pages := m.forkPages[ref.FullName()]
	if page > len(pages) {
		return &fork.ForksPage{Page: page}, nil
	}
	return &fork.ForksPage{Page: page, Forks: pages[page-1]}, nil
}

func (m *mockGitHubService) addRepo(repo *fork.GitHubRepository) {
	m.repos[repo.Owner.Login+"/"+repo.Name] = repo
}

func (m *mockGitHubService) addForkPage(source string, forks ...*fork.GitHubRepository) {
	m.forkPages[source] = append(m.forkPages[source], forks)
}

func ghRepo(owner, name string) *fork.GitHubRepository {
	return &fork.GitHubRepository{
		Name:     name,
		FullName: owner + "/" + name,
		HTMLURL:  "https://github.com/" + owner + "/" + name,
		Owner:    fork.GitHubOwner{Login: owner},
	}
}

func ghFork(owner, name string, parent, source *fork.GitHubRepository) *fork.GitHubRepository {
	r := ghRepo(owner, name)
	r.Fork = true
	r.Parent = parent
	r.Source = source
	return r
}

// strangers returns n forks owned by unrelated accounts
func strangers(n int, name string) []*fork.GitHubRepository {
	out := make([]*fork.GitHubRepository, n)
	for i := range out {
		out[i] = ghRepo(fmt.Sprintf("stranger-%d", i), name)
	}
	return out
}
