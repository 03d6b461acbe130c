package github_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"gotofork-core/internal/github"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *github.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return github.NewClient(github.WithBaseURL(srv.URL + "/"))
}

func TestRequestHeaders(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "application/vnd.github.v3+json", r.Header.Get("Accept"))
		_, _ = w.Write([]byte(`{"id":1,"login":"octocat"}`))
	})

	user, err := client.GetAuthenticatedUser(context.Background(), "secret")
	require.NoError(t, err)
	assert.Equal(t, "octocat", user.Login)
}

func TestGetRepositoryDecodesForkNetwork(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/me/hello-world", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"id": 3, "name": "hello-world", "full_name": "me/hello-world",
			"html_url": "https://github.com/me/hello-world",
			"owner": {"login": "me"}, "fork": true,
			"parent": {"name": "hello-world", "full_name": "middle/hello-world",
				"html_url": "https://github.com/middle/hello-world", "owner": {"login": "middle"}},
			"source": {"name": "hello-world", "full_name": "octocat/hello-world",
				"html_url": "https://github.com/octocat/hello-world", "owner": {"login": "octocat"}}
		}`))
	})

	repo, err := client.GetRepository(context.Background(), "t", "me", "hello-world")
	require.NoError(t, err)
	assert.True(t, repo.Fork)
	require.NotNil(t, repo.Parent)
	require.NotNil(t, repo.Source)
	assert.Equal(t, "middle", repo.Parent.Owner.Login)
	assert.Equal(t, "octocat", repo.Source.Owner.Login)
}

func TestListForksPagination(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/octocat/hello-world/forks", r.URL.Path)
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))
		assert.Equal(t, "3", r.URL.Query().Get("page"))
		_, _ = w.Write([]byte(`[{"name":"hello-world","owner":{"login":"me"},"html_url":"https://github.com/me/hello-world"}]`))
	})

	forks, err := client.ListForks(context.Background(), "t", "octocat", "hello-world", 3, 100)
	require.NoError(t, err)
	require.Len(t, forks, 1)
	assert.Equal(t, "me", forks[0].Owner.Login)
}

func TestListUserOrganizations(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user/orgs", r.URL.Path)
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))
		_, _ = w.Write([]byte(`[{"id":1,"login":"acme"},{"id":2,"login":"github"}]`))
	})

	orgs, err := client.ListUserOrganizations(context.Background(), "t")
	require.NoError(t, err)
	require.Len(t, orgs, 2)
	assert.Equal(t, "github", orgs[1].Login)
}

func TestNonSuccessReturnsAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Bad credentials"}`))
	})

	_, err := client.GetAuthenticatedUser(context.Background(), "bad")
	var apiErr *github.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "user", apiErr.Endpoint)
	assert.Contains(t, apiErr.Body, "Bad credentials")
}

func TestMalformedBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	})

	_, err := client.GetAuthenticatedUser(context.Background(), "t")
	require.Error(t, err)
	var apiErr *github.APIError
	assert.False(t, errors.As(err, &apiErr))
}
