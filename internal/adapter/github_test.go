package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/devconnector/devconnector/internal/config"
	"github.com/devconnector/devconnector/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListRepos_Success(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/johndoe/repos", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("per_page"))
		assert.Equal(t, "created:asc", r.URL.Query().Get("sort"))
		assert.Empty(t, r.URL.Query().Get("client_id"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id":1,"name":"devconnector","full_name":"johndoe/devconnector","html_url":"https://github.com/johndoe/devconnector","stargazers_count":3,"watchers_count":3,"forks_count":1,"created_at":"2020-01-01T00:00:00Z"},
			{"id":2,"name":"dotfiles","full_name":"johndoe/dotfiles","html_url":"https://github.com/johndoe/dotfiles","stargazers_count":0,"watchers_count":0,"forks_count":0,"created_at":"2021-06-01T00:00:00Z"}
		]`))
	}))
	defer upstream.Close()

	adapter := NewGithubAdapter(config.Github{APIBaseURL: upstream.URL}, logger.Nop())

	repos, err := adapter.ListRepos(context.Background(), "johndoe")

	require.NoError(t, err)
	require.Len(t, repos, 2)
	assert.Equal(t, "johndoe/devconnector", repos[0].FullName)
	assert.Equal(t, 3, repos[0].StargazersCount)
}

func TestListRepos_CredentialsForwarded(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "the-client-id", r.URL.Query().Get("client_id"))
		assert.Equal(t, "the-client-secret", r.URL.Query().Get("client_secret"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer upstream.Close()

	adapter := NewGithubAdapter(config.Github{
		APIBaseURL:   upstream.URL,
		ClientID:     "the-client-id",
		ClientSecret: "the-client-secret",
	}, logger.Nop())

	_, err := adapter.ListRepos(context.Background(), "johndoe")

	require.NoError(t, err)
}

func TestListRepos_UnknownUser(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer upstream.Close()

	adapter := NewGithubAdapter(config.Github{APIBaseURL: upstream.URL}, logger.Nop())

	_, err := adapter.ListRepos(context.Background(), "nobody")

	assert.ErrorIs(t, err, ErrNoGithubProfile)
}

func TestListRepos_UpstreamDown(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	upstream.Close() // connection refused from here on

	adapter := NewGithubAdapter(config.Github{APIBaseURL: upstream.URL}, logger.Nop())

	_, err := adapter.ListRepos(context.Background(), "johndoe")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoGithubProfile)
}
