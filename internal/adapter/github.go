package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/devconnector/devconnector/internal/config"
	"github.com/devconnector/devconnector/internal/logger"
	"github.com/devconnector/devconnector/models"
	"github.com/go-resty/resty/v2"
)

// reposPerPage caps the passthrough at five repositories, sorted by
// creation order. Part of the endpoint contract.
const (
	reposPerPage  = "5"
	reposSort     = "created:asc"
	clientTimeout = 15 * time.Second
	userAgent     = "devconnector"
)

// githubAdapter is the resty-backed implementation of [GithubAdapter].
//
// It performs a single outbound call per lookup: no retry, no caching, no
// timeout override beyond the client default.
type githubAdapter struct {
	client       *resty.Client
	clientID     string
	clientSecret string
	logger       *logger.Logger
}

// NewGithubAdapter constructs a [GithubAdapter] from the given settings.
func NewGithubAdapter(cfg config.Github, logger *logger.Logger) GithubAdapter {
	baseURL := cfg.APIBaseURL
	if baseURL == "" {
		baseURL = config.DefaultGithubAPIBaseURL
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(clientTimeout).
		SetHeader("User-Agent", userAgent)

	return &githubAdapter{
		client:       cli,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		logger:       logger,
	}
}

// ListRepos fetches up to five of the user's repositories sorted by
// creation order and decodes the summaries.
func (g *githubAdapter) ListRepos(ctx context.Context, username string) ([]models.Repo, error) {
	log := logger.FromContext(ctx)

	var repos []models.Repo
	req := g.client.R().
		SetContext(ctx).
		SetPathParam("username", username).
		SetQueryParam("per_page", reposPerPage).
		SetQueryParam("sort", reposSort).
		SetResult(&repos)

	if g.clientID != "" {
		req.SetQueryParam("client_id", g.clientID)
		req.SetQueryParam("client_secret", g.clientSecret)
	}

	resp, err := req.Get("/users/{username}/repos")
	if err != nil {
		log.Err(err).Str("username", username).Msg("github repos request failed")
		return nil, fmt.Errorf("github repos request failed: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		log.Warn().Str("username", username).Int("status", resp.StatusCode()).Msg("github returned non-200 status")
		return nil, ErrNoGithubProfile
	}

	return repos, nil
}
