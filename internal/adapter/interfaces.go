// Package adapter implements outbound integrations with third-party
// services. The only integration today is the GitHub repository-listing
// passthrough.
package adapter

import (
	"context"

	"github.com/devconnector/devconnector/models"
)

// GithubAdapter lists a GitHub user's public repositories.
type GithubAdapter interface {
	// ListRepos fetches up to five repositories for the given username,
	// sorted by creation order. Returns ErrNoGithubProfile on any non-200
	// upstream response; transport failures are returned wrapped.
	ListRepos(ctx context.Context, username string) ([]models.Repo, error)
}
