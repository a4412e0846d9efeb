package models

// Repo is a summary of a single repository returned by the GitHub
// repository-listing passthrough. Only the fields the frontend consumes are
// decoded; everything else from the upstream payload is dropped.
type Repo struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	FullName        string `json:"full_name"`
	HTMLURL         string `json:"html_url"`
	Description     string `json:"description,omitempty"`
	StargazersCount int    `json:"stargazers_count"`
	WatchersCount   int    `json:"watchers_count"`
	ForksCount      int    `json:"forks_count"`
	CreatedAt       string `json:"created_at"`
}
