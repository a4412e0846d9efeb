package http

import (
	"errors"
	"net/http"

	"github.com/devconnector/devconnector/internal/adapter"
	"github.com/devconnector/devconnector/internal/logger"
	"github.com/devconnector/devconnector/internal/utils"
	"github.com/go-chi/chi/v5"
)

// githubRepos proxies the repository listing of the given GitHub username.
// Any non-200 upstream answer is reported as a missing profile; transport
// failures become a 500.
func (h *Handler) githubRepos(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username := chi.URLParam(r, "username")

	repos, err := h.github.ListRepos(ctx, username)
	if err != nil {
		switch {
		case errors.Is(err, adapter.ErrNoGithubProfile):
			writeMsg(w, "No Github profile found", http.StatusNotFound)
			return
		default:
			log.Err(err).Str("username", username).Msg("github passthrough failed")
			writeServerError(w)
			return
		}
	}

	utils.WriteJSON(w, repos, http.StatusOK)
}
