package adapter

import "errors"

// ErrNoGithubProfile is returned when the upstream listing endpoint answers
// with any non-200 status, most commonly because the username does not
// exist. Mapped to HTTP 404 at the transport layer.
var ErrNoGithubProfile = errors.New("no github profile found")
