package http

import "errors"

// ErrNoTokenHeader indicates a request to a protected route that carried no
// "x-auth-token" header at all.
var ErrNoTokenHeader = errors.New("no token header in request")
