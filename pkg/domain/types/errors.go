package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption    = goerr.New("invalid option")
	ErrValidationFailed = goerr.New("validation failed")
	ErrUnknownAction    = goerr.New("unsupported action")
	ErrSessionNotFound  = goerr.New("session not found")

	// Upstream failure taxonomy. Every adapter call site classifies a
	// non-2xx response into exactly one of these.
	ErrNotFound       = goerr.New("resource not found")
	ErrUnauthorized   = goerr.New("upstream authentication failed")
	ErrRateLimited    = goerr.New("upstream rate limit exceeded")
	ErrUpstreamClient = goerr.New("upstream client error")
	ErrUpstreamServer = goerr.New("upstream server error")
)
