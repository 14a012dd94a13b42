// Package upstream provides the shared failure classification for every
// adapter call site, mapping an HTTP status and operation context to one
// taxonomy error.
package upstream

import (
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/repobridge/pkg/domain/types"
)

// Kind distinguishes the upstream platform. Rate limiting and the 403
// auth shape are recognized distinctly only for the posting platform.
type Kind int

const (
	KindGitHub Kind = iota
	KindX
)

// Classify maps an upstream HTTP status to a taxonomy error. It returns
// nil for statuses below 400. The detail is the upstream-provided message
// text and is carried on the error.
func Classify(kind Kind, status int, detail string) error {
	if status < http.StatusBadRequest {
		return nil
	}

	values := []goerr.Option{
		goerr.V("status", status),
		goerr.V("upstream", detail),
	}

	switch {
	case status == http.StatusNotFound:
		return goerr.Wrap(types.ErrNotFound, detail, values...)

	case kind == KindX && status == http.StatusForbidden:
		return goerr.Wrap(types.ErrUnauthorized, detail, values...)

	case kind == KindX && status == http.StatusTooManyRequests:
		return goerr.Wrap(types.ErrRateLimited, detail, values...)

	case status >= http.StatusInternalServerError:
		return goerr.Wrap(types.ErrUpstreamServer, detail, values...)

	default:
		return goerr.Wrap(types.ErrUpstreamClient, detail, values...)
	}
}
