// Package reposource defines the repository acquisition adapter contract
// (spec §6.2): an external collaborator that turns a repository reference
// into a local path. The core never performs network I/O for repository
// contents; it only consumes the local path this interface hands back.
package reposource

import "context"

// FailureKind classifies why a fetch could not produce a local path.
type FailureKind string

const (
	FailureAuth     FailureKind = "auth"
	FailureNotFound FailureKind = "not_found"
	FailureNetwork  FailureKind = "network"
	FailureTimeout  FailureKind = "timeout"
	FailureSSL      FailureKind = "ssl"
	FailureSize     FailureKind = "size"
)

// FetchError carries the failure classification a caller needs to map onto
// an HTTP status (§6.1's 400/401/403/404/500 split).
type FetchError struct {
	Kind    FailureKind
	Message string
}

func (e *FetchError) Error() string { return string(e.Kind) + ": " + e.Message }

// Source fetches a repository reference to a local, readable path.
type Source interface {
	Fetch(ctx context.Context, url, branch, token string) (localPath string, err error)
}

// Local is a Source over paths that are already local directories — used
// for tests and for callers who submit a filesystem path directly instead
// of a remote URL.
type Local struct{}

func (Local) Fetch(_ context.Context, url, _ string, _ string) (string, error) {
	return url, nil
}
