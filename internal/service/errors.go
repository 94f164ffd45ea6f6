package service

import "errors"

// Domain errors surfaced to the client and the proxy.
var (
	ErrDuplicateUsername    = errors.New("username already exists")
	ErrAuthenticationFailed = errors.New("invalid username or password")
	ErrNotAuthenticated     = errors.New("not authenticated")

	ErrInvalidFileType = errors.New("unsupported resume file type")
	ErrFileTooLarge    = errors.New("resume file too large")
	ErrFileUnreadable  = errors.New("resume file could not be read")

	ErrSubmissionInProgress = errors.New("a submission is already in progress")
	ErrNetwork              = errors.New("network error")
	ErrUpstream             = errors.New("upstream error")
	ErrUpstreamTimeout      = errors.New("upstream timeout")
)

// UpstreamError carries the status and body of a failed upstream call.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return "upstream returned " + httpStatusText(e.StatusCode)
}

func (e *UpstreamError) Unwrap() error { return ErrUpstream }
