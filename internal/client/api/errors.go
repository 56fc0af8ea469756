package api

import "errors"

var (
	// ErrUnavailable indicates the backend could not be reached or failed
	// internally. Callers surface a generic failure message; nothing retries.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized indicates the backend rejected the credentials
	// (401/403-class). Outside of login/register this means the session is
	// invalid.
	ErrUnauthorized = errors.New("unauthorized")
)

// BusinessError is a backend rejection of otherwise well-formed input: a
// validation failure the client did not catch, or an illegal workflow
// transition. Detail is the backend's message and is shown to the user
// verbatim, never reinterpreted.
type BusinessError struct {
	StatusCode int
	Detail     string
}

func (e *BusinessError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return "request rejected by server"
}
