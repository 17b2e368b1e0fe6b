package client

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/bizadmin/internal/common"
)

// Sentinels matched by the typed errors below via errors.Is.
var (
	ErrNetwork        = errors.New("network error")
	ErrServer         = errors.New("server error")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrSessionEnded   = errors.New("session ended")
	ErrNoRefreshToken = errors.New("no refresh token")
	ErrInvalidRequest = common.ErrInvalidRequest
)

// NetworkError means no HTTP response was received: DNS, connection reset,
// timeout. It is never treated as an auth failure.
type NetworkError struct {
	Method string
	Path   string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: %v: %v", e.Method, e.Path, ErrNetwork, e.Err)
}

func (e *NetworkError) Unwrap() []error { return []error{ErrNetwork, e.Err} }

// APIError is a non-2xx response. Message is the server's message when it
// sent one, otherwise a generic fallback.
type APIError struct {
	Method  string
	Path    string
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s %s: HTTP %d: %s", e.Method, e.Path, e.Status, e.Message)
}

func (e *APIError) Unwrap() error {
	if e.Status == 401 {
		return ErrUnauthorized
	}
	return ErrServer
}

// Reason codes passed to the sign-in route after a session ends.
type Reason string

const (
	ReasonTokenExpired  Reason = "token_expired"
	ReasonRefreshFailed Reason = "refresh_failed"
)

// SignInPath is where the UI sends the user after the session ended.
func SignInPath(r Reason) string {
	return "/signin?reason=" + string(r)
}

// RefreshError is terminal: the stored credentials were wiped and the user
// must sign in again.
type RefreshError struct {
	Reason Reason
	Err    error
}

func (e *RefreshError) Error() string {
	return fmt.Sprintf("%v (%s): %v", ErrSessionEnded, e.Reason, e.Err)
}

func (e *RefreshError) Unwrap() []error { return []error{ErrSessionEnded, e.Err} }
