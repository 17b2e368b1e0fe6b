// Package common contains constants and sentinel errors shared by the
// bizadmin client packages.
package common

import "time"

// Header names carrying the access token. The backend accepts either form,
// so both are sent on every authenticated request.
const (
	TokenHeaderName         = "token"
	AuthorizationHeaderName = "Authorization"
	BearerPrefix            = "Bearer "
	RequestIDHeaderName     = "X-Request-ID"
)

// Refresh endpoints, selected by the caller's role.
const (
	StaffRefreshPath  = "/auth/refresh"
	ClientRefreshPath = "/client-auth/refresh"
)

// Login endpoints, selected by the caller's role.
const (
	StaffLoginPath  = "/auth/login"
	ClientLoginPath = "/client-auth/login"
)

// PublicEndpoints are matched as substrings of the request path. Requests to
// them never carry credentials.
var PublicEndpoints = []string{
	"/feedback/validate-token",
	"/feedback",
}

// Server messages that mean the access token must be refreshed, regardless of
// the HTTP status they arrive with.
var AuthFailureMessages = []string{
	"No token provided",
	"Invalid token",
	"Token expired",
}

// Session storage keys. The current key is checked before the legacy one.
const (
	SessionStorageKey       = "auth-storage"
	LegacySessionStorageKey = "session-storage"
)

// DefaultRequestTimeout bounds a single outbound call, replay included.
const DefaultRequestTimeout = 50 * time.Second
