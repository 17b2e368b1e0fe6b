// Package client talks to the bizadmin REST API.
//
// HTTPClient attaches the stored access token to every call (as both the
// "token" header and "Authorization: Bearer"), except for public endpoints
// such as /feedback. When a call fails with HTTP 401 or one of the server's
// token messages ("No token provided", "Invalid token", "Token expired"), the
// client refreshes the access token through the role's refresh endpoint and
// replays the call exactly once. Concurrent failures share a single refresh.
//
// # Error Handling
//
//   - *NetworkError: no response (timeout, DNS, reset); errors.Is ErrNetwork.
//   - *APIError: non-2xx; errors.Is ErrUnauthorized for 401, else ErrServer.
//   - *RefreshError: the refresh failed or no refresh token was stored; the
//     session was wiped; errors.Is ErrSessionEnded.
//
// Per request state:
//
//	Sent -> Success
//	Sent -> AuthFailure -> Retrying -> Sent' -> Success | Failed
//	Sent -> AuthFailure -> Failed (refresh failed)
package client
