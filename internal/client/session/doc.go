// Package session owns the client's stored credentials.
//
// Credentials live in a key-value Repository as JSON blobs under two keys:
// "auth-storage" (current) and "session-storage" (legacy). Both share the
// layout
//
//	{"state": {"accessToken": "...", "refreshToken": "...",
//	           "profileData": {"accessLevel": "...", "organisationRef": "..."},
//	           "isAuthenticated": true}}
//
// Blobs are validated on read; a blob that fails validation is treated as
// absent. All writes go through Store, which serialises them.
package session
