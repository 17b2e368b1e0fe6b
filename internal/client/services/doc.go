// Package services contains the application services of the bizadmin client.
// They sit between the CLI and the authenticated HTTP client: each service
// maps one backend resource to typed calls and enforces the client-side
// rules (status transitions, feedback validation) before anything is sent.
package services
