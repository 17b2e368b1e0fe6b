// Package cli provides the interactive bizadmin command-line client.
//
// It wires configuration, the persisted session store, the authenticated
// HTTP client and the API services into a small REPL. Typical flow: log in
// as staff or client, browse quotations and tasks, move them along their
// status pipelines, and submit client feedback through a feedback token.
//
// When a token refresh fails the session is wiped and the REPL prints the
// sign-in route with the reason code; the user logs in again to continue.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
