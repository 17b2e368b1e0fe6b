// Package storage persists session blobs in the local SQLite database.
//
// Each row is one key (for example "auth-storage") mapped to an opaque value,
// mirroring browser session storage. Decoding the values is the caller's job.
package storage
