// Package models defines the API resources exchanged with the backend:
// quotations, tasks and client feedback.
package models
