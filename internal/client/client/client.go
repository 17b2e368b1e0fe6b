package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// Client is the transport contract used by the services layer.
type Client interface {
	Do(ctx context.Context, req Request) (*Response, error)
	JSON(ctx context.Context, method, path string, body, out any) error
}

// Request describes one API call. Method and Path are required; Body, if
// set, is sent as JSON.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any

	// SkipAuth sends no credentials and disables refresh-and-retry. Used by
	// the login calls, whose 401 means bad credentials.
	SkipAuth bool
}

func (r Request) validate() error {
	if r.Method == "" {
		return fmt.Errorf("%w: method is required", ErrInvalidRequest)
	}
	if r.Path == "" {
		return fmt.Errorf("%w: path is required", ErrInvalidRequest)
	}
	return nil
}

// Response is a fully read 2xx response.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// Decode unmarshals the body into out. An empty body leaves out untouched.
func (r *Response) Decode(out any) error {
	if out == nil || len(r.Body) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.Body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
