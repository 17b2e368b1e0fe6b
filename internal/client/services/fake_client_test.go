package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/bizadmin/internal/client/client"
)

// ---- fake client ----

type reply struct {
	body any
	err  error
}

// fakeClient answers by "METHOD path" and records every request it gets.
type fakeClient struct {
	mu      sync.Mutex
	replies map[string]reply
	calls   []client.Request
}

func newFakeClient() *fakeClient {
	return &fakeClient{replies: map[string]reply{}}
}

func (f *fakeClient) on(method, path string, body any, err error) *fakeClient {
	f.replies[method+" "+path] = reply{body: body, err: err}
	return f
}

func (f *fakeClient) Do(_ context.Context, req client.Request) (*client.Response, error) {
	f.mu.Lock()
	f.calls = append(f.calls, req)
	r, ok := f.replies[req.Method+" "+req.Path]
	f.mu.Unlock()

	if !ok {
		return nil, &client.APIError{Method: req.Method, Path: req.Path, Status: 404, Message: "not found"}
	}
	if r.err != nil {
		return nil, r.err
	}
	resp := &client.Response{Status: 200}
	if r.body != nil {
		b, err := json.Marshal(r.body)
		if err != nil {
			return nil, fmt.Errorf("fake: %w", err)
		}
		resp.Body = b
	} else {
		resp.Status = 204
	}
	return resp, nil
}

func (f *fakeClient) JSON(ctx context.Context, method, path string, body, out any) error {
	resp, err := f.Do(ctx, client.Request{Method: method, Path: path, Body: body})
	if err != nil {
		return err
	}
	return resp.Decode(out)
}

func (f *fakeClient) count(method, path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c.Method == method && c.Path == path {
			n++
		}
	}
	return n
}

func (f *fakeClient) last() client.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[len(f.calls)-1]
}
