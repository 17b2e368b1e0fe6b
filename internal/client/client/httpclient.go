package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/bizadmin/internal/client/session"
	"github.com/dmitrijs2005/bizadmin/internal/common"
	"github.com/dmitrijs2005/bizadmin/internal/logging"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// CredentialStore is the part of session.Store the client needs.
type CredentialStore interface {
	Load(ctx context.Context) (session.Snapshot, bool, error)
	SaveTokens(ctx context.Context, key, accessToken, refreshToken string) error
	Clear(ctx context.Context) error
}

// SessionEndedFunc is called once per failed refresh, after the stored
// credentials were wiped. The UI uses it to go to SignInPath(reason).
type SessionEndedFunc func(ctx context.Context, reason Reason)

// HTTPClient calls the backend REST API with the stored access token and
// recovers from an expired token by refreshing it and replaying the call
// once.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	store   CredentialStore
	log     logging.Logger
	timeout time.Duration
	metrics *Metrics
	onEnded SessionEndedFunc
	newID   func() string

	refreshGroup singleflight.Group
}

type Option func(*HTTPClient)

func WithHTTPClient(hc *http.Client) Option { return func(c *HTTPClient) { c.http = hc } }
func WithLogger(l logging.Logger) Option { return func(c *HTTPClient) { c.log = l } }
func WithTimeout(d time.Duration) Option { return func(c *HTTPClient) { c.timeout = d } }
func WithMetrics(m *Metrics) Option { return func(c *HTTPClient) { c.metrics = m } }
func WithSessionEnded(f SessionEndedFunc) Option { return func(c *HTTPClient) { c.onEnded = f } }

// NewHTTPClient builds a client for the API rooted at baseURL.
func NewHTTPClient(baseURL string, store CredentialStore, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		store:   store,
		log:     logging.Nop(),
		timeout: common.DefaultRequestTimeout,
		newID:   uuid.NewString,
	}
	for _, o := range opts {
		o(c)
	}
	if c.metrics == nil {
		c.metrics = NewMetrics(nil)
	}
	return c
}

// pendingRequest is one logical call, possibly sent twice.
type pendingRequest struct {
	Request
	id      string
	payload []byte
	retried bool
}

// Do sends req and returns the 2xx response. Errors are *NetworkError,
// *APIError or *RefreshError, or wrap ErrInvalidRequest.
func (c *HTTPClient) Do(ctx context.Context, req Request) (*Response, error) {
	resp, err := c.do(ctx, req)
	c.metrics.observeRequest(outcomeOf(err))
	return resp, err
}

// JSON sends body as JSON and decodes the response into out (if non-nil).
func (c *HTTPClient) JSON(ctx context.Context, method, path string, body, out any) error {
	resp, err := c.Do(ctx, Request{Method: method, Path: path, Body: body})
	if err != nil {
		return err
	}
	return resp.Decode(out)
}

func (c *HTTPClient) do(ctx context.Context, req Request) (*Response, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	pr := &pendingRequest{Request: req, id: c.newID()}
	if req.Body != nil {
		b, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: encode body: %v", ErrInvalidRequest, err)
		}
		pr.payload = b
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	withAuth := !req.SkipAuth && !common.IsPublicPath(req.Path)

	var token string
	if withAuth {
		token = c.currentToken(ctx)
	}

	for {
		raw, err := c.send(ctx, pr.Method, pr.Path, pr.Query, pr.payload, token, pr.id)
		if err != nil {
			return nil, err
		}
		if raw.ok() {
			return raw.response(), nil
		}
		if !withAuth || !raw.isAuthFailure() || pr.retried {
			return nil, raw.apiError(pr.Method, pr.Path)
		}

		pr.retried = true
		c.log.Info(ctx, "auth failure, refreshing token",
			"method", pr.Method, "path", pr.Path, "request_id", pr.id, "status", raw.status)

		token, err = c.refresh(ctx, token)
		if err != nil {
			return nil, err
		}
		c.metrics.observeReplay()
	}
}

func (c *HTTPClient) currentToken(ctx context.Context) string {
	snap, ok, err := c.store.Load(ctx)
	if err != nil {
		c.log.Warn(ctx, "cannot read session, sending request without token", "error", err)
		return ""
	}
	if !ok {
		return ""
	}
	return snap.Credential.AccessToken
}

func (c *HTTPClient) buildURL(path string, query url.Values) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	u := c.baseURL + path
	if len(query) > 0 {
		sep := "?"
		if strings.Contains(path, "?") {
			sep = "&"
		}
		u += sep + query.Encode()
	}
	return u
}

// send performs one HTTP exchange. Any failure to obtain a complete response
// is a *NetworkError.
func (c *HTTPClient) send(ctx context.Context, method, path string, query url.Values, payload []byte, token, requestID string) (*rawResponse, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.buildURL(path, query), body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(common.RequestIDHeaderName, requestID)
	if payload != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		httpReq.Header.Set(common.TokenHeaderName, token)
		httpReq.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}

	res, err := c.http.Do(httpReq)
	if err != nil {
		return nil, &NetworkError{Method: method, Path: path, Err: err}
	}
	defer res.Body.Close()

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &NetworkError{Method: method, Path: path, Err: err}
	}

	c.log.Debug(ctx, "api call", "method", method, "path", path, "status", res.StatusCode, "request_id", requestID)

	return &rawResponse{status: res.StatusCode, header: res.Header, body: b}, nil
}

type rawResponse struct {
	status int
	header http.Header
	body   []byte
}

func (r *rawResponse) ok() bool { return r.status >= 200 && r.status < 300 }

func (r *rawResponse) response() *Response {
	return &Response{Status: r.status, Header: r.header, Body: r.body}
}

// message extracts {"message": "..."} or {"error": "..."} from the body.
func (r *rawResponse) message() string {
	var m struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(r.body, &m); err != nil {
		return ""
	}
	if m.Message != "" {
		return m.Message
	}
	return m.Error
}

func (r *rawResponse) isAuthFailure() bool {
	return r.status == http.StatusUnauthorized || common.IsAuthFailureMessage(r.message())
}

func (r *rawResponse) apiError(method, path string) *APIError {
	msg := r.message()
	if msg == "" {
		msg = fmt.Sprintf("request failed with status %d", r.status)
	}
	return &APIError{Method: method, Path: path, Status: r.status, Message: msg}
}

func outcomeOf(err error) string {
	var (
		netErr     *NetworkError
		apiErr     *APIError
		refreshErr *RefreshError
	)
	switch {
	case err == nil:
		return "success"
	case errors.As(err, &refreshErr):
		return "session_ended"
	case errors.As(err, &netErr):
		return "network_error"
	case errors.As(err, &apiErr):
		return "api_error"
	default:
		return "invalid"
	}
}
