package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/bizadmin/internal/client/session"
	"github.com/dmitrijs2005/bizadmin/internal/common"
)

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type refreshResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken,omitempty"`
}

// RefreshPath returns the refresh endpoint for role.
func RefreshPath(role session.Role) string {
	if role == session.RoleClient {
		return common.ClientRefreshPath
	}
	return common.StaffRefreshPath
}

// refresh obtains a new access token. Concurrent callers rejected with the
// same token share one refresh call; each waits only as long as its own
// context allows. The refresh itself is detached from the caller's
// cancellation and bounded by c.timeout.
func (c *HTTPClient) refresh(ctx context.Context, staleToken string) (string, error) {
	ch := c.refreshGroup.DoChan("refresh:"+staleToken, func() (any, error) {
		rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
		defer cancel()
		return c.doRefresh(rctx, staleToken)
	})

	select {
	case <-ctx.Done():
		return "", &NetworkError{Method: http.MethodPost, Path: "refresh", Err: ctx.Err()}
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	}
}

func (c *HTTPClient) doRefresh(ctx context.Context, staleToken string) (string, error) {
	snap, ok, err := c.store.Load(ctx)
	if err != nil {
		c.metrics.observeRefresh("failed")
		return "", c.endSession(ctx, ReasonRefreshFailed, err)
	}

	// Another request refreshed while this one was in flight.
	if ok && snap.Credential.AccessToken != "" && snap.Credential.AccessToken != staleToken {
		c.metrics.observeRefresh("reused")
		return snap.Credential.AccessToken, nil
	}

	if !ok || snap.Credential.RefreshToken == "" {
		c.metrics.observeRefresh("no_token")
		return "", c.endSession(ctx, ReasonTokenExpired, ErrNoRefreshToken)
	}

	resolution := snap.Role()
	path := RefreshPath(resolution.RoleOrDefault())

	payload, err := json.Marshal(refreshRequest{RefreshToken: snap.Credential.RefreshToken})
	if err != nil {
		c.metrics.observeRefresh("failed")
		return "", c.endSession(ctx, ReasonRefreshFailed, err)
	}

	raw, err := c.send(ctx, http.MethodPost, path, nil, payload, "", c.newID())
	if err != nil {
		c.metrics.observeRefresh("failed")
		return "", c.endSession(ctx, ReasonRefreshFailed, err)
	}
	if !raw.ok() {
		c.metrics.observeRefresh("failed")
		return "", c.endSession(ctx, ReasonRefreshFailed, raw.apiError(http.MethodPost, path))
	}

	var out refreshResponse
	if err := json.Unmarshal(raw.body, &out); err != nil {
		c.metrics.observeRefresh("failed")
		return "", c.endSession(ctx, ReasonRefreshFailed, fmt.Errorf("decode refresh response: %w", err))
	}
	if out.AccessToken == "" {
		c.metrics.observeRefresh("failed")
		return "", c.endSession(ctx, ReasonRefreshFailed, errors.New("refresh response has no access token"))
	}

	if err := c.store.SaveTokens(ctx, snap.Key, out.AccessToken, out.RefreshToken); err != nil {
		c.metrics.observeRefresh("failed")
		return "", c.endSession(ctx, ReasonRefreshFailed, err)
	}

	c.metrics.observeRefresh("success")
	c.log.Info(ctx, "access token refreshed",
		"role", resolution.RoleOrDefault(), "role_source", resolution.Source, "storage_key", snap.Key)

	return out.AccessToken, nil
}

// endSession wipes the stored credentials and notifies the UI.
func (c *HTTPClient) endSession(ctx context.Context, reason Reason, cause error) error {
	if err := c.store.Clear(ctx); err != nil {
		c.log.Error(ctx, "failed to clear session", "error", err)
	}
	c.log.Warn(ctx, "session ended", "reason", reason, "error", cause, "redirect", SignInPath(reason))
	if c.onEnded != nil {
		c.onEnded(ctx, reason)
	}
	return &RefreshError{Reason: reason, Err: cause}
}
