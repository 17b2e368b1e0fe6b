package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/bizadmin/internal/client/client"
	"github.com/dmitrijs2005/bizadmin/internal/client/models"
	"github.com/dmitrijs2005/bizadmin/internal/common"
	"github.com/dmitrijs2005/bizadmin/internal/workflow"
)

type statusUpdate struct {
	Status workflow.Status `json:"status"`
}

// resource is the list/get/status-change trio shared by quotations and
// tasks.
type resource[T any] struct {
	client client.Client
	kind   workflow.EntityKind
	base   string
	id     func(*T) string
	status func(*T) *workflow.Status
}

func (r resource[T]) itemPath(id string) string {
	return r.base + "/" + url.PathEscape(id)
}

func (r resource[T]) list(ctx context.Context) ([]T, error) {
	resp, err := r.client.Do(ctx, client.Request{Method: http.MethodGet, Path: r.base})
	if err != nil {
		return nil, fmt.Errorf("list %ss: %w", r.kind, err)
	}
	return models.DecodeList[T](resp.Body)
}

func (r resource[T]) get(ctx context.Context, id string) (*T, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: %s id is required", common.ErrInvalidRequest, r.kind)
	}
	var out T
	if err := r.client.JSON(ctx, http.MethodGet, r.itemPath(id), nil, &out); err != nil {
		return nil, fmt.Errorf("get %s %s: %w", r.kind, id, err)
	}
	return &out, nil
}

// changeStatus checks the move from the caller's copy of the item and only
// then sends the update. An illegal transition makes no network call.
func (r resource[T]) changeStatus(ctx context.Context, item T, to workflow.Status) (*T, error) {
	from := *r.status(&item)
	if err := workflow.Validate(r.kind, from, to); err != nil {
		return nil, err
	}

	id := r.id(&item)
	if id == "" {
		return nil, fmt.Errorf("%w: %s id is required", common.ErrInvalidRequest, r.kind)
	}

	resp, err := r.client.Do(ctx, client.Request{
		Method: http.MethodPatch,
		Path:   r.itemPath(id) + "/status",
		Body:   statusUpdate{Status: to},
	})
	if err != nil {
		return nil, fmt.Errorf("change %s %s status: %w", r.kind, id, err)
	}

	// The backend may answer 204; the stored item then differs only in status.
	if len(resp.Body) == 0 {
		*r.status(&item) = to
		return &item, nil
	}
	var updated T
	if err := resp.Decode(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
