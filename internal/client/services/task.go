package services

import (
	"context"

	"github.com/dmitrijs2005/bizadmin/internal/client/client"
	"github.com/dmitrijs2005/bizadmin/internal/client/models"
	"github.com/dmitrijs2005/bizadmin/internal/workflow"
)

const tasksPath = "/tasks"

type TaskService interface {
	List(ctx context.Context) ([]models.Task, error)
	Get(ctx context.Context, id string) (*models.Task, error)
	ChangeStatus(ctx context.Context, t models.Task, to workflow.Status) (*models.Task, error)
	NextStatuses(t models.Task) []workflow.Status
}

type taskService struct {
	res resource[models.Task]
}

func NewTaskService(c client.Client) TaskService {
	return &taskService{res: resource[models.Task]{
		client: c,
		kind:   workflow.KindTask,
		base:   tasksPath,
		id:     func(t *models.Task) string { return t.ID },
		status: func(t *models.Task) *workflow.Status { return &t.Status },
	}}
}

func (s *taskService) List(ctx context.Context) ([]models.Task, error) {
	return s.res.list(ctx)
}

func (s *taskService) Get(ctx context.Context, id string) (*models.Task, error) {
	return s.res.get(ctx, id)
}

func (s *taskService) ChangeStatus(ctx context.Context, t models.Task, to workflow.Status) (*models.Task, error) {
	return s.res.changeStatus(ctx, t, to)
}

func (s *taskService) NextStatuses(t models.Task) []workflow.Status {
	return workflow.AllowedNext(workflow.KindTask, t.Status)
}
