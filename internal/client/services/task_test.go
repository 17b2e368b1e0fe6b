package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/dmitrijs2005/bizadmin/internal/client/models"
	"github.com/dmitrijs2005/bizadmin/internal/workflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskListAndChangeStatus(t *testing.T) {
	fc := newFakeClient().
		on(http.MethodGet, "/tasks", []map[string]any{{"id": "t1", "title": "Call supplier", "status": "todo"}}, nil).
		on(http.MethodPatch, "/tasks/t1/status", map[string]any{"id": "t1", "title": "Call supplier", "status": "in_progress"}, nil)
	svc := NewTaskService(fc)

	tasks, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Call supplier", tasks[0].Title)

	task, err := svc.ChangeStatus(context.Background(), tasks[0], workflow.TaskInProgress)
	require.NoError(t, err)
	assert.Equal(t, workflow.TaskInProgress, task.Status)
}

func TestTaskChangeStatus_IllegalMakesNoNetworkCall(t *testing.T) {
	fc := newFakeClient().
		on(http.MethodPatch, "/tasks/t1/status", map[string]any{"id": "t1", "status": "done"}, nil)

	_, err := NewTaskService(fc).ChangeStatus(context.Background(),
		models.Task{ID: "t1", Status: workflow.TaskTodo}, workflow.TaskDone)
	require.ErrorIs(t, err, workflow.ErrIllegalTransition)
	assert.Empty(t, fc.calls)
}

func TestTaskNextStatuses(t *testing.T) {
	svc := NewTaskService(newFakeClient())
	assert.Equal(t, []workflow.Status{workflow.TaskInProgress}, svc.NextStatuses(models.Task{Status: workflow.TaskDone}))
	assert.Empty(t, svc.NextStatuses(models.Task{Status: "unknown"}))
}
