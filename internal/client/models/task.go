package models

import (
	"time"

	"github.com/dmitrijs2005/bizadmin/internal/workflow"
)

type Task struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Status   workflow.Status `json:"status"`
	Assignee string          `json:"assignee,omitempty"`
	Priority string          `json:"priority,omitempty"`
	DueDate  *time.Time      `json:"dueDate,omitempty"`
}

// Overdue reports whether the task has a due date before now and is not in
// a terminal status.
func (t Task) Overdue(now time.Time) bool {
	if t.DueDate == nil || workflow.IsTerminal(workflow.KindTask, t.Status) || t.Status == workflow.TaskDone {
		return false
	}
	return t.DueDate.Before(now)
}
