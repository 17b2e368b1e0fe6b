package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/bizadmin/internal/client/models"
	"github.com/dmitrijs2005/bizadmin/internal/workflow"
)

var (
	errUsageQuoteStatus = errors.New("usage: quote-status <id> <status>")
	errUsageTaskStatus  = errors.New("usage: task-status <id> <status>")
	errUsageNext        = errors.New("usage: next <quotation|task> <status>")
)

func joinStatuses(ss []workflow.Status) string {
	if len(ss) == 0 {
		return "-"
	}
	parts := make([]string, len(ss))
	for i, s := range ss {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}

// table renders rows with aligned columns and prints them in one go.
func table(header string, rows []string) {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, header)
	for _, r := range rows {
		fmt.Fprintln(w, r)
	}
	_ = w.Flush()
	printlnFn(strings.TrimRight(buf.String(), "\n"))
}

func (a *App) Quotes(ctx context.Context) error {
	qs, err := a.quotationService.List(ctx)
	if err != nil {
		return err
	}
	a.seenQuotes = make(map[string]models.Quotation, len(qs))
	if len(qs) == 0 {
		printlnFn("No quotations")
		return nil
	}

	rows := make([]string, 0, len(qs))
	for _, q := range qs {
		a.seenQuotes[q.ID] = q
		rows = append(rows, fmt.Sprintf("%s\t%s\t%s\t%s\t%s",
			q.ID, q.Title(), q.ClientName, q.Status, joinStatuses(a.quotationService.NextStatuses(q))))
	}
	table("ID\tNUMBER\tCLIENT\tSTATUS\tNEXT", rows)
	return nil
}

// QuoteStatus moves a quotation to a new status. The current status comes
// from the last "quotes" listing; an unlisted id is fetched first.
func (a *App) QuoteStatus(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errUsageQuoteStatus
	}
	to, err := workflow.ParseStatus(workflow.KindQuotation, args[1])
	if err != nil {
		return err
	}

	cur, ok := a.seenQuotes[args[0]]
	if !ok {
		got, err := a.quotationService.Get(ctx, args[0])
		if err != nil {
			return err
		}
		cur = *got
	}

	q, err := a.quotationService.ChangeStatus(ctx, cur, to)
	if err != nil {
		return err
	}
	if a.seenQuotes == nil {
		a.seenQuotes = map[string]models.Quotation{}
	}
	a.seenQuotes[cur.ID] = *q
	printlnFn(fmt.Sprintf("Quotation %s is now %s", q.Title(), q.Status))
	return nil
}

func (a *App) Tasks(ctx context.Context) error {
	ts, err := a.taskService.List(ctx)
	if err != nil {
		return err
	}
	a.seenTasks = make(map[string]models.Task, len(ts))
	if len(ts) == 0 {
		printlnFn("No tasks")
		return nil
	}

	rows := make([]string, 0, len(ts))
	for _, t := range ts {
		a.seenTasks[t.ID] = t
		rows = append(rows, fmt.Sprintf("%s\t%s\t%s\t%s\t%s",
			t.ID, t.Title, t.Assignee, t.Status, joinStatuses(a.taskService.NextStatuses(t))))
	}
	table("ID\tTITLE\tASSIGNEE\tSTATUS\tNEXT", rows)
	return nil
}

func (a *App) TaskStatus(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errUsageTaskStatus
	}
	to, err := workflow.ParseStatus(workflow.KindTask, args[1])
	if err != nil {
		return err
	}

	cur, ok := a.seenTasks[args[0]]
	if !ok {
		got, err := a.taskService.Get(ctx, args[0])
		if err != nil {
			return err
		}
		cur = *got
	}

	t, err := a.taskService.ChangeStatus(ctx, cur, to)
	if err != nil {
		return err
	}
	if a.seenTasks == nil {
		a.seenTasks = map[string]models.Task{}
	}
	a.seenTasks[cur.ID] = *t
	printlnFn(fmt.Sprintf("Task %s is now %s", t.ID, t.Status))
	return nil
}

// Next prints the statuses reachable from the given one. It works offline.
func (a *App) Next(_ context.Context, args []string) error {
	if len(args) != 2 {
		return errUsageNext
	}
	kind, err := workflow.ParseKind(args[0])
	if err != nil {
		return err
	}
	from, err := workflow.ParseStatus(kind, args[1])
	if err != nil {
		return err
	}

	next := workflow.AllowedNext(kind, from)
	if len(next) == 0 {
		printlnFn(fmt.Sprintf("%s %s: no further transitions", kind, from))
		return nil
	}
	printlnFn(fmt.Sprintf("%s %s -> %s", kind, from, joinStatuses(next)))
	return nil
}
