package workflow

import "slices"

type graph map[Status][]Status

var quotationGraph = graph{
	StatusDraft:           {StatusPendingInternal, StatusPendingClient, StatusCancelled},
	StatusPendingInternal: {StatusPendingClient, StatusDraft, StatusCancelled},
	StatusPendingClient:   {StatusApproved, StatusRejected, StatusNegotiation, StatusPendingInternal, StatusCancelled},
	StatusNegotiation:     {StatusPendingInternal, StatusPendingClient, StatusApproved, StatusRejected, StatusCancelled},
	StatusApproved:        {StatusSourcing, StatusPacking, StatusInFulfillment, StatusCancelled, StatusNegotiation},
	StatusSourcing:        {StatusPacking, StatusInFulfillment, StatusCancelled},
	StatusPacking:         {StatusInFulfillment, StatusOutForDelivery, StatusCancelled},
	StatusInFulfillment:   {StatusPaid, StatusPacking, StatusOutForDelivery, StatusCancelled},
	StatusPaid:            {StatusPacking, StatusOutForDelivery, StatusDelivered, StatusCancelled},
	StatusOutForDelivery:  {StatusDelivered, StatusReturned, StatusCancelled},
	StatusDelivered:       {StatusCompleted, StatusReturned, StatusCancelled},
	StatusReturned:        {StatusCompleted, StatusCancelled, StatusSourcing, StatusPacking},
	StatusCompleted:       {StatusCancelled},
	StatusRejected:        {StatusCancelled, StatusNegotiation, StatusPendingInternal},
	StatusCancelled:       {},
}

var taskGraph = graph{
	TaskTodo:       {TaskInProgress, TaskCancelled},
	TaskInProgress: {TaskReview, TaskBlocked, TaskTodo, TaskCancelled},
	TaskBlocked:    {TaskInProgress, TaskCancelled},
	TaskReview:     {TaskDone, TaskInProgress, TaskCancelled},
	TaskDone:       {TaskInProgress},
	TaskCancelled:  {},
}

var graphs = map[EntityKind]graph{
	KindQuotation: quotationGraph,
	KindTask:      taskGraph,
}

// AllowedNext returns the statuses reachable from current in one step, in
// table order. The result is a copy and may be modified by the caller. Unknown
// kinds and statuses yield an empty slice.
func AllowedNext(kind EntityKind, current Status) []Status {
	next := graphs[kind][current]
	return append([]Status{}, next...)
}

// IsLegal reports whether to is one of AllowedNext(kind, from).
func IsLegal(kind EntityKind, from, to Status) bool {
	return slices.Contains(graphs[kind][from], to)
}

// IsTerminal reports whether s is a known status without outgoing edges.
func IsTerminal(kind EntityKind, s Status) bool {
	next, ok := graphs[kind][s]
	return ok && len(next) == 0
}

// Statuses lists every status known for kind, sorted.
func Statuses(kind EntityKind) []Status {
	g := graphs[kind]
	out := make([]Status, 0, len(g))
	for s := range g {
		out = append(out, s)
	}
	slices.Sort(out)
	return out
}

// Validate returns an *IllegalTransitionError when from -> to is not allowed.
func Validate(kind EntityKind, from, to Status) error {
	if IsLegal(kind, from, to) {
		return nil
	}
	return &IllegalTransitionError{Kind: kind, From: from, To: to, Allowed: AllowedNext(kind, from)}
}
