package workflow

import (
	"fmt"
	"strings"
)

// EntityKind identifies which transition graph applies to an entity.
type EntityKind string

const (
	// KindQuotation covers quotations and the orders they turn into.
	KindQuotation EntityKind = "quotation"
	KindTask      EntityKind = "task"
)

// Status is the wire value of an entity status.
type Status string

// Quotation / order pipeline.
const (
	StatusDraft           Status = "draft"
	StatusPendingInternal Status = "pending_internal"
	StatusPendingClient   Status = "pending_client"
	StatusNegotiation     Status = "negotiation"
	StatusApproved        Status = "approved"
	StatusRejected        Status = "rejected"
	StatusSourcing        Status = "sourcing"
	StatusPacking         Status = "packing"
	StatusInFulfillment   Status = "in_fulfillment"
	StatusPaid            Status = "paid"
	StatusOutForDelivery  Status = "out_for_delivery"
	StatusDelivered       Status = "delivered"
	StatusReturned        Status = "returned"
	StatusCompleted       Status = "completed"
	StatusCancelled       Status = "cancelled"
)

// Task board.
const (
	TaskTodo       Status = "todo"
	TaskInProgress Status = "in_progress"
	TaskBlocked    Status = "blocked"
	TaskReview     Status = "review"
	TaskDone       Status = "done"
	TaskCancelled  Status = "cancelled"
)

func (s Status) String() string { return string(s) }

// ParseKind maps user input such as "quote", "order" or "tasks" to a kind.
func ParseKind(raw string) (EntityKind, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "quotation", "quotations", "quote", "quotes", "order", "orders":
		return KindQuotation, nil
	case "task", "tasks":
		return KindTask, nil
	default:
		return "", fmt.Errorf("unknown entity kind: %q", raw)
	}
}

// ParseStatus normalises raw input ("Pending Client", "PENDING-CLIENT",
// "pending_client") and checks it belongs to kind's graph.
func ParseStatus(kind EntityKind, raw string) (Status, error) {
	norm := strings.ToLower(strings.TrimSpace(raw))
	norm = strings.NewReplacer(" ", "_", "-", "_").Replace(norm)

	s := Status(norm)
	g, ok := graphs[kind]
	if !ok {
		return "", fmt.Errorf("unknown entity kind: %q", kind)
	}
	if _, ok := g[s]; !ok {
		return "", fmt.Errorf("unknown %s status: %q", kind, raw)
	}
	return s, nil
}
