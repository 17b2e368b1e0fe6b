package workflow

import (
	"errors"
	"fmt"
	"strings"
)

// ErrIllegalTransition is matched by every *IllegalTransitionError.
var ErrIllegalTransition = errors.New("illegal status transition")

// IllegalTransitionError describes a rejected status change.
type IllegalTransitionError struct {
	Kind    EntityKind
	From    Status
	To      Status
	Allowed []Status
}

func (e *IllegalTransitionError) Error() string {
	allowed := "none"
	if len(e.Allowed) > 0 {
		parts := make([]string, len(e.Allowed))
		for i, s := range e.Allowed {
			parts[i] = string(s)
		}
		allowed = strings.Join(parts, ", ")
	}
	return fmt.Sprintf("%s: %s %q -> %q (allowed: %s)", ErrIllegalTransition, e.Kind, e.From, e.To, allowed)
}

func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}
