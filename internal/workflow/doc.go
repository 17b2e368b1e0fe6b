// Package workflow holds the status transition graphs for business entities.
//
// Quotations and orders share a single pipeline (draft through delivery and
// completion); tasks have their own, shorter board. The graphs are fixed at
// compile time. Lookups never panic: an unknown entity kind or status yields
// an empty set of next statuses, which disables further transitions instead
// of permitting arbitrary ones.
//
// Typical use before issuing a status change request:
//
//	if err := workflow.Validate(workflow.KindQuotation, q.Status, target); err != nil {
//	    return err // errors.Is(err, workflow.ErrIllegalTransition)
//	}
package workflow
