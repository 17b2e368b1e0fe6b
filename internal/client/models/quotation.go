package models

import (
	"time"

	"github.com/dmitrijs2005/bizadmin/internal/workflow"
)

// Quotation is a sales quotation. Once approved it continues through the
// same status pipeline as an order.
type Quotation struct {
	ID         string          `json:"id"`
	Number     string          `json:"quotationNumber,omitempty"`
	ClientName string          `json:"clientName,omitempty"`
	Status     workflow.Status `json:"status"`
	Total      float64         `json:"total,omitempty"`
	Currency   string          `json:"currency,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// Title is the number when set, the id otherwise.
func (q Quotation) Title() string {
	if q.Number != "" {
		return q.Number
	}
	return q.ID
}
