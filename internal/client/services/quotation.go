package services

import (
	"context"

	"github.com/dmitrijs2005/bizadmin/internal/client/client"
	"github.com/dmitrijs2005/bizadmin/internal/client/models"
	"github.com/dmitrijs2005/bizadmin/internal/workflow"
)

const quotationsPath = "/quotations"

type QuotationService interface {
	List(ctx context.Context) ([]models.Quotation, error)
	Get(ctx context.Context, id string) (*models.Quotation, error)
	ChangeStatus(ctx context.Context, q models.Quotation, to workflow.Status) (*models.Quotation, error)
	NextStatuses(q models.Quotation) []workflow.Status
}

type quotationService struct {
	res resource[models.Quotation]
}

func NewQuotationService(c client.Client) QuotationService {
	return &quotationService{res: resource[models.Quotation]{
		client: c,
		kind:   workflow.KindQuotation,
		base:   quotationsPath,
		id:     func(q *models.Quotation) string { return q.ID },
		status: func(q *models.Quotation) *workflow.Status { return &q.Status },
	}}
}

func (s *quotationService) List(ctx context.Context) ([]models.Quotation, error) {
	return s.res.list(ctx)
}

func (s *quotationService) Get(ctx context.Context, id string) (*models.Quotation, error) {
	return s.res.get(ctx, id)
}

// ChangeStatus moves q from its current status to to. A move the workflow
// does not allow returns a *workflow.IllegalTransitionError and sends nothing.
func (s *quotationService) ChangeStatus(ctx context.Context, q models.Quotation, to workflow.Status) (*models.Quotation, error) {
	return s.res.changeStatus(ctx, q, to)
}

func (s *quotationService) NextStatuses(q models.Quotation) []workflow.Status {
	return workflow.AllowedNext(workflow.KindQuotation, q.Status)
}
