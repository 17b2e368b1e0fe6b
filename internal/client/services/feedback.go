package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/bizadmin/internal/client/client"
	"github.com/dmitrijs2005/bizadmin/internal/client/models"
)

const (
	feedbackPath         = "/feedback"
	feedbackValidatePath = "/feedback/validate-token"
)

// FeedbackService talks to the public feedback endpoints. The HTTP client
// sends them without credentials.
type FeedbackService interface {
	ValidateToken(ctx context.Context, token string) (*models.FeedbackInvitation, error)
	Submit(ctx context.Context, f models.Feedback) error
}

type feedbackService struct {
	client client.Client
}

func NewFeedbackService(c client.Client) FeedbackService {
	return &feedbackService{client: c}
}

func (s *feedbackService) ValidateToken(ctx context.Context, token string) (*models.FeedbackInvitation, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, models.ErrMissingFeedbackToken
	}

	resp, err := s.client.Do(ctx, client.Request{
		Method: http.MethodGet,
		Path:   feedbackValidatePath,
		Query:  url.Values{"token": {token}},
	})
	if err != nil {
		return nil, fmt.Errorf("validate feedback token: %w", err)
	}

	var inv models.FeedbackInvitation
	if err := resp.Decode(&inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

func (s *feedbackService) Submit(ctx context.Context, f models.Feedback) error {
	if err := f.Validate(); err != nil {
		return err
	}
	if err := s.client.JSON(ctx, http.MethodPost, feedbackPath, f, nil); err != nil {
		return fmt.Errorf("submit feedback: %w", err)
	}
	return nil
}
