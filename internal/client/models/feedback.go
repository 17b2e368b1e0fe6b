package models

import (
	"errors"
	"strings"
)

const (
	MinRating = 1
	MaxRating = 5
)

var (
	ErrMissingFeedbackToken = errors.New("feedback token is required")
	ErrRatingOutOfRange     = errors.New("rating must be between 1 and 5")
)

// FeedbackInvitation is what the backend reports for a feedback link token.
type FeedbackInvitation struct {
	Valid       bool   `json:"valid"`
	QuotationID string `json:"quotationId,omitempty"`
	ClientName  string `json:"clientName,omitempty"`
	Message     string `json:"message,omitempty"`
}

// Feedback is submitted anonymously by a client through a feedback link.
type Feedback struct {
	Token   string `json:"token"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

func (f Feedback) Validate() error {
	if strings.TrimSpace(f.Token) == "" {
		return ErrMissingFeedbackToken
	}
	if f.Rating < MinRating || f.Rating > MaxRating {
		return ErrRatingOutOfRange
	}
	return nil
}
