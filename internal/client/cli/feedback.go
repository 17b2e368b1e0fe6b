package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/bizadmin/internal/client/models"
)

var errUsageFeedback = errors.New("usage: feedback <token>")

// Feedback checks the feedback token, then asks for a rating and an
// optional comment and submits them. No login is needed.
func (a *App) Feedback(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsageFeedback
	}

	inv, err := a.feedbackService.ValidateToken(ctx, args[0])
	if err != nil {
		return err
	}
	if !inv.Valid {
		msg := inv.Message
		if msg == "" {
			msg = "feedback link is invalid or already used"
		}
		printlnFn(msg)
		return nil
	}
	if inv.ClientName != "" {
		printlnFn("Feedback for", inv.ClientName)
	}

	rating, err := GetIntInRange(a.reader, "Rating", a.out, models.MinRating, models.MaxRating)
	if errors.Is(err, errOutOfRange) {
		return fmt.Errorf("%w: %v", models.ErrRatingOutOfRange, err)
	}
	if err != nil {
		return err
	}
	comment, err := getSimpleText(a.reader, "Comment (optional)", a.out)
	if err != nil {
		return err
	}

	if err := a.feedbackService.Submit(ctx, models.Feedback{Token: args[0], Rating: rating, Comment: comment}); err != nil {
		return err
	}
	printlnFn("Thank you for your feedback!")
	return nil
}
