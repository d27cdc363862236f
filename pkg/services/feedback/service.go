package feedback

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/greensphere/payoff/pkg/adapters"
	"github.com/greensphere/payoff/pkg/models/domain"
	feedbackstore "github.com/greensphere/payoff/pkg/store/duckdb/feedback"
)

const (
	MinRating = 1
	MaxRating = 5
)

var ErrInvalidFeedback = errors.New("invalid feedback")

type Service interface {
	Submit(ctx context.Context, fb domain.Feedback) (domain.Feedback, error)
	List(ctx context.Context, userID string) ([]domain.Feedback, error)
}

type service struct {
	store feedbackstore.Store
}

func NewService(store feedbackstore.Store) Service {
	return &service{store: store}
}

func (s *service) Submit(ctx context.Context, fb domain.Feedback) (domain.Feedback, error) {
	fb.Message = strings.TrimSpace(fb.Message)
	switch {
	case fb.UserID == "":
		return domain.Feedback{}, fmt.Errorf("%w: user id is required", ErrInvalidFeedback)
	case fb.Message == "":
		return domain.Feedback{}, fmt.Errorf("%w: message is required", ErrInvalidFeedback)
	case fb.Rating < MinRating || fb.Rating > MaxRating:
		return domain.Feedback{}, fmt.Errorf("%w: rating must be between %d and %d", ErrInvalidFeedback, MinRating, MaxRating)
	}

	rec, err := s.store.Create(ctx, adapters.MapFeedbackDomainToStore(fb))
	if err != nil {
		return domain.Feedback{}, err
	}
	return adapters.MapFeedbackStoreToDomain(rec), nil
}

func (s *service) List(ctx context.Context, userID string) ([]domain.Feedback, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidFeedback)
	}

	records, err := s.store.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Feedback, 0, len(records))
	for _, r := range records {
		out = append(out, adapters.MapFeedbackStoreToDomain(r))
	}
	return out, nil
}
