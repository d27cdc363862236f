package feedback

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/greensphere/payoff/pkg/models/store"
)

type Store interface {
	Create(ctx context.Context, fb store.Feedback) (store.Feedback, error)
	List(ctx context.Context, userID string) ([]store.Feedback, error)
}

type feedbackStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &feedbackStore{db: db}, nil
}

func (s *feedbackStore) Create(ctx context.Context, fb store.Feedback) (store.Feedback, error) {
	fb.ID = uuid.NewString()
	fb.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO feedback (id, user_id, rating, message, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		fb.ID, fb.UserID, fb.Rating, fb.Message, fb.CreatedAt,
	)
	if err != nil {
		return store.Feedback{}, fmt.Errorf("insert feedback: %w", err)
	}
	return fb, nil
}

func (s *feedbackStore) List(ctx context.Context, userID string) ([]store.Feedback, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, rating, message, created_at
		FROM feedback
		WHERE user_id = ?
		ORDER BY created_at DESC, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("query feedback: %w", err)
	}
	defer rows.Close()

	records := make([]store.Feedback, 0)
	for rows.Next() {
		var fb store.Feedback
		if err := rows.Scan(&fb.ID, &fb.UserID, &fb.Rating, &fb.Message, &fb.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, fb)
	}
	return records, rows.Err()
}
