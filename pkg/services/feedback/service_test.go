package feedback

import (
	"context"
	"testing"

	"github.com/greensphere/payoff/pkg/models/domain"
	"github.com/greensphere/payoff/pkg/models/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Create(ctx context.Context, fb store.Feedback) (store.Feedback, error) {
	args := m.Called(ctx, fb)
	return args.Get(0).(store.Feedback), args.Error(1)
}

func (m *mockStore) List(ctx context.Context, userID string) ([]store.Feedback, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]store.Feedback), args.Error(1)
}

func TestService_Submit(t *testing.T) {
	tests := []struct {
		name    string
		input   domain.Feedback
		wantErr bool
	}{
		{name: "valid", input: domain.Feedback{UserID: "u", Rating: 5, Message: " love it "}},
		{name: "missing user", input: domain.Feedback{Rating: 5, Message: "x"}, wantErr: true},
		{name: "blank message", input: domain.Feedback{UserID: "u", Rating: 5, Message: "  "}, wantErr: true},
		{name: "rating too low", input: domain.Feedback{UserID: "u", Rating: 0, Message: "x"}, wantErr: true},
		{name: "rating too high", input: domain.Feedback{UserID: "u", Rating: 6, Message: "x"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := new(mockStore)
			s.On("Create", mock.Anything, mock.Anything).
				Return(store.Feedback{ID: "fb-1", UserID: "u", Rating: 5, Message: "love it"}, nil)

			svc := NewService(s)
			got, err := svc.Submit(context.Background(), tt.input)

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFeedback)
				s.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "fb-1", got.ID)
			s.AssertCalled(t, "Create", mock.Anything, store.Feedback{UserID: "u", Rating: 5, Message: "love it"})
		})
	}
}

func TestService_List(t *testing.T) {
	s := new(mockStore)
	s.On("List", mock.Anything, "u").Return([]store.Feedback{{ID: "a", UserID: "u"}}, nil)

	svc := NewService(s)
	got, err := svc.List(context.Background(), "u")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)

	_, err = svc.List(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidFeedback)
}
