//go:build unit

package queries_test

import (
	"context"
	"testing"

	"room-booking/internal/domain/booking"
	"room-booking/internal/infra"
	"room-booking/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBookingViewRepo struct {
	mock.Mock
}

func (m *MockBookingViewRepo) FindByID(ctx context.Context, id int64) (*queries.BookingView, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*queries.BookingView); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingViewRepo) FindByUserID(ctx context.Context, userID string) ([]*queries.BookingView, error) {
	args := m.Called(ctx, userID)
	if v, ok := args.Get(0).([]*queries.BookingView); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func TestBookingQueries_GetByID(t *testing.T) {
	view := &queries.BookingView{ID: 1, ResourceID: 1, ResourceName: "Breakout Room A", UserID: "alice"}

	tests := []struct {
		name    string
		err     error
		want    *queries.BookingView
		wantErr error
	}{
		{name: "found", want: view},
		{name: "not found maps to domain error", err: infra.WrapRepoErr("booking not found", nil, infra.KindNotFound), wantErr: booking.ErrNotFound},
		{name: "other errors pass through", err: assert.AnError, wantErr: assert.AnError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockBookingViewRepo)
			repo.On("FindByID", mock.Anything, int64(1)).Return(tt.want, tt.err)

			got, err := queries.NewBookingQueries(repo).GetByID(context.Background(), 1)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestBookingQueries_ListByUser(t *testing.T) {
	t.Run("never returns nil", func(t *testing.T) {
		repo := new(MockBookingViewRepo)
		repo.On("FindByUserID", mock.Anything, "carol").Return(nil, nil)

		got, err := queries.NewBookingQueries(repo).ListByUser(context.Background(), "carol")
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("passes views through", func(t *testing.T) {
		views := []*queries.BookingView{{ID: 1}, {ID: 3}}
		repo := new(MockBookingViewRepo)
		repo.On("FindByUserID", mock.Anything, "alice").Return(views, nil)

		got, err := queries.NewBookingQueries(repo).ListByUser(context.Background(), "alice")
		require.NoError(t, err)
		assert.Equal(t, views, got)
	})
}
