//go:build unit

package readrepo_test

import (
	"context"
	"testing"

	"room-booking/internal/domain/booking"
	"room-booking/internal/infra"
	"room-booking/internal/infra/readrepo"
	"room-booking/internal/infra/readstore"
	"room-booking/internal/infra/repository"
	"room-booking/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appendBooking(t *testing.T, store *repository.BookingStore, resourceID int, userID, date, start, end string) {
	t.Helper()
	d, err := booking.ParseDate(date)
	require.NoError(t, err)
	s, err := booking.ParseTimeOfDay(start)
	require.NoError(t, err)
	e, err := booking.ParseTimeOfDay(end)
	require.NoError(t, err)
	_, err = store.Append(context.Background(), resourceID, userID, booking.ReconstructTimeWindow(d, s, e))
	require.NoError(t, err)
}

func TestBookingViewRepository(t *testing.T) {
	ctx := context.Background()
	store := repository.NewBookingStore()
	catalog := readstore.NewResourceReadStore(readstore.DefaultResources())
	repo := readrepo.NewBookingViewRepository(store, catalog)

	appendBooking(t, store, 1, "alice", "2024-06-01", "10:00", "11:00")
	appendBooking(t, store, 2, "bob", "2024-06-01", "10:00", "11:30:30")
	appendBooking(t, store, 7, "alice", "2024-06-02", "09:00", "09:30")

	t.Run("FindByID joins the resource name", func(t *testing.T) {
		got, err := repo.FindByID(ctx, 2)
		require.NoError(t, err)

		expected := &queries.BookingView{
			ID:           2,
			ResourceID:   2,
			ResourceName: "Breakout Room B",
			UserID:       "bob",
			Date:         "2024-06-01",
			StartTime:    "10:00",
			EndTime:      "11:30:30",
		}
		if diff := cmp.Diff(expected, got); diff != "" {
			t.Errorf("BookingView mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("FindByID missing", func(t *testing.T) {
		_, err := repo.FindByID(ctx, 99)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("FindByUserID keeps order and tolerates unknown resources", func(t *testing.T) {
		got, err := repo.FindByUserID(ctx, "alice")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, int64(1), got[0].ID)
		assert.Equal(t, "Breakout Room A", got[0].ResourceName)
		assert.Equal(t, int64(3), got[1].ID)
		assert.Empty(t, got[1].ResourceName)
	})
}
