//go:build unit

package response_test

import (
	"encoding/json"
	"testing"

	"room-booking/internal/handler/dto/response"
	"room-booking/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromBookingView(t *testing.T) {
	got := response.FromBookingView(&queries.BookingView{
		ID:           3,
		ResourceID:   2,
		ResourceName: "Breakout Room B",
		UserID:       "bob",
		Date:         "2024-06-01",
		StartTime:    "10:00",
		EndTime:      "11:00",
	})

	expected := &response.BookingResponse{
		ID:           3,
		ResourceID:   2,
		ResourceName: "Breakout Room B",
		UserID:       "bob",
		Date:         "2024-06-01",
		StartTime:    "10:00",
		EndTime:      "11:00",
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("BookingResponse mismatch (-want +got):\n%s", diff)
	}
}

func TestFromAvailabilityView(t *testing.T) {
	t.Run("copies nested windows", func(t *testing.T) {
		got := response.FromAvailabilityView(&queries.AvailabilityView{
			ResourceID: 1,
			Date:       "2024-06-01",
			Free:       []queries.FreeWindowView{{StartTime: "00:00", EndTime: "24:00"}},
		})
		assert.Equal(t, []response.FreeWindowResponse{{StartTime: "00:00", EndTime: "24:00"}}, got.Free)
	})

	t.Run("fully booked day renders an empty array", func(t *testing.T) {
		got := response.FromAvailabilityView(&queries.AvailabilityView{ResourceID: 1, Date: "2024-06-01"})

		raw, err := json.Marshal(got)
		require.NoError(t, err)
		assert.JSONEq(t, `{"resourceId":1,"date":"2024-06-01","free":[]}`, string(raw))
	})
}

func TestFromResourceViews(t *testing.T) {
	got := response.FromResourceViews([]*queries.ResourceView{
		{ID: 1, Name: "Breakout Room A", Capacity: 4},
		{ID: 3, Name: "Breakout Room C", Capacity: 8},
	})

	expected := []*response.ResourceResponse{
		{ID: 1, Name: "Breakout Room A", Capacity: 4},
		{ID: 3, Name: "Breakout Room C", Capacity: 8},
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("ResourceResponse mismatch (-want +got):\n%s", diff)
	}
}
