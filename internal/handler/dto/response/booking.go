package response

import (
	"room-booking/internal/usecase/queries"
)

type BookingResponse struct {
	ID           int64  `json:"id"`
	ResourceID   int    `json:"resourceId"`
	ResourceName string `json:"resourceName"`
	UserID       string `json:"userId"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:           v.ID,
		ResourceID:   v.ResourceID,
		ResourceName: v.ResourceName,
		UserID:       v.UserID,
		Date:         v.Date,
		StartTime:    v.StartTime,
		EndTime:      v.EndTime,
	}
}

func FromBookingViews(vs []*queries.BookingView) []*BookingResponse {
	out := make([]*BookingResponse, len(vs))
	for i, v := range vs {
		out[i] = FromBookingView(v)
	}
	return out
}
