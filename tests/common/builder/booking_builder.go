//go:build unit

package builder

import (
	reqdto "room-booking/internal/handler/dto/request"
	"room-booking/internal/usecase/commands"
	"room-booking/internal/usecase/queries"
)

type BookingBuilder struct {
	ID           int64
	ResourceID   int
	ResourceName string
	UserID       string
	Date         string
	StartTime    string
	EndTime      string
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:           1,
		ResourceID:   1,
		ResourceName: "Breakout Room A",
		UserID:       "alice",
		Date:         "2024-06-01",
		StartTime:    "10:00",
		EndTime:      "11:00",
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ResourceID: b.ResourceID,
		Date:       b.Date,
		StartTime:  b.StartTime,
		EndTime:    b.EndTime,
	}
}

func (b *BookingBuilder) BuildParams() commands.AttemptBookingParams {
	return commands.AttemptBookingParams{
		ResourceID: b.ResourceID,
		UserID:     b.UserID,
		Date:       b.Date,
		StartTime:  b.StartTime,
		EndTime:    b.EndTime,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:           b.ID,
		ResourceID:   b.ResourceID,
		ResourceName: b.ResourceName,
		UserID:       b.UserID,
		Date:         b.Date,
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithWindow(date, start, end string) *BookingBuilder {
	b.Date, b.StartTime, b.EndTime = date, start, end
	return b
}

func (b *BookingBuilder) WithUser(userID string) *BookingBuilder {
	b.UserID = userID
	return b
}
