package api

import (
	"net/http"

	"room-booking/internal/domain/booking"
	"room-booking/internal/handler/httperr"
	"room-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var bookingErrorResponses = map[booking.Kind]struct {
	status int
	msg    string
}{
	booking.KindMalformedInput:   {http.StatusBadRequest, "Date must be YYYY-MM-DD and times HH:MM"},
	booking.KindPastDate:         {http.StatusUnprocessableEntity, "Cannot book a date in the past"},
	booking.KindPastTime:         {http.StatusUnprocessableEntity, "Start time has already passed"},
	booking.KindInvalidOrder:     {http.StatusUnprocessableEntity, "End time must be after start time"},
	booking.KindDurationExceeded: {http.StatusUnprocessableEntity, "Bookings are limited to 2 hours"},
	booking.KindResourceNotFound: {http.StatusNotFound, "Room not found"},
	booking.KindSlotConflict:     {http.StatusConflict, "Time slot already booked"},
	booking.KindNotFound:         {http.StatusNotFound, "Booking not found"},
}

// abortWithBookingError is the single place where core rejections become HTTP responses.
func abortWithBookingError(c *gin.Context, err error) {
	kind := booking.KindOf(err)
	if r, ok := bookingErrorResponses[kind]; ok {
		httperr.AbortWithCode(c, r.status, err, kind.String(), r.msg, nil)
		return
	}
	httperr.AbortWithCode(c, http.StatusInternalServerError, err, booking.KindInternal.String(), "Internal server error", nil)
}

var (
	errNoUser    = errs.New("authenticated user missing from context")
	errInvalidID = errs.New("id must be a positive integer")
)

func errBadID(err error) error {
	if err != nil {
		return errs.Wrap(errInvalidID, err.Error())
	}
	return errInvalidID
}
