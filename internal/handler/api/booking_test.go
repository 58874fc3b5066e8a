//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"room-booking/internal/domain/booking"
	"room-booking/internal/handler/api"
	"room-booking/internal/handler/middleware"
	resdto "room-booking/internal/handler/dto/response"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/queries"
	"room-booking/tests/common/builder"
	"room-booking/tests/common/httptest"
	"room-booking/tests/common/testutil"
	commandsmock "room-booking/tests/mock/commands"
	queriesmock "room-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		middleware.SetUserID(c, "alice")
		c.Next()
	}

	s.router.POST("/bookings", authMiddleware, s.handler.Create)
	s.router.GET("/bookings", authMiddleware, s.handler.List)
	s.router.GET("/bookings/:id", authMiddleware, s.handler.Get)
	// No auth in front: the handler must refuse on its own.
	s.router.POST("/unguarded/bookings", s.handler.Create)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"

	reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()
	expectedParams := builder.NewBookingBuilder().BuildParams()
	returnView := builder.NewBookingBuilder().BuildView()
	created := booking.NewBooking(returnView.ID, returnView.ResourceID, returnView.UserID, booking.TimeWindow{})

	missing := []testCaseBooking{
		{name: "missing field: resource_id (required)", mutate: testutil.Field("resource_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: date (required)", mutate: testutil.Field("date", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: start_time (required)", mutate: testutil.Field("start_time", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: end_time (required)", mutate: testutil.Field("end_time", nil), expectCode: http.StatusBadRequest},
		{name: "missing both times", mutate: testutil.Fields(testutil.Field("start_time", nil), testutil.Field("end_time", nil)), expectCode: http.StatusBadRequest},
	}

	wrongType := []testCaseBooking{
		{name: "resource_id as string", mutate: testutil.Field("resource_id", "1"), expectCode: http.StatusBadRequest},
		{name: "zero resource_id", mutate: testutil.Field("resource_id", 0), expectCode: http.StatusBadRequest},
		{name: "empty date", mutate: testutil.Field("date", ""), expectCode: http.StatusBadRequest},
	}

	allValidationTestCases := [][]testCaseBooking{missing, wrongType}

	s.Run("success: returns 201 Created with the booking", func() {
		s.mockCommands.EXPECT().AttemptBooking(gomock.Any(), expectedParams).
			Return(created, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(resdto.BookingResponse{
			ID:           1,
			ResourceID:   1,
			ResourceName: "Breakout Room A",
			UserID:       "alice",
			Date:         "2024-06-01",
			StartTime:    "10:00",
			EndTime:      "11:00",
		}, body)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/bookings/1"})
	})

	s.Run("error: 400 Bad Request on binding errors", func() {
		for _, testCaseGroup := range allValidationTestCases {
			for _, tc := range testCaseGroup {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
					httptest.AssertErrorCode(s.T(), rec, tc.expectCode, "malformed_input")
				})
			}
		}
	})

	s.Run("error: rejections map to status and code", func() {
		testCases := []struct {
			name       string
			err        error
			expectCode int
			expectKind string
			expectMsg  string
		}{
			{"malformed", booking.ErrMalformedInput, http.StatusBadRequest, "malformed_input", "YYYY-MM-DD"},
			{"past date", booking.ErrPastDate, http.StatusUnprocessableEntity, "past_date", "in the past"},
			{"past time", booking.ErrPastTime, http.StatusUnprocessableEntity, "past_time", "already passed"},
			{"invalid order", booking.ErrInvalidOrder, http.StatusUnprocessableEntity, "invalid_order", "after start"},
			{"too long", booking.ErrDurationExceeded, http.StatusUnprocessableEntity, "duration_exceeded", "2 hours"},
			{"unknown room", errs.Wrapf(booking.ErrResourceNotFound, "resource %d", 1), http.StatusNotFound, "resource_not_found", "Room not found"},
			{"conflict", errs.Wrap(booking.ErrSlotConflict, "slot taken"), http.StatusConflict, "slot_conflict", "already booked"},
			{"unexpected", errors.New("boom"), http.StatusInternalServerError, "internal", "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().AttemptBooking(gomock.Any(), gomock.Any()).
					Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorCode(s.T(), rec, tc.expectCode, tc.expectKind)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
			})
		}
	})

	s.Run("error: 401 when auth middleware is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/unguarded/bookings", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *BookingHandlerTestSuite) TestList() {
	s.Run("success: returns the caller's bookings", func() {
		views := []*queries.BookingView{
			builder.NewBookingBuilder().BuildView(),
			builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
				b.ID = 2
				b.StartTime, b.EndTime = "11:00", "12:00"
			}).BuildView(),
		}
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), "alice").Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "bearer-token")

		var body []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Equal(int64(1), body[0].ID)
		s.Equal("11:00", body[1].StartTime)
	})

	s.Run("success: empty list renders as []", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), "alice").Return([]*queries.BookingView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	s.Run("success", func() {
		view := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.ID = 7 }).BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(7)).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/7", nil, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(7), body.ID)
	})

	s.Run("error: 404 when missing", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(8)).
			Return(nil, errs.Wrap(booking.ErrNotFound, "booking 8")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/8", nil, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, "not_found")
	})

	for _, id := range []string{"abc", "0", "-3"} {
		s.Run("error: 400 on id "+id, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id, nil, "bearer-token")
			httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "malformed_input")
		})
	}
}
