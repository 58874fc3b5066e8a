//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"room-booking/internal/handler/api"
	"room-booking/internal/handler/middleware"
	resdto "room-booking/internal/handler/dto/response"
	"room-booking/internal/pkg/config"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/commands"
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

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries, config.NewTestConfig())

	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", func(c *gin.Context) {
		// Mock middleware behavior for /auth/me
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			middleware.SetUserID(c, "alice")
		}
		s.handler.Me(c)
	})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

type testCaseAuth struct {
	name         string
	mutate       func(m map[string]any)
	expectCode   int
	expectInBody string
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"

	reqBody := builder.NewAuthBuilder().BuildDTO()
	returnUser := builder.NewUserBuilder().BuildReadModel()
	expectedToken := "test-jwt-token"

	s.Run("success: sets cookie and returns token", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody).
			Return(&commands.LoginResult{UserID: "alice", AccessToken: expectedToken, ExpiresIn: time.Hour}, nil).Times(1)
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), "alice").Return(returnUser, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(expectedToken, body.AccessToken)
		s.Equal(int64(3600), body.ExpiresIn)
		s.Require().NotNil(body.User)
		s.Equal("alice", body.User.Username)

		cookie := httptest.ExtractCookie(rec, "access_token")
		s.Require().NotNil(cookie)
		s.Equal(expectedToken, cookie.Value)
		s.True(cookie.HttpOnly)
	})

	s.Run("error: 400 on binding errors", func() {
		testCases := []testCaseAuth{
			{name: "missing username", mutate: testutil.Field("username", nil), expectCode: http.StatusBadRequest, expectInBody: "Invalid request format"},
			{name: "missing password", mutate: testutil.Field("password", nil), expectCode: http.StatusBadRequest, expectInBody: "Invalid request format"},
			{name: "empty username", mutate: testutil.Field("username", ""), expectCode: http.StatusBadRequest, expectInBody: "Invalid request format"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectInBody)
			})
		}
	})

	s.Run("error: 401 on bad credentials", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(nil, errs.Wrap(commands.ErrInvalidCredentials, "password mismatch")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid username or password")
		s.Nil(httptest.ExtractCookie(rec, "access_token"))
	})

	s.Run("error: 500 on token failure", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(nil, errs.Wrap(commands.ErrTokenGeneration, "sign")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "bearer-token")
	s.Equal(http.StatusNoContent, rec.Code)

	cookie := httptest.ExtractCookie(rec, "access_token")
	s.Require().NotNil(cookie)
	s.Empty(cookie.Value)
	s.Negative(cookie.MaxAge)
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), "alice").
			Return(builder.NewUserBuilder().BuildReadModel(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body queries.AuthorizedUserView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(queries.AuthorizedUserView{ID: "alice", Username: "alice"}, body)
	})

	s.Run("error: 401 without user in context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "User not authenticated")
	})

	s.Run("error: 404 when user vanished", func() {
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), "alice").
			Return(nil, queries.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found")
	})

	s.Run("error: 500 on store failure", func() {
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), "alice").
			Return(nil, errors.New("boom")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
