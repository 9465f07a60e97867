//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"parking-portal/internal/domain/session"
	"parking-portal/internal/domain/user"
	"parking-portal/internal/handler/api"
	resdto "parking-portal/internal/handler/dto/response"
	"parking-portal/internal/infra"
	"parking-portal/internal/pkg/errs"
	"parking-portal/internal/usecase"
	"parking-portal/tests/common/builder"
	"parking-portal/tests/common/httptest"
	"parking-portal/tests/common/testutil"
	usecasemock "parking-portal/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SessionHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
	ctrl   *gomock.Controller
	auth   *usecasemock.MockAuth
}

func (s *SessionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.ctrl = gomock.NewController(s.T())
	s.auth = usecasemock.NewMockAuth(s.ctrl)

	h := api.NewSessionHandler(s.auth)
	s.router.GET("/portal/session", h.Get)
	s.router.POST("/portal/session/login", h.Login)
	s.router.POST("/portal/session/register", h.Register)
	s.router.POST("/portal/session/logout", h.Logout)
}

func (s *SessionHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSessionHandlerSuite(t *testing.T) {
	suite.Run(t, new(SessionHandlerTestSuite))
}

type testCaseSession struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *SessionHandlerTestSuite) TestLogin() {
	url := "/portal/session/login"
	ab := builder.NewAuthBuilder()

	s.Run("success: returns the session without the token", func() {
		s.auth.EXPECT().Authenticate(gomock.Any(), ab.BuildCredentials()).
			Return(session.New("secret-token", "Amina", "amina@example.com", user.RoleAdmin), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, ab.BuildDTO())

		var body resdto.SessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Authenticated)
		s.True(body.IsAdmin)
		s.Equal("ADMIN", body.Role)
		s.NotContains(rec.Body.String(), "secret-token")
	})

	s.Run("error: request validation", func() {
		cases := []testCaseSession{
			{name: "missing email", mutate: testutil.Field("email", nil), expectCode: http.StatusBadRequest},
			{name: "empty password", mutate: testutil.Field("password", ""), expectCode: http.StatusBadRequest},
			{name: "malformed email", mutate: testutil.Field("email", "amina@"), expectCode: http.StatusUnprocessableEntity},
			{name: "password below 6 characters", mutate: testutil.Field("password", "12345"), expectCode: http.StatusUnprocessableEntity},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), ab.BuildDTO(), tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
				s.Equal(tc.expectCode, rec.Code, rec.Body.String())
			})
		}
	})

	s.Run("error: malformed JSON", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, `{"email":`)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 400 on rejected credentials", func() {
		err := errs.Mark(infra.NewAPIError(http.StatusUnauthorized, "Email ou mot de passe incorrect"), usecase.ErrInvalidCredentials)
		s.auth.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(session.Session{}, err)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, ab.BuildDTO())

		body := httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Email ou mot de passe incorrect")
		httptest.AssertErrorNotification(s.T(), body, "Email ou mot de passe incorrect")
	})
}

func (s *SessionHandlerTestSuite) TestRegister() {
	url := "/portal/session/register"
	ab := builder.NewAuthBuilder()

	s.Run("success: 201 with the new session", func() {
		s.auth.EXPECT().Register(gomock.Any(), ab.BuildRegistration()).
			Return(session.New("t", "Amina", "amina@example.com", user.RoleUser), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, ab.BuildRegisterDTO())

		var body resdto.SessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("Amina", body.UserName)
		s.False(body.IsAdmin)
	})

	s.Run("error: confirmation mismatch", func() {
		body := testutil.DtoMap(s.T(), ab.BuildRegisterDTO(), testutil.Field("confirmPassword", "different1"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "password confirmation does not match")
	})

	s.Run("error: duplicate account keeps the server status", func() {
		s.auth.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(session.Session{}, infra.NewAPIError(http.StatusConflict, "Email déjà utilisé"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, ab.BuildRegisterDTO())

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Email déjà utilisé")
	})
}

func (s *SessionHandlerTestSuite) TestGet() {
	s.Run("signed in: includes expiry", func() {
		exp := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
		s.auth.EXPECT().Current(gomock.Any()).
			Return(session.New("t", "Amina", "amina@example.com", user.RoleUser).WithExpiry(&exp), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/portal/session", nil)

		var body resdto.SessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Authenticated)
		s.Require().NotNil(body.ExpiresAt)
		s.Equal("2025-06-01T10:00:00Z", *body.ExpiresAt)
	})

	s.Run("signed out", func() {
		s.auth.EXPECT().Current(gomock.Any()).Return(session.Session{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/portal/session", nil)

		var body resdto.SessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(resdto.SessionResponse{}, body)
	})

	s.Run("store failure: 503", func() {
		s.auth.EXPECT().Current(gomock.Any()).
			Return(session.Session{}, errs.Mark(errors.New("disk I/O error"), usecase.ErrSessionUnavailable))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/portal/session", nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "Session store unavailable")
	})
}

func (s *SessionHandlerTestSuite) TestLogout() {
	s.auth.EXPECT().Logout(gomock.Any()).Return(nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/portal/session/logout", nil)

	s.Equal(http.StatusNoContent, rec.Code)
	s.Empty(rec.Body.String())
}
