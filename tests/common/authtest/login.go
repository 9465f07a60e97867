//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"parking-portal/internal/handler/dto/request"
	resdto "parking-portal/internal/handler/dto/response"
	"parking-portal/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const (
	LoginURL  = "/portal/session/login"
	LogoutURL = "/portal/session/logout"
)

func LoginUser(t *testing.T, router *gin.Engine, email, password string) resdto.SessionResponse {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, LoginURL,
		request.LoginRequest{Email: email, Password: password})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res resdto.SessionResponse
	httptest.DecodeResponseBody(t, w, &res)
	require.True(t, res.Authenticated)
	return res
}

func LogoutUser(t *testing.T, router *gin.Engine) {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, LogoutURL, nil)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
