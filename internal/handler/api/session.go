package api

import (
	"net/http"

	reqdto "parking-portal/internal/handler/dto/request"
	resdto "parking-portal/internal/handler/dto/response"
	"parking-portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	auth usecase.Auth
}

func NewSessionHandler(auth usecase.Auth) *SessionHandler {
	return &SessionHandler{auth: auth}
}

// @Summary Current session
// @Description Get the signed-in user, or authenticated=false
// @Tags session
// @Produce json
// @Success 200 {object} resdto.SessionResponse
// @Failure 503 {object} httperr.Response
// @Router /portal/session [get]
func (h *SessionHandler) Get(c *gin.Context) {
	s, err := h.auth.Current(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSession(s))
}

// @Summary Login
// @Description Authenticate against the parking API and store the session
// @Tags session
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /portal/session/login [post]
func (h *SessionHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	creds, err := req.ToDomain()
	if err != nil {
		abortWithUsecaseError(c, err, nil)
		return
	}

	s, err := h.auth.Authenticate(c.Request.Context(), creds)
	if err != nil {
		abortWithUsecaseError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSession(s))
}

// @Summary Register
// @Description Create an account on the parking API and sign in
// @Tags session
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 201 {object} resdto.SessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /portal/session/register [post]
func (h *SessionHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	reg, err := req.ToDomain()
	if err != nil {
		abortWithUsecaseError(c, err, nil)
		return
	}

	s, err := h.auth.Register(c.Request.Context(), reg)
	if err != nil {
		abortWithUsecaseError(c, err, nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromSession(s))
}

// @Summary Logout
// @Description Clear the stored session
// @Tags session
// @Success 204 "No Content"
// @Failure 503 {object} httperr.Response
// @Router /portal/session/logout [post]
func (h *SessionHandler) Logout(c *gin.Context) {
	if err := h.auth.Logout(c.Request.Context()); err != nil {
		abortWithUsecaseError(c, err, nil)
		return
	}
	c.Status(http.StatusNoContent)
}
