package api

import (
	"errors"
	"net/http"

	reqdto "hotel-console/internal/handler/dto/request"
	resdto "hotel-console/internal/handler/dto/response"
	"hotel-console/internal/handler/httperr"
	"hotel-console/internal/handler/middleware"
	"hotel-console/internal/pkg/config"
	"hotel-console/internal/pkg/cookie"
	"hotel-console/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	console     *middleware.ConsoleMiddleware
	cookieCfg   config.CookieConfig
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, console *middleware.ConsoleMiddleware, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		console:     console,
		cookieCfg:   cfg.Cookie,
	}
}

// @Summary Operator login
// @Description Exchange credentials for the API token, kept in an HttpOnly cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /console/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	req = req.Normalized()

	token, op, err := h.authUseCase.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCredentials):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid username or password", nil)
		case errors.Is(err, usecase.ErrAuthenticationFailed):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Unreadable token", nil)
		default:
			fail(c, err, nil)
		}
		return
	}

	cookie.SetAccessToken(c, h.cookieCfg, token)
	respond(c, http.StatusOK, resdto.LoginResponse{
		AccessToken: token,
		Operator:    resdto.FromOperator(op),
	}, nil)
}

// @Summary Operator logout
// @Description Clear the token cookie and forget the console session
// @Tags auth
// @Success 204 "No Content"
// @Router /console/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAccessToken(c, h.cookieCfg)
	h.console.EndSession(c)
	c.Status(http.StatusNoContent)
}

// @Summary Current operator
// @Description Username and roles read from the API token
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.Envelope
// @Failure 401 {object} httperr.Response
// @Router /console/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	op, ok := middleware.GetOperator(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, usecase.ErrAuthenticationFailed, "Operator not authenticated", nil)
		return
	}
	respond(c, http.StatusOK, resdto.FromOperator(op), nil)
}
