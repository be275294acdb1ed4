package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"portfolio-backend/internal/middleware"
	"portfolio-backend/internal/models"
)

type Authenticator interface {
	SignIn(ctx context.Context, email, password string) (*models.SessionResponse, error)
	SendPasswordReset(ctx context.Context, email string) error
	SignOut(ctx context.Context, accessToken string) error
	CurrentUser(ctx context.Context, accessToken string) (*models.UserInfo, error)
}

type AuthHandler struct {
	auth         Authenticator
	cookieName   string
	secureCookie bool
	now          func() time.Time
}

func NewAuthHandler(auth Authenticator, cookieName string, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		auth:         auth,
		cookieName:   cookieName,
		secureCookie: secureCookie,
		now:          time.Now,
	}
}

// Login godoc
// @Summary     Sign in to the admin dashboard
// @Description Verifies the credentials with Supabase auth and sets the session cookie.
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body models.LoginRequest true "Credentials"
// @Success     200 {object} models.SessionResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Router      /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	session, err := h.auth.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		log.Warn().Err(err).Str("email", req.Email).Msg("sign in failed")
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Invalid email or password"})
		return
	}

	maxAge := int(session.ExpiresAt.Sub(h.now()).Seconds())
	if maxAge <= 0 {
		maxAge = int(time.Hour.Seconds())
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, session.AccessToken, maxAge, "/", "", h.secureCookie, true)

	c.JSON(http.StatusOK, session)
}

// Logout godoc
// @Summary     Sign out
// @Description Revokes the session with Supabase auth and clears the session cookie.
// @Tags        auth
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.SuccessResponse
// @Router      /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if token := c.GetString(middleware.AccessTokenKey); token != "" {
		if err := h.auth.SignOut(c.Request.Context(), token); err != nil {
			// The cookie is cleared regardless; the token expires on its own.
			log.Warn().Err(err).Msg("sign out failed")
		}
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, "", -1, "/", "", h.secureCookie, true)
	c.JSON(http.StatusOK, models.SuccessResponse{Success: true})
}

// ResetPassword godoc
// @Summary     Send a password recovery email
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body models.ResetPasswordRequest true "Account email"
// @Success     200 {object} models.MessageResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /api/auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	if err := h.auth.SendPasswordReset(c.Request.Context(), req.Email); err != nil {
		log.Error().Err(err).Msg("password reset failed")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to send reset email", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Check your email for the password reset link"})
}

// Me godoc
// @Summary     Current user
// @Tags        auth
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.UserInfo
// @Failure     401 {object} models.ErrorResponse
// @Router      /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.auth.CurrentUser(c.Request.Context(), c.GetString(middleware.AccessTokenKey))
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}
