package api

import (
	"errors"
	"net/http"

	reqdto "hisitter/internal/handler/dto/request"
	resdto "hisitter/internal/handler/dto/response"
	"hisitter/internal/handler/httperr"
	"hisitter/internal/handler/middleware"
	"hisitter/internal/pkg/config"
	"hisitter/internal/pkg/cookie"
	"hisitter/internal/pkg/errs"
	"hisitter/internal/usecase/commands"
	"hisitter/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds      commands.AuthCommands
	userQ     queries.UserQueries
	cookieCfg config.CookieConfig
	jwtCfg    config.JWTConfig
}

func NewAuthHandler(cmds commands.AuthCommands, userQ queries.UserQueries, cookieCfg config.CookieConfig, jwtCfg config.JWTConfig) *AuthHandler {
	return &AuthHandler{
		cmds:      cmds,
		userQ:     userQ,
		cookieCfg: cookieCfg,
		jwtCfg:    jwtCfg,
	}
}

// @Summary Sign up
// @Description Register a client or babysitter account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.SignupRequest true "Signup request"
// @Success 201 {object} resdto.SignupResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req reqdto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.Signup(c.Request.Context(), req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEmailTaken):
			httperr.AbortWithError(c, http.StatusConflict, err, "Email or username already taken", nil)
		case errors.Is(err, commands.ErrMissingProfile):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Babysitter signup requires a profile", nil)
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		default:
			httperr.AbortWithMappedError(c, err)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.SignupResponse{UserID: result.UserID.String()})
}

// @Summary User login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidCredentials), errors.Is(err, commands.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
		default:
			httperr.AbortWithMappedError(c, err)
		}
		return
	}

	view, err := h.userQ.GetCurrentUser(c.Request.Context(), result.UserID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	cookie.SetTokenCookies(c, h.cookieCfg, result.TokenPair.AccessToken, result.TokenPair.RefreshToken,
		h.jwtCfg.AccessTokenDuration, h.jwtCfg.RefreshTokenDuration)

	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.TokenPair.AccessToken,
		User:        view,
	})
}

// @Summary Refresh tokens
// @Description Exchange a refresh token for a new token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RefreshRequest true "Refresh request"
// @Success 200 {object} resdto.TokenPairResponse
// @Failure 401 {object} map[string]string
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	token := cookie.GetRefreshToken(c)
	if token == "" {
		var req reqdto.RefreshRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Refresh token required", nil)
			return
		}
		token = req.RefreshToken
	}

	pair, err := h.cmds.RefreshToken(c.Request.Context(), token)
	if err != nil {
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired refresh token", nil)
		return
	}

	cookie.SetTokenCookies(c, h.cookieCfg, pair.AccessToken, pair.RefreshToken,
		h.jwtCfg.AccessTokenDuration, h.jwtCfg.RefreshTokenDuration)

	c.JSON(http.StatusOK, resdto.TokenPairResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// @Summary Verify email
// @Description Verify an account with the emailed token
// @Tags auth
// @Accept json
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auth/verify [post]
func (h *AuthHandler) Verify(c *gin.Context) {
	var req reqdto.VerifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Verification token required", nil)
		return
	}

	if err := h.cmds.VerifyEmail(c.Request.Context(), req.Token); err != nil {
		switch {
		case errors.Is(err, commands.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
		// Token failures arrive marked, not as the bare sentinel.
		case errs.Is(err, commands.ErrTokenValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid or expired verification token", nil)
		default:
			httperr.AbortWithMappedError(c, err)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary User logout
// @Description Logout current user session
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearTokenCookies(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Description Get current authenticated user information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.AuthorizedUserView
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "User not authenticated", nil)
		return
	}

	view, err := h.userQ.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
		default:
			httperr.AbortWithMappedError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, view)
}
