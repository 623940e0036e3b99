package api

import (
	"errors"
	"net/http"

	reqdto "coasters/internal/handler/dto/request"
	resdto "coasters/internal/handler/dto/response"
	"coasters/internal/handler/middleware"
	"coasters/internal/pkg/config"
	"coasters/internal/pkg/cookie"
	"coasters/internal/pkg/jwt"
	"coasters/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
	users        commands.UserStore
	jwtService   *jwt.Service
	cookieCfg    config.CookieConfig
}

func NewAuthHandler(authCommands commands.AuthCommands, users commands.UserStore, jwtService *jwt.Service, cookieCfg config.CookieConfig) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		users:        users,
		jwtService:   jwtService,
		cookieCfg:    cookieCfg,
	}
}

// @Summary Request OTP
// @Description Issue a one-time code for the given phone number (simulated delivery)
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RequestOTPRequest true "OTP request"
// @Success 200 {object} resdto.OTPRequestedResponse
// @Failure 400 {object} map[string]string
// @Router /auth/otp/request [post]
func (h *AuthHandler) RequestOTP(c *gin.Context) {
	var req reqdto.RequestOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.authCommands.RequestOTP(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidPhone):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid phone number",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.OTPRequestedResponse{
		Phone:            result.Phone,
		ExpiresInSeconds: int(result.ExpiresIn.Seconds()),
	})
}

// @Summary Verify OTP
// @Description Verify the one-time code and sign in, creating an account on first use
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.VerifyOTPRequest true "OTP verification"
// @Success 200 {object} resdto.VerifyOTPResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/otp/verify [post]
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req reqdto.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.authCommands.VerifyOTP(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidOTP), errors.Is(err, commands.ErrOTPExpired):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired code",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	cookie.SetTokenCookies(c, h.cookieCfg,
		result.TokenPair.AccessToken, result.TokenPair.RefreshToken,
		h.jwtService.AccessTokenDuration(), h.jwtService.RefreshTokenDuration())

	c.JSON(http.StatusOK, resdto.VerifyOTPResponse{
		UserID:    result.UserID,
		Name:      result.Name,
		Role:      result.Role.String(),
		IsNewUser: result.IsNewUser,
	})
}

// @Summary Refresh tokens
// @Description Rotate the access/refresh token pair using the refresh cookie
// @Tags auth
// @Produce json
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken := cookie.GetRefreshToken(c)
	if refreshToken == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Refresh token required",
		})
		return
	}

	tokenPair, err := h.authCommands.RefreshToken(c.Request.Context(), refreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid or expired token",
		})
		return
	}

	cookie.SetTokenCookies(c, h.cookieCfg,
		tokenPair.AccessToken, tokenPair.RefreshToken,
		h.jwtService.AccessTokenDuration(), h.jwtService.RefreshTokenDuration())

	c.Status(http.StatusNoContent)
}

// @Summary Logout
// @Description Clear the auth cookies
// @Tags auth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearTokenCookies(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Description Get the signed-in user's profile
// @Tags auth
// @Produce json
// @Success 200 {object} resdto.MeResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	usr, ok := h.users.FindByID(userID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "User not found",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.MeResponse{
		UserID: usr.ID(),
		Name:   usr.Name(),
		Phone:  usr.Phone().Value(),
		Role:   usr.Role().String(),
	})
}
