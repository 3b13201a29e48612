package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/digital_banking/internal/apperrors"
	portssvc "github.com/SscSPs/digital_banking/internal/core/ports/services"
	"github.com/SscSPs/digital_banking/internal/dto"
	"github.com/SscSPs/digital_banking/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	authService portssvc.AuthSvcFacade
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as portssvc.AuthSvcFacade) *AuthHandler {
	return &AuthHandler{authService: as}
}

// registerAuthRoutes sets up the public authentication routes and the
// authenticated profile route. Only login is rate limited.
func registerAuthRoutes(r *gin.Engine, protected *gin.RouterGroup, authService portssvc.AuthSvcFacade, loginLimiter *limiter.Limiter) {
	h := NewAuthHandler(authService)

	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimit(loginLimiter), h.Login)
		auth.POST("/register", h.Register)
	}
	protected.GET("/auth/profile", h.Profile)
}

// Login godoc
// @Summary User login
// @Description Authenticates a user and returns a JWT access token valid for a short time.
// @Tags auth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse "Bad credentials"
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		respondWithBindingError(c, err)
		return
	}

	res, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Login rejected", slog.String("username", req.Username))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Bad credentials: invalid username or password"})
			return
		}
		respondWithError(c, err, "Failed to log in")
		return
	}

	c.JSON(http.StatusOK, res)
}

// Register godoc
// @Summary Register new user
// @Description Creates a user. Role defaults to USER.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "User Registration Info"
// @Success 200 {object} dto.RegisterResponse
// @Failure 400 {object} ErrorResponse "Invalid input or user already exists"
// @Failure 500 {object} ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindingError(c, err)
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err, "Failed to register user")
		return
	}

	c.JSON(http.StatusOK, dto.RegisterResponse{
		Message:  "User created successfully",
		Username: user.Username,
		Roles:    user.Authorities(),
	})
}

// Profile godoc
// @Summary Current user
// @Description Returns the identity behind the bearer token.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.ProfileResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/profile [get]
func (h *AuthHandler) Profile(c *gin.Context) {
	claims, ok := middleware.GetClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	user, err := h.authService.Profile(c.Request.Context(), claims.UserID)
	if err != nil {
		respondWithError(c, err, "Failed to load profile")
		return
	}

	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	c.JSON(http.StatusOK, dto.ProfileResponse{
		UserID:      user.ID,
		Username:    user.Username,
		Email:       user.Email,
		Authorities: claims.Authorities(),
		ExpiresAt:   expiresAt,
	})
}
