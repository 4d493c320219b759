package api

import (
	"net/http"

	"budgetbook/config"
	"budgetbook/database"
	"budgetbook/middleware"
	"budgetbook/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler handles registration, login and sessions
type AuthHandler struct {
	cfg *config.Config
}

// NewAuthHandler creates an auth handler
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

// setAuthCookie sets (or with maxAge < 0 clears) the session token cookie
func setAuthCookie(c *gin.Context, value string, maxAge int) {
	secure, sameSite := getCookieOptions()
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     middleware.AuthCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   secure,
		HttpOnly: true,
		SameSite: sameSite,
	})
}

// RegisterRequest is the registration payload
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50" example:"demo"`
	Password string `json:"password" binding:"required,min=6,max=50" example:"demo1234"`
	Email    string `json:"email" binding:"required,email" example:"demo@example.com"`
}

// LoginRequest is the login payload, username or email both work
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"demo"` // username or email
	Password string `json:"password" binding:"required" example:"demo1234"`
}

// LoginResponse is the login result
type LoginResponse struct {
	Token    string      `json:"token"`
	UserInfo models.User `json:"user_info"`
}

// Register creates a new account
// @Summary Register
// @Description Create a new user account. The password is stored bcrypt-hashed.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "registration payload"
// @Success 201 {object} Response{data=models.User} "created"
// @Failure 400 {object} Response "malformed payload"
// @Failure 409 {object} Response "username or email taken"
// @Failure 500 {object} Response "server error"
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "invalid payload"))
		return
	}

	var existing models.User
	if err := database.DB.Where("username = ? OR email = ?", req.Username, req.Email).First(&existing).Error; err == nil {
		Conflict(c, "username or email already registered")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		InternalError(c, "hashing password failed")
		return
	}

	user := models.User{
		Username: req.Username,
		Password: string(hash),
		Email:    req.Email,
	}

	if err := database.DB.Create(&user).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "creating user failed"))
		return
	}

	Created(c, user)
}

// Login authenticates and returns the token in the JSON body
// @Summary Login
// @Description Authenticate with username (or email) and password, returns a JWT.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "credentials"
// @Success 200 {object} Response{data=LoginResponse} "ok"
// @Failure 400 {object} Response "malformed payload"
// @Failure 401 {object} Response "bad credentials"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	user, ok := h.checkCredentials(c)
	if !ok {
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Username, h.cfg.JWT.ExpireTime)
	if err != nil {
		InternalError(c, "generating token failed")
		return
	}

	Success(c, LoginResponse{
		Token:    token,
		UserInfo: *user,
	})
}

// SessionLogin authenticates and sets the auth-token cookie for browser clients
// @Summary Cookie session login
// @Description Authenticate and receive the token in an HttpOnly auth-token cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "credentials"
// @Success 200 {object} Response{data=models.User} "ok, cookie set"
// @Failure 400 {object} Response "malformed payload"
// @Failure 401 {object} Response "bad credentials"
// @Router /api/auth/session [post]
func (h *AuthHandler) SessionLogin(c *gin.Context) {
	user, ok := h.checkCredentials(c)
	if !ok {
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Username, h.cfg.JWT.ExpireTime)
	if err != nil {
		InternalError(c, "generating token failed")
		return
	}

	setAuthCookie(c, token, int(h.cfg.JWT.ExpireTime.Seconds()))
	SuccessWithMessage(c, "logged in", user)
}

// Logout clears the session cookie
// @Summary Logout
// @Description Clear the auth-token cookie. Bearer tokens simply expire.
// @Tags auth
// @Produce json
// @Success 200 {object} Response "ok"
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	setAuthCookie(c, "", -1)
	SuccessWithMessage(c, "logged out", nil)
}

// checkCredentials binds the login payload and verifies it against the users
// table. Responds and returns false on any failure; bad username and bad
// password are indistinguishable.
func (h *AuthHandler) checkCredentials(c *gin.Context) (*models.User, bool) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "invalid payload"))
		return nil, false
	}

	var user models.User
	if err := database.DB.Where("username = ? OR email = ?", req.Username, req.Username).First(&user).Error; err != nil {
		Unauthorized(c, "wrong username or password")
		return nil, false
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		Unauthorized(c, "wrong username or password")
		return nil, false
	}

	return &user, true
}

// GetProfile returns the authenticated user
// @Summary Current user
// @Description Return the authenticated user's profile.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=models.User} "ok"
// @Failure 401 {object} Response "unauthenticated"
// @Router /api/auth/profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		NotFound(c, "user not found")
		return
	}

	Success(c, user)
}

// ChangePasswordRequest is the password change payload
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6,max=50"`
}

// ChangePassword updates the authenticated user's password
// @Summary Change password
// @Description Change the current user's password.
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ChangePasswordRequest true "passwords"
// @Success 200 {object} Response "ok"
// @Failure 400 {object} Response "malformed payload"
// @Failure 401 {object} Response "old password wrong"
// @Router /api/auth/password [put]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "invalid payload"))
		return
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		NotFound(c, "user not found")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)); err != nil {
		Unauthorized(c, "old password is wrong")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		InternalError(c, "hashing password failed")
		return
	}

	if err := database.DB.Model(&user).Update("password", string(hash)).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "updating password failed"))
		return
	}

	SuccessWithMessage(c, "password changed", nil)
}
