package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"smartserve/internal/middleware"
	jwtsvc "smartserve/internal/pkg/jwt"
	"smartserve/internal/pkg/response"
)

// CookieOptions configure how session cookies are written.
type CookieOptions struct {
	MaxAge   int
	Secure   bool
	SameSite http.SameSite
}

type Handler struct {
	service *Service
	auth    *middleware.Authenticator
	cookies CookieOptions
}

func NewHandler(service *Service, auth *middleware.Authenticator, cookies CookieOptions) *Handler {
	return &Handler{service: service, auth: auth, cookies: cookies}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/register", h.Register)
	rg.POST("/login", h.Login)
	rg.GET("/auth", h.AuthStatus)
	rg.GET("/logout", h.Logout)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/user", h.GetProfile)
	rg.PUT("/user/profile", h.UpdateProfile)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		response.Error(c, http.StatusBadRequest, "Email and password required")
		return
	}

	user, token, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailExists):
			response.Error(c, http.StatusConflict, "Email already registered")
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "Invalid email format or password shorter than 6 characters")
		default:
			response.Error(c, http.StatusInternalServerError, "Server error during registration")
		}
		return
	}

	h.setCookie(c, middleware.UserCookie, token)
	response.JSON(c, http.StatusCreated, gin.H{
		"message": "Registration successful!",
		"user":    gin.H{"email": user.Email, "name": user.Name},
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "Email and password required")
		case errors.Is(err, ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, "Invalid email or password")
		default:
			response.Error(c, http.StatusInternalServerError, "Server error during login")
		}
		return
	}

	h.setCookie(c, middleware.UserCookie, token)
	response.JSON(c, http.StatusOK, gin.H{
		"message": "Login successful!",
		"user":    gin.H{"email": user.Email, "name": user.Name},
	})
}

// AuthStatus reports whether the request carries a live session. Always
// 200; the body says which.
func (h *Handler) AuthStatus(c *gin.Context) {
	sess := h.auth.Resolve(c, middleware.UserCookie, jwtsvc.ScopeUser)
	if sess == nil {
		response.JSON(c, http.StatusOK, gin.H{"authenticated": false})
		return
	}
	response.JSON(c, http.StatusOK, gin.H{
		"authenticated": true,
		"user": gin.H{
			"id":    sess.UserID,
			"email": sess.Email,
			"name":  sess.Name,
		},
	})
}

func (h *Handler) Logout(c *gin.Context) {
	if jti := h.auth.TokenID(c, middleware.UserCookie); jti != "" {
		_ = h.service.Logout(c.Request.Context(), jti)
	}
	h.clearCookie(c, middleware.UserCookie)
	response.Message(c, http.StatusOK, "Logged out successfully")
}

func (h *Handler) GetProfile(c *gin.Context) {
	userID := c.GetInt64(middleware.CtxUserID)

	profile, err := h.service.Profile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "User not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Database error")
		return
	}
	response.JSON(c, http.StatusOK, profile)
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	userID := c.GetInt64(middleware.CtxUserID)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.UpdateProfile(c.Request.Context(), userID, req); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "User not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Update failed")
		return
	}
	response.JSON(c, http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"user":    gin.H{"name": req.Name, "phone": req.Phone, "address": req.Address},
	})
}

func (h *Handler) setCookie(c *gin.Context, name, token string) {
	c.SetSameSite(h.cookies.SameSite)
	c.SetCookie(name, token, h.cookies.MaxAge, "/", "", h.cookies.Secure, true)
}

func (h *Handler) clearCookie(c *gin.Context, name string) {
	c.SetSameSite(h.cookies.SameSite)
	c.SetCookie(name, "", -1, "/", "", h.cookies.Secure, true)
}
