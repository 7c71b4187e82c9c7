package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"smartserve/internal/middleware"
	jwtsvc "smartserve/internal/pkg/jwt"
	"smartserve/internal/pkg/pagination"
	"smartserve/internal/pkg/response"
	"smartserve/internal/repository"
)

// CookieOptions configure how the admin session cookie is written.
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
	rg.POST("/login", h.Login)
	rg.GET("/auth", h.AuthStatus)
	rg.GET("/logout", h.Logout)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/profile", h.Profile)
	rg.GET("/stats", h.Stats)
	rg.GET("/bookings", h.ListBookings)
	rg.PUT("/bookings/:id/status", h.UpdateBookingStatus)
	rg.PUT("/bookings/:id/assign", h.AssignProfessional)
	rg.GET("/professionals", h.ListProfessionals)
	rg.PUT("/professionals/:id/verify", h.VerifyProfessional)
	rg.GET("/services", h.ListServices)
	rg.POST("/services", h.SaveService)
	rg.PUT("/services/:id/toggle", h.ToggleService)
	rg.GET("/users", h.ListUsers)
	rg.PUT("/users/:id/toggle", h.ToggleUser)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	admin, token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "Username and password required")
		case errors.Is(err, ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, "Invalid username or password")
		default:
			response.Error(c, http.StatusInternalServerError, "Server error during login")
		}
		return
	}

	h.setCookie(c, token)
	response.JSON(c, http.StatusOK, gin.H{
		"message": "Login successful!",
		"admin": gin.H{
			"username": admin.Username,
			"fullName": admin.FullName,
			"role":     admin.Role,
		},
	})
}

func (h *Handler) AuthStatus(c *gin.Context) {
	sess := h.auth.Resolve(c, middleware.AdminCookie, jwtsvc.ScopeAdmin)
	if sess == nil {
		response.JSON(c, http.StatusOK, gin.H{"authenticated": false})
		return
	}
	response.JSON(c, http.StatusOK, gin.H{
		"authenticated": true,
		"admin": gin.H{
			"id":       sess.AdminID,
			"username": sess.Username,
			"fullName": sess.FullName,
			"role":     sess.Role,
		},
	})
}

func (h *Handler) Logout(c *gin.Context) {
	if jti := h.auth.TokenID(c, middleware.AdminCookie); jti != "" {
		_ = h.service.Logout(c.Request.Context(), jti)
	}
	h.clearCookie(c)
	response.Message(c, http.StatusOK, "Logged out successfully")
}

func (h *Handler) Profile(c *gin.Context) {
	adminID := c.GetInt64(middleware.CtxAdminID)

	admin, err := h.service.Profile(c.Request.Context(), adminID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Admin not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Database error")
		return
	}
	response.JSON(c, http.StatusOK, admin)
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Database error")
		return
	}
	response.JSON(c, http.StatusOK, stats)
}

// ListBookings defaults to the pending queue; status=all lifts the filter.
func (h *Handler) ListBookings(c *gin.Context) {
	params := pagination.Parse(c, 20)

	status := c.DefaultQuery("status", "pending")
	if status == "all" {
		status = ""
	}

	bookings, total, err := h.service.ListBookings(c.Request.Context(), repository.AdminBookingFilter{
		Status:   status,
		DateFrom: c.Query("date_from"),
		DateTo:   c.Query("date_to"),
		Limit:    params.Limit,
		Offset:   params.Offset(),
	})
	if err != nil {
		if errors.Is(err, ErrInvalidStatus) {
			response.Error(c, http.StatusBadRequest, "Invalid status filter")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Database error")
		return
	}

	response.JSON(c, http.StatusOK, gin.H{
		"bookings":   bookings,
		"pagination": pagination.NewMeta(total, params),
	})
}

func (h *Handler) UpdateBookingStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid booking ID")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.UpdateBookingStatus(c.Request.Context(), id, req); err != nil {
		switch {
		case errors.Is(err, ErrInvalidStatus):
			response.Error(c, http.StatusBadRequest, "Invalid status")
		case errors.Is(err, ErrInvalidTransition):
			response.Error(c, http.StatusBadRequest, "Invalid status transition")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Booking not found")
		default:
			response.Error(c, http.StatusInternalServerError, "Update failed")
		}
		return
	}
	response.Message(c, http.StatusOK, "Booking status updated successfully")
}

func (h *Handler) AssignProfessional(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid booking ID")
		return
	}

	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.AssignProfessional(c.Request.Context(), id, req); err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "Professional ID required")
		case errors.Is(err, ErrAlreadyAssigned):
			response.Error(c, http.StatusBadRequest, "Booking not found or already assigned")
		default:
			response.Error(c, http.StatusInternalServerError, "Assignment failed")
		}
		return
	}
	response.Message(c, http.StatusOK, "Professional assigned successfully")
}

func (h *Handler) ListProfessionals(c *gin.Context) {
	params := pagination.Parse(c, 20)

	var verified *bool
	switch c.Query("verified") {
	case "pending":
		v := false
		verified = &v
	case "verified":
		v := true
		verified = &v
	}

	pros, total, err := h.service.ListProfessionals(c.Request.Context(), verified, params.Limit, params.Offset())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Database error")
		return
	}
	response.JSON(c, http.StatusOK, gin.H{
		"professionals": pros,
		"pagination":    pagination.NewMeta(total, params),
	})
}

func (h *Handler) VerifyProfessional(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid professional ID")
		return
	}

	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.VerifyProfessional(c.Request.Context(), id, req); err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "Action must be approve or reject")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Professional not found")
		default:
			response.Error(c, http.StatusInternalServerError, "Verification failed")
		}
		return
	}
	response.Message(c, http.StatusOK, "Professional verification updated")
}

func (h *Handler) ListServices(c *gin.Context) {
	params := pagination.Parse(c, 50)

	var active *bool
	if raw := c.Query("active"); raw != "" {
		v := raw == "true"
		active = &v
	}

	services, err := h.service.ListServices(c.Request.Context(), active, params.Limit, params.Offset())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Database error")
		return
	}
	response.JSON(c, http.StatusOK, services)
}

func (h *Handler) SaveService(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	svc, err := h.service.SaveService(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "Name and price are required")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Save failed")
		return
	}
	response.JSON(c, http.StatusCreated, gin.H{
		"message": "Service saved successfully",
		"service": svc,
	})
}

func (h *Handler) ToggleService(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid service ID")
		return
	}

	if err := h.service.ToggleService(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Service not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Update failed")
		return
	}
	response.Message(c, http.StatusOK, "Service status toggled")
}

func (h *Handler) ListUsers(c *gin.Context) {
	params := pagination.Parse(c, 20)

	var active *bool
	if raw := c.Query("active"); raw != "" {
		v := raw == "true"
		active = &v
	}

	users, total, err := h.service.ListUsers(c.Request.Context(), active, params.Limit, params.Offset())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Database error")
		return
	}
	response.JSON(c, http.StatusOK, gin.H{
		"users":      users,
		"pagination": pagination.NewMeta(total, params),
	})
}

func (h *Handler) ToggleUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	if err := h.service.ToggleUser(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "User not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Update failed")
		return
	}
	response.Message(c, http.StatusOK, "User status toggled")
}

func (h *Handler) setCookie(c *gin.Context, token string) {
	c.SetSameSite(h.cookies.SameSite)
	c.SetCookie(middleware.AdminCookie, token, h.cookies.MaxAge, "/", "", h.cookies.Secure, true)
}

func (h *Handler) clearCookie(c *gin.Context) {
	c.SetSameSite(h.cookies.SameSite)
	c.SetCookie(middleware.AdminCookie, "", -1, "/", "", h.cookies.Secure, true)
}
