package booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"smartserve/internal/middleware"
	"smartserve/internal/pkg/pagination"
	"smartserve/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.Create)
	rg.GET("/bookings", h.List)
	rg.GET("/bookings/:id", h.Get)
	rg.PUT("/bookings/:id/cancel", h.Cancel)
}

func (h *Handler) Create(c *gin.Context) {
	userID := c.GetInt64(middleware.CtxUserID)

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	booking, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "Service and booking date are required")
		case errors.Is(err, ErrServiceNotFound):
			response.Error(c, http.StatusNotFound, "Service not found")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to create booking")
		}
		return
	}

	response.JSON(c, http.StatusCreated, gin.H{
		"message":   "Booking created successfully!",
		"bookingId": booking.ID,
		"booking":   booking,
	})
}

func (h *Handler) List(c *gin.Context) {
	userID := c.GetInt64(middleware.CtxUserID)
	params := pagination.Parse(c, 20)

	bookings, total, err := h.service.List(c.Request.Context(), userID, c.Query("status"), params.Limit, params.Offset())
	if err != nil {
		if errors.Is(err, ErrValidation) {
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

func (h *Handler) Get(c *gin.Context) {
	userID := c.GetInt64(middleware.CtxUserID)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid booking ID")
		return
	}

	booking, err := h.service.Get(c.Request.Context(), id, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Booking not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Database error")
		return
	}
	response.JSON(c, http.StatusOK, booking)
}

func (h *Handler) Cancel(c *gin.Context) {
	userID := c.GetInt64(middleware.CtxUserID)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid booking ID")
		return
	}

	if err := h.service.Cancel(c.Request.Context(), id, userID); err != nil {
		if errors.Is(err, ErrNotCancellable) {
			response.Error(c, http.StatusBadRequest, "Booking cannot be cancelled")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Cancellation failed")
		return
	}
	response.Message(c, http.StatusOK, "Booking cancelled successfully")
}
