package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"smartserve/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/services", h.ListServices)
	rg.GET("/services/:id", h.GetService)
	rg.GET("/professionals", h.ListProfessionals)
	rg.GET("/available-professionals", h.AvailableProfessionals)
}

func (h *Handler) ListServices(c *gin.Context) {
	services, err := h.service.ListServices(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Database error")
		return
	}
	response.JSON(c, http.StatusOK, services)
}

func (h *Handler) GetService(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid service ID")
		return
	}

	detail, err := h.service.GetService(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Service not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Database error")
		return
	}
	response.JSON(c, http.StatusOK, detail)
}

func (h *Handler) ListProfessionals(c *gin.Context) {
	var serviceID *int64
	if raw := c.Query("service_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "Invalid service_id")
			return
		}
		serviceID = &id
	}

	var ratingMin *float64
	if raw := c.Query("rating_min"); raw != "" {
		min, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "Invalid rating_min")
			return
		}
		ratingMin = &min
	}

	pros, err := h.service.ListProfessionals(c.Request.Context(), serviceID, ratingMin)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Database error")
		return
	}
	response.JSON(c, http.StatusOK, pros)
}

// AvailableProfessionals accepts the service id as either serviceId or
// service_id, and optionally a date and time narrowing the set to
// professionals free at that slot.
func (h *Handler) AvailableProfessionals(c *gin.Context) {
	raw := c.Query("serviceId")
	if raw == "" {
		raw = c.Query("service_id")
	}
	if raw == "" {
		response.Error(c, http.StatusBadRequest, "Service ID required")
		return
	}
	serviceID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid service ID")
		return
	}

	pros, err := h.service.AvailableProfessionals(c.Request.Context(), serviceID, c.Query("date"), c.Query("time"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Database error")
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"professionals": pros, "count": len(pros)})
}
