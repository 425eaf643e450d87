package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ondrasimku/upload-service-go/internal/domain"
	"github.com/ondrasimku/upload-service-go/internal/files"
)

type HealthHandler struct {
	files *files.Service
}

func NewHealthHandler(service *files.Service) *HealthHandler {
	return &HealthHandler{files: service}
}

type HealthResponse struct {
	Status           string `json:"status"`
	VolumePath       string `json:"volume_path"`
	VolumeAccessible *bool  `json:"volume_accessible,omitempty"`
	Message          string `json:"message,omitempty"`
	Error            string `json:"error,omitempty"`
}

// Health checks that the storage directory exists and is accessible.
// @Summary Health check
// @Description healthy, degraded (directory not accessible) or unhealthy (check did not complete)
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	report := h.files.Health(c.Request.Context())

	resp := HealthResponse{
		Status:     string(report.Status),
		VolumePath: report.VolumePath,
	}

	if report.Status == domain.HealthUnhealthy {
		resp.Error = report.Err.Error()
	} else {
		accessible := report.Accessible
		resp.VolumeAccessible = &accessible
		resp.Message = report.Message
	}

	c.JSON(http.StatusOK, resp)
}
