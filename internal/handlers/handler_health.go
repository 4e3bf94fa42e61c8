package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/currency_converter_app/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// HealthResponse reports liveness and whether the baseline failed to load.
type HealthResponse struct {
	Status   string `json:"status"`
	Degraded bool   `json:"degraded"`
}

type healthHandler struct {
	baseline portssvc.BaselineStatusSvc
}

// getHealth godoc
// @Summary Health check
// @Description Reports liveness. degraded is true when the baseline rates could not be loaded.
// @Tags root
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *healthHandler) getHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Degraded: h.baseline.IsDegraded()})
}
