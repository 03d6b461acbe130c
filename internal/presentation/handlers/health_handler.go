package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pinger is anything whose reachability belongs in the health report
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles health check requests
type HealthHandler struct {
	credentialSource string
	db               Pinger
}

// NewHealthHandler creates a new health handler. db may be nil when no
// database backs the credential store.
func NewHealthHandler(credentialSource string, db Pinger) *HealthHandler {
	return &HealthHandler{credentialSource: credentialSource, db: db}
}

// Health handles GET /health
// @Summary Health check
// @Description Returns the health status of the service
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	if h.db != nil {
		if err := h.db.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, HealthResponse{
				Status:           "unhealthy",
				Message:          "Credential database is unreachable",
				CredentialSource: h.credentialSource,
			})
			return
		}
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:           "healthy",
		Message:          "Service is running",
		CredentialSource: h.credentialSource,
	})
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status           string `json:"status"`
	Message          string `json:"message"`
	CredentialSource string `json:"credential_source"`
}
