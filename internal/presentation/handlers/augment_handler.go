package handlers

import (
	"context"
	"net/http"

	"gotofork-core/internal/application/dto"
	"gotofork-core/internal/presentation/render"

	"github.com/gin-gonic/gin"
)

// Augmenter runs the shortcut pipeline for a page URL
type Augmenter interface {
	Run(ctx context.Context, pageURL string) *dto.AugmentResult
}

// AugmentHandler exposes the pipeline over HTTP
type AugmentHandler struct {
	pipeline Augmenter
	renderer *render.Renderer
}

// NewAugmentHandler creates a new augment handler
func NewAugmentHandler(pipeline Augmenter, renderer *render.Renderer) *AugmentHandler {
	return &AugmentHandler{
		pipeline: pipeline,
		renderer: renderer,
	}
}

// Augment handles POST /augment
// @Summary Compute page shortcuts
// @Description Resolves the upstream and the caller's forks of the repository a page shows
// @Tags Augment
// @Accept json
// @Produce json
// @Param request body dto.AugmentRequest true "Page URL"
// @Success 200 {object} dto.AugmentResult
// @Failure 400 {object} ErrorResponse
// @Router /augment [post]
func (h *AugmentHandler) Augment(c *gin.Context) {
	var req dto.AugmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, h.pipeline.Run(c.Request.Context(), req.URL))
}

// Render handles POST /render
// @Summary Render page shortcuts
// @Description Runs the pipeline for a page and returns its document with the buttons inserted
// @Tags Augment
// @Accept json
// @Produce html
// @Param request body dto.RenderRequest true "Page URL and document"
// @Success 200 {string} string "Rendered document"
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /render [post]
func (h *AugmentHandler) Render(c *gin.Context) {
	var req dto.RenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	result := h.pipeline.Run(c.Request.Context(), req.URL)
	page, err := h.renderer.RenderHTML(req.HTML, result)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "render_failed",
			Message: "Failed to render page",
			Details: err.Error(),
		})
		return
	}

	c.Header("X-Run-ID", result.RunID)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}
