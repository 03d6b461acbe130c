package handlers

import (
	"net/http"

	"gotofork-core/internal/application/dto"
	"gotofork-core/internal/domain/fork"
	"gotofork-core/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SettingsHandler manages the stored GitHub token
type SettingsHandler struct {
	store fork.CredentialStore
	log   *zap.Logger
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(store fork.CredentialStore) *SettingsHandler {
	return &SettingsHandler{
		store: store,
		log:   logger.Named("settings"),
	}
}

func (h *SettingsHandler) writable(c *gin.Context) (fork.WritableCredentialStore, bool) {
	w, ok := h.store.(fork.WritableCredentialStore)
	if !ok {
		c.JSON(http.StatusNotImplemented, ErrorResponse{
			Error:   "read_only_store",
			Message: "The active credential store cannot be changed at runtime",
		})
		return nil, false
	}
	return w, true
}

// PutToken handles PUT /settings/token
// @Summary Store the GitHub token
// @Description Saves the access token used for GitHub API calls
// @Tags Settings
// @Accept json
// @Produce json
// @Security SettingsAuth
// @Param request body dto.TokenRequest true "GitHub token"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Failure 501 {object} ErrorResponse
// @Router /settings/token [put]
func (h *SettingsHandler) PutToken(c *gin.Context) {
	store, ok := h.writable(c)
	if !ok {
		return
	}

	var req dto.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	if err := store.Set(c.Request.Context(), fork.CredentialKey, req.Token); err != nil {
		h.log.Error("failed to store token", logger.Err(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to store token",
		})
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{Message: "Token saved"})
}

// DeleteToken handles DELETE /settings/token
// @Summary Remove the GitHub token
// @Tags Settings
// @Security SettingsAuth
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Failure 501 {object} ErrorResponse
// @Router /settings/token [delete]
func (h *SettingsHandler) DeleteToken(c *gin.Context) {
	store, ok := h.writable(c)
	if !ok {
		return
	}

	if err := store.Delete(c.Request.Context(), fork.CredentialKey); err != nil {
		h.log.Error("failed to delete token", logger.Err(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "Failed to delete token",
		})
		return
	}

	c.Status(http.StatusNoContent)
}
