package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/princeprakhar/portfolio-backend/internal/services"
	"github.com/princeprakhar/portfolio-backend/internal/utils"
)

type FlagHandler struct {
	flagService *services.FlagService
}

func NewFlagHandler(flagService *services.FlagService) *FlagHandler {
	return &FlagHandler{flagService: flagService}
}

func (h *FlagHandler) GetFlags(c *gin.Context) {
	flags, err := h.flagService.All(c.Request.Context())
	if err != nil {
		utils.SendInternalError(c, "Failed to retrieve feature flags", err)
		return
	}
	utils.SendSuccess(c, "Feature flags retrieved successfully", flags)
}

func (h *FlagHandler) UpdateFlag(c *gin.Context) {
	var req struct {
		Enabled bool `json:"enabled"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	flag, err := h.flagService.SetFlag(c.Request.Context(), c.Param("name"), req.Enabled)
	if err != nil {
		if errors.Is(err, services.ErrFlagNotFound) {
			utils.SendNotFound(c, "Feature flag not found")
			return
		}
		utils.SendInternalError(c, "Failed to update feature flag", err)
		return
	}
	utils.SendSuccess(c, "Feature flag updated successfully", flag)
}
