package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/princeprakhar/portfolio-backend/internal/models"
	"github.com/princeprakhar/portfolio-backend/internal/services"
	"github.com/princeprakhar/portfolio-backend/internal/utils"
)

type ContentHandler struct {
	contentService *services.ContentService
}

func NewContentHandler(contentService *services.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

func (h *ContentHandler) GetSkills(c *gin.Context) {
	skills, err := h.contentService.GetSkills(c.Request.Context())
	if err != nil {
		utils.SendInternalError(c, "Failed to retrieve skills", err)
		return
	}
	utils.SendSuccess(c, "Skills retrieved successfully", skills)
}

func (h *ContentHandler) CreateSkill(c *gin.Context) {
	var skill models.Skill
	if err := c.ShouldBindJSON(&skill); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	if err := h.contentService.CreateSkill(c.Request.Context(), &skill); err != nil {
		utils.SendInternalError(c, "Failed to create skill", err)
		return
	}
	utils.SendSuccess(c, "Skill created successfully", skill)
}

func (h *ContentHandler) UpdateSkill(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var skill models.Skill
	if err := c.ShouldBindJSON(&skill); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	if err := h.contentService.UpdateSkill(c.Request.Context(), id, &skill); err != nil {
		h.sendContentError(c, "Failed to update skill", err)
		return
	}
	utils.SendSuccess(c, "Skill updated successfully", skill)
}

func (h *ContentHandler) DeleteSkill(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.contentService.DeleteSkill(c.Request.Context(), id); err != nil {
		h.sendContentError(c, "Failed to delete skill", err)
		return
	}
	utils.SendSuccess(c, "Skill deleted successfully", nil)
}

func (h *ContentHandler) GetExperience(c *gin.Context) {
	entries, err := h.contentService.GetExperience(c.Request.Context())
	if err != nil {
		utils.SendInternalError(c, "Failed to retrieve experience", err)
		return
	}
	utils.SendSuccess(c, "Experience retrieved successfully", entries)
}

func (h *ContentHandler) CreateExperience(c *gin.Context) {
	var entry models.Experience
	if err := c.ShouldBindJSON(&entry); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	if err := h.contentService.CreateExperience(c.Request.Context(), &entry); err != nil {
		utils.SendInternalError(c, "Failed to create experience entry", err)
		return
	}
	utils.SendSuccess(c, "Experience entry created successfully", entry)
}

func (h *ContentHandler) UpdateExperience(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var entry models.Experience
	if err := c.ShouldBindJSON(&entry); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	if err := h.contentService.UpdateExperience(c.Request.Context(), id, &entry); err != nil {
		h.sendContentError(c, "Failed to update experience entry", err)
		return
	}
	utils.SendSuccess(c, "Experience entry updated successfully", entry)
}

func (h *ContentHandler) DeleteExperience(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.contentService.DeleteExperience(c.Request.Context(), id); err != nil {
		h.sendContentError(c, "Failed to delete experience entry", err)
		return
	}
	utils.SendSuccess(c, "Experience entry deleted successfully", nil)
}

func (h *ContentHandler) GetCredentials(c *gin.Context) {
	credentials, err := h.contentService.GetCredentials(c.Request.Context())
	if err != nil {
		utils.SendInternalError(c, "Failed to retrieve credentials", err)
		return
	}
	utils.SendSuccess(c, "Credentials retrieved successfully", credentials)
}

func (h *ContentHandler) CreateCredential(c *gin.Context) {
	var credential models.Credential
	if err := c.ShouldBindJSON(&credential); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	if err := h.contentService.CreateCredential(c.Request.Context(), &credential); err != nil {
		utils.SendInternalError(c, "Failed to create credential", err)
		return
	}
	utils.SendSuccess(c, "Credential created successfully", credential)
}

func (h *ContentHandler) UpdateCredential(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var credential models.Credential
	if err := c.ShouldBindJSON(&credential); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	if err := h.contentService.UpdateCredential(c.Request.Context(), id, &credential); err != nil {
		h.sendContentError(c, "Failed to update credential", err)
		return
	}
	utils.SendSuccess(c, "Credential updated successfully", credential)
}

func (h *ContentHandler) DeleteCredential(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.contentService.DeleteCredential(c.Request.Context(), id); err != nil {
		h.sendContentError(c, "Failed to delete credential", err)
		return
	}
	utils.SendSuccess(c, "Credential deleted successfully", nil)
}

func (h *ContentHandler) sendContentError(c *gin.Context, message string, err error) {
	if errors.Is(err, services.ErrContentNotFound) {
		utils.SendNotFound(c, message)
		return
	}
	utils.SendInternalError(c, message, err)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.SendValidationError(c, "Invalid ID")
		return 0, false
	}
	return uint(id), true
}
