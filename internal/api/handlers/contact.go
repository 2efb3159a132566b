package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/princeprakhar/portfolio-backend/internal/services"
	"github.com/princeprakhar/portfolio-backend/internal/utils"
)

type ContactHandler struct {
	contactService *services.ContactService
}

func NewContactHandler(contactService *services.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

func (h *ContactHandler) SubmitMessage(c *gin.Context) {
	var req services.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	if _, err := h.contactService.SubmitMessage(c.Request.Context(), req); err != nil {
		if errors.Is(err, services.ErrInvalidContact) {
			utils.SendValidationError(c, "Invalid contact message")
			return
		}
		utils.SendInternalError(c, "Failed to submit message", err)
		return
	}

	utils.SendSuccess(c, "Message sent successfully", nil)
}

func (h *ContactHandler) GetMessages(c *gin.Context) {
	messages, err := h.contactService.GetMessages(c.Request.Context())
	if err != nil {
		utils.SendInternalError(c, "Failed to retrieve messages", err)
		return
	}
	utils.SendSuccess(c, "Messages retrieved successfully", messages)
}

func (h *ContactHandler) DeleteMessage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.SendValidationError(c, "Invalid message ID")
		return
	}

	if err := h.contactService.DeleteMessage(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, services.ErrMessageNotFound) {
			utils.SendNotFound(c, "Message not found")
			return
		}
		utils.SendInternalError(c, "Failed to delete message", err)
		return
	}
	utils.SendSuccess(c, "Message deleted successfully", nil)
}
