package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/princeprakhar/portfolio-backend/internal/services"
	"github.com/princeprakhar/portfolio-backend/internal/utils"
)

type UploadHandler struct {
	storageService *services.StorageService
}

func NewUploadHandler(storageService *services.StorageService) *UploadHandler {
	return &UploadHandler{storageService: storageService}
}

// UploadImages handles multipart screenshot/cover uploads from the admin
// panel.
func (h *UploadHandler) UploadImages(c *gin.Context) {
	if h.storageService == nil {
		utils.SendError(c, http.StatusServiceUnavailable, "Object storage is not configured", nil)
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		utils.SendValidationError(c, "Invalid multipart form")
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		utils.SendValidationError(c, "No files provided")
		return
	}

	results, err := h.storageService.UploadMultipleImages(files)
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "Failed to upload files", err)
		return
	}

	utils.SendSuccess(c, "Files uploaded successfully", results)
}
