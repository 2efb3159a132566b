package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/princeprakhar/portfolio-backend/internal/api/middleware"
	"github.com/princeprakhar/portfolio-backend/internal/services"
	"github.com/princeprakhar/portfolio-backend/internal/utils"
)

type RatingHandler struct {
	ratingService *services.RatingService
}

func NewRatingHandler(ratingService *services.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

// SubmitRating handles POST /ratings/:project_id. Resubmitting replaces the
// visitor's previous score; it never counts twice.
func (h *RatingHandler) SubmitRating(c *gin.Context) {
	projectID := c.Param("project_id")
	raterIdentity := c.GetString(middleware.IdentityKey)

	var req services.SubmitRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	err := h.ratingService.Submit(c.Request.Context(), projectID, raterIdentity, req.Rating)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidScore), errors.Is(err, services.ErrMissingField):
			utils.SendError(c, http.StatusBadRequest, "Invalid rating", err)
		case errors.Is(err, services.ErrNoIdentity):
			utils.SendError(c, http.StatusBadRequest, "Unable to identify you for rating", err)
		default:
			utils.SendInternalError(c, "Failed to save rating", err)
		}
		return
	}

	utils.SendSuccess(c, "Rating submitted successfully", nil)
}

// GetStats handles GET /ratings/:project_id/stats. A project nobody rated
// returns zeroes, not an error.
func (h *RatingHandler) GetStats(c *gin.Context) {
	projectID := c.Param("project_id")

	stats, err := h.ratingService.GetStats(c.Request.Context(), projectID)
	if err != nil {
		if errors.Is(err, services.ErrMissingField) {
			utils.SendValidationError(c, "Invalid project ID")
			return
		}
		utils.SendInternalError(c, "Failed to fetch rating stats", err)
		return
	}

	utils.SendSuccess(c, "Rating stats retrieved successfully", stats)
}

// GetRatingState handles GET /ratings/:project_id/me and returns whether the
// visitor rated the project plus their own prior score.
func (h *RatingHandler) GetRatingState(c *gin.Context) {
	projectID := c.Param("project_id")
	raterIdentity := c.GetString(middleware.IdentityKey)

	state, err := h.ratingService.GetRatingState(c.Request.Context(), projectID, raterIdentity)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingField):
			utils.SendValidationError(c, "Invalid project ID")
		case errors.Is(err, services.ErrNoIdentity):
			utils.SendError(c, http.StatusBadRequest, "Unable to identify you for rating", err)
		default:
			utils.SendInternalError(c, "Failed to check rating", err)
		}
		return
	}

	utils.SendSuccess(c, "Rating state retrieved successfully", state)
}
