package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/princeprakhar/portfolio-backend/internal/models"
	"github.com/princeprakhar/portfolio-backend/internal/services"
	"github.com/princeprakhar/portfolio-backend/internal/utils"
)

type ProjectHandler struct {
	projectService *services.ProjectService
	flagService    *services.FlagService
}

func NewProjectHandler(projectService *services.ProjectService, flagService *services.FlagService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		flagService:    flagService,
	}
}

func (h *ProjectHandler) GetProjects(c *gin.Context) {
	includeDevelopment := c.Query("include_development") == "true" &&
		h.flagService.IsEnabled(c.Request.Context(), services.FlagDevelopmentProjects)

	projects, err := h.projectService.GetProjects(c.Request.Context(), includeDevelopment)
	if err != nil {
		utils.SendInternalError(c, "Failed to retrieve projects", err)
		return
	}

	utils.SendSuccess(c, "Projects retrieved successfully", projects)
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, err := h.projectService.GetProjectByID(c.Request.Context(), c.Param("project_id"))
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			utils.SendNotFound(c, "Project not found")
			return
		}
		utils.SendInternalError(c, "Failed to retrieve project", err)
		return
	}

	utils.SendSuccess(c, "Project retrieved successfully", project)
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req models.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrProjectExists) {
			utils.SendError(c, http.StatusConflict, "Project already exists", err)
			return
		}
		utils.SendInternalError(c, "Failed to create project", err)
		return
	}

	utils.SendSuccess(c, "Project created successfully", project)
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	var req models.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	project, err := h.projectService.UpdateProject(c.Request.Context(), c.Param("project_id"), req)
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			utils.SendNotFound(c, "Project not found")
			return
		}
		utils.SendInternalError(c, "Failed to update project", err)
		return
	}

	utils.SendSuccess(c, "Project updated successfully", project)
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	err := h.projectService.DeleteProject(c.Request.Context(), c.Param("project_id"))
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			utils.SendNotFound(c, "Project not found")
			return
		}
		utils.SendInternalError(c, "Failed to delete project", err)
		return
	}

	utils.SendSuccess(c, "Project deleted successfully", nil)
}
