package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/portfolio-api/internal/dto"
	"github.com/yukikurage/portfolio-api/internal/response"
	"github.com/yukikurage/portfolio-api/internal/services"
)

// ProjectHandler coordinates project HTTP handlers.
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// List returns active projects with their category and language names.
// This is the only public project endpoint.
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projectService.List()
	if err != nil {
		response.InternalError(c, "Failed to fetch projects", err)
		return
	}
	response.OK(c, dto.ToProjectDTOs(projects))
}

// Get returns a project with relations by ID, active or not.
func (h *ProjectHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.NotFound(c, "Project not found")
		return
	}

	project, err := h.projectService.Get(id)
	switch {
	case err == nil:
		response.OK(c, dto.ToProjectDTO(*project))
	case errors.Is(err, services.ErrProjectNotFound):
		response.NotFound(c, "Project not found")
	default:
		response.InternalError(c, "Failed to fetch project", err)
	}
}

// GetByName returns a project with relations by exact name match.
func (h *ProjectHandler) GetByName(c *gin.Context) {
	project, err := h.projectService.GetByName(c.Param("name"))
	switch {
	case err == nil:
		response.OK(c, dto.ToProjectDTO(*project))
	case errors.Is(err, services.ErrProjectNotFound):
		response.NotFound(c, "Project not found")
	default:
		response.InternalError(c, "Failed to fetch project", err)
	}
}

// Create creates a project. All eight fields are required and missing
// ones are enumerated in a single message; the language reference comes
// in as tech_id.
func (h *ProjectHandler) Create(c *gin.Context) {
	type CreateRequest struct {
		Name        string    `json:"name"`
		Description string    `json:"description"`
		URL         string    `json:"url"`
		Client      string    `json:"client"`
		ProjectDate time.Time `json:"project_date"`
		ImageURL    string    `json:"image_url"`
		CategoryID  uint64    `json:"category_id"`
		TechID      uint64    `json:"tech_id"`
	}

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	project, err := h.projectService.Create(services.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		URL:         req.URL,
		Client:      req.Client,
		ProjectDate: req.ProjectDate,
		ImageURL:    req.ImageURL,
		CategoryID:  req.CategoryID,
		LanguageID:  req.TechID,
	})

	var missingErr *services.MissingFieldsError
	switch {
	case err == nil:
		response.Created(c, "Project created successfully", dto.ToProjectDTO(*project))
	case errors.As(err, &missingErr):
		response.BadRequest(c, missingErr.Error())
	case errors.Is(err, services.ErrInvalidRefs):
		response.BadRequest(c, "Invalid category_id or tech_id")
	default:
		response.InternalError(c, "Failed to create project", err)
	}
}

// Update merges the request body into a project. Supplied references
// are re-validated individually; absent and falsy fields keep their
// stored values.
func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.NotFound(c, "Project not found")
		return
	}

	type UpdateRequest struct {
		Name        string    `json:"name"`
		Description string    `json:"description"`
		URL         string    `json:"url"`
		Client      string    `json:"client"`
		ProjectDate time.Time `json:"project_date"`
		ImageURL    string    `json:"image_url"`
		CategoryID  uint64    `json:"category_id"`
		LanguageID  uint64    `json:"language_id"`
		IsActive    *bool     `json:"is_active"`
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	project, err := h.projectService.Update(id, services.UpdateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		URL:         req.URL,
		Client:      req.Client,
		ProjectDate: req.ProjectDate,
		ImageURL:    req.ImageURL,
		CategoryID:  req.CategoryID,
		LanguageID:  req.LanguageID,
		IsActive:    req.IsActive,
	})
	switch {
	case err == nil:
		response.OKWithData(c, "Project updated successfully", dto.ToProjectDTO(*project))
	case errors.Is(err, services.ErrProjectNotFound):
		response.NotFound(c, "Project not found")
	case errors.Is(err, services.ErrInvalidCategoryRef):
		response.BadRequest(c, "Invalid category_id")
	case errors.Is(err, services.ErrInvalidLanguageRef):
		response.BadRequest(c, "Invalid language_id")
	default:
		response.InternalError(c, "Failed to update project", err)
	}
}

// Delete soft-deletes a project.
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.NotFound(c, "Project not found")
		return
	}

	err := h.projectService.SoftDelete(id)
	switch {
	case err == nil:
		response.OKMessage(c, "Project deleted successfully")
	case errors.Is(err, services.ErrProjectNotFound):
		response.NotFound(c, "Project not found")
	default:
		response.InternalError(c, "Failed to delete project", err)
	}
}

// HardDelete permanently removes a project.
func (h *ProjectHandler) HardDelete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.NotFound(c, "Project not found")
		return
	}

	err := h.projectService.HardDelete(id)
	switch {
	case err == nil:
		response.OKMessage(c, "Project permanently deleted")
	case errors.Is(err, services.ErrProjectNotFound):
		response.NotFound(c, "Project not found")
	default:
		response.InternalError(c, "Failed to permanently delete project", err)
	}
}
