package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/portfolio-api/internal/response"
	"github.com/yukikurage/portfolio-api/internal/services"
)

// LanguageHandler coordinates language HTTP handlers. The response
// messages say "Tech", the name this resource carries on the site.
type LanguageHandler struct {
	languageService *services.LanguageService
}

// NewLanguageHandler creates a new LanguageHandler.
func NewLanguageHandler(languageService *services.LanguageService) *LanguageHandler {
	return &LanguageHandler{
		languageService: languageService,
	}
}

// List returns active languages, name ascending.
func (h *LanguageHandler) List(c *gin.Context) {
	languages, err := h.languageService.List()
	if err != nil {
		response.InternalError(c, "Failed to fetch Techs", err)
		return
	}
	response.OK(c, languages)
}

// Get returns a language by ID, active or not.
func (h *LanguageHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.NotFound(c, "Tech not found")
		return
	}

	language, err := h.languageService.Get(id)
	switch {
	case err == nil:
		response.OK(c, language)
	case errors.Is(err, services.ErrLanguageNotFound):
		response.NotFound(c, "Tech not found")
	default:
		response.InternalError(c, "Failed to fetch Tech", err)
	}
}

// Create creates a language after a name-uniqueness pre-check.
func (h *LanguageHandler) Create(c *gin.Context) {
	type CreateRequest struct {
		Name string `json:"name"`
	}

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Tech name is required")
		return
	}

	language, err := h.languageService.Create(services.CreateLanguageInput{Name: req.Name})
	switch {
	case err == nil:
		response.Created(c, "Tech created successfully", language)
	case errors.Is(err, services.ErrLanguageNameRequired):
		response.BadRequest(c, "Tech name is required")
	case errors.Is(err, services.ErrLanguageExists):
		response.BadRequest(c, "Tech already exists")
	default:
		response.InternalError(c, "Failed to create Tech", err)
	}
}

// Update merges the request body into a language; renames are checked
// for collisions first.
func (h *LanguageHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.NotFound(c, "Tech not found")
		return
	}

	type UpdateRequest struct {
		Name     string `json:"name"`
		IsActive *bool  `json:"is_active"`
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	language, err := h.languageService.Update(id, services.UpdateLanguageInput{
		Name:     req.Name,
		IsActive: req.IsActive,
	})
	switch {
	case err == nil:
		response.OKWithData(c, "Tech updated successfully", language)
	case errors.Is(err, services.ErrLanguageNotFound):
		response.NotFound(c, "Tech not found")
	case errors.Is(err, services.ErrLanguageExists):
		response.BadRequest(c, "Tech name already exists")
	default:
		response.InternalError(c, "Failed to update Tech", err)
	}
}

// Delete soft-deletes a language. The in-use guard applies only to hard
// deletion.
func (h *LanguageHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.NotFound(c, "Tech not found")
		return
	}

	err := h.languageService.SoftDelete(id)
	switch {
	case err == nil:
		response.OKMessage(c, "Tech deleted successfully")
	case errors.Is(err, services.ErrLanguageNotFound):
		response.NotFound(c, "Tech not found")
	default:
		response.InternalError(c, "Failed to delete Tech", err)
	}
}

// HardDelete permanently removes a language unless projects still
// reference it.
func (h *LanguageHandler) HardDelete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.NotFound(c, "Tech not found")
		return
	}

	err := h.languageService.HardDelete(id)
	switch {
	case err == nil:
		response.OKMessage(c, "Tech permanently deleted")
	case errors.Is(err, services.ErrLanguageNotFound):
		response.NotFound(c, "Tech not found")
	case errors.Is(err, services.ErrLanguageInUse):
		response.BadRequest(c, "Cannot delete Tech as it is being used by projects")
	default:
		response.InternalError(c, "Failed to permanently delete Tech", err)
	}
}
