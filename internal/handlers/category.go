package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/portfolio-api/internal/response"
	"github.com/yukikurage/portfolio-api/internal/services"
)

// CategoryHandler coordinates category HTTP handlers.
type CategoryHandler struct {
	categoryService *services.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// List returns active categories. This is the only public category
// endpoint.
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryService.List()
	if err != nil {
		response.InternalError(c, "Failed to fetch categories", err)
		return
	}
	response.OK(c, categories)
}

// Get returns a category by ID, active or not.
func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.NotFound(c, "Category not found")
		return
	}

	category, err := h.categoryService.Get(id)
	switch {
	case err == nil:
		response.OK(c, category)
	case errors.Is(err, services.ErrCategoryNotFound):
		response.NotFound(c, "Category not found")
	default:
		response.InternalError(c, "Failed to fetch category", err)
	}
}

// Create creates a category.
func (h *CategoryHandler) Create(c *gin.Context) {
	type CreateRequest struct {
		Name string `json:"name"`
	}

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Category name is required")
		return
	}

	category, err := h.categoryService.Create(services.CreateCategoryInput{Name: req.Name})
	switch {
	case err == nil:
		response.Created(c, "Category created successfully", category)
	case errors.Is(err, services.ErrCategoryNameRequired):
		response.BadRequest(c, "Category name is required")
	default:
		response.InternalError(c, "Failed to create category", err)
	}
}

// Update merges the request body into a category. Absent and falsy
// values leave the stored fields untouched.
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.NotFound(c, "Category not found")
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

	category, err := h.categoryService.Update(id, services.UpdateCategoryInput{
		Name:     req.Name,
		IsActive: req.IsActive,
	})
	switch {
	case err == nil:
		response.OKWithData(c, "Category updated successfully", category)
	case errors.Is(err, services.ErrCategoryNotFound):
		response.NotFound(c, "Category not found")
	default:
		response.InternalError(c, "Failed to update category", err)
	}
}

// Delete soft-deletes a category.
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.NotFound(c, "Category not found")
		return
	}

	err := h.categoryService.SoftDelete(id)
	switch {
	case err == nil:
		response.OKMessage(c, "Category deleted successfully")
	case errors.Is(err, services.ErrCategoryNotFound):
		response.NotFound(c, "Category not found")
	default:
		response.InternalError(c, "Failed to delete category", err)
	}
}

// HardDelete permanently removes a category. There is no referencing-
// project guard on categories.
func (h *CategoryHandler) HardDelete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.NotFound(c, "Category not found")
		return
	}

	err := h.categoryService.HardDelete(id)
	switch {
	case err == nil:
		response.OKMessage(c, "Category permanently deleted")
	case errors.Is(err, services.ErrCategoryNotFound):
		response.NotFound(c, "Category not found")
	default:
		response.InternalError(c, "Failed to delete category", err)
	}
}
