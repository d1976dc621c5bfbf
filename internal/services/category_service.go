package services

import (
	"errors"
	"fmt"

	"github.com/yukikurage/portfolio-api/internal/models"
	"github.com/yukikurage/portfolio-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound     = errors.New("category not found")
	ErrCategoryNameRequired = errors.New("category name is required")
)

// CategoryService handles category business logic.
type CategoryService struct {
	categories repository.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categories repository.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

// List returns active categories, newest first.
func (s *CategoryService) List() ([]models.Category, error) {
	return s.categories.ListActive()
}

// Get returns a category by ID regardless of its active flag.
func (s *CategoryService) Get(id uint64) (*models.Category, error) {
	category, err := s.categories.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	return category, nil
}

// CreateCategoryInput holds the fields for a new category.
type CreateCategoryInput struct {
	Name string
}

// Create creates an active category.
func (s *CategoryService) Create(input CreateCategoryInput) (*models.Category, error) {
	if input.Name == "" {
		return nil, ErrCategoryNameRequired
	}

	category := &models.Category{
		Name:     input.Name,
		IsActive: true,
	}
	if err := s.categories.Create(category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}

// UpdateCategoryInput holds the fields for a category update. An empty
// Name leaves the stored value in place; IsActive changes only when the
// key was present in the request.
type UpdateCategoryInput struct {
	Name     string
	IsActive *bool
}

// Update merges the input into the stored category. Absent and falsy
// values are treated alike and never overwrite existing data.
func (s *CategoryService) Update(id uint64, input UpdateCategoryInput) (*models.Category, error) {
	category, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		category.Name = input.Name
	}
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}

	if err := s.categories.Update(category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return category, nil
}

// SoftDelete marks a category inactive. Calling it on an already
// inactive category is a no-op.
func (s *CategoryService) SoftDelete(id uint64) error {
	category, err := s.Get(id)
	if err != nil {
		return err
	}

	category.IsActive = false
	if err := s.categories.Update(category); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

// HardDelete permanently removes a category. Unlike languages there is
// no referencing-project guard here.
func (s *CategoryService) HardDelete(id uint64) error {
	if _, err := s.Get(id); err != nil {
		return err
	}

	if err := s.categories.Delete(id); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}
