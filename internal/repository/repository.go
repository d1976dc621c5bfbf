package repository

import "github.com/yukikurage/portfolio-api/internal/models"

// AccountRepository defines the interface for account data access.
// Accounts are read-only here: they are created out of band.
type AccountRepository interface {
	// FindByID finds an account by ID
	FindByID(id uint64) (*models.Account, error)

	// FindByName finds an account by its display name (exact match)
	FindByName(name string) (*models.Account, error)
}

// CategoryRepository defines the interface for category data access
type CategoryRepository interface {
	// Create creates a new category
	Create(category *models.Category) error

	// FindByID finds a category by ID, active or not
	FindByID(id uint64) (*models.Category, error)

	// ListActive lists active categories, newest first
	ListActive() ([]models.Category, error)

	// Update persists all fields of a category
	Update(category *models.Category) error

	// Delete permanently removes a category
	Delete(id uint64) error
}

// LanguageRepository defines the interface for language (tech tag) data access
type LanguageRepository interface {
	// Create creates a new language
	Create(language *models.Language) error

	// FindByID finds a language by ID, active or not
	FindByID(id uint64) (*models.Language, error)

	// FindByName finds a language by exact name
	FindByName(name string) (*models.Language, error)

	// ListActive lists active languages, name ascending
	ListActive() ([]models.Language, error)

	// Update persists all fields of a language
	Update(language *models.Language) error

	// Delete permanently removes a language
	Delete(id uint64) error
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// Create creates a new project
	Create(project *models.Project) error

	// FindByID finds a project by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Project, error)

	// FindByName finds a project by exact name with optional preloading
	FindByName(name string, preload ...string) (*models.Project, error)

	// ListActive lists active projects with their category and
	// language, newest project date first
	ListActive() ([]models.Project, error)

	// Update persists all fields of a project
	Update(project *models.Project) error

	// Delete permanently removes a project
	Delete(id uint64) error

	// CountByLanguageID counts projects referencing a language
	CountByLanguageID(languageID uint64) (int64, error)
}

// ContactRepository defines the interface for contact message data access
type ContactRepository interface {
	// Create creates a new contact message
	Create(contact *models.Contact) error

	// FindByID finds a contact message by ID, active or not
	FindByID(id uint64) (*models.Contact, error)

	// ListActive lists active contact messages, newest first
	ListActive() ([]models.Contact, error)

	// Update persists all fields of a contact message
	Update(contact *models.Contact) error

	// Delete permanently removes a contact message
	Delete(id uint64) error
}
