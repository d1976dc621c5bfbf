package database

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/yukikurage/portfolio-api/internal/models"
	"gorm.io/gorm"
)

// Migrate creates or updates the schema for every record type and then
// ensures the foreign-key indexes exist.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Account{},
		&models.Category{},
		&models.Language{},
		&models.Project{},
		&models.Contact{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := addForeignKeyIndexes(db); err != nil {
		return fmt.Errorf("failed to add indexes: %w", err)
	}

	log.Info().Msg("database migrations completed")
	return nil
}

// addForeignKeyIndexes indexes the project reference columns. Index
// existence is probed per driver because neither MySQL nor Postgres
// shares a portable IF NOT EXISTS form GORM can emit here.
func addForeignKeyIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		{"projects", "idx_projects_category_id", "category_id"},
		{"projects", "idx_projects_language_id", "language_id"},
	}

	for _, idx := range indexes {
		var count int64
		switch db.Dialector.Name() {
		case "postgres":
			err := db.Raw(`
				SELECT COUNT(*)
				FROM pg_indexes
				WHERE tablename = ? AND indexname = ?
			`, idx.table, idx.name).Count(&count).Error
			if err != nil {
				return fmt.Errorf("failed to check index %s: %w", idx.name, err)
			}
		case "mysql":
			err := db.Raw(`
				SELECT COUNT(*)
				FROM information_schema.statistics
				WHERE table_schema = DATABASE() AND table_name = ? AND index_name = ?
			`, idx.table, idx.name).Count(&count).Error
			if err != nil {
				return fmt.Errorf("failed to check index %s: %w", idx.name, err)
			}
		default:
			// sqlite in tests; skip
			continue
		}

		if count > 0 {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		log.Info().Str("index", idx.name).Str("table", idx.table).Msg("created index")
	}

	return nil
}
