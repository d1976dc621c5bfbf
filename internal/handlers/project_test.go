package handlers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/portfolio-api/internal/models"
	"github.com/yukikurage/portfolio-api/internal/repository"
	"github.com/yukikurage/portfolio-api/internal/services"
	"gorm.io/gorm"
)

type projectTestEnv struct {
	db       *gorm.DB
	router   *gin.Engine
	category models.Category
	language models.Language
}

func setupProjectTestEnv(t *testing.T) projectTestEnv {
	t.Helper()

	db := openTestDB(t)
	service := services.NewProjectService(
		repository.NewProjectRepository(db),
		repository.NewCategoryRepository(db),
		repository.NewLanguageRepository(db),
	)
	handler := NewProjectHandler(service)

	r := gin.New()
	r.GET("/projects/get-all-projects", handler.List)
	r.GET("/projects/get-project-by-id/:id", handler.Get)
	r.GET("/projects/get-project-by-name/:name", handler.GetByName)
	r.POST("/projects/create-project", handler.Create)
	r.PUT("/projects/update-project/:id", handler.Update)
	r.DELETE("/projects/delete-project/:id", handler.Delete)
	r.DELETE("/projects/hard-delete-project/:id", handler.HardDelete)

	category := models.Category{Name: "Web", IsActive: true}
	require.NoError(t, db.Create(&category).Error)
	language := models.Language{Name: "Go", IsActive: true}
	require.NoError(t, db.Create(&language).Error)

	return projectTestEnv{db: db, router: r, category: category, language: language}
}

func (env projectTestEnv) createPayload() map[string]any {
	return map[string]any{
		"name":         "Portfolio",
		"description":  "Personal portfolio site",
		"url":          "https://example.com",
		"client":       "Self",
		"project_date": "2024-03-01T00:00:00Z",
		"image_url":    "https://example.com/cover.png",
		"category_id":  env.category.ID,
		"tech_id":      env.language.ID,
	}
}

func TestProjectHandler_Create(t *testing.T) {
	env := setupProjectTestEnv(t)

	w := doJSON(t, env.router, http.MethodPost, "/projects/create-project", env.createPayload())

	require.Equal(t, http.StatusCreated, w.Code)
	envelope := decodeEnvelope(t, w)
	require.Equal(t, "Project created successfully", envelope.Message)

	data := dataAsMap(t, envelope)
	require.Equal(t, "Portfolio", data["name"])
	require.Equal(t, "Web", data["category"].(map[string]any)["name"])
	require.Equal(t, "Go", data["language"].(map[string]any)["name"])
}

func TestProjectHandler_Create_MissingFieldsEnumerated(t *testing.T) {
	env := setupProjectTestEnv(t)

	w := doJSON(t, env.router, http.MethodPost, "/projects/create-project", map[string]any{})

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t,
		"Missing required fields: name, description, url, client, project_date, image_url, category_id, tech_id",
		decodeEnvelope(t, w).Message)
}

func TestProjectHandler_Create_PartialMissingFields(t *testing.T) {
	env := setupProjectTestEnv(t)

	payload := env.createPayload()
	delete(payload, "client")
	delete(payload, "image_url")

	w := doJSON(t, env.router, http.MethodPost, "/projects/create-project", payload)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Missing required fields: client, image_url", decodeEnvelope(t, w).Message)
}

func TestProjectHandler_Create_InvalidReference(t *testing.T) {
	env := setupProjectTestEnv(t)

	payload := env.createPayload()
	payload["category_id"] = 9999

	w := doJSON(t, env.router, http.MethodPost, "/projects/create-project", payload)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Invalid category_id or tech_id", decodeEnvelope(t, w).Message)

	// No row may have been created.
	var count int64
	require.NoError(t, env.db.Model(&models.Project{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestProjectHandler_Update_MergeOnFalsy(t *testing.T) {
	env := setupProjectTestEnv(t)

	w := doJSON(t, env.router, http.MethodPost, "/projects/create-project", env.createPayload())
	require.Equal(t, http.StatusCreated, w.Code)
	id := uint64(dataAsMap(t, decodeEnvelope(t, w))["id"].(float64))

	// An explicit empty string behaves like an absent key.
	w = doJSON(t, env.router, http.MethodPut, fmt.Sprintf("/projects/update-project/%d", id), map[string]any{
		"name":        "",
		"description": "Rewritten description",
	})

	require.Equal(t, http.StatusOK, w.Code)
	data := dataAsMap(t, decodeEnvelope(t, w))
	require.Equal(t, "Portfolio", data["name"])
	require.Equal(t, "Rewritten description", data["description"])
}

func TestProjectHandler_Update_InvalidLanguageRef(t *testing.T) {
	env := setupProjectTestEnv(t)

	w := doJSON(t, env.router, http.MethodPost, "/projects/create-project", env.createPayload())
	require.Equal(t, http.StatusCreated, w.Code)
	id := uint64(dataAsMap(t, decodeEnvelope(t, w))["id"].(float64))

	w = doJSON(t, env.router, http.MethodPut, fmt.Sprintf("/projects/update-project/%d", id), map[string]any{
		"language_id": 9999,
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Invalid language_id", decodeEnvelope(t, w).Message)
}

func TestProjectHandler_Update_SwitchLanguage(t *testing.T) {
	env := setupProjectTestEnv(t)

	rust := models.Language{Name: "Rust", IsActive: true}
	require.NoError(t, env.db.Create(&rust).Error)

	w := doJSON(t, env.router, http.MethodPost, "/projects/create-project", env.createPayload())
	require.Equal(t, http.StatusCreated, w.Code)
	id := uint64(dataAsMap(t, decodeEnvelope(t, w))["id"].(float64))

	w = doJSON(t, env.router, http.MethodPut, fmt.Sprintf("/projects/update-project/%d", id), map[string]any{
		"language_id": rust.ID,
	})

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Rust", dataAsMap(t, decodeEnvelope(t, w))["language"].(map[string]any)["name"])
}

func TestProjectHandler_List_ActiveWithRelations(t *testing.T) {
	env := setupProjectTestEnv(t)

	w := doJSON(t, env.router, http.MethodPost, "/projects/create-project", env.createPayload())
	require.Equal(t, http.StatusCreated, w.Code)
	id := uint64(dataAsMap(t, decodeEnvelope(t, w))["id"].(float64))

	second := env.createPayload()
	second["name"] = "Old Site"
	second["project_date"] = "2020-01-01T00:00:00Z"
	w = doJSON(t, env.router, http.MethodPost, "/projects/create-project", second)
	require.Equal(t, http.StatusCreated, w.Code)

	// Soft delete the first project; it must drop out of the listing.
	w = doJSON(t, env.router, http.MethodDelete, fmt.Sprintf("/projects/delete-project/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, env.router, http.MethodGet, "/projects/get-all-projects", nil)
	require.Equal(t, http.StatusOK, w.Code)
	items := dataAsSlice(t, decodeEnvelope(t, w))
	require.Len(t, items, 1)

	item := items[0].(map[string]any)
	require.Equal(t, "Old Site", item["name"])
	require.Equal(t, "Web", item["category"].(map[string]any)["name"])
	require.Equal(t, "Go", item["language"].(map[string]any)["name"])
}

func TestProjectHandler_GetByName(t *testing.T) {
	env := setupProjectTestEnv(t)

	w := doJSON(t, env.router, http.MethodPost, "/projects/create-project", env.createPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, env.router, http.MethodGet, "/projects/get-project-by-name/Portfolio", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := dataAsMap(t, decodeEnvelope(t, w))
	require.Equal(t, "Portfolio", data["name"])
	require.Equal(t, "Go", data["language"].(map[string]any)["name"])

	w = doJSON(t, env.router, http.MethodGet, "/projects/get-project-by-name/Unknown", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "Project not found", decodeEnvelope(t, w).Message)
}

func TestProjectHandler_HardDelete(t *testing.T) {
	env := setupProjectTestEnv(t)

	w := doJSON(t, env.router, http.MethodPost, "/projects/create-project", env.createPayload())
	require.Equal(t, http.StatusCreated, w.Code)
	id := uint64(dataAsMap(t, decodeEnvelope(t, w))["id"].(float64))

	w = doJSON(t, env.router, http.MethodDelete, fmt.Sprintf("/projects/hard-delete-project/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Project permanently deleted", decodeEnvelope(t, w).Message)

	w = doJSON(t, env.router, http.MethodGet, fmt.Sprintf("/projects/get-project-by-id/%d", id), nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestProjectHandler_ProjectDateRoundTrip(t *testing.T) {
	env := setupProjectTestEnv(t)

	w := doJSON(t, env.router, http.MethodPost, "/projects/create-project", env.createPayload())
	require.Equal(t, http.StatusCreated, w.Code)
	data := dataAsMap(t, decodeEnvelope(t, w))

	parsed, err := time.Parse(time.RFC3339, data["project_date"].(string))
	require.NoError(t, err)
	require.Equal(t, 2024, parsed.Year())
}
