package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/portfolio-api/internal/models"
	"github.com/yukikurage/portfolio-api/internal/repository"
	"github.com/yukikurage/portfolio-api/internal/services"
	"gorm.io/gorm"
)

type categoryTestEnv struct {
	db     *gorm.DB
	router *gin.Engine
}

func setupCategoryTestEnv(t *testing.T) categoryTestEnv {
	t.Helper()

	db := openTestDB(t)
	handler := NewCategoryHandler(services.NewCategoryService(repository.NewCategoryRepository(db)))

	r := gin.New()
	r.GET("/categories/get-all-categories", handler.List)
	r.GET("/categories/get-category-by-id/:id", handler.Get)
	r.POST("/categories/create-category", handler.Create)
	r.PUT("/categories/update-category/:id", handler.Update)
	r.DELETE("/categories/delete-category/:id", handler.Delete)
	r.DELETE("/categories/hard-delete-category/:id", handler.HardDelete)

	return categoryTestEnv{db: db, router: r}
}

func TestCategoryHandler_Create(t *testing.T) {
	env := setupCategoryTestEnv(t)

	w := doJSON(t, env.router, http.MethodPost, "/categories/create-category", map[string]string{"name": "Web"})

	require.Equal(t, http.StatusCreated, w.Code)
	envelope := decodeEnvelope(t, w)
	require.True(t, envelope.Success)
	require.Equal(t, "Category created successfully", envelope.Message)

	data := dataAsMap(t, envelope)
	require.Equal(t, "Web", data["name"])
	require.Equal(t, true, data["is_active"])
}

func TestCategoryHandler_Create_NameRequired(t *testing.T) {
	env := setupCategoryTestEnv(t)

	w := doJSON(t, env.router, http.MethodPost, "/categories/create-category", map[string]string{})

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Category name is required", decodeEnvelope(t, w).Message)
}

func TestCategoryHandler_List_ActiveOnly(t *testing.T) {
	env := setupCategoryTestEnv(t)

	require.NoError(t, env.db.Create(&models.Category{Name: "Web", IsActive: true}).Error)
	require.NoError(t, env.db.Create(&models.Category{Name: "Mobile", IsActive: false}).Error)

	w := doJSON(t, env.router, http.MethodGet, "/categories/get-all-categories", nil)

	require.Equal(t, http.StatusOK, w.Code)
	items := dataAsSlice(t, decodeEnvelope(t, w))
	require.Len(t, items, 1)
	require.Equal(t, "Web", items[0].(map[string]any)["name"])
}

func TestCategoryHandler_Get_InactiveStillRetrievable(t *testing.T) {
	env := setupCategoryTestEnv(t)

	category := models.Category{Name: "Web", IsActive: false}
	require.NoError(t, env.db.Create(&category).Error)

	w := doJSON(t, env.router, http.MethodGet, fmt.Sprintf("/categories/get-category-by-id/%d", category.ID), nil)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Web", dataAsMap(t, decodeEnvelope(t, w))["name"])
}

func TestCategoryHandler_Get_NotFound(t *testing.T) {
	env := setupCategoryTestEnv(t)

	w := doJSON(t, env.router, http.MethodGet, "/categories/get-category-by-id/999", nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "Category not found", decodeEnvelope(t, w).Message)
}

func TestCategoryHandler_Update_MergeOnFalsy(t *testing.T) {
	env := setupCategoryTestEnv(t)

	category := models.Category{Name: "Web", IsActive: true}
	require.NoError(t, env.db.Create(&category).Error)
	path := fmt.Sprintf("/categories/update-category/%d", category.ID)

	// An explicit empty name must not overwrite the stored value.
	w := doJSON(t, env.router, http.MethodPut, path, map[string]any{"name": ""})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Web", dataAsMap(t, decodeEnvelope(t, w))["name"])

	// A present is_active key does flip the flag.
	w = doJSON(t, env.router, http.MethodPut, path, map[string]any{"is_active": false})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, false, dataAsMap(t, decodeEnvelope(t, w))["is_active"])

	// Reactivation through update.
	w = doJSON(t, env.router, http.MethodPut, path, map[string]any{"name": "Mobile", "is_active": true})
	require.Equal(t, http.StatusOK, w.Code)
	data := dataAsMap(t, decodeEnvelope(t, w))
	require.Equal(t, "Mobile", data["name"])
	require.Equal(t, true, data["is_active"])
}

func TestCategoryHandler_SoftDelete_Idempotent(t *testing.T) {
	env := setupCategoryTestEnv(t)

	category := models.Category{Name: "Web", IsActive: true}
	require.NoError(t, env.db.Create(&category).Error)
	path := fmt.Sprintf("/categories/delete-category/%d", category.ID)

	for i := 0; i < 2; i++ {
		w := doJSON(t, env.router, http.MethodDelete, path, nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "Category deleted successfully", decodeEnvelope(t, w).Message)

		var stored models.Category
		require.NoError(t, env.db.First(&stored, category.ID).Error)
		require.False(t, stored.IsActive)
	}
}

func TestCategoryHandler_HardDelete(t *testing.T) {
	env := setupCategoryTestEnv(t)

	category := models.Category{Name: "Web", IsActive: true}
	require.NoError(t, env.db.Create(&category).Error)

	w := doJSON(t, env.router, http.MethodDelete, fmt.Sprintf("/categories/hard-delete-category/%d", category.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Category permanently deleted", decodeEnvelope(t, w).Message)

	w = doJSON(t, env.router, http.MethodGet, fmt.Sprintf("/categories/get-category-by-id/%d", category.ID), nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
