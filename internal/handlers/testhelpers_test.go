package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/portfolio-api/internal/models"
	"github.com/yukikurage/portfolio-api/internal/response"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// openTestDB opens an in-memory sqlite database with the full schema.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Account{},
		&models.Category{},
		&models.Language{},
		&models.Project{},
		&models.Contact{},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

// doJSON performs a request against the router with an optional JSON body.
func doJSON(t *testing.T, router *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodeEnvelope unmarshals the standard response envelope.
func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) response.Envelope {
	t.Helper()

	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope
}

// dataAsMap returns the envelope's data field as a JSON object.
func dataAsMap(t *testing.T, envelope response.Envelope) map[string]any {
	t.Helper()

	data, ok := envelope.Data.(map[string]any)
	require.True(t, ok, "expected data to be an object, got %T", envelope.Data)
	return data
}

// dataAsSlice returns the envelope's data field as a JSON array.
func dataAsSlice(t *testing.T, envelope response.Envelope) []any {
	t.Helper()

	if envelope.Data == nil {
		return nil
	}
	data, ok := envelope.Data.([]any)
	require.True(t, ok, "expected data to be an array, got %T", envelope.Data)
	return data
}
