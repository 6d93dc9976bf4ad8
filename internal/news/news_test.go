package news

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/abarhail/abarhail-api/internal/models"
	"github.com/abarhail/abarhail-api/pkg/responses"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "news.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&News{}))
	return db
}

func testRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	RegisterNewsRoutes(r.Group("/api/v1"), db)
	return r
}

func seedNews(t *testing.T, db *gorm.DB, title string, status string, createdAt time.Time) News {
	t.Helper()

	item := News{
		Title:     models.LocalizedText{Ar: title},
		Content:   models.LocalizedText{Ar: "محتوى"},
		Images:    models.StringSlice{},
		Status:    status,
		CreatedAt: createdAt,
	}
	require.NoError(t, db.Create(&item).Error)
	return item
}

func TestRepositoryGetByIDMissing(t *testing.T) {
	repo := NewNewsRepository(testDB(t))

	item, err := repo.GetByID(999)
	require.NoError(t, err)
	assert.Nil(t, item)
}

func TestRepositoryListNewestFirst(t *testing.T) {
	db := testDB(t)
	repo := NewNewsRepository(db)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	seedNews(t, db, "oldest", models.StatusPublished, base)
	seedNews(t, db, "middle", models.StatusPublished, base.Add(time.Hour))
	seedNews(t, db, "newest", models.StatusPublished, base.Add(2*time.Hour))

	items, total, err := repo.GetAll(1, 20, models.StatusPublished)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, items, 3)
	assert.Equal(t, "newest", items[0].Title.Ar)
	assert.Equal(t, "oldest", items[2].Title.Ar)
}

func TestRepositoryDeleteIsSoft(t *testing.T) {
	db := testDB(t)
	repo := NewNewsRepository(db)

	item := seedNews(t, db, "عنوان", models.StatusPublished, time.Now())
	require.NoError(t, repo.Delete(item.ID))

	// Gone from the published list.
	_, total, err := repo.GetAll(1, 20, models.StatusPublished)
	require.NoError(t, err)
	assert.Zero(t, total)

	// Still reachable by id, flagged deleted.
	kept, err := repo.GetByID(item.ID)
	require.NoError(t, err)
	require.NotNil(t, kept)
	assert.Equal(t, models.StatusDeleted, kept.Status)
}

func TestRepositoryPagination(t *testing.T) {
	db := testDB(t)
	repo := NewNewsRepository(db)

	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		seedNews(t, db, "خبر", models.StatusPublished, base.Add(time.Duration(i)*time.Minute))
	}

	items, total, err := repo.GetAll(2, 2, models.StatusPublished)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, items, 2)
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) (*httptest.ResponseRecorder, responses.Envelope) {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var envelope responses.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return w, envelope
}

func TestStoreRequiresArabicTitle(t *testing.T) {
	r := testRouter(t, testDB(t))

	w, envelope := postJSON(t, r, "/api/v1/news", gin.H{
		"title":   gin.H{"ar": "", "en": "English only"},
		"content": gin.H{"ar": "محتوى"},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "MISSING_AR_TITLE", envelope.ErrorCode)
}

func TestStoreDefaultsEnglishToEmpty(t *testing.T) {
	db := testDB(t)
	r := testRouter(t, db)

	w, envelope := postJSON(t, r, "/api/v1/news", gin.H{
		"title":   gin.H{"ar": "عنوان"},
		"content": gin.H{"ar": "محتوى"},
	})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, envelope.Success)

	var created News
	require.NoError(t, db.First(&created).Error)
	assert.Equal(t, "عنوان", created.Title.Ar)
	assert.Empty(t, created.Title.En)
	assert.Equal(t, models.StatusPublished, created.Status)
	assert.NotNil(t, created.Images)
}

func TestStoreRejectsMissingFields(t *testing.T) {
	r := testRouter(t, testDB(t))

	w, envelope := postJSON(t, r, "/api/v1/news", gin.H{
		"title": gin.H{"ar": "عنوان"},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", envelope.ErrorCode)
}

func TestShowUnknownID(t *testing.T) {
	r := testRouter(t, testDB(t))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/news/42", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	var envelope responses.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "NEWS_NOT_FOUND", envelope.ErrorCode)
}

func TestShowRejectsNonNumericID(t *testing.T) {
	r := testRouter(t, testDB(t))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/news/abc", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDestroyThenList(t *testing.T) {
	db := testDB(t)
	r := testRouter(t, db)
	item := seedNews(t, db, "عنوان", models.StatusPublished, time.Now())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/news/1", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/news", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), `"id":`+strconv.FormatUint(uint64(item.ID), 10))
}
