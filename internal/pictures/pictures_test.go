package pictures

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

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

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "pictures.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Picture{}))
	return db
}

func testRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	RegisterPictureRoutes(r.Group("/api/v1"), db)
	return r
}

func picture(category, subcategory, key, url string) Picture {
	return Picture{
		Category:    category,
		Subcategory: subcategory,
		KeyName:     key,
		ImageURL:    url,
		Status:      models.StatusActive,
	}
}

func TestUpsertCreatesThenOverwrites(t *testing.T) {
	repo := NewPictureRepository(testDB(t))

	first := picture("home", "hero", "background", "/uploads/images/a.jpg")
	require.NoError(t, repo.Upsert(&first))
	require.NotZero(t, first.ID)

	second := picture("home", "hero", "background", "/uploads/images/b.jpg")
	second.SortOrder = 3
	require.NoError(t, repo.Upsert(&second))

	// Same natural key resolves to the same row.
	assert.Equal(t, first.ID, second.ID)

	kept, err := repo.GetByID(first.ID)
	require.NoError(t, err)
	require.NotNil(t, kept)
	assert.Equal(t, "/uploads/images/b.jpg", kept.ImageURL)
	assert.Equal(t, 3, kept.SortOrder)
}

func TestUpsertDistinctSubcategoriesCoexist(t *testing.T) {
	repo := NewPictureRepository(testDB(t))

	a := picture("home", "hero", "background", "/a.jpg")
	b := picture("home", "footer", "background", "/b.jpg")
	require.NoError(t, repo.Upsert(&a))
	require.NoError(t, repo.Upsert(&b))
	assert.NotEqual(t, a.ID, b.ID)
}

func TestUpsertRejectsEmptyKey(t *testing.T) {
	repo := NewPictureRepository(testDB(t))

	missing := picture("", "hero", "background", "/a.jpg")
	assert.Error(t, repo.Upsert(&missing))

	missing = picture("home", "hero", "", "/a.jpg")
	assert.Error(t, repo.Upsert(&missing))
}

func TestBulkUpsertRollsBackOnBadElement(t *testing.T) {
	db := testDB(t)
	repo := NewPictureRepository(db)

	batch := []Picture{
		picture("home", "hero", "background", "/a.jpg"),
		picture("", "hero", "logo", "/b.jpg"), // no category
	}
	require.Error(t, repo.BulkUpsert(batch))

	var count int64
	require.NoError(t, db.Model(&Picture{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestGetByCategoryGroupsBySubcategory(t *testing.T) {
	repo := NewPictureRepository(testDB(t))

	for _, p := range []Picture{
		picture("home", "hero", "background", "/hero-bg.jpg"),
		picture("home", "hero", "logo", "/hero-logo.jpg"),
		picture("home", "", "favicon", "/favicon.ico"),
		picture("about", "team", "photo", "/team.jpg"),
	} {
		item := p
		require.NoError(t, repo.Upsert(&item))
	}

	organized, err := repo.GetByCategory("home")
	require.NoError(t, err)

	assert.Equal(t, "/hero-bg.jpg", organized["hero"]["background"])
	assert.Equal(t, "/hero-logo.jpg", organized["hero"]["logo"])
	// Empty subcategory lands under "default".
	assert.Equal(t, "/favicon.ico", organized["default"]["favicon"])
	assert.NotContains(t, organized, "team")
}

func TestGetStructured(t *testing.T) {
	repo := NewPictureRepository(testDB(t))

	for _, p := range []Picture{
		picture("home", "hero", "background", "/hero-bg.jpg"),
		picture("home", "", "favicon", "/favicon.ico"),
		picture("about", "team", "photo", "/team.jpg"),
	} {
		item := p
		require.NoError(t, repo.Upsert(&item))
	}

	structured, err := repo.GetStructured()
	require.NoError(t, err)

	hero, ok := structured["home"]["hero"].(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "/hero-bg.jpg", hero["background"])
	assert.Equal(t, "/favicon.ico", structured["home"]["favicon"])
	assert.Contains(t, structured, "about")
}

func TestGetCategoriesSkipsDeleted(t *testing.T) {
	db := testDB(t)
	repo := NewPictureRepository(db)

	active := picture("home", "hero", "background", "/a.jpg")
	require.NoError(t, repo.Upsert(&active))
	gone := picture("legacy", "old", "banner", "/old.jpg")
	require.NoError(t, repo.Upsert(&gone))
	require.NoError(t, repo.Delete(gone.ID))

	categories, err := repo.GetCategories()
	require.NoError(t, err)
	assert.Equal(t, []string{"home"}, categories)
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

func TestBulkEndpointValidatesBeforeWriting(t *testing.T) {
	db := testDB(t)
	r := testRouter(t, db)

	w, envelope := postJSON(t, r, "/api/v1/pictures?action=bulk", gin.H{
		"images": []gin.H{
			{"category": "home", "key_name": "bg", "image_url": "/a.jpg"},
			{"category": "home", "key_name": "", "image_url": "/b.jpg"},
		},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "MISSING_KEY_NAME", envelope.ErrorCode)
	assert.Contains(t, envelope.Message, "index 1")

	var count int64
	require.NoError(t, db.Model(&Picture{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestBulkEndpointInsertsBatch(t *testing.T) {
	db := testDB(t)
	r := testRouter(t, db)

	w, envelope := postJSON(t, r, "/api/v1/pictures?action=bulk", gin.H{
		"images": []gin.H{
			{"category": "home", "subcategory": "hero", "key_name": "bg", "image_url": "/a.jpg"},
			{"category": "home", "subcategory": "hero", "key_name": "logo", "image_url": "/b.jpg"},
		},
	})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, envelope.Success)

	var count int64
	require.NoError(t, db.Model(&Picture{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestIndexActionViews(t *testing.T) {
	db := testDB(t)
	r := testRouter(t, db)
	repo := NewPictureRepository(db)

	item := picture("home", "hero", "background", "/a.jpg")
	require.NoError(t, repo.Upsert(&item))

	for _, path := range []string{
		"/api/v1/pictures",
		"/api/v1/pictures?action=structured",
		"/api/v1/pictures?action=categories",
		"/api/v1/pictures?action=subcategories&category=home",
		"/api/v1/pictures?category=home",
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/pictures?action=bogus", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
