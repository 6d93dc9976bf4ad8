package responses

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(t *testing.T, fn func(c *gin.Context)) (*httptest.ResponseRecorder, Envelope) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	fn(c)

	var envelope Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return w, envelope
}

func TestSendSuccess(t *testing.T) {
	w, envelope := record(t, func(c *gin.Context) {
		SendSuccess(c, http.StatusCreated, "Created", gin.H{"id": 1})
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, envelope.Success)
	assert.Equal(t, "Created", envelope.Message)
	assert.Empty(t, envelope.ErrorCode)
	assert.NotNil(t, envelope.Data)

	_, err := time.Parse(time.RFC3339, envelope.Timestamp)
	assert.NoError(t, err)
}

func TestSendErrorCarriesCodeAndNullData(t *testing.T) {
	w, envelope := record(t, func(c *gin.Context) {
		SendError(c, http.StatusNotFound, "News not found", "NEWS_NOT_FOUND")
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, envelope.Success)
	assert.Equal(t, "NEWS_NOT_FOUND", envelope.ErrorCode)
	assert.Nil(t, envelope.Data)
}

func TestSendErrorOmitsErrorCodeKeyOnSuccess(t *testing.T) {
	w, _ := record(t, func(c *gin.Context) {
		SendSuccess(c, http.StatusOK, "ok", nil)
	})
	assert.NotContains(t, w.Body.String(), "error_code")
}

func paginationOf(t *testing.T, total int64, page, limit int) Pagination {
	t.Helper()
	_, envelope := record(t, func(c *gin.Context) {
		SendPaginated(c, "", []string{}, total, page, limit)
	})

	raw, err := json.Marshal(envelope.Data)
	require.NoError(t, err)
	var data PaginatedData
	require.NoError(t, json.Unmarshal(raw, &data))
	return data.Pagination
}

func TestPaginationMath(t *testing.T) {
	// 45 items at 20 per page is 3 pages.
	p := paginationOf(t, 45, 1, 20)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, int64(45), p.TotalItems)
	assert.True(t, p.HasNext)
	assert.False(t, p.HasPrev)

	p = paginationOf(t, 45, 3, 20)
	assert.False(t, p.HasNext)
	assert.True(t, p.HasPrev)

	// An exact multiple does not add a trailing empty page.
	p = paginationOf(t, 40, 2, 20)
	assert.Equal(t, 2, p.TotalPages)
	assert.False(t, p.HasNext)

	// Empty result set.
	p = paginationOf(t, 0, 1, 20)
	assert.Equal(t, 0, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)
}
