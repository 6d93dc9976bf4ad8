package upload

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abarhail/abarhail-api/pkg/responses"
)

func uploadRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	RegisterUploadRoutes(r.Group("/api/v1"), testConfig(t))
	return r
}

func multipartBody(t *testing.T, field string, files map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, content := range files {
		fw, err := w.CreateFormFile(field, name)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestUploadEndpointSingleFile(t *testing.T) {
	r := uploadRouter(t)

	body, contentType := multipartBody(t, "image", map[string][]byte{"photo.png": pngBytes(t)})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/upload/images", body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var envelope responses.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, "File uploaded successfully", envelope.Message)
}

func TestUploadEndpointNoFile(t *testing.T) {
	r := uploadRouter(t)

	body, contentType := multipartBody(t, "unrelated", map[string][]byte{"x.png": pngBytes(t)})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/upload/images", body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var envelope responses.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "NO_FILE_UPLOADED", envelope.ErrorCode)
}

func TestUploadEndpointMultiPartialSuccess(t *testing.T) {
	r := uploadRouter(t)

	body, contentType := multipartBody(t, "images", map[string][]byte{
		"good.png": pngBytes(t),
		"bad.txt":  []byte("not an image"),
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/upload/images", body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var envelope responses.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "1 of 2 files uploaded successfully", envelope.Message)
}

func TestUploadEndpointAllFailed(t *testing.T) {
	r := uploadRouter(t)

	body, contentType := multipartBody(t, "images", map[string][]byte{
		"a.txt": []byte("nope"),
		"b.exe": []byte("nope"),
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/upload/images", body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var envelope responses.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "ALL_UPLOADS_FAILED", envelope.ErrorCode)
}

func TestDeleteEndpointRequiresFilename(t *testing.T) {
	r := uploadRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/upload/images", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var envelope responses.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "MISSING_FILENAME", envelope.ErrorCode)
}
