package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"squadsite-backend/internal/domains/photo/repository"
	"squadsite-backend/internal/domains/photo/service"
	"squadsite-backend/internal/infrastructure/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepository()
	svc := service.NewPhotoService(repo, storage.NewLocal(t.TempDir()), 10<<20)
	h := NewPhotoHandler(svc)

	r := gin.New()
	r.GET("/api/photos", h.List)
	r.POST("/api/photos", h.Upload)
	r.DELETE("/api/photos/:id", h.Delete)
	return r
}

func multipartPhoto(t *testing.T, filename, contentType string, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="photo"; filename="%s"`, filename))
	header.Set("Content-Type", contentType)

	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte("fake image bytes"))
	require.NoError(t, err)

	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())

	return body, w.FormDataContentType()
}

func TestUploadPhoto(t *testing.T) {
	r := newTestRouter(t)

	body, contentType := multipartPhoto(t, "beach.jpg", "image/jpeg", map[string]string{
		"caption":    "best day",
		"uploadedBy": "Emma",
	})

	req := httptest.NewRequest(http.MethodPost, "/api/photos", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			ID         string `json:"id"`
			Caption    string `json:"caption"`
			UploadedBy string `json:"uploadedBy"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Data.ID)
	assert.Equal(t, "best day", resp.Data.Caption)
	assert.Equal(t, "Emma", resp.Data.UploadedBy)
}

func TestUploadWithoutFile(t *testing.T) {
	r := newTestRouter(t)

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	require.NoError(t, w.WriteField("caption", "no file here"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/photos", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadDisallowedExtension(t *testing.T) {
	r := newTestRouter(t)

	body, contentType := multipartPhoto(t, "notes.txt", "text/plain", nil)

	req := httptest.NewRequest(http.MethodPost, "/api/photos", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteMissingPhoto(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/photos/missing-id", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListPhotos(t *testing.T) {
	r := newTestRouter(t)

	body, contentType := multipartPhoto(t, "one.png", "image/png", nil)
	req := httptest.NewRequest(http.MethodPost, "/api/photos", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/photos", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []struct {
			Filename string `json:"filename"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 1)
}
