package handler

import (
	"errors"
	"net/http"

	"squadsite-backend/internal/domains/photo"
	"squadsite-backend/internal/shared/response"
	"squadsite-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

type PhotoHandler struct {
	service photo.Service
}

func NewPhotoHandler(svc photo.Service) *PhotoHandler {
	return &PhotoHandler{
		service: svc,
	}
}

// ========== LIST: GET /api/photos ==========
func (h *PhotoHandler) List(c *gin.Context) {
	photos, err := h.service.List(c.Request.Context())
	if err != nil {
		logger.Error("failed to fetch photos", err)
		response.InternalServerError(c, "Failed to fetch photos")
		return
	}

	response.Success(c, http.StatusOK, photos)
}

// ========== UPLOAD: POST /api/photos ==========
// Multipart form: one file under "photo", optional "caption" and
// "uploadedBy" text fields.
func (h *PhotoHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("photo")
	if err != nil {
		response.BadRequest(c, "No file uploaded")
		return
	}

	src, err := file.Open()
	if err != nil {
		logger.Error("failed to open uploaded file", err)
		response.InternalServerError(c, "Failed to upload photo")
		return
	}
	defer src.Close()

	created, err := h.service.Upload(c.Request.Context(), photo.UploadInput{
		OriginalName: file.Filename,
		ContentType:  file.Header.Get("Content-Type"),
		Size:         file.Size,
		Caption:      c.PostForm("caption"),
		UploadedBy:   c.PostForm("uploadedBy"),
		Content:      src,
	})
	if err != nil {
		switch {
		case errors.Is(err, photo.ErrNoFile),
			errors.Is(err, photo.ErrInvalidFile),
			errors.Is(err, photo.ErrFileTooLarge):
			response.BadRequest(c, err.Error())
		default:
			logger.Error("failed to upload photo", err)
			response.InternalServerError(c, "Failed to upload photo")
		}
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// ========== DELETE: DELETE /api/photos/:id ==========
func (h *PhotoHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, photo.ErrPhotoNotFound) {
			response.NotFound(c, "Photo not found")
			return
		}
		logger.Error("failed to delete photo", err)
		response.InternalServerError(c, "Failed to delete photo")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Photo deleted successfully"})
}
