package handler

import (
	"net/http"

	"squadsite-backend/internal/domains/youtube"
	"squadsite-backend/internal/shared/response"
	"squadsite-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

type YoutubeHandler struct {
	service youtube.Service
}

func NewYoutubeHandler(svc youtube.Service) *YoutubeHandler {
	return &YoutubeHandler{
		service: svc,
	}
}

// ========== VIDEOS: GET /api/youtube/videos ==========
// Live data when configured, cached data otherwise. The service masks
// upstream failures, so errors here are store failures only.
func (h *YoutubeHandler) Videos(c *gin.Context) {
	videos, err := h.service.ListVideos(c.Request.Context())
	if err != nil {
		logger.Error("failed to list videos", err)
		response.InternalServerError(c, "Failed to fetch videos")
		return
	}

	response.Success(c, http.StatusOK, videos)
}

// ========== CHANNEL: GET /api/youtube/channel ==========
func (h *YoutubeHandler) Channel(c *gin.Context) {
	info, err := h.service.ChannelInfo(c.Request.Context())
	if err != nil {
		logger.Error("failed to fetch channel info", err)
		response.InternalServerError(c, "Failed to fetch channel info")
		return
	}

	response.Success(c, http.StatusOK, info)
}
