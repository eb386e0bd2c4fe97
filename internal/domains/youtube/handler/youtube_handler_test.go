package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"squadsite-backend/internal/domains/youtube"
	"squadsite-backend/internal/domains/youtube/repository"
	"squadsite-backend/internal/domains/youtube/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unconfiguredFetcher stands in for a deployment without API credentials.
type unconfiguredFetcher struct{}

func (unconfiguredFetcher) Configured() bool { return false }
func (unconfiguredFetcher) LatestVideos(_ context.Context) ([]youtube.UpsertInput, error) {
	return nil, nil
}
func (unconfiguredFetcher) ChannelStats(_ context.Context) (*youtube.ChannelStats, error) {
	return nil, nil
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := service.NewYoutubeService(repository.NewMemoryRepository(), unconfiguredFetcher{})
	h := NewYoutubeHandler(svc)

	r := gin.New()
	r.GET("/api/youtube/videos", h.Videos)
	r.GET("/api/youtube/channel", h.Channel)
	return r
}

func TestVideosUnconfiguredReturnsEmptyCache(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/youtube/videos", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool            `json:"success"`
		Data    []youtube.Video `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Empty(t, resp.Data)
}

func TestChannelUnconfiguredReturnsDefault(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/youtube/channel", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data youtube.ChannelInfo `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Squad Adventures", resp.Data.Name)
	assert.Equal(t, "15.2K", resp.Data.Subscribers)
}
