package main

import (
	"net/http"
	"time"

	"squadsite-backend/internal/shared/middleware"
	"squadsite-backend/internal/shared/response"
	"squadsite-backend/pkg/container"

	"github.com/gin-gonic/gin"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	api := router.Group("/api")
	{
		// Health check
		api.GET("/health", healthCheckHandler(c))

		setupPhotoRoutes(api, c)
		setupFriendRoutes(api, c)
		setupYoutubeRoutes(api, c)
		setupMemoryRoutes(api, c)
	}

	// Uploaded files, served with the open CORS headers applied above.
	router.GET("/uploads/:filename", serveUploadHandler(c))

	return router
}

// ========================================
// PHOTO ROUTES
// ========================================
func setupPhotoRoutes(api *gin.RouterGroup, c *container.Container) {
	photos := api.Group("/photos")
	{
		photos.GET("", c.PhotoHandler.List)
		photos.POST("", c.PhotoHandler.Upload)
		photos.DELETE("/:id", c.PhotoHandler.Delete)
	}
}

// ========================================
// FRIEND ROUTES
// ========================================
func setupFriendRoutes(api *gin.RouterGroup, c *container.Container) {
	friends := api.Group("/friends")
	{
		friends.GET("", c.FriendHandler.List)
		friends.POST("", c.FriendHandler.Create)
		friends.PUT("/:id", c.FriendHandler.Update)
	}
}

// ========================================
// YOUTUBE ROUTES
// ========================================
func setupYoutubeRoutes(api *gin.RouterGroup, c *container.Container) {
	yt := api.Group("/youtube")
	{
		yt.GET("/videos", c.YoutubeHandler.Videos)
		yt.GET("/channel", c.YoutubeHandler.Channel)
	}
}

// ========================================
// MEMORY ROUTES
// ========================================
func setupMemoryRoutes(api *gin.RouterGroup, c *container.Container) {
	memories := api.Group("/memories")
	{
		memories.GET("", c.MemoryHandler.List)
		memories.POST("", c.MemoryHandler.Create)
		memories.PUT("/:id", c.MemoryHandler.Update)
	}
}

// ========================================
// UPLOADED FILE HANDLER
// ========================================
func serveUploadHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		filename := c.Param("filename")

		if !appCtx.Files.Exists(filename) {
			response.NotFound(c, "File not found")
			return
		}

		c.File(appCtx.Files.Path(filename))
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	startedAt := time.Now()

	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "ok",
			"timestamp":   time.Now().Format(time.RFC3339),
			"version":     appCtx.Config.App.Version,
			"environment": appCtx.Config.App.Environment,
			"uptime":      time.Since(startedAt).String(),
		})
	}
}
