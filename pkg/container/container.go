package container

import (
	"context"
	"fmt"
	"log"

	"squadsite-backend/internal/config"
	"squadsite-backend/internal/infrastructure/storage"
	"squadsite-backend/internal/infrastructure/youtubeapi"
	"squadsite-backend/internal/seed"

	"squadsite-backend/internal/domains/friend"
	friendHandler "squadsite-backend/internal/domains/friend/handler"
	friendRepo "squadsite-backend/internal/domains/friend/repository"
	friendService "squadsite-backend/internal/domains/friend/service"

	"squadsite-backend/internal/domains/memory"
	memoryHandler "squadsite-backend/internal/domains/memory/handler"
	memoryRepo "squadsite-backend/internal/domains/memory/repository"
	memoryService "squadsite-backend/internal/domains/memory/service"

	"squadsite-backend/internal/domains/photo"
	photoHandler "squadsite-backend/internal/domains/photo/handler"
	photoRepo "squadsite-backend/internal/domains/photo/repository"
	photoService "squadsite-backend/internal/domains/photo/service"

	"squadsite-backend/internal/domains/youtube"
	youtubeHandler "squadsite-backend/internal/domains/youtube/handler"
	youtubeRepo "squadsite-backend/internal/domains/youtube/repository"
	youtubeService "squadsite-backend/internal/domains/youtube/service"
)

// Container holds every dependency of the application, wired once at
// startup: config, infrastructure, repositories, services, handlers.
// All state lives here; there are no package-level singletons.
type Container struct {
	Config *config.Config

	// ========== Infrastructure ==========
	Files         *storage.Local
	YouTubeClient *youtubeapi.Client

	// ========== Repositories ==========
	PhotoRepo   photo.Repository
	FriendRepo  friend.Repository
	MemoryRepo  memory.Repository
	YoutubeRepo youtube.Repository

	// ========== Services ==========
	PhotoService   photo.Service
	FriendService  friend.Service
	MemoryService  memory.Service
	YoutubeService youtube.Service

	// ========== Handlers ==========
	PhotoHandler   *photoHandler.PhotoHandler
	FriendHandler  *friendHandler.FriendHandler
	MemoryHandler  *memoryHandler.MemoryHandler
	YoutubeHandler *youtubeHandler.YoutubeHandler
}

// NewContainer builds the dependency graph in order: config first, then
// infrastructure, repositories, services, handlers, and finally the
// one-shot sample-data seeding.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	// ========== Infrastructure ==========
	c.Files = storage.NewLocal(cfg.Upload.Dir)
	c.YouTubeClient = youtubeapi.NewClient(cfg.YouTube)

	// ========== Repositories ==========
	c.PhotoRepo = photoRepo.NewMemoryRepository()
	c.FriendRepo = friendRepo.NewMemoryRepository()
	c.MemoryRepo = memoryRepo.NewMemoryRepository()
	c.YoutubeRepo = youtubeRepo.NewMemoryRepository()

	// ========== Services ==========
	c.PhotoService = photoService.NewPhotoService(c.PhotoRepo, c.Files, cfg.Upload.MaxSize)
	c.FriendService = friendService.NewFriendService(c.FriendRepo)
	c.MemoryService = memoryService.NewMemoryService(c.MemoryRepo)
	c.YoutubeService = youtubeService.NewYoutubeService(c.YoutubeRepo, c.YouTubeClient)

	// ========== Handlers ==========
	c.PhotoHandler = photoHandler.NewPhotoHandler(c.PhotoService)
	c.FriendHandler = friendHandler.NewFriendHandler(c.FriendService)
	c.MemoryHandler = memoryHandler.NewMemoryHandler(c.MemoryService)
	c.YoutubeHandler = youtubeHandler.NewYoutubeHandler(c.YoutubeService)

	if err := seed.Run(context.Background(), c.FriendRepo, c.MemoryRepo); err != nil {
		return nil, fmt.Errorf("failed to seed sample data: %w", err)
	}

	return c, nil
}

// Cleanup releases container resources on shutdown. The store is
// in-memory and the file storage holds no handles, so there is nothing
// to close today; the hook exists so shutdown order stays in one place.
func (c *Container) Cleanup() {
	log.Println("🧹 Container cleanup complete")
}
