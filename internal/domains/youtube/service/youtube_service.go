package service

import (
	"context"

	"squadsite-backend/internal/domains/youtube"
	"squadsite-backend/internal/shared/utils"
	"squadsite-backend/pkg/logger"
)

// DefaultChannelInfo is served whenever live channel statistics are
// unavailable: credentials missing, upstream down, or a bad payload.
var DefaultChannelInfo = youtube.ChannelInfo{
	Name:        "Squad Adventures",
	Description: "Join us on our crazy adventures, cooking experiments, and friendship moments. New videos every week!",
	Subscribers: "15.2K",
	Videos:      "47",
	Views:       "1.2M",
}

type YoutubeService struct {
	repo    youtube.Repository
	fetcher youtube.Fetcher
}

func NewYoutubeService(repo youtube.Repository, fetcher youtube.Fetcher) *YoutubeService {
	return &YoutubeService{
		repo:    repo,
		fetcher: fetcher,
	}
}

// ListVideos returns the latest channel videos. Live results are
// upserted into the cache before being returned, so after one
// successful fetch a broken upstream keeps serving real (stale) data.
func (s *YoutubeService) ListVideos(ctx context.Context) ([]youtube.Video, error) {
	if !s.fetcher.Configured() {
		return s.repo.List(ctx)
	}

	fetched, err := s.fetcher.LatestVideos(ctx)
	if err != nil {
		logger.Error("youtube fetch failed, serving cached videos", err)
		return s.repo.List(ctx)
	}

	videos := make([]youtube.Video, 0, len(fetched))
	for _, input := range fetched {
		if err := input.Validate(); err != nil {
			logger.Error("skipping malformed fetched video", err)
			continue
		}

		v, err := s.repo.Upsert(ctx, input)
		if err != nil {
			logger.Error("failed to cache fetched video", err)
			continue
		}
		videos = append(videos, *v)
	}

	return videos, nil
}

// ChannelInfo returns live channel statistics, or the fixed default
// payload when they cannot be fetched.
func (s *YoutubeService) ChannelInfo(ctx context.Context) (*youtube.ChannelInfo, error) {
	if !s.fetcher.Configured() {
		info := DefaultChannelInfo
		return &info, nil
	}

	stats, err := s.fetcher.ChannelStats(ctx)
	if err != nil {
		logger.Error("youtube channel fetch failed, serving default info", err)
		info := DefaultChannelInfo
		return &info, nil
	}

	return &youtube.ChannelInfo{
		Name:        stats.Title,
		Description: stats.Description,
		Subscribers: utils.FormatThousands(stats.Subscribers),
		Videos:      utils.FormatThousands(stats.Videos),
		Views:       utils.FormatThousands(stats.Views),
	}, nil
}
