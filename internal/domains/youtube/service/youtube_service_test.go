package service

import (
	"context"
	"errors"
	"testing"

	"squadsite-backend/internal/domains/youtube"
	"squadsite-backend/internal/domains/youtube/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubFetcher scripts the external API for tests.
type stubFetcher struct {
	configured bool
	videos     []youtube.UpsertInput
	stats      *youtube.ChannelStats
	err        error
}

func (f *stubFetcher) Configured() bool {
	return f.configured
}

func (f *stubFetcher) LatestVideos(ctx context.Context) ([]youtube.UpsertInput, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.videos, nil
}

func (f *stubFetcher) ChannelStats(ctx context.Context) (*youtube.ChannelStats, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.stats, nil
}

func cacheVideo(t *testing.T, repo youtube.Repository, id string) {
	t.Helper()

	_, err := repo.Upsert(context.Background(), youtube.UpsertInput{
		ID:          id,
		Title:       "cached " + id,
		Thumbnail:   "https://i.ytimg.com/" + id + ".jpg",
		Duration:    "PT1M",
		ViewCount:   "10",
		PublishedAt: "2023-06-01T00:00:00Z",
	})
	require.NoError(t, err)
}

func TestListVideosUnconfiguredServesCache(t *testing.T) {
	repo := repository.NewMemoryRepository()
	cacheVideo(t, repo, "cached1")

	svc := NewYoutubeService(repo, &stubFetcher{configured: false})

	videos, err := svc.ListVideos(context.Background())
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, "cached1", videos[0].ID)
}

func TestListVideosFetchFailureServesCache(t *testing.T) {
	repo := repository.NewMemoryRepository()
	cacheVideo(t, repo, "cached1")

	svc := NewYoutubeService(repo, &stubFetcher{
		configured: true,
		err:        errors.New("upstream down"),
	})

	videos, err := svc.ListVideos(context.Background())
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, "cached1", videos[0].ID)
}

func TestListVideosLiveFetchUpsertsIntoCache(t *testing.T) {
	repo := repository.NewMemoryRepository()
	ctx := context.Background()

	svc := NewYoutubeService(repo, &stubFetcher{
		configured: true,
		videos: []youtube.UpsertInput{
			{ID: "live1", Title: "Live One", Thumbnail: "t1", Duration: "PT2M", ViewCount: "5", PublishedAt: "2024-01-01T00:00:00Z"},
			{ID: "live2", Title: "Live Two", Thumbnail: "t2", Duration: "PT3M", ViewCount: "7", PublishedAt: "2024-01-02T00:00:00Z"},
		},
	})

	videos, err := svc.ListVideos(ctx)
	require.NoError(t, err)
	require.Len(t, videos, 2)
	assert.Equal(t, "live1", videos[0].ID)

	// Fetched videos are now cached for later degraded serving.
	cached, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, cached, 2)
}

func TestChannelInfoUnconfiguredServesDefault(t *testing.T) {
	svc := NewYoutubeService(repository.NewMemoryRepository(), &stubFetcher{configured: false})

	info, err := svc.ChannelInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DefaultChannelInfo, *info)
	assert.Equal(t, "Squad Adventures", info.Name)
	assert.Equal(t, "15.2K", info.Subscribers)
}

func TestChannelInfoFetchFailureServesDefault(t *testing.T) {
	svc := NewYoutubeService(repository.NewMemoryRepository(), &stubFetcher{
		configured: true,
		err:        errors.New("upstream down"),
	})

	info, err := svc.ChannelInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DefaultChannelInfo, *info)
}

func TestChannelInfoFormatsLiveCounts(t *testing.T) {
	svc := NewYoutubeService(repository.NewMemoryRepository(), &stubFetcher{
		configured: true,
		stats: &youtube.ChannelStats{
			Title:       "Squad Adventures",
			Description: "Weekly videos",
			Subscribers: 15234,
			Videos:      47,
			Views:       1200000,
		},
	})

	info, err := svc.ChannelInfo(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "15,234", info.Subscribers)
	assert.Equal(t, "47", info.Videos)
	assert.Equal(t, "1,200,000", info.Views)
}
