package repository

import (
	"context"
	"testing"
	"time"

	"squadsite-backend/internal/domains/youtube"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func upsertVideo(t *testing.T, r *MemoryRepository, id, title string) *youtube.Video {
	t.Helper()

	v, err := r.Upsert(context.Background(), youtube.UpsertInput{
		ID:          id,
		Title:       title,
		Thumbnail:   "https://i.ytimg.com/" + id + ".jpg",
		Duration:    "PT4M13S",
		ViewCount:   "100",
		PublishedAt: "2024-01-01T00:00:00Z",
	})
	require.NoError(t, err)
	return v
}

func TestUpsertNewVideo(t *testing.T) {
	r := NewMemoryRepository()

	v := upsertVideo(t, r, "vid1", "First")
	assert.Equal(t, "vid1", v.ID)
	assert.False(t, v.CreatedAt.IsZero())

	got, err := r.Get(context.Background(), "vid1")
	require.NoError(t, err)
	assert.Equal(t, "First", got.Title)
}

func TestUpsertExistingPreservesCreatedAt(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	original := upsertVideo(t, r, "vid1", "First")
	time.Sleep(2 * time.Millisecond)

	replaced, err := r.Upsert(ctx, youtube.UpsertInput{
		ID:          "vid1",
		Title:       "First (remastered)",
		Description: "new description",
		Thumbnail:   "https://i.ytimg.com/new.jpg",
		Duration:    "PT5M",
		ViewCount:   "9000",
		PublishedAt: "2024-02-01T00:00:00Z",
	})
	require.NoError(t, err)

	// All fields replaced, creation time kept.
	assert.Equal(t, original.CreatedAt, replaced.CreatedAt)
	assert.Equal(t, "First (remastered)", replaced.Title)
	assert.Equal(t, "new description", replaced.Description)
	assert.Equal(t, "9000", replaced.ViewCount)

	videos, err := r.List(ctx)
	require.NoError(t, err)
	assert.Len(t, videos, 1)
}

func TestListNewestFirst(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	upsertVideo(t, r, "old", "Old")
	time.Sleep(2 * time.Millisecond)
	upsertVideo(t, r, "mid", "Mid")
	time.Sleep(2 * time.Millisecond)
	upsertVideo(t, r, "new", "New")

	videos, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, videos, 3)

	assert.Equal(t, "new", videos[0].ID)
	assert.Equal(t, "mid", videos[1].ID)
	assert.Equal(t, "old", videos[2].ID)
}

func TestDeleteIsIdempotent(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	upsertVideo(t, r, "vid1", "First")

	require.NoError(t, r.Delete(ctx, "vid1"))
	_, err := r.Get(ctx, "vid1")
	assert.ErrorIs(t, err, youtube.ErrVideoNotFound)

	assert.NoError(t, r.Delete(ctx, "vid1"))
}
