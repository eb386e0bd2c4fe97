package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// Clear any ambient credentials so the defaults are observable.
	for _, key := range []string{"YOUTUBE_API_KEY", "YOUTUBE_API", "API_KEY", "YOUTUBE_CHANNEL_ID", "CHANNEL_ID", "APP_ENV", "APP_PORT", "UPLOAD_DIR"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "uploads", cfg.Upload.Dir)
	assert.Equal(t, int64(10<<20), cfg.Upload.MaxSize)
	assert.Empty(t, cfg.YouTube.APIKey)
	assert.Empty(t, cfg.YouTube.ChannelID)
}

func TestLoadYouTubeFirstNonEmptyWins(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "")
	t.Setenv("YOUTUBE_CHANNEL_ID", "")
	t.Setenv("YOUTUBE_API", "secondary-key")
	t.Setenv("API_KEY", "tertiary-key")
	t.Setenv("CHANNEL_ID", "UCfallback")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "secondary-key", cfg.YouTube.APIKey)
	assert.Equal(t, "UCfallback", cfg.YouTube.ChannelID)

	t.Setenv("YOUTUBE_API_KEY", "primary-key")
	t.Setenv("YOUTUBE_CHANNEL_ID", "UCprimary")

	cfg, err = Load()
	require.NoError(t, err)

	assert.Equal(t, "primary-key", cfg.YouTube.APIKey)
	assert.Equal(t, "UCprimary", cfg.YouTube.ChannelID)
}

func TestGetEnvFirstAllEmpty(t *testing.T) {
	assert.Empty(t, getEnvFirst("SQUADSITE_TEST_UNSET_A", "SQUADSITE_TEST_UNSET_B"))
}
