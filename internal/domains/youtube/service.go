package youtube

import "context"

// Service serves the youtube endpoints. Neither method ever hard-fails:
// live data degrades to cached videos or the default channel payload.
type Service interface {
	ListVideos(ctx context.Context) ([]Video, error)
	ChannelInfo(ctx context.Context) (*ChannelInfo, error)
}

// Fetcher retrieves live data from the external API. Configured
// reports whether credentials are present; when it is false the other
// methods are never called.
type Fetcher interface {
	Configured() bool
	LatestVideos(ctx context.Context) ([]UpsertInput, error)
	ChannelStats(ctx context.Context) (*ChannelStats, error)
}
