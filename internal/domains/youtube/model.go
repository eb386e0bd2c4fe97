package youtube

import (
	"time"
)

// Video is one cached channel video. ID is the external YouTube video
// id, not a server-generated key. Duration is the raw ISO-8601 value
// ("PT4M13S") and ViewCount the raw decimal string, exactly as the API
// reports them.
type Video struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Thumbnail   string    `json:"thumbnail"`
	Duration    string    `json:"duration"`
	ViewCount   string    `json:"viewCount"`
	PublishedAt string    `json:"publishedAt"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ChannelInfo is the display payload for the channel banner. Counts are
// pre-formatted strings because the fallback values are approximations
// like "15.2K".
type ChannelInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Subscribers string `json:"subscribers"`
	Videos      string `json:"videos"`
	Views       string `json:"views"`
}
