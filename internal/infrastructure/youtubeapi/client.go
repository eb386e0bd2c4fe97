package youtubeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"squadsite-backend/internal/config"
	"squadsite-backend/internal/domains/youtube"
)

const (
	defaultBaseURL = "https://www.googleapis.com/youtube/v3"

	// maxResults caps how many of the latest videos are fetched per
	// request; the gallery shows at most six.
	maxResults = 6
)

// Client calls the YouTube Data API v3. It implements youtube.Fetcher.
type Client struct {
	apiKey     string
	channelID  string
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg config.YouTubeConfig) *Client {
	return &Client{
		apiKey:    cfg.APIKey,
		channelID: cfg.ChannelID,
		baseURL:   defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Configured reports whether both the API key and channel id are set.
func (c *Client) Configured() bool {
	return c.apiKey != "" && c.channelID != ""
}

type searchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			PublishedAt string `json:"publishedAt"`
			Thumbnails  struct {
				Medium struct {
					URL string `json:"url"`
				} `json:"medium"`
			} `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
}

type videosResponse struct {
	Items []struct {
		ID             string `json:"id"`
		ContentDetails struct {
			Duration string `json:"duration"`
		} `json:"contentDetails"`
		Statistics struct {
			ViewCount string `json:"viewCount"`
		} `json:"statistics"`
	} `json:"items"`
}

type channelsResponse struct {
	Items []struct {
		Snippet struct {
			Title       string `json:"title"`
			Description string `json:"description"`
		} `json:"snippet"`
		Statistics struct {
			SubscriberCount string `json:"subscriberCount"`
			VideoCount      string `json:"videoCount"`
			ViewCount       string `json:"viewCount"`
		} `json:"statistics"`
	} `json:"items"`
}

// LatestVideos fetches the channel's most recent uploads: one search
// call for the listing, one videos call for duration and view count.
func (c *Client) LatestVideos(ctx context.Context) ([]youtube.UpsertInput, error) {
	var search searchResponse
	err := c.getJSON(ctx, "/search", url.Values{
		"channelId":  {c.channelID},
		"part":       {"snippet"},
		"order":      {"date"},
		"maxResults": {strconv.Itoa(maxResults)},
		"type":       {"video"},
	}, &search)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(search.Items))
	for _, item := range search.Items {
		ids = append(ids, item.ID.VideoID)
	}

	details := make(map[string]struct{ duration, viewCount string }, len(ids))
	if len(ids) > 0 {
		var vids videosResponse
		err = c.getJSON(ctx, "/videos", url.Values{
			"id":   {strings.Join(ids, ",")},
			"part": {"contentDetails,statistics"},
		}, &vids)
		if err != nil {
			return nil, err
		}
		for _, item := range vids.Items {
			details[item.ID] = struct{ duration, viewCount string }{
				item.ContentDetails.Duration,
				item.Statistics.ViewCount,
			}
		}
	}

	videos := make([]youtube.UpsertInput, 0, len(search.Items))
	for _, item := range search.Items {
		duration, viewCount := "PT0S", "0"
		if d, ok := details[item.ID.VideoID]; ok {
			if d.duration != "" {
				duration = d.duration
			}
			if d.viewCount != "" {
				viewCount = d.viewCount
			}
		}

		videos = append(videos, youtube.UpsertInput{
			ID:          item.ID.VideoID,
			Title:       item.Snippet.Title,
			Description: item.Snippet.Description,
			Thumbnail:   item.Snippet.Thumbnails.Medium.URL,
			Duration:    duration,
			ViewCount:   viewCount,
			PublishedAt: item.Snippet.PublishedAt,
		})
	}

	return videos, nil
}

// ChannelStats fetches the channel snippet and statistics.
func (c *Client) ChannelStats(ctx context.Context) (*youtube.ChannelStats, error) {
	var channels channelsResponse
	err := c.getJSON(ctx, "/channels", url.Values{
		"id":   {c.channelID},
		"part": {"snippet,statistics"},
	}, &channels)
	if err != nil {
		return nil, err
	}

	if len(channels.Items) == 0 {
		return nil, fmt.Errorf("channel %s not found", c.channelID)
	}

	item := channels.Items[0]
	subscribers, err := strconv.ParseInt(item.Statistics.SubscriberCount, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid subscriber count: %w", err)
	}
	videoCount, err := strconv.ParseInt(item.Statistics.VideoCount, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid video count: %w", err)
	}
	views, err := strconv.ParseInt(item.Statistics.ViewCount, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid view count: %w", err)
	}

	return &youtube.ChannelStats{
		Title:       item.Snippet.Title,
		Description: item.Snippet.Description,
		Subscribers: subscribers,
		Videos:      videoCount,
		Views:       views,
	}, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	query.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("youtube api returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
