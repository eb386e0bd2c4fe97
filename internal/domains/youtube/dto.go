package youtube

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// UpsertInput carries one fetched video into the store. The id comes
// from the external API, so unlike the other entities it is part of the
// input and is validated here.
type UpsertInput struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
	Duration    string `json:"duration"`
	ViewCount   string `json:"viewCount"`
	PublishedAt string `json:"publishedAt"`
}

func (r UpsertInput) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID, validation.Required.Error("video id is required")),
		validation.Field(&r.Title, validation.Required.Error("title is required")),
		validation.Field(&r.Thumbnail, validation.Required.Error("thumbnail is required")),
		validation.Field(&r.Duration, validation.Required.Error("duration is required")),
		validation.Field(&r.ViewCount, validation.Required.Error("view count is required")),
		validation.Field(&r.PublishedAt, validation.Required.Error("publish date is required")),
	)
}

// ChannelStats is the raw statistics payload a Fetcher returns for the
// channel; the service formats the counts for display.
type ChannelStats struct {
	Title       string
	Description string
	Subscribers int64
	Videos      int64
	Views       int64
}
