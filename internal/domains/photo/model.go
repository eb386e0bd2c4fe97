package photo

import (
	"time"
)

// Photo is one uploaded gallery image. The stored file lives in the
// upload directory under Filename; OriginalName is kept for display only.
type Photo struct {
	ID           string    `json:"id"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"originalName"`
	Caption      string    `json:"caption,omitempty"`
	UploadedBy   string    `json:"uploadedBy"`
	CreatedAt    time.Time `json:"createdAt"`
}
