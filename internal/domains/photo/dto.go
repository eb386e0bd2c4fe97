package photo

import (
	"io"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// UploadInput carries one multipart file plus its optional text fields
// into the upload pipeline. Content is read exactly once.
type UploadInput struct {
	OriginalName string
	ContentType  string
	Size         int64
	Caption      string
	UploadedBy   string
	Content      io.Reader
}

// CreateInput is the validated record written to the store after the
// file itself has been saved.
type CreateInput struct {
	Filename     string `json:"filename"`
	OriginalName string `json:"originalName"`
	Caption      string `json:"caption"`
	UploadedBy   string `json:"uploadedBy"`
}

func (r CreateInput) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Filename, validation.Required.Error("filename is required")),
		validation.Field(&r.OriginalName, validation.Required.Error("original name is required")),
		validation.Field(&r.UploadedBy, validation.Required.Error("uploader name is required")),
	)
}
