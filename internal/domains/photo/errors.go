package photo

import "errors"

var (
	// ErrPhotoNotFound is returned when no photo matches the given id.
	ErrPhotoNotFound = errors.New("photo not found")

	// ErrNoFile is returned when the multipart request carries no file.
	ErrNoFile = errors.New("no file uploaded")

	// ErrInvalidFile is returned when either the file extension or the
	// declared MIME type is not an accepted image format.
	ErrInvalidFile = errors.New("only image files are allowed")

	// ErrFileTooLarge is returned when the file exceeds the upload quota.
	ErrFileTooLarge = errors.New("file exceeds the maximum upload size")
)
