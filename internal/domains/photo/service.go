package photo

import "context"

// Service is the photo gallery business logic: listing, the upload
// pipeline, and record-plus-file deletion.
type Service interface {
	List(ctx context.Context) ([]Photo, error)
	Upload(ctx context.Context, input UploadInput) (*Photo, error)
	Delete(ctx context.Context, id string) error
}
