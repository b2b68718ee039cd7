package storage

import "context"

// UploadResult carries the media host's references for an uploaded file.
type UploadResult struct {
	URL      string // Delivery URL (secure)
	PublicID string // Permanent identifier used for later destruction
}

// MediaService abstracts the external image-hosting provider.
type MediaService interface {
	// Upload sends the file at localFilePath to the host under destFolder.
	Upload(ctx context.Context, localFilePath, destFolder string) (*UploadResult, error)
	// Destroy removes the remote asset with the given public ID.
	Destroy(ctx context.Context, publicID string) error
}
