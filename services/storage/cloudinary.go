package storage

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryMediaService implements MediaService using Cloudinary.
type CloudinaryMediaService struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryMediaService creates a new CloudinaryMediaService instance.
func NewCloudinaryMediaService(cld *cloudinary.Cloudinary) MediaService {
	return &CloudinaryMediaService{cld: cld}
}

// Upload uploads a file to Cloudinary into the specified folder and returns
// its delivery URL and permanent identifier.
func (s *CloudinaryMediaService) Upload(ctx context.Context, localFilePath, destFolder string) (*UploadResult, error) {
	uploadParams := uploader.UploadParams{
		Folder: destFolder,
	}
	result, err := s.cld.Upload.Upload(ctx, localFilePath, uploadParams)
	if err != nil {
		return nil, fmt.Errorf("CloudinaryMediaService: failed to upload file: %w", err)
	}
	if result.PublicID == "" {
		return nil, fmt.Errorf("CloudinaryMediaService: no public ID returned")
	}
	return &UploadResult{URL: result.SecureURL, PublicID: result.PublicID}, nil
}

// Destroy deletes a file from Cloudinary given its public ID.
func (s *CloudinaryMediaService) Destroy(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("CloudinaryMediaService: failed to destroy file: %w", err)
	}
	return nil
}
