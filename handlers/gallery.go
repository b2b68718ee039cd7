// File: handlers/gallery.go
package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	galleryRepo "maggamhub/database/repository/gallery"
	"maggamhub/models"
	"maggamhub/services/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GalleryHandler exposes the gallery upload, listing and delete endpoints.
type GalleryHandler struct {
	Repo     galleryRepo.GalleryRepository
	MediaSvc storage.MediaService
	Folder   string
}

// NewGalleryHandler creates a new GalleryHandler uploading into destFolder.
func NewGalleryHandler(repo galleryRepo.GalleryRepository, svc storage.MediaService, destFolder string) *GalleryHandler {
	return &GalleryHandler{
		Repo:     repo,
		MediaSvc: svc,
		Folder:   destFolder,
	}
}

// UploadImageHandler uploads the multipart "image" field to the media host
// and records its URL and public ID. The local record is only written after
// the remote upload succeeds.
func (gh *GalleryHandler) UploadImageHandler(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No image"})
		return
	}

	tempDir := os.TempDir()
	tempFilePath := filepath.Join(tempDir, filepath.Base(fileHeader.Filename))
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file", "detail": err.Error()})
		return
	}
	defer os.Remove(tempFilePath)

	upload, err := gh.MediaSvc.Upload(c.Request.Context(), tempFilePath, gh.Folder)
	if err != nil {
		zap.L().Error("Failed to upload image", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload file", "detail": err.Error()})
		return
	}

	image := models.GalleryImage{
		URL:      upload.URL,
		PublicID: upload.PublicID,
	}
	if err := gh.Repo.Create(&image); err != nil {
		zap.L().Error("Failed to save gallery image", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save gallery image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListGalleryHandler returns all gallery images.
func (gh *GalleryHandler) ListGalleryHandler(c *gin.Context) {
	images, err := gh.Repo.GetAll()
	if err != nil {
		zap.L().Error("Failed to fetch gallery", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch gallery"})
		return
	}
	if images == nil {
		images = []models.GalleryImage{}
	}
	c.JSON(http.StatusOK, images)
}

// DeleteImageHandler destroys the remote asset and removes the local record.
// public_id is the canonical key; a url field in the request is accepted for
// older clients but ignored. The remote destroy must succeed before the local
// record is removed, so a failed destroy never leaves an orphaned remote asset.
func (gh *GalleryHandler) DeleteImageHandler(c *gin.Context) {
	var input struct {
		PublicID string `json:"public_id" binding:"required"`
		URL      string `json:"url"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input", "details": err.Error()})
		return
	}

	if err := gh.MediaSvc.Destroy(c.Request.Context(), input.PublicID); err != nil {
		zap.L().Error("Failed to destroy image", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete file", "detail": err.Error()})
		return
	}

	if err := gh.Repo.DeleteByPublicID(input.PublicID); err != nil {
		zap.L().Error("Failed to delete gallery image", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete gallery image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
