// File: database/repository/gallery/gallery_mongo.go
package galleryRepo

import (
	"context"
	"fmt"
	"time"

	"maggamhub/database"
	"maggamhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GalleryRepository defines the interface for gallery data access.
type GalleryRepository interface {
	Create(image *models.GalleryImage) error
	GetAll() ([]models.GalleryImage, error)
	DeleteByPublicID(publicID string) error
}

// MongoGalleryRepo implements GalleryRepository using MongoDB.
type MongoGalleryRepo struct {
	coll *mongo.Collection
}

// NewMongoGalleryRepo creates a new instance of GalleryRepository using MongoDB.
func NewMongoGalleryRepo() GalleryRepository {
	return &MongoGalleryRepo{coll: database.Collection("gallery")}
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Create inserts a new gallery image document.
func (r *MongoGalleryRepo) Create(image *models.GalleryImage) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, image); err != nil {
		return fmt.Errorf("failed to create gallery image: %w", err)
	}
	return nil
}

// GetAll retrieves all gallery images, excluding the internal _id.
func (r *MongoGalleryRepo) GetAll() ([]models.GalleryImage, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"_id": 0})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve gallery images: %w", err)
	}
	defer cursor.Close(ctx)

	var images []models.GalleryImage
	for cursor.Next(ctx) {
		var img models.GalleryImage
		if err := cursor.Decode(&img); err != nil {
			return nil, fmt.Errorf("failed to decode gallery image: %w", err)
		}
		images = append(images, img)
	}
	return images, nil
}

// DeleteByPublicID removes the gallery image with the given public_id.
// Deleting a missing record is not an error.
func (r *MongoGalleryRepo) DeleteByPublicID(publicID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"public_id": publicID}); err != nil {
		return fmt.Errorf("failed to delete gallery image %s: %w", publicID, err)
	}
	return nil
}
