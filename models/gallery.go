package models

// GalleryImage is a reference to an externally hosted image.
type GalleryImage struct {
	URL      string `bson:"url" json:"url"`             // Delivery URL returned by the media host
	PublicID string `bson:"public_id" json:"public_id"` // Stable media-host identifier, the delete key
}
