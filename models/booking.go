package models

// Booking represents a customer service request record.
type Booking struct {
	BookingID string `bson:"booking_id" json:"booking_id"` // Public identifier (e.g., "CMH-3FA2B1")
	Name      string `bson:"name" json:"name"`
	Phone     string `bson:"phone" json:"phone"`
	Service   string `bson:"service" json:"service"`
	Amount    string `bson:"amount" json:"amount"`         // Free-form quoted amount; no charge step
	Status    string `bson:"status" json:"status"`         // "Pending" on creation, admin-mutable
	CreatedAt string `bson:"created_at" json:"created_at"` // Wall-clock timestamp, "2006-01-02 15:04"
}

// StatusPending is the initial status of every submitted booking.
const StatusPending = "Pending"
