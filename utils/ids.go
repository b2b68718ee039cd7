package utils

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// BookingIDPrefix prefixes every public booking identifier.
const BookingIDPrefix = "CMH-"

// timestampLayout is the human-readable layout used for booking timestamps.
const timestampLayout = "2006-01-02 15:04"

// NewBookingID returns a booking identifier of the form "CMH-XXXXXX", where
// the suffix is the first six hex characters of a random 128-bit UUID.
// Uniqueness is not checked against existing records; the collision risk at
// this volume is accepted.
func NewBookingID() string {
	hex := strings.ReplaceAll(uuid.New().String(), "-", "")
	return BookingIDPrefix + strings.ToUpper(hex[:6])
}

// CurrentTimestamp returns the current wall-clock time as "YYYY-MM-DD HH:MM".
func CurrentTimestamp() string {
	return time.Now().Format(timestampLayout)
}
