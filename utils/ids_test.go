package utils

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBookingID_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^CMH-[0-9A-F]{6}$`)

	for i := 0; i < 100; i++ {
		id := NewBookingID()
		assert.Regexp(t, pattern, id)
	}
}

func TestCurrentTimestamp_Layout(t *testing.T) {
	stamp := CurrentTimestamp()

	parsed, err := time.ParseInLocation("2006-01-02 15:04", stamp, time.Local)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), parsed, 2*time.Minute)
}
