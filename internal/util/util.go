// Package util holds small shared helpers with no domain dependencies.
package util

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// FormatLatLng renders a coordinate pair in the canonical "lat, lng" form
// used for stored locations.
func FormatLatLng(lat, lng float64) string {
	return fmt.Sprintf("%.6f, %.6f", lat, lng)
}

// ParseLatLng parses a "lat, lng" string into its components.
func ParseLatLng(s string) (float64, float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, errors.Errorf("invalid coordinate pair: %q", s)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "invalid latitude in %q", s)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "invalid longitude in %q", s)
	}

	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return 0, 0, errors.Errorf("coordinate out of range: %q", s)
	}

	return lat, lng, nil
}

// FormatDuration renders a duration as human-readable ETA text.
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return "less than a minute"
	}

	totalMinutes := int(d.Round(time.Minute) / time.Minute)
	hours := totalMinutes / 60
	minutes := totalMinutes % 60

	switch {
	case hours == 0:
		return fmt.Sprintf("%d min", minutes)
	case minutes == 0:
		return fmt.Sprintf("%d hr", hours)
	default:
		return fmt.Sprintf("%d hr %d min", hours, minutes)
	}
}
