// Package geo provides geodesic distance computation on top of paulmach/orb.
package geo

import (
	"fleet/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

type geodesicEstimator struct{}

// NewGeodesicEstimator returns a DistanceEstimator that computes great-circle
// distance between two coordinates. Road-network routing is deliberately out
// of scope; an external provider can replace this behind the same interface.
func NewGeodesicEstimator() service.DistanceEstimator {
	return &geodesicEstimator{}
}

// DistanceKm returns the great-circle distance between two points in kilometers.
func (e *geodesicEstimator) DistanceKm(from, to service.Coordinate) float64 {
	// orb points are (lng, lat)
	meters := geo.Distance(
		orb.Point{from.Lng, from.Lat},
		orb.Point{to.Lng, to.Lat},
	)

	return meters / 1000.0
}
