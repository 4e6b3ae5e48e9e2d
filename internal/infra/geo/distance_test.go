package geo

import (
	"testing"

	"fleet/internal/domain/service"

	"github.com/stretchr/testify/assert"
)

func TestGeodesicEstimator_DistanceKm(t *testing.T) {
	estimator := NewGeodesicEstimator()

	taipei101 := service.Coordinate{Lat: 25.033964, Lng: 121.564468}
	mainStation := service.Coordinate{Lat: 25.047708, Lng: 121.517055}

	distance := estimator.DistanceKm(taipei101, mainStation)

	// Roughly 5 km across central Taipei.
	assert.InDelta(t, 5.0, distance, 0.3)

	// Symmetric and zero at the same point.
	assert.InDelta(t, distance, estimator.DistanceKm(mainStation, taipei101), 1e-9)
	assert.InDelta(t, 0, estimator.DistanceKm(taipei101, taipei101), 1e-9)
}
