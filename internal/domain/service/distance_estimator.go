package service

// Coordinate is a geographic point in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// DistanceEstimator computes the distance between two points in kilometers.
// The shipped implementation is geodesic (great-circle); a road-network
// provider could replace it behind this interface.
type DistanceEstimator interface {
	DistanceKm(from, to Coordinate) float64
}
