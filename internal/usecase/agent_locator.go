package usecase

import (
	"context"

	"fleet/internal/domain/entity"
	"fleet/internal/domain/service"
)

// AgentLocator finds the delivery agent best placed to take a new delivery.
type AgentLocator interface {
	// FindNearestAgent returns the active agent whose last reported location
	// is geodesically closest to the pickup point. Returns (nil, nil) when no
	// agent has reported a location; ties go to the first candidate in the
	// repository's deterministic ordering.
	FindNearestAgent(ctx context.Context, pickup service.Coordinate) (*entity.AgentLocation, error)
}
