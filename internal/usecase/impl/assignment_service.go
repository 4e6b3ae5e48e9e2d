// Package impl contains the concrete implementations of the use case interfaces.
package impl

import (
	"context"

	"fleet/internal/domain/entity"
	"fleet/internal/domain/repository"
	"fleet/internal/domain/service"
	"fleet/internal/usecase"

	"github.com/pkg/errors"
)

type agentLocatorService struct {
	agentLocationRepo repository.AgentLocationRepository
	estimator         service.DistanceEstimator
}

// NewAgentLocatorService creates a new agent locator instance
func NewAgentLocatorService(
	agentLocationRepo repository.AgentLocationRepository,
	estimator service.DistanceEstimator,
) usecase.AgentLocator {
	return &agentLocatorService{
		agentLocationRepo: agentLocationRepo,
		estimator:         estimator,
	}
}

// FindNearestAgent scans all active agent locations and returns the one
// geodesically closest to the pickup point. The repository returns candidates
// in a stable order, so equal distances resolve to the first candidate seen.
func (s *agentLocatorService) FindNearestAgent(ctx context.Context, pickup service.Coordinate) (*entity.AgentLocation, error) {
	locations, err := s.agentLocationRepo.ListActiveAgentLocations(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list agent locations")
	}

	if len(locations) == 0 {
		return nil, nil
	}

	var nearest *entity.AgentLocation
	var nearestDistance float64

	for _, location := range locations {
		distance := s.estimator.DistanceKm(pickup, service.Coordinate{
			Lat: location.Latitude,
			Lng: location.Longitude,
		})

		// Strict comparison keeps the first candidate on ties.
		if nearest == nil || distance < nearestDistance {
			nearest = location
			nearestDistance = distance
		}
	}

	return nearest, nil
}
