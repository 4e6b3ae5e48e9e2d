package impl

import (
	"context"
	"testing"

	"fleet/internal/domain/entity"
	"fleet/internal/domain/service"
	"fleet/internal/infra/geo"
	mockRepo "fleet/internal/mocks/repository"
	"fleet/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestAgentLocator(t *testing.T) (*mockRepo.MockAgentLocationRepository, usecase.AgentLocator) {
	agentLocationRepo := mockRepo.NewMockAgentLocationRepository(t)
	locator := NewAgentLocatorService(agentLocationRepo, geo.NewGeodesicEstimator())

	return agentLocationRepo, locator
}

func TestAgentLocator_FindNearestAgent_PicksClosest(t *testing.T) {
	agentLocationRepo, locator := createTestAgentLocator(t)
	ctx := context.Background()

	// Pickup in central Taipei; candidates roughly 3, 1 and 5 km away.
	pickup := service.Coordinate{Lat: 25.0330, Lng: 121.5654}
	far := &entity.AgentLocation{AgentID: uuid.New(), Latitude: 25.0600, Longitude: 121.5654}
	near := &entity.AgentLocation{AgentID: uuid.New(), Latitude: 25.0420, Longitude: 121.5654}
	farthest := &entity.AgentLocation{AgentID: uuid.New(), Latitude: 25.0780, Longitude: 121.5654}

	agentLocationRepo.EXPECT().ListActiveAgentLocations(ctx).
		Return([]*entity.AgentLocation{far, near, farthest}, nil)

	agent, err := locator.FindNearestAgent(ctx, pickup)

	require.NoError(t, err)
	require.NotNil(t, agent)
	assert.Equal(t, near.AgentID, agent.AgentID)
}

func TestAgentLocator_FindNearestAgent_NoAgents(t *testing.T) {
	agentLocationRepo, locator := createTestAgentLocator(t)
	ctx := context.Background()

	agentLocationRepo.EXPECT().ListActiveAgentLocations(ctx).
		Return([]*entity.AgentLocation{}, nil)

	agent, err := locator.FindNearestAgent(ctx, service.Coordinate{Lat: 25.0, Lng: 121.5})

	require.NoError(t, err)
	assert.Nil(t, agent)
}

func TestAgentLocator_FindNearestAgent_TieKeepsFirst(t *testing.T) {
	agentLocationRepo, locator := createTestAgentLocator(t)
	ctx := context.Background()

	// Two agents at the identical position: the first in repository order wins.
	first := &entity.AgentLocation{AgentID: uuid.New(), Latitude: 25.0400, Longitude: 121.5654}
	second := &entity.AgentLocation{AgentID: uuid.New(), Latitude: 25.0400, Longitude: 121.5654}

	agentLocationRepo.EXPECT().ListActiveAgentLocations(ctx).
		Return([]*entity.AgentLocation{first, second}, nil)

	agent, err := locator.FindNearestAgent(ctx, service.Coordinate{Lat: 25.0330, Lng: 121.5654})

	require.NoError(t, err)
	require.NotNil(t, agent)
	assert.Equal(t, first.AgentID, agent.AgentID)
}

func TestAgentLocator_FindNearestAgent_RepositoryError(t *testing.T) {
	agentLocationRepo, locator := createTestAgentLocator(t)
	ctx := context.Background()

	agentLocationRepo.EXPECT().ListActiveAgentLocations(ctx).
		Return(nil, errors.New("db down"))

	agent, err := locator.FindNearestAgent(ctx, service.Coordinate{Lat: 25.0, Lng: 121.5})

	require.Error(t, err)
	assert.Nil(t, agent)
}
