package repository

import (
	"context"

	"fleet/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrAgentLocationNotFound is returned when an agent has never reported a location.
var ErrAgentLocationNotFound = errors.New("agent location not found")

// AgentLocationRepository defines read and upsert access to agent locations.
// The delivery subsystem does not own the agent accounts themselves.
type AgentLocationRepository interface {
	// UpsertLocation overwrites the agent's location in place. No history is kept.
	UpsertLocation(ctx context.Context, location *entity.AgentLocation) error

	// FindByAgent retrieves the last reported location for one agent.
	FindByAgent(ctx context.Context, agentID uuid.UUID) (*entity.AgentLocation, error)

	// ListActiveAgentLocations lists the locations of all active delivery
	// agents, ordered by agent ID for deterministic assignment tie-breaking.
	ListActiveAgentLocations(ctx context.Context) ([]*entity.AgentLocation, error)
}
