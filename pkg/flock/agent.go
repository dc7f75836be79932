package flock

import (
	"slices"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"
)

// AgentID identifies an agent for the lifetime of the flock.
// It is the agent's index in the engine arena, ids are never reused.
type AgentID uint32

// Steering keeps the raw rule deltas of the last decision, before weighting.
// Only overlays read it.
type Steering struct {
	Cohesion   geometry.Vector2D
	Alignment  geometry.Vector2D
	Separation geometry.Vector2D
}

// Agent is one boid.
type Agent struct {
	ID               AgentID
	Position         geometry.Vector2D
	PreviousPosition geometry.Vector2D
	Velocity         geometry.Vector2D
	Heading          float64 // degrees, (-180, 180]
	Countdown        int     // ticks left before the next decision

	// Perceived holds the ids seen at the last decision, sorted ascending.
	// Between two decisions it is intentionally stale.
	Perceived []AgentID

	// Tracked is only written through Engine.SetTracked.
	Tracked bool

	Steering Steering
}

// Spawn describes the initial state of an agent for NewWithSpawns.
type Spawn struct {
	Position  geometry.Vector2D
	Velocity  geometry.Vector2D
	Countdown int
	Tracked   bool
}

func newAgent(id AgentID, s Spawn) Agent {
	a := Agent{
		ID:               id,
		Position:         s.Position,
		PreviousPosition: s.Position,
		Velocity:         s.Velocity,
		Countdown:        s.Countdown,
		Tracked:          s.Tracked,
	}
	if !s.Velocity.IsZero() {
		a.Heading = s.Velocity.Degrees()
	}
	return a
}

// Perceives reports whether id was in the agent's view at its last decision.
func (a *Agent) Perceives(id AgentID) bool {
	_, found := slices.BinarySearch(a.Perceived, id)
	return found
}

// Speed is the length of the velocity.
func (a *Agent) Speed() float64 {
	return a.Velocity.Len()
}

// AgentView is a read-only copy of an agent handed to renderers.
type AgentView struct {
	ID            AgentID
	Position      geometry.Vector2D
	Velocity      geometry.Vector2D
	Heading       float64
	Tracked       bool
	SeenByTracked bool
	Perceived     []AgentID
	Steering      Steering
}
