package flock

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"
)

func withVelocity(a Agent, vx, vy float64) Agent {
	a.Velocity = geometry.NewVector(vx, vy)
	return a
}

func TestRules_EmptyPerceivedSet(t *testing.T) {
	agents := []Agent{withVelocity(agentAt(0, 10, 20, 0), 3, 4)}

	assert.Equal(t, geometry.Zero, Cohesion(agents, 0, nil))
	assert.Equal(t, geometry.Zero, Alignment(agents, 0, nil))
	assert.Equal(t, geometry.Zero, Separation(agents, 0, nil, 60))
}

func TestCohesion(t *testing.T) {
	agents := []Agent{
		agentAt(0, 0, 0, 0),
		agentAt(1, 10, 0, 0),
		agentAt(2, 0, 10, 0),
		agentAt(3, 1000, 1000, 0),
	}
	got := Cohesion(agents, 0, []AgentID{1, 2})
	assert.True(t, got.Eq(geometry.NewVector(5, 5)), "got %v", got)
}

func TestAlignment(t *testing.T) {
	agents := []Agent{
		withVelocity(agentAt(0, 0, 0, 0), 1, 0),
		withVelocity(agentAt(1, 5, 0, 0), 3, 0),
		withVelocity(agentAt(2, 0, 5, 0), 1, 2),
	}
	got := Alignment(agents, 0, []AgentID{1, 2})
	assert.True(t, got.Eq(geometry.NewVector(1, 1)), "got %v", got)
}

func TestSeparation_StrictRadius(t *testing.T) {
	const (
		radius = 30.0
		eps    = 1e-6
	)
	agents := []Agent{
		agentAt(0, 0, 0, 0),
		agentAt(1, radius-eps, 0, 0),
		agentAt(2, 0, radius+eps, 0),
	}

	got := Separation(agents, 0, []AgentID{1, 2}, radius)
	assert.InDelta(t, -(radius - eps), got.X, 1e-9)
	assert.Equal(t, 0.0, got.Y)

	onEdge := []Agent{agentAt(0, 0, 0, 0), agentAt(1, radius, 0, 0)}
	assert.Equal(t, geometry.Zero, Separation(onEdge, 0, []AgentID{1}, radius))
}

func TestSeparation_SumsWithoutNormalising(t *testing.T) {
	agents := []Agent{
		agentAt(0, 0, 0, 0),
		agentAt(1, 5, 0, 0),
		agentAt(2, 0, 5, 0),
		agentAt(3, -3, 0, 0),
	}
	got := Separation(agents, 0, []AgentID{1, 2, 3}, 60)
	assert.True(t, got.Eq(geometry.NewVector(-2, -5)), "got %v", got)
}
