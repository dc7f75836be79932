package flock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"
)

func TestClampSpeed(t *testing.T) {
	tests := []struct {
		name    string
		v       geometry.Vector2D
		heading float64
		want    geometry.Vector2D
	}{
		{"too fast", geometry.NewVector(30, 40), 0, geometry.NewVector(4.2, 5.6)},
		{"too slow", geometry.NewVector(0, -1), 0, geometry.NewVector(0, -2.5)},
		{"in range", geometry.NewVector(3, 4), 0, geometry.NewVector(3, 4)},
		{"zero takes the heading", geometry.Zero, 90, geometry.NewVector(0, 2.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := clampSpeed(tt.v, tt.heading, 2.5, 7)
			assert.True(t, got.Eq(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestNudgeIntoBounds(t *testing.T) {
	cfg := DefaultConfig()
	v := geometry.NewVector(3, 3)

	tests := []struct {
		name string
		pos  geometry.Vector2D
		want geometry.Vector2D
	}{
		{"inside", geometry.NewVector(500, 500), geometry.NewVector(3, 3)},
		{"on the edge", geometry.NewVector(1000, 0), geometry.NewVector(3, 3)},
		{"right", geometry.NewVector(1001, 500), geometry.NewVector(2, 3)},
		{"left", geometry.NewVector(-1, 500), geometry.NewVector(4, 3)},
		{"bottom", geometry.NewVector(500, 1001), geometry.NewVector(3, 2)},
		{"top left corner", geometry.NewVector(-5, -5), geometry.NewVector(4, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nudgeIntoBounds(v, tt.pos, cfg))
		})
	}
}

func TestDecide_ClampsAndKeepsAgentsUntouched(t *testing.T) {
	cfg := testConfig()
	cfg.SeparationWeight = 5
	agents := []Agent{
		withVelocity(agentAt(0, 500, 500, 0), 3, 0),
		withVelocity(agentAt(1, 502, 500, 0), 3, 0),
		withVelocity(agentAt(2, 500, 502, 0), 3, 0),
	}
	before := append([]Agent(nil), agents...)

	for i := range agents {
		d := decide(cfg, agents, i)
		speed := d.velocity.Len()
		assert.GreaterOrEqual(t, speed, cfg.MinSpeed-1e-9)
		assert.LessOrEqual(t, speed, cfg.MaxSpeed+1e-9)
		assert.NotContains(t, d.perceived, AgentID(i))
	}
	assert.Equal(t, before, agents)
}

func TestDecide_DisabledRulesContributeNothing(t *testing.T) {
	cfg := testConfig()
	cfg.Rules = RuleSet{}
	agents := []Agent{
		withVelocity(agentAt(0, 500, 500, 0), 3, 0),
		withVelocity(agentAt(1, 510, 500, 0), -3, 0),
	}

	d := decide(cfg, agents, 0)
	require.Equal(t, []AgentID{1}, d.perceived)
	assert.Equal(t, Steering{}, d.steering)
	assert.True(t, d.velocity.Eq(geometry.NewVector(3, 0)), "got %v", d.velocity)
}

func TestIntegrate(t *testing.T) {
	a := agentAt(0, 10, 10, 0)
	a.Velocity = geometry.NewVector(0, -4)

	a.integrate()
	assert.Equal(t, geometry.NewVector(10, 10), a.PreviousPosition)
	assert.Equal(t, geometry.NewVector(10, 6), a.Position)
	assert.InDelta(t, -90, a.Heading, 1e-9)

	a.Velocity = geometry.Zero
	a.integrate()
	assert.InDelta(t, -90, a.Heading, 1e-9, "a standing agent keeps its heading")
}
