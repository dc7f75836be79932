package flock

import (
	"math"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"
)

// rearHalfAngle is half the width of the blind cone behind an agent.
// Agents see a 270 degree arc.
const rearHalfAngle = 45.0

// Perceive returns the ids of the agents that agents[self] can see, sorted ascending.
//
// An agent sees another one when it is closer than cfg.VisionRadius/2 and outside
// the 90 degree cone directly behind it. Perceive reads agents and never modifies them.
func Perceive(cfg Config, agents []Agent, self int) []AgentID {
	me := &agents[self]
	rangeSq := (cfg.VisionRadius / 2) * (cfg.VisionRadius / 2)

	var seen []AgentID
	for i := range agents {
		other := &agents[i]
		if other.ID == me.ID {
			continue
		}
		if me.Position.DistanceSquaredTo(other.Position) >= rangeSq {
			continue
		}
		if inRearCone(me.Heading, me.Position, other.Position) {
			continue
		}
		seen = append(seen, other.ID)
	}
	return seen
}

// CanSee applies the perception predicate to a single pair.
func CanSee(cfg Config, me, other *Agent) bool {
	if me.ID == other.ID {
		return false
	}
	r := cfg.VisionRadius / 2
	return me.Position.DistanceSquaredTo(other.Position) < r*r &&
		!inRearCone(me.Heading, me.Position, other.Position)
}

// inRearCone reports whether other lies within rearHalfAngle of directly behind an agent
// at pos flying towards heading.
//
// back is the direction from other to the agent: for a neighbour right behind, it points
// along the heading. Both angles live in (-180, 180], so when the heading is within
// rearHalfAngle of the seam the cone spills over to the other sign and the plain
// difference is off by 360.
//
// A neighbour at the very same position has no bearing and is never behind.
func inRearCone(heading float64, pos, other geometry.Vector2D) bool {
	d := pos.Sub(other)
	if d.X == 0 && d.Y == 0 {
		return false
	}
	back := geometry.Atan2Deg(d.Y, d.X)
	if math.Abs(back-heading) <= rearHalfAngle {
		return true
	}
	switch {
	case heading >= 180-rearHalfAngle:
		return back <= heading-360+rearHalfAngle
	case heading <= -180+rearHalfAngle:
		return back >= heading+360-rearHalfAngle
	}
	return false
}
