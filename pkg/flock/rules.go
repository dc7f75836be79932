package flock

import "github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"

// The three steering rules. Each one maps what an agent perceives to a desired velocity
// change. perceived holds ids, which are indexes into agents.

// Cohesion steers towards the average position of the perceived agents.
// It returns the zero vector when nothing is perceived.
func Cohesion(agents []Agent, self int, perceived []AgentID) geometry.Vector2D {
	if len(perceived) == 0 {
		return geometry.Zero
	}
	var sum geometry.Vector2D
	for _, id := range perceived {
		sum = sum.Add(agents[id].Position)
	}
	avg := sum.Mul(1 / float64(len(perceived)))
	return avg.Sub(agents[self].Position)
}

// Alignment steers towards the average velocity of the perceived agents.
// It returns the zero vector when nothing is perceived.
func Alignment(agents []Agent, self int, perceived []AgentID) geometry.Vector2D {
	if len(perceived) == 0 {
		return geometry.Zero
	}
	var sum geometry.Vector2D
	for _, id := range perceived {
		sum = sum.Add(agents[id].Velocity)
	}
	avg := sum.Mul(1 / float64(len(perceived)))
	return avg.Sub(agents[self].Velocity)
}

// Separation pushes away from every perceived agent strictly closer than radius.
// Contributions are summed, not averaged, so a crowded agent is pushed harder.
func Separation(agents []Agent, self int, perceived []AgentID, radius float64) geometry.Vector2D {
	me := agents[self].Position
	radiusSq := radius * radius

	var push geometry.Vector2D
	for _, id := range perceived {
		offset := agents[id].Position.Sub(me)
		if offset.LenSqr() < radiusSq {
			push = push.Sub(offset)
		}
	}
	return push
}
