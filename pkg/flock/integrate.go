package flock

import "github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"

// decision is the outcome of a Decide tick for one agent.
// It is computed while no agent has moved yet and applied afterwards.
type decision struct {
	perceived []AgentID
	velocity  geometry.Vector2D
	steering  Steering
}

// decide perceives, steers, clamps the speed and applies the boundary correction for
// agents[self]. agents is only read.
func decide(cfg Config, agents []Agent, self int) decision {
	me := &agents[self]
	perceived := Perceive(cfg, agents, self)

	var s Steering
	if cfg.Rules.Cohesion {
		s.Cohesion = Cohesion(agents, self, perceived)
	}
	if cfg.Rules.Alignment {
		s.Alignment = Alignment(agents, self, perceived)
	}
	if cfg.Rules.Separation {
		s.Separation = Separation(agents, self, perceived, cfg.SeparationRadius)
	}

	v := me.Velocity.
		Add(s.Cohesion.Mul(cfg.CohesionWeight)).
		Add(s.Alignment.Mul(cfg.AlignmentWeight)).
		Add(s.Separation.Mul(cfg.SeparationWeight))
	v = clampSpeed(v, me.Heading, cfg.MinSpeed, cfg.MaxSpeed)
	v = nudgeIntoBounds(v, me.Position, cfg)

	return decision{
		perceived: perceived,
		velocity:  v,
		steering:  s,
	}
}

// clampSpeed rescales v into [min, max] without changing its direction.
// A zero velocity has no direction, the agent then leaves along its heading at min speed.
func clampSpeed(v geometry.Vector2D, heading, min, max float64) geometry.Vector2D {
	if v.IsZero() {
		return geometry.NewVectorDegrees(min, heading)
	}
	return v.ClampLen(min, max)
}

// nudgeIntoBounds biases the velocity back towards the world when pos is outside it.
// The speed is not clamped again, an agent can stay out for a few decisions.
func nudgeIntoBounds(v, pos geometry.Vector2D, cfg Config) geometry.Vector2D {
	switch {
	case pos.X > cfg.WorldWidth:
		v.X -= cfg.BoundaryNudge
	case pos.X < 0:
		v.X += cfg.BoundaryNudge
	}
	switch {
	case pos.Y > cfg.WorldHeight:
		v.Y -= cfg.BoundaryNudge
	case pos.Y < 0:
		v.Y += cfg.BoundaryNudge
	}
	return v
}

// commit stores a decision and restarts the countdown.
func (a *Agent) commit(d decision, interval int) {
	a.Countdown = interval
	a.Perceived = d.perceived
	a.Velocity = d.velocity
	a.Steering = d.steering
}

// integrate moves the agent by its velocity and derives the heading from the move.
// It runs on every tick, decision or not.
func (a *Agent) integrate() {
	a.PreviousPosition = a.Position
	a.Position = a.Position.Add(a.Velocity)

	delta := a.Position.Sub(a.PreviousPosition)
	if delta.X != 0 || delta.Y != 0 {
		a.Heading = delta.Degrees()
	}
}
