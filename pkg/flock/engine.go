package flock

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"
)

// seedStream is the second PCG word, it keeps runs reproducible from a single seed.
const seedStream = 0x9e3779b97f4a7c15

// Rule names a steering rule, for overlays.
type Rule int

const (
	RuleCohesion Rule = iota
	RuleAlignment
	RuleSeparation
)

func (r Rule) String() string {
	switch r {
	case RuleCohesion:
		return "cohesion"
	case RuleAlignment:
		return "alignment"
	case RuleSeparation:
		return "separation"
	}
	return fmt.Sprintf("Rule(%d)", int(r))
}

// RuleVisuals says which rule overlays the renderer should draw.
// Steering never reads it.
type RuleVisuals struct {
	Cohesion   bool
	Alignment  bool
	Separation bool
}

// Engine owns the agents and advances the simulation one tick at a time.
//
// Tick is two-phase: every agent due for a decision first computes it from the
// pre-tick state of the whole flock, then all agents commit and move in index order.
// The result does not depend on the iteration order and is deterministic for a
// given seed. An Engine is not safe for concurrent use.
type Engine struct {
	cfg    Config
	agents []Agent

	seenByTracked []bool
	visuals       RuleVisuals
	ticks         uint64

	// scratch space reused across ticks
	pending []decision
	due     []bool
}

// New creates a flock of cfg.Population agents placed uniformly at random in the world,
// flying in random directions at 3/4 of the maximum speed.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewPCG(cfg.Seed, seedStream))
	spawns := make([]Spawn, cfg.Population)
	for i := range spawns {
		pos := geometry.NewVector(rng.Float64()*cfg.WorldWidth, rng.Float64()*cfg.WorldHeight)
		vel := geometry.NewVectorPolar(0.75*cfg.MaxSpeed, rng.Float64()*2*math.Pi)
		countdown := 0
		if cfg.StaggerDecisions {
			countdown = rng.IntN(cfg.DecisionInterval + 1)
		}
		spawns[i] = Spawn{Position: pos, Velocity: vel, Countdown: countdown}
	}
	return newEngine(cfg, spawns), nil
}

// NewWithSpawns creates a flock from explicit initial states. cfg.Population is
// replaced by len(spawns).
func NewWithSpawns(cfg Config, spawns []Spawn) (*Engine, error) {
	cfg.Population = len(spawns)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	for i, s := range spawns {
		if s.Countdown < 0 {
			return nil, fmt.Errorf("%w: spawn %d has a negative countdown %d", ErrInvalidConfiguration, i, s.Countdown)
		}
	}
	return newEngine(cfg, spawns), nil
}

func newEngine(cfg Config, spawns []Spawn) *Engine {
	e := &Engine{
		cfg:           cfg,
		agents:        make([]Agent, len(spawns)),
		seenByTracked: make([]bool, len(spawns)),
		pending:       make([]decision, len(spawns)),
		due:           make([]bool, len(spawns)),
	}
	for i, s := range spawns {
		e.agents[i] = newAgent(AgentID(i), s)
	}
	e.refreshSeenByTracked()
	return e
}

// Tick advances every agent by one step.
func (e *Engine) Tick() {
	// Phase one: nothing moves, every read sees the pre-tick flock.
	for i := range e.agents {
		e.due[i] = e.agents[i].Countdown == 0
		if e.due[i] {
			e.pending[i] = decide(e.cfg, e.agents, i)
		}
	}

	// Phase two: commit and integrate.
	for i := range e.agents {
		a := &e.agents[i]
		if e.due[i] {
			a.commit(e.pending[i], e.cfg.DecisionInterval)
			e.pending[i] = decision{}
		} else {
			a.Countdown--
		}
		a.integrate()
	}

	e.ticks++
	e.refreshSeenByTracked()
}

// refreshSeenByTracked rebuilds the set of agents perceived by at least one tracked agent.
func (e *Engine) refreshSeenByTracked() {
	clear(e.seenByTracked)
	for i := range e.agents {
		if !e.agents[i].Tracked {
			continue
		}
		for _, id := range e.agents[i].Perceived {
			e.seenByTracked[id] = true
		}
	}
}

// Ticks returns the number of completed ticks.
func (e *Engine) Ticks() uint64 {
	return e.ticks
}

// Len returns the population size.
func (e *Engine) Len() int {
	return len(e.agents)
}

// Config returns the run configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Agents returns a copy of every agent, ordered by id.
func (e *Engine) Agents() []AgentView {
	views := make([]AgentView, len(e.agents))
	for i := range e.agents {
		views[i] = e.view(i)
	}
	return views
}

// Agent returns a copy of one agent.
func (e *Engine) Agent(id AgentID) (AgentView, bool) {
	if int(id) >= len(e.agents) {
		return AgentView{}, false
	}
	return e.view(int(id)), true
}

func (e *Engine) view(i int) AgentView {
	a := &e.agents[i]
	return AgentView{
		ID:            a.ID,
		Position:      a.Position,
		Velocity:      a.Velocity,
		Heading:       a.Heading,
		Tracked:       a.Tracked,
		SeenByTracked: e.seenByTracked[i],
		Perceived:     slices.Clone(a.Perceived),
		Steering:      a.Steering,
	}
}

// SetTracked marks or unmarks an agent as tracked. The seen-by-tracked set is
// refreshed immediately.
func (e *Engine) SetTracked(id AgentID, tracked bool) error {
	if int(id) >= len(e.agents) {
		return fmt.Errorf("%w: %d (population %d)", ErrUnknownAgent, id, len(e.agents))
	}
	e.agents[id].Tracked = tracked
	e.refreshSeenByTracked()
	return nil
}

// SeenByTracked returns the ids perceived by any tracked agent, ascending.
func (e *Engine) SeenByTracked() []AgentID {
	var ids []AgentID
	for i, seen := range e.seenByTracked {
		if seen {
			ids = append(ids, AgentID(i))
		}
	}
	return ids
}

// IsSeenByTracked reports whether a tracked agent perceived id at its last decision.
func (e *Engine) IsSeenByTracked(id AgentID) bool {
	return int(id) < len(e.seenByTracked) && e.seenByTracked[id]
}

// ToggleRuleVisual flips the overlay flag of one rule.
func (e *Engine) ToggleRuleVisual(r Rule) {
	switch r {
	case RuleCohesion:
		e.visuals.Cohesion = !e.visuals.Cohesion
	case RuleAlignment:
		e.visuals.Alignment = !e.visuals.Alignment
	case RuleSeparation:
		e.visuals.Separation = !e.visuals.Separation
	}
}

// RuleVisuals returns the overlay flags.
func (e *Engine) RuleVisuals() RuleVisuals {
	return e.visuals
}
