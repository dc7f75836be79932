package simulation

import (
	"context"
	"fmt"
	"time"

	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pb"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/flock"
)

const (
	systemName      = "FlockWorld"
	flockActorName  = "flock"
	snapshotBuffer  = 10 // Buffer to avoid blocking
	snapshotTimeout = 5 * time.Second
)

// Simulation is a running actor system hosting one FlockActor.
// Its methods are safe for concurrent use.
type Simulation struct {
	System    actor.ActorSystem
	flockPID  *actor.PID
	snapshots chan *pb.FlockSnapshot
}

// Start validates cfg, starts the actor system and spawns the flock actor.
// The first track agents are tracked. logger may be golog.DiscardLogger.
func Start(ctx context.Context, cfg flock.Config, track int, logger golog.Logger) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	system, err := actor.NewActorSystem(systemName, actor.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("failed to create actor system: %w", err)
	}
	if err := system.Start(ctx); err != nil {
		return nil, fmt.Errorf("failed to start actor system: %w", err)
	}

	snapshots := make(chan *pb.FlockSnapshot, snapshotBuffer)
	pid, err := system.Spawn(ctx, flockActorName, NewFlockActor(cfg, track, snapshots))
	if err != nil {
		_ = system.Stop(ctx)
		return nil, fmt.Errorf("failed to spawn flock: %w", err)
	}

	return &Simulation{
		System:    system,
		flockPID:  pid,
		snapshots: snapshots,
	}, nil
}

// Snapshots delivers a snapshot after every Tick. Snapshots are dropped while
// nobody reads the channel.
func (s *Simulation) Snapshots() <-chan *pb.FlockSnapshot {
	return s.snapshots
}

// Tick asks the flock to advance steps ticks. It does not wait.
func (s *Simulation) Tick(ctx context.Context, steps uint32) error {
	return actor.Tell(ctx, s.flockPID, &pb.Tick{Steps: steps})
}

// SetTracked marks or unmarks an agent. Unknown ids are logged and ignored by the actor.
func (s *Simulation) SetTracked(ctx context.Context, id flock.AgentID, tracked bool) error {
	return actor.Tell(ctx, s.flockPID, &pb.SetTracked{AgentId: uint32(id), Tracked: tracked})
}

// ToggleRuleVisual flips one rule overlay.
func (s *Simulation) ToggleRuleVisual(ctx context.Context, rule flock.Rule) error {
	return actor.Tell(ctx, s.flockPID, &pb.ToggleRuleVisual{Rule: flock.RuleToProto(rule)})
}

// Snapshot returns the current state once every message sent before it was processed.
func (s *Simulation) Snapshot(ctx context.Context) (*pb.FlockSnapshot, error) {
	reply, err := actor.Ask(ctx, s.flockPID, &pb.GetSnapshot{}, snapshotTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}
	snap, ok := reply.(*pb.FlockSnapshot)
	if !ok {
		return nil, fmt.Errorf("unexpected snapshot reply %T", reply)
	}
	return snap, nil
}

// Stop shuts the actor system down.
func (s *Simulation) Stop(ctx context.Context) error {
	return s.System.Stop(ctx)
}
