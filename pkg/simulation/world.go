package simulation

import (
	"time"

	"github.com/google/uuid"
	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/goaktpb"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pb"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/flock"
)

// FlockActor owns the flock engine. Every access to the engine goes through its mailbox,
// so hosts running on other goroutines never touch it directly.
type FlockActor struct {
	cfg    flock.Config
	track  int
	engine *flock.Engine
	runID  string

	// Communication with UI, never blocks the actor
	snapshotCh chan<- *pb.FlockSnapshot

	// --- Benchmark Stats ---
	tickCount   int
	lastLogTime time.Time
}

var _ actor.Actor = (*FlockActor)(nil)

// NewFlockActor creates the actor. The first track agents are tracked from the start.
// snapshotCh may be nil when the host only uses GetSnapshot.
func NewFlockActor(cfg flock.Config, track int, snapshotCh chan<- *pb.FlockSnapshot) *FlockActor {
	return &FlockActor{
		cfg:        cfg,
		track:      track,
		snapshotCh: snapshotCh,
	}
}

func (f *FlockActor) PreStart(ctx *actor.Context) error {
	engine, err := flock.New(f.cfg)
	if err != nil {
		return err
	}
	for i := 0; i < f.track && i < engine.Len(); i++ {
		if err := engine.SetTracked(flock.AgentID(i), true); err != nil {
			return err
		}
	}
	f.engine = engine
	f.runID = uuid.NewString()
	f.lastLogTime = time.Now()

	for _, w := range f.cfg.Warnings() {
		ctx.ActorSystem().Logger().Warnf("config: %s", w)
	}
	ctx.ActorSystem().Logger().Infof("Flock %s created: %d agents in a %.0fx%.0f world (seed %d)",
		f.runID, engine.Len(), f.cfg.WorldWidth, f.cfg.WorldHeight, f.cfg.Seed)
	return nil
}

func (f *FlockActor) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {
	case *goaktpb.PostStart:
		ctx.Logger().Infof("%s started, tracking %d agents", ctx.Self().Name(), len(f.trackedIDs()))
		f.pushSnapshot()

	case *pb.Tick:
		steps := max(msg.GetSteps(), 1)
		for range steps {
			f.engine.Tick()
		}
		f.tickCount += int(steps)
		f.logBenchmarks(ctx)
		f.pushSnapshot()

	case *pb.SetTracked:
		if err := f.engine.SetTracked(flock.AgentID(msg.GetAgentId()), msg.GetTracked()); err != nil {
			ctx.Logger().Warnf("ignoring SetTracked: %v", err)
			return
		}
		f.pushSnapshot()

	case *pb.ToggleRuleVisual:
		rule, err := flock.RuleFromProto(msg.GetRule())
		if err != nil {
			ctx.Logger().Warnf("ignoring ToggleRuleVisual: %v", err)
			return
		}
		f.engine.ToggleRuleVisual(rule)
		f.pushSnapshot()

	case *pb.GetSnapshot:
		ctx.Response(flock.Snapshot(f.engine, f.runID))

	default:
		ctx.Unhandled()
	}
}

func (f *FlockActor) PostStop(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Infof("Flock %s stopped after %d ticks", f.runID, f.engine.Ticks())
	return nil
}

func (f *FlockActor) logBenchmarks(ctx *actor.ReceiveContext) {
	if elapsed := time.Since(f.lastLogTime); elapsed >= time.Second {
		ctx.Logger().Infof("📊 TICK RATE: %.0f/sec | Tick: %d | Agents: %d | Seen by tracked: %d",
			float64(f.tickCount)/elapsed.Seconds(), f.engine.Ticks(), f.engine.Len(), len(f.engine.SeenByTracked()))
		f.tickCount = 0
		f.lastLogTime = time.Now()
	}
}

func (f *FlockActor) pushSnapshot() {
	if f.snapshotCh == nil {
		return
	}
	select {
	case f.snapshotCh <- flock.Snapshot(f.engine, f.runID):
	default:
		// UI busy, skip frame
	}
}

func (f *FlockActor) trackedIDs() []flock.AgentID {
	var ids []flock.AgentID
	for _, a := range f.engine.Agents() {
		if a.Tracked {
			ids = append(ids, a.ID)
		}
	}
	return ids
}
