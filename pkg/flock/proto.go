package flock

import (
	"fmt"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pb"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"
)

// Snapshot converts the public engine state into its wire form.
// runID identifies the run the snapshot belongs to, it may be empty.
func Snapshot(e *Engine, runID string) *pb.FlockSnapshot {
	visuals := e.RuleVisuals()
	cfg := e.Config()
	snap := &pb.FlockSnapshot{
		RunId:          runID,
		Tick:           e.Ticks(),
		WorldWidth:     cfg.WorldWidth,
		WorldHeight:    cfg.WorldHeight,
		Agents:         make([]*pb.AgentState, 0, e.Len()),
		ShowCohesion:   visuals.Cohesion,
		ShowAlignment:  visuals.Alignment,
		ShowSeparation: visuals.Separation,
	}
	for _, v := range e.Agents() {
		snap.Agents = append(snap.Agents, v.ToProto())
	}
	return snap
}

// ToProto converts a view into the wire AgentState.
func (v AgentView) ToProto() *pb.AgentState {
	perceived := make([]uint32, len(v.Perceived))
	for i, id := range v.Perceived {
		perceived[i] = uint32(id)
	}
	return &pb.AgentState{
		Id:            uint32(v.ID),
		Position:      vectorToProto(v.Position),
		Velocity:      vectorToProto(v.Velocity),
		Heading:       v.Heading,
		Tracked:       v.Tracked,
		SeenByTracked: v.SeenByTracked,
		Perceived:     perceived,
		Cohesion:      vectorToProto(v.Steering.Cohesion),
		Alignment:     vectorToProto(v.Steering.Alignment),
		Separation:    vectorToProto(v.Steering.Separation),
	}
}

// ViewFromProto rebuilds an AgentView from the wire, for clients that only see snapshots.
func ViewFromProto(p *pb.AgentState) AgentView {
	perceived := make([]AgentID, len(p.GetPerceived()))
	for i, id := range p.GetPerceived() {
		perceived[i] = AgentID(id)
	}
	return AgentView{
		ID:            AgentID(p.GetId()),
		Position:      vectorFromProto(p.GetPosition()),
		Velocity:      vectorFromProto(p.GetVelocity()),
		Heading:       p.GetHeading(),
		Tracked:       p.GetTracked(),
		SeenByTracked: p.GetSeenByTracked(),
		Perceived:     perceived,
		Steering: Steering{
			Cohesion:   vectorFromProto(p.GetCohesion()),
			Alignment:  vectorFromProto(p.GetAlignment()),
			Separation: vectorFromProto(p.GetSeparation()),
		},
	}
}

func vectorToProto(v geometry.Vector2D) *pb.Vector2D {
	return &pb.Vector2D{X: v.X, Y: v.Y}
}

func vectorFromProto(p *pb.Vector2D) geometry.Vector2D {
	return geometry.NewVector(p.GetX(), p.GetY())
}

// RuleToProto maps a Rule to its wire enum.
func RuleToProto(r Rule) pb.Rule {
	switch r {
	case RuleCohesion:
		return pb.Rule_RULE_COHESION
	case RuleAlignment:
		return pb.Rule_RULE_ALIGNMENT
	case RuleSeparation:
		return pb.Rule_RULE_SEPARATION
	}
	return pb.Rule_RULE_UNSPECIFIED
}

// RuleFromProto maps a wire enum to a Rule. RULE_UNSPECIFIED and unknown values are errors.
func RuleFromProto(r pb.Rule) (Rule, error) {
	switch r {
	case pb.Rule_RULE_COHESION:
		return RuleCohesion, nil
	case pb.Rule_RULE_ALIGNMENT:
		return RuleAlignment, nil
	case pb.Rule_RULE_SEPARATION:
		return RuleSeparation, nil
	}
	return 0, fmt.Errorf("unknown rule %v", r)
}
