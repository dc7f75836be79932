package simulation

import (
	"context"
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pb"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/ui"
)

const (
	pickRadius     = 12.0 // click distance to select an agent
	tailLength     = 3.0  // in ticks of velocity
	overlayMaxLen  = 40.0
	coneSegments   = 24
	maxBatchAgents = 1 << 13
)

var (
	backgroundColor = color.RGBA{R: 10, G: 10, B: 30, A: 255}
	agentColor      = color.RGBA{R: 100, G: 200, B: 255, A: 255}
	trackedColor    = color.RGBA{R: 255, G: 80, B: 80, A: 255}
	seenColor       = color.RGBA{R: 255, G: 220, B: 80, A: 255}
	coneColor       = color.RGBA{R: 255, G: 80, B: 80, A: 90}
	sightColor      = color.RGBA{R: 255, G: 220, B: 80, A: 120}
	tailColor       = color.RGBA{R: 100, G: 200, B: 255, A: 70}
	cohesionColor   = color.RGBA{R: 80, G: 220, B: 80, A: 200}
	alignmentColor  = color.RGBA{R: 80, G: 120, B: 255, A: 200}
	separationColor = color.RGBA{R: 255, G: 100, B: 200, A: 200}
)

// Game is the ebiten host of a Simulation: it drives ticks, forwards clicks and
// draws the latest snapshot.
type Game struct {
	ctx       context.Context
	sim       *Simulation
	cfg       flock.Config
	lastState *pb.FlockSnapshot
	err       error

	// UI Controls
	panel *ui.UIPanel

	// Widget references for easy access
	widgetTicksPerFrame *ui.Slider
	widgetPaused        *ui.Checkbox
	widgetVisionCones   *ui.Checkbox
	widgetSightLines    *ui.Checkbox
	widgetTails         *ui.Checkbox
	widgetCohesion      *ui.Button
	widgetAlignment     *ui.Button
	widgetSeparation    *ui.Button

	dot *ebiten.Image // white source for DrawTriangles

	// Timing instrumentation
	updateAvg float64 // Rolling average in ms
	drawAvg   float64 // Rolling average in ms
}

// NewGame builds the window host around a started Simulation.
func NewGame(ctx context.Context, sim *Simulation, cfg flock.Config) *Game {
	g := &Game{
		ctx:       ctx,
		sim:       sim,
		cfg:       cfg,
		lastState: &pb.FlockSnapshot{}, // Avoid nil pointer
	}

	panel := ui.NewUIPanel("Flock", 10, 10, 210, 330)

	panel.AddSection("Simulation")
	g.widgetTicksPerFrame = panel.AddSlider("Ticks per frame", 1, 10, 1)
	g.widgetTicksPerFrame.Step = 1
	g.widgetPaused = panel.AddCheckbox("Paused [space]", false)
	panel.EndSection()

	panel.AddSection("Rules overlay")
	g.widgetCohesion = panel.AddToggleButton("Cohesion [c]", false, func() { g.toggleRule(flock.RuleCohesion) })
	g.widgetAlignment = panel.AddToggleButton("Alignment [a]", false, func() { g.toggleRule(flock.RuleAlignment) })
	g.widgetSeparation = panel.AddToggleButton("Separation [s]", false, func() { g.toggleRule(flock.RuleSeparation) })
	panel.EndSection()

	panel.AddSection("Tracked agents")
	g.widgetVisionCones = panel.AddCheckbox("Vision cones", true)
	g.widgetSightLines = panel.AddCheckbox("Sight lines", true)
	g.widgetTails = panel.AddCheckbox("Tails", false)
	panel.EndSection()

	g.panel = panel
	return g
}

func (g *Game) toggleRule(rule flock.Rule) {
	if err := g.sim.ToggleRuleVisual(g.ctx, rule); err != nil && g.err == nil {
		g.err = fmt.Errorf("failed to toggle %s overlay: %w", rule, err)
	}
}

func (g *Game) Update() error {
	start := time.Now()
	defer func() {
		elapsed := time.Since(start)
		g.updateAvg = g.updateAvg*0.95 + float64(elapsed.Microseconds())/1000.0*0.05
	}()

	g.panel.Update()
	g.handleKeys()

	// Retrieve Latest State (Non-blocking)
	select {
	case snap := <-g.sim.Snapshots():
		g.lastState = snap
	default:
	}
	g.syncRuleButtons()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if !g.panel.Contains(float64(mx), float64(my)) {
			if a, ok := PickAgent(g.lastState, float64(mx), float64(my), pickRadius); ok {
				if err := g.sim.SetTracked(g.ctx, flock.AgentID(a.GetId()), !a.GetTracked()); err != nil {
					return fmt.Errorf("failed to track agent %d: %w", a.GetId(), err)
				}
			}
		}
	}

	if !g.widgetPaused.Value {
		if err := g.sim.Tick(g.ctx, uint32(g.widgetTicksPerFrame.Value)); err != nil {
			return fmt.Errorf("failed to tick: %w", err)
		}
	}
	return g.err
}

func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.widgetPaused.Toggle()
	}
	keys := []struct {
		key  ebiten.Key
		rule flock.Rule
	}{
		{ebiten.KeyC, flock.RuleCohesion},
		{ebiten.KeyA, flock.RuleAlignment},
		{ebiten.KeyS, flock.RuleSeparation},
	}
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k.key) {
			g.toggleRule(k.rule)
		}
	}
}

// syncRuleButtons shows the overlay flags the actor reported, whoever toggled them.
func (g *Game) syncRuleButtons() {
	g.widgetCohesion.On = g.lastState.GetShowCohesion()
	g.widgetAlignment.On = g.lastState.GetShowAlignment()
	g.widgetSeparation.On = g.lastState.GetShowSeparation()
}

func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	defer func() {
		elapsed := time.Since(start)
		g.drawAvg = g.drawAvg*0.95 + float64(elapsed.Microseconds())/1000.0*0.05
	}()

	if g.dot == nil {
		g.dot = ebiten.NewImage(3, 3)
		g.dot.Fill(color.White)
	}
	screen.Fill(backgroundColor)

	agents := g.lastState.GetAgents()
	for _, a := range agents {
		if a.GetTracked() {
			g.drawTracked(screen, a, agents)
		}
		if g.widgetTails.Value {
			drawVector(screen, a.GetPosition(), scaleProto(a.GetVelocity(), -tailLength), tailColor)
		}
	}
	g.drawOverlays(screen, agents)
	g.drawAgents(screen, agents)

	g.panel.Draw(screen)

	tracked := 0
	for _, a := range agents {
		if a.GetTracked() {
			tracked++
		}
	}
	msg := fmt.Sprintf("FPS: %.2f\nTPS: %.2f\nTick: %d\nAgents: %d\nTracked: %d\n\nUpdate: %.2fms\nDraw:   %.2fms",
		ebiten.ActualFPS(),
		ebiten.ActualTPS(),
		g.lastState.GetTick(),
		len(agents),
		tracked,
		g.updateAvg,
		g.drawAvg)
	ebitenutil.DebugPrintAt(screen, msg, int(g.cfg.WorldWidth)-150, 10)
}

// drawTracked draws the vision cone of a tracked agent and the lines to what it perceives.
func (g *Game) drawTracked(screen *ebiten.Image, a *pb.AgentState, agents []*pb.AgentState) {
	pos := a.GetPosition()
	if g.widgetVisionCones.Value {
		pts := visionCone(geometry.NewVector(pos.GetX(), pos.GetY()), a.GetHeading(), g.cfg.VisionRadius/2)
		for i := 1; i < len(pts); i++ {
			vector.StrokeLine(screen,
				float32(pts[i-1].X), float32(pts[i-1].Y),
				float32(pts[i].X), float32(pts[i].Y),
				1, coneColor, true)
		}
	}
	if g.widgetSightLines.Value {
		for _, id := range a.GetPerceived() {
			if int(id) >= len(agents) {
				continue
			}
			other := agents[id].GetPosition()
			vector.StrokeLine(screen,
				float32(pos.GetX()), float32(pos.GetY()),
				float32(other.GetX()), float32(other.GetY()),
				1, sightColor, true)
		}
	}
}

func (g *Game) drawOverlays(screen *ebiten.Image, agents []*pb.AgentState) {
	layers := []struct {
		on    bool
		clr   color.RGBA
		delta func(*pb.AgentState) *pb.Vector2D
	}{
		{g.lastState.GetShowCohesion(), cohesionColor, (*pb.AgentState).GetCohesion},
		{g.lastState.GetShowAlignment(), alignmentColor, (*pb.AgentState).GetAlignment},
		{g.lastState.GetShowSeparation(), separationColor, (*pb.AgentState).GetSeparation},
	}
	for _, layer := range layers {
		if !layer.on {
			continue
		}
		for _, a := range agents {
			d := layer.delta(a)
			v := geometry.NewVector(d.GetX(), d.GetY())
			if v.Len() > overlayMaxLen {
				v = v.WithLen(overlayMaxLen)
			}
			drawVector(screen, a.GetPosition(), &pb.Vector2D{X: v.X, Y: v.Y}, layer.clr)
		}
	}
}

// drawAgents draws every agent as a triangle pointing along its heading, in batches.
func (g *Game) drawAgents(screen *ebiten.Image, agents []*pb.AgentState) {
	vertices := make([]ebiten.Vertex, 0, 3*min(len(agents), maxBatchAgents))
	indices := make([]uint16, 0, cap(vertices))
	flush := func() {
		if len(vertices) > 0 {
			screen.DrawTriangles(vertices, indices, g.dot, &ebiten.DrawTrianglesOptions{})
		}
		vertices, indices = vertices[:0], indices[:0]
	}

	for _, a := range agents {
		clr := agentColor
		switch {
		case a.GetTracked():
			clr = trackedColor
		case a.GetSeenByTracked():
			clr = seenColor
		}
		base := uint16(len(vertices))
		for _, p := range agentTriangle(a.GetPosition().GetX(), a.GetPosition().GetY(), a.GetHeading()) {
			vertices = append(vertices, ebiten.Vertex{
				DstX:   float32(p.X),
				DstY:   float32(p.Y),
				SrcX:   1,
				SrcY:   1,
				ColorR: float32(clr.R) / 255,
				ColorG: float32(clr.G) / 255,
				ColorB: float32(clr.B) / 255,
				ColorA: float32(clr.A) / 255,
			})
		}
		indices = append(indices, base, base+1, base+2)
		if len(vertices) >= 3*maxBatchAgents {
			flush()
		}
	}
	flush()
}

func (g *Game) Layout(w, h int) (int, int) { return int(g.cfg.WorldWidth), int(g.cfg.WorldHeight) }

// agentTriangle returns the tip and the two rear corners of an agent glyph.
func agentTriangle(x, y, heading float64) [3]geometry.Vector2D {
	angle := heading * math.Pi / 180
	pos := geometry.NewVector(x, y)
	return [3]geometry.Vector2D{
		pos.Add(geometry.NewVectorPolar(7, angle)),
		pos.Add(geometry.NewVectorPolar(5, angle+2.5)),
		pos.Add(geometry.NewVectorPolar(5, angle-2.5)),
	}
}

// visionCone returns the outline of the 270 degree field of view as a closed polyline
// starting and ending at pos.
func visionCone(pos geometry.Vector2D, heading, radius float64) []geometry.Vector2D {
	const halfFOV = 135.0
	pts := make([]geometry.Vector2D, 0, coneSegments+3)
	pts = append(pts, pos)
	for i := 0; i <= coneSegments; i++ {
		deg := heading - halfFOV + 2*halfFOV*float64(i)/coneSegments
		pts = append(pts, pos.Add(geometry.NewVectorDegrees(radius, deg)))
	}
	return append(pts, pos)
}

// PickAgent returns the agent closest to (x, y) within radius.
func PickAgent(snap *pb.FlockSnapshot, x, y, radius float64) (*pb.AgentState, bool) {
	var (
		best   *pb.AgentState
		bestSq = radius * radius
		click  = geometry.NewVector(x, y)
	)
	for _, a := range snap.GetAgents() {
		p := a.GetPosition()
		if d := click.DistanceSquaredTo(geometry.NewVector(p.GetX(), p.GetY())); d <= bestSq {
			best, bestSq = a, d
		}
	}
	return best, best != nil
}

func scaleProto(v *pb.Vector2D, k float64) *pb.Vector2D {
	return &pb.Vector2D{X: v.GetX() * k, Y: v.GetY() * k}
}

func drawVector(screen *ebiten.Image, from, delta *pb.Vector2D, clr color.RGBA) {
	x, y := from.GetX(), from.GetY()
	vector.StrokeLine(screen,
		float32(x), float32(y),
		float32(x+delta.GetX()), float32(y+delta.GetY()),
		1, clr, true)
}
