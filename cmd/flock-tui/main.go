// Command flock-tui shows the flock in a terminal.
//
// Keys: space pauses, c/a/s toggle the cohesion/alignment/separation overlay flags,
// +/- change the ticks per frame, q or Esc quits. Clicking an agent toggles its tracking.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	golog "github.com/tochemey/goakt/v3/log"

	"github.com/lao-tseu-is-alive/go-flock-simulation/internal/cli"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pb"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/simulation"
)

var headingGlyphs = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

var (
	agentStyle   = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	seenStyle    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	trackedStyle = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	statusStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
)

type viewer struct {
	ctx    context.Context
	screen tcell.Screen
	sim    *simulation.Simulation
	cfg    flock.Config

	width, height int
	snapshot      *pb.FlockSnapshot
	paused        bool
	ticksPerFrame uint32
}

func main() {
	fs := flag.NewFlagSet("flock-tui", flag.ExitOnError)
	flags := cli.NewFlags(fs)
	fps := fs.Int("fps", 30, "frames per second")
	_ = fs.Parse(os.Args[1:])

	cfg, err := flags.Config(fs)
	if err != nil {
		log.Fatal(err)
	}
	if *fps <= 0 {
		log.Fatalf("fps must be positive, got %d", *fps)
	}

	// the terminal belongs to the viewer, logs would garble it
	logger := golog.DiscardLogger
	if flags.Verbose {
		logger = golog.New(golog.DebugLevel, os.Stderr)
	}

	ctx := context.Background()
	sim, err := simulation.Start(ctx, cfg, flags.Track, logger)
	if err != nil {
		log.Fatal(err)
	}
	defer sim.Stop(ctx)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	screen.EnableMouse()
	defer screen.Fini()

	v := &viewer{
		ctx:           ctx,
		screen:        screen,
		sim:           sim,
		cfg:           cfg,
		snapshot:      &pb.FlockSnapshot{},
		ticksPerFrame: 1,
	}
	v.width, v.height = screen.Size()

	if err := v.run(time.Second / time.Duration(*fps)); err != nil {
		screen.Fini()
		log.Fatal(err)
	}
}

func (v *viewer) run(frame time.Duration) error {
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			quit, err := v.handleInput(ev)
			if err != nil || quit {
				return err
			}

		case <-ticker.C:
			if !v.paused {
				if err := v.sim.Tick(v.ctx, v.ticksPerFrame); err != nil {
					return fmt.Errorf("failed to tick: %w", err)
				}
			}
			v.drainSnapshots()
			v.draw()
		}
	}
}

func (v *viewer) drainSnapshots() {
	for {
		select {
		case snap := <-v.sim.Snapshots():
			v.snapshot = snap
		default:
			return
		}
	}
}

func (v *viewer) handleInput(ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return true, nil
		}
		if ev.Key() != tcell.KeyRune {
			return false, nil
		}
		switch ev.Rune() {
		case 'q':
			return true, nil
		case ' ':
			v.paused = !v.paused
		case '+':
			v.ticksPerFrame = min(v.ticksPerFrame+1, 10)
		case '-':
			v.ticksPerFrame = max(v.ticksPerFrame-1, 1)
		case 'c':
			return false, v.sim.ToggleRuleVisual(v.ctx, flock.RuleCohesion)
		case 'a':
			return false, v.sim.ToggleRuleVisual(v.ctx, flock.RuleAlignment)
		case 's':
			return false, v.sim.ToggleRuleVisual(v.ctx, flock.RuleSeparation)
		}

	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 == 0 {
			return false, nil
		}
		x, y := ev.Position()
		wx, wy := cellToWorld(x, y, v.width, v.fieldHeight(), v.cfg)
		radius := math.Max(v.cfg.WorldWidth/float64(v.width), v.cfg.WorldHeight/float64(v.fieldHeight()))
		if a, ok := simulation.PickAgent(v.snapshot, wx, wy, radius); ok {
			return false, v.sim.SetTracked(v.ctx, flock.AgentID(a.GetId()), !a.GetTracked())
		}

	case *tcell.EventResize:
		v.width, v.height = v.screen.Size()
		v.screen.Sync()
	}
	return false, nil
}

// fieldHeight is the number of rows left for the world above the status line.
func (v *viewer) fieldHeight() int {
	return max(v.height-1, 1)
}

func (v *viewer) draw() {
	v.screen.Clear()

	agents := v.snapshot.GetAgents()
	// tracked agents last, so they stay on top
	for pass := 0; pass < 2; pass++ {
		for _, a := range agents {
			if a.GetTracked() != (pass == 1) {
				continue
			}
			col, row, ok := worldToCell(a.GetPosition().GetX(), a.GetPosition().GetY(), v.width, v.fieldHeight(), v.cfg)
			if !ok {
				continue
			}
			style := agentStyle
			switch {
			case a.GetTracked():
				style = trackedStyle
			case a.GetSeenByTracked():
				style = seenStyle
			}
			v.screen.SetContent(col, row, headingGlyph(a.GetHeading()), nil, style)
		}
	}

	v.drawStatus()
	v.screen.Show()
}

func (v *viewer) drawStatus() {
	mark := func(on bool, name string) string {
		if on {
			return "[" + name + "]"
		}
		return " " + name + " "
	}
	state := "running"
	if v.paused {
		state = "paused"
	}
	status := fmt.Sprintf(" tick %d | %d agents | %s x%d | %s%s%s | space c a s + - q ",
		v.snapshot.GetTick(), len(v.snapshot.GetAgents()), state, v.ticksPerFrame,
		mark(v.snapshot.GetShowCohesion(), "coh"),
		mark(v.snapshot.GetShowAlignment(), "ali"),
		mark(v.snapshot.GetShowSeparation(), "sep"))

	row := v.height - 1
	col := 0
	for _, r := range status {
		if col >= v.width {
			break
		}
		v.screen.SetContent(col, row, r, nil, statusStyle)
		col++
	}
	for ; col < v.width; col++ {
		v.screen.SetContent(col, row, ' ', nil, statusStyle)
	}
}

// headingGlyph picks the arrow closest to heading. Screen y grows downwards.
func headingGlyph(heading float64) rune {
	i := int(math.Round(heading/45)) % 8
	if i < 0 {
		i += 8
	}
	return headingGlyphs[i]
}

// worldToCell maps a world position to a terminal cell. Positions outside the world
// are not shown.
func worldToCell(x, y float64, cols, rows int, cfg flock.Config) (int, int, bool) {
	if x < 0 || y < 0 || x >= cfg.WorldWidth || y >= cfg.WorldHeight {
		return 0, 0, false
	}
	return int(x / cfg.WorldWidth * float64(cols)), int(y / cfg.WorldHeight * float64(rows)), true
}

// cellToWorld returns the world position of the centre of a cell.
func cellToWorld(col, row, cols, rows int, cfg flock.Config) (float64, float64) {
	return (float64(col) + 0.5) / float64(cols) * cfg.WorldWidth,
		(float64(row) + 0.5) / float64(rows) * cfg.WorldHeight
}
