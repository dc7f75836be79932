package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const labelCharWidth = 6 // DebugPrint glyph width

var (
	checkboxBorder = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	checkboxTick   = color.RGBA{R: 100, G: 200, B: 100, A: 255}
)

// Checkbox holds a boolean flag. Clicking the box or its label flips it.
type Checkbox struct {
	Label string
	Value bool
	X, Y  float64
	Size  float64
}

func NewCheckbox(x, y float64, label string, value bool) *Checkbox {
	return &Checkbox{Label: label, Value: value, X: x, Y: y, Size: 16}
}

// Toggle flips the value, e.g. from a keyboard shortcut.
func (c *Checkbox) Toggle() {
	c.Value = !c.Value
}

// Contains reports whether (x, y) is on the box or its label.
func (c *Checkbox) Contains(x, y float64) bool {
	w := c.Size + 6 + float64(len(c.Label)*labelCharWidth)
	return inRect(x, y, c.X, c.Y, w, c.Size)
}

func (c *Checkbox) Update() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if c.Contains(float64(mx), float64(my)) {
		c.Toggle()
	}
}

func (c *Checkbox) Draw(screen *ebiten.Image) {
	x, y, s := float32(c.X), float32(c.Y), float32(c.Size)
	vector.StrokeRect(screen, x, y, s, s, 2, checkboxBorder, true)
	if c.Value {
		vector.FillRect(screen, x+2, y+2, s-4, s-4, checkboxTick, true)
	}
	ebitenutil.DebugPrintAt(screen, c.Label, int(c.X+c.Size+6), int(c.Y))
}
