package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Button is a clickable UI button. A toggle button keeps an On state and is drawn
// with ActiveColor while on.
type Button struct {
	Label   string
	X, Y    float64
	Width   float64
	Height  float64
	Toggle  bool
	On      bool
	clicked bool   // already fired for the current press
	OnClick func() // Callback function

	// Styling
	BGColor     color.RGBA
	HoverColor  color.RGBA
	ActiveColor color.RGBA
}

// NewButton creates a new button instance
func NewButton(x, y, width, height float64, label string, onClick func()) *Button {
	return &Button{
		Label:       label,
		X:           x,
		Y:           y,
		Width:       width,
		Height:      height,
		OnClick:     onClick,
		BGColor:     color.RGBA{R: 80, G: 120, B: 180, A: 255},
		HoverColor:  color.RGBA{R: 100, G: 150, B: 220, A: 255},
		ActiveColor: color.RGBA{R: 60, G: 170, B: 90, A: 255},
	}
}

// NewToggleButton creates a button that flips On at every click before calling onClick.
func NewToggleButton(x, y, width, height float64, label string, on bool, onClick func()) *Button {
	b := NewButton(x, y, width, height, label, onClick)
	b.Toggle = true
	b.On = on
	return b
}

// Contains reports whether the point is over the button.
func (b *Button) Contains(px, py float64) bool {
	return inRect(px, py, b.X, b.Y, b.Width, b.Height)
}

// Update checks for mouse interaction
func (b *Button) Update() {
	mx, my := ebiten.CursorPosition()
	b.press(b.Contains(float64(mx), float64(my)) && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
}

// press fires once per press, holding the button down does not repeat.
func (b *Button) press(down bool) {
	if !down {
		b.clicked = false
		return
	}
	if b.clicked {
		return
	}
	b.clicked = true
	if b.Toggle {
		b.On = !b.On
	}
	if b.OnClick != nil {
		b.OnClick()
	}
}

// Draw renders the button
func (b *Button) Draw(screen *ebiten.Image) {
	mx, my := ebiten.CursorPosition()

	bgColor := b.BGColor
	switch {
	case b.Toggle && b.On:
		bgColor = b.ActiveColor
	case b.Contains(float64(mx), float64(my)):
		bgColor = b.HoverColor
	}

	vector.FillRect(screen,
		float32(b.X), float32(b.Y),
		float32(b.Width), float32(b.Height),
		bgColor, true)

	vector.StrokeRect(screen,
		float32(b.X), float32(b.Y),
		float32(b.Width), float32(b.Height),
		2, color.RGBA{R: 200, G: 200, B: 200, A: 255}, true)

	// DebugPrint glyphs are 6x16
	textX := b.X + (b.Width-float64(len(b.Label)*6))/2
	textY := b.Y + (b.Height-16)/2
	ebitenutil.DebugPrintAt(screen, b.Label, int(textX), int(textY))
}
