package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Slider is a horizontal value picker.
type Slider struct {
	Label    string
	Value    float64
	Min, Max float64
	X, Y     float64
	W, H     float64
	// Step rounds Value to a multiple of Step above Min when set.
	Step float64
}

// NewSlider creates a slider with the default height.
func NewSlider(x, y, width float64, label string, min, max, value float64) *Slider {
	return &Slider{
		Label: label,
		Value: value,
		Min:   min,
		Max:   max,
		X:     x,
		Y:     y,
		W:     width,
		H:     12,
	}
}

// Update moves the value while the mouse is pressed inside the slider.
func (s *Slider) Update() {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if inRect(float64(mx), float64(my), s.X, s.Y, s.W, s.H) {
		s.SetFromCursor(float64(mx))
	}
}

// SetFromCursor sets the value matching the horizontal position mx.
func (s *Slider) SetFromCursor(mx float64) {
	p := (mx - s.X) / s.W
	v := s.Min + p*(s.Max-s.Min)
	if s.Step > 0 {
		steps := int((v-s.Min)/s.Step + 0.5)
		v = s.Min + float64(steps)*s.Step
	}
	s.Value = max(s.Min, min(s.Max, v))
}

// Draw renders the slider
func (s *Slider) Draw(screen *ebiten.Image) {
	vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.W), float32(s.H), color.RGBA{R: 80, G: 80, B: 80, A: 255}, true)

	ratio := 0.0
	if s.Max > s.Min {
		ratio = (s.Value - s.Min) / (s.Max - s.Min)
	}
	vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.W*ratio), float32(s.H), color.RGBA{R: 200, G: 200, B: 200, A: 255}, true)
}

func inRect(px, py, x, y, w, h float64) bool {
	return px >= x && px <= x+w && py >= y && py <= y+h
}
