package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// UIWidget is an interface for all UI widgets
type UIWidget interface {
	Update()
	Draw(screen *ebiten.Image)
	GetHeight() float64
	// moveTo places the widget at y, the panel calls it while scrolling
	moveTo(y float64)
}

// SliderWrapper wraps a Slider to implement UIWidget.
// The panel prints the slider label above it.
type SliderWrapper struct {
	*Slider
}

func (s *SliderWrapper) GetHeight() float64 {
	return s.H + 25 // Slider height + label space
}

func (s *SliderWrapper) moveTo(y float64) { s.Y = y + 15 }

// CheckboxWrapper wraps Checkbox to implement UIWidget
type CheckboxWrapper struct {
	*Checkbox
}

func (c *CheckboxWrapper) GetHeight() float64 {
	return c.Size + 6
}

func (c *CheckboxWrapper) moveTo(y float64) { c.Y = y }

// ButtonWrapper wraps Button to implement UIWidget
type ButtonWrapper struct {
	*Button
}

func (b *ButtonWrapper) GetHeight() float64 {
	return b.Height + 6
}

func (b *ButtonWrapper) moveTo(y float64) { b.Y = y }

// UIPanel manages a collection of UI widgets in a scrollable panel
type UIPanel struct {
	Title         string
	X, Y          float64 // Panel position
	Width, Height float64 // Panel dimensions
	Widgets       []UIWidget
	Labels        []string // printed above the widget when not empty
	ScrollOffset  float64  // Current scroll position

	// Styling
	BGColor     color.RGBA
	BorderColor color.RGBA

	sections []PanelSection
}

// PanelSection groups consecutive widgets under a header.
type PanelSection struct {
	Title      string
	StartIndex int // Widget index where this section starts
	EndIndex   int // Widget index where this section ends (exclusive)
}

// NewUIPanel creates a new UI panel
func NewUIPanel(title string, x, y, width, height float64) *UIPanel {
	return &UIPanel{
		Title:       title,
		X:           x,
		Y:           y,
		Width:       width,
		Height:      height,
		BGColor:     color.RGBA{R: 40, G: 40, B: 45, A: 230},
		BorderColor: color.RGBA{R: 100, G: 100, B: 110, A: 255},
	}
}

// AddSection adds a section header
func (p *UIPanel) AddSection(title string) {
	p.sections = append(p.sections, PanelSection{
		Title:      title,
		StartIndex: len(p.Widgets),
	})
}

// EndSection closes the current section
func (p *UIPanel) EndSection() {
	if len(p.sections) > 0 {
		p.sections[len(p.sections)-1].EndIndex = len(p.Widgets)
	}
}

// AddSlider adds a slider widget to the panel
func (p *UIPanel) AddSlider(label string, min, max, value float64) *Slider {
	slider := NewSlider(p.X+10, p.Y+p.nextYOffset()+15, p.Width-20, label, min, max, value)
	p.add(&SliderWrapper{slider}, label)
	return slider
}

// AddCheckbox adds a checkbox widget to the panel
func (p *UIPanel) AddCheckbox(label string, value bool) *Checkbox {
	checkbox := NewCheckbox(p.X+10, p.Y+p.nextYOffset(), label, value)
	p.add(&CheckboxWrapper{checkbox}, "")
	return checkbox
}

// AddToggleButton adds a full-width toggle button to the panel
func (p *UIPanel) AddToggleButton(label string, on bool, onClick func()) *Button {
	button := NewToggleButton(p.X+10, p.Y+p.nextYOffset(), p.Width-20, 22, label, on, onClick)
	p.add(&ButtonWrapper{button}, "")
	return button
}

func (p *UIPanel) add(w UIWidget, label string) {
	p.Widgets = append(p.Widgets, w)
	p.Labels = append(p.Labels, label)
}

// nextYOffset is the offset from the panel top of the next widget, without scrolling.
func (p *UIPanel) nextYOffset() float64 {
	return p.calculateTotalHeight()
}

// Contains reports whether the point is over the panel.
func (p *UIPanel) Contains(px, py float64) bool {
	return inRect(px, py, p.X, p.Y, p.Width, p.Height)
}

// Update handles input for all widgets
func (p *UIPanel) Update() {
	mx, my := ebiten.CursorPosition()
	if _, dy := ebiten.Wheel(); dy != 0 && p.Contains(float64(mx), float64(my)) {
		p.scroll(dy)
	}

	for _, widget := range p.Widgets {
		widget.Update()
	}
}

func (p *UIPanel) scroll(dy float64) {
	p.ScrollOffset -= dy * 20
	maxScroll := max(0, p.calculateTotalHeight()-p.Height+10)
	p.ScrollOffset = max(0, min(maxScroll, p.ScrollOffset))
}

// Draw renders the panel and all widgets
func (p *UIPanel) Draw(screen *ebiten.Image) {
	vector.FillRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		p.BGColor, true)

	vector.StrokeRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		2, p.BorderColor, true)

	ebitenutil.DebugPrintAt(screen, p.Title, int(p.X+10), int(p.Y+5))

	currentY := p.Y + 30 - p.ScrollOffset
	visible := func(y float64) bool { return y >= p.Y+20 && y <= p.Y+p.Height-10 }

	for _, section := range p.sections {
		if visible(currentY) {
			vector.FillRect(screen,
				float32(p.X+5), float32(currentY),
				float32(p.Width-10), 20,
				color.RGBA{R: 60, G: 60, B: 70, A: 255}, true)
			ebitenutil.DebugPrintAt(screen, section.Title, int(p.X+10), int(currentY+2))
		}
		currentY += 25

		for i := section.StartIndex; i < section.EndIndex && i < len(p.Widgets); i++ {
			widget := p.Widgets[i]
			widget.moveTo(currentY)
			if visible(currentY) {
				if p.Labels[i] != "" {
					ebitenutil.DebugPrintAt(screen, p.Labels[i], int(p.X+10), int(currentY-2))
				}
				widget.Draw(screen)
			}
			currentY += widget.GetHeight()
		}
	}
}

// calculateTotalHeight calculates the total content height
func (p *UIPanel) calculateTotalHeight() float64 {
	height := 30.0 // Title space
	height += float64(len(p.sections)) * 25
	for _, widget := range p.Widgets {
		height += widget.GetHeight()
	}
	return height
}
