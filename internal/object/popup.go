package object

import (
	"fmt"
	"time"
)

const popupRiseSpeed = 24.0 // logical pixels per second

// Popup is a short-lived score label that rises from the point where a
// piece attached or was missed. It draws as a text overlay on top of the
// canvas, so it must be drawn after the canvas is rendered.
type Popup struct {
	X, Y     float64
	Text     string
	Lifetime time.Duration
}

// NewPopup creates a popup at the given logical position.
func NewPopup(x, y float64, text string, lifetime time.Duration) *Popup {
	return &Popup{
		X:        x,
		Y:        y,
		Text:     text,
		Lifetime: lifetime,
	}
}

func (p *Popup) Update(ctx UpdateContext) (bool, error) {
	p.Lifetime -= ctx.Delta
	if p.Lifetime <= 0 {
		return true, nil
	}
	p.Y -= popupRiseSpeed * ctx.Delta.Seconds()
	return false, nil
}

func (p *Popup) Draw(ctx DrawContext) error {
	col, row := ctx.Canvas.LogicalToTerminal(p.X, p.Y)
	col -= len(p.Text) / 2
	if col < 1 {
		col = 1
	}
	fmt.Fprintf(ctx.Writer, "\033[%d;%dH%s", row, col, p.Text)
	return nil
}
