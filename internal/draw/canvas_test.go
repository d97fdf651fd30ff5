package draw_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/veskor/sshnowman/internal/draw"
)

func render(c *draw.Canvas) string {
	var out strings.Builder
	c.Render(&out)
	return out.String()
}

func TestRenderHalfBlocks(t *testing.T) {
	// 1:1 canvas: logical y 0..7 maps straight onto the 4 terminal rows
	c := draw.NewCanvas(4, 4)

	c.Set(1, 2)
	assert.Equal(t, "\033[2;2H▀", render(c), "even sub-pixel row is an upper half")

	c.Clear()
	c.Set(3, 7)
	assert.Equal(t, "\033[4;4H▄", render(c), "odd sub-pixel row is a lower half")

	c.Clear()
	c.Set(0, 0)
	c.Set(0, 1)
	assert.Equal(t, "\033[1;1H█", render(c), "both halves make a full block")
}

func TestRenderSkipsEmptyCells(t *testing.T) {
	c := draw.NewCanvas(4, 4)
	assert.Empty(t, render(c))

	c.Set(2, 2)
	c.Clear()
	assert.Empty(t, render(c))
}

func TestSetFloatRounds(t *testing.T) {
	c := draw.NewCanvas(4, 4)
	c.SetFloat(0.6, 0.6)
	assert.Equal(t, "\033[1;2H▄", render(c))
}

func TestScaledCanvas(t *testing.T) {
	// Logical 8x16 on a 4x4 terminal: every scale factor is 0.5
	c := draw.NewScaledCanvas(4, 4, 8, 16)
	c.Set(2, 4)
	assert.Equal(t, "\033[2;2H▀", render(c))
}

func TestRenderOffsets(t *testing.T) {
	c := draw.NewCanvas(4, 4)
	c.SetOffset(2, 1)
	c.Set(0, 0)
	assert.Equal(t, "\033[2;3H▀", render(c))
	assert.Equal(t, 2, c.OffsetCol())
	assert.Equal(t, 1, c.OffsetRow())
}

func TestDrawMask(t *testing.T) {
	c := draw.NewCanvas(4, 4)
	mask := []bool{
		true, true,
		true, true,
	}
	c.DrawMask(1, 2, 2, 2, mask)
	assert.Equal(t, "\033[2;2H█\033[2;3H█", render(c))
}

func TestDrawMaskClipsOutOfBounds(t *testing.T) {
	c := draw.NewCanvas(2, 2)
	mask := make([]bool, 16)
	for i := range mask {
		mask[i] = true
	}
	// Hangs off every edge; only the visible part may land
	c.DrawMask(-2, -2, 4, 4, mask)
	assert.Equal(t, "\033[1;1H█\033[1;2H█", render(c))
}

func TestFillRect(t *testing.T) {
	c := draw.NewCanvas(4, 4)
	c.FillRect(0, 0, 1, 1)
	assert.Equal(t, "\033[1;1H█\033[1;2H█", render(c))
}

func TestDrawLine(t *testing.T) {
	c := draw.NewCanvas(4, 4)
	c.DrawLine(draw.Point{X: 0, Y: 0}, draw.Point{X: 3, Y: 0})
	assert.Equal(t, "\033[1;1H▀\033[1;2H▀\033[1;3H▀\033[1;4H▀", render(c))

	c.Clear()
	c.DrawLine(draw.Point{X: 0, Y: 0}, draw.Point{X: 3, Y: 3})
	assert.Equal(t, "\033[1;1H▀\033[1;2H▄\033[2;3H▀\033[2;4H▄", render(c))

	// Endpoint order doesn't matter
	c.Clear()
	c.DrawLine(draw.Point{X: 3, Y: 3}, draw.Point{X: 0, Y: 0})
	assert.Equal(t, "\033[1;1H▀\033[1;2H▄\033[2;3H▀\033[2;4H▄", render(c))
}

func TestRenderLargeFrameSurvivesChunking(t *testing.T) {
	c := draw.NewCanvas(40, 40)
	for y := 0; y < 80; y++ {
		for x := 0; x < 40; x++ {
			c.Set(x, y)
		}
	}

	out := render(c)
	assert.True(t, strings.HasPrefix(out, "\033[1;1H█"), "first cell mangled")
	assert.True(t, strings.HasSuffix(out, "\033[40;40H█"), "last cell mangled")
	assert.Equal(t, 40*40, strings.Count(out, "█"))
}

func TestResizeRescales(t *testing.T) {
	c := draw.NewScaledCanvas(4, 4, 8, 16)
	c.Set(0, 0)

	c.Resize(8, 8)
	assert.Equal(t, 8, c.TerminalWidth())
	assert.Equal(t, 8, c.TerminalHeight())
	assert.Empty(t, render(c), "resize to a new size starts from a blank canvas")

	// Scale now 1:1 against the 8x16 logical space
	c.Set(7, 15)
	assert.Equal(t, "\033[8;8H▄", render(c))
}

func TestLogicalToTerminal(t *testing.T) {
	c := draw.NewScaledCanvas(80, 30, 800, 600)

	col, row := c.LogicalToTerminal(400, 300)
	assert.Equal(t, 41, col)
	assert.Equal(t, 16, row)

	c.SetOffset(5, 2)
	col, row = c.LogicalToTerminal(400, 300)
	assert.Equal(t, 46, col)
	assert.Equal(t, 18, row)
}

func TestRenderBorderFullBox(t *testing.T) {
	c := draw.NewCanvas(4, 4)
	c.SetOffset(2, 1)

	var out strings.Builder
	c.RenderBorder(&out)
	s := out.String()

	assert.Contains(t, s, "\033[1;2H┌────┐")
	assert.Contains(t, s, "\033[6;2H└────┘")
	assert.Contains(t, s, "\033[2;2H│\033[2;7H│")
	assert.Contains(t, s, "\033[5;2H│\033[5;7H│")
}

func TestRenderBorderHorizontalOnly(t *testing.T) {
	c := draw.NewCanvas(4, 4)
	c.SetOffset(0, 2)

	var out strings.Builder
	c.RenderBorder(&out)
	s := out.String()

	assert.Contains(t, s, "────")
	assert.NotContains(t, s, "│")
	assert.NotContains(t, s, "┌")
}

func TestRenderBorderNoneWhenFlush(t *testing.T) {
	c := draw.NewCanvas(4, 4)

	var out strings.Builder
	c.RenderBorder(&out)
	assert.Empty(t, out.String())
}
