package loop

import (
	"bufio"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/veskor/sshnowman/internal/draw"
	"github.com/veskor/sshnowman/internal/input"
	"github.com/veskor/sshnowman/internal/object"
)

func TestClampTermSize(t *testing.T) {
	cases := []struct {
		termW, termH                 int
		renderW, renderH, offC, offR int
	}{
		{80, 24, 80, 24, 0, 0},
		{240, 75, 240, 75, 0, 0},
		{300, 100, 240, 75, 30, 12},
		{250, 40, 240, 40, 5, 0},
		{100, 90, 100, 75, 0, 7},
	}
	for _, tc := range cases {
		w, h, c, r := clampTermSize(tc.termW, tc.termH)
		assert.Equal(t, tc.renderW, w, "width for %dx%d", tc.termW, tc.termH)
		assert.Equal(t, tc.renderH, h, "height for %dx%d", tc.termW, tc.termH)
		assert.Equal(t, tc.offC, c, "col offset for %dx%d", tc.termW, tc.termH)
		assert.Equal(t, tc.offR, r, "row offset for %dx%d", tc.termW, tc.termH)
	}
}

// newOpenStream returns a stream whose reader never hits EOF during the test.
func newOpenStream(t *testing.T) *input.Stream {
	t.Helper()
	pr, pw := io.Pipe()
	t.Cleanup(func() { pw.Close() })
	return input.StartStream(bufio.NewReader(pr))
}

func TestProcessInputQuitShowsFinalScreenFirst(t *testing.T) {
	state := newTestState(t, Options{})
	state.GameState = GameStatePlaying

	// The drained test stream reads as a hung-up terminal, which quits
	deadline := time.Now().Add(2 * time.Second)
	for state.GameState != GameStateOver {
		if time.Now().After(deadline) {
			t.Fatal("quit never ended the game")
		}
		processInput(state)
		time.Sleep(time.Millisecond)
	}
	assert.True(t, state.Running, "mid-game quit shows the final screen before exiting")

	for state.Running {
		if time.Now().After(deadline) {
			t.Fatal("quit never exited the final screen")
		}
		processInput(state)
		time.Sleep(time.Millisecond)
	}
}

func TestProcessInputIdleTimeout(t *testing.T) {
	state := newTestState(t, Options{IdleQuit: true})
	state.InputStream = newOpenStream(t)

	state.lastInput = time.Now().Add(-(InactivityWarnSeconds + 5) * time.Second)
	processInput(state)
	assert.True(t, state.isInactive)
	assert.True(t, state.Running)

	state.lastInput = time.Now().Add(-(InactivityDisconnectSeconds + 5) * time.Second)
	processInput(state)
	assert.False(t, state.Running)
}

func TestProcessInputIdleIgnoredWithoutIdleQuit(t *testing.T) {
	state := newTestState(t, Options{})
	state.InputStream = newOpenStream(t)

	state.lastInput = time.Now().Add(-(InactivityDisconnectSeconds + 5) * time.Second)
	processInput(state)
	assert.False(t, state.isInactive)
	assert.True(t, state.Running)
}

func TestUpdateScreenResize(t *testing.T) {
	state := newTestState(t, Options{})
	canvas := draw.NewScaledCanvas(80, 24, object.FieldWidth, object.FieldHeight)
	cw := draw.NewChunkWriter(io.Discard, 0, 0)

	var out strings.Builder
	size := func() (int, int, error) { return 120, 40, nil }
	updateScreen(state, canvas, cw, size, &out)
	assert.Equal(t, 120, canvas.TerminalWidth())
	assert.Equal(t, 40, canvas.TerminalHeight())
	assert.Contains(t, out.String(), "\033[H\033[2J", "resize must clear leftovers")

	// Same size again leaves the screen alone
	out.Reset()
	updateScreen(state, canvas, cw, size, &out)
	assert.Empty(t, out.String())
}

func TestUpdateScreenCentersOversized(t *testing.T) {
	state := newTestState(t, Options{})
	canvas := draw.NewScaledCanvas(80, 24, object.FieldWidth, object.FieldHeight)
	cw := draw.NewChunkWriter(io.Discard, 0, 0)

	var out strings.Builder
	size := func() (int, int, error) { return 300, 100, nil }
	updateScreen(state, canvas, cw, size, &out)

	assert.Equal(t, MaxTermWidth, canvas.TerminalWidth())
	assert.Equal(t, MaxTermHeight, canvas.TerminalHeight())
	assert.Equal(t, 30, canvas.OffsetCol())
	assert.Equal(t, 12, canvas.OffsetRow())
}

func TestUpdateScreenKeepsCanvasOnSizeError(t *testing.T) {
	state := newTestState(t, Options{})
	canvas := draw.NewScaledCanvas(80, 24, object.FieldWidth, object.FieldHeight)
	cw := draw.NewChunkWriter(io.Discard, 0, 0)

	var out strings.Builder
	size := func() (int, int, error) { return 0, 0, io.ErrClosedPipe }
	updateScreen(state, canvas, cw, size, &out)

	assert.Equal(t, 80, canvas.TerminalWidth())
	assert.Empty(t, out.String())
}

func TestRunQuitsFromTitleScreen(t *testing.T) {
	pr, pw := io.Pipe()
	go func() {
		time.Sleep(80 * time.Millisecond)
		pw.Write([]byte("q"))
		pw.Close()
	}()

	var out strings.Builder
	stats, err := Run(bufio.NewReader(pr), &out, Options{
		Seed:     1,
		Sprites:  testSprites(t),
		TermSize: func() (int, int, error) { return 80, 24, nil },
	})
	assert.NoError(t, err)
	assert.Equal(t, 0, stats.Score)
	assert.Equal(t, 0, stats.Misses)

	s := out.String()
	assert.Contains(t, s, "S N O W M A N")
	assert.Contains(t, s, "\033[?25l", "cursor hidden for the session")
	assert.Contains(t, s, "\033[?25h", "cursor restored on exit")
}

func TestRunFullSession(t *testing.T) {
	pr, pw := io.Pipe()
	go func() {
		time.Sleep(100 * time.Millisecond)
		pw.Write([]byte("\r")) // leave the title screen
		time.Sleep(150 * time.Millisecond)
		pw.Write([]byte("q")) // end the game, final screen comes up
		time.Sleep(150 * time.Millisecond)
		pw.Write([]byte("q")) // leave the final screen
		pw.Close()
	}()

	var out strings.Builder
	stats, err := Run(bufio.NewReader(pr), &out, Options{
		Seed:     1,
		Sprites:  testSprites(t),
		TermSize: func() (int, int, error) { return 80, 24, nil },
	})
	assert.NoError(t, err)

	// One piece spawned and was still falling: an empty board offers legs
	assert.Equal(t, 1, stats.Counts.Legs)
	assert.Equal(t, 0, stats.Misses)

	s := out.String()
	assert.Contains(t, s, "0: 000000 (0)", "HUD drawn during play")
	assert.Contains(t, s, "Game Over!")
}
