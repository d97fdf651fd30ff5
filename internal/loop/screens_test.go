package loop

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/veskor/sshnowman/internal/draw"
	"github.com/veskor/sshnowman/internal/object"
)

func TestStartScreenWaitsForKey(t *testing.T) {
	state := newTestState(t, Options{})

	updateStartState(state)
	assert.Equal(t, GameStateStart, state.GameState)

	state.Input = object.Input{Enter: true}
	updateStartState(state)
	assert.Equal(t, GameStatePlaying, state.GameState)
}

func TestStartScreenDropKeyStarts(t *testing.T) {
	state := newTestState(t, Options{})

	state.Input = object.Input{Drop: true}
	updateStartState(state)
	assert.Equal(t, GameStatePlaying, state.GameState)
}

func TestPausedResumesOnPauseKey(t *testing.T) {
	state := newTestState(t, Options{})
	state.GameState = GameStatePaused

	state.Input = object.Input{Drop: true, Pressed: []byte("s")}
	updatePausedState(state)
	assert.Equal(t, GameStatePaused, state.GameState, "only the pause key resumes")

	state.Input = object.Input{Pause: true}
	updatePausedState(state)
	assert.Equal(t, GameStatePlaying, state.GameState)
}

func TestGameOverGracePeriod(t *testing.T) {
	state := newTestState(t, Options{})
	state.GameState = GameStateOver
	state.gameOverAt = time.Now()
	state.Input = object.Input{Pressed: []byte("s")}

	// A key held over from play must not dismiss the screen instantly
	updateOverState(state)
	assert.True(t, state.Running)

	state.gameOverAt = time.Now().Add(-time.Second)
	updateOverState(state)
	assert.False(t, state.Running)
}

func TestGameOverWaitsForKey(t *testing.T) {
	state := newTestState(t, Options{})
	state.GameState = GameStateOver
	state.gameOverAt = time.Now().Add(-time.Second)

	updateOverState(state)
	assert.True(t, state.Running, "no key pressed, screen stays up")
}

func TestDrawUIPerState(t *testing.T) {
	state := newTestState(t, Options{})
	canvas := draw.NewCanvas(80, 24)

	cases := []struct {
		gameState GameState
		want      string
	}{
		{GameStateStart, "S N O W M A N"},
		{GameStatePlaying, "0: 000000 (0)"},
		{GameStatePaused, "Paused"},
		{GameStateOver, "Game Over!"},
	}
	for _, tc := range cases {
		var out strings.Builder
		cw := draw.NewChunkWriter(&out, 0, 0)
		state.GameState = tc.gameState

		drawUI(state, cw, canvas)
		assert.NoError(t, cw.Flush())
		assert.Contains(t, out.String(), tc.want)
	}
}

func TestDrawUIInactivityWarning(t *testing.T) {
	state := newTestState(t, Options{})
	state.isInactive = true
	canvas := draw.NewCanvas(80, 24)

	var out strings.Builder
	cw := draw.NewChunkWriter(&out, 0, 0)
	drawUI(state, cw, canvas)
	assert.NoError(t, cw.Flush())
	assert.Contains(t, out.String(), "disconnecting soon")
}

func TestHUDFormat(t *testing.T) {
	state := newTestState(t, Options{})
	state.Counts.Snowmen = 3
	state.Score = 1250
	state.Misses = 7

	var out strings.Builder
	cw := draw.NewChunkWriter(&out, 0, 0)
	drawHUD(state, cw)
	assert.NoError(t, cw.Flush())
	assert.Contains(t, out.String(), "3: 001250 (7)")
}
