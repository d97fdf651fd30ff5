package loop

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/veskor/sshnowman/internal/draw"
	"github.com/veskor/sshnowman/internal/input"
)

// styles holds the lipgloss styles for one session's UI text. Built per
// run so the renderer targets the session's writer.
type styles struct {
	Title  lipgloss.Style
	Banner lipgloss.Style
	HUD    lipgloss.Style
	Hint   lipgloss.Style
}

// newStyles builds the UI styles for the given output. The color profile
// is pinned rather than detected: the game already requires ANSI cursor
// addressing, and detection fails on SSH session writers.
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w, termenv.WithProfile(termenv.ANSI256))
	return styles{
		Title:  r.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
		Banner: r.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		HUD:    r.NewStyle().Bold(true),
		Hint:   r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// updateStartState handles the title screen.
func updateStartState(state *State) {
	_ = updateObjects(state)
	if state.Input.Enter || state.Input.Drop {
		startGame(state)
	}
}

// updatePausedState waits for the pause key to resume. Everything stays
// frozen; only the music keeps going.
func updatePausedState(state *State) {
	if state.Input.Pause {
		input.Reset(state.InputStream)
		state.GameState = GameStatePlaying
	}
}

// updateOverState handles the final screen: any key ends the session.
// Input is ignored for a moment after entry so keys held during the last
// moments of play don't dismiss it.
func updateOverState(state *State) {
	_ = updateObjects(state)
	if time.Since(state.gameOverAt) < gameOverGrace {
		return
	}
	if len(state.Input.Pressed) > 0 {
		state.Running = false
	}
}

// startGame leaves the title screen and starts play.
func startGame(state *State) {
	input.Reset(state.InputStream)
	state.Sounds.StartMusic()
	state.GameState = GameStatePlaying
}

// drawUI draws the text overlay for the current game state.
func drawUI(state *State, cw *draw.ChunkWriter, canvas *draw.Canvas) {
	switch state.GameState {
	case GameStateStart:
		drawTitleScreen(state, cw, canvas)
	case GameStatePlaying:
		drawHUD(state, cw)
	case GameStatePaused:
		drawHUD(state, cw)
		drawPausedScreen(state, cw, canvas)
	case GameStateOver:
		drawHUD(state, cw)
		drawOverScreen(state, cw, canvas)
	}

	if state.isInactive {
		warning := state.styles.Hint.Render("Idle, disconnecting soon. Press any key.")
		writeCentered(cw, canvas, canvas.TerminalHeight(), warning)
	}
}

// drawTitleScreen draws the title and controls.
func drawTitleScreen(state *State, cw *draw.ChunkWriter, canvas *draw.Canvas) {
	centerY := canvas.TerminalHeight() / 2

	writeCentered(cw, canvas, centerY-4, state.styles.Title.Render("S N O W M A N"))
	writeCentered(cw, canvas, centerY-2, state.styles.Hint.Render("Do you want to build a snowman?"))
	writeCentered(cw, canvas, centerY+1, state.styles.Banner.Render("Press SPACE to start"))
	writeCentered(cw, canvas, centerY+3,
		state.styles.Hint.Render("Controls: A/D or Arrows to steer, S or SPACE to drop, P to pause, Q to quit"))
}

// drawHUD draws the in-game stats line: snowmen built, score, misses.
func drawHUD(state *State, cw *draw.ChunkWriter) {
	stats := fmt.Sprintf("%d: %06d (%d)", state.Counts.Snowmen, state.Score, state.Misses)
	cw.WriteAt(2, 1, state.styles.HUD.Render(stats))
}

// drawPausedScreen draws the pause banner over the frozen game.
func drawPausedScreen(state *State, cw *draw.ChunkWriter, canvas *draw.Canvas) {
	centerY := canvas.TerminalHeight() / 2
	writeCentered(cw, canvas, centerY-1, state.styles.Banner.Render("Paused"))
	writeCentered(cw, canvas, centerY+1, state.styles.Hint.Render("P to resume"))
}

// drawOverScreen draws the game over banner and exit prompt.
func drawOverScreen(state *State, cw *draw.ChunkWriter, canvas *draw.Canvas) {
	centerY := canvas.TerminalHeight() / 2
	writeCentered(cw, canvas, centerY-2, state.styles.Banner.Render("Game Over!"))

	result := fmt.Sprintf("Snowmen built: %d   Score: %d", state.Counts.Snowmen, state.Score)
	writeCentered(cw, canvas, centerY, state.styles.HUD.Render(result))

	writeCentered(cw, canvas, centerY+2, state.styles.Hint.Render("Press any key"))
}

// writeCentered writes a styled string horizontally centered at the given
// canvas row.
func writeCentered(cw *draw.ChunkWriter, canvas *draw.Canvas, row int, s string) {
	col := canvas.TerminalWidth()/2 - lipgloss.Width(s)/2
	if col < 1 {
		col = 1
	}
	cw.WriteAt(col, row, s)
}
