// Package loop provides the main game loop and state management.
package loop

import (
	"bufio"
	"io"
	"time"

	"github.com/veskor/sshnowman/internal/draw"
	"github.com/veskor/sshnowman/internal/input"
	"github.com/veskor/sshnowman/internal/object"
)

// Run starts the main game loop with the standard Input → Update → Draw
// cycle. It blocks until the game ends and returns the final results.
func Run(r *bufio.Reader, w io.Writer, opts Options) (Stats, error) {
	state := NewState(opts)
	state.InputStream = input.StartStream(r)
	state.styles = newStyles(w)

	termSize := opts.TermSize
	if termSize == nil {
		termSize = draw.DefaultTermSizeFunc
	}

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	// Create scaled canvas - maps the logical field to terminal pixels,
	// clamped and centered on oversized terminals.
	termWidth, termHeight, _ := termSize()
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, object.FieldWidth, object.FieldHeight)
	canvas.SetOffset(offsetCol, offsetRow)
	cw := draw.NewChunkWriter(w, offsetCol, offsetRow)

	lastTime := time.Now()

	for state.Running {
		frameStart := time.Now()
		state.Delta = frameStart.Sub(lastTime)
		lastTime = frameStart

		// ===== INPUT PHASE =====
		processInput(state)

		// ===== UPDATE PHASE =====
		updateScreen(state, canvas, cw, termSize, w)

		switch state.GameState {
		case GameStateStart:
			updateStartState(state)
		case GameStatePlaying:
			if err := updatePlayingState(state); err != nil {
				return state.Stats(), err
			}
		case GameStatePaused:
			updatePausedState(state)
		case GameStateOver:
			updateOverState(state)
		}

		// ===== DRAW PHASE =====
		if err := drawFrame(state, cw, canvas); err != nil {
			return state.Stats(), err
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < targetFrameTime {
			time.Sleep(targetFrameTime - elapsed)
		}
	}

	state.Sounds.StopMusic()
	draw.ClearScreen(w)
	return state.Stats(), nil
}

// processInput reads this frame's input snapshot and handles the keys that
// work in every state: quitting, and the inactivity timeout.
func processInput(state *State) {
	inp := input.ReadInput(state.InputStream)
	state.Input = inp

	if len(inp.Pressed) > 0 {
		state.lastInput = time.Now()
		state.isInactive = false
	} else if state.Opts.IdleQuit {
		idle := time.Since(state.lastInput).Seconds()
		if idle > InactivityDisconnectSeconds {
			state.Running = false
		} else if idle > InactivityWarnSeconds {
			state.isInactive = true
		}
	}

	if inp.Quit {
		if state.GameState == GameStatePlaying {
			// Quitting mid-game still shows the final screen.
			endGame(state)
		} else {
			state.Running = false
		}
	}
}

// updateScreen checks for terminal resize and updates canvas scaling and
// centering. On actual size changes the terminal is cleared to remove
// residual pixels outside the new canvas area.
func updateScreen(state *State, canvas *draw.Canvas, cw *draw.ChunkWriter, termSize draw.TermSizeFunc, w io.Writer) {
	termWidth, termHeight, err := termSize()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth != canvas.TerminalWidth() || renderHeight != canvas.TerminalHeight() ||
		offsetCol != canvas.OffsetCol() || offsetRow != canvas.OffsetRow() {
		draw.ClearScreen(w)
	}

	canvas.Resize(renderWidth, renderHeight)
	canvas.SetOffset(offsetCol, offsetRow)
	cw.SetOffset(offsetCol, offsetRow)
}

// clampTermSize clamps terminal dimensions to the max render resolution and
// computes the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = termWidth
	renderHeight = termHeight
	if renderWidth > MaxTermWidth {
		renderWidth = MaxTermWidth
	}
	if renderHeight > MaxTermHeight {
		renderHeight = MaxTermHeight
	}
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}

// drawFrame draws the whole frame into the chunk writer and flushes it:
// background and sprites on the canvas, then text overlays on top.
func drawFrame(state *State, cw *draw.ChunkWriter, canvas *draw.Canvas) error {
	draw.ClearScreen(cw)
	canvas.Clear()

	drawBackground(state, canvas)

	ctx := object.DrawContext{
		Canvas: canvas,
		Writer: cw,
	}

	// Canvas pass: skip popups, they overlay the rendered canvas.
	for _, obj := range state.Objects {
		if _, isPopup := obj.(*object.Popup); isPopup {
			continue
		}
		if err := obj.Draw(ctx); err != nil {
			return err
		}
	}

	state.Chains.Scan(func(p *object.Piece) bool {
		_ = p.Draw(ctx)
		return true
	})

	if state.Piece != nil {
		if err := state.Piece.Draw(ctx); err != nil {
			return err
		}
	}

	canvas.Render(cw)
	canvas.RenderBorder(cw)

	// Overlay pass: popups and UI write over the rendered canvas.
	for _, obj := range state.Objects {
		if _, isPopup := obj.(*object.Popup); !isPopup {
			continue
		}
		if err := obj.Draw(ctx); err != nil {
			return err
		}
	}

	drawUI(state, cw, canvas)

	return cw.Flush()
}

// backgrounds cycle as snowmen get built.
var backgrounds = [...]string{"snowy_bench", "pines", "aurora"}

// drawBackground blits the current background scene onto the canvas.
func drawBackground(state *State, canvas *draw.Canvas) {
	name := backgrounds[(state.Counts.Snowmen/BackgroundCycle)%len(backgrounds)]
	spr, err := state.Sprites.Get("background/" + name)
	if err != nil {
		return
	}
	canvas.DrawMask(0, 0, spr.Width, spr.Height, spr.Mask)
}
