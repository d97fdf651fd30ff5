package loop

import (
	"fmt"
	"time"

	"github.com/veskor/sshnowman/internal/input"
	"github.com/veskor/sshnowman/internal/object"
	"github.com/veskor/sshnowman/internal/physics"
	"github.com/veskor/sshnowman/internal/sound"
)

// updatePlayingState advances one frame of active play: spawn a piece if
// the previous one resolved, steer it, attach it to anything it touched
// before it moves, move everything, then settle or miss it.
func updatePlayingState(state *State) error {
	if state.Input.Pause {
		pauseGame(state)
		return nil
	}

	if state.Piece == nil {
		if err := spawnPiece(state); err != nil {
			return err
		}
	}

	state.Piece.ApplyInput(state.Input)

	checkAttachment(state)

	if err := updateObjects(state); err != nil {
		return err
	}
	if _, err := state.Piece.Update(state.UpdateContext()); err != nil {
		return err
	}

	settlePiece(state)

	if !state.Opts.Infinite && state.Misses >= MissesMax {
		endGame(state)
	}
	return nil
}

// spawnPiece creates the next falling piece from the current candidate
// weights and charges it to the piece counts.
func spawnPiece(state *State) error {
	candidates := object.SpawnCandidates(state.Counts, state.Opts.Centipede)
	speed := float64(object.SpeedMin)
	if state.Opts.Speed {
		speed = float64(object.SpeedMin + state.Counts.Snowmen/SpeedBump)
	}

	state.nextPieceID++
	p, err := object.NewPiece(state.nextPieceID, state.RNG, candidates, speed, state.Sprites)
	if err != nil {
		return err
	}
	state.Counts.Inc(p.Kind)
	state.Piece = p
	return nil
}

// checkAttachment tests the falling piece against the landed pieces, in
// landing order, and sticks it to the first eligible hit. The test runs
// before the piece moves, so it sticks at last frame's position plus one
// final step.
func checkAttachment(state *State) {
	p := state.Piece
	var hit *object.Piece
	state.Chains.Scan(func(landed *object.Piece) bool {
		if landed.Connected {
			return true
		}
		if !object.CanAttach(p.Kind, landed.Kind, state.Opts.Centipede) {
			return true
		}
		if !physics.RectsOverlap(p.X, p.Y, p.Width, p.Height,
			landed.X, landed.Y, landed.Width, landed.Height) {
			return true
		}
		if !physics.CollideCircleRatio(p.HitRatio, p.X, p.Y, p.Width, p.Height,
			landed.X, landed.Y, landed.Width, landed.Height) {
			return true
		}
		hit = landed
		return false
	})
	if hit == nil {
		return
	}

	state.cue(sound.CueCoin)
	p.Status = object.StatusStuck
	p.AttachedTo = hit.ID
	hit.Connected = true
	state.Score += Points
	state.Spawn(object.NewPopup(p.X, p.Y, fmt.Sprintf("+%d", Points), PopupLifetime))
}

// settlePiece resolves a piece that stuck or reached its limit. Legs land
// wherever their limit put them and start a new chain. A stuck head
// completes a snowman; over the cap, the oldest snowman melts. Anything
// that reaches the bottom without sticking is a miss.
func settlePiece(state *State) {
	p := state.Piece
	stuck := p.Status == object.StatusStuck
	pastLimit := p.Y > p.Limit

	switch {
	case stuck || (p.Kind == object.Legs && pastLimit):
		p.Freeze()
		switch p.Kind {
		case object.Legs:
			state.Chains.Add(p, 0)
		case object.Head:
			state.Chains.Add(p, p.AttachedTo)
			state.Chains.PushHead(p.ID)
			state.Counts.Snowmen++
			if state.Chains.HeadCount() > SnowmenMax {
				state.Chains.EvictOldest()
			}
		default:
			state.Chains.Add(p, p.AttachedTo)
		}
		state.Piece = nil

	case pastLimit:
		state.cue(sound.CueBlockBreak)
		p.Status = object.StatusGone
		state.Counts.Dec(p.Kind)
		state.Misses++
		state.Score -= Points
		state.Spawn(object.NewPopup(p.X, p.Limit, fmt.Sprintf("-%d", Points), PopupLifetime))
		state.Piece = nil
	}
}

// updateObjects updates all decoration objects and removes any that
// request removal, returning pooled ones for reuse.
func updateObjects(state *State) error {
	ctx := state.UpdateContext()

	kept := state.Objects[:0] // reuse backing array
	for _, obj := range state.Objects {
		remove, err := obj.Update(ctx)
		if err != nil {
			return err
		}
		if remove {
			object.ReleaseObject(obj)
			continue
		}
		kept = append(kept, obj)
	}
	state.Objects = kept

	state.FlushSpawned()
	return nil
}

// pauseGame freezes play until the pause key is pressed again. The music
// keeps playing.
func pauseGame(state *State) {
	state.cue(sound.CuePause)
	input.Reset(state.InputStream)
	state.GameState = GameStatePaused
}

// endGame stops the music and moves to the final screen.
func endGame(state *State) {
	state.Sounds.StopMusic()
	state.cue(sound.CueGameOver)
	input.Reset(state.InputStream)
	state.gameOverAt = time.Now()
	state.GameState = GameStateOver
}
