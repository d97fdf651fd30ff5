package loop

import (
	"math/rand"
	"time"

	"github.com/veskor/sshnowman/internal/draw"
	"github.com/veskor/sshnowman/internal/input"
	"github.com/veskor/sshnowman/internal/object"
	"github.com/veskor/sshnowman/internal/sound"
	"github.com/veskor/sshnowman/internal/sprite"
)

// GameState represents the current game phase.
type GameState int

const (
	GameStateStart   GameState = iota // Title screen
	GameStatePlaying                  // Active gameplay
	GameStatePaused                   // Frozen mid-game, music keeps playing
	GameStateOver                     // Final screen, any key exits
)

// Options configures a game run.
type Options struct {
	Centipede bool // arms may chain onto arms
	Infinite  bool // misses don't end the game
	Speed     bool // base fall speed grows with snowmen built

	Seed    int64         // RNG seed; 0 seeds from the clock
	Sprites *sprite.Store // required
	Sounds  sound.Player  // nil plays nothing

	TermSize draw.TermSizeFunc // nil reads the local terminal
	IdleQuit bool              // end the session after prolonged inactivity
}

// Stats reports the results of a finished game.
type Stats struct {
	Score  int
	Misses int
	Counts object.Counts
}

// State holds all game state for one session.
type State struct {
	GameState GameState
	Running   bool
	Input     object.Input
	Delta     time.Duration

	Score  int
	Misses int
	Counts object.Counts

	Piece   *object.Piece   // the falling piece, nil between settle and respawn
	Chains  *Chains         // landed pieces and their attachments
	Objects []object.Object // decorations: snow, score popups
	toSpawn []object.Object // objects to add after the current update cycle

	RNG     *rand.Rand
	Opts    Options
	Sounds  sound.Player
	Sprites *sprite.Store

	InputStream *input.Stream
	nextPieceID int
	lastInput   time.Time
	isInactive  bool
	gameOverAt  time.Time
	styles      styles
}

// NewState creates a new initialized game state.
func NewState(opts Options) *State {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	sounds := opts.Sounds
	if sounds == nil {
		sounds = sound.Nop{}
	}

	return &State{
		GameState: GameStateStart,
		Running:   true,
		Chains:    NewChains(),
		Objects:   []object.Object{object.NewSnowfall(SnowflakeTarget)},
		RNG:       rand.New(rand.NewSource(seed)),
		Opts:      opts,
		Sounds:    sounds,
		Sprites:   opts.Sprites,
		lastInput: time.Now(),
	}
}

// Spawn queues an object to be added after the current update cycle.
// Implements object.Spawner.
func (s *State) Spawn(obj object.Object) {
	s.toSpawn = append(s.toSpawn, obj)
}

// FlushSpawned adds all queued objects to the game and clears the queue.
func (s *State) FlushSpawned() {
	s.Objects = append(s.Objects, s.toSpawn...)
	s.toSpawn = s.toSpawn[:0]
}

// UpdateContext creates an UpdateContext from the current state.
func (s *State) UpdateContext() object.UpdateContext {
	return object.UpdateContext{
		Delta:   s.Delta,
		Input:   s.Input,
		RNG:     s.RNG,
		Sprites: s.Sprites,
		Spawner: s,
		Objects: s.Objects,
	}
}

// cue plays a sound effect. Audio failures never interrupt the game.
func (s *State) cue(name string) {
	_ = s.Sounds.Play(name)
}

// Stats snapshots the final results.
func (s *State) Stats() Stats {
	return Stats{
		Score:  s.Score,
		Misses: s.Misses,
		Counts: s.Counts,
	}
}
