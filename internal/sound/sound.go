// Package sound plays the game's audio cues and background music.
//
// All audio is synthesized; nothing is read from disk. Cues are rendered to
// sample buffers on first use and cached. Game code talks to the Player
// interface so sessions without a local audio device (SSH, -mute) can run
// with the silent implementation.
package sound

// Cue names known to the player.
const (
	CueCoin       = "coin"
	CueBlockBreak = "block_break"
	CuePause      = "pause"
	CueGameOver   = "game_over"
)

// CueNames lists every cue for preloading at startup.
var CueNames = []string{CueCoin, CueBlockBreak, CuePause, CueGameOver}

// Player triggers audio cues and controls the background music.
type Player interface {
	// Load renders and caches the named cue without playing it.
	// Unknown names are an error.
	Load(name string) error

	// Play starts the named cue. Unknown names are an error.
	Play(name string) error

	// StartMusic begins the looping background theme.
	StartMusic()

	// StopMusic ends the theme for good; cues keep working.
	StopMusic()

	// Close stops all playback.
	Close()
}

// Nop is a Player that produces no audio. Used for SSH sessions and muted
// games; every call succeeds.
type Nop struct{}

func (Nop) Load(string) error { return nil }
func (Nop) Play(string) error { return nil }
func (Nop) StartMusic()       {}
func (Nop) StopMusic()        {}
func (Nop) Close()            {}
