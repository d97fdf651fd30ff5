package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/veskor/sshnowman/internal/loop"
	"github.com/veskor/sshnowman/internal/object"
	"github.com/veskor/sshnowman/internal/sound"
	"github.com/veskor/sshnowman/internal/sprite"
)

var (
	centipedeFlag = flag.Bool("centipede", false, "Enable centipede mode (multiple arms).")
	infiniteFlag  = flag.Bool("infinite", false, "Enable infinite mode (misses do not count).")
	speedFlag     = flag.Bool("speed", false, "Enable speed increases.")
	muteFlag      = flag.Bool("mute", false, "Disable sound.")
	seedFlag      = flag.Int64("seed", 0, "Random seed (0 uses the clock).")
	imagesFlag    = flag.String("images", "images", "Path to sprite files.")
)

func init() {
	// Short aliases for the mode flags.
	flag.BoolVar(centipedeFlag, "c", false, "Shorthand for -centipede.")
	flag.BoolVar(infiniteFlag, "i", false, "Shorthand for -infinite.")
	flag.BoolVar(speedFlag, "s", false, "Shorthand for -speed.")
}

func main() {
	flag.Parse()

	sprites := sprite.NewStore(*imagesFlag)
	if err := sprites.Preload(object.SpriteNames()...); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load sprites: %v\n", err)
		os.Exit(1)
	}

	sounds := initSound(*muteFlag)
	defer sounds.Close()

	stats, err := runGame(sprites, sounds)
	if err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("snowmen: %d  heads: %d  arms: %d  legs: %d\n",
		stats.Counts.Snowmen, stats.Counts.Heads, stats.Counts.Arms, stats.Counts.Legs)
	fmt.Printf("score: %d  misses: %d\n", stats.Score, stats.Misses)
}

// initSound creates the audio player, falling back to silence when no
// audio device is available.
func initSound(mute bool) sound.Player {
	if mute {
		return sound.Nop{}
	}
	player, err := sound.NewBeep()
	if err != nil {
		fmt.Fprintf(os.Stderr, "audio initialization failed: %v (continuing without sound)\n", err)
		return sound.Nop{}
	}
	for _, name := range sound.CueNames {
		if err := player.Load(name); err != nil {
			fmt.Fprintf(os.Stderr, "audio cue failed: %v (continuing without sound)\n", err)
			player.Close()
			return sound.Nop{}
		}
	}
	return player
}

// runGame puts the terminal in raw mode for the duration of the game, so
// the final stats print to a sane terminal.
func runGame(sprites *sprite.Store, sounds sound.Player) (loop.Stats, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return loop.Stats{}, fmt.Errorf("failed to enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	reader := bufio.NewReader(os.Stdin)
	return loop.Run(reader, os.Stdout, loop.Options{
		Centipede: *centipedeFlag,
		Infinite:  *infiniteFlag,
		Speed:     *speedFlag,
		Seed:      *seedFlag,
		Sprites:   sprites,
		Sounds:    sounds,
	})
}
