package loop

import "time"

// Game configuration constants.
// All tunable game parameters are centralized here for easy adjustment.

// Timing
const (
	targetFPS       = 30
	targetFrameTime = time.Second / targetFPS
)

// Rules
const (
	SnowmenMax = 2  // Completed snowmen kept on screen before the oldest melts
	MissesMax  = 10 // Missed pieces before the game ends
	Points     = 50 // Score gained per attached piece, lost per miss
	SpeedBump  = 3  // Snowmen to build per +1 base speed (speed mode only)
)

// Presentation
const (
	BackgroundCycle = 5 // Snowmen built per background change
	SnowflakeTarget = 40
	PopupLifetime   = 800 * time.Millisecond
	gameOverGrace   = 700 * time.Millisecond // so a held drop key can't dismiss the screen
)

// Max render resolution. Larger terminals get a centered, bordered canvas.
const (
	MaxTermWidth  = 240
	MaxTermHeight = 75
)

// Inactivity
const (
	InactivityWarnSeconds       = 90
	InactivityDisconnectSeconds = 120
)
