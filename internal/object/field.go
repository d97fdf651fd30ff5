package object

// Field geometry in logical pixels. The board is a fixed 800x600 coordinate
// space; rendering scales it to whatever terminal it runs in.
const (
	FieldWidth  = 800
	FieldHeight = 600

	GutterLeft   = 60
	GutterRight  = FieldWidth - GutterLeft
	GutterBottom = 70
)

// Fall speeds in logical pixels per frame.
const (
	SpeedMin = 6
	SpeedMax = 16
)

// Clutter is how many extra unmatched legs may stand on the board before the
// spawner stops offering more.
const Clutter = 2

// slowZoneBands sizes the per-kind braking band near the bottom of the board:
// band height is (slowZoneBands - kind index) * GutterBottom. The multiplier
// is tuned, not derived.
const slowZoneBands = 4
