package object

import (
	"math"
	"sync"
)

// snowflakePool reuses snowflake allocations across respawns.
var snowflakePool = sync.Pool{
	New: func() any {
		return &Snowflake{}
	},
}

// Snowflake is a decorative single-pixel flake drifting down the field.
type Snowflake struct {
	X, Y  float64
	VY    float64
	sway  float64 // horizontal speed amplitude
	phase float64
}

// NewSnowflake gets a snowflake from the pool and resets it.
func NewSnowflake(x, y, vy, sway, phase float64) *Snowflake {
	s := snowflakePool.Get().(*Snowflake)
	s.X = x
	s.Y = y
	s.VY = vy
	s.sway = sway
	s.phase = phase
	return s
}

func (s *Snowflake) Update(ctx UpdateContext) (bool, error) {
	s.phase += 0.1
	s.X += math.Sin(s.phase) * s.sway
	s.Y += s.VY
	return s.Y > FieldHeight, nil
}

func (s *Snowflake) Draw(ctx DrawContext) error {
	ctx.Canvas.SetFloat(s.X, s.Y)
	return nil
}

// Release returns the snowflake to the pool for reuse.
func (s *Snowflake) Release() {
	snowflakePool.Put(s)
}

// Snowfall keeps a target population of snowflakes alive, replacing the ones
// that drift off the bottom.
type Snowfall struct {
	target int
	seeded bool
}

// NewSnowfall creates a spawner that maintains the given flake count.
func NewSnowfall(target int) *Snowfall {
	return &Snowfall{target: target}
}

func (f *Snowfall) Update(ctx UpdateContext) (bool, error) {
	count := 0
	for _, obj := range ctx.Objects {
		if _, ok := obj.(*Snowflake); ok {
			count++
		}
	}

	for i := count; i < f.target; i++ {
		x := ctx.RNG.Float64() * FieldWidth
		y := -1.0
		if !f.seeded {
			// The first fill scatters flakes over the whole field so the
			// snow doesn't start as a single descending wave.
			y = ctx.RNG.Float64() * FieldHeight
		}
		vy := 1.0 + ctx.RNG.Float64()*1.5
		sway := 0.2 + ctx.RNG.Float64()*0.6
		phase := ctx.RNG.Float64() * 2 * math.Pi
		ctx.Spawner.Spawn(NewSnowflake(x, y, vy, sway, phase))
	}
	f.seeded = true
	return false, nil
}

func (f *Snowfall) Draw(ctx DrawContext) error {
	return nil
}
