package object

import (
	"math/rand"

	"github.com/veskor/sshnowman/internal/sprite"
)

// Status tracks a falling piece's fate.
type Status int

const (
	StatusFalling Status = iota // steered by the player
	StatusStuck                 // attached to a landed piece this frame
	StatusGone                  // missed, to be discarded
)

// Piece is a snowman piece: steered by the player while it falls, then a
// stationary part of a chain once it lands. Position is the center of the
// hit-box sprite; velocity is logical pixels per frame.
type Piece struct {
	ID     int
	Kind   Kind
	Layers Variant

	X, Y   float64
	VX, VY float64
	Speed  float64

	Width    float64 // hit-box sprite size
	Height   float64
	HitRatio float64

	Limit  float64 // y past which the piece lands (legs) or misses (others)
	Status Status

	// Connected marks a landed piece that already has something stacked on
	// it; connected pieces can't be attached to again.
	Connected bool

	// AttachedTo is the ID of the landed piece this one stuck to, 0 for a
	// chain base.
	AttachedTo int

	layerSprites []*sprite.Sprite // resolved per layer, same order as Layers
}

// NewPiece spawns a falling piece: kind drawn uniformly from the candidate
// list, variant drawn uniformly from the kind's templates. The piece starts
// half its height above the top edge at a random x within the gutters,
// falling at the given base speed (capped at the maximum).
func NewPiece(id int, rng *rand.Rand, candidates []Kind, speed float64, store *sprite.Store) (*Piece, error) {
	kind := candidates[rng.Intn(len(candidates))]
	templates := variants[kind]
	layers := templates[rng.Intn(len(templates))]

	if speed > SpeedMax {
		speed = SpeedMax
	}

	layerSprites := make([]*sprite.Sprite, len(layers))
	for i, layer := range layers {
		spr, err := store.Get(layer.Sprite)
		if err != nil {
			return nil, err
		}
		layerSprites[i] = spr
	}

	hitBox := layerSprites[0]
	p := &Piece{
		ID:           id,
		Kind:         kind,
		Layers:       layers,
		X:            float64(randIntIncl(rng, GutterLeft, GutterRight)),
		Y:            -float64(hitBox.Height / 2),
		VY:           speed,
		Speed:        speed,
		Width:        float64(hitBox.Width),
		Height:       float64(hitBox.Height),
		HitRatio:     layers[0].Ratio,
		Status:       StatusFalling,
		layerSprites: layerSprites,
	}

	// Legs settle at a randomized depth; everything else must be caught
	// before the bottom gutter.
	if kind == Legs {
		p.Limit = FieldHeight - float64(randIntIncl(rng, hitBox.Height/2, hitBox.Height))
	} else {
		p.Limit = FieldHeight - GutterBottom
	}
	return p, nil
}

// ApplyInput sets the piece's velocity from this frame's input snapshot.
// Steering is held-key based; right wins when both directions are held.
// Dropping forces maximum fall speed while held.
func (p *Piece) ApplyInput(in Input) {
	switch {
	case in.Right:
		p.VX = p.Speed * 2
	case in.Left:
		p.VX = -p.Speed * 2
	default:
		p.VX = 0
	}

	if in.Drop {
		p.VY = SpeedMax
	} else {
		p.VY = p.Speed
	}
}

// Update moves the piece one frame: clamp x into the gutters, reset a
// dropped piece's fall speed inside its kind's slow zone, then advance.
// Landed pieces don't move. The clamp runs before the move, so a frame's
// movement can leave x outside the gutters until the next frame.
func (p *Piece) Update(ctx UpdateContext) (bool, error) {
	if p.Status != StatusFalling {
		return false, nil
	}

	p.ClampX()
	if p.VY != 0 && p.Y > FieldHeight-SlowZone(p.Kind) {
		p.VY = p.Speed
	}
	p.X += p.VX
	p.Y += p.VY
	return false, nil
}

// ClampX keeps the piece's center inside the gutters.
func (p *Piece) ClampX() {
	if p.X < GutterLeft {
		p.X = GutterLeft
	} else if p.X > GutterRight {
		p.X = GutterRight
	}
}

// Freeze stops the piece where it is and clamps it into the gutters, the
// final adjustment a piece gets when it joins the landed set.
func (p *Piece) Freeze() {
	p.VX = 0
	p.VY = 0
	p.ClampX()
}

// Draw blits every layer at its offset from the hit-box rectangle's
// top-left corner.
func (p *Piece) Draw(ctx DrawContext) error {
	left := p.X - p.Width/2
	top := p.Y - p.Height/2
	for i, layer := range p.Layers {
		spr := p.layerSprites[i]
		ctx.Canvas.DrawMask(left+layer.XOffset, top+layer.YOffset, spr.Width, spr.Height, spr.Mask)
	}
	return nil
}

// randIntIncl returns a uniform random int in [lo, hi], both ends inclusive.
func randIntIncl(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}
