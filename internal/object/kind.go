package object

// Kind is a snowman piece's category. The zero value is Head; the constant
// order matches the piece catalog and feeds the slow-zone formula.
type Kind int

const (
	Head Kind = iota
	Arms
	Legs
)

// String returns the catalog name of the kind.
func (k Kind) String() string {
	switch k {
	case Head:
		return "heads"
	case Arms:
		return "arms"
	case Legs:
		return "legs"
	}
	return "unknown"
}

// Index returns the kind's position in the catalog order.
func (k Kind) Index() int {
	return int(k)
}

// SlowZone returns the height of the band above the bottom edge in which a
// dropped piece's fall speed resets to its base speed.
func SlowZone(k Kind) float64 {
	return float64((slowZoneBands - k.Index()) * GutterBottom)
}

// CanAttach reports whether a falling piece of the given kind may attach to
// a landed piece. Legs never initiate an attachment; heads stack on arms,
// arms stack on legs, and in centipede mode arms also stack on arms.
func CanAttach(falling, landed Kind, centipede bool) bool {
	switch {
	case falling == Head && landed == Arms:
		return true
	case falling == Arms && landed == Legs:
		return true
	case centipede && falling == Arms && landed == Arms:
		return true
	}
	return false
}

// Counts tracks pieces by kind: incremented at spawn, decremented only when
// a piece is missed. Landing, sticking and eviction leave the counters
// untouched, so a kind's count reads as "spawned and not wasted".
type Counts struct {
	Heads   int
	Arms    int
	Legs    int
	Snowmen int
}

// Of returns the count for a kind.
func (c Counts) Of(k Kind) int {
	switch k {
	case Head:
		return c.Heads
	case Arms:
		return c.Arms
	case Legs:
		return c.Legs
	}
	return 0
}

// Inc increments the count for a kind.
func (c *Counts) Inc(k Kind) {
	switch k {
	case Head:
		c.Heads++
	case Arms:
		c.Arms++
	case Legs:
		c.Legs++
	}
}

// Dec decrements the count for a kind.
func (c *Counts) Dec(k Kind) {
	switch k {
	case Head:
		c.Heads--
	case Arms:
		c.Arms--
	case Legs:
		c.Legs--
	}
}

// SpawnCandidates builds the weighted kind list for the next spawn. Kinds
// appear once per unit of demand and the draw is uniform, which keeps the
// three kinds balanced enough that snowmen keep completing:
//
//  1. centipede mode always offers two arms
//  2. legs are offered while unmatched legs stay under the clutter allowance
//  3. centipede: heads are offered once per leg waiting for one, and two
//     more legs when nothing is waiting
//  4. otherwise: arms are offered once per leg short of arms, heads once per
//     arms short of heads
//
// The result is never empty: rule 2 can only be skipped when unmatched legs
// exist, and those force rule 3 or 4 to contribute.
func SpawnCandidates(c Counts, centipede bool) []Kind {
	var kinds []Kind
	if centipede {
		kinds = append(kinds, Arms, Arms)
	}
	if c.Legs-c.Heads < Clutter {
		kinds = append(kinds, Legs)
	}

	if centipede {
		if c.Legs > c.Heads {
			for i := 0; i < c.Legs-c.Heads; i++ {
				kinds = append(kinds, Head)
			}
		}
		if c.Legs == c.Heads {
			kinds = append(kinds, Legs, Legs)
		}
	} else {
		if c.Legs > c.Arms {
			for i := 0; i < c.Legs-c.Arms; i++ {
				kinds = append(kinds, Arms)
			}
		}
		if c.Arms > c.Heads {
			for i := 0; i < c.Arms-c.Heads; i++ {
				kinds = append(kinds, Head)
			}
		}
	}
	return kinds
}
