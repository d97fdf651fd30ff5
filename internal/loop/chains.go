package loop

import (
	"github.com/kamstrup/intmap"

	"github.com/veskor/sshnowman/internal/object"
)

// Chains holds the landed pieces and the attachment links between them.
// Every landed piece is keyed by ID; attach maps each piece to the ID of
// the piece below it, with 0 marking a chain base (legs standing on the
// ground). A chain is therefore a linked list from head down to legs,
// and completed snowman heads queue up oldest first for eviction.
type Chains struct {
	pieces  *intmap.Map[int, *object.Piece]
	attach  *intmap.Map[int, int]
	ordered []int // landing order, keeps scans and draw order stable
	heads   []int // completed snowman heads, oldest first
}

// NewChains creates an empty landed-piece arena.
func NewChains() *Chains {
	return &Chains{
		pieces: intmap.New[int, *object.Piece](64),
		attach: intmap.New[int, int](64),
	}
}

// Add inserts a landed piece. onto is the ID of the piece it attached to,
// 0 for a chain base.
func (c *Chains) Add(p *object.Piece, onto int) {
	c.pieces.Put(p.ID, p)
	c.attach.Put(p.ID, onto)
	c.ordered = append(c.ordered, p.ID)
}

// Get returns a landed piece by ID.
func (c *Chains) Get(id int) (*object.Piece, bool) {
	return c.pieces.Get(id)
}

// Len returns the number of landed pieces.
func (c *Chains) Len() int {
	return c.pieces.Len()
}

// Scan calls fn for every landed piece in landing order. Returning false
// from fn stops the scan.
func (c *Chains) Scan(fn func(p *object.Piece) bool) {
	for _, id := range c.ordered {
		p, ok := c.pieces.Get(id)
		if !ok {
			continue
		}
		if !fn(p) {
			return
		}
	}
}

// PushHead records a completed snowman by the ID of its head.
func (c *Chains) PushHead(id int) {
	c.heads = append(c.heads, id)
}

// HeadCount returns how many completed snowmen are standing.
func (c *Chains) HeadCount() int {
	return len(c.heads)
}

// EvictOldest melts the oldest completed snowman: the head and every piece
// chained beneath it down to the legs.
func (c *Chains) EvictOldest() {
	if len(c.heads) == 0 {
		return
	}
	id := c.heads[0]
	c.heads = c.heads[1:]

	for id != 0 {
		next, ok := c.attach.Get(id)
		c.pieces.Del(id)
		c.attach.Del(id)
		if !ok {
			break
		}
		id = next
	}
	c.compact()
}

// compact drops evicted IDs from the landing-order slice.
func (c *Chains) compact() {
	kept := c.ordered[:0]
	for _, id := range c.ordered {
		if _, ok := c.pieces.Get(id); ok {
			kept = append(kept, id)
		}
	}
	c.ordered = kept
}
