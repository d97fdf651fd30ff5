package loop

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/veskor/sshnowman/internal/object"
)

func landed(id int, kind object.Kind) *object.Piece {
	return &object.Piece{ID: id, Kind: kind, Status: object.StatusStuck}
}

func TestChainsAddAndGet(t *testing.T) {
	c := NewChains()
	assert.Equal(t, 0, c.Len())

	c.Add(landed(1, object.Legs), 0)
	assert.Equal(t, 1, c.Len())

	p, ok := c.Get(1)
	assert.True(t, ok)
	assert.Equal(t, 1, p.ID)

	_, ok = c.Get(2)
	assert.False(t, ok)
}

func TestChainsScanLandingOrder(t *testing.T) {
	c := NewChains()
	c.Add(landed(3, object.Legs), 0)
	c.Add(landed(1, object.Arms), 3)
	c.Add(landed(2, object.Head), 1)

	var ids []int
	c.Scan(func(p *object.Piece) bool {
		ids = append(ids, p.ID)
		return true
	})
	assert.Equal(t, []int{3, 1, 2}, ids)
}

func TestChainsScanEarlyStop(t *testing.T) {
	c := NewChains()
	c.Add(landed(1, object.Legs), 0)
	c.Add(landed(2, object.Arms), 1)

	visited := 0
	c.Scan(func(p *object.Piece) bool {
		visited++
		return false
	})
	assert.Equal(t, 1, visited)
}

func TestChainsEvictOldestSnowman(t *testing.T) {
	c := NewChains()

	// First snowman: legs 1, arms 2, head 3
	c.Add(landed(1, object.Legs), 0)
	c.Add(landed(2, object.Arms), 1)
	c.Add(landed(3, object.Head), 2)
	c.PushHead(3)

	// Second snowman: legs 4, arms 5, head 6
	c.Add(landed(4, object.Legs), 0)
	c.Add(landed(5, object.Arms), 4)
	c.Add(landed(6, object.Head), 5)
	c.PushHead(6)

	assert.Equal(t, 2, c.HeadCount())

	c.EvictOldest()
	assert.Equal(t, 1, c.HeadCount())
	assert.Equal(t, 3, c.Len())

	for _, id := range []int{1, 2, 3} {
		_, ok := c.Get(id)
		assert.False(t, ok, "piece %d should have melted away", id)
	}
	for _, id := range []int{4, 5, 6} {
		_, ok := c.Get(id)
		assert.True(t, ok, "piece %d belongs to the surviving snowman", id)
	}

	// Landing order is compacted too
	var ids []int
	c.Scan(func(p *object.Piece) bool {
		ids = append(ids, p.ID)
		return true
	})
	assert.Equal(t, []int{4, 5, 6}, ids)
}

func TestChainsEvictWalksLongChain(t *testing.T) {
	c := NewChains()

	// Centipede-style tower: legs 1, arms 2, arms 3, head 4
	c.Add(landed(1, object.Legs), 0)
	c.Add(landed(2, object.Arms), 1)
	c.Add(landed(3, object.Arms), 2)
	c.Add(landed(4, object.Head), 3)
	c.PushHead(4)

	c.EvictOldest()
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0, c.HeadCount())
}

func TestChainsEvictEmpty(t *testing.T) {
	c := NewChains()
	c.EvictOldest()
	assert.Equal(t, 0, c.Len())
}
