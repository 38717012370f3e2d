package world

import "sync"

// Cache memoizes generated chunks. Safe for concurrent use.
type Cache struct {
	mu     sync.Mutex
	chunks map[Coord]*Chunk
}

// NewCache returns an empty chunk cache.
func NewCache() *Cache {
	return &Cache{chunks: make(map[Coord]*Chunk)}
}

// At returns the chunk at c, generating it on first request.
// Concurrent callers for the same key share one generation.
func (c *Cache) At(coord Coord) *Chunk {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ch, ok := c.chunks[coord]; ok {
		return ch
	}
	ch := ChunkAt(coord)
	c.chunks[coord] = ch
	return ch
}

// Len reports the number of cached chunks.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.chunks)
}

// Prune drops chunks farther than radius (Chebyshev distance) from center
// and returns how many were removed.
func (c *Cache) Prune(center Coord, radius int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for k := range c.chunks {
		if Distance(k, center) > radius {
			delete(c.chunks, k)
			n++
		}
	}
	return n
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
