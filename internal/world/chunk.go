package world

import (
	"image"
	"image/color"
	"math"
	"math/rand/v2"
)

// ChunkSize is the side of a square background tile in world pixels.
const ChunkSize = 512

// Star count bounds per chunk, inclusive.
const (
	minStars = 10
	maxStars = 30
)

// Coord identifies a chunk on the infinite grid.
type Coord struct {
	X, Y int
}

// Origin returns the world position of the chunk's top-left corner.
func (c Coord) Origin() (x, y float64) {
	return float64(c.X * ChunkSize), float64(c.Y * ChunkSize)
}

// CoordAt returns the chunk containing world position (x, y).
func CoordAt(x, y float64) Coord {
	return Coord{X: int(math.Floor(x / ChunkSize)), Y: int(math.Floor(y / ChunkSize))}
}

// Distance is the Chebyshev distance between two chunks.
func Distance(a, b Coord) int {
	return max(abs(a.X-b.X), abs(a.Y-b.Y))
}

// Chunk is a square of star field. Star positions are local to the chunk.
type Chunk struct {
	Coord Coord
	Stars []image.Point
}

// ChunkSeed is the hash that seeds a chunk's star placement.
func ChunkSeed(c Coord) int64 {
	return int64(c.X)*73856093 ^ int64(c.Y)*19349663
}

// ChunkAt generates the chunk at c. The result depends only on c.
func ChunkAt(c Coord) *Chunk {
	seed := ChunkSeed(c)
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed>>16|1)))

	n := minStars + rng.IntN(maxStars-minStars+1)
	stars := make([]image.Point, n)
	for i := range stars {
		stars[i] = image.Pt(rng.IntN(ChunkSize), rng.IntN(ChunkSize))
	}
	return &Chunk{Coord: c, Stars: stars}
}

// Rasterize draws the chunk as a grayscale tile: black sky, white stars.
func (ch *Chunk) Rasterize() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, ChunkSize, ChunkSize))
	for _, s := range ch.Stars {
		img.SetGray(s.X, s.Y, color.Gray{Y: 255})
	}
	return img
}

// VisibleChunks lists the chunks overlapping the viewport whose top-left
// corner is (left, top), in x-major order.
func VisibleChunks(left, top, width, height float64) []Coord {
	x0, x1 := chunkSpan(left, width)
	y0, y1 := chunkSpan(top, height)

	out := make([]Coord, 0, (x1-x0+1)*(y1-y0+1))
	for x := x0; x <= x1; x++ {
		for y := y0; y <= y1; y++ {
			out = append(out, Coord{X: x, Y: y})
		}
	}
	return out
}

// chunkSpan returns the inclusive chunk index range covering [start, start+length).
func chunkSpan(start, length float64) (int, int) {
	first := int(math.Floor(start / ChunkSize))
	last := int(math.Ceil((start+length)/ChunkSize)) - 1
	if last < first {
		last = first
	}
	return first, last
}
