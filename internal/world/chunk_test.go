package world

import (
	"reflect"
	"sync"
	"testing"
)

func TestChunkAtDeterministic(t *testing.T) {
	for _, c := range []Coord{{0, 0}, {3, -7}, {-12, -1}, {1 << 20, 5}} {
		a := ChunkAt(c)
		b := NewCache().At(c)
		if !reflect.DeepEqual(a, b) {
			t.Fatalf("chunk %v differs between generations", c)
		}
	}
}

func TestChunkAtStars(t *testing.T) {
	for x := -5; x <= 5; x++ {
		for y := -5; y <= 5; y++ {
			ch := ChunkAt(Coord{x, y})
			if n := len(ch.Stars); n < minStars || n > maxStars {
				t.Fatalf("chunk (%d,%d): %d stars", x, y, n)
			}
			for _, s := range ch.Stars {
				if s.X < 0 || s.X >= ChunkSize || s.Y < 0 || s.Y >= ChunkSize {
					t.Fatalf("chunk (%d,%d): star %v outside tile", x, y, s)
				}
			}
		}
	}
}

func TestChunkSeedMixesAxes(t *testing.T) {
	if ChunkSeed(Coord{1, 2}) == ChunkSeed(Coord{2, 1}) {
		t.Fatal("swapped coordinates share a seed")
	}
	if got := ChunkSeed(Coord{0, 0}); got != 0 {
		t.Fatalf("ChunkSeed(origin) = %d", got)
	}
}

func TestRasterize(t *testing.T) {
	ch := ChunkAt(Coord{2, 9})
	img := ch.Rasterize()
	if img.Rect.Dx() != ChunkSize || img.Rect.Dy() != ChunkSize {
		t.Fatalf("raster size %v", img.Rect)
	}
	lit := 0
	for _, v := range img.Pix {
		switch v {
		case 255:
			lit++
		case 0:
		default:
			t.Fatalf("unexpected gray level %d", v)
		}
	}
	if lit == 0 || lit > len(ch.Stars) {
		t.Fatalf("%d lit pixels for %d stars", lit, len(ch.Stars))
	}
	for _, s := range ch.Stars {
		if img.GrayAt(s.X, s.Y).Y != 255 {
			t.Fatalf("star %v not drawn", s)
		}
	}
}

func TestVisibleChunks(t *testing.T) {
	tests := []struct {
		name                     string
		left, top, width, height float64
		want                     []Coord
	}{
		{"exact tile", 0, 0, 512, 512, []Coord{{0, 0}}},
		{"straddles corner", 502, 502, 20, 20, []Coord{{0, 0}, {0, 1}, {1, 0}, {1, 1}}},
		{"negative", -10, -10, 5, 5, []Coord{{-1, -1}}},
		{"across origin", -1, 100, 2, 1, []Coord{{-1, 0}, {0, 0}}},
		{"zero size", 700, 700, 0, 0, []Coord{{1, 1}}},
		{"wide", 0, 0, 1025, 10, []Coord{{0, 0}, {1, 0}, {2, 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VisibleChunks(tt.left, tt.top, tt.width, tt.height)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("VisibleChunks = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCacheConcurrentAt(t *testing.T) {
	c := NewCache()
	var wg sync.WaitGroup
	got := make([]*Chunk, 16)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = c.At(Coord{4, 4})
		}(i)
	}
	wg.Wait()
	for _, ch := range got[1:] {
		if ch != got[0] {
			t.Fatal("concurrent callers received different chunk instances")
		}
	}
	if c.Len() != 1 {
		t.Fatalf("Len = %d, want 1", c.Len())
	}
}

func TestCachePrune(t *testing.T) {
	c := NewCache()
	for x := -3; x <= 3; x++ {
		for y := -3; y <= 3; y++ {
			c.At(Coord{x, y})
		}
	}
	removed := c.Prune(Coord{0, 0}, 1)
	if removed != 49-9 {
		t.Fatalf("Prune removed %d, want 40", removed)
	}
	if c.Len() != 9 {
		t.Fatalf("Len after prune = %d, want 9", c.Len())
	}
	before := c.At(Coord{1, 1})
	if again := c.At(Coord{1, 1}); again != before {
		t.Fatal("kept chunk regenerated")
	}
}

func TestCoordAt(t *testing.T) {
	tests := []struct {
		x, y float64
		want Coord
	}{
		{0, 0, Coord{0, 0}},
		{511.9, 511.9, Coord{0, 0}},
		{512, 0, Coord{1, 0}},
		{-0.5, -512, Coord{-1, -1}},
		{-513, 1030, Coord{-2, 2}},
	}
	for _, tt := range tests {
		if got := CoordAt(tt.x, tt.y); got != tt.want {
			t.Errorf("CoordAt(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
	if d := Distance(Coord{-2, 1}, Coord{1, 0}); d != 3 {
		t.Fatalf("Distance = %d, want 3", d)
	}
}
