package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Calculator5329/infinite-horizons/internal/world"
)

// keepRadius is how many chunks around the camera stay uploaded.
const keepRadius = 3

// StarField draws the procedural background, one GPU tile per chunk.
type StarField struct {
	chunks *world.Cache
	tiles  map[world.Coord]*ebiten.Image
}

func NewStarField(chunks *world.Cache) *StarField {
	if chunks == nil {
		chunks = world.NewCache()
	}
	return &StarField{chunks: chunks, tiles: make(map[world.Coord]*ebiten.Image)}
}

// Draw paints every chunk under the view whose top-left corner is (left, top).
func (s *StarField) Draw(dst *ebiten.Image, left, top float64) {
	b := dst.Bounds()
	for _, c := range world.VisibleChunks(left, top, float64(b.Dx()), float64(b.Dy())) {
		ox, oy := c.Origin()
		var op ebiten.DrawImageOptions
		op.GeoM.Translate(float64(ox)-left, float64(oy)-top)
		dst.DrawImage(s.tile(c), &op)
	}
	center := world.CoordAt(left+float64(b.Dx())/2, top+float64(b.Dy())/2)
	s.prune(center)
}

func (s *StarField) tile(c world.Coord) *ebiten.Image {
	if img, ok := s.tiles[c]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(s.chunks.At(c).Rasterize())
	s.tiles[c] = img
	return img
}

func (s *StarField) prune(center world.Coord) {
	if len(s.tiles) <= (2*keepRadius+1)*(2*keepRadius+1) {
		return
	}
	for c, img := range s.tiles {
		if world.Distance(c, center) > keepRadius {
			img.Deallocate()
			delete(s.tiles, c)
		}
	}
	s.chunks.Prune(center, keepRadius)
}
