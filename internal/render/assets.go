package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Calculator5329/infinite-horizons/internal/game"
	"github.com/Calculator5329/infinite-horizons/internal/texture"
)

// MiniSize is the edge of a minimap planet thumbnail.
const MiniSize = 12

const (
	shipSize   = 24
	beaconSize = 32
)

// Assets holds the GPU images for one session. Planet sprites are uploaded
// on first use and re-uploaded when a planet's sprite is replaced.
type Assets struct {
	Ship      *ebiten.Image
	ShipBoost *ebiten.Image
	Comm      *ebiten.Image
	Hub       *ebiten.Image
	Pixel     *ebiten.Image

	planets map[int]uploaded
	minis   map[int]uploaded
}

type uploaded struct {
	src *image.NRGBA
	img *ebiten.Image
}

func NewAssets() *Assets {
	px := ebiten.NewImage(1, 1)
	px.Fill(color.White)
	return &Assets{
		Ship:      ebiten.NewImageFromImage(shipImage(false)),
		ShipBoost: ebiten.NewImageFromImage(shipImage(true)),
		Comm:      ebiten.NewImageFromImage(beaconImage(ColorCyan)),
		Hub:       ebiten.NewImageFromImage(beaconImage(ColorMagenta)),
		Pixel:     px,
		planets:   make(map[int]uploaded),
		minis:     make(map[int]uploaded),
	}
}

// Planet returns p's full-resolution sprite, or nil if it has none.
func (a *Assets) Planet(p *game.Planet) *ebiten.Image {
	return a.lookup(a.planets, p, func(src *image.NRGBA) image.Image { return src })
}

// Mini returns p's minimap thumbnail, or nil if it has no sprite.
func (a *Assets) Mini(p *game.Planet) *ebiten.Image {
	return a.lookup(a.minis, p, func(src *image.NRGBA) image.Image {
		return texture.Thumbnail(src, MiniSize)
	})
}

func (a *Assets) lookup(m map[int]uploaded, p *game.Planet, conv func(*image.NRGBA) image.Image) *ebiten.Image {
	if p.Sprite == nil {
		return nil
	}
	if u, ok := m[p.ID]; ok && u.src == p.Sprite {
		return u.img
	}
	if u, ok := m[p.ID]; ok {
		u.img.Deallocate()
	}
	u := uploaded{src: p.Sprite, img: ebiten.NewImageFromImage(conv(p.Sprite))}
	m[p.ID] = u
	return u.img
}

// Reset frees every planet image, for switching to another save.
func (a *Assets) Reset() {
	for _, m := range []map[int]uploaded{a.planets, a.minis} {
		for id, u := range m {
			u.img.Deallocate()
			delete(m, id)
		}
	}
}

// shipImage draws the player ship pointing up, with a flame when boosting.
func shipImage(boost bool) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, shipSize, shipSize))
	hull := color.NRGBA{220, 220, 230, 255}
	flame := color.NRGBA{255, 160, 40, 255}
	c := float64(shipSize) / 2
	for y := 0; y < shipSize; y++ {
		// Hull is a triangle from the nose at the top to the base at 3/4 height.
		t := float64(y) / (shipSize * 0.75)
		half := t * c * 0.8
		for x := 0; x < shipSize; x++ {
			dx := math.Abs(float64(x) + 0.5 - c)
			switch {
			case t <= 1 && dx <= half:
				img.SetNRGBA(x, y, hull)
			case boost && t > 1 && dx <= c*0.3*(2-t):
				img.SetNRGBA(x, y, flame)
			}
		}
	}
	return img
}

// beaconImage draws an NPC ship as a ringed square.
func beaconImage(accent color.RGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, beaconSize, beaconSize))
	body := color.NRGBA{120, 120, 130, 255}
	trim := color.NRGBA{accent.R, accent.G, accent.B, 255}
	for y := 0; y < beaconSize; y++ {
		for x := 0; x < beaconSize; x++ {
			edge := x < 8 || y < 8 || x >= beaconSize-8 || y >= beaconSize-8
			inner := x >= 10 && y >= 10 && x < beaconSize-10 && y < beaconSize-10
			switch {
			case inner:
				img.SetNRGBA(x, y, trim)
			case !edge:
				img.SetNRGBA(x, y, body)
			case (x+y)%6 == 0:
				img.SetNRGBA(x, y, trim)
			}
		}
	}
	return img
}
