package texture

import (
	"fmt"
	"image"
	"path/filepath"

	"golang.org/x/image/draw"
)

// Supported sprite resolutions. Requests outside are clamped.
const (
	MinResolution = 64
	MaxResolution = 256
)

// ClampResolution bounds a requested sprite size to the supported range.
func ClampResolution(r int) int {
	return max(MinResolution, min(r, MaxResolution))
}

// Synthesize renders a circular planet sprite from noise and a theme.
// The same (resolution, theme, seed) always yields the same pixels.
func Synthesize(resolution int, theme Theme, seed int64) *image.NRGBA {
	res := ClampResolution(resolution)
	water, land := Generate(res, seed)
	clouds := GenerateClouds(res, seed)

	rect := image.Rect(0, 0, res, res)
	waterImg := image.NewNRGBA(rect)
	landImg := image.NewNRGBA(rect)
	cloudImg := image.NewNRGBA(rect)

	for y := 0; y < res; y++ {
		for x := 0; x < res; x++ {
			if !inDisk(res, x, y) {
				continue // zero value is transparent in every layer
			}
			waterImg.SetNRGBA(x, y, FindColor(water.At(x, y), theme.Water))
			landImg.SetNRGBA(x, y, FindColor(land.At(x, y), theme.Land))
			cloudImg.SetNRGBA(x, y, FindColor(clouds.At(x, y), theme.Cloud))
		}
	}

	planet := image.NewNRGBA(rect)
	draw.Draw(planet, rect, waterImg, image.Point{}, draw.Src)
	draw.Draw(planet, rect, landImg, image.Point{}, draw.Over)
	draw.Draw(planet, rect, cloudImg, image.Point{}, draw.Over)
	putAlpha(planet, CircleMask(res))
	return planet
}

// CircleMask returns an alpha mask that is opaque on the inscribed disk.
func CircleMask(size int) *image.Alpha {
	m := image.NewAlpha(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if inDisk(size, x, y) {
				m.Pix[y*m.Stride+x] = 0xff
			}
		}
	}
	return m
}

// putAlpha replaces the alpha channel of img with mask.
// Straight alpha leaves the color channels untouched.
func putAlpha(img *image.NRGBA, mask *image.Alpha) {
	b := img.Bounds().Intersect(mask.Bounds())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.Pix[img.PixOffset(x, y)+3] = mask.AlphaAt(x, y).A
		}
	}
}

// SpritePath is where a planet's sprite lives inside a save directory.
func SpritePath(saveDir string, planetID int) string {
	return filepath.Join(saveDir, SpriteRelPath(planetID))
}

// SpriteRelPath is SpritePath relative to the save directory.
func SpriteRelPath(planetID int) string {
	return filepath.Join("sprites", fmt.Sprintf("planet_%d.png", planetID))
}
