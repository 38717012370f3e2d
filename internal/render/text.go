package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// basicfont.Face7x13 metrics.
const (
	GlyphWidth  = 7
	GlyphHeight = 13
	glyphAscent = 11
)

// maxLabels bounds the label cache; HUD readouts change every frame.
const maxLabels = 512

// TextWidth is the pixel width of s at scale 1.
func TextWidth(s string) int {
	return len([]rune(s)) * GlyphWidth
}

// Labels rasterizes strings once and reuses the images. Text is drawn
// white and tinted at draw time.
type Labels struct {
	face  font.Face
	cache map[string]*ebiten.Image
}

func NewLabels() *Labels {
	return &Labels{face: basicfont.Face7x13, cache: make(map[string]*ebiten.Image)}
}

// Image returns the cached white rendering of s.
func (l *Labels) Image(s string) *ebiten.Image {
	if img, ok := l.cache[s]; ok {
		return img
	}
	if len(l.cache) >= maxLabels {
		l.Forget()
	}
	img := ebiten.NewImageFromImage(rasterizeText(l.face, s))
	l.cache[s] = img
	return img
}

// Draw renders s with its top-left corner at (x, y).
func (l *Labels) Draw(dst *ebiten.Image, s string, x, y float64, clr color.Color) {
	if s == "" {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	dst.DrawImage(l.Image(s), &op)
}

// DrawCentered renders s centered horizontally on cx.
func (l *Labels) DrawCentered(dst *ebiten.Image, s string, cx, y float64, clr color.Color) {
	l.Draw(dst, s, cx-float64(TextWidth(s))/2, y, clr)
}

// Forget drops every cached label. Images already queued for drawing stay
// valid until the garbage collector frees them.
func (l *Labels) Forget() {
	clear(l.cache)
}

func rasterizeText(face font.Face, s string) *image.NRGBA {
	w := max(TextWidth(s), 1)
	img := image.NewNRGBA(image.Rect(0, 0, w, GlyphHeight))
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(0, glyphAscent),
	}
	d.DrawString(s)
	return img
}
