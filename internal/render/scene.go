package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Calculator5329/infinite-horizons/internal/game"
	"github.com/Calculator5329/infinite-horizons/internal/world"
)

const (
	minimapSize   = 200
	minimapMargin = 12
	noticeRows    = 4
	lineHeight    = GlyphHeight + 3
)

// Scene draws a game session. It owns the session's GPU assets.
type Scene struct {
	Assets *Assets
	Labels *Labels
	Stars  *StarField
}

func NewScene(chunks *world.Cache) *Scene {
	return &Scene{
		Assets: NewAssets(),
		Labels: NewLabels(),
		Stars:  NewStarField(chunks),
	}
}

// Camera returns the top-left world position of a view centered on the ship.
func Camera(ctx *game.Context, viewW, viewH int) (left, top float64) {
	x, y := ctx.ShipPos()
	return x - float64(viewW)/2, y - float64(viewH)/2
}

// DrawWorld paints the star field, planets, beacons and the ship.
func (s *Scene) DrawWorld(dst *ebiten.Image, ctx *game.Context) {
	b := dst.Bounds()
	left, top := Camera(ctx, b.Dx(), b.Dy())
	dst.Fill(ColorBlack)
	s.Stars.Draw(dst, left, top)

	for _, p := range ctx.Planets {
		r := p.Radius()
		sx, sy := p.X-left, p.Y-top
		if sx+r < 0 || sy+r < 0 || sx-r > float64(b.Dx()) || sy-r > float64(b.Dy()) {
			continue
		}
		if img := s.Assets.Planet(p); img != nil {
			var op ebiten.DrawImageOptions
			size := float64(img.Bounds().Dx())
			op.GeoM.Translate(-size/2, -size/2)
			op.GeoM.Scale(p.Scale, p.Scale)
			op.GeoM.Translate(sx, sy)
			op.Filter = ebiten.FilterLinear
			dst.DrawImage(img, &op)
		}
		s.Labels.DrawCentered(dst, p.Name, sx, sy-r-lineHeight, ColorLightGray)
	}

	for _, bc := range ctx.Beacons() {
		sx, sy := bc.Pos.X-left, bc.Pos.Y-top
		if sx < -bc.Radius || sy < -bc.Radius || sx > float64(b.Dx())+bc.Radius || sy > float64(b.Dy())+bc.Radius {
			continue
		}
		img := s.Assets.Comm
		if bc.Kind == game.BeaconHub {
			img = s.Assets.Hub
		}
		var op ebiten.DrawImageOptions
		op.GeoM.Translate(sx-beaconSize/2, sy-beaconSize/2)
		dst.DrawImage(img, &op)
		vector.StrokeCircle(dst, float32(sx), float32(sy), float32(bc.Radius), 1, withAlpha(BeaconColor(bc.Kind), 90), true)
		s.Labels.DrawCentered(dst, bc.Kind.String(), sx, sy+beaconSize/2+4, BeaconColor(bc.Kind))
	}

	ship := ctx.Ship()
	img := s.Assets.Ship
	if ship.Boosting {
		img = s.Assets.ShipBoost
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(-shipSize/2, -shipSize/2)
	op.GeoM.Rotate(heading(ship))
	op.GeoM.Translate(float64(b.Dx())/2, float64(b.Dy())/2)
	dst.DrawImage(img, &op)
}

// heading converts the facing vector to a rotation from "up".
func heading(s *game.ShipPhysics) float64 {
	if s.FaceDX == 0 && s.FaceDY == 0 {
		return 0
	}
	return math.Atan2(float64(s.FaceDY), float64(s.FaceDX)) + math.Pi/2
}

// DrawHUD shows credits, speed, held missions and the current prompt.
func (s *Scene) DrawHUD(dst *ebiten.Image, ctx *game.Context) {
	b := dst.Bounds()
	ship := ctx.Ship()
	x, y := ctx.ShipPos()
	status := fmt.Sprintf("Credits %s   Speed %.1f   (%.0f, %.0f)",
		humanize.Comma(int64(ctx.Player.Credits)), ship.Speed(), x, y)
	s.Labels.Draw(dst, status, minimapMargin, float64(b.Dy())-lineHeight-minimapMargin, ColorWhite)

	row := float64(b.Dy()) - 2*lineHeight - minimapMargin
	for i := len(ctx.Player.Missions) - 1; i >= 0; i-- {
		m := ctx.Player.Missions[i]
		s.Labels.Draw(dst, fmt.Sprintf("> %s (%s cr)", m.Title, humanize.Comma(int64(m.Reward))), minimapMargin, row, ColorYellow)
		row -= lineHeight
	}

	var prompt string
	if bc, ok := ctx.NearbyBeacon(); ok {
		prompt = "[E] Hail " + bc.Kind.String()
	} else if p := ctx.PlanetInRange(); p != nil {
		prompt = "[L] Land on " + p.Name
	}
	s.Labels.DrawCentered(dst, prompt, float64(b.Dx())/2, float64(b.Dy())/2+shipSize+8, ColorGreen)
}

// DrawMinimap plots every planet and the ship in the top-right corner.
// fieldRange is the half-width of the area the map covers.
func (s *Scene) DrawMinimap(dst *ebiten.Image, ctx *game.Context, fieldRange float64) {
	b := dst.Bounds()
	ox := float64(b.Dx() - minimapSize - minimapMargin)
	oy := float64(minimapMargin)
	s.FillRect(dst, ox, oy, minimapSize, minimapSize, panelColor)
	if fieldRange <= 0 {
		return
	}
	scale := minimapSize / (2 * fieldRange)
	toMap := func(x, y float64) (float64, float64) {
		mx := math.Max(0, math.Min(minimapSize, (x+fieldRange)*scale))
		my := math.Max(0, math.Min(minimapSize, (y+fieldRange)*scale))
		return ox + mx, oy + my
	}
	for _, p := range ctx.Planets {
		mx, my := toMap(p.X, p.Y)
		if img := s.Assets.Mini(p); img != nil {
			var op ebiten.DrawImageOptions
			op.GeoM.Translate(mx-MiniSize/2, my-MiniSize/2)
			dst.DrawImage(img, &op)
		} else {
			s.FillRect(dst, mx-1, my-1, 3, 3, ColorLightGray)
		}
	}
	sx, sy := toMap(ctx.ShipPos())
	s.FillRect(dst, sx-2, sy-2, 4, 4, ColorGreen)
}

// DrawNotices lists recent popups under each other in the top-left corner.
func (s *Scene) DrawNotices(dst *ebiten.Image, notices []game.Notice) {
	y := float64(minimapMargin)
	for _, n := range notices {
		h := float64(1+len(n.Lines))*lineHeight + 6
		w := float64(TextWidth(n.Title))
		for _, l := range n.Lines {
			w = math.Max(w, float64(TextWidth(l)))
		}
		s.FillRect(dst, minimapMargin, y, w+12, h, panelColor)
		s.Labels.Draw(dst, n.Title, minimapMargin+6, y+3, NoticeColor(n.Kind))
		for i, l := range n.Lines {
			s.Labels.Draw(dst, l, minimapMargin+6, y+3+float64(i+1)*lineHeight, ColorWhite)
		}
		y += h + 4
	}
}

// DrawProgress shows a centered bar for a background job.
func (s *Scene) DrawProgress(dst *ebiten.Image, title string, frac float64) {
	b := dst.Bounds()
	w, h := float64(b.Dx())/2, 20.0
	x, y := (float64(b.Dx())-w)/2, float64(b.Dy())/2
	dst.Fill(ColorBlack)
	s.Labels.DrawCentered(dst, title, float64(b.Dx())/2, y-2*lineHeight, ColorWhite)
	s.FillRect(dst, x, y, w, h, ColorDarkGray)
	s.FillRect(dst, x, y, w*math.Max(0, math.Min(1, frac)), h, ColorGreen)
	s.Labels.DrawCentered(dst, fmt.Sprintf("%d%%", int(frac*100)), float64(b.Dx())/2, y+h+6, ColorLightGray)
}

// DrawList draws a titled menu with the selected row highlighted.
func (s *Scene) DrawList(dst *ebiten.Image, title string, items []string, selected int, footer string) {
	b := dst.Bounds()
	w := float64(TextWidth(title))
	for _, it := range items {
		w = math.Max(w, float64(TextWidth(it)+2*GlyphWidth))
	}
	w = math.Max(w, float64(TextWidth(footer))) + 24
	h := float64(len(items)+3)*lineHeight + 12
	x, y := (float64(b.Dx())-w)/2, (float64(b.Dy())-h)/2
	s.FillRect(dst, x, y, w, h, panelColor)
	s.Labels.Draw(dst, title, x+12, y+6, ColorCyan)
	for i, it := range items {
		clr, mark := ColorLightGray, "  "
		if i == selected {
			clr, mark = ColorYellow, "> "
		}
		s.Labels.Draw(dst, mark+it, x+12, y+6+float64(i+2)*lineHeight, clr)
	}
	s.Labels.Draw(dst, footer, x+12, y+h-lineHeight-6, ColorDarkGray)
}

// FillRect draws an axis-aligned rectangle by stretching the 1x1 pixel.
func (s *Scene) FillRect(dst *ebiten.Image, x, y, w, h float64, clr color.Color) {
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	dst.DrawImage(s.Assets.Pixel, &op)
}

func withAlpha(c color.RGBA, a uint8) color.RGBA {
	f := float64(a) / 255
	return color.RGBA{uint8(float64(c.R) * f), uint8(float64(c.G) * f), uint8(float64(c.B) * f), a}
}
