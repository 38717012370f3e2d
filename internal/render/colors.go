package render

import (
	"image/color"

	"github.com/Calculator5329/infinite-horizons/internal/game"
)

// UI colors, taken from the CGA palette.
var (
	ColorBlack     = color.RGBA{0, 0, 0, 255}
	ColorDarkGray  = color.RGBA{85, 85, 85, 255}
	ColorLightGray = color.RGBA{170, 170, 170, 255}
	ColorWhite     = color.RGBA{255, 255, 255, 255}
	ColorGreen     = color.RGBA{85, 255, 85, 255}
	ColorCyan      = color.RGBA{85, 255, 255, 255}
	ColorYellow    = color.RGBA{255, 255, 85, 255}
	ColorRed       = color.RGBA{255, 85, 85, 255}
	ColorMagenta   = color.RGBA{255, 85, 255, 255}
	ColorGold      = color.RGBA{255, 215, 0, 255}

	panelColor = color.RGBA{40, 40, 40, 200}
)

// NoticeColor is the title color for a notification kind.
func NoticeColor(k game.NoticeKind) color.RGBA {
	switch k {
	case game.NoticeTask:
		return ColorGreen
	case game.NoticeMission:
		return ColorGold
	case game.NoticeWarning:
		return ColorRed
	default:
		return ColorCyan
	}
}

// BeaconColor is the docking ring color for a beacon kind.
func BeaconColor(k game.BeaconKind) color.RGBA {
	if k == game.BeaconHub {
		return ColorMagenta
	}
	return ColorWhite
}
