package texture

import (
	"image/color"
	"math/rand/v2"
)

// Transparent is returned for samples outside every declared range.
var Transparent = color.NRGBA{}

// Band maps an inclusive value range to a color.
type Band struct {
	Lower, Upper float64
	Color        color.NRGBA
}

// ColorMap is an ordered list of bands. Order is significant:
// the first band containing a value wins.
type ColorMap []Band

// Theme is a named palette for the three planet layers.
type Theme struct {
	Name  string
	Water ColorMap
	Land  ColorMap
	Cloud ColorMap
}

// FindColor resolves v against m in declaration order.
func FindColor(v float64, m ColorMap) color.NRGBA {
	for _, b := range m {
		if b.Lower <= v && v <= b.Upper {
			return b.Color
		}
	}
	return Transparent
}

// Themes returns every registered theme in declaration order.
func Themes() []Theme {
	out := make([]Theme, len(themes))
	copy(out, themes)
	return out
}

// Lookup finds a theme by name.
func Lookup(name string) (Theme, bool) {
	for _, t := range themes {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// RandomTheme picks a theme uniformly. A nil rng uses the global source.
func RandomTheme(rng *rand.Rand) Theme {
	if rng == nil {
		return themes[rand.IntN(len(themes))]
	}
	return themes[rng.IntN(len(themes))]
}
