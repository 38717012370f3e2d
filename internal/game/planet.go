package game

import (
	"fmt"
	"image"
	"math/rand/v2"

	"github.com/Calculator5329/infinite-horizons/internal/texture"
)

// PlanetType is the broad class of a planet.
type PlanetType string

const (
	Terrestrial PlanetType = "Terrestrial"
	GasGiant    PlanetType = "Gas Giant"
	IceGiant    PlanetType = "Ice Giant"
	Dwarf       PlanetType = "Dwarf"
)

// PlanetTypes lists every planet type in roll order.
var PlanetTypes = []PlanetType{Terrestrial, GasGiant, IceGiant, Dwarf}

// Valid reports whether t is one of the known planet types.
func (t PlanetType) Valid() bool {
	for _, k := range PlanetTypes {
		if k == t {
			return true
		}
	}
	return false
}

// Minerals a planet can carry.
var Minerals = []string{"Iron", "Gold", "Silver", "Copper", "Uranium", "Platinum"}

var (
	namePrefixes = []string{"Alpha", "Beta", "Gamma", "Delta", "Epsilon", "Zeta", "Nova"}
	nameSuffixes = []string{"I", "II", "III", "IV", "V", "Prime", "Major"}
)

// Display scale bounds.
const (
	MinScale = 0.5
	MaxScale = 6.0
)

// Planet is a body in the star field with a generated sprite.
type Planet struct {
	ID           int
	X, Y         float64
	Resolution   int
	Type         PlanetType
	Minerals     []string
	Habitability float64
	Name         string
	Scale        float64
	ThemeName    string
	Sprite       *image.NRGBA
	SpriteFile   string // where Sprite is known to be on disk, "" if never written
	Missions     []*Mission
}

// Radius is the on-screen radius of the planet in world units.
func (p *Planet) Radius() float64 {
	return float64(p.Resolution) * p.Scale / 2
}

// Contains reports whether (x, y) lies over the planet's disk.
func (p *Planet) Contains(x, y float64) bool {
	dx, dy := x-p.X, y-p.Y
	r := p.Radius()
	return dx*dx+dy*dy <= r*r
}

func (p *Planet) String() string {
	return fmt.Sprintf("%s #%d (%s)", p.Name, p.ID, p.Type)
}

// RollPlanet draws a new planet's attributes from rng and returns the
// sprite seed to synthesize it with. Position is uniform in
// [-fieldRange, fieldRange] on both axes. The sprite is not rendered.
func RollPlanet(rng *rand.Rand, id, fieldRange, resolution int) (*Planet, int64) {
	p := &Planet{
		ID:         id,
		X:          float64(rng.IntN(2*fieldRange+1) - fieldRange),
		Y:          float64(rng.IntN(2*fieldRange+1) - fieldRange),
		Resolution: texture.ClampResolution(resolution),
		Type:       PlanetTypes[rng.IntN(len(PlanetTypes))],
	}

	pool := append([]string(nil), Minerals...)
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	p.Minerals = pool[:1+rng.IntN(3)]

	p.Habitability = rng.Float64()
	p.Name = namePrefixes[rng.IntN(len(namePrefixes))] + "-" + nameSuffixes[rng.IntN(len(nameSuffixes))]
	p.Scale = MinScale + rng.Float64()*(MaxScale-MinScale)
	p.ThemeName = texture.RandomTheme(rng).Name
	return p, rng.Int64()
}

// Render synthesizes the planet's sprite from its theme and seed.
// An unknown theme name is replaced by a random theme drawn from rng;
// replaced reports that substitution.
func (p *Planet) Render(seed int64, rng *rand.Rand) (replaced bool) {
	theme, ok := texture.Lookup(p.ThemeName)
	if !ok {
		theme = texture.RandomTheme(rng)
		p.ThemeName = theme.Name
		replaced = true
	}
	p.Sprite = texture.Synthesize(p.Resolution, theme, seed)
	return replaced
}

// PlanetByName returns the first planet called name.
func PlanetByName(planets []*Planet, name string) *Planet {
	for _, p := range planets {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// PlanetByID returns the planet with the given id.
func PlanetByID(planets []*Planet, id int) *Planet {
	for _, p := range planets {
		if p.ID == id {
			return p
		}
	}
	return nil
}
