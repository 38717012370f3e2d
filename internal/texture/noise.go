package texture

import "github.com/aquilax/go-perlin"

// Noise parameters for terrain and cloud fields.
const (
	SeaLevel = 0.5 // normalized terrain height separating water from land

	terrainScale       = 0.2 // frequency factor, multiplied by resolution
	terrainOctaves     = 8
	terrainPersistence = 0.55

	cloudScale       = 0.3
	cloudOctaves     = 6
	cloudPersistence = 0.45

	lacunarity = 2.0

	normEpsilon = 1e-9

	// cloudSeedSalt decorrelates the cloud layer from the terrain layer
	// while keeping both a function of the planet seed.
	cloudSeedSalt = 0x5deece66d
)

// Field is a square grid of scalar samples, row-major.
// Only cells inside the inscribed disk carry data; the rest hold 0.
type Field struct {
	Size   int
	Values []float64
}

// NewField creates a zeroed size x size field.
func NewField(size int) *Field {
	return &Field{Size: size, Values: make([]float64, size*size)}
}

// At returns the sample at (x, y). Out-of-bounds reads return 0.
func (f *Field) At(x, y int) float64 {
	if x < 0 || x >= f.Size || y < 0 || y >= f.Size {
		return 0
	}
	return f.Values[y*f.Size+x]
}

// Set writes the sample at (x, y). Out-of-bounds writes are ignored.
func (f *Field) Set(x, y int, v float64) {
	if x >= 0 && x < f.Size && y >= 0 && y < f.Size {
		f.Values[y*f.Size+x] = v
	}
}

// InDisk reports whether (x, y) lies inside the inscribed circle.
func (f *Field) InDisk(x, y int) bool {
	return inDisk(f.Size, x, y)
}

func inDisk(size, x, y int) bool {
	c := size / 2
	dx := x - c
	dy := y - c
	return dx*dx+dy*dy <= c*c
}

// Generate produces the water and land fields for a planet surface.
// Terrain is normalized, split at SeaLevel, and each half is stretched
// back to [0,1] over its own cells so both palettes get full contrast.
func Generate(resolution int, seed int64) (water, land *Field) {
	raw := sample(resolution, seed, terrainScale, terrainOctaves, terrainPersistence)
	normalize(raw, raw.InDisk)

	water = NewField(resolution)
	land = NewField(resolution)
	isWater := make([]bool, len(raw.Values))
	for y := 0; y < resolution; y++ {
		for x := 0; x < resolution; x++ {
			if !raw.InDisk(x, y) {
				continue
			}
			v := raw.At(x, y)
			if v <= SeaLevel {
				water.Set(x, y, v)
				isWater[y*resolution+x] = true
			} else {
				land.Set(x, y, v)
			}
		}
	}

	normalize(water, func(x, y int) bool {
		return raw.InDisk(x, y) && isWater[y*resolution+x]
	})
	normalize(land, func(x, y int) bool {
		return raw.InDisk(x, y) && !isWater[y*resolution+x]
	})
	return water, land
}

// GenerateClouds produces the cloud cover field for a planet.
func GenerateClouds(resolution int, seed int64) *Field {
	f := sample(resolution, seed^cloudSeedSalt, cloudScale, cloudOctaves, cloudPersistence)
	normalize(f, f.InDisk)
	return f
}

// sample fills the in-disk cells of a new field with octave Perlin noise.
// go-perlin weights octave i by 1/alpha^i, so alpha is 1/persistence.
func sample(resolution int, seed int64, scaleFactor float64, octaves int32, persistence float64) *Field {
	f := NewField(resolution)
	if resolution <= 0 {
		return f
	}
	p := perlin.NewPerlin(1/persistence, lacunarity, octaves, seed)
	scale := scaleFactor * float64(resolution)
	for y := 0; y < resolution; y++ {
		for x := 0; x < resolution; x++ {
			if f.InDisk(x, y) {
				f.Set(x, y, p.Noise2D(float64(x)/scale, float64(y)/scale))
			}
		}
	}
	return f
}

// normalize maps the observed range of the selected cells onto [0,1].
// A flat selection maps to all zeros. Unselected cells are left untouched.
func normalize(f *Field, selected func(x, y int) bool) {
	lo, hi, ok := bounds(f, selected)
	if !ok {
		return
	}
	den := hi - lo
	if den < normEpsilon {
		den = normEpsilon
	}
	for y := 0; y < f.Size; y++ {
		for x := 0; x < f.Size; x++ {
			if selected(x, y) {
				f.Set(x, y, (f.At(x, y)-lo)/den)
			}
		}
	}
}

func bounds(f *Field, selected func(x, y int) bool) (lo, hi float64, ok bool) {
	for y := 0; y < f.Size; y++ {
		for x := 0; x < f.Size; x++ {
			if !selected(x, y) {
				continue
			}
			v := f.At(x, y)
			if !ok {
				lo, hi, ok = v, v, true
				continue
			}
			lo = min(lo, v)
			hi = max(hi, v)
		}
	}
	return lo, hi, ok
}
