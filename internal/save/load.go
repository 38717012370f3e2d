package save

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Calculator5329/infinite-horizons/internal/game"
	"github.com/Calculator5329/infinite-horizons/internal/texture"
)

// ErrNoSaveData means dir holds no readable data.json.
var ErrNoSaveData = errors.New("no valid save data")

// World is what Load reconstructs.
type World struct {
	Planets []*game.Planet
	Ship    *game.ShipState // nil when the save has no usable spaceship record
	Report  Report
}

// Report lists what Load had to work around.
type Report struct {
	Skipped     []Skipped // planet records that failed validation or decoding
	Regenerated []int     // planet ids whose sprite was re-synthesized
	ShipErr     error     // why the spaceship record was dropped, if it was
}

// Skipped is one rejected planet record.
type Skipped struct {
	Index int
	Err   error
}

// Clean reports whether the save loaded without any substitutions.
func (r Report) Clean() bool {
	return len(r.Skipped) == 0 && len(r.Regenerated) == 0 && r.ShipErr == nil
}

// Load reads the save in dir. An unreadable or malformed data.json yields
// an empty World and ErrNoSaveData. Individual bad planet records are
// skipped; missing or corrupt sprites are regenerated.
func Load(dir string, opts Options) (*World, error) {
	logger := opts.logger()
	w := &World{}

	data, err := os.ReadFile(filepath.Join(dir, dataFile))
	if err != nil {
		return w, fmt.Errorf("load %s: %w: %w", dir, ErrNoSaveData, err)
	}
	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return w, fmt.Errorf("load %s: %w: %w", dir, ErrNoSaveData, err)
	}
	if raw.Planets == nil && raw.Spaceship == nil {
		return w, fmt.Errorf("load %s: %w: empty document", dir, ErrNoSaveData)
	}
	v, err := compiled()
	if err != nil {
		return w, fmt.Errorf("load: %w", err)
	}

	known := map[string]*game.Mission{}
	for i, rp := range raw.Planets {
		p, err := decodePlanet(v, rp, known)
		if err != nil {
			logger.Printf("load: planet record %d skipped: %v", i, err)
			w.Report.Skipped = append(w.Report.Skipped, Skipped{Index: i, Err: err})
		} else {
			if loadSprite(dir, p, opts) {
				w.Report.Regenerated = append(w.Report.Regenerated, p.ID)
			}
			w.Planets = append(w.Planets, p)
		}
		opts.Progress.Set(float64(i+1) / float64(len(raw.Planets)))
	}

	if raw.Spaceship != nil {
		ship, err := decodeShip(v, raw.Spaceship, known)
		if err != nil {
			logger.Printf("load: spaceship record dropped: %v", err)
			w.Report.ShipErr = err
		} else {
			w.Ship = ship
		}
	}
	opts.Progress.Set(1)
	return w, nil
}

func decodePlanet(v *validators, raw json.RawMessage, known map[string]*game.Mission) (*game.Planet, error) {
	if err := validateRaw(v.planet, raw); err != nil {
		return nil, err
	}
	var rec PlanetRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, err
	}
	p := &game.Planet{
		ID:           rec.ID,
		X:            rec.X,
		Y:            rec.Y,
		Resolution:   texture.ClampResolution(rec.Res),
		Type:         game.PlanetType(rec.Type),
		Minerals:     rec.Minerals,
		Habitability: rec.Habitability,
		Name:         rec.Name,
		Scale:        rec.Scale,
		ThemeName:    rec.ThemeName,
		SpriteFile:   rec.SpriteFilename,
	}
	// The planet's missions are only registered once the whole record decodes.
	scratch := map[string]*game.Mission{}
	for id, m := range known {
		scratch[id] = m
	}
	for _, mr := range rec.Missions {
		m, err := mr.mission(scratch)
		if err != nil {
			return nil, err
		}
		p.Missions = append(p.Missions, m)
	}
	for id, m := range scratch {
		known[id] = m
	}
	return p, nil
}

func decodeShip(v *validators, raw json.RawMessage, known map[string]*game.Mission) (*game.ShipState, error) {
	if err := validateRaw(v.ship, raw); err != nil {
		return nil, err
	}
	var rec ShipRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, err
	}
	s := &game.ShipState{X: rec.X, Y: rec.Y, Credits: rec.Credits}
	for _, mr := range rec.Missions {
		m, err := mr.mission(known)
		if err != nil {
			return nil, err
		}
		s.Missions = append(s.Missions, m)
	}
	return s, nil
}

// loadSprite fills p.Sprite from disk, or regenerates and rewrites it.
// It reports whether the sprite had to be regenerated.
func loadSprite(dir string, p *game.Planet, opts Options) bool {
	logger := opts.logger()
	path := p.SpriteFile
	if path == "" {
		path = texture.SpriteRelPath(p.ID)
	}
	path = filepath.FromSlash(path)
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}

	img, err := texture.ReadSprite(path)
	if err == nil {
		p.Sprite = img
		p.SpriteFile = path
		return false
	}
	logger.Printf("load: planet %d sprite unusable, regenerating: %v", p.ID, err)

	old := p.ThemeName
	if p.Render(opts.seed(), opts.Rand) {
		logger.Printf("load: planet %d unknown theme %q, using %q", p.ID, old, p.ThemeName)
	}
	p.SpriteFile = ""
	target := texture.SpritePath(dir, p.ID)
	if err := texture.WriteSprite(target, p.Sprite); err != nil {
		logger.Printf("load: planet %d regenerated sprite not written: %v", p.ID, err)
	} else {
		p.SpriteFile = target
	}
	return true
}
