// Package save writes and reads a session to a save directory: data.json,
// one PNG per planet under sprites/, and rotated zstd backups of earlier
// data.json files.
package save

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"github.com/Calculator5329/infinite-horizons/internal/game"
	"github.com/Calculator5329/infinite-horizons/internal/job"
	"github.com/Calculator5329/infinite-horizons/internal/texture"
)

const dataFile = "data.json"

// Options tunes Save and Load. The zero value works.
type Options struct {
	Backups  int           // data.json backups to keep; 0 disables backups
	Progress *job.Progress // optional
	Rand     *rand.Rand    // seeds regenerated sprites; nil uses the global source
	Logger   *log.Logger   // nil uses log.Default()
	Now      func() time.Time
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.Default()
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

func (o Options) seed() int64 {
	if o.Rand != nil {
		return o.Rand.Int64()
	}
	return rand.Int64()
}

// Save writes planets and ship state to dir. Sprites already on disk at
// their target path are not rewritten. Sprite write failures are joined
// into the returned error after data.json has been written; failure to
// create dir or write data.json returns immediately.
func Save(dir string, planets []*game.Planet, ship game.ShipState, opts Options) error {
	logger := opts.logger()
	if err := os.MkdirAll(filepath.Join(dir, "sprites"), 0o755); err != nil {
		return fmt.Errorf("save: create %s: %w", dir, err)
	}
	if path, err := backupData(dir, opts.Backups, opts.now()); err != nil {
		logger.Printf("save: backup failed: %v", err)
	} else if path != "" {
		logger.Printf("save: backed up previous data to %s", filepath.Base(path))
	}

	doc := document{
		Version:   DocumentVersion,
		Planets:   make([]PlanetRecord, 0, len(planets)),
		Spaceship: shipRecord(ship),
	}
	var spriteErrs []error
	for i, p := range planets {
		if err := saveSprite(dir, p); err != nil {
			logger.Printf("save: planet %d: %v", p.ID, err)
			spriteErrs = append(spriteErrs, fmt.Errorf("planet %d: %w", p.ID, err))
		}
		doc.Planets = append(doc.Planets, planetRecord(p, filepath.ToSlash(texture.SpriteRelPath(p.ID))))
		opts.Progress.Set(float64(i+1) / float64(len(planets)))
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("save: encode: %w", err)
	}
	if err := writeFileAtomic(filepath.Join(dir, dataFile), data); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	opts.Progress.Set(1)
	if len(spriteErrs) > 0 {
		return fmt.Errorf("save: %w", errors.Join(spriteErrs...))
	}
	return nil
}

// saveSprite writes p's sprite unless it is already persisted at the
// target path.
func saveSprite(dir string, p *game.Planet) error {
	target := texture.SpritePath(dir, p.ID)
	if p.SpriteFile == target {
		if _, err := os.Stat(target); err == nil {
			return nil
		}
	}
	if p.Sprite == nil {
		return errors.New("no sprite in memory")
	}
	if err := texture.WriteSprite(target, p.Sprite); err != nil {
		return err
	}
	p.SpriteFile = target
	return nil
}
