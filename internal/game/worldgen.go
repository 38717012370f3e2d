package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/Calculator5329/infinite-horizons/internal/job"
	"github.com/Calculator5329/infinite-horizons/internal/texture"
)

// WorldGen creates a new set of planets and writes their sprites.
type WorldGen struct {
	SaveDir    string // sprites go under SaveDir/sprites; empty skips writing
	Count      int
	Range      int // planets are placed in [-Range, Range] on both axes
	Resolution int
	Workers    int // parallel sprite synthesis; <= 0 means GOMAXPROCS
	Rand       *rand.Rand
	Logger     *log.Logger
}

// Generate rolls every planet from g.Rand, then renders sprites in parallel.
// Sprite write failures are logged and joined into the returned error, but
// the planets are still returned. Only ctx cancellation aborts generation.
func (g WorldGen) Generate(ctx context.Context, progress *job.Progress) ([]*Planet, error) {
	logger := g.Logger
	if logger == nil {
		logger = log.Default()
	}
	rng := g.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	workers := g.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	planets := make([]*Planet, g.Count)
	seeds := make([]int64, g.Count)
	for i := range planets {
		planets[i], seeds[i] = RollPlanet(rng, i, g.Range, g.Resolution)
	}

	var (
		mu       sync.Mutex
		done     int
		writeErr []error
	)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, p := range planets {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p.Render(seeds[i], nil)
			var werr error
			if g.SaveDir != "" {
				path := texture.SpritePath(g.SaveDir, p.ID)
				if werr = texture.WriteSprite(path, p.Sprite); werr == nil {
					p.SpriteFile = path
				} else {
					logger.Printf("worldgen: planet %d sprite not written: %v", p.ID, werr)
				}
			}

			mu.Lock()
			defer mu.Unlock()
			if werr != nil {
				writeErr = append(writeErr, fmt.Errorf("planet %d: %w", p.ID, werr))
			}
			done++
			progress.Set(float64(done) / float64(len(planets)))
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		progress.Fail()
		return nil, fmt.Errorf("generate world: %w", err)
	}
	progress.Set(1)
	return planets, errors.Join(writeErr...)
}
