package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Calculator5329/infinite-horizons/internal/catalog"
	"github.com/Calculator5329/infinite-horizons/internal/config"
	"github.com/Calculator5329/infinite-horizons/internal/game"
	"github.com/Calculator5329/infinite-horizons/internal/job"
	"github.com/Calculator5329/infinite-horizons/internal/render"
	"github.com/Calculator5329/infinite-horizons/internal/save"
	"github.com/Calculator5329/infinite-horizons/internal/world"
)

const title = "Infinite Horizons"

type mode int

const (
	modeMenu mode = iota
	modeBusy
	modePlay
	modeDocked
)

// Game is the Ebitengine game struct. It owns rendering and input.
// All gameplay state lives in session.ctx.
type Game struct {
	cfg     config.Config
	catalog *catalog.Catalog // nil if the catalog could not be opened
	logger  *log.Logger
	scene   *render.Scene

	mode mode

	// menu
	saves    []catalog.Entry
	selected int
	status   string

	// busy
	busyTitle string
	progress  *job.Progress
	done      <-chan struct{}
	then      func()

	session *session

	// docked
	board    []*game.Mission
	boardAt  game.PlacedBeacon
	boardSel int

	quitting bool
}

func NewGame(cfg config.Config, cat *catalog.Catalog, logger *log.Logger) *Game {
	g := &Game{
		cfg:     cfg,
		catalog: cat,
		logger:  logger,
		scene:   render.NewScene(world.NewCache()),
	}
	g.openMenu("")
	return g
}

func (g *Game) openMenu(status string) {
	g.mode = modeMenu
	g.selected = 0
	g.status = status
	g.saves = nil
	if g.catalog == nil {
		return
	}
	saves, err := g.catalog.List(context.Background())
	if err != nil {
		g.logger.Printf("catalog: list: %v", err)
		return
	}
	g.saves = saves
}

func (g *Game) menuItems() []string {
	items := []string{"New Game"}
	for _, e := range g.saves {
		items = append(items, "Load "+e.Label())
	}
	return append(items, "Quit")
}

// wait pauses gameplay until done closes, then runs then on the game loop.
func (g *Game) wait(title string, p *job.Progress, done <-chan struct{}, then func()) {
	g.mode = modeBusy
	g.busyTitle = title
	g.progress = p
	g.done = done
	g.then = then
}

func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() && !g.quitting {
		g.quitting = true
		if g.session != nil && g.mode != modeBusy {
			g.saveSession(func() {})
		}
	}

	switch g.mode {
	case modeBusy:
		select {
		case <-g.done:
			then := g.then
			g.then, g.done, g.progress = nil, nil, nil
			g.mode = modePlay
			then()
		default:
		}
	case modeMenu:
		if g.quitting {
			return ebiten.Termination
		}
		return g.updateMenu()
	case modePlay:
		if g.quitting {
			return ebiten.Termination
		}
		g.updatePlay()
	case modeDocked:
		if g.quitting {
			return ebiten.Termination
		}
		g.updateDocked()
	}
	return nil
}

func (g *Game) updateMenu() error {
	items := g.menuItems()
	switch {
	case justPressed(ebiten.KeyUp, ebiten.KeyW):
		g.selected = (g.selected + len(items) - 1) % len(items)
	case justPressed(ebiten.KeyDown, ebiten.KeyS):
		g.selected = (g.selected + 1) % len(items)
	case justPressed(ebiten.KeyEscape):
		return ebiten.Termination
	case justPressed(ebiten.KeyEnter, ebiten.KeySpace):
		switch {
		case g.selected == 0:
			g.newWorld()
		case g.selected == len(items)-1:
			return ebiten.Termination
		default:
			g.loadWorld(g.saves[g.selected-1])
		}
	}
	return nil
}

func justPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func (g *Game) newWorld() {
	now := time.Now()
	name := catalog.SaveName("", now)
	dir := filepath.Join(g.cfg.SaveRoot, name)
	gen := game.WorldGen{
		SaveDir:    dir,
		Count:      g.cfg.PlanetCount,
		Range:      g.cfg.StarFieldRange,
		Resolution: g.cfg.PlanetResolution,
		Workers:    g.cfg.Workers,
		Rand:       newRand(now.UnixNano()),
		Logger:     g.logger,
	}
	j := job.Start(func(p *job.Progress) ([]*game.Planet, error) {
		return gen.Generate(context.Background(), p)
	})
	g.wait("Generating "+name, j.Progress, j.Done(), func() {
		planets, err := j.Wait()
		if len(planets) == 0 {
			g.logger.Printf("worldgen: %v", err)
			g.openMenu("World generation failed")
			return
		}
		if err != nil {
			g.logger.Printf("worldgen: some sprites not written: %v", err)
		}
		g.startSession(name, dir, planets, nil)
		g.saveSession(func() {})
	})
}

func (g *Game) loadWorld(e catalog.Entry) {
	opts := save.Options{Backups: g.cfg.BackupsKept, Rand: newRand(time.Now().UnixNano()), Logger: g.logger}
	j := job.Start(func(p *job.Progress) (*save.World, error) {
		opts.Progress = p
		return save.Load(e.Dir, opts)
	})
	g.wait("Loading "+e.Name, j.Progress, j.Done(), func() {
		w, err := j.Wait()
		if errors.Is(err, save.ErrNoSaveData) {
			g.openMenu(e.Name + " has no readable save data")
			return
		}
		if err != nil {
			g.logger.Printf("load %s: %v", e.Name, err)
			g.openMenu("Could not load " + e.Name)
			return
		}
		g.startSession(e.Name, e.Dir, w.Planets, w.Ship)
		if !w.Report.Clean() {
			g.session.ctx.Notices.Notify("Save Repaired",
				repairSummary(w.Report), game.NoticeWarning)
		}
	})
}

func (g *Game) Draw(screen *ebiten.Image) {
	switch g.mode {
	case modeMenu:
		screen.Fill(render.ColorBlack)
		g.scene.DrawList(screen, title, g.menuItems(), g.selected, g.status)
	case modeBusy:
		g.scene.DrawProgress(screen, g.busyTitle, g.progress.Fraction())
	case modePlay, modeDocked:
		g.drawPlay(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

func main() {
	configPath := flag.String("config", config.FileName, "path to the YAML config file")
	flag.Parse()

	logger := log.Default()
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := os.MkdirAll(cfg.SaveRoot, 0o755); err != nil {
		log.Fatalf("save root: %v", err)
	}
	cat, err := catalog.Open(filepath.Join(cfg.SaveRoot, catalog.FileName))
	if err != nil {
		logger.Printf("catalog: %v; saves will not be listed", err)
		cat = nil
	} else {
		defer cat.Close()
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(NewGame(cfg, cat, logger)); err != nil {
		logger.Printf("run: %v", err)
	}
}
