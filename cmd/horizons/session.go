package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Calculator5329/infinite-horizons/internal/catalog"
	"github.com/Calculator5329/infinite-horizons/internal/game"
	"github.com/Calculator5329/infinite-horizons/internal/job"
	"github.com/Calculator5329/infinite-horizons/internal/save"
)

const visibleNotices = 4

// session is one open save.
type session struct {
	name string
	dir  string
	ctx  *game.Context
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed>>16|1)))
}

func (g *Game) startSession(name, dir string, planets []*game.Planet, ship *game.ShipState) {
	player := game.NewPlayer("Commander")
	var x, y float64
	if ship != nil {
		x, y = ship.X, ship.Y
		player.Credits = ship.Credits
		player.Missions = ship.Missions
	}
	g.scene.Assets.Reset()
	g.session = &session{
		name: name,
		dir:  dir,
		ctx:  game.NewContext(planets, player, x, y, newRand(time.Now().UnixNano())),
	}
	g.mode = modePlay
	g.logger.Printf("session: %s opened, %d planets", name, len(planets))
}

// saveSession writes the open session in the background and records it in
// the catalog, then calls then.
func (g *Game) saveSession(then func()) {
	s := g.session
	planets := s.ctx.Planets
	ship := s.ctx.ShipState()
	opts := save.Options{Backups: g.cfg.BackupsKept, Logger: g.logger}
	j := job.Start(func(p *job.Progress) (struct{}, error) {
		opts.Progress = p
		return struct{}{}, save.Save(s.dir, planets, ship, opts)
	})
	g.wait("Saving "+s.name, j.Progress, j.Done(), func() {
		if _, err := j.Wait(); err != nil {
			g.logger.Printf("save %s: %v", s.name, err)
			s.ctx.Notices.Notify("Save Failed", err.Error(), game.NoticeWarning)
		} else {
			s.ctx.Notices.Notify("Game Saved", s.name, game.NoticeInfo)
		}
		g.record(s, ship)
		then()
	})
}

func (g *Game) record(s *session, ship game.ShipState) {
	if g.catalog == nil {
		return
	}
	e := catalog.Entry{
		Name:    s.name,
		Dir:     s.dir,
		Planets: len(s.ctx.Planets),
		ShipX:   ship.X,
		ShipY:   ship.Y,
		SavedAt: time.Now(),
	}
	if err := g.catalog.Record(context.Background(), e); err != nil {
		g.logger.Printf("catalog: record %s: %v", s.name, err)
	}
}

func (g *Game) updatePlay() {
	ctx := g.session.ctx
	dx, dy := 0, 0
	if pressed(ebiten.KeyW, ebiten.KeyUp) {
		dy--
	}
	if pressed(ebiten.KeyS, ebiten.KeyDown) {
		dy++
	}
	if pressed(ebiten.KeyA, ebiten.KeyLeft) {
		dx--
	}
	if pressed(ebiten.KeyD, ebiten.KeyRight) {
		dx++
	}
	ctx.Steer(dx, dy, pressed(ebiten.KeyShift))
	ctx.Tick()

	switch {
	case justPressed(ebiten.KeyE):
		if b, ok := ctx.Interact(); ok {
			g.boardAt = b
			g.board = ctx.OfferMissions(b.Beacon, ctx.Rand)
			g.boardSel = 0
			g.mode = modeDocked
		}
	case justPressed(ebiten.KeyL):
		if p, ok := ctx.Land(); ok {
			ctx.Notices.Notify("Landed", fmt.Sprintf("%s: %s, habitability %.0f%%, %s",
				p.Name, p.Type, p.Habitability*100, strings.Join(p.Minerals, ", ")), game.NoticeInfo)
		}
	case justPressed(ebiten.KeyF5):
		g.saveSession(func() {})
	case justPressed(ebiten.KeyEscape):
		g.saveSession(g.closeSession)
	}
}

func (g *Game) closeSession() {
	name := g.session.name
	g.session = nil
	g.scene.Assets.Reset()
	g.openMenu("Saved " + name)
}

func (g *Game) updateDocked() {
	ctx := g.session.ctx
	ctx.Tick()
	n := len(g.board)
	switch {
	case justPressed(ebiten.KeyEscape, ebiten.KeyE):
		g.mode = modePlay
	case n == 0:
	case justPressed(ebiten.KeyUp, ebiten.KeyW):
		g.boardSel = (g.boardSel + n - 1) % n
	case justPressed(ebiten.KeyDown, ebiten.KeyS):
		g.boardSel = (g.boardSel + 1) % n
	case justPressed(ebiten.KeyEnter, ebiten.KeySpace):
		m := g.board[g.boardSel]
		if ctx.ToggleMission(m) {
			ctx.Notices.Notify("Mission Accepted", m.Description, game.NoticeInfo)
		} else {
			ctx.Notices.Notify("Mission Dropped", m.Title, game.NoticeInfo)
		}
	}
}

func (g *Game) drawPlay(screen *ebiten.Image) {
	ctx := g.session.ctx
	g.scene.DrawWorld(screen, ctx)
	g.scene.DrawMinimap(screen, ctx, float64(g.cfg.StarFieldRange))
	g.scene.DrawHUD(screen, ctx)
	g.scene.DrawNotices(screen, ctx.Notices.Recent(visibleNotices))
	if g.mode != modeDocked {
		return
	}
	items := make([]string, len(g.board))
	for i, m := range g.board {
		mark := "[ ]"
		if ctx.Player.HasMission(m) {
			mark = "[x]"
		}
		items[i] = fmt.Sprintf("%s %s  %s cr", mark, m.Title, humanize.Comma(int64(m.Reward)))
	}
	planet := ""
	if p := game.PlanetByID(ctx.Planets, g.boardAt.PlanetID); p != nil {
		planet = " at " + p.Name
	}
	g.scene.DrawList(screen, g.boardAt.Kind.String()+planet, items, g.boardSel, "[Enter] accept/drop  [Esc] undock")
}

func repairSummary(r save.Report) string {
	var parts []string
	if n := len(r.Skipped); n > 0 {
		parts = append(parts, fmt.Sprintf("%d planet records skipped", n))
	}
	if n := len(r.Regenerated); n > 0 {
		parts = append(parts, fmt.Sprintf("%d sprites regenerated", n))
	}
	if r.ShipErr != nil {
		parts = append(parts, "ship reset to origin")
	}
	return strings.Join(parts, ", ")
}

func pressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
