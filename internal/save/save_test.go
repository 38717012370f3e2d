package save

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Calculator5329/infinite-horizons/internal/game"
	"github.com/Calculator5329/infinite-horizons/internal/job"
	"github.com/Calculator5329/infinite-horizons/internal/texture"
)

func quiet() Options {
	return Options{Logger: log.New(io.Discard, "", 0), Rand: rand.New(rand.NewPCG(7, 7))}
}

func makePlanets(t *testing.T, n int) []*game.Planet {
	t.Helper()
	rng := rand.New(rand.NewPCG(11, 12))
	planets := make([]*game.Planet, n)
	for i := range planets {
		p, seed := game.RollPlanet(rng, i, 2000, 64)
		p.Render(seed, nil)
		planets[i] = p
	}
	return planets
}

func rewriteDoc(t *testing.T, dir string, edit func(doc map[string]any)) {
	t.Helper()
	path := filepath.Join(dir, dataFile)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}
	edit(doc)
	if data, err = json.Marshal(doc); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
}

func planetDoc(doc map[string]any, i int) map[string]any {
	return doc["planets"].([]any)[i].(map[string]any)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	planets := makePlanets(t, 3)

	refugees := game.NewMission("Smuggle Refugees", "Get them out.", 1000, &game.MissionStep{
		Description: "Deliver refugees to safety.",
		Task: &game.PassengerTask{
			DeliverTask:   game.DeliverTask{CurrentPlanet: planets[0].Name, EndpointPlanet: planets[2].Name},
			PassengerName: "Refugees",
			AtHub:         true,
		},
	})
	supply := game.NewMission("Supply Run", "Haul crates.", 500, &game.MissionStep{
		Description: "Deliver supplies.",
		Task:        &game.DeliverTask{CurrentPlanet: planets[1].Name, EndpointPlanet: planets[0].Name},
	})
	planets[0].Missions = []*game.Mission{refugees}
	planets[1].Missions = []*game.Mission{supply}
	ship := game.ShipState{X: 120.5, Y: -33, Credits: 250, Missions: []*game.Mission{refugees}}

	opts := quiet()
	opts.Progress = new(job.Progress)
	if err := Save(dir, planets, ship, opts); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if opts.Progress.Fraction() != 1 {
		t.Fatalf("progress = %v", opts.Progress.Fraction())
	}

	w, err := Load(dir, quiet())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !w.Report.Clean() {
		t.Fatalf("report = %+v", w.Report)
	}
	if len(w.Planets) != len(planets) {
		t.Fatalf("loaded %d planets", len(w.Planets))
	}
	for i, got := range w.Planets {
		want := planets[i]
		if got.ID != want.ID || got.X != want.X || got.Y != want.Y || got.Type != want.Type ||
			got.Habitability != want.Habitability || got.Name != want.Name ||
			got.ThemeName != want.ThemeName || got.Scale != want.Scale || got.Resolution != want.Resolution {
			t.Fatalf("planet %d: got %+v, want %+v", i, got, want)
		}
		if len(got.Minerals) != len(want.Minerals) {
			t.Fatalf("planet %d minerals %v vs %v", i, got.Minerals, want.Minerals)
		}
		for j := range got.Minerals {
			if got.Minerals[j] != want.Minerals[j] {
				t.Fatalf("planet %d minerals %v vs %v", i, got.Minerals, want.Minerals)
			}
		}
		if !bytes.Equal(got.Sprite.Pix, want.Sprite.Pix) {
			t.Fatalf("planet %d sprite changed", i)
		}
	}

	if w.Ship == nil || w.Ship.X != 120.5 || w.Ship.Y != -33 || w.Ship.Credits != 250 {
		t.Fatalf("ship = %+v", w.Ship)
	}
	if len(w.Ship.Missions) != 1 || w.Ship.Missions[0] != w.Planets[0].Missions[0] {
		t.Fatal("ship and planet missions not linked by id")
	}
	task, ok := w.Ship.Missions[0].Steps[0].Task.(*game.PassengerTask)
	if !ok {
		t.Fatalf("task type = %T", w.Ship.Missions[0].Steps[0].Task)
	}
	if !task.AtHub || task.PassengerName != "Refugees" || task.EndpointPlanet != planets[2].Name {
		t.Fatalf("task = %+v", task)
	}
	if _, ok := w.Planets[1].Missions[0].Steps[0].Task.(*game.DeliverTask); !ok {
		t.Fatalf("deliver task type = %T", w.Planets[1].Missions[0].Steps[0].Task)
	}
}

func TestSaveSkipsPersistedSprites(t *testing.T) {
	dir := t.TempDir()
	planets := makePlanets(t, 2)
	if err := Save(dir, planets, game.ShipState{}, quiet()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if planets[0].SpriteFile != texture.SpritePath(dir, 0) {
		t.Fatalf("SpriteFile = %q", planets[0].SpriteFile)
	}

	marker := []byte("left alone")
	for _, p := range planets {
		if err := os.WriteFile(p.SpriteFile, marker, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	planets[1].SpriteFile = ""
	if err := Save(dir, planets, game.ShipState{}, quiet()); err != nil {
		t.Fatalf("second Save: %v", err)
	}
	if got, _ := os.ReadFile(texture.SpritePath(dir, 0)); !bytes.Equal(got, marker) {
		t.Fatal("persisted sprite was rewritten")
	}
	if got, _ := os.ReadFile(texture.SpritePath(dir, 1)); bytes.Equal(got, marker) {
		t.Fatal("unpersisted sprite was not written")
	}
}

func TestLoadRegeneratesSprites(t *testing.T) {
	dir := t.TempDir()
	planets := makePlanets(t, 3)
	if err := Save(dir, planets, game.ShipState{}, quiet()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := os.Remove(texture.SpritePath(dir, 1)); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(texture.SpritePath(dir, 2), []byte("garbage"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := Load(dir, quiet())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(w.Planets) != 3 {
		t.Fatalf("loaded %d planets", len(w.Planets))
	}
	if len(w.Report.Regenerated) != 2 || w.Report.Regenerated[0] != 1 || w.Report.Regenerated[1] != 2 {
		t.Fatalf("regenerated = %v", w.Report.Regenerated)
	}
	for _, p := range w.Planets {
		if p.Sprite == nil || p.Sprite.Rect.Dx() != 64 {
			t.Fatalf("planet %d sprite missing", p.ID)
		}
		if p.ThemeName != planets[p.ID].ThemeName {
			t.Fatalf("planet %d theme changed", p.ID)
		}
	}
	if _, err := texture.ReadSprite(texture.SpritePath(dir, 2)); err != nil {
		t.Fatalf("regenerated sprite not written back: %v", err)
	}
}

func TestLoadUnknownThemeOnRegeneration(t *testing.T) {
	dir := t.TempDir()
	if err := Save(dir, makePlanets(t, 1), game.ShipState{}, quiet()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	rewriteDoc(t, dir, func(doc map[string]any) { planetDoc(doc, 0)["theme_name"] = "Plaid" })
	os.Remove(texture.SpritePath(dir, 0))

	w, err := Load(dir, quiet())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, ok := texture.Lookup(w.Planets[0].ThemeName); !ok {
		t.Fatalf("theme %q not replaced", w.Planets[0].ThemeName)
	}
}

func TestLoadSkipsCorruptRecords(t *testing.T) {
	dir := t.TempDir()
	if err := Save(dir, makePlanets(t, 5), game.ShipState{}, quiet()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	rewriteDoc(t, dir, func(doc map[string]any) {
		planetDoc(doc, 2)["type"] = 42
		delete(planetDoc(doc, 4), "name")
		planetDoc(doc, 0)["rings"] = true // unknown fields are tolerated
	})

	w, err := Load(dir, quiet())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(w.Planets) != 3 {
		t.Fatalf("loaded %d planets, want 3", len(w.Planets))
	}
	if len(w.Report.Skipped) != 2 || w.Report.Skipped[0].Index != 2 || w.Report.Skipped[1].Index != 4 {
		t.Fatalf("skipped = %+v", w.Report.Skipped)
	}
}

func TestLoadOneBadAmongFive(t *testing.T) {
	dir := t.TempDir()
	if err := Save(dir, makePlanets(t, 5), game.ShipState{}, quiet()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	rewriteDoc(t, dir, func(doc map[string]any) {
		planetDoc(doc, 3)["habitability"] = "very"
	})
	w, err := Load(dir, quiet())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(w.Planets) != 4 || len(w.Report.Skipped) != 1 {
		t.Fatalf("planets=%d skipped=%+v", len(w.Planets), w.Report.Skipped)
	}
}

func TestLoadUnknownTaskType(t *testing.T) {
	dir := t.TempDir()
	planets := makePlanets(t, 2)
	planets[0].Missions = []*game.Mission{game.NewMission("m", "", 1, &game.MissionStep{
		Task: &game.DeliverTask{EndpointPlanet: "x"},
	})}
	if err := Save(dir, planets, game.ShipState{}, quiet()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	rewriteDoc(t, dir, func(doc map[string]any) {
		m := planetDoc(doc, 0)["missions"].([]any)[0].(map[string]any)
		step := m["steps"].([]any)[0].(map[string]any)
		step["task"].(map[string]any)["type"] = "Teleport"
	})
	w, err := Load(dir, quiet())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(w.Planets) != 1 || w.Planets[0].ID != 1 {
		t.Fatalf("planets = %v", w.Planets)
	}
}

func TestLoadMalformedDocument(t *testing.T) {
	dir := t.TempDir()
	w, err := Load(dir, quiet())
	if !errors.Is(err, ErrNoSaveData) || w == nil || len(w.Planets) != 0 || w.Ship != nil {
		t.Fatalf("missing file: %v, %+v", err, w)
	}
	for _, body := range []string{"{not json", "[]", "{}"} {
		if err := os.WriteFile(filepath.Join(dir, dataFile), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
		w, err := Load(dir, quiet())
		if !errors.Is(err, ErrNoSaveData) {
			t.Fatalf("%q: err = %v", body, err)
		}
		if w == nil || len(w.Planets) != 0 || w.Ship != nil {
			t.Fatalf("%q: world = %+v", body, w)
		}
	}
}

func TestLoadBadShipKeepsPlanets(t *testing.T) {
	dir := t.TempDir()
	if err := Save(dir, makePlanets(t, 2), game.ShipState{X: 1}, quiet()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	rewriteDoc(t, dir, func(doc map[string]any) { doc["spaceship"] = map[string]any{"x": "left"} })
	w, err := Load(dir, quiet())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if w.Ship != nil || w.Report.ShipErr == nil || len(w.Planets) != 2 {
		t.Fatalf("world = %+v", w)
	}
}

func TestSaveReportsSpriteFailure(t *testing.T) {
	dir := t.TempDir()
	planets := makePlanets(t, 2)
	planets[1].Sprite = nil
	err := Save(dir, planets, game.ShipState{}, quiet())
	if err == nil {
		t.Fatal("expected sprite error")
	}
	w, lerr := Load(dir, quiet())
	if lerr != nil || len(w.Planets) != 2 {
		t.Fatalf("data.json not written despite sprite failure: %v", lerr)
	}
	if len(w.Report.Regenerated) != 1 || w.Report.Regenerated[0] != 1 {
		t.Fatalf("regenerated = %v", w.Report.Regenerated)
	}
}

func TestSaveDirectoryFailure(t *testing.T) {
	base := t.TempDir()
	file := filepath.Join(base, "file")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Save(filepath.Join(file, "save"), makePlanets(t, 1), game.ShipState{}, quiet()); err == nil {
		t.Fatal("expected error saving under a file")
	}
}

func TestSaveInJob(t *testing.T) {
	dir := t.TempDir()
	planets := makePlanets(t, 4)
	j := job.Start(func(p *job.Progress) (struct{}, error) {
		opts := quiet()
		opts.Progress = p
		return struct{}{}, Save(dir, planets, game.ShipState{}, opts)
	})
	if _, err := j.Wait(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if j.Progress.State() != job.Done || j.Progress.Fraction() != 1 {
		t.Fatalf("progress %v %v", j.Progress.State(), j.Progress.Fraction())
	}
}

func TestBackupsRotateAndRestore(t *testing.T) {
	dir := t.TempDir()
	planets := makePlanets(t, 1)
	clock := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	opts := quiet()
	opts.Backups = 2
	opts.Now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}

	if _, err := RestoreLatestBackup(dir); !errors.Is(err, ErrNoBackup) {
		t.Fatalf("restore with no backups: %v", err)
	}
	for i := 1; i <= 4; i++ {
		if err := Save(dir, planets, game.ShipState{X: float64(i)}, opts); err != nil {
			t.Fatalf("Save %d: %v", i, err)
		}
	}
	backups, err := ListBackups(dir)
	if err != nil {
		t.Fatalf("ListBackups: %v", err)
	}
	if len(backups) != 2 {
		t.Fatalf("%d backups kept, want 2", len(backups))
	}

	if _, err := RestoreLatestBackup(dir); err != nil {
		t.Fatalf("RestoreLatestBackup: %v", err)
	}
	w, err := Load(dir, quiet())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if w.Ship == nil || w.Ship.X != 3 {
		t.Fatalf("restored ship = %+v, want x 3", w.Ship)
	}

	data, err := ReadBackup(backups[1])
	if err != nil {
		t.Fatalf("ReadBackup: %v", err)
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil || doc.Spaceship.X != 2 {
		t.Fatalf("older backup = %+v, %v", doc.Spaceship, err)
	}
}

func TestSchema(t *testing.T) {
	data, err := Schema()
	if err != nil {
		t.Fatalf("Schema: %v", err)
	}
	var out map[string]map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("schema not JSON: %v", err)
	}
	if _, ok := out["planet"]["properties"]; !ok {
		t.Fatalf("planet schema has no properties: %s", data)
	}
	req, _ := out["planet"]["required"].([]any)
	has := map[string]bool{}
	for _, r := range req {
		has[r.(string)] = true
	}
	for _, k := range []string{"x", "y", "id", "res", "type", "name", "theme_name", "sprite_filename"} {
		if !has[k] {
			t.Fatalf("%q not required: %v", k, req)
		}
	}
	if has["missions"] {
		t.Fatal("missions should be optional")
	}
	if _, err := compiled(); err != nil {
		t.Fatalf("compile: %v", err)
	}
}
