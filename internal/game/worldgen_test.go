package game

import (
	"bytes"
	"context"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/Calculator5329/infinite-horizons/internal/job"
)

func quietLogger() *log.Logger { return log.New(io.Discard, "", 0) }

func TestWorldGenWritesSprites(t *testing.T) {
	dir := t.TempDir()
	var progress job.Progress
	gen := WorldGen{
		SaveDir: dir, Count: 6, Range: 1000, Resolution: 64, Workers: 3,
		Rand: rand.New(rand.NewPCG(5, 6)), Logger: quietLogger(),
	}
	planets, err := gen.Generate(context.Background(), &progress)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(planets) != 6 {
		t.Fatalf("%d planets", len(planets))
	}
	for i, p := range planets {
		if p.ID != i || p.Sprite == nil {
			t.Fatalf("planet %d: %+v", i, p)
		}
		if _, err := os.Stat(p.SpriteFile); err != nil {
			t.Fatalf("sprite %d: %v", i, err)
		}
	}
	if progress.Fraction() != 1 {
		t.Fatalf("progress = %v", progress.Fraction())
	}
}

func TestWorldGenDeterministic(t *testing.T) {
	gen := func() []*Planet {
		ps, err := WorldGen{Count: 4, Range: 500, Resolution: 64, Workers: 2,
			Rand: rand.New(rand.NewPCG(8, 8)), Logger: quietLogger()}.Generate(context.Background(), nil)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		return ps
	}
	a, b := gen(), gen()
	for i := range a {
		if a[i].Name != b[i].Name || a[i].X != b[i].X || a[i].ThemeName != b[i].ThemeName {
			t.Fatalf("planet %d differs", i)
		}
		if !bytes.Equal(a[i].Sprite.Pix, b[i].Sprite.Pix) {
			t.Fatalf("planet %d sprite differs", i)
		}
		if a[i].SpriteFile != "" {
			t.Fatal("SpriteFile set without a save dir")
		}
	}
}

func TestWorldGenWriteFailureNotFatal(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "sprites"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	planets, err := WorldGen{SaveDir: dir, Count: 3, Range: 100, Resolution: 64,
		Rand: rand.New(rand.NewPCG(1, 2)), Logger: quietLogger()}.Generate(context.Background(), nil)
	if err == nil {
		t.Fatal("expected joined write error")
	}
	if len(planets) != 3 {
		t.Fatalf("planets lost on write failure: %d", len(planets))
	}
	for _, p := range planets {
		if p.Sprite == nil || p.SpriteFile != "" {
			t.Fatalf("planet %d: sprite=%v file=%q", p.ID, p.Sprite != nil, p.SpriteFile)
		}
	}
}

func TestWorldGenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var progress job.Progress
	_, err := WorldGen{Count: 3, Range: 100, Resolution: 64, Logger: quietLogger()}.Generate(ctx, &progress)
	if err == nil {
		t.Fatal("expected cancellation error")
	}
	if progress.State() != job.Failed {
		t.Fatalf("state = %v", progress.State())
	}
}
