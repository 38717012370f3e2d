package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/Calculator5329/infinite-horizons/internal/catalog"
	"github.com/Calculator5329/infinite-horizons/internal/config"
	"github.com/Calculator5329/infinite-horizons/internal/save"
)

func main() {
	if len(os.Args) >= 2 {
		switch os.Args[1] {
		case "inspect":
			inspectCmd(os.Args[2:])
			return
		case "backups":
			backupsCmd(os.Args[2:])
			return
		case "restore":
			restoreCmd(os.Args[2:])
			return
		case "forget":
			forgetCmd(os.Args[2:])
			return
		case "schema":
			schemaCmd()
			return
		case "list":
			listCmd(os.Args[2:])
			return
		}
	}
	listCmd(os.Args[1:])
}

func loadConfig(path string) config.Config {
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(2)
	}
	return cfg
}

func openCatalog(cfg config.Config) *catalog.Catalog {
	cat, err := catalog.Open(filepath.Join(cfg.SaveRoot, catalog.FileName))
	if err != nil {
		fmt.Fprintln(os.Stderr, "catalog:", err)
		os.Exit(1)
	}
	return cat
}

// saveDir resolves a save name through the catalog, falling back to
// <save_root>/<name>.
func saveDir(cfg config.Config, name string) string {
	if strings.ContainsRune(name, os.PathSeparator) {
		return name
	}
	path := filepath.Join(cfg.SaveRoot, catalog.FileName)
	if _, err := os.Stat(path); err == nil {
		cat := openCatalog(cfg)
		defer cat.Close()
		if e, ok, err := cat.Get(context.Background(), name); err == nil && ok {
			return e.Dir
		}
	}
	return filepath.Join(cfg.SaveRoot, name)
}

func listCmd(args []string) {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	cfgPath := fs.String("config", config.FileName, "config file")
	_ = fs.Parse(args)

	cfg := loadConfig(*cfgPath)
	cat := openCatalog(cfg)
	defer cat.Close()

	entries, err := cat.List(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, "list:", err)
		os.Exit(1)
	}
	if len(entries) == 0 {
		fmt.Println("no saves")
		return
	}
	for _, e := range entries {
		fmt.Println(e.Label())
	}
}

func inspectCmd(args []string) {
	fs := flag.NewFlagSet("inspect", flag.ExitOnError)
	cfgPath := fs.String("config", config.FileName, "config file")
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: horizonsctl inspect [-config file] <save>")
		os.Exit(2)
	}

	cfg := loadConfig(*cfgPath)
	dir := saveDir(cfg, fs.Arg(0))
	// Regenerated sprites are written back when the save dir is writable.
	w, err := save.Load(dir, save.Options{})
	if errors.Is(err, save.ErrNoSaveData) {
		fmt.Fprintln(os.Stderr, dir+": no readable save data")
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "load:", err)
		os.Exit(1)
	}

	fmt.Printf("%s: %d planets\n", dir, len(w.Planets))
	for _, p := range w.Planets {
		fmt.Printf("  %-16s %-12s %s  (%.0f, %.0f)  %d missions\n",
			p.Name, p.Type, p.ThemeName, p.X, p.Y, len(p.Missions))
	}
	if w.Ship != nil {
		fmt.Printf("ship at (%.0f, %.0f), %s credits, %d missions\n",
			w.Ship.X, w.Ship.Y, humanize.Comma(int64(w.Ship.Credits)), len(w.Ship.Missions))
	}
	r := w.Report
	for _, s := range r.Skipped {
		fmt.Printf("skipped planet record %d: %v\n", s.Index, s.Err)
	}
	for _, id := range r.Regenerated {
		fmt.Printf("regenerated sprite for planet %d\n", id)
	}
	if r.ShipErr != nil {
		fmt.Printf("ship record dropped: %v\n", r.ShipErr)
	}
	if !r.Clean() {
		os.Exit(3)
	}
}

func backupsCmd(args []string) {
	fs := flag.NewFlagSet("backups", flag.ExitOnError)
	cfgPath := fs.String("config", config.FileName, "config file")
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: horizonsctl backups [-config file] <save>")
		os.Exit(2)
	}

	dir := saveDir(loadConfig(*cfgPath), fs.Arg(0))
	paths, err := save.ListBackups(dir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "backups:", err)
		os.Exit(1)
	}
	for _, p := range paths {
		st, err := os.Stat(p)
		if err != nil {
			continue
		}
		fmt.Printf("%s  %s  %s\n", filepath.Base(p),
			humanize.Bytes(uint64(st.Size())), humanize.RelTime(st.ModTime(), time.Now(), "ago", "from now"))
	}
}

func restoreCmd(args []string) {
	fs := flag.NewFlagSet("restore", flag.ExitOnError)
	cfgPath := fs.String("config", config.FileName, "config file")
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: horizonsctl restore [-config file] <save>")
		os.Exit(2)
	}

	dir := saveDir(loadConfig(*cfgPath), fs.Arg(0))
	from, err := save.RestoreLatestBackup(dir)
	if errors.Is(err, save.ErrNoBackup) {
		fmt.Fprintln(os.Stderr, dir+": no backups")
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "restore:", err)
		os.Exit(1)
	}
	fmt.Println("restored", filepath.Base(from))
}

func forgetCmd(args []string) {
	fs := flag.NewFlagSet("forget", flag.ExitOnError)
	cfgPath := fs.String("config", config.FileName, "config file")
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: horizonsctl forget [-config file] <save>")
		os.Exit(2)
	}

	cat := openCatalog(loadConfig(*cfgPath))
	defer cat.Close()
	if err := cat.Forget(context.Background(), fs.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, "forget:", err)
		os.Exit(1)
	}
}

func schemaCmd() {
	b, err := save.Schema()
	if err != nil {
		fmt.Fprintln(os.Stderr, "schema:", err)
		os.Exit(1)
	}
	os.Stdout.Write(append(b, '\n'))
}
