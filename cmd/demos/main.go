package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hack-pad/hackpadfs"
	osfs "github.com/hack-pad/hackpadfs/os"
	"github.com/pkg/errors"

	"scene-demos/internal/commands"
	"scene-demos/internal/config"
	"scene-demos/internal/graphics"
	"scene-demos/internal/logger"
)

func main() {
	reg := commands.NewRegistry()
	registerSpawner(reg)
	registerColorCube(reg)
	registerTriangle(reg)
	registerConfig(reg)

	if err := reg.Execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "demos: %v\n\nusage: demos <command> [flags]\n%s", err, reg.Usage())
		os.Exit(1)
	}
}

// env is what every demo command needs after flag parsing.
type env struct {
	cfg config.Config
	log *logger.Logger
}

// newFlagSet returns a FlagSet with the shared -config flag bound to path.
func newFlagSet(name string, path *string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(path, "config", config.ConfigPath, "path to the YAML config file")
	return fs
}

func loadEnv(path string) (env, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return env{}, err
	}
	return env{cfg: cfg, log: logger.New(cfg.LogFile, os.Stdout)}, nil
}

func (e env) window(title string) graphics.Options {
	w := e.cfg.Window
	if w.Title != "" {
		title = w.Title
	}
	return graphics.Options{Width: int32(w.Width), Height: int32(w.Height), Title: title, FPS: int32(w.FPS)}
}

// dirFS returns a filesystem rooted at the directory holding name, and name's path inside it.
func dirFS(name string) (hackpadfs.FS, string, error) {
	abs, err := filepath.Abs(name)
	if err != nil {
		return nil, "", errors.Wrapf(err, "resolve %s", name)
	}
	root := osfs.NewFS()
	dir, err := root.FromOSPath(filepath.Dir(abs))
	if err != nil {
		return nil, "", errors.Wrapf(err, "resolve %s", name)
	}
	sub, err := root.Sub(dir)
	if err != nil {
		return nil, "", errors.Wrapf(err, "open %s", filepath.Dir(abs))
	}
	return sub, filepath.Base(abs), nil
}
