package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"spellarena/internal/arena"
	"spellarena/internal/character"
	"spellarena/internal/clock"
	"spellarena/internal/config"
	"spellarena/internal/raycast"
	"spellarena/internal/render"
	"spellarena/internal/threading"
	"spellarena/internal/world"
)

const townMap = "town"

type options struct {
	configPath string
	seed       int64
	quiet      bool
	mapPath    string
}

var opts options

// session is everything one run of the game needs.
type session struct {
	cfg       *config.Config
	grid      *world.Grid
	director  *arena.WaveDirector
	composer  *render.Composer
	threading *threading.ThreadingComponents
}

func (s *session) Close() {
	s.threading.Shutdown()
}

// loadConfig reads the config file. A missing file falls back to the
// built-in defaults unless the path was given explicitly.
func loadConfig(cmd *cobra.Command, o options) (*config.Config, error) {
	cfg, err := config.LoadConfig(o.configPath)
	if err == nil {
		return cfg, nil
	}
	explicit := false
	if cmd != nil {
		if f := cmd.Flag("config"); f != nil {
			explicit = f.Changed
		}
	}
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		log.Printf("[arena] %s not found, using built-in defaults", o.configPath)
		return config.Default(), nil
	}
	return nil, err
}

// loadGrid builds the battlefield. Custom maps move the arena centre to the
// open tile nearest the middle of the map.
func loadGrid(cfg *config.Config, mapPath string) (*world.Grid, error) {
	var (
		grid *world.Grid
		err  error
	)
	switch mapPath {
	case "":
		return world.NewArenaGrid(cfg), nil
	case townMap:
		grid, err = world.NewGridFromRows(cfg.Town.Rows, cfg.GetTileSize())
	default:
		grid, err = world.LoadGrid(mapPath, cfg.GetTileSize())
	}
	if err != nil {
		return nil, err
	}

	cx, cy, ok := grid.NearestWalkable(grid.Width()/2, grid.Height()/2)
	if !ok {
		return nil, fmt.Errorf("map %s has no walkable tile", mapPath)
	}
	cfg.Arena.CenterX, cfg.Arena.CenterY = cx, cy
	cfg.Arena.Radius = float64(min(grid.Width(), grid.Height())) / 2
	cfg.Waves.SpawnRadius = min(cfg.Waves.SpawnRadius, max(1, cfg.Arena.Radius-1))
	return grid, nil
}

func newSession(cfg *config.Config, mapPath string, clk clock.Clock, seed int64) (*session, error) {
	grid, err := loadGrid(cfg, mapPath)
	if err != nil {
		return nil, fmt.Errorf("failed to build map: %w", err)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("[arena] seed %d", seed)

	tc := threading.NewThreadingComponents(cfg.Threading)
	caster := raycast.NewCaster(grid, raycast.SettingsFromConfig(cfg), tc.WorkerPool)
	director := arena.NewWaveDirector(cfg, grid, character.NewPlayer(cfg.Player), clk, rand.New(rand.NewSource(seed)), nil)
	director.SetMonitor(tc.PerformanceMonitor)

	composer := render.NewComposer(caster, cfg.Graphics.ViewBobFactor)
	composer.SetMonitor(tc.PerformanceMonitor)

	return &session{
		cfg:       cfg,
		grid:      grid,
		director:  director,
		composer:  composer,
		threading: tc,
	}, nil
}

// setup applies the persistent flags and builds a session on clk.
func setup(cmd *cobra.Command, clk clock.Clock) (*session, error) {
	if opts.quiet {
		log.SetOutput(io.Discard)
	}
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return nil, err
	}
	return newSession(cfg, opts.mapPath, clk, opts.seed)
}
