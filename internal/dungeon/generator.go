// Package dungeon lays out procedural floor plans: rectangular rooms
// placed by rejection sampling with a one-cell separation buffer, then
// a per-cell classification of the finished grid into named tile
// shapes.
package dungeon

import (
	"math/rand"
	"time"

	"github.com/graywall/dungeonplan/internal/logger"
)

// Generator runs the full generation pipeline for one floor
type Generator struct {
	cfg  Config
	seed int64
	rng  *rand.Rand
}

// NewGenerator creates a Generator for the given config. A seed of 0
// or less seeds from the current time.
func NewGenerator(cfg Config, seed int64) *Generator {
	if seed <= 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		cfg:  cfg.Normalize(),
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed the generator draws from
func (g *Generator) Seed() int64 {
	return g.seed
}

// Config returns the normalized configuration the generator runs with
func (g *Generator) Config() Config {
	return g.cfg
}

// Generate produces one complete floor layout. Placement runs to
// completion before any cell is classified, so classification always
// reads a finished grid. Falling short of the target room count is a
// logged outcome, not an error.
func (g *Generator) Generate() *Layout {
	placer := NewPlacer(g.cfg, g.rng)
	floor, rooms := placer.PlaceRooms()

	logger.Debug("Floor generated",
		"seed", g.seed,
		"rooms", len(rooms),
		"grid_size", floor.Size())

	return &Layout{
		Seed:  g.seed,
		Grid:  floor,
		Rooms: rooms,
		Tiles: ClassifyGrid(floor),
	}
}
