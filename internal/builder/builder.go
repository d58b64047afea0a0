// Package builder defines the hand-off boundary between layout
// generation and whatever instantiates the result in an engine or
// scene. The generator projects a layout into a RenderRequest and
// passes it across; an absent consumer is a no-op, never an error.
package builder

import (
	"github.com/graywall/dungeonplan/internal/dungeon"
	"github.com/graywall/dungeonplan/internal/grid"
)

// PlacedTile is one occupied cell in boundary form: where it sits,
// what occupies it, and the shape key a consumer resolves to an asset.
type PlacedTile struct {
	Row      int
	Col      int
	Category grid.Symbol
	Shape    string
}

// RenderRequest carries everything a consumer needs to instantiate a
// generated floor. Only occupied cells cross the boundary; empty cells
// are omitted entirely.
type RenderRequest struct {
	Seed     int64
	GridSize int
	Tiles    []PlacedTile
}

// NewRenderRequest projects a layout into boundary form, row-major.
func NewRenderRequest(l *dungeon.Layout) RenderRequest {
	req := RenderRequest{
		Seed:     l.Seed,
		GridSize: l.Size(),
	}

	size := l.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			tile := l.TileAt(row, col)
			if !tile.Occupied() {
				continue
			}
			req.Tiles = append(req.Tiles, PlacedTile{
				Row:      row,
				Col:      col,
				Category: tile.Category,
				Shape:    tile.Shape,
			})
		}
	}
	return req
}

// Builder consumes render requests. Implementations live outside this
// module; generation never waits on one or validates its assets.
type Builder interface {
	Build(req RenderRequest) error
}

// NopBuilder discards every request. It stands in whenever no consumer
// is wired up.
type NopBuilder struct{}

// Build does nothing and always succeeds.
func (NopBuilder) Build(RenderRequest) error { return nil }
