package dungeon

import "github.com/graywall/dungeonplan/internal/grid"

// ShapeSuffix is the trailing segment of every room shape name.
// Builders treat the full name as a dictionary key into their asset
// library, not as a file path.
const ShapeSuffix = ".mesh"

// Tile is the classified form of one grid cell. Shape is set only for
// room, entry, and exit cells; every other category carries the
// category alone.
type Tile struct {
	Category grid.Symbol
	Shape    string
}

// Occupied returns true if the tile holds any structure at all
func (t Tile) Occupied() bool {
	return t.Category != grid.SymbolEmpty
}
