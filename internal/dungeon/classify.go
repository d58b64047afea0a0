package dungeon

import (
	"strings"

	"github.com/graywall/dungeonplan/internal/grid"
)

// directionLabels holds the cardinal direction names in the fixed order
// they appear inside shape names
var directionLabels = [4]string{"Forward", "Back", "Left", "Right"}

// Classify derives the tile for one cell from its own symbol and its
// 3x3 neighborhood. Room, entry, and exit cells share the wall and
// corner naming logic; hall and door cells have no shape of their own
// yet and carry only their category.
func Classify(sym grid.Symbol, n grid.Neighborhood) Tile {
	tile := Tile{Category: sym}
	switch sym {
	case grid.SymbolRoom, grid.SymbolEntry, grid.SymbolExit:
		tile.Shape = shapeName(n)
	}
	return tile
}

// shapeName names the wall layout of a solid cell. Cardinal neighbors
// decide wall against corner, diagonal neighbors decide openness. Every
// direction label lands in Forward, Back, Left, Right order, so names
// are stable for a given neighborhood.
func shapeName(n grid.Neighborhood) string {
	adjacent := 0
	var labels strings.Builder
	for i, sym := range n.Cardinals() {
		if sym.Solid() {
			adjacent++
		} else {
			labels.WriteString(directionLabels[i])
		}
	}

	diag := 0
	for _, sym := range n.Diagonals() {
		if sym.Solid() {
			diag++
		}
	}

	var name strings.Builder
	if diag >= 2 {
		name.WriteString("Open")
	}
	if adjacent == 4 {
		if diag == 4 {
			name.WriteString("NoWall")
		} else {
			// All four cardinals are solid, so no labels accumulated;
			// asset libraries key on the bare Corner name.
			name.WriteString(labels.String())
			name.WriteString("Corner")
		}
	} else {
		name.WriteString(labels.String())
		if adjacent == 3 {
			name.WriteString("Wall")
		} else {
			name.WriteString("Corner")
		}
	}
	name.WriteString(ShapeSuffix)
	return name.String()
}

// ClassifyGrid classifies every cell of a finished grid. Empty cells
// are skipped and keep the zero tile. The result is row-major and
// parallel to the grid.
func ClassifyGrid(g *grid.Grid) []Tile {
	size := g.Size()
	tiles := make([]Tile, size*size)
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			sym := g.At(row, col)
			if sym == grid.SymbolEmpty {
				continue
			}
			tiles[row*size+col] = Classify(sym, g.Neighborhood(row, col))
		}
	}
	return tiles
}
