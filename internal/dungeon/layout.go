package dungeon

import "github.com/graywall/dungeonplan/internal/grid"

// Layout is the finished product of one generation run: the symbolic
// grid, the rooms that were placed, and the classified tile for every
// cell in row-major order
type Layout struct {
	Seed  int64
	Grid  *grid.Grid
	Rooms []Room
	Tiles []Tile
}

// Size returns the side length of the layout's grid
func (l *Layout) Size() int {
	if l.Grid == nil {
		return 0
	}
	return l.Grid.Size()
}

// RoomCount returns the number of placed rooms
func (l *Layout) RoomCount() int {
	return len(l.Rooms)
}

// TileAt returns the classified tile at the given cell. Out-of-bounds
// cells read as the zero tile.
func (l *Layout) TileAt(row, col int) Tile {
	if l.Grid == nil || !l.Grid.InBounds(row, col) {
		return Tile{}
	}
	return l.Tiles[row*l.Grid.Size()+col]
}
