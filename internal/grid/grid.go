package grid

import "strings"

// Coord identifies a single cell by row and column
type Coord struct {
	Row int `yaml:"row" json:"row"`
	Col int `yaml:"col" json:"col"`
}

// Grid is a square symbolic floor plan. Cells are stored row-major and
// default to SymbolEmpty.
type Grid struct {
	size  int
	cells []Symbol
}

// NewGrid creates an empty square grid with the given side length
func NewGrid(size int) *Grid {
	if size < 1 {
		size = 1
	}
	return &Grid{
		size:  size,
		cells: make([]Symbol, size*size),
	}
}

// Size returns the side length of the grid
func (g *Grid) Size() int {
	return g.size
}

// InBounds returns true if the cell lies inside the grid
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.size && col >= 0 && col < g.size
}

// At returns the symbol at the given cell. Out-of-bounds cells read as
// SymbolEmpty on every side of the grid.
func (g *Grid) At(row, col int) Symbol {
	if !g.InBounds(row, col) {
		return SymbolEmpty
	}
	return g.cells[row*g.size+col]
}

// Set writes the symbol at the given cell. Out-of-bounds writes are
// ignored.
func (g *Grid) Set(row, col int, s Symbol) {
	if !g.InBounds(row, col) {
		return
	}
	g.cells[row*g.size+col] = s
}

// Fill sets every cell to the given symbol
func (g *Grid) Fill(s Symbol) {
	for i := range g.cells {
		g.cells[i] = s
	}
}

// Count returns the number of cells holding the given symbol
func (g *Grid) Count(s Symbol) int {
	n := 0
	for _, c := range g.cells {
		if c == s {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	c := &Grid{
		size:  g.size,
		cells: make([]Symbol, len(g.cells)),
	}
	copy(c.cells, g.cells)
	return c
}

// Equal reports whether two grids have the same size and cells
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.size != other.size {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders the grid as one glyph row per line
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.size * (g.size + 1))
	for row := 0; row < g.size; row++ {
		for col := 0; col < g.size; col++ {
			sb.WriteRune(g.At(row, col).Rune())
		}
		if row < g.size-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// ParseGrid rebuilds a grid from the glyph rows produced by String.
// Rows must be equal length and form a square.
func ParseGrid(s string) (*Grid, bool) {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	size := len(lines)
	if size == 0 {
		return nil, false
	}
	g := NewGrid(size)
	for row, line := range lines {
		runes := []rune(line)
		if len(runes) != size {
			return nil, false
		}
		for col, r := range runes {
			sym, ok := ParseRune(r)
			if !ok {
				return nil, false
			}
			g.Set(row, col, sym)
		}
	}
	return g, true
}
