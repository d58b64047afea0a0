package dungeon

// Rect is an axis-aligned rectangle in grid coordinates, half-open on
// both axes: rows [MinRow, MaxRow), columns [MinCol, MaxCol)
type Rect struct {
	MinRow int
	MinCol int
	MaxRow int
	MaxCol int
}

// RectAt builds a rectangle from its top-left cell and extents
func RectAt(row, col, rows, cols int) Rect {
	return Rect{MinRow: row, MinCol: col, MaxRow: row + rows, MaxCol: col + cols}
}

// Rows returns the row extent
func (r Rect) Rows() int { return r.MaxRow - r.MinRow }

// Cols returns the column extent
func (r Rect) Cols() int { return r.MaxCol - r.MinCol }

// Area returns the number of cells covered
func (r Rect) Area() int { return r.Rows() * r.Cols() }

// Contains returns true if the cell lies inside the rectangle
func (r Rect) Contains(row, col int) bool {
	return row >= r.MinRow && row < r.MaxRow && col >= r.MinCol && col < r.MaxCol
}

// Intersects returns true if the two rectangles share at least one cell
func (r Rect) Intersects(other Rect) bool {
	return r.MinRow < other.MaxRow && other.MinRow < r.MaxRow &&
		r.MinCol < other.MaxCol && other.MinCol < r.MaxCol
}

// Expand grows the rectangle by n cells on every side
func (r Rect) Expand(n int) Rect {
	return Rect{
		MinRow: r.MinRow - n,
		MinCol: r.MinCol - n,
		MaxRow: r.MaxRow + n,
		MaxCol: r.MaxCol + n,
	}
}

// In returns true if the rectangle lies entirely within a square grid
// of the given side length
func (r Rect) In(size int) bool {
	return r.MinRow >= 0 && r.MinCol >= 0 && r.MaxRow <= size && r.MaxCol <= size
}
