package grid

// Neighborhood is the 3x3 window of symbols around a cell. The first
// index is the row offset plus one, the second the column offset plus
// one, so [1][1] is the center cell. Cells beyond the grid edge read
// as SymbolEmpty regardless of which edge was crossed.
type Neighborhood [3][3]Symbol

// Neighborhood samples the 3x3 window centered on the given cell
func (g *Grid) Neighborhood(row, col int) Neighborhood {
	var n Neighborhood
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			n[dr+1][dc+1] = g.At(row+dr, col+dc)
		}
	}
	return n
}

// Center returns the symbol of the sampled cell itself
func (n Neighborhood) Center() Symbol { return n[1][1] }

// Forward returns the neighbor one column ahead (col+1)
func (n Neighborhood) Forward() Symbol { return n[1][2] }

// Back returns the neighbor one column behind (col-1)
func (n Neighborhood) Back() Symbol { return n[1][0] }

// Left returns the neighbor one row up (row-1)
func (n Neighborhood) Left() Symbol { return n[0][1] }

// Right returns the neighbor one row down (row+1)
func (n Neighborhood) Right() Symbol { return n[2][1] }

// ForwardLeft returns the neighbor at (row-1, col+1)
func (n Neighborhood) ForwardLeft() Symbol { return n[0][2] }

// ForwardRight returns the neighbor at (row+1, col+1)
func (n Neighborhood) ForwardRight() Symbol { return n[2][2] }

// BackLeft returns the neighbor at (row-1, col-1)
func (n Neighborhood) BackLeft() Symbol { return n[0][0] }

// BackRight returns the neighbor at (row+1, col-1)
func (n Neighborhood) BackRight() Symbol { return n[2][0] }

// Cardinals returns the four edge-sharing neighbors in forward, back,
// left, right order
func (n Neighborhood) Cardinals() [4]Symbol {
	return [4]Symbol{n.Forward(), n.Back(), n.Left(), n.Right()}
}

// Diagonals returns the four corner-sharing neighbors in forward-left,
// forward-right, back-left, back-right order
func (n Neighborhood) Diagonals() [4]Symbol {
	return [4]Symbol{n.ForwardLeft(), n.ForwardRight(), n.BackLeft(), n.BackRight()}
}
