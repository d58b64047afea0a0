package dungeon

import "github.com/graywall/dungeonplan/internal/grid"

// Room is one placed rectangular room. Doors, entry, and exit are
// reserved for hallway placement and stay unset for now. Rooms are
// immutable once accepted into a placement run.
type Room struct {
	Bounds Rect
	Doors  []grid.Coord
	Entry  *grid.Coord
	Exit   *grid.Coord
}

// Buffer returns the room's exclusion zone: its bounds expanded by
// exactly one cell on every side
func (r Room) Buffer() Rect {
	return r.Bounds.Expand(1)
}

// Separated returns true if the two rooms keep at least one empty cell
// between their bounds. The buffer test runs in both directions so
// neither room's size changes the outcome.
func (r Room) Separated(other Room) bool {
	if r.Buffer().Intersects(other.Bounds) {
		return false
	}
	if other.Buffer().Intersects(r.Bounds) {
		return false
	}
	return true
}
