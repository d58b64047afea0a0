package dungeon

// Config contains parameters for one floor generation run
type Config struct {
	GridSize    int // Side length of the square floor grid
	MinRoomSize int // Smallest room extent on either axis
	MaxRoomSize int // Largest room extent on either axis
	MaxRooms    int // Target room count; generation may stop earlier
	RetryLimit  int // Consecutive rejected candidates before placement gives up
}

// DefaultConfig returns reasonable defaults for a floor
func DefaultConfig() Config {
	return Config{
		GridSize:    50,
		MinRoomSize: 4,
		MaxRoomSize: 10,
		MaxRooms:    15,
		RetryLimit:  200,
	}
}

// Normalize clamps out-of-range values to safe minimums so generation
// cannot panic or spin on a bad configuration. Room extents are capped
// at the grid size so every candidate has at least one valid position.
func (c Config) Normalize() Config {
	if c.GridSize < 20 {
		c.GridSize = 20
	}
	if c.MinRoomSize < 2 {
		c.MinRoomSize = 2
	}
	if c.MinRoomSize > c.GridSize {
		c.MinRoomSize = c.GridSize
	}
	if c.MaxRoomSize < c.MinRoomSize {
		c.MaxRoomSize = c.MinRoomSize
	}
	if c.MaxRoomSize > c.GridSize {
		c.MaxRoomSize = c.GridSize
	}
	if c.MaxRooms < 1 {
		c.MaxRooms = 1
	}
	if c.RetryLimit < 1 {
		c.RetryLimit = 1
	}
	return c
}
