// Package grid provides the symbolic floor grid and the 3x3 neighborhood
// sampling used by tile classification.
package grid

// Symbol represents the occupancy type of a single grid cell
type Symbol int

const (
	SymbolEmpty Symbol = iota // No structure (unassigned)
	SymbolRoom                // Interior room cell
	SymbolHall                // Hallway cell (reserved, not yet placed)
	SymbolDoor                // Doorway cell (reserved, not yet placed)
	SymbolExit                // Floor exit cell
	SymbolEntry               // Floor entry cell
)

// String returns the string representation of a Symbol
func (s Symbol) String() string {
	switch s {
	case SymbolEmpty:
		return "empty"
	case SymbolRoom:
		return "room"
	case SymbolHall:
		return "hall"
	case SymbolDoor:
		return "door"
	case SymbolExit:
		return "exit"
	case SymbolEntry:
		return "entry"
	default:
		return "unknown"
	}
}

// ParseSymbol converts a string to a Symbol
func ParseSymbol(s string) (Symbol, bool) {
	switch s {
	case "empty":
		return SymbolEmpty, true
	case "room":
		return SymbolRoom, true
	case "hall":
		return SymbolHall, true
	case "door":
		return SymbolDoor, true
	case "exit":
		return SymbolExit, true
	case "entry":
		return SymbolEntry, true
	default:
		return SymbolEmpty, false
	}
}

// Rune returns the single-character map glyph for a Symbol
func (s Symbol) Rune() rune {
	switch s {
	case SymbolRoom:
		return '#'
	case SymbolHall:
		return '+'
	case SymbolDoor:
		return 'D'
	case SymbolExit:
		return '>'
	case SymbolEntry:
		return '<'
	default:
		return '.'
	}
}

// ParseRune converts a map glyph back to a Symbol
func ParseRune(r rune) (Symbol, bool) {
	switch r {
	case '.':
		return SymbolEmpty, true
	case '#':
		return SymbolRoom, true
	case '+':
		return SymbolHall, true
	case 'D':
		return SymbolDoor, true
	case '>':
		return SymbolExit, true
	case '<':
		return SymbolEntry, true
	default:
		return SymbolEmpty, false
	}
}

// Solid returns true if the symbol counts as structure when examining
// a cell's neighborhood. Halls connect rooms but do not enclose space,
// so they are not solid.
func (s Symbol) Solid() bool {
	switch s {
	case SymbolRoom, SymbolDoor, SymbolExit, SymbolEntry:
		return true
	default:
		return false
	}
}
