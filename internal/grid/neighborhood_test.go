package grid

import "testing"

func TestNeighborhoodMapping(t *testing.T) {
	// Distinct symbols at each cardinal so a swapped axis shows up.
	g := NewGrid(3)
	g.Set(1, 1, SymbolRoom)  // center
	g.Set(1, 2, SymbolDoor)  // forward (col+1)
	g.Set(1, 0, SymbolEntry) // back (col-1)
	g.Set(0, 1, SymbolExit)  // left (row-1)
	g.Set(2, 1, SymbolHall)  // right (row+1)
	g.Set(0, 2, SymbolRoom)  // forward-left
	g.Set(2, 2, SymbolDoor)  // forward-right
	g.Set(0, 0, SymbolExit)  // back-left
	g.Set(2, 0, SymbolEntry) // back-right

	n := g.Neighborhood(1, 1)

	tests := []struct {
		name     string
		got      Symbol
		expected Symbol
	}{
		{"Center", n.Center(), SymbolRoom},
		{"Forward", n.Forward(), SymbolDoor},
		{"Back", n.Back(), SymbolEntry},
		{"Left", n.Left(), SymbolExit},
		{"Right", n.Right(), SymbolHall},
		{"ForwardLeft", n.ForwardLeft(), SymbolRoom},
		{"ForwardRight", n.ForwardRight(), SymbolDoor},
		{"BackLeft", n.BackLeft(), SymbolExit},
		{"BackRight", n.BackRight(), SymbolEntry},
	}

	for _, tt := range tests {
		if tt.got != tt.expected {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.expected)
		}
	}
}

func TestNeighborhoodCardinalsOrder(t *testing.T) {
	g := NewGrid(3)
	g.Set(1, 2, SymbolRoom)
	g.Set(1, 0, SymbolDoor)
	g.Set(0, 1, SymbolExit)
	g.Set(2, 1, SymbolEntry)

	got := g.Neighborhood(1, 1).Cardinals()
	want := [4]Symbol{SymbolRoom, SymbolDoor, SymbolExit, SymbolEntry}
	if got != want {
		t.Errorf("Cardinals() = %v, want forward, back, left, right = %v", got, want)
	}
}

// Both axes must clamp identically: a sample on the last row and a
// sample on the last column see the same out-of-bounds behavior.
func TestNeighborhoodEdgeSymmetry(t *testing.T) {
	g := NewGrid(5)
	g.Fill(SymbolRoom)

	lastRow := g.Neighborhood(4, 2)
	if lastRow.Right() != SymbolEmpty {
		t.Errorf("last row Right() = %v, want empty", lastRow.Right())
	}
	if lastRow.Forward() != SymbolRoom || lastRow.Back() != SymbolRoom || lastRow.Left() != SymbolRoom {
		t.Error("last row in-bounds cardinals should read room")
	}

	lastCol := g.Neighborhood(2, 4)
	if lastCol.Forward() != SymbolEmpty {
		t.Errorf("last col Forward() = %v, want empty", lastCol.Forward())
	}
	if lastCol.Left() != SymbolRoom || lastCol.Right() != SymbolRoom || lastCol.Back() != SymbolRoom {
		t.Error("last col in-bounds cardinals should read room")
	}

	if lastRow.ForwardRight() != SymbolEmpty {
		t.Errorf("last row ForwardRight() = %v, want empty", lastRow.ForwardRight())
	}
	if lastCol.ForwardRight() != SymbolEmpty {
		t.Errorf("last col ForwardRight() = %v, want empty", lastCol.ForwardRight())
	}
}

func TestNeighborhoodCornerOutOfBounds(t *testing.T) {
	g := NewGrid(4)
	g.Fill(SymbolRoom)

	origin := g.Neighborhood(0, 0)
	for _, sym := range []Symbol{origin.Back(), origin.Left(), origin.BackLeft(), origin.ForwardLeft(), origin.BackRight()} {
		if sym != SymbolEmpty {
			t.Errorf("out-of-bounds neighbor at origin = %v, want empty", sym)
		}
	}
	if origin.Forward() != SymbolRoom || origin.Right() != SymbolRoom || origin.ForwardRight() != SymbolRoom {
		t.Error("in-bounds neighbors at origin should read room")
	}

	far := g.Neighborhood(3, 3)
	for _, sym := range []Symbol{far.Forward(), far.Right(), far.ForwardRight(), far.ForwardLeft(), far.BackRight()} {
		if sym != SymbolEmpty {
			t.Errorf("out-of-bounds neighbor at far corner = %v, want empty", sym)
		}
	}
	if far.Back() != SymbolRoom || far.Left() != SymbolRoom || far.BackLeft() != SymbolRoom {
		t.Error("in-bounds neighbors at far corner should read room")
	}
}

func TestNeighborhoodIsolatedCell(t *testing.T) {
	g := NewGrid(9)
	g.Set(4, 4, SymbolRoom)

	n := g.Neighborhood(4, 4)
	if n.Center() != SymbolRoom {
		t.Fatalf("Center() = %v, want room", n.Center())
	}
	for _, sym := range n.Cardinals() {
		if sym != SymbolEmpty {
			t.Errorf("isolated cell cardinal = %v, want empty", sym)
		}
	}
	for _, sym := range n.Diagonals() {
		if sym != SymbolEmpty {
			t.Errorf("isolated cell diagonal = %v, want empty", sym)
		}
	}
}
