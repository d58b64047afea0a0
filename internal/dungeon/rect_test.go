package dungeon

import "testing"

func TestRectAt(t *testing.T) {
	r := RectAt(2, 3, 4, 5)

	if r.MinRow != 2 || r.MinCol != 3 || r.MaxRow != 6 || r.MaxCol != 8 {
		t.Errorf("RectAt(2, 3, 4, 5) = %+v, want {2 3 6 8}", r)
	}
	if r.Rows() != 4 {
		t.Errorf("Rows() = %d, want 4", r.Rows())
	}
	if r.Cols() != 5 {
		t.Errorf("Cols() = %d, want 5", r.Cols())
	}
	if r.Area() != 20 {
		t.Errorf("Area() = %d, want 20", r.Area())
	}
}

func TestRectContains(t *testing.T) {
	r := RectAt(1, 1, 3, 3)

	tests := []struct {
		row, col int
		expected bool
	}{
		{1, 1, true},
		{3, 3, true},
		{2, 2, true},
		{0, 1, false},
		{1, 0, false},
		{4, 2, false},
		{2, 4, false},
	}

	for _, tt := range tests {
		if got := r.Contains(tt.row, tt.col); got != tt.expected {
			t.Errorf("Contains(%d, %d) = %v, want %v", tt.row, tt.col, got, tt.expected)
		}
	}
}

func TestRectIntersects(t *testing.T) {
	base := RectAt(5, 5, 4, 4)

	tests := []struct {
		name     string
		other    Rect
		expected bool
	}{
		{"identical", RectAt(5, 5, 4, 4), true},
		{"inside", RectAt(6, 6, 2, 2), true},
		{"corner overlap", RectAt(8, 8, 4, 4), true},
		{"shares edge only", RectAt(5, 9, 4, 4), false},
		{"one cell apart", RectAt(5, 10, 4, 4), false},
		{"above touching", RectAt(1, 5, 4, 4), false},
		{"row overlap only", RectAt(6, 20, 2, 2), false},
	}

	for _, tt := range tests {
		if got := base.Intersects(tt.other); got != tt.expected {
			t.Errorf("%s: Intersects() = %v, want %v", tt.name, got, tt.expected)
		}
		if got := tt.other.Intersects(base); got != tt.expected {
			t.Errorf("%s: reverse Intersects() = %v, want %v", tt.name, got, tt.expected)
		}
	}
}

func TestRectExpand(t *testing.T) {
	r := RectAt(3, 4, 2, 2).Expand(1)

	want := Rect{MinRow: 2, MinCol: 3, MaxRow: 6, MaxCol: 7}
	if r != want {
		t.Errorf("Expand(1) = %+v, want %+v", r, want)
	}
}

func TestRectIn(t *testing.T) {
	tests := []struct {
		name     string
		rect     Rect
		size     int
		expected bool
	}{
		{"fits", RectAt(0, 0, 5, 5), 5, true},
		{"interior", RectAt(2, 2, 3, 3), 10, true},
		{"past right edge", RectAt(0, 6, 2, 5), 10, false},
		{"past bottom edge", RectAt(8, 0, 5, 2), 10, false},
		{"negative origin", RectAt(-1, 0, 2, 2), 10, false},
	}

	for _, tt := range tests {
		if got := tt.rect.In(tt.size); got != tt.expected {
			t.Errorf("%s: In(%d) = %v, want %v", tt.name, tt.size, got, tt.expected)
		}
	}
}

func TestRoomBuffer(t *testing.T) {
	room := Room{Bounds: RectAt(4, 6, 3, 3)}
	buf := room.Buffer()

	want := Rect{MinRow: 3, MinCol: 5, MaxRow: 8, MaxCol: 10}
	if buf != want {
		t.Errorf("Buffer() = %+v, want %+v", buf, want)
	}
}

func TestRoomSeparated(t *testing.T) {
	base := Room{Bounds: RectAt(5, 5, 3, 3)}

	tests := []struct {
		name     string
		other    Room
		expected bool
	}{
		{"overlapping", Room{Bounds: RectAt(6, 6, 3, 3)}, false},
		{"edge adjacent", Room{Bounds: RectAt(5, 8, 3, 3)}, false},
		{"corner adjacent", Room{Bounds: RectAt(8, 8, 3, 3)}, false},
		{"one cell gap", Room{Bounds: RectAt(5, 9, 3, 3)}, true},
		{"one row gap", Room{Bounds: RectAt(9, 5, 3, 3)}, true},
		{"far away", Room{Bounds: RectAt(15, 15, 3, 3)}, true},
	}

	for _, tt := range tests {
		if got := base.Separated(tt.other); got != tt.expected {
			t.Errorf("%s: Separated() = %v, want %v", tt.name, got, tt.expected)
		}
		if got := tt.other.Separated(base); got != tt.expected {
			t.Errorf("%s: reverse Separated() = %v, want %v", tt.name, got, tt.expected)
		}
	}
}
