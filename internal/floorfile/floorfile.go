// Package floorfile reads and writes generated layouts as YAML. The
// file carries the glyph grid, the placed rooms, and the classified
// tiles; on load the tiles are re-derived from the grid, so the stored
// tile list is advisory output for other tools, never trusted input.
package floorfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/graywall/dungeonplan/internal/dungeon"
	"github.com/graywall/dungeonplan/internal/grid"
)

// ErrMalformedGrid is returned when the grid rows in a file do not
// form a square of known glyphs.
var ErrMalformedGrid = errors.New("malformed grid rows")

// LayoutFile is the YAML form of one generated layout.
type LayoutFile struct {
	Name      string      `yaml:"name,omitempty"`
	Seed      int64       `yaml:"seed"`
	GridSize  int         `yaml:"grid_size"`
	RoomCount int         `yaml:"room_count"`
	Grid      []string    `yaml:"grid"`
	Rooms     []RoomEntry `yaml:"rooms"`
	Tiles     []TileEntry `yaml:"tiles"`
}

// RoomEntry is one placed room: top-left cell plus extents.
type RoomEntry struct {
	Row  int `yaml:"row"`
	Col  int `yaml:"col"`
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// TileEntry is one occupied, classified cell.
type TileEntry struct {
	Row      int    `yaml:"row"`
	Col      int    `yaml:"col"`
	Category string `yaml:"category"`
	Shape    string `yaml:"shape,omitempty"`
}

// FromLayout converts a layout to its file form.
func FromLayout(name string, l *dungeon.Layout) *LayoutFile {
	size := l.Size()
	f := &LayoutFile{
		Name:      name,
		Seed:      l.Seed,
		GridSize:  size,
		RoomCount: l.RoomCount(),
	}

	rows := strings.Split(l.Grid.String(), "\n")
	f.Grid = append(f.Grid, rows...)

	for _, room := range l.Rooms {
		b := room.Bounds
		f.Rooms = append(f.Rooms, RoomEntry{
			Row:  b.MinRow,
			Col:  b.MinCol,
			Rows: b.Rows(),
			Cols: b.Cols(),
		})
	}

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			tile := l.TileAt(row, col)
			if !tile.Occupied() {
				continue
			}
			f.Tiles = append(f.Tiles, TileEntry{
				Row:      row,
				Col:      col,
				Category: tile.Category.String(),
				Shape:    tile.Shape,
			})
		}
	}

	return f
}

// Encode writes the layout file as YAML with a header comment block.
func (f *LayoutFile) Encode(w io.Writer) error {
	fmt.Fprintf(w, "# Dungeon floor plan\n")
	fmt.Fprintf(w, "# Generated with seed: %d\n", f.Seed)
	fmt.Fprintf(w, "# Grid: %dx%d, rooms: %d\n\n", f.GridSize, f.GridSize, f.RoomCount)

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(f); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return encoder.Close()
}

// Write writes the layout file to disk.
func (f *LayoutFile) Write(path string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer out.Close()

	return f.Encode(out)
}

// Parse decodes a layout file from YAML bytes.
func Parse(data []byte) (*LayoutFile, error) {
	var f LayoutFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse layout YAML: %w", err)
	}
	return &f, nil
}

// Load reads a layout file from disk.
func Load(path string) (*LayoutFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout file: %w", err)
	}
	return Parse(data)
}

// ToLayout rebuilds a working layout from the file. The grid rows are
// authoritative; tiles are re-derived with the classifier and rooms
// come from the room entries.
func (f *LayoutFile) ToLayout() (*dungeon.Layout, error) {
	g, ok := grid.ParseGrid(strings.Join(f.Grid, "\n"))
	if !ok {
		return nil, ErrMalformedGrid
	}
	if f.GridSize != 0 && g.Size() != f.GridSize {
		return nil, fmt.Errorf("%w: %d rows for declared size %d", ErrMalformedGrid, g.Size(), f.GridSize)
	}

	rooms := make([]dungeon.Room, 0, len(f.Rooms))
	for _, r := range f.Rooms {
		rooms = append(rooms, dungeon.Room{Bounds: dungeon.RectAt(r.Row, r.Col, r.Rows, r.Cols)})
	}

	return &dungeon.Layout{
		Seed:  f.Seed,
		Grid:  g,
		Rooms: rooms,
		Tiles: dungeon.ClassifyGrid(g),
	}, nil
}
