// Package render produces plain-text projections of a generated
// layout: the glyph map, a room table, a shape census, and the full
// report the command-line tools print. Projections are read-only and
// never feed back into generation.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/graywall/dungeonplan/internal/dungeon"
)

// Map renders the layout's grid as one glyph row per line.
func Map(l *dungeon.Layout) string {
	return l.Grid.String() + "\n"
}

// RoomTable lists every placed room with its anchor cell, extents, and
// area, in placement order.
func RoomTable(l *dungeon.Layout) string {
	var sb strings.Builder
	sb.WriteString("Rooms:\n")

	if len(l.Rooms) == 0 {
		sb.WriteString("  (none placed)\n")
		return sb.String()
	}

	for i, room := range l.Rooms {
		b := room.Bounds
		sb.WriteString(fmt.Sprintf("  %2d: at (%d,%d)  %dx%d  area %d\n",
			i+1, b.MinRow, b.MinCol, b.Rows(), b.Cols(), b.Area()))
	}
	return sb.String()
}

// ShapeSummary counts the classified tile shapes, most common first.
// Ties break alphabetically so the output is stable.
func ShapeSummary(l *dungeon.Layout) string {
	counts := make(map[string]int)
	for _, tile := range l.Tiles {
		if tile.Shape != "" {
			counts[tile.Shape]++
		}
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})

	var sb strings.Builder
	sb.WriteString("Tile Shapes:\n")

	if len(names) == 0 {
		sb.WriteString("  (no solid tiles)\n")
		return sb.String()
	}

	for _, name := range names {
		sb.WriteString(fmt.Sprintf("  %4d  %s\n", counts[name], name))
	}
	return sb.String()
}

// Legend explains the map glyphs.
func Legend() string {
	return `
Legend:
  [#] Room interior
  [D] Doorway
  [+] Hallway
  [<] Floor entry
  [>] Floor exit
  [.] Unassigned
`
}

// Report assembles the full text report for a layout: header, glyph
// map, room table, and shape census.
func Report(l *dungeon.Layout, showLegend bool) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Floor Plan (Seed: %d, Grid: %dx%d, Rooms: %d)\n",
		l.Seed, l.Size(), l.Size(), l.RoomCount()))
	sb.WriteString(strings.Repeat("=", 60) + "\n\n")

	sb.WriteString(Map(l))
	sb.WriteString("\n")
	sb.WriteString(RoomTable(l))
	sb.WriteString("\n")
	sb.WriteString(ShapeSummary(l))

	if showLegend {
		sb.WriteString(Legend())
	}
	return sb.String()
}
