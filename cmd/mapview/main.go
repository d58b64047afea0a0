// mapview renders a dungeon floor plan as a text map with room and
// shape tables. Floors come from a YAML floor file or from a layout
// archive by id or name.
//
// Usage:
//
//	go run ./cmd/mapview -file data/floors/floor-1.yaml
//	go run ./cmd/mapview -db data/layouts.db -id 3
//	go run ./cmd/mapview -db data/layouts.db -name crypt -output crypt.txt
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/graywall/dungeonplan/internal/builder"
	"github.com/graywall/dungeonplan/internal/dungeon"
	"github.com/graywall/dungeonplan/internal/floorfile"
	"github.com/graywall/dungeonplan/internal/render"
	"github.com/graywall/dungeonplan/internal/store"
)

func main() {
	inputFile := flag.String("file", "", "Path to a YAML floor file")
	dbFile := flag.String("db", "", "Path to a layout archive (requires -id or -name)")
	layoutID := flag.Int64("id", 0, "Archived layout ID")
	layoutName := flag.String("name", "", "Archived layout name")
	outputFile := flag.String("output", "", "Output file (empty for stdout)")
	showLegend := flag.Bool("legend", true, "Show legend")
	manifest := flag.Bool("manifest", false, "Append the asset manifest for every placed tile")
	assetsFile := flag.String("assets", "", "Path to an asset library YAML file (empty: built-in mapping)")
	flag.Parse()

	layout, err := loadLayout(*inputFile, *dbFile, *layoutID, *layoutName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var out strings.Builder
	out.WriteString(render.Report(layout, *showLegend))

	if *manifest {
		lib := builder.DefaultAssetLibrary()
		if *assetsFile != "" {
			lib, err = builder.LoadAssetLibrary(*assetsFile)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}

		out.WriteString("\n")
		mb := &manifestBuilder{lib: lib, w: &out}
		if err := mb.Build(builder.NewRenderRequest(layout)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	output := out.String()

	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, []byte(output), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Map written to %s\n", *outputFile)
	} else {
		fmt.Print(output)
	}
}

// manifestBuilder consumes a render request by resolving every placed
// tile to an asset identifier and writing one line per cell.
type manifestBuilder struct {
	lib *builder.AssetLibrary
	w   io.Writer
}

func (b *manifestBuilder) Build(req builder.RenderRequest) error {
	fmt.Fprintf(b.w, "Asset Manifest (%d placed tiles)\n", len(req.Tiles))
	fmt.Fprintln(b.w, strings.Repeat("-", 40))
	for _, tile := range req.Tiles {
		asset, err := b.lib.Resolve(tile)
		if err != nil {
			return err
		}
		fmt.Fprintf(b.w, "(%3d,%3d) %-6s %s\n", tile.Row, tile.Col, tile.Category, asset)
	}
	return nil
}

// loadLayout reads a floor from a YAML file or a layout archive.
func loadLayout(file, db string, id int64, name string) (*dungeon.Layout, error) {
	switch {
	case file != "":
		f, err := floorfile.Load(file)
		if err != nil {
			return nil, err
		}
		return f.ToLayout()

	case db != "":
		st, err := store.Open(db)
		if err != nil {
			return nil, err
		}
		defer st.Close()

		var rec *store.LayoutRecord
		switch {
		case id > 0:
			rec, err = st.GetLayout(id)
		case name != "":
			rec, err = st.GetLayoutByName(name)
		default:
			return nil, fmt.Errorf("-db requires -id or -name")
		}
		if err != nil {
			return nil, err
		}

		f, err := floorfile.Parse([]byte(rec.Document))
		if err != nil {
			return nil, fmt.Errorf("archived document for %q is invalid: %w", rec.Name, err)
		}
		return f.ToLayout()

	default:
		return nil, fmt.Errorf("either -file or -db is required")
	}
}
