// floorgen generates dungeon floor plans in bulk, writing them to
// YAML floor files, a layout archive, or both.
//
// Usage:
//
//	go run ./cmd/floorgen -count 5 -seed 42 -out data/floors
//	go run ./cmd/floorgen -name crypt -phrase "crypt of torment" -db data/layouts.db
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/graywall/dungeonplan/internal/config"
	"github.com/graywall/dungeonplan/internal/dungeon"
	"github.com/graywall/dungeonplan/internal/floorfile"
	"github.com/graywall/dungeonplan/internal/logger"
	"github.com/graywall/dungeonplan/internal/render"
	"github.com/graywall/dungeonplan/internal/seed"
	"github.com/graywall/dungeonplan/internal/store"
)

func main() {
	configFile := flag.String("config", "data/dungeonplan.yaml", "Path to configuration file")
	name := flag.String("name", "floor", "Base name for generated floors")
	count := flag.Int("count", 1, "Number of floors to generate")
	seedValue := flag.Int64("seed", 0, "Base seed for generation (0 = time-based)")
	phrase := flag.String("phrase", "", "Seed phrase, hashed into a base seed (ignored when -seed is set)")
	outDir := flag.String("out", "", "Output directory for YAML floor files (empty: don't write files)")
	dbFile := flag.String("db", "", "SQLite layout archive to save floors into (empty: don't archive)")
	showMap := flag.Bool("map", true, "Print each floor's map report")
	showLegend := flag.Bool("legend", false, "Print the tile legend after the last floor")
	flag.Parse()

	// Initialize logger first (before any logging)
	logConfig, _ := logger.LoadConfig(*configFile)
	logger.Initialize(logConfig)

	if *count < 1 {
		fmt.Fprintln(os.Stderr, "Error: -count must be at least 1")
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		logger.Warning("Failed to load config, using defaults", "path", *configFile, "error", err)
	}

	if *outDir != "" {
		if err := os.MkdirAll(*outDir, 0755); err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to create output directory: %v\n", err)
			os.Exit(1)
		}
	}

	var st *store.Store
	if *dbFile != "" {
		st, err = store.Open(*dbFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to open layout archive: %v\n", err)
			os.Exit(1)
		}
		defer st.Close()
	}

	// Flags win over the config file's seed section
	seedVal, phraseVal := *seedValue, *phrase
	if seedVal == 0 && phraseVal == "" {
		seedVal, phraseVal = cfg.Seed.Value, cfg.Seed.Phrase
	}
	baseSeed := seed.Resolve(seedVal, phraseVal)

	genCfg := layoutConfig(cfg)

	fmt.Printf("Generating %d floor(s) for '%s' (base seed: %d)\n\n", *count, *name, baseSeed)

	layouts := make([]*dungeon.Layout, 0, *count)
	for i := 0; i < *count; i++ {
		floorName := *name
		if *count > 1 {
			floorName = fmt.Sprintf("%s-%d", *name, i+1)
		}

		// Each floor offsets the base seed so a run is reproducible
		// while no two floors share a layout.
		floorSeed := baseSeed + int64(i)

		fmt.Printf("Generating %s (seed %d)... ", floorName, floorSeed)
		layout := dungeon.NewGenerator(genCfg, floorSeed).Generate()

		if *outDir != "" {
			path := filepath.Join(*outDir, floorName+".yaml")
			if err := floorfile.FromLayout(floorName, layout).Write(path); err != nil {
				fmt.Printf("FAILED: %v\n", err)
				os.Exit(1)
			}
		}

		if st != nil {
			if err := archiveLayout(st, floorName, layout); err != nil {
				fmt.Printf("FAILED: %v\n", err)
				os.Exit(1)
			}
		}

		fmt.Printf("OK (%d rooms)\n", layout.RoomCount())
		layouts = append(layouts, layout)
	}

	if *showMap {
		for _, layout := range layouts {
			fmt.Println()
			fmt.Print(render.Report(layout, false))
		}
	}
	if *showLegend {
		fmt.Println()
		fmt.Print(render.Legend())
	}

	fmt.Printf("\nSuccessfully generated %d floor(s)\n", *count)
}

// archiveLayout saves one generated floor to the layout archive.
func archiveLayout(st *store.Store, name string, layout *dungeon.Layout) error {
	var doc bytes.Buffer
	if err := floorfile.FromLayout(name, layout).Encode(&doc); err != nil {
		return err
	}

	return st.SaveLayout(&store.LayoutRecord{
		Name:      name,
		Seed:      layout.Seed,
		GridSize:  layout.Size(),
		RoomCount: layout.RoomCount(),
		GridText:  layout.Grid.String(),
		Document:  doc.String(),
	})
}

// layoutConfig maps the file configuration onto generator settings.
func layoutConfig(cfg *config.Config) dungeon.Config {
	return dungeon.Config{
		GridSize:    cfg.Layout.GridSize,
		MinRoomSize: cfg.Layout.MinRoomSize,
		MaxRoomSize: cfg.Layout.MaxRoomSize,
		MaxRooms:    cfg.Layout.MaxRooms,
		RetryLimit:  cfg.Layout.RetryLimit,
	}
}
