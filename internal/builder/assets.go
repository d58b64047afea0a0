package builder

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/graywall/dungeonplan/internal/dungeon"
)

// ErrUnmappedShape is returned when a shape key resolves to nothing,
// not even a category default.
var ErrUnmappedShape = errors.New("no asset mapped for shape")

// AssetLibrary maps shape keys to asset identifiers per cell category.
// Shape keys are opaque dictionary keys; the library never checks that
// a mapped asset actually exists.
type AssetLibrary struct {
	Categories map[string]CategoryAssets `yaml:"categories"`
}

// CategoryAssets holds the shape mappings for one cell category. A
// shape missing from Shapes falls back to Default.
type CategoryAssets struct {
	Default string            `yaml:"default"`
	Shapes  map[string]string `yaml:"shapes"`
}

// DefaultAssetLibrary returns the built-in mapping used when no
// library file is configured.
func DefaultAssetLibrary() *AssetLibrary {
	return &AssetLibrary{
		Categories: map[string]CategoryAssets{
			"room": {
				Default: "dungeon/room/floor",
				Shapes: map[string]string{
					"OpenNoWall" + dungeon.ShapeSuffix:                 "dungeon/room/open",
					"ForwardBackLeftRightCorner" + dungeon.ShapeSuffix: "dungeon/room/isolated",
				},
			},
			"entry": {Default: "dungeon/stairs/up"},
			"exit":  {Default: "dungeon/stairs/down"},
			"hall":  {Default: "dungeon/hall/floor"},
			"door":  {Default: "dungeon/door/frame"},
		},
	}
}

// LoadAssetLibrary reads an asset library from a YAML file.
func LoadAssetLibrary(path string) (*AssetLibrary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read asset library: %w", err)
	}

	var lib AssetLibrary
	if err := yaml.Unmarshal(data, &lib); err != nil {
		return nil, fmt.Errorf("failed to parse asset library: %w", err)
	}

	return &lib, nil
}

// Resolve returns the asset identifier for a placed tile, falling back
// to the category default when the exact shape is unmapped.
func (lib *AssetLibrary) Resolve(tile PlacedTile) (string, error) {
	cat, ok := lib.Categories[tile.Category.String()]
	if !ok {
		return "", fmt.Errorf("%w: category %s", ErrUnmappedShape, tile.Category)
	}

	if asset, ok := cat.Shapes[tile.Shape]; ok {
		return asset, nil
	}
	if cat.Default != "" {
		return cat.Default, nil
	}
	return "", fmt.Errorf("%w: %s %s", ErrUnmappedShape, tile.Category, tile.Shape)
}
