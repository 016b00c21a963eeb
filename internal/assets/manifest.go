// Package assets loads the images and sound clips the runner draws and plays.
// Images are glyph bitmaps described in a YAML manifest; clips are synthesized.
package assets

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-runner/internal/audio"
)

//go:embed manifest.yaml
var defaultManifestYAML []byte

// Manifest lists every asset by name.
type Manifest struct {
	Images map[string]ImageSpec      `yaml:"images"`
	Clips  map[string]audio.ClipSpec `yaml:"clips"`
}

// ImageSpec describes a glyph bitmap.
type ImageSpec struct {
	Width     float64           `yaml:"width"`  // Pixels
	Height    float64           `yaml:"height"` // Pixels
	Color     string            `yaml:"color"`
	Opaque    bool              `yaml:"opaque"`     // Spaces overwrite what is beneath
	TileWidth float64           `yaml:"tile_width"` // Repeat the art every N pixels
	Palette   map[string]string `yaml:"palette"`    // Per-glyph colour overrides
	Cols      int               `yaml:"cols"`
	Rows      int               `yaml:"rows"`
	Art       string            `yaml:"art"`
}

// Size returns the number of assets in the manifest.
func (m Manifest) Size() int {
	return len(m.Images) + len(m.Clips)
}

// ParseManifest decodes a YAML manifest.
func ParseManifest(data []byte) (Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("assets: parse manifest: %w", err)
	}
	return m, nil
}

// DefaultManifest returns the embedded manifest.
func DefaultManifest() (Manifest, error) {
	return ParseManifest(defaultManifestYAML)
}
