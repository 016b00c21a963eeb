package assets

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Image is a glyph bitmap. Each art cell covers an equal share of the
// image's pixel size.
type Image struct {
	name   string
	w, h   float64
	tileW  float64
	opaque bool
	cols   int
	rows   int
	cells  [][]core.Cell
}

// Compile-time check that Image implements core.Bitmap.
var _ core.Bitmap = (*Image)(nil)

// NewImage builds an image from its manifest entry.
func NewImage(name string, spec ImageSpec) (*Image, error) {
	if spec.Width <= 0 || spec.Height <= 0 {
		return nil, fmt.Errorf("assets: image %q: size must be positive", name)
	}

	base, err := core.ParseColor(spec.Color)
	if err != nil {
		return nil, fmt.Errorf("assets: image %q: %w", name, err)
	}
	palette := make(map[rune]core.Color, len(spec.Palette))
	for glyph, colorName := range spec.Palette {
		r, size := utf8.DecodeRuneInString(glyph)
		if size == 0 || size != len(glyph) {
			return nil, fmt.Errorf("assets: image %q: palette key %q must be one glyph", name, glyph)
		}
		c, err := core.ParseColor(colorName)
		if err != nil {
			return nil, fmt.Errorf("assets: image %q: %w", name, err)
		}
		palette[r] = c
	}

	lines := strings.Split(spec.Art, "\n")
	rows := max(spec.Rows, len(lines))
	cols := spec.Cols
	for _, l := range lines {
		cols = max(cols, utf8.RuneCountInString(l))
	}
	if cols == 0 {
		return nil, fmt.Errorf("assets: image %q: empty art", name)
	}

	cells := make([][]core.Cell, rows)
	for y := range cells {
		cells[y] = make([]core.Cell, cols)
		for x := range cells[y] {
			cells[y][x] = core.Cell{Rune: ' ', Color: base}
		}
		if y >= len(lines) {
			continue
		}
		x := 0
		for _, r := range lines[y] {
			c, ok := palette[r]
			if !ok {
				c = base
			}
			cells[y][x] = core.Cell{Rune: r, Color: c}
			x++
		}
	}

	return &Image{
		name:   name,
		w:      spec.Width,
		h:      spec.Height,
		tileW:  spec.TileWidth,
		opaque: spec.Opaque,
		cols:   cols,
		rows:   rows,
		cells:  cells,
	}, nil
}

// Name returns the asset name.
func (i *Image) Name() string {
	return i.name
}

// Size returns the image size in pixels.
func (i *Image) Size() (float64, float64) {
	return i.w, i.h
}

// At samples the glyph covering a pixel.
func (i *Image) At(px, py float64) (rune, core.Color, bool) {
	if px < 0 || py < 0 || px >= i.w || py >= i.h {
		return 0, core.ColorDefault, false
	}

	spanW := i.w
	if i.tileW > 0 {
		px = math.Mod(px, i.tileW)
		spanW = i.tileW
	}
	col := core.Clamp(int(px*float64(i.cols)/spanW), 0, i.cols-1)
	row := core.Clamp(int(py*float64(i.rows)/i.h), 0, i.rows-1)

	c := i.cells[row][col]
	if c.Rune == ' ' && !i.opaque {
		return 0, core.ColorDefault, false
	}
	return c.Rune, c.Color, true
}
