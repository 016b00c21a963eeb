package runner

import (
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Layer is one horizontally scrolling background image.
type Layer struct {
	Name  string
	Image core.Bitmap
	X     float64
	Speed float64 // Pixels per tick
}

// Background is a static plate under parallax layers.
type Background struct {
	plate    core.Bitmap
	layers   []Layer
	surfaceW float64
}

// NewBackground creates a background for a surface of the given width.
func NewBackground(plate core.Bitmap, layers []Layer, surfaceW float64) *Background {
	b := &Background{
		plate:    plate,
		layers:   append([]Layer(nil), layers...),
		surfaceW: surfaceW,
	}
	b.Reset()
	return b
}

// Scroll moves every layer left by its speed. A layer that has scrolled
// its whole width off-screen starts over at 0.
func (b *Background) Scroll() {
	for i := range b.layers {
		l := &b.layers[i]
		l.X -= l.Speed
		if l.X+b.layerWidth(l) <= 0 {
			l.X = 0
		}
	}
}

// Reset zeroes every layer offset.
func (b *Background) Reset() {
	for i := range b.layers {
		b.layers[i].X = 0
	}
}

// Layers returns the layers back to front.
func (b *Background) Layers() []Layer {
	return b.layers
}

// Draw paints the plate, then each layer twice: at its offset and one
// surface width further right so the wrap is seamless.
func (b *Background) Draw(c *core.Canvas) {
	c.DrawFull(b.plate, 0, 0)
	for _, l := range b.layers {
		c.DrawFull(l.Image, l.X, 0)
		c.DrawFull(l.Image, l.X+b.surfaceW, 0)
	}
}

func (b *Background) layerWidth(l *Layer) float64 {
	if l.Image == nil {
		return b.surfaceW
	}
	w, _ := l.Image.Size()
	return w
}
