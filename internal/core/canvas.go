package core

import "math"

// Bitmap is an image addressed in pixels that can be sampled into cells.
type Bitmap interface {
	// Size returns the image size in pixels.
	Size() (w, h float64)

	// At samples the image at a pixel position.
	// ok is false for transparent or out-of-range pixels.
	At(px, py float64) (r rune, c Color, ok bool)
}

// Canvas is a pixel-space drawing surface backed by a Screen.
// Every cell covers a (W/screenW) x (H/screenH) pixel area and is painted
// with whatever the draw call samples at the cell centre.
type Canvas struct {
	screen *Screen
	w, h   float64
}

// NewCanvas wraps a screen with a fixed logical pixel size.
func NewCanvas(screen *Screen, w, h float64) *Canvas {
	return &Canvas{screen: screen, w: w, h: h}
}

// Size returns the logical surface size in pixels.
func (c *Canvas) Size() (float64, float64) {
	return c.w, c.h
}

// Screen returns the backing screen.
func (c *Canvas) Screen() *Screen {
	return c.screen
}

// cellSize returns the pixel dimensions of a single cell.
func (c *Canvas) cellSize() (float64, float64) {
	return c.w / float64(c.screen.Width()), c.h / float64(c.screen.Height())
}

// ToCell converts a pixel coordinate to the cell containing it.
func (c *Canvas) ToCell(px, py float64) (int, int) {
	cw, ch := c.cellSize()
	return int(math.Floor(px / cw)), int(math.Floor(py / ch))
}

// DrawImage copies the source rectangle (sx, sy, sw, sh) of img to the pixel
// position (dx, dy) without scaling. A nil image draws nothing.
func (c *Canvas) DrawImage(img Bitmap, sx, sy, sw, sh, dx, dy float64) {
	if img == nil || c.screen.Width() == 0 || c.screen.Height() == 0 {
		return
	}
	cw, ch := c.cellSize()

	x0 := int(math.Floor(dx / cw))
	y0 := int(math.Floor(dy / ch))
	x1 := int(math.Ceil((dx + sw) / cw))
	y1 := int(math.Ceil((dy + sh) / ch))

	x0 = Max(x0, 0)
	y0 = Max(y0, 0)
	x1 = Min(x1, c.screen.Width())
	y1 = Min(y1, c.screen.Height())

	for cy := y0; cy < y1; cy++ {
		py := (float64(cy) + 0.5) * ch
		if py < dy || py >= dy+sh {
			continue
		}
		for cx := x0; cx < x1; cx++ {
			px := (float64(cx) + 0.5) * cw
			if px < dx || px >= dx+sw {
				continue
			}
			r, col, ok := img.At(sx+px-dx, sy+py-dy)
			if !ok {
				continue
			}
			c.screen.SetColored(cx, cy, r, col)
		}
	}
}

// DrawFull draws the whole image at (dx, dy).
func (c *Canvas) DrawFull(img Bitmap, dx, dy float64) {
	if img == nil {
		return
	}
	w, h := img.Size()
	c.DrawImage(img, 0, 0, w, h, dx, dy)
}

// DrawText writes text whose top-left corner sits at the pixel position.
func (c *Canvas) DrawText(px, py float64, text string, col Color) {
	x, y := c.ToCell(px, py)
	c.screen.DrawTextColored(x, y, text, col)
}
