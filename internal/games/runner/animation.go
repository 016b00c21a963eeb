package runner

import (
	"math"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// SpriteSheet is a single-row strip of equally sized frames.
type SpriteSheet struct {
	Image  core.Bitmap
	FrameW float64
	FrameH float64
}

// FramesPerRow returns how many whole frames fit across the sheet (at least 1).
func (s *SpriteSheet) FramesPerRow() int {
	if s == nil || s.Image == nil || s.FrameW <= 0 {
		return 1
	}
	w, _ := s.Image.Size()
	return max(int(math.Floor(w/s.FrameW)), 1)
}

// Animation cycles through a frame range of a sprite sheet.
type Animation struct {
	sheet      *SpriteSheet
	frameSpeed int   // Ticks each frame is held
	sequence   []int // Sheet frame numbers in play order
	current    int   // Index into sequence
	counter    int
}

// NewAnimation creates an animation over the frames [start, end].
func NewAnimation(sheet *SpriteSheet, frameSpeed, start, end int) *Animation {
	a := &Animation{sheet: sheet}
	for f := start; f <= end; f++ {
		a.sequence = append(a.sequence, f)
	}
	if len(a.sequence) == 0 {
		a.sequence = []int{start}
	}
	a.SetFrameSpeed(frameSpeed)
	return a
}

// Update advances the animation by one tick.
func (a *Animation) Update() {
	if a.counter == a.frameSpeed-1 {
		a.current = (a.current + 1) % len(a.sequence)
	}
	a.counter = (a.counter + 1) % a.frameSpeed
}

// SetFrameSpeed changes how many ticks each frame is held (minimum 1).
func (a *Animation) SetFrameSpeed(n int) {
	a.frameSpeed = max(n, 1)
	a.counter %= a.frameSpeed
}

// FrameSpeed returns the ticks each frame is held.
func (a *Animation) FrameSpeed() int {
	return a.frameSpeed
}

// Frame returns the sheet frame currently shown.
func (a *Animation) Frame() int {
	return a.sequence[a.current]
}

// Reset rewinds to the first frame.
func (a *Animation) Reset() {
	a.current = 0
	a.counter = 0
}

// Draw blits the current frame with its top-left corner at (x, y).
func (a *Animation) Draw(c *core.Canvas, x, y float64) {
	if a.sheet == nil || a.sheet.Image == nil {
		return
	}
	col := a.Frame() % a.sheet.FramesPerRow()
	c.DrawImage(a.sheet.Image,
		float64(col)*a.sheet.FrameW, 0,
		a.sheet.FrameW, a.sheet.FrameH,
		x, y)
}
