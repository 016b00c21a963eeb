package runner

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Animation frame ranges on the avatar sheet.
const (
	walkFirstFrame = 0
	walkLastFrame  = 9
	airFrame       = 8
)

// PlayerState is derived from the sign of the vertical velocity.
type PlayerState int

const (
	Grounded PlayerState = iota
	Ascending
	Descending
)

// String returns a human-readable name for the state.
func (s PlayerState) String() string {
	switch s {
	case Grounded:
		return "grounded"
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		return "unknown"
	}
}

// Player is the controlled body. Its x never changes; the world scrolls
// past it at Speed pixels per tick.
type Player struct {
	core.Body

	Speed         int
	Gravity       float64
	JumpVelocity  float64 // Negative: up
	JumpHoldTicks int
	IsJumping     bool
	IsFalling     bool

	holdCounter int  // Ticks the jump impulse can still be re-applied
	prevHeld    bool // Jump input seen on the previous tick

	sheet *SpriteSheet
	walk  *Animation
	jump  *Animation
	fall  *Animation
	anim  *Animation
}

// NewPlayer creates a player at its start position.
func NewPlayer(cfg config.RunnerConfig, sheet core.Bitmap) *Player {
	pc := cfg.Player
	p := &Player{
		Speed:         cfg.Physics.StartSpeed,
		Gravity:       cfg.Physics.Gravity,
		JumpVelocity:  cfg.Physics.JumpVelocity,
		JumpHoldTicks: cfg.Physics.JumpHoldTicks,
		sheet:         &SpriteSheet{Image: sheet, FrameW: pc.Width, FrameH: pc.Height},
	}
	p.X, p.Y = pc.X, pc.Y
	p.W, p.H = pc.Width, pc.Height

	p.walk = NewAnimation(p.sheet, pc.FrameSpeed, walkFirstFrame, walkLastFrame)
	p.jump = NewAnimation(p.sheet, pc.FrameSpeed, airFrame, airFrame)
	p.fall = NewAnimation(p.sheet, pc.FrameSpeed, airFrame, airFrame)
	p.anim = p.walk
	return p
}

// Update runs one tick of player physics with the current jump input and
// reports whether a jump started this tick.
func (p *Player) Update(held bool) bool {
	jumped := false
	if held && !p.prevHeld && p.DY == 0 && !p.IsJumping {
		p.IsJumping = true
		p.DY = p.JumpVelocity
		p.holdCounter = p.JumpHoldTicks
		jumped = true
	}

	// Holding the key keeps the impulse going for a higher jump.
	if held && p.holdCounter > 0 {
		p.DY = p.JumpVelocity
	}
	p.holdCounter = max(p.holdCounter-1, 0)
	p.prevHeld = held

	p.Advance()

	if p.IsJumping || p.IsFalling {
		p.DY += p.Gravity
	}

	switch p.State() {
	case Ascending:
		p.anim = p.jump
	case Descending:
		p.anim = p.fall
	default:
		p.anim = p.walk
	}
	p.anim.Update()

	return jumped
}

// Land puts the player on a surface whose top edge is at groundTop.
func (p *Player) Land(groundTop, offset float64) {
	p.IsJumping = false
	p.IsFalling = false
	p.Y = groundTop - p.H + offset
	p.DY = 0
}

// State returns the movement state from the sign of the vertical velocity.
func (p *Player) State() PlayerState {
	switch {
	case p.DY < 0:
		return Ascending
	case p.DY > 0:
		return Descending
	default:
		return Grounded
	}
}

// Airborne reports whether the player is moving vertically.
func (p *Player) Airborne() bool {
	return p.DY != 0
}

// Animation returns the active animation.
func (p *Player) Animation() *Animation {
	return p.anim
}

// WalkAnimation returns the walk cycle, whose speed follows the world speed.
func (p *Player) WalkAnimation() *Animation {
	return p.walk
}

// HoldTicks returns the remaining ticks of jump hold.
func (p *Player) HoldTicks() int {
	return p.holdCounter
}

// Draw paints the active animation frame at the player position.
func (p *Player) Draw(c *core.Canvas) {
	p.anim.Draw(c, p.X, p.Y)
}
