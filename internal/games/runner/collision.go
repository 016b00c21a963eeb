package runner

import (
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Landing window: the ground centre must lie below the player centre.
const (
	landingMinAngle = -130.0
	landingMaxAngle = -50.0
	enemyReach      = 0.6 // Fraction of player width that counts as contact
)

// Cause records why a run ended.
type Cause int

const (
	CauseNone Cause = iota
	CauseEnemy
	CauseFall
	CauseStopped
)

// String returns a human-readable name for the cause.
func (c Cause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseEnemy:
		return "enemy"
	case CauseFall:
		return "fall"
	case CauseStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// landsOn reports whether the player is close enough above a ground block
// to stand on it.
func landsOn(p *Player, ground *Entity, platformWidth float64) bool {
	if p.ClosestApproach(ground.Body) > p.H/2+platformWidth/2 {
		return false
	}
	px, py := p.Center()
	gx, gy := ground.Center()
	angle := core.AngleDeg(px, py, gx, gy)
	return angle > landingMinAngle && angle < landingMaxAngle
}

// touchesEnemy reports whether an enemy is within striking distance.
func touchesEnemy(p *Player, enemy *Entity, platformWidth float64) bool {
	return p.ClosestApproach(enemy.Body) <= enemyReach*p.W-platformWidth/2
}

// fellOut reports whether the player's bottom edge reached the surface bottom.
func fellOut(p *Player, surfaceH float64) bool {
	return p.Bottom() >= surfaceH
}
