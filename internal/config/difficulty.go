package config

// DifficultyManager decides when the world scroll speed ramps up.
type DifficultyManager struct {
	cfg           DifficultyConfig
	platformWidth int
	maxSpeed      int
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig, platformWidth, maxSpeed int) *DifficultyManager {
	if platformWidth <= 0 {
		platformWidth = 1
	}
	if maxSpeed <= 0 {
		maxSpeed = 1
	}
	return &DifficultyManager{
		cfg:           cfg,
		platformWidth: platformWidth,
		maxSpeed:      maxSpeed,
	}
}

// SetEnabled enables or disables speed progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether speed progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.RampFactor > 0
}

// MaxSpeed returns the speed ceiling.
func (d *DifficultyManager) MaxSpeed() int {
	return d.maxSpeed
}

// Cadence returns how many ticks pass between generator runs at the given
// speed, i.e. the ticks needed to scroll one platform width. Never below 1.
func (d *DifficultyManager) Cadence(speed int) int {
	speed = d.ClampSpeed(speed)
	return max(d.platformWidth/speed, 1)
}

// WalkFrameSpeed returns the walk animation frame duration for a speed.
func (d *DifficultyManager) WalkFrameSpeed(speed int) int {
	return max(d.Cadence(speed)-1, 1)
}

// ShouldRamp reports whether the speed should go up this tick.
// ticker counts ticks since the last ramp.
func (d *DifficultyManager) ShouldRamp(ticker, speed int, airborne bool) bool {
	if !d.IsEnabled() || speed >= d.maxSpeed {
		return false
	}
	if d.cfg.RequireAirborne && !airborne {
		return false
	}
	return ticker > d.Cadence(speed)*speed*d.cfg.RampFactor
}

// NextSpeed returns the speed after one ramp step.
func (d *DifficultyManager) NextSpeed(speed int) int {
	return d.ClampSpeed(speed + 1)
}

// ClampSpeed restricts a speed to [1, max].
func (d *DifficultyManager) ClampSpeed(speed int) int {
	return min(max(speed, 1), d.maxSpeed)
}
