package config

import "time"

// SpeedRamp calculates the tick interval for a speed level.
// Level 1 runs at the initial interval; every later level is one step faster
// until the floor is reached.
type SpeedRamp struct {
	cfg SpeedConfig
}

// NewSpeedRamp creates a ramp from cfg.
func NewSpeedRamp(cfg SpeedConfig) *SpeedRamp {
	return &SpeedRamp{cfg: cfg}
}

// IsEnabled returns whether the interval shrinks with the level.
func (r *SpeedRamp) IsEnabled() bool {
	return r.cfg.Enabled
}

// Interval returns the tick interval for level (1-based).
func (r *SpeedRamp) Interval(level int) time.Duration {
	ms := r.cfg.InitialIntervalMS
	if r.cfg.Enabled && level > 1 {
		ms -= (level - 1) * r.cfg.StepMS
	}
	ms = max(ms, r.cfg.MinIntervalMS)
	return time.Duration(ms) * time.Millisecond
}
