package pacman

import "time"

// parkedCoord is far outside any board; captured ghosts wait there.
const parkedCoord = -1 << 16

// Visual is how a ghost should be drawn.
type Visual int

const (
	VisualNormal Visual = iota
	VisualVulnerable
	VisualFlashing // Vulnerable, about to recover
	VisualRespawning
)

// Ghost is an adversary with two timed states.
// Both states expire lazily: they are re-evaluated against the clock on query.
// A ghost is never vulnerable and respawning at the same time.
type Ghost struct {
	Mover
	Name GhostName

	vulnerable      bool
	vulnerableUntil time.Time
	respawning      bool
	respawnUntil    time.Time
}

// NewGhost creates a ghost at its start tile.
func NewGhost(name GhostName, x, y, size int, steering Steering) *Ghost {
	return &Ghost{
		Mover: NewMover(KindGhost, x, y, size, steering),
		Name:  name,
	}
}

// Frighten makes the ghost vulnerable until now+d.
// Respawning ghosts ignore it.
func (g *Ghost) Frighten(now time.Time, d time.Duration) {
	if g.IsRespawning(now) {
		return
	}
	g.vulnerable = true
	g.vulnerableUntil = now.Add(d)
}

// IsVulnerable reports whether the ghost can be eaten at now.
func (g *Ghost) IsVulnerable(now time.Time) bool {
	if g.vulnerable && now.After(g.vulnerableUntil) {
		g.vulnerable = false
	}
	return g.vulnerable
}

// Capture parks the ghost off the board until now+d.
func (g *Ghost) Capture(now time.Time, d time.Duration) {
	g.X, g.Y = parkedCoord, parkedCoord
	g.vulnerable = false
	g.respawning = true
	g.respawnUntil = now.Add(d)
}

// IsRespawning reports whether the ghost is still parked at now.
// Once the delay has passed the ghost is put back on its start tile.
func (g *Ghost) IsRespawning(now time.Time) bool {
	if g.respawning && now.After(g.respawnUntil) {
		g.respawning = false
		g.Mover.Reset()
	}
	return g.respawning
}

// Reset returns the ghost to its start tile and clears both timed states.
func (g *Ghost) Reset() {
	g.Mover.Reset()
	g.vulnerable = false
	g.respawning = false
}

// Visual reports the display state at now without changing the ghost.
// The last flash of the vulnerable window is reported as VisualFlashing.
func (g *Ghost) Visual(now time.Time, flash time.Duration) Visual {
	switch {
	case g.respawning:
		return VisualRespawning
	case g.vulnerable && !now.After(g.vulnerableUntil):
		if g.vulnerableUntil.Sub(now) <= flash {
			return VisualFlashing
		}
		return VisualVulnerable
	default:
		return VisualNormal
	}
}

// VulnerableLeft returns the remaining vulnerable time at now, or zero.
func (g *Ghost) VulnerableLeft(now time.Time) time.Duration {
	if !g.vulnerable || now.After(g.vulnerableUntil) {
		return 0
	}
	return g.vulnerableUntil.Sub(now)
}
