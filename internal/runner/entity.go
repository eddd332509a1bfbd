// Package runner implements the endless-runner core: entities, fixed-tick
// physics, obstacle spawning, collision detection and the loop driver.
//
// Everything here is deterministic and free of platform code. Geometry is
// expressed in board units; renderers scale it to their own surface.
package runner

import (
	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
)

// Visual is the cosmetic state of an entity. It has no effect on behavior.
type Visual int

const (
	VisualRunning Visual = iota
	VisualJumping
	VisualDead
)

// String returns the visual state name.
func (v Visual) String() string {
	switch v {
	case VisualRunning:
		return "running"
	case VisualJumping:
		return "jumping"
	case VisualDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Entity is an axis-aligned rectangle with a visual tag.
type Entity struct {
	core.Rect
	Visual Visual
}

// Collides reports whether two entities overlap. Touching edges do not count.
func (e Entity) Collides(other Entity) bool {
	return e.Rect.Intersects(other.Rect)
}

// Player is the jumping character.
type Player struct {
	Entity
	VelocityY int
	GroundY   int
}

// NewPlayer creates a player standing on the ground in its initial pose.
func NewPlayer(cfg config.PlayerConfig) Player {
	return Player{
		Entity: Entity{
			Rect:   core.NewRect(cfg.X, cfg.Y, cfg.Width, cfg.Height),
			Visual: VisualRunning,
		},
		GroundY: cfg.Y,
	}
}

// Grounded reports whether the player stands exactly on the ground line.
func (p Player) Grounded() bool {
	return p.Y == p.GroundY
}

// Move applies one tick of gravity. It returns true when the player landed
// this tick, i.e. fell past the ground line and was clamped back onto it.
func (p *Player) Move(gravity int) bool {
	p.VelocityY += gravity
	p.Y += p.VelocityY

	if p.Y > p.GroundY {
		p.Y = p.GroundY
		p.VelocityY = 0
		p.Visual = VisualRunning
		return true
	}
	return false
}

// Jump sets the upward impulse. Callers check Grounded first.
func (p *Player) Jump(impulse int) {
	p.VelocityY = impulse
	p.Visual = VisualJumping
}

// Die marks the player as crashed.
func (p *Player) Die() {
	p.Visual = VisualDead
}

// Variant is one of the three obstacle classes. It only determines width.
type Variant int

const (
	VariantSmall Variant = iota
	VariantMedium
	VariantLarge
)

// Variants lists all obstacle variants in width order.
var Variants = []Variant{VariantSmall, VariantMedium, VariantLarge}

// String returns the variant name.
func (v Variant) String() string {
	switch v {
	case VariantSmall:
		return "small"
	case VariantMedium:
		return "medium"
	case VariantLarge:
		return "large"
	default:
		return "unknown"
	}
}

// Width looks the variant up in the configured width table.
func (v Variant) Width(widths []int) int {
	if int(v) < 0 || int(v) >= len(widths) {
		return 0
	}
	return widths[v]
}

// Obstacle scrolls left at a constant speed.
type Obstacle struct {
	Entity
	VelocityX int
	Variant   Variant
}

// NewObstacle creates an obstacle of the given variant at the spawn point.
func NewObstacle(v Variant, cfg config.RunnerConfig) Obstacle {
	return Obstacle{
		Entity: Entity{
			Rect: core.NewRect(
				cfg.Obstacles.SpawnX,
				cfg.ObstacleY(),
				v.Width(cfg.Obstacles.Widths),
				cfg.Obstacles.Height,
			),
			Visual: VisualRunning,
		},
		VelocityX: cfg.Obstacles.VelocityX,
		Variant:   v,
	}
}

// Move advances the obstacle by one tick.
func (o *Obstacle) Move() {
	o.X += o.VelocityX
}
