package runner

import (
	"math/rand"

	"github.com/vovakirdan/dino-runner/internal/config"
)

// SelectVariant maps a uniform roll in [0,1) to an obstacle variant using the
// cumulative bands. With the sparse policy, rolls below bands.SparseFloor
// produce no obstacle and ok is false.
func SelectVariant(roll float64, policy config.SpawnPolicy, bands config.Bands) (v Variant, ok bool) {
	switch {
	case roll >= bands.Large:
		return VariantLarge, true
	case roll >= bands.Medium:
		return VariantMedium, true
	case policy == config.SpawnSparse && roll < bands.SparseFloor:
		return VariantSmall, false
	default:
		return VariantSmall, true
	}
}

// Spawner draws obstacle variants from a seeded RNG.
type Spawner struct {
	rng    *rand.Rand
	policy config.SpawnPolicy
	bands  config.Bands
}

// NewSpawner creates a spawner with the given RNG seed.
func NewSpawner(seed int64, cfg config.ObstacleConfig) *Spawner {
	return &Spawner{
		rng:    rand.New(rand.NewSource(seed)),
		policy: cfg.SpawnPolicy,
		bands:  cfg.Bands,
	}
}

// Next draws one roll and returns the selected variant, if any.
func (s *Spawner) Next() (Variant, bool) {
	return SelectVariant(s.rng.Float64(), s.policy, s.bands)
}

// Policy returns the spawn policy in effect.
func (s *Spawner) Policy() config.SpawnPolicy {
	return s.policy
}
