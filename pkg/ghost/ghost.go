// Package ghost implements the haunting entity's full behavior cycle:
// target selection, movement, rage/hunt dynamics, banishment, and the
// salty-trace side effect.
package ghost

import (
	"math"

	"github.com/opd-ai/unhaunter/pkg/evidence"
	"github.com/opd-ai/unhaunter/pkg/geometry"
	"github.com/opd-ai/unhaunter/pkg/influence"
	"github.com/opd-ai/unhaunter/pkg/rng"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{"system": "ghost"})

// Difficulty is the subset of the mission's difficulty profile the
// ghost engine needs. The mission layer's full DifficultyProfile
// satisfies this implicitly.
type Difficulty interface {
	GhostSpeed() float64
	GhostHuntingAggression() float64
	GhostAttractionToBreach() float64
	GhostRageLikelihood() float64
	GhostHuntDuration() float64
	GhostHuntCooldown() float64
	HealthDrainRate() float64
	HuntProvocationRadius() float64
	AttractiveInfluenceMultiplier() float64
	RepulsiveInfluenceMultiplier() float64
	NumDestinationSamples() int
	GhostInteractionFrequency() float64
}

// Player is the subset of player state the ghost engine reads.
type Player struct {
	Pos       geometry.Position
	Health    float64
	Crazyness float64 // sanity inverse; Sanity() = clamp(100-Crazyness, 0, 100)
	MeanSound float64
	Hiding    bool
}

// Sanity derives the player's sanity scalar from crazyness.
func (p Player) Sanity() float64 {
	return clamp(100-p.Crazyness, 0, 100)
}

// FadeOut marks a banished ghost or breach fading out over its
// duration. During the fade the fade-out subsystem owns the entity;
// no other system may despawn it.
type FadeOut struct {
	Remaining float64
	Duration  float64
	Roared    bool
}

// NewFadeOut starts a fade-out timer of the given duration.
func NewFadeOut(duration float64) FadeOut {
	return FadeOut{Remaining: duration, Duration: duration}
}

// Done reports whether the fade timer has expired.
func (f FadeOut) Done() bool { return f.Remaining <= 0 }

// Sprite is the ghost entity's full behavioral state.
type Sprite struct {
	Class       evidence.GhostType
	Pos         geometry.Position
	SpawnPoint  geometry.BoardPosition
	TargetPoint *geometry.Position

	RepellentHits        int64
	RepellentMisses      int64
	RepellentHitsFrame   float64
	RepellentMissesFrame float64

	Rage    float64
	Hunting float64

	HuntTarget   bool
	HuntTimeSecs float64
	HuntElapsed  float64
	Warp         float64
	CalmTimeSecs float64

	SaltyEffectRemaining float64
	SaltyTraceTimer      float64
	RageLimitMultiplier  float64

	Fade      *FadeOut
	Despawned bool
}

// NewSprite builds a ghost at its breach with default behavioral
// state; class is picked by the caller (e.g. uniformly at random from
// evidence.AllGhostTypes()).
func NewSprite(class evidence.GhostType, spawn geometry.BoardPosition) *Sprite {
	return &Sprite{
		Class:               class,
		Pos:                 spawn.ToPosition(),
		SpawnPoint:          spawn,
		RageLimitMultiplier: 1.0,
	}
}

// Banished reports whether the ghost has crossed the repellent-hit
// threshold and should begin fading out.
func (s *Sprite) Banished() bool {
	return s.RepellentHits > 1000
}

// missRageBump is the small rage increment a wrong-repellent miss adds
// — the ghost noticing the wrong tool was used against it.
const missRageBump = 2.0

// ApplyRepellent stages a repellent spray event against the ghost's
// own class, accumulating fractional hits/misses in the per-frame
// staging fields rather than the lifetime integer counters directly,
// so several spray events landing within one frame don't get folded in
// a racy order. Call FoldRepellentFrame once per tick to commit the
// staged amounts.
func (s *Sprite) ApplyRepellent(class evidence.GhostType, amount float64) {
	if class == s.Class {
		s.RepellentHitsFrame += amount
	} else {
		s.RepellentMissesFrame += amount
		s.Rage += missRageBump * amount
	}
}

// FoldRepellentFrame commits this frame's staged repellent hit/miss
// amounts into the lifetime integer counters and clears the staging
// fields. Called once per tick, after all of a frame's repellent-spray
// events have been applied.
func (s *Sprite) FoldRepellentFrame() {
	wholeHits := math.Trunc(s.RepellentHitsFrame)
	s.RepellentHits += int64(wholeHits)
	s.RepellentHitsFrame -= wholeHits

	wholeMisses := math.Trunc(s.RepellentMissesFrame)
	s.RepellentMisses += int64(wholeMisses)
	s.RepellentMissesFrame -= wholeMisses
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
