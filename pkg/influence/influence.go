// Package influence implements the object-charge subsystem: marked
// objects accumulate charge over time, discharge when near the ghost,
// and attractive objects removed from the ghost's room build up anger.
package influence

import (
	"github.com/opd-ai/unhaunter/pkg/geometry"
)

// Type is whether a marked object draws the ghost toward it or pushes
// it away.
type Type int

const (
	Attractive Type = iota
	Repulsive
)

// Object is a single marked object's ghost-influence state.
type Object struct {
	ID     uint64
	Pos    geometry.Position
	Kind   Type
	Charge float64 // clamped to [0,1]

	withinRange bool
}

// Config holds the per-mission tunables difficulty scales, all
// grounded on the object-charge system's own rate constants.
type Config struct {
	ChargeRate                 float64
	DischargeRadius            float64
	AttractiveDischargeRate    float64
	RepulsiveDischargeRate     float64
	HuntProvocationRadius      float64
	AttractiveRemovalAngerRate float64
}

// DefaultConfig returns the baseline tuning before difficulty scaling.
func DefaultConfig() Config {
	return Config{
		ChargeRate:                 0.1,
		DischargeRadius:            3.0,
		AttractiveDischargeRate:    0.15,
		RepulsiveDischargeRate:     0.15,
		HuntProvocationRadius:      5.0,
		AttractiveRemovalAngerRate: 0.05,
	}
}

// System runs the charge/discharge/anger pipeline. removedAttractive
// is owned by the System instance (not a package-level Local as in the
// teacher's original system) so it resets cleanly between missions —
// see DESIGN.md for this Open Question resolution.
type System struct {
	Config Config

	removedAttractive map[uint64]bool
}

// NewSystem builds a charge system with the given configuration.
func NewSystem(cfg Config) *System {
	return &System{Config: cfg, removedAttractive: make(map[uint64]bool)}
}

// Tick advances charge accumulation, proximity discharge, and removed-
// attractive anger accrual by dt seconds. ghostPos and breachPos are
// the ghost's current and spawn positions; inRoom reports whether an
// object's tile is within the ghost's current room. Returns the rage
// delta to apply to the ghost this tick.
func (s *System) Tick(objects []*Object, ghostPos, breachPos geometry.Position, inRoom func(geometry.BoardPosition) bool, dt float64) float64 {
	for _, o := range objects {
		o.Charge = clamp(o.Charge+s.Config.ChargeRate*dt, 0, 1)
	}

	var rageDelta float64
	for _, o := range objects {
		distToGhost := o.Pos.Distance(ghostPos)
		if distToGhost <= s.Config.DischargeRadius {
			o.withinRange = true
			if o.Kind == Repulsive {
				distToBreach := o.Pos.Distance(breachPos)
				if distToBreach <= s.Config.HuntProvocationRadius && o.Charge > 0.8 {
					rageDelta += 0.2
				}
			}
		} else {
			o.withinRange = false
			if o.Kind == Attractive {
				if inRoom(o.Pos.ToBoardPosition()) {
					delete(s.removedAttractive, o.ID)
				} else {
					s.removedAttractive[o.ID] = true
				}
			}
		}
	}

	if n := len(s.removedAttractive); n > 0 {
		rageDelta += s.Config.AttractiveRemovalAngerRate * dt * float64(n)
	}

	for _, o := range objects {
		if !o.withinRange {
			continue
		}
		var rate float64
		if o.Kind == Attractive {
			rate = s.Config.AttractiveDischargeRate
		} else {
			rate = s.Config.RepulsiveDischargeRate
		}
		o.Charge = clamp(o.Charge-rate*dt, 0, 1)
	}

	return rageDelta
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
