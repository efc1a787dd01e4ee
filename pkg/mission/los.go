package mission

import (
	"math"

	"github.com/opd-ai/unhaunter/pkg/geometry"
	"github.com/opd-ai/unhaunter/pkg/worldstate"
)

// losSampleStep is the distance, in tiles, between samples along a
// line-of-sight ray; small enough not to skip over a one-tile-thick
// wall.
const losSampleStep = 0.5

// LineOfSight reports whether a straight ray from a to b passes
// through no opaque, non-see-through tile. Used to gate hunt pursuit
// damage to players the ghost can actually see, without pretending to
// be the full light/shadow engine's shadow-distance computation.
func LineOfSight(fields *worldstate.Fields, a, b geometry.Position) bool {
	dist := a.Distance(b)
	if dist < 1e-6 {
		return true
	}
	steps := int(math.Ceil(dist / losSampleStep))
	for i := 1; i < steps; i++ {
		t := float64(i) / float64(steps)
		p := geometry.Position{
			X: a.X + (b.X-a.X)*t,
			Y: a.Y + (b.Y-a.Y)*t,
			Z: a.Z + (b.Z-a.Z)*t,
		}
		tile := p.ToBoardPosition()
		cell, ok := fields.Collision[tile]
		if ok && !cell.SeeThrough && !cell.PlayerFree {
			return false
		}
	}
	return true
}
