package ghost

import (
	"math"

	"github.com/opd-ai/unhaunter/pkg/geometry"
	"github.com/opd-ai/unhaunter/pkg/influence"
	"github.com/opd-ai/unhaunter/pkg/rng"
)

// staleTargetCalmThreshold is the calm_time_secs above which hunt
// target selection reuses the last live target instead of re-picking,
// so a ghost that just lost its prey doesn't instantly re-acquire.
const staleTargetCalmThreshold = 5.0

// wanderReachTiles is the base distance (in tiles, before dividing by
// attraction-to-breach) the 6th-power wander weight can push a
// candidate destination.
const wanderReachTiles = 12.0

// chooseWanderTarget samples NumDestinationSamples candidate points
// between the ghost's spawn and its current position, scores each
// against the object-influence field, and accepts the best-scoring
// one whose tile is in-room and ghost_free.
func (s *Sprite) chooseWanderTarget(diff Difficulty, objects []*influence.Object, ghostFree, inRoom func(geometry.BoardPosition) bool, r *rng.RNG) *geometry.Position {
	attraction := diff.GhostAttractionToBreach()
	if attraction <= 0 {
		attraction = 1
	}
	spawn := s.SpawnPoint.ToPosition()
	cur := s.Pos
	toSpawn := spawn.Delta(cur)

	samples := diff.NumDestinationSamples()
	if samples <= 0 {
		samples = 1
	}

	var best geometry.Position
	bestScore := math.Inf(-1)
	found := false

	for i := 0; i < samples; i++ {
		wander := math.Pow(r.Float64(), 6)
		reach := wander * wanderReachTiles / attraction
		candidate := cur.Add(toSpawn.Normalized().Scale(reach))
		candidate = candidate.Add(geometry.Direction{
			Dx: (r.Float64() - 0.5) * 2,
			Dy: (r.Float64() - 0.5) * 2,
		})

		tile := candidate.ToBoardPosition()
		if !inRoom(tile) || !ghostFree(tile) {
			continue
		}

		score := 1 + scoreInfluence(candidate, objects, diff)/attraction
		if score > bestScore {
			bestScore = score
			best = candidate
			found = true
		}
	}

	if !found {
		return nil
	}
	return &best
}

// scoreInfluence sums each object's signed pull at the candidate
// point: attractive objects raise the score, repulsive objects lower
// it, both falling off with distance.
func scoreInfluence(p geometry.Position, objects []*influence.Object, diff Difficulty) float64 {
	var total float64
	for _, o := range objects {
		sign := 1.0
		mul := diff.AttractiveInfluenceMultiplier()
		if o.Kind == influence.Repulsive {
			sign = -1.0
			mul = diff.RepulsiveInfluenceMultiplier()
		}
		dist := p.Distance(o.Pos)
		total += sign * mul * o.Charge / (dist + 1)
	}
	return total
}

// chooseHuntTarget picks a live player to pursue, jittered by a search
// radius that widens when the player is hiding. If calm_time_secs
// exceeds staleTargetCalmThreshold, the previous target point is kept
// instead of re-acquiring, so a freshly-evaded ghost doesn't snap back
// onto the same player's live position.
func (s *Sprite) chooseHuntTarget(players []*Player, r *rng.RNG) *geometry.Position {
	if s.CalmTimeSecs > staleTargetCalmThreshold && s.TargetPoint != nil {
		return s.TargetPoint
	}

	var alive []*Player
	for _, p := range players {
		if p.Health > 0 {
			alive = append(alive, p)
		}
	}
	if len(alive) == 0 {
		return s.TargetPoint
	}

	target := alive[r.Intn(len(alive))]
	searchRadius := 1.0
	if target.Hiding {
		searchRadius = 4.0
	}

	jittered := target.Pos.Add(geometry.Direction{
		Dx: (r.Float64() - 0.5) * 2 * searchRadius,
		Dy: (r.Float64() - 0.5) * 2 * searchRadius,
	})
	return &jittered
}
