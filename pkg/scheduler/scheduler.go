// Package scheduler implements the per-tile sparse re-evaluation
// policy: without culling, shading every tile every frame is cost
// prohibitive, so each frame only a statistically-biased subset of
// tiles within distance of the player are marked for a shading pass.
package scheduler

import (
	"math"

	"github.com/opd-ai/unhaunter/pkg/geometry"
	"github.com/opd-ai/unhaunter/pkg/pool"
	"github.com/opd-ai/unhaunter/pkg/rng"
)

// baseMinDst is the guaranteed-update radius every tile gets regardless
// of its draw; visibleSpread/hiddenSpread extend that radius further
// for visible tiles (costlier to leave stale) than hidden ones.
const (
	baseMinDst     = 5.0
	visibleSpread  = 100.0
	hiddenSpread   = 20.0
	wanderExponent = 10
)

// materialBaseThreshold and materialJitterScale gate the secondary
// material-write skip: a tile whose shading delta falls below the
// base threshold plus its own deterministic jitter keeps its last
// uploaded material, saving a GPU upload.
const (
	materialBaseThreshold = 0.02
	materialJitterScale   = 0.1
)

// Tile is a tile entity's identity and position as seen by the
// scheduler; the mission layer's actual tile representation maps onto
// this for the purposes of marking.
type Tile struct {
	ID      uint64
	Pos     geometry.BoardPosition
	Visible bool
}

// Scheduler draws the per-frame sample and recycles its output buffer
// across frames through a pooled uint64 slice.
type Scheduler struct {
	RNG  *rng.RNG
	pool *pool.EntitySlicePool
}

// NewScheduler builds a scheduler with its own seeded draw sequence
// and a slice pool sized for the expected marked-tile count per frame.
func NewScheduler(seed int64, poolCapacity int) *Scheduler {
	return &Scheduler{RNG: rng.NewRNG(seed), pool: pool.NewEntitySlicePool(poolCapacity)}
}

// MarkForUpdate draws a fresh uniform sample per tile and marks it for
// this frame's shading pass when its taxicab distance to the player
// falls under the sample-biased minimum distance. The returned slice
// is borrowed from the scheduler's pool; release it with Release once
// the caller is done reading it this frame.
func (s *Scheduler) MarkForUpdate(tiles []Tile, playerPos geometry.BoardPosition) *[]uint64 {
	marked := s.pool.Get()
	*marked = (*marked)[:0]

	pp := playerPos.ToPosition()
	for _, t := range tiles {
		r := s.RNG.Float64()
		dst := t.Pos.ToPosition().DistanceTaxicab(pp)

		spread := hiddenSpread
		if t.Visible {
			spread = visibleSpread
		}
		minDst := baseMinDst + math.Pow(r, wanderExponent)*spread

		if dst < minDst {
			*marked = append(*marked, t.ID)
		}
	}
	return marked
}

// Release returns a slice obtained from MarkForUpdate to the pool.
func (s *Scheduler) Release(marked *[]uint64) {
	s.pool.Put(marked)
}

// ShouldWriteMaterial reports whether a tile's new shading parameters
// differ enough from its last uploaded ones to justify the write. The
// threshold is jittered deterministically per tile (from its board
// position hash) so neighboring tiles don't all flip their material on
// the same frame.
func ShouldWriteMaterial(pos geometry.BoardPosition, delta float64) bool {
	threshold := materialBaseThreshold + pos.MiniHash()*materialJitterScale
	return delta > threshold
}
