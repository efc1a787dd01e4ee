package ghost

import (
	"math"

	"github.com/opd-ai/unhaunter/pkg/geometry"
	"github.com/opd-ai/unhaunter/pkg/influence"
	"github.com/opd-ai/unhaunter/pkg/particle"
	"github.com/opd-ai/unhaunter/pkg/rng"
	"github.com/sirupsen/logrus"
)

// arriveRadius is how close the ghost must get to its target point
// before the target clears and a new one is chosen next tick.
const arriveRadius = 0.5

// warpDecayRate and warpBurstChance drive the occasional speed burst:
// warp decays continuously and rarely jumps back up.
const (
	warpDecayRate   = 2.0
	warpBurstChance = 0.01
	warpBurstAmount = 40.0
)

// saltyTraceInterval and saltyTraceChance govern how often a salty
// ghost drops a trace marker while its effect is active.
const (
	saltyTraceInterval = 0.3
	saltyTraceChance    = 0.5
)

// banishFadeDuration is how long a banished ghost and its breach take
// to fade out once repellent hits cross the threshold.
const banishFadeDuration = 5.0

// Environment bundles the world queries and side-effect sinks the
// ghost update needs from its host mission, keeping Sprite itself free
// of any dependency on the board, renderer, or audio mixer.
type Environment struct {
	GhostFree    func(geometry.BoardPosition) bool
	InRoom       func(geometry.BoardPosition) bool
	Walkable     func(geometry.BoardPosition) bool
	LineOfSight  func(*Player) bool // nil treats every player as visible
	Particles    *particle.System
	OnRoar       func()
	OnSaltyTrace func(geometry.BoardPosition)
	OnActuation  func(EnvironmentalActuation)
	Doors        []geometry.BoardPosition
	RNG          *rng.RNG
}

func (e Environment) losClear(p *Player) bool {
	if e.LineOfSight == nil {
		return true
	}
	return e.LineOfSight(p)
}

// Tick advances the ghost's full behavior cycle by dt seconds: target
// selection, movement, rage and hunt dynamics, banishment, and the
// salty trace side effect.
func (s *Sprite) Tick(dt float64, diff Difficulty, players []*Player, objects []*influence.Object, env Environment) {
	if s.Fade != nil {
		s.tickFade(dt, env)
		return
	}

	if s.Banished() {
		s.Fade = ptrFadeOut(NewFadeOut(banishFadeDuration))
		if env.OnRoar != nil {
			env.OnRoar()
		}
		s.Fade.Roared = true
		if env.Particles != nil {
			env.Particles.SpawnSmoke(s.Pos.X, s.Pos.Y)
		}
		log.WithField("class", s.Class).Info("ghost banished, fading out")
		return
	}

	s.updateTarget(diff, players, objects, env)
	if env.RNG != nil && env.RNG.Float64() < warpBurstChance {
		s.Warp += warpBurstAmount
	}
	s.move(dt, diff)
	s.updateRage(dt, diff, players)
	s.checkHuntTrigger(dt, diff, env)
	if s.HuntTarget {
		s.HuntElapsed += dt
		s.pursueDamage(dt, diff, players, env)
	} else {
		s.HuntElapsed = 0
	}
	s.updateSaltyTrace(dt, env)
	s.updateActuation(diff, players, env)
}

func ptrFadeOut(f FadeOut) *FadeOut { return &f }

func (s *Sprite) tickFade(dt float64, env Environment) {
	s.Fade.Remaining -= dt
	if env.Particles != nil {
		env.Particles.SpawnSmoke(s.Pos.X, s.Pos.Y)
	}
	if s.Fade.Done() {
		if env.OnRoar != nil {
			env.OnRoar()
		}
		s.Despawned = true
	}
}

func (s *Sprite) updateTarget(diff Difficulty, players []*Player, objects []*influence.Object, env Environment) {
	if s.TargetPoint != nil {
		return
	}
	if s.HuntTarget {
		s.TargetPoint = s.chooseHuntTarget(players, env.RNG)
		return
	}
	s.TargetPoint = s.chooseWanderTarget(diff, objects, env.GhostFree, env.InRoom, env.RNG)
}

func (s *Sprite) move(dt float64, diff Difficulty) {
	if s.Warp > 0 {
		s.Warp -= s.Warp * warpDecayRate * dt
		if s.Warp < 0.01 {
			s.Warp = 0
		}
	}

	if s.TargetPoint == nil {
		return
	}

	delta := s.TargetPoint.Delta(s.Pos)
	if delta.Magnitude() < arriveRadius {
		s.TargetPoint = nil
		return
	}

	if s.HuntTarget {
		s.Pos = s.Pos.Add(delta.Scale(dt * diff.GhostHuntingAggression() / 70))
	} else {
		s.Pos = s.Pos.Add(delta.Scale(dt * diff.GhostSpeed() / 200))
	}

	if s.Warp > 0 {
		s.Pos = s.Pos.Add(delta.Normalized().Scale(s.Warp * dt))
	}
}

func (s *Sprite) updateRage(dt float64, diff Difficulty, players []*Player) {
	if len(players) == 0 {
		return
	}

	minDist := math.Inf(1)
	var totalAngry float64
	provocation := diff.HuntProvocationRadius()
	if provocation <= 0 {
		provocation = 1
	}

	for _, p := range players {
		dist := s.Pos.Distance(p.Pos)
		if dist < minDist {
			minDist = dist
		}

		invSanity := clamp(p.Crazyness/100, 0, 1)
		sanity := p.Sanity() / 100

		dist2 := dist * dist
		denom := (dist2/provocation)*(0.01+sanity) + 0.1 + sanity/100
		if denom <= 0 {
			denom = 0.0001
		}

		term := invSanity * (1 / denom) * p.MeanSound * (p.Health / 100)
		term += math.Sqrt(math.Max(p.MeanSound, 0)) * invSanity * 3000 * dt
		totalAngry += term
	}

	s.Rage -= dt * math.Sqrt(math.Max(minDist, 0)) / 10

	if totalAngry > 0 {
		s.Rage += math.Sqrt(totalAngry) * dt / 10 / (1 + s.CalmTimeSecs) * diff.GhostRageLikelihood()
	}

	huntDuration := diff.GhostHuntDuration()
	if huntDuration <= 0 {
		huntDuration = 1
	}
	s.Hunting -= dt * 0.2 / huntDuration

	s.Rage = clamp(s.Rage, 0, math.Inf(1))
}

func (s *Sprite) checkHuntTrigger(dt float64, diff Difficulty, env Environment) {
	if s.HuntTarget {
		if s.Hunting <= 0 {
			s.HuntTarget = false
			s.TargetPoint = nil
		}
		return
	}

	threshold := 400 * math.Sqrt(diff.GhostRageLikelihood()) * s.RageLimitMultiplier
	if s.Rage <= threshold || s.Hunting >= 1 {
		return
	}

	prevRage := s.Rage
	s.RageLimitMultiplier *= 1.3
	s.Rage /= 1 + diff.GhostHuntCooldown()
	s.Hunting += prevRage/50 + 5
	s.HuntTarget = true
	s.TargetPoint = nil
	if env.OnRoar != nil {
		env.OnRoar()
	}
	log.WithFields(logrus.Fields{"class": s.Class, "rage": s.Rage, "hunting": s.Hunting}).Info("ghost enters hunt")
}

func (s *Sprite) pursueDamage(dt float64, diff Difficulty, players []*Player, env Environment) {
	ghostStrength := clamp(s.HuntElapsed, 0, 2)
	for _, p := range players {
		if p.Health <= 0 || !env.losClear(p) {
			continue
		}
		dist := s.Pos.Distance(p.Pos)
		dmg := 30 * dt * ghostStrength / (dist*dist + 2) * diff.HealthDrainRate() / (1 + s.CalmTimeSecs/5)
		p.Health = clamp(p.Health-dmg, 0, math.Inf(1))
	}
}

func (s *Sprite) updateSaltyTrace(dt float64, env Environment) {
	if s.SaltyEffectRemaining <= 0 {
		return
	}
	s.SaltyEffectRemaining -= dt
	if s.HuntTarget {
		return
	}

	s.SaltyTraceTimer += dt
	if s.SaltyTraceTimer < saltyTraceInterval {
		return
	}
	s.SaltyTraceTimer -= saltyTraceInterval

	if env.RNG == nil || env.RNG.Float64() >= saltyTraceChance {
		return
	}

	tile := s.Pos.ToBoardPosition()
	candidates := []geometry.BoardPosition{tile.Left(), tile.Right(), tile.Top(), tile.Bottom()}
	var walkable []geometry.BoardPosition
	for _, c := range candidates {
		if env.Walkable == nil || env.Walkable(c) {
			walkable = append(walkable, c)
		}
	}
	if len(walkable) == 0 {
		return
	}
	chosen := walkable[env.RNG.Intn(len(walkable))]
	if env.OnSaltyTrace != nil {
		env.OnSaltyTrace(chosen)
	}
}

// updateActuation rolls for a direct world manipulation — a door slam
// or light flicker — against the nearest in-house player, skipping the
// roll entirely while the ghost is already hunting.
func (s *Sprite) updateActuation(diff Difficulty, players []*Player, env Environment) {
	if s.HuntTarget || env.OnActuation == nil || env.RNG == nil || len(players) == 0 {
		return
	}

	nearest := players[0]
	minDist := s.Pos.Distance(nearest.Pos)
	for _, p := range players[1:] {
		if d := s.Pos.Distance(p.Pos); d < minDist {
			minDist = d
			nearest = p
		}
	}

	ev := TriggerEnvironmentalActuation(s.Pos, nearest.Pos, diff.GhostInteractionFrequency(), env.Doors, env.RNG)
	if ev != nil {
		env.OnActuation(*ev)
	}
}
