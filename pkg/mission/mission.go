// Package mission wires the field store, lighting/visibility engines,
// object-influence system, ghost behavior, and per-tile scheduler into
// one phase-ordered per-frame tick, and adapts its external
// collaborators (asset loader, audio sink, render sink, input,
// difficulty profile) to thin Go interfaces.
package mission

import (
	"math/rand"

	"github.com/opd-ai/unhaunter/pkg/audio"
	"github.com/opd-ai/unhaunter/pkg/config"
	"github.com/opd-ai/unhaunter/pkg/engine"
	"github.com/opd-ai/unhaunter/pkg/event"
	"github.com/opd-ai/unhaunter/pkg/evidence"
	"github.com/opd-ai/unhaunter/pkg/geometry"
	"github.com/opd-ai/unhaunter/pkg/ghost"
	"github.com/opd-ai/unhaunter/pkg/influence"
	"github.com/opd-ai/unhaunter/pkg/lighting"
	"github.com/opd-ai/unhaunter/pkg/particle"
	"github.com/opd-ai/unhaunter/pkg/rng"
	"github.com/opd-ai/unhaunter/pkg/scheduler"
	"github.com/opd-ai/unhaunter/pkg/spatial"
	"github.com/opd-ai/unhaunter/pkg/visibility"
	"github.com/opd-ai/unhaunter/pkg/worldstate"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{"system": "mission"})

// wanderQueryRadius bounds how far from the ghost's current position
// the object-influence grid is queried when scoring wander-target
// candidates; objects past this distance cannot meaningfully pull a
// nearby destination anyway. wanderQueryCellSize follows pkg/spatial's
// 2-4x-query-radius sizing guidance.
const (
	wanderQueryRadius   = 24.0
	wanderQueryCellSize = 8.0
)

// Mission is the per-mission simulation core: every subsystem wired
// into one phase-ordered Tick. It owns no rendering, networking, or
// persistence.
type Mission struct {
	World   *engine.World
	Fields  *worldstate.Fields
	Rooms   *worldstate.RoomDB
	Queue   *event.Queue
	Orch    *worldstate.Orchestrator
	Light   *lighting.Engine
	Influ   *influence.System
	Sched   *scheduler.Scheduler
	Parts   *particle.System
	Mixer   *visibility.AmbientMixer
	Doors   []geometry.BoardPosition
	Objects []*influence.Object
	Tiles   []scheduler.Tile

	ObjectGrid *spatial.Grid
	objectByID map[uint64]*influence.Object

	Difficulty *config.DifficultyProfile

	Ghost        *ghost.Sprite
	BreachPos    geometry.BoardPosition
	Players      []*Player
	ActivePlayer int

	Audio  AudioSink
	Render RenderSink

	RNG *rng.RNG

	loadedMap *LoadedMap
}

// New builds a mission from a resolved map and difficulty profile.
// ghostClass picks the haunting's ghost type; callers typically sample
// it uniformly from evidence.AllGhostTypes() or from
// diff.GhostSetSubset once that's resolved to named types.
func New(lm *LoadedMap, diff *config.DifficultyProfile, ghostClass evidence.GhostType, audio AudioSink, render RenderSink, seed int64) *Mission {
	fields := worldstate.NewFields(20.0, seed)
	fields.RebuildCollision(lm.TileSources)
	fields.InitTemperature()

	rooms := lm.BuildRooms(fields)

	queue := event.NewQueue()
	lightEngine := lighting.NewEngine()
	orch := worldstate.NewOrchestrator(fields, queue, func() []worldstate.TileSource { return lm.TileSources })
	orch.RebuildLighting = func() { lightEngine.Rebuild(fields, lm.Emitters) }
	lightEngine.Rebuild(fields, lm.Emitters)

	infCfg := influence.DefaultConfig()
	infCfg.HuntProvocationRadius = diff.HuntProvocationRadius()
	influ := influence.NewSystem(infCfg)

	var breach geometry.BoardPosition
	if len(lm.GhostSpawns) > 0 {
		breach = lm.GhostSpawns[0]
	}
	gh := ghost.NewSprite(ghostClass, breach)

	var objects []*influence.Object
	for i, pos := range lm.MovableTiles {
		kind := influence.Attractive
		if i%2 == 1 {
			kind = influence.Repulsive
		}
		objects = append(objects, &influence.Object{ID: uint64(i), Pos: pos.ToPosition(), Kind: kind})
	}

	tiles := make([]scheduler.Tile, 0, len(lm.TileSources))
	for i, ts := range lm.TileSources {
		tiles = append(tiles, scheduler.Tile{ID: uint64(i), Pos: ts.Pos})
	}

	objGrid := spatial.NewGrid(wanderQueryCellSize)
	objByID := make(map[uint64]*influence.Object, len(objects))
	for _, o := range objects {
		objGrid.Insert(engine.Entity(o.ID), o.Pos.X, o.Pos.Y)
		objByID[o.ID] = o
	}

	m := &Mission{
		World:      engine.NewWorld(),
		Fields:     fields,
		Rooms:      rooms,
		Queue:      queue,
		Orch:       orch,
		Light:      lightEngine,
		Influ:      influ,
		Sched:      scheduler.NewScheduler(seed, len(tiles)),
		Parts:      particle.NewSystem(512, seed),
		Mixer:      visibility.NewAmbientMixer(uint64(seed)),
		Doors:      lm.Doors,
		Objects:    objects,
		Tiles:      tiles,
		ObjectGrid: objGrid,
		objectByID: objByID,
		Difficulty: diff,
		Ghost:      gh,
		BreachPos:  breach,
		Audio:      audio,
		Render:     render,
		RNG:        rng.NewRNG(seed),
		loadedMap:  lm,
	}
	return m
}

// AddPlayer registers a new player at spawn with empty gear and full
// health/sanity, returning its mission-tracked handle.
func (m *Mission) AddPlayer(id string, spawn geometry.BoardPosition) *Player {
	e := m.World.NewPlayerEntity(spawn.ToPosition().X, spawn.ToPosition().Y)
	p := &Player{
		ID:     id,
		Entity: e,
		State: &ghost.Player{
			Pos:    spawn.ToPosition(),
			Health: 100,
		},
	}
	m.Players = append(m.Players, p)
	return p
}

func (m *Mission) inRoom(pos geometry.BoardPosition) bool {
	return m.Rooms.InRoom(pos)
}

func (m *Mission) ghostFree(pos geometry.BoardPosition) bool {
	cell, ok := m.Fields.Collision[pos]
	return ok && cell.GhostFree
}

func (m *Mission) walkable(pos geometry.BoardPosition) bool {
	cell, ok := m.Fields.Collision[pos]
	return ok && cell.PlayerFree
}

func (m *Mission) livePlayers() []*ghost.Player {
	out := make([]*ghost.Player, 0, len(m.Players))
	for _, p := range m.Players {
		out = append(out, p.State)
	}
	return out
}

// nearbyObjects returns the marked objects in the ObjectGrid cells
// overlapping radius around center (cell-bounded, so some can lie a
// little beyond radius), rather than scanning the full mission object
// list. Wander-target candidates lie near the ghost's current
// position, and objects outside those cells are left out of their
// influence scores entirely (their distance-damped pull is dropped),
// which keeps the per-candidate scan small regardless of how many
// objects the map has.
func (m *Mission) nearbyObjects(center geometry.Position, radius float64) []*influence.Object {
	if m.ObjectGrid == nil {
		return m.Objects
	}
	ids := m.ObjectGrid.QueryRadius(center.X, center.Y, radius)
	out := make([]*influence.Object, 0, len(ids))
	for _, e := range ids {
		if o, ok := m.objectByID[uint64(e)]; ok {
			out = append(out, o)
		}
	}
	return out
}

// Tick advances the mission by dt seconds, running every stage in a
// fixed phase order: rebuild orchestrator (draining events raised by
// the previous frame's behavior) -> player input/movement -> visibility
// flood -> object influence -> ghost behavior -> per-tile scheduler ->
// exposure adaptation -> ambient audio mix.
func (m *Mission) Tick(dt float64) {
	m.Orch.Tick()

	for _, p := range m.Players {
		MovePlayer(p, dt, m.Difficulty.PlayerSpeedMul, m.Fields)
		UpdateMeanSound(p, m.Fields)
	}

	if len(m.Players) > 0 {
		active := m.Players[m.ActivePlayer%len(m.Players)]
		visibility.Flood(m.Fields, active.State.Pos.ToBoardPosition(), m.inRoom)
	}

	rageDelta := m.Influ.Tick(m.Objects, m.Ghost.Pos, m.BreachPos.ToPosition(), m.inRoom, dt)
	m.Ghost.Rage += rageDelta

	if !m.Ghost.Despawned {
		env := ghost.Environment{
			GhostFree: m.ghostFree,
			InRoom:    m.inRoom,
			Walkable:  m.walkable,
			LineOfSight: func(p *ghost.Player) bool {
				return LineOfSight(m.Fields, m.Ghost.Pos, p.Pos)
			},
			Particles: m.Parts,
			OnRoar: func() {
				if m.Audio != nil {
					m.Audio.Play("sfx/roar.wav", 1.0, &m.Ghost.Pos)
				}
			},
			OnSaltyTrace: func(pos geometry.BoardPosition) {
				m.Parts.SpawnSaltyTrace(pos.ToPosition().X, pos.ToPosition().Y)
			},
			OnActuation: func(a ghost.EnvironmentalActuation) {
				m.handleActuation(a)
			},
			Doors: m.Doors,
			RNG:   m.RNG,
		}
		wanderCandidates := m.nearbyObjects(m.Ghost.Pos, wanderQueryRadius)
		m.Ghost.Tick(dt, m.Difficulty, m.livePlayers(), wanderCandidates, env)
		m.Ghost.FoldRepellentFrame()
	}

	if len(m.Players) > 0 {
		active := m.Players[m.ActivePlayer%len(m.Players)]
		for i := range m.Tiles {
			m.Tiles[i].Visible = m.Fields.Visibility[m.Tiles[i].Pos] > 0
		}
		marked := m.Sched.MarkForUpdate(m.Tiles, active.State.Pos.ToBoardPosition())
		m.shadeMarkedTiles(*marked)
		m.Sched.Release(marked)

		cursorExp := lighting.CursorExposure(m.Fields, active.State.Pos.ToBoardPosition(), 0)
		lighting.AdaptExposure(m.Fields, cursorExp)

		totalVis := visibility.TotalVisibility(m.Fields, m.inRoom)
		house, street := visibility.AmbientGains(totalVis)
		m.Mixer.Update(house, street, dt)
		if m.Audio != nil {
			m.Audio.SetHouseVolume(m.Mixer.HouseGain())
			m.Audio.SetStreetVolume(m.Mixer.StreetGain())
			if room, ok := m.Rooms.RoomOf(active.State.Pos.ToBoardPosition()); ok {
				decay, wet, dry := m.roomReverb(room)
				m.Audio.SetReverb(decay, wet, dry)
			}
		}
	}
}

// roomReverb derives reverb parameters from a room's tile-space
// bounding box: a small closet rings differently than the great hall,
// and RoomDB already knows each room's footprint from flood-fill
// assignment without this core needing to track room dimensions
// separately.
func (m *Mission) roomReverb(room string) (decay, wetMix, dryMix float64) {
	width, height := m.Rooms.BoundingBox(room)
	if width == 0 || height == 0 {
		width, height = 1, 1
	}
	calc := audio.NewReverbCalculator(width, height)
	return calc.GetDecay(), calc.GetWetMix(), calc.GetDryMix()
}

func (m *Mission) handleActuation(a ghost.EnvironmentalActuation) {
	pos := a.Pos.ToPosition()
	switch a.Kind {
	case ghost.ActuationDoorSlam:
		m.Parts.SpawnDoorSlamDust(pos.X, pos.Y)
		if m.Audio != nil {
			m.Audio.Play("sfx/door_slam.wav", 0.8, &pos)
		}
	case ghost.ActuationLightFlicker:
		m.Parts.SpawnLightFlicker(pos.X, pos.Y)
		m.Queue.RaiseLighting()
	}
}

// shadeMarkedTiles runs the per-tile shading pipeline (lighting color
// plus visibility-as-alpha) for each marked tile and writes the result
// to the render sink when the material delta clears the scheduler's
// write-skip threshold.
func (m *Mission) shadeMarkedTiles(markedIDs []uint64) {
	if m.Render == nil {
		return
	}
	marked := make(map[uint64]bool, len(markedIDs))
	for _, id := range markedIDs {
		marked[id] = true
	}
	for i, ts := range m.loadedMap.TileSources {
		if !marked[uint64(i)] {
			continue
		}
		mat := m.shadeTile(ts.Pos)
		if scheduler.ShouldWriteMaterial(ts.Pos, materialDelta(mat)) {
			m.Render.WriteTileMaterial(ts.Pos, mat)
		}
	}
}

func (m *Mission) shadeTile(pos geometry.BoardPosition) TileMaterial {
	lfd := m.Fields.Light[pos]
	vis := m.Fields.Visibility[pos]
	gamma := 1.0 / m.Fields.CurrentExposure
	alpha := vis

	color := [3]float64{lfd.Lux * alpha, lfd.Lux * alpha, lfd.Lux * alpha}
	return TileMaterial{
		Color:        color,
		Gamma:        gamma,
		CornerGamma:  [4]float64{gamma, gamma, gamma, gamma},
		AmbientColor: [3]float64{lfd.Spectral.Red, lfd.Spectral.Infrared, lfd.Spectral.Ultraviolet},
	}
}

// materialDelta is a cheap scalar proxy for how much a tile's shading
// changed this frame; a real renderer would diff against the last
// uploaded material, but the core only needs a deterministic number
// here to exercise the scheduler's write-skip gate.
func materialDelta(mat TileMaterial) float64 {
	return mat.Color[0] + mat.Gamma
}

// RandomGhostClass picks a ghost class uniformly at random, or from a
// named subset if diff restricts it. Exposed for cmd/mission and
// tests that don't care which class they get.
func RandomGhostClass(diff *config.DifficultyProfile, r *rand.Rand) evidence.GhostType {
	all := evidence.AllGhostTypes()
	if len(diff.GhostSetSubset) == 0 {
		return all[r.Intn(len(all))]
	}
	names := make(map[string]evidence.GhostType, len(all))
	for _, g := range all {
		names[g.Name()] = g
	}
	var subset []evidence.GhostType
	for _, n := range diff.GhostSetSubset {
		if g, ok := names[n]; ok {
			subset = append(subset, g)
		}
	}
	if len(subset) == 0 {
		return all[r.Intn(len(all))]
	}
	return subset[r.Intn(len(subset))]
}
