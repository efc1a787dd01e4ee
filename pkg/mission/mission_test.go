package mission

import (
	"math/rand"
	"testing"

	"github.com/opd-ai/unhaunter/pkg/config"
	"github.com/opd-ai/unhaunter/pkg/evidence"
	"github.com/opd-ai/unhaunter/pkg/geometry"
	"github.com/opd-ai/unhaunter/pkg/tile"
)

// fakeLoader builds a small enclosed room: a 5x5 ring of walls around
// a 3x3 floor, one ceiling light, one player spawn, one ghost spawn, and
// three furniture tiles (movable objects) so map validation passes.
type fakeLoader struct {
	behaviors map[uint32]tile.Behavior
}

func newFakeLoader() *fakeLoader {
	return &fakeLoader{
		behaviors: map[uint32]tile.Behavior{
			1: tile.NewBehavior(tile.ClassFloor, "", tile.OrientationNone, tile.StateNone),
			2: tile.NewBehavior(tile.ClassWall, "", tile.OrientationNone, tile.StateNone),
			3: tile.NewBehavior(tile.ClassCeilingLight, "", tile.OrientationNone, tile.StateOn),
			4: tile.NewBehavior(tile.ClassPlayerSpawn, "", tile.OrientationNone, tile.StateNone),
			5: tile.NewBehavior(tile.ClassGhostSpawn, "", tile.OrientationNone, tile.StateNone),
			6: tile.NewBehavior(tile.ClassFurniture, "", tile.OrientationNone, tile.StateNone),
			7: tile.NewBehavior(tile.ClassRoomDef, "room1", tile.OrientationNone, tile.StateNone),
		},
	}
}

func (f *fakeLoader) LoadMap(path string) (*RawMap, error) {
	var tiles []RawTile
	put := func(x, y int64, uid uint32) {
		tiles = append(tiles, RawTile{Pos: geometry.BoardPosition{X: x, Y: y, Z: 0}, Tileset: "t", UID: uid})
	}
	for x := int64(-2); x <= 2; x++ {
		for y := int64(-2); y <= 2; y++ {
			if x == -2 || x == 2 || y == -2 || y == 2 {
				put(x, y, 2) // wall ring
			} else {
				put(x, y, 1) // floor
			}
		}
	}
	put(0, 0, 3) // ceiling light at center
	put(-1, -1, 4)
	put(1, 1, 5)
	put(-1, 1, 6)
	put(0, 1, 6)
	put(1, -1, 6)
	put(0, 0, 7)
	return &RawMap{Layers: []RawTileLayer{{Name: "ground", Tiles: tiles}}}, nil
}

func (f *fakeLoader) ResolveBehavior(tileset string, uid uint32, flipX bool) (tile.Behavior, bool) {
	b, ok := f.behaviors[uid]
	return b, ok
}

type fakeAudio struct {
	plays        int
	houseVolume  float64
	streetVolume float64
	reverbCalls  int
}

func (f *fakeAudio) Play(samplePath string, volume float64, at *geometry.Position) { f.plays++ }
func (f *fakeAudio) SetHouseVolume(v float64)                                      { f.houseVolume = v }
func (f *fakeAudio) SetStreetVolume(v float64)                                     { f.streetVolume = v }
func (f *fakeAudio) SetReverb(decay, wetMix, dryMix float64)                       { f.reverbCalls++ }

type fakeRender struct {
	writes int
}

func (f *fakeRender) WriteTileMaterial(pos geometry.BoardPosition, mat TileMaterial) { f.writes++ }

func testDifficulty() *config.DifficultyProfile {
	return &config.DifficultyProfile{
		GhostSpeedMul:           1, GhostHuntAggressionMul: 1, AttractionToBreachMul: 1,
		GhostRageLikelihoodMul:  4, GhostHuntDurationMul: 1, GhostHuntCooldownMul: 0.1,
		HealthDrainRateMul:      1, ProvocationRadiusMul: 5, AttractiveInfluenceMul: 1,
		RepulsiveInfluenceMul:   1, DestinationSampleCount: 8, InteractionFrequencyMul: 1,
		PlayerSpeedMul:          1,
	}
}

func buildTestMission(t *testing.T) (*Mission, []MapWarning) {
	t.Helper()
	lm, warnings, err := LoadMap(newFakeLoader(), "synthetic")
	if err != nil {
		t.Fatalf("LoadMap: %v", err)
	}
	m := New(lm, testDifficulty(), evidence.BeanSidhe, &fakeAudio{}, &fakeRender{}, 42)
	if len(lm.PlayerSpawns) == 0 {
		t.Fatal("expected a player spawn")
	}
	m.AddPlayer("p1", lm.PlayerSpawns[0])
	return m, warnings
}

func TestLoadMapResolvesSpawnsAndRooms(t *testing.T) {
	m, warnings := buildTestMission(t)
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if len(m.loadedMap.GhostSpawns) != 1 {
		t.Fatalf("expected 1 ghost spawn, got %d", len(m.loadedMap.GhostSpawns))
	}
	if m.BreachPos != m.loadedMap.GhostSpawns[0] {
		t.Errorf("breach pos = %v, want %v", m.BreachPos, m.loadedMap.GhostSpawns[0])
	}
}

func TestMapValidationWarnsOnMissingSpawn(t *testing.T) {
	loader := newFakeLoader()
	delete(loader.behaviors, 4) // drop player spawn tile resolution
	_, warnings, err := LoadMap(loader, "synthetic")
	if err != nil {
		t.Fatalf("LoadMap: %v", err)
	}
	found := false
	for _, w := range warnings {
		if w.Message != "" {
			found = true
		}
	}
	if !found {
		t.Error("expected at least one warning with missing player spawn tile")
	}
}

func TestLightingRebuildsAtConstruction(t *testing.T) {
	m, _ := buildTestMission(t)
	center := geometry.BoardPosition{X: 0, Y: 0, Z: 0}
	lfd, ok := m.Fields.Light[center]
	if !ok {
		t.Fatal("expected light data at the lamp tile")
	}
	if lfd.Lux <= 0 {
		t.Errorf("lamp tile lux = %v, want > 0", lfd.Lux)
	}
}

func TestTickAdvancesVisibilityAndExposure(t *testing.T) {
	m, _ := buildTestMission(t)
	for i := 0; i < 5; i++ {
		m.Tick(1.0 / 30)
	}
	start := m.Players[0].State.Pos.ToBoardPosition()
	if v := m.Fields.Visibility[start]; v <= 0 {
		t.Errorf("player tile visibility = %v, want > 0", v)
	}
	if m.Fields.CurrentExposure <= 0 {
		t.Error("current exposure should remain positive")
	}
}

func TestTickKeepsIdleGhostSpawned(t *testing.T) {
	m, _ := buildTestMission(t)
	for i := 0; i < 60; i++ {
		m.Tick(1.0 / 30)
	}
	if m.Ghost.Despawned {
		t.Fatal("ghost should not despawn from idle wandering")
	}
}

func TestBanishmentDespawnsGhostAfterFade(t *testing.T) {
	m, _ := buildTestMission(t)
	m.Ghost.RepellentHits = 1001
	for i := 0; i < 400; i++ { // well past the 5s fade at 1/30 steps
		m.Tick(1.0 / 30)
		if m.Ghost.Despawned {
			break
		}
	}
	if !m.Ghost.Despawned {
		t.Error("expected ghost to despawn after banishment fade")
	}
}

func TestPlayerMovementRespectsCollision(t *testing.T) {
	m, _ := buildTestMission(t)
	p := m.Players[0]
	p.Controls.Left = true
	start := p.State.Pos
	for i := 0; i < 1000; i++ {
		MovePlayer(p, 1.0/30, m.Difficulty.PlayerSpeedMul, m.Fields)
	}
	if p.State.Pos.X < -2 {
		t.Errorf("player escaped the wall ring: pos=%v start=%v", p.State.Pos, start)
	}
}

func TestRandomGhostClassRespectsSubset(t *testing.T) {
	diff := testDifficulty()
	diff.GhostSetSubset = []string{evidence.Dullahan.Name()}
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		if got := RandomGhostClass(diff, r); got != evidence.Dullahan {
			t.Errorf("RandomGhostClass = %v, want Dullahan", got)
		}
	}
}
