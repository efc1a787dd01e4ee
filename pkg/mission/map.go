package mission

import (
	"fmt"

	"github.com/opd-ai/unhaunter/pkg/geometry"
	"github.com/opd-ai/unhaunter/pkg/lighting"
	"github.com/opd-ai/unhaunter/pkg/tile"
	"github.com/opd-ai/unhaunter/pkg/worldstate"
)

// minMovableObjectsInRooms is the map-validation threshold: fewer
// than this many movable objects placed inside rooms is a warning, not
// a load failure.
const minMovableObjectsInRooms = 3

// LoadedMap is the resolved, behavior-tagged view of a map the mission
// layer builds everything else from: tile sources for the collision
// rebuild, light emitters for the lighting engine, spawn points, and
// room seeds for RoomDB flood-fill.
type LoadedMap struct {
	Behaviors    map[geometry.BoardPosition]tile.Behavior
	TileSources  []worldstate.TileSource
	Emitters     []lighting.Emitter
	PlayerSpawns []geometry.BoardPosition
	GhostSpawns  []geometry.BoardPosition
	VanEntries   []geometry.BoardPosition
	RoomSeeds    map[string][]geometry.BoardPosition // room name -> RoomDef seed tiles
	Doors        []geometry.BoardPosition
	MovableTiles []geometry.BoardPosition
}

// LoadMap resolves path through loader into a LoadedMap, plus any
// non-fatal map-authoring warnings: missing spawns or too few movable
// objects are warned, never errored.
func LoadMap(loader AssetLoader, path string) (*LoadedMap, []MapWarning, error) {
	raw, err := loader.LoadMap(path)
	if err != nil {
		return nil, nil, err
	}

	lm := &LoadedMap{
		Behaviors: make(map[geometry.BoardPosition]tile.Behavior),
		RoomSeeds: make(map[string][]geometry.BoardPosition),
	}

	for _, layer := range raw.Layers {
		for _, rt := range layer.Tiles {
			b, ok := loader.ResolveBehavior(rt.Tileset, rt.UID, rt.FlipX)
			if !ok {
				log.WithFields(map[string]interface{}{"tileset": rt.Tileset, "uid": rt.UID}).
					Warn("unresolvable tile-uid, skipping")
				continue
			}
			lm.Behaviors[rt.Pos] = b
			lm.addResolved(rt.Pos, b)
		}
	}

	warnings := validateMap(lm)
	for _, w := range warnings {
		log.Warn(w.Message)
	}
	return lm, warnings, nil
}

func (lm *LoadedMap) addResolved(pos geometry.BoardPosition, b tile.Behavior) {
	lm.TileSources = append(lm.TileSources, worldstate.TileSource{
		Pos:             pos,
		Walkable:        b.Movement.Walkable,
		PlayerCollision: b.Movement.PlayerCollision,
		GhostCollision:  b.Movement.GhostCollision,
		SeeThrough:      b.Light.SeeThrough,
	})

	// Every tile seeds the lighting sector, lit or not: opaque tiles
	// with zero lumens still need to be present so they cast shadows.
	lm.Emitters = append(lm.Emitters, lighting.EmitterFromBehavior(pos, b))

	switch b.Util {
	case tile.UtilPlayerSpawn:
		lm.PlayerSpawns = append(lm.PlayerSpawns, pos)
	case tile.UtilGhostSpawn:
		lm.GhostSpawns = append(lm.GhostSpawns, pos)
	case tile.UtilVan:
		lm.VanEntries = append(lm.VanEntries, pos)
	case tile.UtilRoomDef:
		room := b.Variant
		if room == "" {
			room = fmt.Sprintf("room_%d_%d", pos.X, pos.Y)
		}
		lm.RoomSeeds[room] = append(lm.RoomSeeds[room], pos)
	}

	if b.Class == tile.ClassDoor {
		lm.Doors = append(lm.Doors, pos)
	}
	if b.Object.Movable {
		lm.MovableTiles = append(lm.MovableTiles, pos)
	}
}

// validateMap checks the map-authoring minimums, returning a warning
// per violation rather than failing the load.
func validateMap(lm *LoadedMap) []MapWarning {
	var warnings []MapWarning
	if len(lm.PlayerSpawns) == 0 {
		warnings = append(warnings, MapWarning{Message: "map has no player spawn; mission will start broken"})
	}
	if len(lm.GhostSpawns) == 0 {
		warnings = append(warnings, MapWarning{Message: "map has no ghost spawn"})
	}
	if len(lm.MovableTiles) < minMovableObjectsInRooms {
		warnings = append(warnings, MapWarning{
			Message: fmt.Sprintf("map has only %d movable objects, want >= %d", len(lm.MovableTiles), minMovableObjectsInRooms),
		})
	}
	return warnings
}

// BuildRooms flood-fills RoomDB from every RoomDef seed found during
// loading, once the collision field has been rebuilt from lm's tile
// sources (room assignment walks the player_free graph).
func (lm *LoadedMap) BuildRooms(fields *worldstate.Fields) *worldstate.RoomDB {
	rooms := worldstate.NewRoomDB()
	for room, seeds := range lm.RoomSeeds {
		for _, seed := range seeds {
			rooms.AssignFloodFill(seed, room, fields)
		}
	}
	return rooms
}
