package main

import (
	"github.com/opd-ai/unhaunter/pkg/geometry"
	"github.com/opd-ai/unhaunter/pkg/mission"
	"github.com/opd-ai/unhaunter/pkg/tile"
)

// Tile-uids for the synthetic map's single tileset. A real AssetLoader
// resolves these against an imported TMX tileset (out of core scope);
// this one is a fixed lookup table standing in for that.
const (
	uidFloor = iota + 1
	uidWall
	uidDoor
	uidCeilingLight
	uidPlayerSpawn
	uidGhostSpawn
	uidFurniture
	uidRoomDefKitchen
	uidRoomDefBedroom
)

// syntheticLoader builds a single rectangular house: an outer wall
// ring, one interior partition wall with a door, a ceiling light per
// room, spawns, and a handful of furniture pieces, entirely in memory
// so cmd/mission can soak-test the simulation core without a real
// asset pipeline.
type syntheticLoader struct {
	behaviors map[uint32]tile.Behavior
}

func newSyntheticLoader() *syntheticLoader {
	return &syntheticLoader{
		behaviors: map[uint32]tile.Behavior{
			uidFloor:          tile.NewBehavior(tile.ClassFloor, "", tile.OrientationNone, tile.StateNone),
			uidWall:           tile.NewBehavior(tile.ClassWall, "", tile.OrientationNone, tile.StateNone),
			uidDoor:           tile.NewBehavior(tile.ClassDoor, "", tile.OrientationNone, tile.StateClosed),
			uidCeilingLight:   tile.NewBehavior(tile.ClassCeilingLight, "", tile.OrientationNone, tile.StateOn),
			uidPlayerSpawn:    tile.NewBehavior(tile.ClassPlayerSpawn, "", tile.OrientationNone, tile.StateNone),
			uidGhostSpawn:     tile.NewBehavior(tile.ClassGhostSpawn, "", tile.OrientationNone, tile.StateNone),
			uidFurniture:      tile.NewBehavior(tile.ClassFurniture, "", tile.OrientationNone, tile.StateNone),
			uidRoomDefKitchen: tile.NewBehavior(tile.ClassRoomDef, "kitchen", tile.OrientationNone, tile.StateNone),
			uidRoomDefBedroom: tile.NewBehavior(tile.ClassRoomDef, "bedroom", tile.OrientationNone, tile.StateNone),
		},
	}
}

func (l *syntheticLoader) ResolveBehavior(tileset string, uid uint32, flipX bool) (tile.Behavior, bool) {
	b, ok := l.behaviors[uid]
	return b, ok
}

// LoadMap ignores path and generates a fixed 15x9 two-room house:
// west room (kitchen, furnished, player spawn) and east room (bedroom,
// ghost's breach), joined by a door in the partition wall.
func (l *syntheticLoader) LoadMap(path string) (*mission.RawMap, error) {
	const w, h = 15, 9
	var tiles []mission.RawTile
	put := func(x, y int64, uid uint32) {
		tiles = append(tiles, mission.RawTile{
			Pos:     geometry.BoardPosition{X: x, Y: y, Z: 0},
			Tileset: "house",
			UID:     uid,
		})
	}

	partitionX := int64(w / 2)
	doorY := int64(h / 2)

	for x := int64(0); x < w; x++ {
		for y := int64(0); y < h; y++ {
			switch {
			case x == 0 || y == 0 || x == w-1 || y == h-1:
				put(x, y, uidWall)
			case x == partitionX:
				if y == doorY {
					put(x, y, uidDoor)
				} else {
					put(x, y, uidWall)
				}
			default:
				put(x, y, uidFloor)
			}
		}
	}

	put(w/4, 2, uidCeilingLight)
	put(w*3/4, 2, uidCeilingLight)
	put(w/4, h-2, uidPlayerSpawn)
	put(w*3/4, h-2, uidGhostSpawn)

	for _, fx := range []int64{3, 4, 5} {
		put(fx, h/2-1, uidFurniture)
	}

	put(partitionX/2, h/2, uidRoomDefKitchen)
	put(partitionX+(w-partitionX)/2, h/2, uidRoomDefBedroom)

	return &mission.RawMap{Layers: []mission.RawTileLayer{{Name: "ground", Tiles: tiles}}}, nil
}
