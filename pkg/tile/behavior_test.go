package tile

import "testing"

func TestClassFromTextKnown(t *testing.T) {
	if got := ClassFromText("Wall"); got != ClassWall {
		t.Errorf("ClassFromText(Wall) = %v, want ClassWall", got)
	}
}

func TestClassFromTextUnknownDefaultsNone(t *testing.T) {
	if got := ClassFromText("Nonsense"); got != ClassNone {
		t.Errorf("ClassFromText(Nonsense) = %v, want ClassNone", got)
	}
}

func TestWallBlocksMovementAndLight(t *testing.T) {
	b := NewBehavior(ClassWall, "", OrientationNone, StateNone)
	if b.Movement.Walkable {
		t.Error("wall should not be walkable")
	}
	if !b.Movement.PlayerCollision || !b.Movement.GhostCollision {
		t.Error("wall should collide with both player and ghost")
	}
	if b.TransmissivityFactor() != 0.0 {
		t.Errorf("wall transmissivity = %v, want 0", b.TransmissivityFactor())
	}
}

func TestFloorIsWalkableAndTransparent(t *testing.T) {
	b := NewBehavior(ClassFloor, "", OrientationNone, StateNone)
	if !b.Movement.Walkable {
		t.Error("floor should be walkable")
	}
	if b.TransmissivityFactor() != 1.0 {
		t.Errorf("floor transmissivity = %v, want 1", b.TransmissivityFactor())
	}
}

func TestWindowSeeThroughButBlocksPlayer(t *testing.T) {
	b := NewBehavior(ClassWindow, "", OrientationNone, StateNone)
	if !b.Light.SeeThrough {
		t.Error("window should be see-through")
	}
	if !b.Movement.PlayerCollision {
		t.Error("window should still collide with the player")
	}
}

func TestLampEmitsLight(t *testing.T) {
	for _, c := range []Class{ClassWallLamp, ClassFloorLamp, ClassTableLamp, ClassCeilingLight} {
		b := NewBehavior(c, "", OrientationNone, StateNone)
		if !b.Light.EmitsLight {
			t.Errorf("%v should emit light", c)
		}
		if b.EmissivityLumens() <= 0 {
			t.Errorf("%v emissivity = %v, want > 0", c, b.EmissivityLumens())
		}
	}
}

func TestUtilTagsForSpawnsAndRoomDef(t *testing.T) {
	cases := map[Class]Util{
		ClassPlayerSpawn: UtilPlayerSpawn,
		ClassGhostSpawn:  UtilGhostSpawn,
		ClassRoomDef:     UtilRoomDef,
		ClassVanEntry:    UtilVan,
	}
	for class, want := range cases {
		b := NewBehavior(class, "", OrientationNone, StateNone)
		if b.Util != want {
			t.Errorf("%v.Util = %v, want %v", class, b.Util, want)
		}
		if !b.Display.Disable {
			t.Errorf("%v should be display-disabled", class)
		}
	}
}

func TestFurnitureIsMovableHidingSpot(t *testing.T) {
	b := NewBehavior(ClassFurniture, "", OrientationNone, StateNone)
	if !b.Object.Movable {
		t.Error("furniture should be movable")
	}
	if !b.Object.HidingSpot {
		t.Error("furniture should be a hiding spot")
	}
}

func TestWallIsNotMovable(t *testing.T) {
	b := NewBehavior(ClassWall, "", OrientationNone, StateNone)
	if b.Object.Movable || b.Object.HidingSpot {
		t.Error("wall should not be movable or a hiding spot")
	}
}

func TestSpectralContributionAdd(t *testing.T) {
	a := SpectralContribution{Visible: 1, Red: 2, Infrared: 3, Ultraviolet: 4}
	b := SpectralContribution{Visible: 10, Red: 20, Infrared: 30, Ultraviolet: 40}
	sum := a.Add(b)
	want := SpectralContribution{Visible: 11, Red: 22, Infrared: 33, Ultraviolet: 44}
	if sum != want {
		t.Errorf("Add = %+v, want %+v", sum, want)
	}
}

func TestOrientationAndStateParsing(t *testing.T) {
	if OrientationFromText("Both") != OrientationBoth {
		t.Error("expected OrientationBoth")
	}
	if OrientationFromText("garbage") != OrientationNone {
		t.Error("expected OrientationNone default")
	}
	if StateFromText("Open") != StateOpen {
		t.Error("expected StateOpen")
	}
	if StateFromText("garbage") != StateNone {
		t.Error("expected StateNone default")
	}
}
