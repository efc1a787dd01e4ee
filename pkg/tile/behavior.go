// Package tile defines the closed-set tile behavior vocabulary the
// asset loader (external collaborator, out of core scope) resolves
// every tile-uid into. Parsing from text uses a single mapping with a
// default on unknown input.
package tile

// Class is a tile's primary behavioral role.
type Class string

const (
	ClassFloor        Class = "Floor"
	ClassWall         Class = "Wall"
	ClassDoor         Class = "Door"
	ClassSwitch       Class = "Switch"
	ClassRoomSwitch   Class = "RoomSwitch"
	ClassBreaker      Class = "Breaker"
	ClassDoorway      Class = "Doorway"
	ClassDecor        Class = "Decor"
	ClassItem         Class = "Item"
	ClassFurniture    Class = "Furniture"
	ClassPlayerSpawn  Class = "PlayerSpawn"
	ClassGhostSpawn   Class = "GhostSpawn"
	ClassVanEntry     Class = "VanEntry"
	ClassRoomDef      Class = "RoomDef"
	ClassWallLamp     Class = "WallLamp"
	ClassFloorLamp    Class = "FloorLamp"
	ClassTableLamp    Class = "TableLamp"
	ClassWallDecor    Class = "WallDecor"
	ClassCeilingLight Class = "CeilingLight"
	ClassAppliance    Class = "Appliance"
	ClassVan          Class = "Van"
	ClassWindow       Class = "Window"
	ClassNone         Class = "None"
)

// ClassFromText parses a class name, defaulting to ClassNone on
// anything unrecognized rather than failing the map load.
func ClassFromText(s string) Class {
	switch Class(s) {
	case ClassFloor, ClassWall, ClassDoor, ClassSwitch, ClassRoomSwitch, ClassBreaker,
		ClassDoorway, ClassDecor, ClassItem, ClassFurniture, ClassPlayerSpawn, ClassGhostSpawn,
		ClassVanEntry, ClassRoomDef, ClassWallLamp, ClassFloorLamp, ClassTableLamp, ClassWallDecor,
		ClassCeilingLight, ClassAppliance, ClassVan, ClassWindow:
		return Class(s)
	default:
		return ClassNone
	}
}

// Orientation is the axis a sprite faces.
type Orientation string

const (
	OrientationX    Orientation = "X"
	OrientationY    Orientation = "Y"
	OrientationBoth Orientation = "Both"
	OrientationNone Orientation = "None"
)

// OrientationFromText parses an orientation, defaulting to
// OrientationNone.
func OrientationFromText(s string) Orientation {
	switch Orientation(s) {
	case OrientationX, OrientationY, OrientationBoth:
		return Orientation(s)
	default:
		return OrientationNone
	}
}

// State is a tile's current or initial display/interaction state.
type State string

const (
	StateOn      State = "On"
	StateOff     State = "Off"
	StateOpen    State = "Open"
	StateClosed  State = "Closed"
	StateFull    State = "Full"
	StatePartial State = "Partial"
	StateMinimum State = "Minimum"
	StateNone    State = "None"
)

// StateFromText parses a state, defaulting to StateNone.
func StateFromText(s string) State {
	switch State(s) {
	case StateOn, StateOff, StateOpen, StateClosed, StateFull, StatePartial, StateMinimum:
		return State(s)
	default:
		return StateNone
	}
}

// Util tags tiles with a utility role the mission orchestrator queries
// directly instead of scanning every tile's full behavior.
type Util string

const (
	UtilPlayerSpawn Util = "PlayerSpawn"
	UtilGhostSpawn  Util = "GhostSpawn"
	UtilRoomDef     Util = "RoomDef"
	UtilVan         Util = "Van"
	UtilNone        Util = "None"
)

// Movement describes how a tile participates in collision.
type Movement struct {
	Walkable        bool
	PlayerCollision bool
	GhostCollision  bool
}

// Light describes how a tile participates in the light/shadow engine.
type Light struct {
	Opaque            bool
	EmitsLight        bool
	SeeThrough        bool
	TransmissivityPct float64 // 0..1, fraction of light the tile lets through
	EmissivityLumens  float64 // additive lux contribution
	Additional        SpectralContribution
}

// SpectralContribution is the per-channel light a tile (or dynamic
// emitter) contributes beyond plain visible lux, consumed by evidence
// gear (out of core scope) to derive EMF/UV/IR readings.
type SpectralContribution struct {
	Visible, Red, Infrared, Ultraviolet float64
}

// Add sums two spectral contributions.
func (s SpectralContribution) Add(o SpectralContribution) SpectralContribution {
	return SpectralContribution{
		Visible:     s.Visible + o.Visible,
		Red:         s.Red + o.Red,
		Infrared:    s.Infrared + o.Infrared,
		Ultraviolet: s.Ultraviolet + o.Ultraviolet,
	}
}

// Display carries render-only properties; the core writes GlobalZ, a
// render sink reads it.
type Display struct {
	Disable bool
	GlobalZ float64
}

// Object describes a tile's participation in the object-influence
// subsystem and player hiding mechanic: Movable tags it as eligible to
// carry a GhostInfluence marker, HidingSpot tags it as a destination
// Hiding.SpotID can reference.
type Object struct {
	Movable    bool
	HidingSpot bool
}

// Behavior is the fully resolved property bag a tile-uid maps to via
// the tileset database (an asset-loader collaborator, out of scope
// here). Class.SetProperties populates it with its tabulated per-class
// defaults.
type Behavior struct {
	Class       Class
	Variant     string
	Orientation Orientation
	State       State

	Movement Movement
	Light    Light
	Util     Util
	Display  Display
	Object   Object
}

// NewBehavior builds a Behavior from a resolved class, applying its
// tabulated property defaults.
func NewBehavior(class Class, variant string, orientation Orientation, state State) Behavior {
	b := Behavior{Class: class, Variant: variant, Orientation: orientation, State: state}
	class.SetProperties(&b)
	return b
}

// SetProperties fills in b's movement/light/util/display properties
// from the tabulated defaults for this class, mirroring behavior.rs's
// Class::set_properties.
func (c Class) SetProperties(b *Behavior) {
	switch c {
	case ClassFloor:
		b.Movement.Walkable = true
		b.Display.GlobalZ = -0.00025
	case ClassWall:
		b.Movement.PlayerCollision = true
		b.Movement.GhostCollision = true
		b.Light.Opaque = true
		b.Display.GlobalZ = -0.00005
	case ClassDoor:
		b.Display.GlobalZ = 0.000015
	case ClassSwitch:
		b.Display.GlobalZ = 0.00004
	case ClassRoomSwitch:
		b.Display.GlobalZ = 0.00004
	case ClassBreaker:
		b.Display.GlobalZ = 0.00004
	case ClassDoorway:
		b.Display.GlobalZ = -0.00005
	case ClassDecor:
		b.Display.GlobalZ = 0.000065
	case ClassItem:
		b.Display.GlobalZ = 0.000065
		b.Object.Movable = true
	case ClassFurniture:
		b.Display.GlobalZ = 0.00005
		b.Object.Movable = true
		b.Object.HidingSpot = true
	case ClassPlayerSpawn:
		b.Display.GlobalZ = -1.0
		b.Display.Disable = true
		b.Util = UtilPlayerSpawn
	case ClassGhostSpawn:
		b.Display.GlobalZ = -1.0
		b.Display.Disable = true
		b.Util = UtilGhostSpawn
	case ClassVanEntry:
		b.Display.GlobalZ = -1.0
		b.Display.Disable = true
		b.Util = UtilVan
	case ClassRoomDef:
		b.Display.GlobalZ = -1.0
		b.Display.Disable = true
		b.Util = UtilRoomDef
	case ClassWallLamp:
		b.Display.GlobalZ = -0.00004
		b.Light.EmitsLight = true
	case ClassFloorLamp:
		b.Display.GlobalZ = 0.00005
		b.Light.EmitsLight = true
	case ClassTableLamp:
		b.Display.GlobalZ = 0.00005
		b.Light.EmitsLight = true
	case ClassWallDecor:
		b.Display.GlobalZ = -0.00004
	case ClassCeilingLight:
		b.Display.GlobalZ = -1.0
		b.Display.Disable = true
		b.Light.EmitsLight = true
	case ClassAppliance:
		b.Display.GlobalZ = 0.00007
		b.Object.Movable = true
	case ClassVan:
		b.Display.GlobalZ = 0.0002
	case ClassWindow:
		b.Display.GlobalZ = -0.00004
		b.Movement.PlayerCollision = true
		b.Light.SeeThrough = true
	case ClassNone:
	}
}

// TransmissivityFactor returns the tile's light-transmission multiplier
// in [0,1]: fully opaque classes transmit nothing, windows and open
// space transmit everything.
func (b Behavior) TransmissivityFactor() float64 {
	if b.Light.Opaque {
		return 0.0
	}
	if b.Light.TransmissivityPct > 0 {
		return b.Light.TransmissivityPct
	}
	return 1.0
}

// EmissivityLumens returns the tile's additive lux contribution.
func (b Behavior) EmissivityLumens() float64 {
	if b.Light.EmitsLight && b.Light.EmissivityLumens == 0 {
		return 100.0
	}
	return b.Light.EmissivityLumens
}

// AdditionalData returns the tile's per-channel spectral contribution.
func (b Behavior) AdditionalData() SpectralContribution {
	return b.Light.Additional
}
