// Package geometry provides the board/world coordinate types shared by
// every simulation subsystem: integer tile positions, float world
// positions, facing vectors, and the isometric screen projection.
package geometry

import "math"

const epsilon = 1e-4

// Isometric basis vectors. Render-only; behavior never reads screen
// coordinates.
var (
	perspectiveX = [3]float64{12, -6, 0}
	perspectiveY = [3]float64{12, 6, 0}
	perspectiveZ = [3]float64{0, 132, 0.01}
)

// BoardPosition is the integer tile coordinate that uniquely identifies
// a tile in the field store.
type BoardPosition struct {
	X, Y, Z int64
}

// ToPosition returns the float world position at this tile's origin.
func (b BoardPosition) ToPosition() Position {
	return Position{X: float64(b.X), Y: float64(b.Y), Z: float64(b.Z)}
}

// Left, Right, Top, Bottom return the 4-neighbor tiles on the XY plane.
func (b BoardPosition) Left() BoardPosition  { return BoardPosition{b.X - 1, b.Y, b.Z} }
func (b BoardPosition) Right() BoardPosition { return BoardPosition{b.X + 1, b.Y, b.Z} }
func (b BoardPosition) Top() BoardPosition   { return BoardPosition{b.X, b.Y - 1, b.Z} }
func (b BoardPosition) Bottom() BoardPosition { return BoardPosition{b.X, b.Y + 1, b.Z} }

// XYNeighbors returns the (2*dist+1)^2 square neighborhood around b on
// the same Z plane, b included.
func (b BoardPosition) XYNeighbors(dist int) []BoardPosition {
	ret := make([]BoardPosition, 0, (2*dist+1)*(2*dist+1))
	for x := -dist; x <= dist; x++ {
		for y := -dist; y <= dist; y++ {
			ret = append(ret, BoardPosition{b.X + int64(x), b.Y + int64(y), b.Z})
		}
	}
	return ret
}

// ClampedXYNeighbors is XYNeighbors clamped to a maximum radius, for
// callers that must stay within a precomputed table's bounds (e.g.
// CachedBoardPos).
func (b BoardPosition) ClampedXYNeighbors(dist, maxDist int) []BoardPosition {
	if dist > maxDist {
		dist = maxDist
	}
	return b.XYNeighbors(dist)
}

// Distance is the Euclidean distance to another tile.
func (b BoardPosition) Distance(o BoardPosition) float64 {
	dx := float64(b.X - o.X)
	dy := float64(b.Y - o.Y)
	dz := float64(b.Z - o.Z)
	xy := math.Sqrt(dx*dx + dy*dy)
	return math.Sqrt(xy*xy + dz*dz)
}

// MiniHash returns a deterministic pseudo-random value in [0,1) derived
// from the tile coordinate, used for per-tile jitter that stays stable
// across frames without any stored state.
func (b BoardPosition) MiniHash() float64 {
	h := ((b.X+41)%61 + (b.Y*13+47)%67 + (b.Z*29+59)%79) % 109
	if h < 0 {
		h += 109
	}
	return float64(h) / 109.0
}

// Position is a float world-space location with an additive render-depth
// disambiguator (GlobalZ) that never affects gameplay.
type Position struct {
	X, Y, Z, GlobalZ float64
}

// ToBoardPosition rounds each component to its nearest tile.
func (p Position) ToBoardPosition() BoardPosition {
	return BoardPosition{
		X: int64(math.Round(p.X)),
		Y: int64(math.Round(p.Y)),
		Z: int64(math.Round(p.Z)),
	}
}

// ToScreenCoord projects the position through the fixed isometric basis,
// adding GlobalZ as a depth disambiguator. Render collaborators only.
func (p Position) ToScreenCoord() (x, y, z float64) {
	x = p.X*perspectiveX[0] + p.Y*perspectiveY[0] + p.Z*perspectiveZ[0]
	y = p.X*perspectiveX[1] + p.Y*perspectiveY[1] + p.Z*perspectiveZ[1]
	z = p.X*perspectiveX[2] + p.Y*perspectiveY[2] + p.Z*perspectiveZ[2] + p.GlobalZ
	return
}

// Equal compares componentwise with |delta| < 1e-4.
func (p Position) Equal(o Position) bool {
	return math.Abs(p.X-o.X) < epsilon &&
		math.Abs(p.Y-o.Y) < epsilon &&
		math.Abs(p.Z-o.Z) < epsilon
}

// Distance is the Euclidean distance between two positions.
func (p Position) Distance(o Position) float64 {
	dx := p.X - o.X
	dy := p.Y - o.Y
	dz := p.Z - o.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// DistanceTaxicab is the L1 distance between two positions.
func (p Position) DistanceTaxicab(o Position) float64 {
	return math.Abs(p.X-o.X) + math.Abs(p.Y-o.Y) + math.Abs(p.Z-o.Z)
}

// Delta returns the direction pointing from o to p.
func (p Position) Delta(o Position) Direction {
	return Direction{Dx: p.X - o.X, Dy: p.Y - o.Y, Dz: p.Z - o.Z}
}

// Add returns p translated by d, preserving GlobalZ.
func (p Position) Add(d Direction) Position {
	return Position{X: p.X + d.Dx, Y: p.Y + d.Dy, Z: p.Z + d.Dz, GlobalZ: p.GlobalZ}
}

// WithGlobalZ returns a copy of p with GlobalZ set.
func (p Position) WithGlobalZ(z float64) Position {
	p.GlobalZ = z
	return p
}

// Direction is a velocity or facing vector.
type Direction struct {
	Dx, Dy, Dz float64
}

// Magnitude is the Euclidean length of the direction.
func (d Direction) Magnitude() float64 {
	return math.Sqrt(d.Dx*d.Dx + d.Dy*d.Dy + d.Dz*d.Dz)
}

// Normalized returns a unit vector in the same direction. The zero
// vector normalizes to itself rather than producing NaN.
func (d Direction) Normalized() Direction {
	m := d.Magnitude() + 1e-9
	return Direction{Dx: d.Dx / m, Dy: d.Dy / m, Dz: d.Dz / m}
}

// Scale multiplies the direction by a scalar.
func (d Direction) Scale(k float64) Direction {
	return Direction{Dx: d.Dx * k, Dy: d.Dy * k, Dz: d.Dz * k}
}

// Div divides the direction by a scalar.
func (d Direction) Div(k float64) Direction {
	return Direction{Dx: d.Dx / k, Dy: d.Dy / k, Dz: d.Dz / k}
}

// Plus adds two directions.
func (d Direction) Plus(o Direction) Direction {
	return Direction{Dx: d.Dx + o.Dx, Dy: d.Dy + o.Dy, Dz: d.Dz + o.Dz}
}

// RotateByDir reinterprets p in a frame whose X axis is aligned with
// dir, used by the flashlight focus math to warp falloff along the
// aim direction.
func (p Position) RotateByDir(dir Direction) Position {
	dir = dir.Normalized()
	xAxis := dir
	yAxis := Direction{Dx: -dir.Dy, Dy: dir.Dx, Dz: dir.Dz}
	zAxis := Direction{Dx: -dir.Dy, Dy: dir.Dz, Dz: dir.Dx}
	return Position{
		X:       p.X*xAxis.Dx + p.Y*yAxis.Dx + p.Z*zAxis.Dx,
		Y:       p.X*xAxis.Dy + p.Y*yAxis.Dy + p.Z*zAxis.Dy,
		Z:       p.X*xAxis.Dz + p.Y*yAxis.Dz + p.Z*zAxis.Dz,
		GlobalZ: p.GlobalZ,
	}
}

// UnrotateByDir reverses RotateByDir.
func (p Position) UnrotateByDir(dir Direction) Position {
	inv := Direction{Dx: dir.Dx, Dy: -dir.Dy, Dz: -dir.Dz}
	return p.RotateByDir(inv)
}
