package geometry

import "math"

// CachedBoardPos precomputes, for every offset in [-32,32]^2, the
// Euclidean distance, an integer angle bin in [0, TauSteps), and the
// (min,max) angle range spanning that offset's four 0.5-tile corners.
// It is built once and read-only thereafter; callers must keep queries
// within the |delta| <= center window the table was built for.
type CachedBoardPos struct {
	dist       [size][size]float64
	angle      [size][size]int
	angleRange [size][size][2]int
}

const (
	center = 32
	size   = center*2 + 1
	// TauSteps is the number of discrete angle bins covering a full
	// circle (384 = 48*8).
	TauSteps = 48 * 8
)

// NewCachedBoardPos builds the table.
func NewCachedBoardPos() *CachedBoardPos {
	c := &CachedBoardPos{}
	c.computeAngle()
	c.computeDist()
	return c
}

func (c *CachedBoardPos) computeDist() {
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			fx := float64(x - center)
			fy := float64(y - center)
			c.dist[x][y] = math.Hypot(fx, fy)
		}
	}
}

func angleOf(x, y float64) int {
	dist := math.Hypot(x, y)
	if dist == 0 {
		return 0
	}
	nx := x / dist
	ny := y / dist
	angle := math.Acos(nx) * sign(ny) * TauSteps / (2 * math.Pi)
	a := int(math.Round(angle)) % TauSteps
	if a < 0 {
		a += TauSteps
	}
	return a
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

func (c *CachedBoardPos) computeAngle() {
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			fx := float64(x - center)
			fy := float64(y - center)
			c.angle[x][y] = angleOf(fx, fy)
		}
	}
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			if x == center && y == center {
				c.angleRange[x][y] = [2]int{0, 0}
				continue
			}
			orig := c.angle[x][y]
			fx := float64(x - center)
			fy := float64(y - center)
			minAngle, maxAngle := 0, 0
			for _, x1 := range []float64{fx - 0.5, fx + 0.5} {
				for _, y1 := range []float64{fy - 0.5, fy + 0.5} {
					a := angleOf(x1, y1)
					d := a - orig
					if d > TauSteps/2 {
						d -= TauSteps
					} else if d < -TauSteps/2 {
						d += TauSteps
					}
					if d < minAngle {
						minAngle = d
					}
					if d > maxAngle {
						maxAngle = d
					}
				}
			}
			c.angleRange[x][y] = [2]int{minAngle, maxAngle}
		}
	}
}

func idx(s, d BoardPosition) (int, int) {
	return int(d.X-s.X) + center, int(d.Y-s.Y) + center
}

// Dist returns the precomputed distance from s to d. Caller guarantees
// |delta| <= 32 on each axis.
func (c *CachedBoardPos) Dist(s, d BoardPosition) float64 {
	x, y := idx(s, d)
	return c.dist[x][y]
}

// Angle returns the precomputed angle bin from s to d.
func (c *CachedBoardPos) Angle(s, d BoardPosition) int {
	x, y := idx(s, d)
	return c.angle[x][y]
}

// AngleRange returns the precomputed (min,max) angle-range pair for the
// offset from s to d.
func (c *CachedBoardPos) AngleRange(s, d BoardPosition) (int, int) {
	x, y := idx(s, d)
	r := c.angleRange[x][y]
	return r[0], r[1]
}

// MaxRadius is the largest |delta| on either axis that Dist/Angle/
// AngleRange can answer from the table.
const MaxRadius = center
