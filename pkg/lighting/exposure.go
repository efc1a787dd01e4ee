package lighting

import (
	"math"

	"github.com/opd-ai/unhaunter/pkg/geometry"
	"github.com/opd-ai/unhaunter/pkg/worldstate"
)

// exposureGamma and exposureScale tune how strongly bright outliers in
// the sampled neighborhood pull the target exposure; tuned to keep a
// single bright lamp from blowing out an otherwise dark room.
const (
	exposureGamma = 2.0
	exposureScale = 1.0
)

// CursorExposure samples a 3x3 neighborhood around the active player
// and derives the target exposure value the adaptation law chases.
// flashlightBias lets a held light nudge the target brighter without
// baking itself into light_field.
func CursorExposure(fields *worldstate.Fields, player geometry.BoardPosition, flashlightBias float64) float64 {
	var sumG, sumGm1 float64
	for _, p := range player.XYNeighbors(1) {
		lfd, ok := fields.Light[p]
		lux := 0.0
		if ok {
			lux = lfd.Lux
		}
		if lux <= 0 {
			continue
		}
		sumG += math.Pow(lux, exposureGamma)
		sumGm1 += math.Pow(lux, exposureGamma-1)
	}
	if sumGm1 == 0 {
		return flashlightBias
	}
	return sumG/sumGm1*exposureScale + flashlightBias
}

// AdaptExposure advances the exposure adaptation law by one tick
// toward cursorExp, per the recurrence: the acceleration term is
// smoothed on a 1000:1 ratio against the new error signal, clamped to
// +/-5% per tick, then damped by a 0.99 power before being applied to
// the running exposure.
func AdaptExposure(fields *worldstate.Fields, cursorExp float64) {
	if fields.CurrentExposure <= 0 {
		fields.CurrentExposure = 1.0
	}
	if fields.CurrentExposureAccel <= 0 {
		fields.CurrentExposureAccel = 1.0
	}

	expF := cursorExp / fields.CurrentExposure / math.Pow(fields.CurrentExposureAccel, 30)
	accel := (fields.CurrentExposureAccel*1000 + expF*0.1) / 1000.1
	accel = clamp(accel, 1/1.05, 1.05)
	accel = math.Pow(accel, 0.99)

	fields.CurrentExposureAccel = accel
	fields.CurrentExposure *= accel
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
