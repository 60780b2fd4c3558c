package director

import (
	"math"
	"time"

	"github.com/ghosthunt/ghosthunt-server/internal/geom"
)

// Ramp holds the difficulty parameters that scale with elapsed time.
type Ramp struct {
	BaseMaxAlive      int
	IncreasePerMinute int
	IntervalAtStart   time.Duration
	IntervalAtMax     time.Duration
	RampMinutes       float64
}

// Duration is the elapsed time after which the ramp stays at its maximum.
func (r Ramp) Duration() time.Duration {
	return time.Duration(r.RampMinutes * float64(time.Minute))
}

// Progress maps elapsed time onto [0,1].
func (r Ramp) Progress(elapsed time.Duration) float64 {
	d := r.Duration()
	if d <= 0 {
		return 1
	}
	return geom.Clamp01(float64(elapsed) / float64(d))
}

// MaxAlive is the concurrent ghost limit at ramp progress t.
func (r Ramp) MaxAlive(t float64) int {
	t = geom.Clamp01(t)
	extra := math.RoundToEven(t * float64(r.IncreasePerMinute) * r.RampMinutes)
	return r.BaseMaxAlive + int(extra)
}

// Interval is the time between spawn attempts at ramp progress t.
// Multipliers below 1 count as 1.
func (r Ramp) Interval(t float64, multiplier int) time.Duration {
	base := geom.Lerp(float64(r.IntervalAtStart), float64(r.IntervalAtMax), t)
	return time.Duration(base / float64(max(1, multiplier)))
}
