package equilibrium

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween/ease"
)

var easings = map[string]ease.TweenFunc{
	"linear":    ease.Linear,
	"inQuad":    ease.InQuad,
	"outQuad":   ease.OutQuad,
	"inOutQuad": ease.InOutQuad,
	"inOutSine": ease.InOutSine,
	"inOutCirc": ease.InOutCirc,
}

// EaseNames returns the accepted values of [Config.ColorEase] in sorted order.
func EaseNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ClockColor returns the object color for a clock value in [AnimStart, AnimMax).
// Red fades out as blue fades in over one clock cycle, shaped by fn.
// With [ease.Linear] the color is (1-clock, 0, clock) to float32 precision.
func ClockColor(clock float64, fn ease.TweenFunc) mgl64.Vec3 {
	t := float32(clock - AnimStart)
	d := float32(AnimMax - AnimStart)
	return mgl64.Vec3{
		float64(fn(t, 1, -1, d)),
		0,
		float64(fn(t, 0, 1, d)),
	}
}
