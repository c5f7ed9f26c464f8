package equilibrium

// Bounds of one animation clock cycle.
const (
	AnimStart = 0.0
	AnimMax   = 1.0
)

// AnimClock is a cyclic animation parameter running from Start to Max and then restarting.
// Increment is the amount the clock moved during the last frame. Object rotation is
// proportional to it.
type AnimClock struct {
	Start     float64
	Max       float64
	Value     float64
	Increment float64
}

// NewAnimClock returns a clock at AnimStart with Increment preset to a 60Hz frame at speed.
func NewAnimClock(speed float64) AnimClock {
	return AnimClock{
		Start:     AnimStart,
		Max:       AnimMax,
		Value:     AnimStart,
		Increment: speed / 60,
	}
}

// Advance moves the clock forward by speed*elapsedMillis/1000 cycles and returns the new value.
// When the value exceeds Max it is set to Start exactly; the overflow is discarded.
// A negative speed runs the clock backwards and is never reset.
func (c *AnimClock) Advance(elapsedMillis int, speed float64) float64 {
	c.Increment = speed * float64(elapsedMillis) / 1000
	c.Value += c.Increment
	if c.Value > c.Max {
		c.Value = c.Start
	}
	return c.Value
}
