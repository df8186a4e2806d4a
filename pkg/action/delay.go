package action

// Delay finishes once the accumulated tick time reaches its duration. Time
// units are whatever the host loop feeds Update; the package never reads a
// clock. On the tick the delay completes, only the time needed to reach the
// duration is consumed and the rest is returned as leftover.
type Delay struct {
	Base
	duration float64
	elapsed  float64
	done     bool
}

// NewDelay builds a delay for the given non-negative duration.
func NewDelay(duration float64) *Delay {
	d := &Delay{duration: duration}
	d.Bind(d)
	return d
}

// IsDone reports whether the accumulated time has reached the duration.
func (d *Delay) IsDone() bool { return d.done }

// Elapsed returns the time consumed so far.
func (d *Delay) Elapsed() float64 { return d.elapsed }

// Update consumes up to the remaining duration from delta. While not Running
// it produces neither progress nor leftover.
func (d *Delay) Update(delta float64) float64 {
	if !d.IsRunning() {
		return 0
	}
	d.done = false
	used := delta
	if d.elapsed+used >= d.duration {
		used = d.duration - d.elapsed
		d.done = true
	}
	d.elapsed += used
	return d.Base.Update(delta - used)
}
