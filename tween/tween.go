package tween

// Accumulated delta times rarely add up to the exact duration
// (e.g. 150 steps of 1/60 for 2.5s), so completion is checked
// with a small tolerance.
const completionEpsilon = 1e-9

// A single interpolation from one value to another over a fixed
// duration in seconds.
type Tween struct {
	from     float64
	to       float64
	duration float64
	elapsed  float64
	ease     Ease
}

// Creates a new tween. A nil ease defaults to [Linear]. Durations
// <= 0 produce tweens that are already done.
func New(from, to, duration float64, ease Ease) Tween {
	if ease == nil {
		ease = Linear
	}
	return Tween{from: from, to: to, duration: duration, ease: ease}
}

// Advances the tween by dt seconds and returns whether it's done.
func (self *Tween) Advance(dt float64) bool {
	if self.Done() {
		return true
	}
	if dt > 0 {
		self.elapsed += dt
	}
	return self.Done()
}

// Returns whether the tween has reached its target.
func (self *Tween) Done() bool {
	return self.elapsed >= self.duration-completionEpsilon
}

// Returns the linear progress of the tween in [0, 1].
func (self *Tween) Progress() float64 {
	if self.Done() {
		return 1
	}
	return clamp01(self.elapsed / self.duration)
}

// Returns the current eased value. Once done, the target value
// is returned exactly.
func (self *Tween) Value() float64 {
	if self.Done() {
		return self.to
	}
	t := clamp01(self.ease(self.Progress()))
	return self.from + (self.to-self.from)*t
}

// Returns the target value.
func (self *Tween) Target() float64 {
	return self.to
}
