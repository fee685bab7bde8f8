package core

// Smoothstep is the cubic ease 3t²-2t³. Input is clamped to [0, 1], so the
// curve has zero velocity at both ends.
func Smoothstep(t float64) float64 {
	t = ClampF(t, 0, 1)
	return t * t * (3 - 2*t)
}

// Animator interpolates a scalar from one value to another over a fixed
// duration using Smoothstep. It knows nothing about what the value means.
type Animator struct {
	from     float64
	to       float64
	elapsed  float64
	duration float64
	value    float64
	active   bool
}

// Start begins a new animation, discarding any animation in progress.
func (a *Animator) Start(from, to, duration float64) {
	a.from = from
	a.to = to
	a.elapsed = 0
	a.duration = duration
	a.value = from
	a.active = true
}

// Advance adds dt to the elapsed time and returns the eased value along with
// whether the animation has completed. A finished animator keeps returning
// the exact target, and a non-positive duration finishes on the first call.
func (a *Animator) Advance(dt float64) (float64, bool) {
	if !a.active {
		return a.value, true
	}

	if dt > 0 {
		a.elapsed += dt
	}

	t := 1.0
	if a.duration > 0 {
		t = ClampF(a.elapsed/a.duration, 0, 1)
	}

	if t >= 1 {
		a.value = a.to
		a.active = false
		return a.value, true
	}

	a.value = a.from + (a.to-a.from)*Smoothstep(t)
	return a.value, false
}

// Value returns the most recently computed value.
func (a *Animator) Value() float64 {
	return a.value
}

// Target returns the value the animation ends at.
func (a *Animator) Target() float64 {
	return a.to
}

// Active reports whether an animation is in progress.
func (a *Animator) Active() bool {
	return a.active
}

// Done reports whether the animator is idle.
func (a *Animator) Done() bool {
	return !a.active
}

// Reset stops the animator and parks it at v.
func (a *Animator) Reset(v float64) {
	*a = Animator{from: v, to: v, value: v}
}
