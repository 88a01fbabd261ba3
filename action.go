package garden

// AnimationSettings pairs a duration with the spring that shapes it.
type AnimationSettings struct {
	Duration float64 // seconds
	Spring   SpringProperties
}

// NewAnimationSettings validates duration and spring parameters.
func NewAnimationSettings(duration, dampingRatio, initialVelocity float64) (AnimationSettings, error) {
	if !(duration > 0) {
		return AnimationSettings{}, &InvalidParameterError{
			Param:  "duration",
			Value:  duration,
			Reason: "must be greater than zero",
		}
	}
	p, err := NewSpringProperties(dampingRatio, initialVelocity)
	if err != nil {
		return AnimationSettings{}, err
	}
	return AnimationSettings{Duration: duration, Spring: p}, nil
}

// MustAnimationSettings is like NewAnimationSettings but panics on invalid
// parameters.
func MustAnimationSettings(duration, dampingRatio, initialVelocity float64) AnimationSettings {
	s, err := NewAnimationSettings(duration, dampingRatio, initialVelocity)
	if err != nil {
		panic(err)
	}
	return s
}

// Animation is anything the Animator can advance once per frame.
type Animation interface {
	Update(dt float32)
	IsDone() bool
}

// Action animates one scalar with a Transformation shaped by a timing curve.
// Create one with Animate or the node helpers and either call Update(dt)
// each frame or hand it to a Scene. An Action runs once; build a new one to
// replay it.
type Action struct {
	acc      Accessor
	composer *Composer
	timing   TimingFunc
	duration float64
	elapsed  float64
	target   *Node

	// speedTarget is set when the action animates target.Speed itself, so
	// only the ancestors' speed paces it.
	speedTarget bool

	// blend eases spring curves toward 1 near the end to hide residual
	// jitter. Other curves run as given.
	blend bool

	Done bool
}

// Animate builds the per-frame update that moves the scalar behind acc by tr
// over settings.Duration along the spring in settings.
// Panics if settings.Duration is not positive.
func Animate(acc Accessor, tr Transformation, settings AnimationSettings) *Action {
	a := AnimateWith(acc, tr, settings.Duration, SpringTiming(settings.Spring))
	a.blend = true
	return a
}

// AnimateWith is like Animate but shapes the animation with any timing
// curve, such as EaseTiming(ease.OutElastic). The curve is applied as is,
// without the end blend Animate gives springs; fraction >= 1 still lands
// the target on its final state.
func AnimateWith(acc Accessor, tr Transformation, duration float64, timing TimingFunc) *Action {
	if !(duration > 0) {
		panic(&InvalidParameterError{Param: "duration", Value: duration, Reason: "must be greater than zero"})
	}
	return &Action{
		acc:      acc,
		composer: NewComposer(tr),
		timing:   timing,
		duration: duration,
	}
}

// Step applies the animation at fraction of its duration. The host calls it
// once per frame with strictly increasing fractions; fraction >= 1 lands the
// target on its final state.
func (a *Action) Step(fraction float64) {
	progress := a.timing(fraction)
	if a.blend {
		progress = Blend(progress, fraction)
	} else if fraction >= 1 {
		progress = 1
	}
	a.composer.Apply(a.acc, progress)
}

// Update advances the action by dt seconds, scaled by the target node's
// effective speed. If the target node has been disposed, Done is set and no
// writes occur.
func (a *Action) Update(dt float32) {
	if a.Done {
		return
	}
	if a.target != nil && a.target.IsDisposed() {
		a.Done = true
		return
	}

	step := float64(dt)
	if a.target != nil {
		if a.speedTarget {
			if a.target.Parent != nil {
				step *= a.target.Parent.EffectiveSpeed()
			}
		} else {
			step *= a.target.EffectiveSpeed()
		}
	}
	if step <= 0 {
		return
	}
	a.elapsed += step
	if a.elapsed >= a.duration {
		a.elapsed = a.duration
		a.Step(1)
		a.Done = true
		return
	}
	a.Step(a.elapsed / a.duration)
}

// IsDone reports whether the action has finished.
func (a *Action) IsDone() bool {
	return a.Done
}

// Elapsed returns how many seconds of the action have run.
func (a *Action) Elapsed() float64 {
	return a.elapsed
}

// Duration returns the action's duration in seconds.
func (a *Action) Duration() float64 {
	return a.duration
}

// ActionGroup runs animations side by side and is done when all of them are.
type ActionGroup struct {
	anims []Animation
	Done  bool
}

// Group combines anims into one animation.
func Group(anims ...Animation) *ActionGroup {
	return &ActionGroup{anims: anims}
}

// Update advances every unfinished member by dt.
func (g *ActionGroup) Update(dt float32) {
	if g.Done {
		return
	}
	allDone := true
	for _, a := range g.anims {
		a.Update(dt)
		if !a.IsDone() {
			allDone = false
		}
	}
	g.Done = allDone
}

// IsDone reports whether every member has finished.
func (g *ActionGroup) IsDone() bool {
	return g.Done
}

// Len returns the number of members.
func (g *ActionGroup) Len() int {
	return len(g.anims)
}
