package garden

// AnimationID is an opaque handle to an animation run by an Animator.
// IDs are never reused.
type AnimationID uint64

// AnimationEventType identifies a change in an animation's lifecycle.
type AnimationEventType uint8

const (
	AnimationStarted   AnimationEventType = iota // the animation was handed to Run
	AnimationFinished                            // the animation reported done
	AnimationCancelled                           // Cancel removed the animation early
)

// AnimationEvent is delivered to an EventSink when an animation starts,
// finishes, or is cancelled.
type AnimationEvent struct {
	Type AnimationEventType
	ID   AnimationID
	Name string
}

// EventSink receives animation lifecycle events, typically to forward them
// into an ECS world.
type EventSink interface {
	EmitAnimationEvent(event AnimationEvent)
}

type animatorEntry struct {
	id        AnimationID
	name      string
	anim      Animation
	cancelled bool
}

// Animator owns live animations and advances them once per frame.
// Animations tick in the order they were started, so when several ChangeTo
// animations target one property the most recently started one wins.
type Animator struct {
	entries []animatorEntry
	index   map[AnimationID]int
	nextID  AnimationID
	sink    EventSink

	// updating is set while Update ticks animations. Cancel then only marks
	// the entry and compaction removes it.
	updating bool

	// finished holds the animations that completed in the most recent Update.
	finished []animatorEntry
	retired  []animatorEntry
}

// NewAnimator creates an empty animator.
func NewAnimator() *Animator {
	return &Animator{index: make(map[AnimationID]int)}
}

// SetEventSink sets the optional lifecycle event sink. nil disables events.
func (a *Animator) SetEventSink(sink EventSink) {
	a.sink = sink
}

// Run starts anim and returns its handle. name is carried in events.
// Panics if anim is nil.
func (a *Animator) Run(anim Animation, name string) AnimationID {
	if anim == nil {
		panic("garden: cannot run nil animation")
	}
	a.nextID++
	id := a.nextID
	a.index[id] = len(a.entries)
	a.entries = append(a.entries, animatorEntry{id: id, name: name, anim: anim})
	a.emit(AnimationStarted, id, name)
	return id
}

// Cancel stops the animation with the given handle where it is. Reports
// whether it was still running. An animation may cancel itself or another
// from inside its Update; it is not ticked again and its cancelled event is
// emitted once the frame's ticks are done.
func (a *Animator) Cancel(id AnimationID) bool {
	i, ok := a.index[id]
	if !ok {
		return false
	}
	delete(a.index, id)
	if a.updating {
		a.entries[i].cancelled = true
		return true
	}
	name := a.entries[i].name
	a.removeAt(i)
	a.emit(AnimationCancelled, id, name)
	return true
}

// CancelAll stops every running animation.
func (a *Animator) CancelAll() {
	if a.updating {
		for i := range a.entries {
			if !a.entries[i].cancelled {
				a.Cancel(a.entries[i].id)
			}
		}
		return
	}
	for len(a.entries) > 0 {
		a.Cancel(a.entries[0].id)
	}
}

// Running reports whether the animation with the given handle is live.
func (a *Animator) Running(id AnimationID) bool {
	_, ok := a.index[id]
	return ok
}

// Len returns the number of live animations.
func (a *Animator) Len() int {
	return len(a.entries)
}

// Update advances every live animation by dt seconds and retires the ones
// that finished. Animations started during Update first tick next frame.
func (a *Animator) Update(dt float32) {
	a.finished = a.finished[:0]
	a.retired = a.retired[:0]
	n := len(a.entries)
	a.updating = true
	for i := 0; i < n; i++ {
		if !a.entries[i].cancelled {
			a.entries[i].anim.Update(dt)
		}
	}
	a.updating = false

	// Compact in place, keeping start order.
	kept := 0
	for i, e := range a.entries {
		if e.cancelled {
			a.retired = append(a.retired, e)
			continue
		}
		if i < n && e.anim.IsDone() {
			delete(a.index, e.id)
			a.finished = append(a.finished, e)
			a.retired = append(a.retired, e)
			continue
		}
		a.entries[kept] = e
		a.index[e.id] = kept
		kept++
	}
	for i := kept; i < len(a.entries); i++ {
		a.entries[i] = animatorEntry{}
	}
	a.entries = a.entries[:kept]

	for _, e := range a.retired {
		if e.cancelled {
			a.emit(AnimationCancelled, e.id, e.name)
		} else {
			a.emit(AnimationFinished, e.id, e.name)
		}
	}
}

func (a *Animator) removeAt(i int) {
	copy(a.entries[i:], a.entries[i+1:])
	a.entries[len(a.entries)-1] = animatorEntry{}
	a.entries = a.entries[:len(a.entries)-1]
	for j := i; j < len(a.entries); j++ {
		a.index[a.entries[j].id] = j
	}
}

func (a *Animator) emit(typ AnimationEventType, id AnimationID, name string) {
	if a.sink != nil {
		a.sink.EmitAnimationEvent(AnimationEvent{Type: typ, ID: id, Name: name})
	}
}
