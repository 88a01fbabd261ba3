package garden

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene owns the node tree and the animator that drives it.
type Scene struct {
	root     *Node
	animator *Animator
	debug    bool

	// ClearColor fills the screen before drawing. The zero value leaves the
	// screen untouched.
	ClearColor Color

	updateFunc func() error
}

// NewScene creates a new scene with a pre-created root node.
func NewScene() *Scene {
	return &Scene{
		root:     NewNode("root"),
		animator: NewAnimator(),
	}
}

// Root returns the scene's root node.
func (s *Scene) Root() *Node {
	return s.root
}

// Animator returns the scene's animator.
func (s *Scene) Animator() *Animator {
	return s.animator
}

// Run starts anim on the scene's animator. It first ticks on the next Update.
func (s *Scene) Run(anim Animation, name string) AnimationID {
	return s.animator.Run(anim, name)
}

// Cancel stops a running animation. Reports whether it was still running.
func (s *Scene) Cancel(id AnimationID) bool {
	return s.animator.Cancel(id)
}

// SetEventSink forwards animation lifecycle events to sink.
func (s *Scene) SetEventSink(sink EventSink) {
	s.animator.SetEventSink(sink)
}

// SetUpdateFunc registers a callback run at the start of each Update, before
// animations advance. Run uses it to give demos a per-frame hook.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// Update advances the scene by one tick at the current TPS.
func (s *Scene) Update() error {
	if s.updateFunc != nil {
		if err := s.updateFunc(); err != nil {
			return err
		}
	}
	s.Advance(float32(1.0 / float64(ebiten.TPS())))
	return nil
}

// Advance advances all animations by dt seconds and refreshes world
// transforms so they reflect this tick's animated values.
func (s *Scene) Advance(dt float32) {
	var stats debugStats
	var t0 time.Time

	if s.debug {
		t0 = time.Now()
	}

	s.animator.Update(dt)

	if s.debug {
		stats.animateTime = time.Since(t0)
		t0 = time.Now()
	}

	updateWorldTransform(s.root, identityTransform, 1.0, false)

	if s.debug {
		stats.transformTime = time.Since(t0)
		stats.running = s.animator.Len()
		stats.finished = len(s.animator.finished)
		s.debugLog(stats)
	}
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// tree operations panic and per-frame animation stats are logged to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply.
var globalDebug bool
