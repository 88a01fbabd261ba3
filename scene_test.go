package garden

import (
	"errors"
	"testing"
)

func TestNewScene(t *testing.T) {
	s := NewScene()
	if s.root == nil {
		t.Fatal("root should not be nil")
	}
	if s.root.Name != "root" {
		t.Errorf("root.Name = %q, want %q", s.root.Name, "root")
	}
	if s.Animator() == nil || s.Animator().Len() != 0 {
		t.Error("scene should start with an empty animator")
	}
}

func TestSceneRoot(t *testing.T) {
	s := NewScene()
	if s.Root() != s.root {
		t.Error("Root() should return the internal root node")
	}
}

func TestSceneSetDebugMode(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	if !s.debug || !globalDebug {
		t.Error("debug should be true")
	}
	s.SetDebugMode(false)
	if s.debug || globalDebug {
		t.Error("debug should be false")
	}
}

func TestSceneAdvanceRunsAnimations(t *testing.T) {
	s := NewScene()
	n := NewNode("n")
	s.Root().AddChild(n)

	id := s.Run(MoveTo(n, 40, 80, MustAnimationSettings(0.5, 0.8, 0)), "move")
	s.Advance(0.25)
	if !s.Animator().Running(id) {
		t.Fatal("animation should still be running halfway")
	}
	if n.X == 0 {
		t.Error("X should have moved after the first advance")
	}
	s.Advance(0.25)
	if s.Animator().Running(id) {
		t.Error("animation should be retired")
	}
	if n.X != 40 || n.Y != 80 {
		t.Errorf("position = (%v, %v), want (40, 80)", n.X, n.Y)
	}
	assertNear(t, "world tx", n.worldTransform[4], 40)
	assertNear(t, "world ty", n.worldTransform[5], 80)
}

func TestSceneCancel(t *testing.T) {
	s := NewScene()
	n := NewNode("n")
	s.Root().AddChild(n)

	id := s.Run(MoveToX(n, 100, MustAnimationSettings(1, 1, 0)), "move")
	s.Advance(0.25)
	x := n.X
	if !s.Cancel(id) {
		t.Fatal("Cancel should report a running animation")
	}
	s.Advance(0.25)
	if n.X != x {
		t.Errorf("X moved after cancel: %v -> %v", x, n.X)
	}
}

func TestSceneSetEventSink(t *testing.T) {
	s := NewScene()
	sink := &recordingSink{}
	s.SetEventSink(sink)

	n := NewNode("n")
	s.Root().AddChild(n)
	s.Run(FadeOut(n, MustAnimationSettings(0.5, 1, 0)), "fade")
	s.Advance(0.5)

	got := sink.types()
	if len(got) != 2 || got[0] != AnimationStarted || got[1] != AnimationFinished {
		t.Errorf("event types = %v, want [started finished]", got)
	}
	if sink.events[1].Name != "fade" {
		t.Errorf("Name = %q, want %q", sink.events[1].Name, "fade")
	}
}

func TestSceneSpeedPausesSubtree(t *testing.T) {
	s := NewScene()
	group := NewNode("group")
	n := NewNode("n")
	s.Root().AddChild(group)
	group.AddChild(n)

	group.Speed = 0
	s.Run(MoveToX(n, 10, MustAnimationSettings(0.5, 1, 0)), "move")
	s.Advance(1)
	if n.X != 0 {
		t.Errorf("X = %v, want 0 while paused", n.X)
	}

	group.Speed = 1
	s.Advance(0.5)
	if n.X != 10 {
		t.Errorf("X = %v, want 10 after resuming", n.X)
	}
}

func TestSceneUpdateFuncError(t *testing.T) {
	s := NewScene()
	n := NewNode("n")
	s.Root().AddChild(n)
	s.Run(MoveToX(n, 10, MustAnimationSettings(0.5, 1, 0)), "move")

	errStop := errors.New("stop")
	s.SetUpdateFunc(func() error { return errStop })
	if err := s.Update(); !errors.Is(err, errStop) {
		t.Fatalf("Update err = %v, want %v", err, errStop)
	}
	if n.X != 0 {
		t.Error("animations should not advance when the update func fails")
	}
}

func TestSceneUpdateCallsUpdateFuncFirst(t *testing.T) {
	s := NewScene()
	n := NewNode("n")
	s.Root().AddChild(n)

	calls := 0
	s.SetUpdateFunc(func() error {
		if calls == 0 {
			s.Run(MoveToX(n, 10, MustAnimationSettings(10, 1, 0)), "move")
		}
		calls++
		return nil
	})
	if err := s.Update(); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if n.X == 0 {
		t.Error("animation started in the update func should tick in the same Update")
	}
}
