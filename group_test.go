package tween

import (
	"errors"
	"testing"

	"github.com/phanxgames/tween/ease"
)

func TestGroupDisposeStopsTweensSilently(t *testing.T) {
	s := newTestScheduler()
	g := s.NewGroup("enemy")
	tw, _ := New(s, 0.0, 1.0, 1, ease.Linear, WithGroup[float64](g))
	var rec recorder
	rec.attach(tw)
	_ = tw.Play()
	s.Update(0.1)

	before := s.Stats().Contexts
	g.Dispose()

	if tw.State() != Stopped {
		t.Errorf("state = %s, want stopped", tw.State())
	}
	if rec.stops != 0 || len(rec.completes) != 0 {
		t.Errorf("teardown fired callbacks: stops=%d completes=%d", rec.stops, len(rec.completes))
	}
	if got := s.Stats().Contexts; got != before-1 {
		t.Errorf("contexts = %d, want %d", got, before-1)
	}
	n := len(rec.updates)
	s.Update(0.1)
	if len(rec.updates) != n {
		t.Error("disposed tween still updating")
	}
	if !g.IsDisposed() || g.NumContexts() != 0 {
		t.Errorf("disposed=%v contexts=%d", g.IsDisposed(), g.NumContexts())
	}
	if s.Root().NumChildren() != 0 {
		t.Errorf("root children = %d, want 0", s.Root().NumChildren())
	}
}

func TestGroupPlayAfterDispose(t *testing.T) {
	s := newTestScheduler()
	g := s.NewGroup("gone")
	tw, _ := New(s, 0.0, 1.0, 1, ease.Linear, WithGroup[float64](g))
	g.Dispose()
	if err := tw.Play(); !errors.Is(err, ErrGroupDisposed) {
		t.Errorf("err = %v, want ErrGroupDisposed", err)
	}
	if tw.State() != Idle {
		t.Errorf("state = %s, want idle", tw.State())
	}
}

func TestGroupDisposeIdempotent(t *testing.T) {
	s := newTestScheduler()
	g := s.NewGroup("g")
	g.Dispose()
	g.Dispose()
	if !g.IsDisposed() {
		t.Error("expected disposed")
	}
}

func TestGroupDisposeRecursive(t *testing.T) {
	s := newTestScheduler()
	parent := s.NewGroup("parent")
	child := parent.NewGroup("child")
	grandchild := child.NewGroup("grandchild")

	a, _ := New(s, 0.0, 1.0, 1, ease.Linear, WithGroup[float64](child))
	b, _ := New(s, 0.0, 1.0, 1, ease.Linear, WithGroup[float64](grandchild))
	other, _ := New(s, 0.0, 1.0, 1, ease.Linear)
	_ = a.Play()
	_ = b.Play()
	_ = other.Play()

	parent.Dispose()

	if a.IsActive() || b.IsActive() {
		t.Error("descendant tweens should be stopped")
	}
	if !other.IsActive() {
		t.Error("tween outside the disposed subtree should keep running")
	}
	if !child.IsDisposed() || !grandchild.IsDisposed() {
		t.Error("descendant groups should be disposed")
	}
	if st := s.Stats(); st.Contexts != 1 || st.Active != 1 {
		t.Errorf("stats = %+v, want 1 context", st)
	}
}

func TestGroupDisposeFromCallbackDuringUpdate(t *testing.T) {
	s := newTestScheduler()
	g := s.NewGroup("victims")
	victim, _ := New(s, 0.0, 1.0, 1, ease.Linear, WithGroup[float64](g))
	victimUpdates := 0
	victim.OnUpdate = func(float64) { victimUpdates++ }

	killer, _ := New(s, 0.0, 1.0, 1, ease.Linear)
	killer.OnUpdate = func(float64) { g.Dispose() }

	_ = killer.Play()
	_ = victim.Play()
	s.Update(0.1)

	if victimUpdates != 0 {
		t.Errorf("victim updated %d times after its group was disposed in the same frame", victimUpdates)
	}
	if victim.State() != Stopped {
		t.Errorf("victim state = %s, want stopped", victim.State())
	}
}

func TestGroupContextsMoveBetweenGroups(t *testing.T) {
	s := newTestScheduler()
	g := s.NewGroup("ui")
	tw, _ := New(s, 0.0, 1.0, 0, ease.Linear)
	_ = tw.Play()
	s.Update(0.1) // completes and frees the context
	if s.Root().NumContexts() != 1 {
		t.Fatalf("root contexts = %d, want 1", s.Root().NumContexts())
	}

	tw.Group = g
	_ = tw.Play()
	if s.Root().NumContexts() != 0 || g.NumContexts() != 1 {
		t.Errorf("root=%d ui=%d, want context moved into ui", s.Root().NumContexts(), g.NumContexts())
	}
	if st := s.Stats(); st.Contexts != 1 {
		t.Errorf("contexts = %d, want 1 (reused)", st.Contexts)
	}
}

func TestGroupForeignScheduler(t *testing.T) {
	s1 := newTestScheduler()
	s2 := newTestScheduler()
	tw, _ := New(s1, 0.0, 1.0, 1, ease.Linear, WithGroup[float64](s2.NewGroup("x")))
	if err := tw.Play(); !errors.Is(err, ErrForeignGroup) {
		t.Errorf("err = %v, want ErrForeignGroup", err)
	}
}

func TestGroupAddChildCyclePanics(t *testing.T) {
	s := newTestScheduler()
	parent := s.NewGroup("parent")
	child := parent.NewGroup("child")
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for cycle, got none")
		}
	}()
	child.AddChild(parent)
}

func TestGroupAddChildNilPanics(t *testing.T) {
	s := newTestScheduler()
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for nil child, got none")
		}
	}()
	s.Root().AddChild(nil)
}

func TestGroupAddChildForeignPanics(t *testing.T) {
	s1 := newTestScheduler()
	s2 := newTestScheduler()
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for group from another scheduler, got none")
		}
	}()
	s1.Root().AddChild(s2.NewGroup("foreign"))
}

func TestGroupRemoveChildWrongParentPanics(t *testing.T) {
	s := newTestScheduler()
	a := s.NewGroup("a")
	b := s.NewGroup("b")
	child := a.NewGroup("child")
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for wrong parent, got none")
		}
	}()
	b.RemoveChild(child)
}

func TestGroupReparent(t *testing.T) {
	s := newTestScheduler()
	a := s.NewGroup("a")
	b := s.NewGroup("b")
	child := a.NewGroup("child")
	b.AddChild(child)
	if child.Parent != b || a.NumChildren() != 0 || b.NumChildren() != 1 {
		t.Errorf("reparent failed: parent=%v a=%d b=%d", child.Parent.Name, a.NumChildren(), b.NumChildren())
	}
}

func TestGroupDetachedKeepsRunning(t *testing.T) {
	s := newTestScheduler()
	g := s.NewGroup("detached")
	tw, _ := New(s, 0.0, 1.0, 1, ease.Linear, WithGroup[float64](g))
	_ = tw.Play()
	g.RemoveFromParent()
	s.Update(0.1)
	s.Update(0.1)
	if tw.Elapsed() == 0 {
		t.Error("tween in detached group should keep running")
	}
	if g.Parent != nil {
		t.Error("expected no parent")
	}
	s.Close()
	if !tw.IsActive() {
		t.Error("closing the scheduler should not reach detached groups")
	}
}

func TestSchedulerCloseStopsEverything(t *testing.T) {
	s := newTestScheduler()
	g := s.NewGroup("g")
	a, _ := New(s, 0.0, 1.0, 1, ease.Linear)
	b, _ := New(s, 0.0, 1.0, 1, ease.Linear, WithGroup[float64](g))
	_ = a.Play()
	_ = b.Play()
	s.Close()
	if a.IsActive() || b.IsActive() {
		t.Error("Close should stop all tweens")
	}
	if st := s.Stats(); st.Contexts != 0 {
		t.Errorf("contexts = %d, want 0", st.Contexts)
	}
	if err := a.Play(); !errors.Is(err, ErrGroupDisposed) {
		t.Errorf("Play after Close err = %v, want ErrGroupDisposed", err)
	}
}
