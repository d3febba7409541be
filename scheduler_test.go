package tween

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/phanxgames/tween/ease"
	"github.com/rs/zerolog"
)

func bufferLogger(buf *bytes.Buffer) *zerolog.Logger {
	l := zerolog.New(buf)
	return &l
}

func TestSchedulerPrewarm(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Prewarm = 4
	s := NewScheduler(cfg)

	st := s.Stats()
	if st.Contexts != 4 || st.Available != 4 || st.Active != 0 {
		t.Fatalf("stats = %+v, want 4 available contexts", st)
	}
	for i := 0; i < 3; i++ {
		tw, _ := New(s, 0.0, 1.0, 1, ease.Linear)
		_ = tw.Play()
	}
	st = s.Stats()
	if st.Contexts != 4 || st.Active != 3 {
		t.Errorf("stats = %+v, want prewarmed contexts reused", st)
	}
}

func TestSchedulerPoolGrowsOnDemand(t *testing.T) {
	s := newTestScheduler()
	for i := 0; i < 5; i++ {
		tw, _ := New(s, 0.0, 1.0, 1, ease.Linear)
		_ = tw.Play()
	}
	if st := s.Stats(); st.Contexts != 5 || st.Active != 5 {
		t.Errorf("stats = %+v, want 5 active", st)
	}
}

func TestSchedulerNonPositiveDeltaIsZero(t *testing.T) {
	s := newTestScheduler()
	tw, _ := New(s, 0.0, 1.0, 1, ease.Linear)
	updates := 0
	tw.OnUpdate = func(float64) { updates++ }
	_ = tw.Play()

	s.Update(-1)
	s.Update(math.NaN())
	s.Update(0)
	if tw.Elapsed() != 0 {
		t.Errorf("elapsed = %f, want 0", tw.Elapsed())
	}
	if updates != 3 {
		t.Errorf("updates = %d, want 3 (frames still deliver values)", updates)
	}
	if st := s.Stats(); st.Frame != 3 {
		t.Errorf("frame = %d, want 3", st.Frame)
	}
}

func TestSchedulerMaxStep(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxStep = 0.1
	s := NewScheduler(cfg)
	tw, _ := New(s, 0.0, 1.0, 1, ease.Linear)
	_ = tw.Play()
	s.Update(5)
	if tw.Elapsed() != 0.1 {
		t.Errorf("elapsed = %f, want capped 0.1", tw.Elapsed())
	}
}

func TestSchedulerStartedDuringUpdateWaitsForNextFrame(t *testing.T) {
	s := newTestScheduler()
	second, _ := New(s, 0.0, 1.0, 1, ease.Linear)
	secondUpdates := 0
	second.OnUpdate = func(float64) { secondUpdates++ }

	first, _ := New(s, 0.0, 1.0, 0, ease.Linear)
	first.OnComplete = func(float64) { _ = second.Play() }
	_ = first.Play()

	s.Update(0.1)
	if secondUpdates != 0 {
		t.Errorf("tween started mid-frame updated %d times in that frame", secondUpdates)
	}
	s.Update(0.1)
	if secondUpdates != 1 {
		t.Errorf("updates = %d, want 1 on the following frame", secondUpdates)
	}
	// The context freed by the completed tween is reused.
	if st := s.Stats(); st.Contexts != 1 {
		t.Errorf("contexts = %d, want 1", st.Contexts)
	}
}

func TestSchedulerReentrantUpdateIgnored(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Logger = bufferLogger(&buf)
	s := NewScheduler(cfg)

	tw, _ := New(s, 0.0, 1.0, 10, ease.Linear)
	tw.OnUpdate = func(float64) { s.Update(1) }
	_ = tw.Play()
	s.Update(0.1)

	if tw.Elapsed() != 0.1 {
		t.Errorf("elapsed = %f, want 0.1", tw.Elapsed())
	}
	if !strings.Contains(buf.String(), "re-entrantly") {
		t.Errorf("expected re-entrancy warning, got: %q", buf.String())
	}
}

func TestSchedulerRecoverPanics(t *testing.T) {
	var errs []error
	cfg := DefaultConfig()
	cfg.RecoverPanics = true
	cfg.ErrorHandler = func(err error) { errs = append(errs, err) }
	s := NewScheduler(cfg)

	bad, _ := New(s, 0.0, 1.0, 1, ease.Linear, WithName[float64]("bad"))
	bad.OnUpdate = func(float64) { panic("boom") }
	good, _ := New(s, 0.0, 1.0, 1, ease.Linear)
	goodUpdates := 0
	good.OnUpdate = func(float64) { goodUpdates++ }

	_ = bad.Play()
	_ = good.Play()
	s.Update(0.1)
	s.Update(0.1)

	if len(errs) != 1 {
		t.Fatalf("errors = %d, want 1", len(errs))
	}
	var pe *PanicError
	if !errors.As(errs[0], &pe) {
		t.Fatalf("err = %T, want *PanicError", errs[0])
	}
	if pe.Op != "OnUpdate" || pe.Name != "bad" || pe.TweenID != bad.ID || pe.Value != "boom" {
		t.Errorf("PanicError = %+v", pe)
	}
	if pe.StackTrace == "" {
		t.Error("expected stack trace")
	}
	if !strings.Contains(pe.Error(), "boom") {
		t.Errorf("Error() = %q", pe.Error())
	}
	if bad.State() != Stopped {
		t.Errorf("bad state = %s, want stopped", bad.State())
	}
	if goodUpdates != 2 {
		t.Errorf("good updates = %d, want 2", goodUpdates)
	}
	if st := s.Stats(); st.Active != 1 {
		t.Errorf("active = %d, want 1", st.Active)
	}
}

func TestSchedulerRecoverPanicsInComplete(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.RecoverPanics = true
	cfg.Logger = bufferLogger(&buf)
	s := NewScheduler(cfg)

	tw, _ := New(s, 0.0, 1.0, 0, ease.Linear)
	tw.OnComplete = func(float64) { panic(errors.New("complete failed")) }
	_ = tw.Play()
	s.Update(0.1)

	out := buf.String()
	if !strings.Contains(out, "recovered callback panic") || !strings.Contains(out, "OnComplete") {
		t.Errorf("expected logged panic, got: %q", out)
	}
	if st := s.Stats(); st.Active != 0 {
		t.Errorf("active = %d, want 0", st.Active)
	}
}

func TestSchedulerPoolWarnThreshold(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.PoolWarnThreshold = 2
	cfg.Logger = bufferLogger(&buf)
	s := NewScheduler(cfg)

	for i := 0; i < 2; i++ {
		tw, _ := New(s, 0.0, 1.0, 1, ease.Linear)
		_ = tw.Play()
	}
	if buf.Len() != 0 {
		t.Fatalf("unexpected log before threshold: %q", buf.String())
	}
	tw, _ := New(s, 0.0, 1.0, 1, ease.Linear)
	_ = tw.Play()
	if !strings.Contains(buf.String(), "context pool exceeds threshold") {
		t.Errorf("expected pool warning, got: %q", buf.String())
	}
}

func TestSchedulerDebugLogging(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Logger = bufferLogger(&buf)
	s := NewScheduler(cfg)
	s.SetDebugMode(true)

	tw, _ := New(s, 0.0, 1.0, 1, ease.Linear, WithName[float64]("fade"))
	_ = tw.Play()
	_ = tw.Play()
	tw.Stop()

	out := buf.String()
	for _, msg := range []string{"context created", "context bound", "run pre-empted", "context released"} {
		if !strings.Contains(out, msg) {
			t.Errorf("expected %q in debug log, got: %q", msg, out)
		}
	}
	if !strings.Contains(out, `"name":"fade"`) {
		t.Errorf("expected tween name field, got: %q", out)
	}

	buf.Reset()
	s.SetDebugMode(false)
	_ = tw.Play()
	if buf.Len() != 0 {
		t.Errorf("debug logging should be off, got: %q", buf.String())
	}
}

func BenchmarkSchedulerUpdate1000(b *testing.B) {
	s := newTestScheduler()
	for i := 0; i < 1000; i++ {
		tw, _ := New(s, Vec2{}, Vec2{X: 100, Y: 100}, 1e9, ease.CubicInOut)
		_ = tw.Play()
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Update(1.0 / 60)
	}
}
