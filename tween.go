package tween

import (
	"errors"
	"fmt"

	"github.com/phanxgames/tween/ease"
)

// ErrForeignGroup is returned by Play when the tween's Group was created by a
// different Scheduler.
var ErrForeignGroup = errors.New("group belongs to another scheduler")

// State is a tween's position in its lifecycle.
//
//	        Play            elapsed ≥ duration
//	Idle ─────────► Playing ──────────────────► Completed
//	                 │  ▲
//	           Pause │  │ Resume
//	                 ▼  │
//	                Paused ───── Stop ─────────► Stopped
//
// Play from any state starts a fresh run.
type State uint8

const (
	Idle State = iota
	Playing
	Paused
	Completed
	Stopped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case Completed:
		return "completed"
	case Stopped:
		return "stopped"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Tween animates a value of type T from From to To over a duration. It is
// driven by the Scheduler it was created on: while Playing, every
// Scheduler.Update delivers the current value to OnUpdate and then advances
// the elapsed time.
//
// Callbacks may freely mutate the tween and call Play, Stop, Pause or Resume
// on it, including from inside its own callbacks. A common ping-pong:
//
//	tw.OnComplete = func(float64) {
//		tw.From, tw.To = tw.To, tw.From
//		tw.Play()
//	}
type Tween[T any] struct {
	// ID is unique per Scheduler. Name is free-form and used in logs.
	ID   uint32
	Name string

	// From and To are the endpoints. They are read every frame, so changes
	// take effect immediately.
	From, To T

	// Delay is the time in seconds between Play and the first update.
	Delay float64

	// Ease selects the easing curve; it is resolved on each Play.
	Ease ease.Kind

	// CompleteOnStop makes Stop also fire OnComplete with To.
	CompleteOnStop bool

	// Group is the grouping container runs bind into. Nil means the
	// scheduler's root group.
	Group *Group

	// Lifecycle callbacks; nil callbacks are skipped.
	OnPlay     func(T)
	OnUpdate   func(T)
	OnComplete func(T)
	OnPause    func(T)
	OnResume   func(T)
	OnStop     func(T)

	sched    *Scheduler
	interp   Interpolator[T]
	easeFn   ease.Func
	duration float64
	elapsed  float64
	current  T
	state    State
	run      *runner
	plays    uint64 // bumped on every Play
}

// Option configures a Tween in New.
type Option[T any] func(*Tween[T])

// WithUpdate sets OnUpdate.
func WithUpdate[T any](fn func(T)) Option[T] {
	return func(tw *Tween[T]) { tw.OnUpdate = fn }
}

// WithComplete sets OnComplete.
func WithComplete[T any](fn func(T)) Option[T] {
	return func(tw *Tween[T]) { tw.OnComplete = fn }
}

// WithDelay sets Delay.
func WithDelay[T any](seconds float64) Option[T] {
	return func(tw *Tween[T]) { tw.Delay = seconds }
}

// WithName sets Name.
func WithName[T any](name string) Option[T] {
	return func(tw *Tween[T]) { tw.Name = name }
}

// WithGroup sets Group.
func WithGroup[T any](g *Group) Option[T] {
	return func(tw *Tween[T]) { tw.Group = g }
}

// WithCompleteOnStop sets CompleteOnStop.
func WithCompleteOnStop[T any]() Option[T] {
	return func(tw *Tween[T]) { tw.CompleteOnStop = true }
}

// New creates an idle tween on s. The interpolator for T is resolved from
// s.Registry() here, once; an unregistered T fails with a *ConfigError
// wrapping ErrUnsupportedType. A duration of zero or less makes every run
// complete on its first frame.
func New[T any](s *Scheduler, from, to T, duration float64, kind ease.Kind, opts ...Option[T]) (*Tween[T], error) {
	if s == nil {
		return nil, &ConfigError{Op: "tween.New", Err: ErrNoScheduler}
	}
	interp, err := Lookup[T](s.registry)
	if err != nil {
		var ce *ConfigError
		if errors.As(err, &ce) {
			ce.Op = "tween.New"
		}
		return nil, err
	}
	if !(duration > 0) {
		duration = 0
	}
	tw := &Tween[T]{
		ID:       s.nextID(),
		From:     from,
		To:       to,
		Ease:     kind,
		sched:    s,
		interp:   interp,
		easeFn:   ease.Resolve(kind),
		duration: duration,
		current:  from,
	}
	for _, opt := range opts {
		opt(tw)
	}
	return tw, nil
}

// Play starts a fresh run: any run in progress is cut off without callbacks,
// elapsed resets to zero, the easing curve is re-resolved, and OnPlay fires
// with the starting value.
func (tw *Tween[T]) Play() error {
	s := tw.sched
	if s == nil || tw.interp == nil {
		return ErrNoScheduler
	}
	g := tw.Group
	if g == nil {
		g = s.root
	}
	if g.sched != s {
		return fmt.Errorf("play tween #%d: %w", tw.ID, ErrForeignGroup)
	}
	if g.disposed {
		return fmt.Errorf("play tween #%d: %w", tw.ID, ErrGroupDisposed)
	}
	if tw.run != nil {
		s.atomicStop(tw.run)
		tw.run = nil
	}
	tw.plays++
	tw.elapsed = 0
	tw.easeFn = ease.Resolve(tw.Ease)
	tw.run = s.acquire(g, tw)
	if tw.Delay > 0 {
		tw.run.delay = tw.Delay
	}
	tw.state = Playing
	tw.current = tw.sample()
	s.emit(EventPlay, tw)
	if tw.OnPlay != nil {
		tw.OnPlay(tw.current)
	}
	return nil
}

// Pause freezes a Playing tween. The execution context stays bound; frames
// keep arriving but elapsed does not advance. No-op unless Playing.
func (tw *Tween[T]) Pause() {
	if tw.state != Playing {
		return
	}
	tw.state = Paused
	tw.sched.emit(EventPause, tw)
	if tw.OnPause != nil {
		tw.OnPause(tw.current)
	}
}

// Resume continues a Paused tween from where it stopped. No-op unless
// Paused.
func (tw *Tween[T]) Resume() {
	if tw.state != Paused {
		return
	}
	tw.state = Playing
	tw.sched.emit(EventResume, tw)
	if tw.OnResume != nil {
		tw.OnResume(tw.current)
	}
}

// Stop ends the run immediately and returns its context to the pool.
// OnStop fires with the last delivered value; if CompleteOnStop is set,
// OnComplete then fires with To. No-op unless Playing or Paused.
func (tw *Tween[T]) Stop() {
	if tw.state != Playing && tw.state != Paused {
		return
	}
	if tw.run != nil {
		tw.sched.release(tw.run)
		tw.run = nil
	}
	tw.state = Stopped
	plays := tw.plays
	tw.sched.emit(EventStop, tw)
	if tw.OnStop != nil {
		tw.OnStop(tw.current)
	}
	if !tw.CompleteOnStop || tw.plays != plays {
		// OnStop restarted the tween; the new run owns completion.
		return
	}
	tw.current = tw.To
	tw.sched.emit(EventComplete, tw)
	if tw.OnComplete != nil {
		tw.OnComplete(tw.To)
	}
}

// Elapsed returns the time in seconds accumulated by the current or last
// run, excluding delay and paused time. Always in [0, Duration()].
func (tw *Tween[T]) Elapsed() float64 {
	return tw.elapsed
}

// Duration returns the run length in seconds.
func (tw *Tween[T]) Duration() float64 {
	return tw.duration
}

// SetDuration changes the run length. Negative values become zero; elapsed
// is clamped to the new duration.
func (tw *Tween[T]) SetDuration(d float64) {
	if !(d > 0) {
		d = 0
	}
	tw.duration = d
	if tw.elapsed > d {
		tw.elapsed = d
	}
}

// Progress returns elapsed/duration, or 1 when the duration is zero.
func (tw *Tween[T]) Progress() float64 {
	if tw.duration <= 0 {
		return 1
	}
	return tw.elapsed / tw.duration
}

// Current returns the last value delivered by the tween: the starting value
// after Play, the per-frame value while running, and To after completion.
func (tw *Tween[T]) Current() T {
	return tw.current
}

// State returns the lifecycle state.
func (tw *Tween[T]) State() State {
	return tw.state
}

// IsPlaying reports whether the tween is Playing (not paused).
func (tw *Tween[T]) IsPlaying() bool {
	return tw.state == Playing
}

// IsActive reports whether the tween holds an execution context, i.e. is
// Playing or Paused.
func (tw *Tween[T]) IsActive() bool {
	return tw.state == Playing || tw.state == Paused
}

// Scheduler returns the scheduler the tween was created on.
func (tw *Tween[T]) Scheduler() *Scheduler {
	return tw.sched
}

func (tw *Tween[T]) sample() T {
	return tw.interp.Value(tw.From, tw.To, tw.easeFn(tw.Progress()))
}

// task implementation, driven by Scheduler.step.

func (tw *Tween[T]) tweenID() uint32      { return tw.ID }
func (tw *Tween[T]) tweenName() string    { return tw.Name }
func (tw *Tween[T]) elapsedTime() float64 { return tw.elapsed }
func (tw *Tween[T]) totalTime() float64   { return tw.duration }
func (tw *Tween[T]) paused() bool         { return tw.state == Paused }
func (tw *Tween[T]) finished() bool       { return tw.elapsed >= tw.duration }

func (tw *Tween[T]) update() {
	tw.current = tw.sample()
	tw.sched.emit(EventUpdate, tw)
	if tw.OnUpdate != nil {
		tw.OnUpdate(tw.current)
	}
}

func (tw *Tween[T]) advance(dt float64) {
	if tw.duration-tw.elapsed <= dt {
		tw.elapsed = tw.duration
		return
	}
	tw.elapsed += dt
}

func (tw *Tween[T]) complete() {
	tw.run = nil
	tw.state = Completed
	tw.current = tw.To
	tw.sched.emit(EventComplete, tw)
	if tw.OnComplete != nil {
		tw.OnComplete(tw.To)
	}
}

func (tw *Tween[T]) terminate() {
	tw.run = nil
	tw.state = Stopped
}
