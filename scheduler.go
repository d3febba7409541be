package tween

import (
	"math"
	"runtime/debug"

	"github.com/rs/zerolog"
)

// task is the per-run view of a Tween that the frame loop drives. It hides
// the tween's value type from the scheduler.
type task interface {
	tweenID() uint32
	tweenName() string
	elapsedTime() float64
	totalTime() float64
	paused() bool
	finished() bool
	update()
	advance(dt float64)
	complete()
	terminate()
}

// runner is one execution context: a reusable frame-loop slot bound to at
// most one running tween.
type runner struct {
	id        uint32
	index     int // position in Scheduler.pool
	available bool
	group     *Group
	gen       uint64 // bumped on every bind and release
	delay     float64
	task      task
}

// entry is a bound runner as observed at the start of a frame.
type entry struct {
	r   *runner
	gen uint64
	t   task
}

// Stats describes the execution context pool.
type Stats struct {
	Contexts  int    // contexts in the pool
	Active    int    // contexts bound to a running tween
	Available int    // contexts ready for reuse
	Frame     uint64 // number of Update calls so far
}

// Scheduler owns a pool of execution contexts and drives every running
// tween once per Update call. It is single-threaded: Update, tween
// operations and Group operations must all be called from the same
// goroutine (typically the game loop).
//
// There is no global scheduler; create one per animation system and call
// Update each frame:
//
//	sched := tween.NewScheduler(tween.DefaultConfig())
//	// in the game loop:
//	sched.Update(dt)
type Scheduler struct {
	pool   []*runner
	active []entry
	root   *Group

	registry      *Registry
	log           zerolog.Logger
	debug         bool
	recoverPanics bool
	maxStep       float64
	warnThreshold int
	onError       func(error)
	sink          EventSink

	frame        uint64
	nextRunnerID uint32
	nextTweenID  uint32
	op           string // callback being run, for panic reports
	updating     bool
}

// NewScheduler creates a scheduler from cfg.
func NewScheduler(cfg Config) *Scheduler {
	s := &Scheduler{
		registry:      cfg.Registry,
		debug:         cfg.Debug,
		recoverPanics: cfg.RecoverPanics,
		maxStep:       math.Max(cfg.MaxStep, 0),
		warnThreshold: cfg.PoolWarnThreshold,
		onError:       cfg.ErrorHandler,
	}
	if s.registry == nil {
		s.registry = NewRegistry()
	}
	if cfg.Logger != nil {
		s.log = *cfg.Logger
	} else {
		s.log = zerolog.Nop()
	}
	s.root = newGroup(s, "root")
	for i := 0; i < cfg.Prewarm; i++ {
		r := s.newRunner(s.root)
		r.available = true
	}
	return s
}

// Root returns the scheduler's root group. Tweens without a Group run here.
func (s *Scheduler) Root() *Group {
	return s.root
}

// NewGroup creates a group under Root.
func (s *Scheduler) NewGroup(name string) *Group {
	return s.root.NewGroup(name)
}

// Registry returns the interpolator registry used by New.
func (s *Scheduler) Registry() *Registry {
	return s.registry
}

// SetDebugMode enables or disables debug logging of context binding and
// release.
func (s *Scheduler) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// Close disposes the root group, terminating every tween. Playing a tween
// on a closed scheduler fails with ErrGroupDisposed.
func (s *Scheduler) Close() {
	s.root.Dispose()
}

// Stats returns a snapshot of the context pool.
func (s *Scheduler) Stats() Stats {
	st := Stats{Contexts: len(s.pool), Frame: s.frame}
	for _, r := range s.pool {
		if r.available {
			st.Available++
		} else {
			st.Active++
		}
	}
	return st
}

// Update advances every running tween by dt seconds: one frame. Negative
// deltas are treated as zero and deltas above Config.MaxStep are capped.
//
// Tweens started during Update (for example from an OnComplete callback)
// get their first frame on the next Update.
func (s *Scheduler) Update(dt float64) {
	if s.updating {
		s.log.Warn().Msg("tween: Update called re-entrantly from a callback; ignored")
		return
	}
	if !(dt > 0) {
		dt = 0
	}
	if s.maxStep > 0 && dt > s.maxStep {
		dt = s.maxStep
	}
	s.frame++
	s.updating = true
	defer func() { s.updating = false }()

	s.active = s.active[:0]
	for _, r := range s.pool {
		if !r.available {
			s.active = append(s.active, entry{r: r, gen: r.gen, t: r.task})
		}
	}
	for _, e := range s.active {
		if s.recoverPanics {
			s.safeStep(e, dt)
		} else {
			s.step(e, dt)
		}
	}
	clear(s.active)
	s.active = s.active[:0]
}

// step runs one frame of a context's loop: withhold while paused, count
// down the delay, complete once elapsed reaches the duration, otherwise
// deliver the current value and then advance elapsed.
func (s *Scheduler) step(e entry, dt float64) {
	r := e.r
	if r.available || r.gen != e.gen {
		return
	}
	t := e.t
	if t.paused() {
		return
	}
	if r.delay > 0 {
		r.delay -= dt
		if r.delay > 0 {
			return
		}
		r.delay = 0
	}
	if t.finished() {
		s.release(r)
		s.op = "OnComplete"
		t.complete()
		return
	}
	s.op = "OnUpdate"
	t.update()
	if r.gen != e.gen {
		// The callback stopped, replayed or tore down this run.
		return
	}
	t.advance(dt)
}

func (s *Scheduler) safeStep(e entry, dt float64) {
	defer func() {
		if v := recover(); v != nil {
			s.recovered(e, v, debug.Stack())
		}
	}()
	s.step(e, dt)
}

func (s *Scheduler) recovered(e entry, v any, stack []byte) {
	err := &PanicError{
		Op:         s.op,
		TweenID:    e.t.tweenID(),
		Name:       e.t.tweenName(),
		Value:      v,
		StackTrace: string(stack),
	}
	if !e.r.available && e.r.gen == e.gen {
		s.release(e.r)
		e.t.terminate()
	}
	s.report(err)
}

func (s *Scheduler) report(err error) {
	if s.onError != nil {
		s.onError(err)
		return
	}
	s.log.Error().Err(err).Msg("tween: recovered callback panic")
}

// acquire binds t to an available context, creating one if none is free,
// and moves that context into g.
func (s *Scheduler) acquire(g *Group, t task) *runner {
	var r *runner
	for _, c := range s.pool {
		if c.available {
			r = c
			break
		}
	}
	if r == nil {
		r = s.newRunner(g)
	} else if r.group != g {
		if r.group != nil {
			r.group.removeRunner(r)
		}
		g.addRunner(r)
	}
	r.available = false
	r.gen++
	r.delay = 0
	r.task = t
	if s.debug {
		s.log.Debug().
			Uint32("ctx", r.id).
			Uint32("tween", t.tweenID()).
			Str("name", t.tweenName()).
			Str("group", g.Name).
			Msg("tween: context bound")
	}
	return r
}

// atomicStop terminates the loop a tween currently holds so that a new Play
// can acquire a fresh context without two loops racing on the same tween.
// No callbacks fire.
func (s *Scheduler) atomicStop(r *runner) {
	if r.available {
		return
	}
	if s.debug {
		s.log.Debug().Uint32("ctx", r.id).Uint32("tween", r.task.tweenID()).Msg("tween: run pre-empted")
	}
	s.release(r)
}

// release returns r to the pool. Any frame step still holding the previous
// generation becomes a no-op.
func (s *Scheduler) release(r *runner) {
	if s.debug && r.task != nil {
		s.log.Debug().Uint32("ctx", r.id).Uint32("tween", r.task.tweenID()).Msg("tween: context released")
	}
	r.available = true
	r.gen++
	r.delay = 0
	r.task = nil
}

// destroy force-terminates r's tween, if any, and removes r from the pool.
// Called during group teardown.
func (s *Scheduler) destroy(r *runner) {
	if t := r.task; t != nil && !r.available {
		s.release(r)
		t.terminate()
	}
	r.gen++
	last := len(s.pool) - 1
	if r.index <= last && s.pool[r.index] == r {
		moved := s.pool[last]
		s.pool[r.index] = moved
		moved.index = r.index
		s.pool[last] = nil
		s.pool = s.pool[:last]
	}
	r.index = -1
	r.group = nil
}

func (s *Scheduler) newRunner(g *Group) *runner {
	s.nextRunnerID++
	r := &runner{id: s.nextRunnerID, index: len(s.pool)}
	s.pool = append(s.pool, r)
	g.addRunner(r)
	if s.debug {
		s.log.Debug().Uint32("ctx", r.id).Int("pool", len(s.pool)).Msg("tween: context created")
	}
	if s.warnThreshold > 0 && len(s.pool) > s.warnThreshold {
		s.log.Warn().
			Int("pool", len(s.pool)).
			Int("threshold", s.warnThreshold).
			Msg("tween: context pool exceeds threshold; tweens may be leaking")
	}
	return r
}

func (s *Scheduler) nextID() uint32 {
	s.nextTweenID++
	return s.nextTweenID
}
