// Package tween is a frame-driven value animation engine for games built on
// [Ebitengine] or any other host loop.
//
// A [Tween] animates a value of any registered type from From to To over a
// duration, shaped by an easing curve from package [ease]. A [Scheduler]
// owns a pool of reusable execution contexts and advances every running
// tween once per call to [Scheduler.Update].
//
// # Quick start
//
//	sched := tween.NewScheduler(tween.DefaultConfig())
//
//	fade, err := tween.New(sched, 0.0, 1.0, 0.5, ease.QuadOut,
//		tween.WithUpdate(func(a float64) { sprite.Alpha = a }),
//	)
//	if err != nil {
//		return err
//	}
//	fade.Play()
//
//	// once per frame, from the game loop:
//	sched.Update(1.0 / float64(ebiten.TPS()))
//
// Package ebitenhost wires a Scheduler into an ebiten.Game for you.
//
// # Value types
//
// Interpolation strategies are looked up once, when a tween is created, from
// the scheduler's [Registry]. The default registry handles float64, float32,
// [Vec2], [Vec3], [Vec4], [Color], color.RGBA, [Quat] (shortest-arc slerp)
// and [Rect]. Register your own with [Register] or [RegisterFunc]; creating a
// tween for an unregistered type fails with [ErrUnsupportedType].
//
// # Lifecycle
//
// Play, Pause, Resume and Stop drive the state machine described on
// [State]. OnUpdate sees the value at the start of each frame, before
// elapsed time advances. Completion always delivers To exactly, and exactly
// one OnComplete fires per Play that is not cut short by another Play.
//
// # Groups
//
// Execution contexts belong to a [Group]. Disposing a group tears down every
// tween running in it, which ties animation lifetime to scene objects.
//
// [Ebitengine]: https://ebitengine.org
package tween
