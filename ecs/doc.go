// Package ecs provides ECS adapters for tween.
//
// [NewDonburiSink] bridges scheduler lifecycle events (play, update, pause,
// resume, stop, complete) into a [Donburi] world as typed events. Subscribe
// to [TweenEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sched.SetEventSink(ecs.NewDonburiSink(world))
//
// [RegisterMath] teaches a registry to interpolate Donburi's math.Vec2, so
// component positions can be tweened directly.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
