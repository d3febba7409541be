package ecs

import (
	"github.com/phanxgames/tween"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	dmath "github.com/yohamta/donburi/features/math"
)

// TweenEventType is the Donburi event type for tween lifecycle events.
var TweenEventType = events.NewEventType[tween.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// queued on TweenEventType and delivered by events.ProcessAllEvents or
// TweenEventType.ProcessEvents.
func NewDonburiSink(world donburi.World) tween.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event tween.Event) {
	TweenEventType.Publish(s.world, event)
}

// RegisterMath registers a componentwise interpolator for Donburi's
// math.Vec2 on r.
func RegisterMath(r *tween.Registry) {
	tween.RegisterFunc(r, LerpVec2)
}

// LerpVec2 interpolates each component of a and b by p.
func LerpVec2(a, b dmath.Vec2, p float64) dmath.Vec2 {
	return dmath.Vec2{
		X: tween.Lerp(a.X, b.X, p),
		Y: tween.Lerp(a.Y, b.Y, p),
	}
}
