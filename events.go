package tween

import "fmt"

// EventType identifies a tween lifecycle notification.
type EventType uint8

const (
	EventPlay     EventType = iota // Play started a run
	EventUpdate                    // a frame delivered a value
	EventPause                     // Pause took effect
	EventResume                    // Resume took effect
	EventStop                      // Stop ended the run early
	EventComplete                  // the run delivered its target value
)

func (t EventType) String() string {
	switch t {
	case EventPlay:
		return "play"
	case EventUpdate:
		return "update"
	case EventPause:
		return "pause"
	case EventResume:
		return "resume"
	case EventStop:
		return "stop"
	case EventComplete:
		return "complete"
	default:
		return fmt.Sprintf("EventType(%d)", uint8(t))
	}
}

// Event carries a lifecycle notification to an EventSink. Values are not
// included; use the tween's callbacks for those.
type Event struct {
	Type     EventType
	TweenID  uint32
	Name     string
	Elapsed  float64
	Duration float64
	Frame    uint64
}

// EventSink is the interface for optional integrations (such as an ECS
// bridge) that want every lifecycle event from a Scheduler.
type EventSink interface {
	EmitEvent(event Event)
}

// SetEventSink installs sink on s. Pass nil to remove it.
func (s *Scheduler) SetEventSink(sink EventSink) {
	s.sink = sink
}

func (s *Scheduler) emit(typ EventType, t task) {
	if s.sink == nil {
		return
	}
	s.sink.EmitEvent(Event{
		Type:     typ,
		TweenID:  t.tweenID(),
		Name:     t.tweenName(),
		Elapsed:  t.elapsedTime(),
		Duration: t.totalTime(),
		Frame:    s.frame,
	})
}
