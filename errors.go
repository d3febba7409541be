package tween

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrUnsupportedType is wrapped by a ConfigError when no interpolator is
	// registered for a tween's value type.
	ErrUnsupportedType = errors.New("unsupported value type")

	// ErrNoScheduler is returned by Play on a Tween that was not created with
	// New (for example a zero value).
	ErrNoScheduler = errors.New("tween has no scheduler")

	// ErrGroupDisposed is returned by Play when the tween's group, or the
	// scheduler itself, has been torn down.
	ErrGroupDisposed = errors.New("group is disposed")
)

// ConfigError reports a tween that cannot be built as configured.
type ConfigError struct {
	// Op is the operation that failed (e.g. "tween.New").
	Op string
	// Type is the value type involved, if any.
	Type reflect.Type
	// Err is the underlying error.
	Err error
}

func (e *ConfigError) Error() string {
	if e.Type != nil {
		return fmt.Sprintf("%s: %v: %s", e.Op, e.Err, e.Type)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// PanicError is a callback panic recovered by a Scheduler running with
// RecoverPanics.
type PanicError struct {
	// Op is the callback that panicked (e.g. "OnUpdate").
	Op string
	// TweenID and Name identify the tween whose callback panicked.
	TweenID uint32
	Name    string
	// Value is the value passed to panic().
	Value any
	// StackTrace is the goroutine stack at the time of the panic.
	StackTrace string
}

func (e *PanicError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("panic in %s of tween %q (#%d): %v", e.Op, e.Name, e.TweenID, e.Value)
	}
	return fmt.Sprintf("panic in %s of tween #%d: %v", e.Op, e.TweenID, e.Value)
}
