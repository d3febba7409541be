// Package ease provides the easing curves used by tweens.
//
// An easing curve maps normalized progress t in [0, 1] to eased progress.
// Every curve satisfies f(0) ≈ 0 and f(1) ≈ 1; overshoot families (Back,
// Elastic) may leave [0, 1] in between.
//
// Curves are selected by [Kind] and resolved with [Resolve], which never
// fails: unknown kinds fall back to [LinearCurve].
//
//	fn := ease.Resolve(ease.CubicInOut)
//	y := fn(0.25)
//
// The Quart, Quint, Circ and Bounce families are bridged from
// [gween/ease]; use [FromGween] to adapt any other gween curve.
//
// [gween/ease]: https://github.com/tanema/gween
package ease

import "fmt"

// Func maps normalized progress t to eased progress.
type Func func(t float64) float64

// Kind selects an easing curve.
type Kind uint8

const (
	Linear Kind = iota
	QuadIn
	QuadOut
	QuadInOut
	CubicIn
	CubicOut
	CubicInOut
	BackIn
	BackOut
	BackInOut
	ExpoIn
	ExpoOut
	ExpoInOut
	SineIn
	SineOut
	SineInOut
	ElasticIn
	ElasticOut
	ElasticInOut
	QuartIn
	QuartOut
	QuartInOut
	QuintIn
	QuintOut
	QuintInOut
	CircIn
	CircOut
	CircInOut
	BounceIn
	BounceOut
	BounceInOut

	kindCount
)

var kindNames = [kindCount]string{
	"Linear",
	"QuadIn", "QuadOut", "QuadInOut",
	"CubicIn", "CubicOut", "CubicInOut",
	"BackIn", "BackOut", "BackInOut",
	"ExpoIn", "ExpoOut", "ExpoInOut",
	"SineIn", "SineOut", "SineInOut",
	"ElasticIn", "ElasticOut", "ElasticInOut",
	"QuartIn", "QuartOut", "QuartInOut",
	"QuintIn", "QuintOut", "QuintInOut",
	"CircIn", "CircOut", "CircInOut",
	"BounceIn", "BounceOut", "BounceInOut",
}

// String returns the curve name, e.g. "QuadInOut".
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Kinds returns every defined Kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, kindCount)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// Resolve returns the curve for k. Unknown kinds resolve to LinearCurve.
func Resolve(k Kind) Func {
	if k < kindCount {
		if fn := curves[k]; fn != nil {
			return fn
		}
	}
	return LinearCurve
}

var curves = [kindCount]Func{
	Linear:       LinearCurve,
	QuadIn:       InQuad,
	QuadOut:      OutQuad,
	QuadInOut:    InOutQuad,
	CubicIn:      InCubic,
	CubicOut:     OutCubic,
	CubicInOut:   InOutCubic,
	BackIn:       InBack,
	BackOut:      OutBack,
	BackInOut:    InOutBack,
	ExpoIn:       InExpo,
	ExpoOut:      OutExpo,
	ExpoInOut:    InOutExpo,
	SineIn:       InSine,
	SineOut:      OutSine,
	SineInOut:    InOutSine,
	ElasticIn:    InElastic,
	ElasticOut:   OutElastic,
	ElasticInOut: InOutElastic,
	QuartIn:      InQuart,
	QuartOut:     OutQuart,
	QuartInOut:   InOutQuart,
	QuintIn:      InQuint,
	QuintOut:     OutQuint,
	QuintInOut:   InOutQuint,
	CircIn:       InCirc,
	CircOut:      OutCirc,
	CircInOut:    InOutCirc,
	BounceIn:     InBounce,
	BounceOut:    OutBounce,
	BounceInOut:  InOutBounce,
}
