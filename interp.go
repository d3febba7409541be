package tween

import (
	"image/color"
	"math"
	"reflect"
)

// Interpolator computes the value between from and to at eased progress p.
// p is usually in [0, 1] but overshoot curves may push it outside; built-in
// strategies extrapolate rather than clamp.
type Interpolator[T any] interface {
	Value(from, to T, p float64) T
}

// InterpolatorFunc adapts a plain function to an Interpolator.
type InterpolatorFunc[T any] func(from, to T, p float64) T

// Value calls f(from, to, p).
func (f InterpolatorFunc[T]) Value(from, to T, p float64) T {
	return f(from, to, p)
}

// Registry maps value types to interpolation strategies. Lookups happen once
// per Tween construction, never per frame.
//
// A Registry is not safe for concurrent mutation; register custom types
// before creating tweens.
type Registry struct {
	strategies map[reflect.Type]any
}

// NewRegistry returns a Registry with the built-in strategies: float64,
// float32, Vec2, Vec3, Vec4, Color, color.RGBA, Quat and Rect.
func NewRegistry() *Registry {
	r := &Registry{strategies: make(map[reflect.Type]any)}
	Register[float64](r, InterpolatorFunc[float64](Lerp))
	Register[float32](r, InterpolatorFunc[float32](lerp32))
	Register[Vec2](r, InterpolatorFunc[Vec2](LerpVec2))
	Register[Vec3](r, InterpolatorFunc[Vec3](LerpVec3))
	Register[Vec4](r, InterpolatorFunc[Vec4](LerpVec4))
	Register[Color](r, InterpolatorFunc[Color](LerpColor))
	Register[color.RGBA](r, InterpolatorFunc[color.RGBA](LerpRGBA))
	Register[Quat](r, InterpolatorFunc[Quat](Slerp))
	Register[Rect](r, InterpolatorFunc[Rect](LerpRect))
	return r
}

// Register installs interp as the strategy for T, replacing any previous one.
func Register[T any](r *Registry, interp Interpolator[T]) {
	if r.strategies == nil {
		r.strategies = make(map[reflect.Type]any)
	}
	r.strategies[reflect.TypeFor[T]()] = interp
}

// RegisterFunc is Register for a plain function.
func RegisterFunc[T any](r *Registry, fn func(from, to T, p float64) T) {
	Register[T](r, InterpolatorFunc[T](fn))
}

// Lookup returns the strategy registered for T. It returns a *ConfigError
// wrapping ErrUnsupportedType when T has none.
func Lookup[T any](r *Registry) (Interpolator[T], error) {
	typ := reflect.TypeFor[T]()
	if r != nil {
		if s, ok := r.strategies[typ].(Interpolator[T]); ok {
			return s, nil
		}
	}
	return nil, &ConfigError{Op: "tween.Lookup", Type: typ, Err: ErrUnsupportedType}
}

// Supports reports whether a strategy is registered for typ.
func (r *Registry) Supports(typ reflect.Type) bool {
	if r == nil {
		return false
	}
	_, ok := r.strategies[typ]
	return ok
}

// Lerp linearly interpolates between a and b.
func Lerp(a, b, p float64) float64 {
	return a + (b-a)*p
}

func lerp32(a, b float32, p float64) float32 {
	return float32(Lerp(float64(a), float64(b), p))
}

// LerpVec2 interpolates componentwise.
func LerpVec2(a, b Vec2, p float64) Vec2 {
	return Vec2{Lerp(a.X, b.X, p), Lerp(a.Y, b.Y, p)}
}

// LerpVec3 interpolates componentwise.
func LerpVec3(a, b Vec3, p float64) Vec3 {
	return Vec3{Lerp(a.X, b.X, p), Lerp(a.Y, b.Y, p), Lerp(a.Z, b.Z, p)}
}

// LerpVec4 interpolates componentwise.
func LerpVec4(a, b Vec4, p float64) Vec4 {
	return Vec4{Lerp(a.X, b.X, p), Lerp(a.Y, b.Y, p), Lerp(a.Z, b.Z, p), Lerp(a.W, b.W, p)}
}

// LerpColor interpolates all four channels, alpha included.
func LerpColor(a, b Color, p float64) Color {
	return Color{Lerp(a.R, b.R, p), Lerp(a.G, b.G, p), Lerp(a.B, b.B, p), Lerp(a.A, b.A, p)}
}

// LerpRGBA interpolates 8-bit channels, rounding and clamping to [0, 255].
func LerpRGBA(a, b color.RGBA, p float64) color.RGBA {
	ch := func(x, y uint8) uint8 {
		return clampByte(Lerp(float64(x), float64(y), p))
	}
	return color.RGBA{R: ch(a.R, b.R), G: ch(a.G, b.G), B: ch(a.B, b.B), A: ch(a.A, b.A)}
}

// LerpRect interpolates X, Y, Width and Height independently.
func LerpRect(a, b Rect, p float64) Rect {
	return Rect{
		X:      Lerp(a.X, b.X, p),
		Y:      Lerp(a.Y, b.Y, p),
		Width:  Lerp(a.Width, b.Width, p),
		Height: Lerp(a.Height, b.Height, p),
	}
}

// slerpLinearThreshold is the cosine above which Slerp falls back to a
// normalized linear blend; sin(θ) is too small to divide by reliably.
const slerpLinearThreshold = 0.9995

// Slerp interpolates rotations along the shortest arc. Inputs should be unit
// quaternions.
func Slerp(a, b Quat, p float64) Quat {
	d := a.Dot(b)
	if d < 0 {
		b = Quat{-b.X, -b.Y, -b.Z, -b.W}
		d = -d
	}
	if d > slerpLinearThreshold {
		return Quat{
			X: Lerp(a.X, b.X, p),
			Y: Lerp(a.Y, b.Y, p),
			Z: Lerp(a.Z, b.Z, p),
			W: Lerp(a.W, b.W, p),
		}.Normalize()
	}
	theta := math.Acos(d)
	sinTheta := math.Sin(theta)
	wa := math.Sin((1-p)*theta) / sinTheta
	wb := math.Sin(p*theta) / sinTheta
	return Quat{
		X: a.X*wa + b.X*wb,
		Y: a.Y*wa + b.Y*wb,
		Z: a.Z*wa + b.Z*wb,
		W: a.W*wa + b.W*wb,
	}
}
