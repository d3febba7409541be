package tween

import (
	"image/color"
	"math"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// RGBA converts c to an 8-bit non-premultiplied color, clamping each channel.
func (c Color) RGBA() color.NRGBA {
	return color.NRGBA{
		R: unitToByte(c.R),
		G: unitToByte(c.G),
		B: unitToByte(c.B),
		A: unitToByte(c.A),
	}
}

func unitToByte(v float64) uint8 {
	return clampByte(v * 255)
}

func clampByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float64
}

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float64
}

// Vec4 is a 4D vector.
type Vec4 struct {
	X, Y, Z, W float64
}

// Rect is an axis-aligned rectangle with its origin at the top-left.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Quat is a rotation quaternion. The zero value is not a valid rotation; use
// QuatIdentity.
type Quat struct {
	X, Y, Z, W float64
}

// QuatIdentity is the no-rotation quaternion.
var QuatIdentity = Quat{W: 1}

// QuatFromAxisAngle returns the rotation of angle radians around axis.
// The axis does not need to be normalized.
func QuatFromAxisAngle(axis Vec3, angle float64) Quat {
	l := math.Sqrt(axis.X*axis.X + axis.Y*axis.Y + axis.Z*axis.Z)
	if l == 0 {
		return QuatIdentity
	}
	s := math.Sin(angle/2) / l
	return Quat{X: axis.X * s, Y: axis.Y * s, Z: axis.Z * s, W: math.Cos(angle / 2)}
}

// Dot returns the 4D dot product of q and o.
func (q Quat) Dot(o Quat) float64 {
	return q.X*o.X + q.Y*o.Y + q.Z*o.Z + q.W*o.W
}

// Normalize returns q scaled to unit length. A zero quaternion yields
// QuatIdentity.
func (q Quat) Normalize() Quat {
	l := math.Sqrt(q.Dot(q))
	if l == 0 {
		return QuatIdentity
	}
	return Quat{q.X / l, q.Y / l, q.Z / l, q.W / l}
}

// Angle returns the rotation angle of q in radians, in [0, 2π].
func (q Quat) Angle() float64 {
	w := math.Max(-1, math.Min(1, q.Normalize().W))
	return 2 * math.Acos(w)
}
