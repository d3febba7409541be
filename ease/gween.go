package ease

import gease "github.com/tanema/gween/ease"

// FromGween adapts a gween curve, which takes (t, begin, change, duration),
// to a normalized Func by evaluating it over begin 0, change 1, duration 1.
func FromGween(fn gease.TweenFunc) Func {
	return func(t float64) float64 {
		return float64(fn(float32(t), 0, 1, 1))
	}
}

var (
	InQuart    = FromGween(gease.InQuart)
	OutQuart   = FromGween(gease.OutQuart)
	InOutQuart = FromGween(gease.InOutQuart)

	InQuint    = FromGween(gease.InQuint)
	OutQuint   = FromGween(gease.OutQuint)
	InOutQuint = FromGween(gease.InOutQuint)

	InCirc    = FromGween(gease.InCirc)
	OutCirc   = FromGween(gease.OutCirc)
	InOutCirc = FromGween(gease.InOutCirc)

	InBounce    = FromGween(gease.InBounce)
	OutBounce   = FromGween(gease.OutBounce)
	InOutBounce = FromGween(gease.InOutBounce)
)
