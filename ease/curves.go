package ease

import "math"

// Mirror builds an Out curve from an In curve: 1 - in(1-t).
func Mirror(in Func) Func {
	return func(t float64) float64 {
		return 1 - in(1-t)
	}
}

// Split builds an InOut curve: in at double speed over [0, 0.5], then out at
// double speed over [0.5, 1].
func Split(in, out Func) Func {
	return func(t float64) float64 {
		if t <= 0.5 {
			return in(t*2) / 2
		}
		return out(t*2-1)/2 + 0.5
	}
}

// LinearCurve returns t unchanged.
func LinearCurve(t float64) float64 {
	return t
}

// InQuad is t².
func InQuad(t float64) float64 {
	return t * t
}

// InCubic is t³.
func InCubic(t float64) float64 {
	return t * t * t
}

// InBack pulls back below zero before accelerating toward 1.
func InBack(t float64) float64 {
	return t * t * (2.70158*t - 1.70158)
}

// InExpo is 2^(10(t-1)). InExpo(0) is 2^-10, not 0; the curve is used
// as-is, so expo curves start and end within about 1e-3 of the endpoints.
func InExpo(t float64) float64 {
	return math.Pow(2, 10*(t-1))
}

// InSine follows a quarter cosine.
func InSine(t float64) float64 {
	return 1 - math.Cos(math.Pi/2*t)
}

// OutElastic overshoots 1 and settles with a decaying oscillation.
func OutElastic(t float64) float64 {
	return math.Pow(2, -10*t)*math.Sin((t-0.075)*(2*math.Pi)/0.3) + 1
}

var (
	OutQuad   = Mirror(InQuad)
	InOutQuad = Split(InQuad, OutQuad)

	OutCubic   = Mirror(InCubic)
	InOutCubic = Split(InCubic, OutCubic)

	OutBack   = Mirror(InBack)
	InOutBack = Split(InBack, OutBack)

	OutExpo   = Mirror(InExpo)
	InOutExpo = Split(InExpo, OutExpo)

	OutSine   = Mirror(InSine)
	InOutSine = Split(InSine, OutSine)

	InElastic    = Mirror(OutElastic)
	InOutElastic = Split(InElastic, OutElastic)
)
