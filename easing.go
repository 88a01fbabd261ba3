package garden

import (
	"math"

	"github.com/tanema/gween/ease"
)

// blendPortion is the fraction of the timeline, measured from the end, over
// which Blend pulls the spring toward its target.
const blendPortion = 1.0

const easingScale = 0.5 * math.Pi

// EaseOut returns a cosine ramp that is 0 until 1-portion and rises to
// 1-cos(pi/2*portion) at t == 1. With portion 1 it covers the full timeline
// and ends at exactly 1.
func EaseOut(portion float64) func(t float64) float64 {
	return func(t float64) float64 {
		if t <= 1-portion {
			return 0
		}
		offset := (t + portion - 1) / portion
		return 1 - math.Cos(easingScale*portion*offset)
	}
}

var blendEase = EaseOut(blendPortion)

// Blend masks residual spring jitter near the end of an animation by easing
// springValue toward 1 as t approaches 1. The result is exactly 1 for t >= 1.
func Blend(springValue, t float64) float64 {
	if t >= 1 {
		return 1
	}
	return springValue + blendEase(t)*(1-springValue)
}

// EaseTiming adapts a gween easing curve into a TimingFunc so it can drive
// an Action in place of a spring. The curve is clamped to 0 and 1 outside
// the timeline.
func EaseTiming(fn ease.TweenFunc) TimingFunc {
	return func(t float64) float64 {
		if t >= 1 {
			return 1
		}
		if t <= 0 {
			return 0
		}
		return float64(fn(float32(t), 0, 1, 1))
	}
}
