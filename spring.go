package garden

import (
	"fmt"
	"math"
)

// naturalFrequencyBase was picked by eye to approximate the default
// platform spring at duration 1. The regime-specific adjustments in
// Damping.NaturalFrequency are tuned against it and must not drift.
const naturalFrequencyBase = 9.2

// InvalidParameterError reports a physically meaningless animation parameter,
// such as a non-positive damping ratio or duration. It is returned by the
// constructors and carried by the panics of their Must variants.
type InvalidParameterError struct {
	Param  string
	Value  float64
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("garden: invalid %s %v: %s", e.Param, e.Value, e.Reason)
}

// DampingRegime identifies which closed-form solution of the damped spring
// applies for a given damping ratio.
type DampingRegime uint8

const (
	Underdamped      DampingRegime = iota // ratio < 1; overshoots at least once
	CriticallyDamped                      // ratio == 1; fastest settle without overshoot
	Overdamped                            // ratio > 1; no overshoot, slower settle
)

func (r DampingRegime) String() string {
	switch r {
	case Underdamped:
		return "underdamped"
	case CriticallyDamped:
		return "critically damped"
	case Overdamped:
		return "overdamped"
	default:
		return fmt.Sprintf("DampingRegime(%d)", uint8(r))
	}
}

// Damping is a classified damping ratio.
type Damping struct {
	Regime DampingRegime
	Ratio  float64
}

// ClassifyDamping classifies ratio into its damping regime. A ratio of zero
// describes an undamped spring that never settles and is rejected along with
// negative and NaN ratios.
func ClassifyDamping(ratio float64) (Damping, error) {
	if !(ratio > 0) {
		return Damping{}, &InvalidParameterError{
			Param:  "damping ratio",
			Value:  ratio,
			Reason: "must be greater than zero",
		}
	}
	switch {
	case ratio < 1:
		return Damping{Regime: Underdamped, Ratio: ratio}, nil
	case ratio == 1:
		return Damping{Regime: CriticallyDamped, Ratio: 1}, nil
	default:
		return Damping{Regime: Overdamped, Ratio: ratio}, nil
	}
}

// NaturalFrequency returns the angular frequency, in radians per unit of
// normalized animation time, used by the timing function for this damping.
func (d Damping) NaturalFrequency() float64 {
	switch d.Regime {
	case Underdamped:
		return naturalFrequencyBase * (1 + 3.71*math.Pow(1-d.Ratio, 3.46))
	case Overdamped:
		return naturalFrequencyBase * math.Pow(d.Ratio, 0.6)
	default:
		return naturalFrequencyBase
	}
}

// SpringProperties describes the feel of a spring animation. The zero value
// is not valid; use NewSpringProperties or MustSpringProperties.
type SpringProperties struct {
	damping         Damping
	initialVelocity float64
}

// NewSpringProperties validates and returns spring properties.
//
// dampingRatio is the ratio of the spring's damping coefficient to its
// critical damping coefficient: below 1 the spring overshoots its rest
// position at least once, exactly 1 settles in minimal time, above 1 settles
// more slowly without overshooting.
//
// initialVelocity is relative to the total distance and duration: a velocity
// of 2 would cover the full distance twice over the animation if it were
// kept constant.
func NewSpringProperties(dampingRatio, initialVelocity float64) (SpringProperties, error) {
	d, err := ClassifyDamping(dampingRatio)
	if err != nil {
		return SpringProperties{}, err
	}
	return SpringProperties{damping: d, initialVelocity: initialVelocity}, nil
}

// MustSpringProperties is like NewSpringProperties but panics with an
// *InvalidParameterError when dampingRatio is not positive.
func MustSpringProperties(dampingRatio, initialVelocity float64) SpringProperties {
	p, err := NewSpringProperties(dampingRatio, initialVelocity)
	if err != nil {
		panic(err)
	}
	return p
}

// DampingRatio returns the damping ratio.
func (p SpringProperties) DampingRatio() float64 { return p.damping.Ratio }

// InitialVelocity returns the initial velocity.
func (p SpringProperties) InitialVelocity() float64 { return p.initialVelocity }

// Damping returns the classified damping.
func (p SpringProperties) Damping() Damping { return p.damping }

// TimingFunc maps a fraction of elapsed duration to animation progress.
type TimingFunc func(t float64) float64

// SpringTiming returns the analytical step response of the spring described
// by p. The curve starts at 0 and is pinned to exactly 1 for t >= 1 so the
// animation lands on its target regardless of how far the spring has settled.
// Panics if p is the zero value.
func SpringTiming(p SpringProperties) TimingFunc {
	if p.damping.Ratio <= 0 {
		panic(&InvalidParameterError{
			Param:  "damping ratio",
			Value:  p.damping.Ratio,
			Reason: "spring properties not initialized",
		})
	}

	wn := p.damping.NaturalFrequency()
	z := p.damping.Ratio
	// The formulas below settle at 0 from a displacement of 1, so velocity
	// toward the target is negative in their frame.
	v := -p.initialVelocity

	var response func(t float64) float64
	switch p.damping.Regime {
	case Underdamped:
		wd := wn * math.Sqrt(1-z*z)
		c := (z*wn + v) / wd
		response = func(t float64) float64 {
			sin, cos := math.Sincos(wd * t)
			return 1 - (cos+c*sin)*math.Exp(-wn*z*t)
		}
	case CriticallyDamped:
		c := v + wn
		response = func(t float64) float64 {
			return 1 - (c*t+1)*math.Exp(-wn*t)
		}
	default:
		root := math.Sqrt(z*z - 1)
		z1 := wn * (-z - root)
		z2 := wn * (-z + root)
		c1 := (v - z2) / (z1 - z2)
		c2 := 1 - c1
		response = func(t float64) float64 {
			return 1 - (c1*math.Exp(z1*t) + c2*math.Exp(z2*t))
		}
	}

	return func(t float64) float64 {
		if t >= 1 {
			return 1
		}
		if t <= 0 {
			return 0
		}
		return response(t)
	}
}
