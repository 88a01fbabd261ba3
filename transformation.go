package garden

import "fmt"

// TransformKind selects how a Transformation moves its target.
type TransformKind uint8

const (
	TransformChangeTo TransformKind = iota // absolute; lands on Value
	TransformAdd                           // relative; adds Value overall
	TransformMultiply                      // relative; multiplies by Value overall
)

func (k TransformKind) String() string {
	switch k {
	case TransformChangeTo:
		return "change to"
	case TransformAdd:
		return "add"
	case TransformMultiply:
		return "multiply by"
	default:
		return fmt.Sprintf("TransformKind(%d)", uint8(k))
	}
}

// Transformation describes what an animation does to a scalar. It carries no
// running state and may be reused; each animation gets its own Composer.
type Transformation struct {
	Kind  TransformKind
	Value float64
}

// ChangeTo animates the target to final. It always ends at final even if
// something else moved the target meanwhile, which also means it overrides
// concurrent Add and MultiplyBy animations on the same property.
func ChangeTo(final float64) Transformation {
	return Transformation{Kind: TransformChangeTo, Value: final}
}

// Add animates the target by offset. Concurrent Add animations on the same
// property superpose.
func Add(offset float64) Transformation {
	return Transformation{Kind: TransformAdd, Value: offset}
}

// MultiplyBy animates the target by factor. Concurrent MultiplyBy animations
// on the same property compose multiplicatively.
func MultiplyBy(factor float64) Transformation {
	return Transformation{Kind: TransformMultiply, Value: factor}
}

// Accessor reads and writes one scalar owned by someone else, typically a
// node field shared by several animations.
type Accessor struct {
	Get func() float64
	Set func(float64)
}

// FieldAccessor returns an Accessor over *p.
func FieldAccessor(p *float64) Accessor {
	return Accessor{
		Get: func() float64 { return *p },
		Set: func(v float64) { *p = v },
	}
}

// Composer applies a Transformation to a target one progress value at a
// time. It holds the running state of exactly one animation and must not be
// shared. Progress values must be delivered in the order they occur.
type Composer struct {
	t Transformation

	// TransformChangeTo
	initial    float64
	hasInitial bool

	// TransformAdd
	lastProgress float64

	// TransformMultiply
	lastMultiplier float64
	unscaled       float64
}

// NewComposer returns a Composer for t with fresh running state.
func NewComposer(t Transformation) *Composer {
	return &Composer{t: t, lastMultiplier: 1}
}

// Transformation returns the transformation being applied.
func (c *Composer) Transformation() Transformation {
	return c.t
}

// Apply moves the target to reflect progress.
func (c *Composer) Apply(acc Accessor, progress float64) {
	switch c.t.Kind {
	case TransformChangeTo:
		if !c.hasInitial {
			c.initial = acc.Get()
			c.hasInitial = true
		}
		acc.Set((1-progress)*c.initial + progress*c.t.Value)

	case TransformAdd:
		acc.Set(acc.Get() + (progress-c.lastProgress)*c.t.Value)
		c.lastProgress = progress

	case TransformMultiply:
		m := (c.t.Value-1)*progress + 1
		if c.lastMultiplier == 0 {
			// Our previous step zeroed the target; scaling by a ratio can't
			// recover it, so rebuild from the value before that step.
			acc.Set(c.unscaled * m)
		} else {
			v := acc.Get()
			c.unscaled = v / c.lastMultiplier
			acc.Set(v * (m / c.lastMultiplier))
		}
		c.lastMultiplier = m
	}
}
