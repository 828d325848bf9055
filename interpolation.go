package marionette

import (
	"fmt"
	"math"

	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

// Method selects the curve used between a keyframe and the one after it.
type Method uint8

const (
	Linear      Method = iota // straight line
	Cubic                     // smoothstep, 3t²-2t³
	Cosine                    // half cosine wave
	Exponential               // (e^(kt)-1)/(e^k-1) with k = 5
	methodCount
)

// methodNames is indexed by Method. The guard below stops the build when a
// Method is added without a name.
var methodNames = [...]string{
	Linear:      "linear",
	Cubic:       "cubic",
	Cosine:      "cosine",
	Exponential: "exponential",
}

var _ = [1]struct{}{}[len(methodNames)-int(methodCount)]

// DefaultExponent is the k used by ExponentialInterpolate.
const DefaultExponent float32 = 5

// Methods returns every interpolation method in declaration order.
func Methods() []Method {
	out := make([]Method, methodCount)
	for i := range out {
		out[i] = Method(i)
	}
	return out
}

// String returns the lowercase method name.
func (m Method) String() string {
	if m < methodCount {
		return methodNames[m]
	}
	return fmt.Sprintf("Method(%d)", uint8(m))
}

// ParseMethod returns the Method with the given name.
func ParseMethod(name string) (Method, error) {
	for i, n := range methodNames {
		if n == name {
			return Method(i), nil
		}
	}
	return 0, fmt.Errorf("marionette: unknown interpolation method %q", name)
}

// Lerp returns (1-t)*a + t*b.
func Lerp[T Blendable[T]](a, b T, t float32) T {
	return a.Mul(1 - t).Add(b.Mul(t))
}

// CubicInterpolate eases in and out with the smoothstep polynomial.
func CubicInterpolate[T Blendable[T]](a, b T, t float32) T {
	t2 := t * t
	t3 := t2 * t
	return a.Add(b.Sub(a).Mul(3*t2 - 2*t3))
}

// CosineInterpolate eases in and out along half a cosine period.
func CosineInterpolate[T Blendable[T]](a, b T, t float32) T {
	s := float32((1 - math.Cos(float64(t)*math.Pi)) / 2)
	return a.Add(b.Sub(a).Mul(s))
}

// ExponentialInterpolate is ExponentialInterpolateK with k = DefaultExponent.
func ExponentialInterpolate[T Blendable[T]](a, b T, t float32) T {
	return ExponentialInterpolateK(a, b, t, DefaultExponent)
}

// ExponentialInterpolateK starts slow and accelerates towards b. k must not be
// zero: the weight becomes 0/0 and the result is NaN.
func ExponentialInterpolateK[T Blendable[T]](a, b T, t, k float32) T {
	s := float32(math.Expm1(float64(k*t)) / math.Expm1(float64(k)))
	return a.Add(b.Sub(a).Mul(s))
}

// InvLerp returns where t lies between a and b as a fraction: 0 at a, 1 at b.
// A zero-length interval (a == b) yields ±Inf or NaN.
func InvLerp(a, b, t float32) float32 {
	return (t - a) / (b - a)
}

// PickInterpolation evaluates the curve selected by method. Panics on a value
// outside the declared Method constants.
func PickInterpolation[T Blendable[T]](a, b T, t float32, method Method) T {
	switch method {
	case Linear:
		return Lerp(a, b, t)
	case Cubic:
		return CubicInterpolate(a, b, t)
	case Cosine:
		return CosineInterpolate(a, b, t)
	case Exponential:
		return ExponentialInterpolate(a, b, t)
	default:
		panic(fmt.Sprintf("marionette: unknown interpolation method %d", uint8(method)))
	}
}

// TweenFunc adapts the curve to gween's easing signature, where t is elapsed
// time, b the start value, c the change and d the duration.
func (m Method) TweenFunc() ease.TweenFunc {
	if m >= methodCount {
		panic(fmt.Sprintf("marionette: unknown interpolation method %d", uint8(m)))
	}
	return func(t, b, c, d float32) float32 {
		return float32(PickInterpolation(Scalar(b), Scalar(b+c), t/d, m))
	}
}

// MarshalYAML encodes the method by name.
func (m Method) MarshalYAML() (any, error) {
	if m >= methodCount {
		return nil, fmt.Errorf("marionette: unknown interpolation method %d", uint8(m))
	}
	return m.String(), nil
}

// UnmarshalYAML decodes a method name.
func (m *Method) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParseMethod(name)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
