package marionette

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	// ErrUnorderedTrack reports a track whose keyframe times decrease.
	ErrUnorderedTrack = errors.New("marionette: keyframe times are not in order")
	// ErrKeyOutOfRange reports a keyframe time outside [0, Duration].
	ErrKeyOutOfRange = errors.New("marionette: keyframe time outside clip duration")
)

// Keyframe is one control point of a track. Method picks the curve from this
// keyframe into the next one; the last keyframe's Method is never used.
type Keyframe[T any] struct {
	Time   float32 `yaml:"time"`
	Value  T       `yaml:"value"`
	Method Method  `yaml:"method"`
}

// Track is a sequence of keyframes expected to be in non-decreasing Time
// order. Nothing sorts or checks it on write; see Ordered.
type Track[T Blendable[T]] []Keyframe[T]

// Len returns the number of keyframes.
func (tr Track[T]) Len() int { return len(tr) }

// Append adds k at the end of the track.
func (tr *Track[T]) Append(k Keyframe[T]) {
	*tr = append(*tr, k)
}

// Pop removes the last keyframe and reports whether there was one.
func (tr *Track[T]) Pop() (Keyframe[T], bool) {
	n := len(*tr)
	if n == 0 {
		return Keyframe[T]{}, false
	}
	k := (*tr)[n-1]
	*tr = (*tr)[:n-1]
	return k, true
}

// Ordered reports whether keyframe times never decrease. It returns the index
// of the first offending keyframe, or -1.
func (tr Track[T]) Ordered() (bool, int) {
	for i := 1; i < len(tr); i++ {
		if tr[i].Time < tr[i-1].Time {
			return false, i
		}
	}
	return true, -1
}

// Sample evaluates the track at time t.
//
// Tracks with fewer than two keyframes return fallback, whatever t is. Otherwise
// the first keyframe after index 0 with Time >= t is next and the one before
// it is prev, and the result is prev's curve evaluated at
// InvLerp(prev.Time, next.Time, t). Times before the first keyframe therefore
// extrapolate along the first segment. Times past the last keyframe hold the
// last keyframe's value. Keyframes sharing a time produce NaN or Inf.
func (tr Track[T]) Sample(t float32, fallback T) T {
	if len(tr) <= 1 {
		return fallback
	}
	for i := 1; i < len(tr); i++ {
		if tr[i].Time >= t {
			prev, next := tr[i-1], tr[i]
			u := InvLerp(prev.Time, next.Time, t)
			return PickInterpolation(prev.Value, next.Value, u, prev.Method)
		}
	}
	return tr[len(tr)-1].Value
}

// Clip is a named, fixed-duration bundle of the three channels. Rotation
// values are Euler angles in degrees. A Clip is owned by the Animator
// playing it.
type Clip struct {
	Name     string            `yaml:"name"`
	Duration float32           `yaml:"duration"`
	Position Track[mgl32.Vec3] `yaml:"position,omitempty"`
	Rotation Track[mgl32.Vec3] `yaml:"rotation,omitempty"`
	Scale    Track[mgl32.Vec3] `yaml:"scale,omitempty"`
}

// NewClip creates an empty clip.
func NewClip(name string, duration float32) *Clip {
	return &Clip{Name: name, Duration: duration}
}

// Track returns a pointer to the track for ch so it can be edited in place.
// Panics on an unknown channel.
func (c *Clip) Track(ch Channel) *Track[mgl32.Vec3] {
	switch ch {
	case ChannelPosition:
		return &c.Position
	case ChannelRotation:
		return &c.Rotation
	case ChannelScale:
		return &c.Scale
	default:
		panic(fmt.Sprintf("marionette: unknown channel %d", uint8(ch)))
	}
}

// AddKeyframe appends an editor-style keyframe to ch. An empty track gets
// the channel default at time 0; otherwise the last value is repeated at
// the end of the clip.
func (c *Clip) AddKeyframe(ch Channel) Keyframe[mgl32.Vec3] {
	tr := c.Track(ch)
	k := Keyframe[mgl32.Vec3]{Value: ch.Default()}
	if n := len(*tr); n > 0 {
		k.Time = c.Duration
		k.Value = (*tr)[n-1].Value
	}
	tr.Append(k)
	return k
}

// RemoveKeyframe pops the last keyframe of ch.
func (c *Clip) RemoveKeyframe(ch Channel) bool {
	_, ok := c.Track(ch).Pop()
	return ok
}

// Validate reports every track whose keyframes are out of order or fall
// outside [0, Duration]. Edits never call it.
func (c *Clip) Validate() error {
	var errs []error
	for _, ch := range []Channel{ChannelPosition, ChannelRotation, ChannelScale} {
		tr := *c.Track(ch)
		if ok, i := tr.Ordered(); !ok {
			errs = append(errs, fmt.Errorf("%w: clip %q %s key %d at %g", ErrUnorderedTrack, c.Name, ch, i, tr[i].Time))
		}
		for i, k := range tr {
			if k.Time < 0 || k.Time > c.Duration {
				errs = append(errs, fmt.Errorf("%w: clip %q %s key %d at %g (duration %g)", ErrKeyOutOfRange, c.Name, ch, i, k.Time, c.Duration))
			}
		}
	}
	return errors.Join(errs...)
}
