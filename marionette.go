package marionette

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Blendable is the capability a value needs to be interpolated: addition,
// subtraction and scaling by a float32 weight. mgl32.Vec2, mgl32.Vec3 and
// mgl32.Vec4 satisfy it as-is; use Scalar for plain numbers.
type Blendable[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(float32) T
}

// Scalar is a float32 that satisfies Blendable.
type Scalar float32

// Add returns s + o.
func (s Scalar) Add(o Scalar) Scalar { return s + o }

// Sub returns s - o.
func (s Scalar) Sub(o Scalar) Scalar { return s - o }

// Mul returns s scaled by w.
func (s Scalar) Mul(w float32) Scalar { return Scalar(float32(s) * w) }

// Channel identifies one of the three independently keyed tracks of a Clip.
type Channel uint8

const (
	ChannelPosition Channel = iota // object position
	ChannelRotation                // Euler angles in degrees
	ChannelScale                   // per-axis scale
)

// String returns the lowercase channel name.
func (c Channel) String() string {
	switch c {
	case ChannelPosition:
		return "position"
	case ChannelRotation:
		return "rotation"
	case ChannelScale:
		return "scale"
	default:
		return "unknown"
	}
}

// Default returns the value a channel evaluates to when it has fewer than two
// keyframes: zero for position and rotation, one for scale.
func (c Channel) Default() mgl32.Vec3 {
	if c == ChannelScale {
		return mgl32.Vec3{1, 1, 1}
	}
	return mgl32.Vec3{}
}

// logger receives warnings from debug checks and the document loaders.
var logger = zap.NewNop()

// SetLogger replaces the package logger. Passing nil restores the no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// globalDebug enables hierarchy and track sanity warnings. Off by default;
// the checks are linear in joint or keyframe count.
var globalDebug bool

// SetDebugMode enables or disables debug mode. When enabled, joint insertion
// warns on deep trees and wide fan-out, and Animator.Update warns once per
// clip about unordered tracks.
func SetDebugMode(enabled bool) {
	globalDebug = enabled
}
