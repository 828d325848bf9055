package marionette

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Animator plays a Clip. Call Update(dt) once per frame, then sample the
// channels. There is no global animation manager; callers drive each
// Animator themselves.
type Animator struct {
	Clip    *Clip
	Playing bool
	Looping bool
	Speed   float32 // multiplier on dt; negative plays in reverse
	Time    float32 // playback position in seconds

	checkedClip *Clip // last clip inspected by the debug order check
}

// NewAnimator creates a stopped animator at time 0 with unit speed. A nil
// clip is replaced by an empty one.
func NewAnimator(clip *Clip) *Animator {
	if clip == nil {
		clip = &Clip{}
	}
	return &Animator{Clip: clip, Speed: 1}
}

// Update advances playback by dt*Speed seconds. Nothing happens while paused.
//
// Crossing the end of the clip wraps back by one Duration when looping and
// otherwise clamps to Duration and stops. Crossing zero in reverse mirrors
// this. Only one wrap or clamp is applied per call; an overshoot longer
// than Duration restarts from the beginning of the direction of travel.
func (a *Animator) Update(dt float32) {
	if !a.Playing {
		return
	}
	if globalDebug && a.checkedClip != a.Clip {
		a.checkedClip = a.Clip
		if err := a.Clip.Validate(); err != nil {
			logger.Warn("clip has malformed tracks", zap.String("clip", a.Clip.Name), zap.Error(err))
		}
	}

	d := a.Clip.Duration
	a.Time += dt * a.Speed
	if a.Time > d {
		if a.Looping {
			a.Time -= d
			if a.Time > d {
				a.Time = 0
			}
		} else {
			a.Time = d
			a.Playing = false
		}
		return
	}
	if a.Time < 0 {
		if a.Looping {
			a.Time += d
			if a.Time < 0 {
				a.Time = d
			}
		} else {
			a.Time = 0
			a.Playing = false
		}
	}
}

// Play resumes playback from the current time.
func (a *Animator) Play() { a.Playing = true }

// Pause halts playback, keeping the current time.
func (a *Animator) Pause() { a.Playing = false }

// Stop halts playback and rewinds to the start.
func (a *Animator) Stop() {
	a.Playing = false
	a.Time = 0
}

// Seek moves the playback position, clamped to [0, Duration].
func (a *Animator) Seek(t float32) {
	a.Time = mgl32.Clamp(t, 0, a.Clip.Duration)
}

// Sample evaluates ch at the current playback time. See Track.Sample for the
// fallback and out-of-range rules.
func (a *Animator) Sample(ch Channel, fallback mgl32.Vec3) mgl32.Vec3 {
	return a.SampleAt(ch, a.Time, fallback)
}

// SampleAt evaluates ch at time t without reading the playback time.
func (a *Animator) SampleAt(ch Channel, t float32, fallback mgl32.Vec3) mgl32.Vec3 {
	return a.Clip.Track(ch).Sample(t, fallback)
}

// Evaluate samples all three channels at the current playback time.
func (a *Animator) Evaluate() Transform {
	return a.EvaluateAt(a.Time)
}

// EvaluateAt samples all three channels at the same instant t, falling back
// to zero position, zero rotation and unit scale.
func (a *Animator) EvaluateAt(t float32) Transform {
	return Transform{
		Position: a.SampleAt(ChannelPosition, t, ChannelPosition.Default()),
		Rotation: a.SampleAt(ChannelRotation, t, ChannelRotation.Default()),
		Scale:    a.SampleAt(ChannelScale, t, ChannelScale.Default()),
	}
}
