package marionette

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func playing(duration, at float32, looping bool) *Animator {
	a := NewAnimator(NewClip("test", duration))
	a.Time = at
	a.Looping = looping
	a.Play()
	return a
}

// --- Update ---

func TestUpdateLoopsPastEnd(t *testing.T) {
	a := playing(5, 4.9, true)
	a.Update(0.3)
	assert.InDelta(t, 0.2, a.Time, epsilon)
	assert.True(t, a.Playing)
}

func TestUpdateClampsPastEnd(t *testing.T) {
	a := playing(5, 4.9, false)
	a.Update(0.3)
	assert.Equal(t, float32(5), a.Time)
	assert.False(t, a.Playing)
}

func TestUpdateReverseLoops(t *testing.T) {
	a := playing(5, 0.1, true)
	a.Speed = -1
	a.Update(0.3)
	assert.InDelta(t, 4.8, a.Time, epsilon)
	assert.True(t, a.Playing)
}

func TestUpdateReverseClamps(t *testing.T) {
	a := playing(5, 0.1, false)
	a.Speed = -1
	a.Update(0.3)
	assert.Equal(t, float32(0), a.Time)
	assert.False(t, a.Playing)
}

func TestUpdateZeroLengthLoopStaysAtZero(t *testing.T) {
	a := playing(0, 0, true)
	for i := 0; i < 10; i++ {
		a.Update(0.5)
	}
	assert.Equal(t, float32(0), a.Time)
	assert.True(t, a.Playing)

	a.Speed = -1
	a.Update(0.5)
	assert.Equal(t, float32(0), a.Time)
}

func TestUpdateLoopOvershootLongerThanClipRestarts(t *testing.T) {
	a := playing(1, 0.5, true)
	a.Update(3)
	assert.Equal(t, float32(0), a.Time)

	a = playing(1, 0.5, true)
	a.Speed = -1
	a.Update(3)
	assert.Equal(t, float32(1), a.Time)
}

func TestUpdatePausedIsNoop(t *testing.T) {
	a := playing(5, 1, false)
	a.Pause()
	a.Update(1)
	assert.Equal(t, float32(1), a.Time)
}

func TestUpdateAppliesSpeed(t *testing.T) {
	a := playing(5, 1, false)
	a.Speed = 2
	a.Update(0.5)
	assert.InDelta(t, 2, a.Time, epsilon)
	assert.True(t, a.Playing)
}

func TestUpdateEndsExactlyOnDuration(t *testing.T) {
	a := playing(2, 1, false)
	a.Update(1)
	assert.Equal(t, float32(2), a.Time)
	assert.True(t, a.Playing, "reaching the end without passing it keeps playing")
}

func TestStopRewinds(t *testing.T) {
	a := playing(5, 3, true)
	a.Stop()
	assert.False(t, a.Playing)
	assert.Equal(t, float32(0), a.Time)
}

func TestSeekClamps(t *testing.T) {
	a := NewAnimator(NewClip("seek", 5))
	a.Seek(7)
	assert.Equal(t, float32(5), a.Time)
	a.Seek(-1)
	assert.Equal(t, float32(0), a.Time)
	a.Seek(2)
	assert.Equal(t, float32(2), a.Time)
}

func TestNewAnimatorNilClip(t *testing.T) {
	a := NewAnimator(nil)
	assert.NotNil(t, a.Clip)
	assert.Equal(t, float32(1), a.Speed)
	assert.Equal(t, NewTransform(), a.Evaluate())
}

// --- sampling ---

func TestAnimatorSampleAtPlaybackTime(t *testing.T) {
	c := NewClip("slide", 5)
	c.Position = Track[mgl32.Vec3]{key(0, 0, Linear), key(5, 5, Linear)}
	a := NewAnimator(c)
	a.Time = 2.5
	assertVec3(t, "sample", a.Sample(ChannelPosition, mgl32.Vec3{}), mgl32.Vec3{2.5, 0, 0})
	assertVec3(t, "sampleAt", a.SampleAt(ChannelPosition, 1, mgl32.Vec3{}), mgl32.Vec3{1, 0, 0})
}

func TestAnimatorSampleSingleKeyFallback(t *testing.T) {
	c := NewClip("single", 5)
	c.Rotation = Track[mgl32.Vec3]{key(2, 45, Linear)}
	a := NewAnimator(c)
	for _, at := range []float32{0, 2, 5} {
		a.Time = at
		assertVec3(t, "rotation", a.Sample(ChannelRotation, mgl32.Vec3{1, 2, 3}), mgl32.Vec3{1, 2, 3})
	}
}

func TestEvaluateSamplesAllChannelsAtOneInstant(t *testing.T) {
	c := NewClip("all", 4)
	c.Position = Track[mgl32.Vec3]{key(0, 0, Linear), key(4, 8, Linear)}
	c.Rotation = Track[mgl32.Vec3]{key(0, 0, Linear), key(4, 90, Linear)}
	a := NewAnimator(c)

	tr := a.EvaluateAt(2)
	assertVec3(t, "position", tr.Position, mgl32.Vec3{4, 0, 0})
	assertVec3(t, "rotation", tr.Rotation, mgl32.Vec3{45, 0, 0})
	assertVec3(t, "scale", tr.Scale, mgl32.Vec3{1, 1, 1})
}

func TestUpdateDebugWarnsOnUnorderedClip(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	SetLogger(zap.New(core))
	SetDebugMode(true)
	defer func() {
		SetLogger(nil)
		SetDebugMode(false)
	}()

	c := NewClip("bad", 5)
	c.Position = Track[mgl32.Vec3]{key(3, 0, Linear), key(1, 0, Linear)}
	a := NewAnimator(c)
	a.Play()
	a.Update(0.1)
	a.Update(0.1)

	assert.Equal(t, 1, logs.FilterMessage("clip has malformed tracks").Len())
}
