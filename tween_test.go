package marionette

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanema/gween/ease"
)

func TestTweenTranslationReachesTarget(t *testing.T) {
	s := NewSkeleton("root", NewJointPose())
	arm := s.MustAddJoint("arm", s.Root(), translated(1, 0, 0))

	g := TweenTranslation(s, arm, mgl32.Vec3{3, 4, 5}, 1, ease.Linear)
	require.NotNil(t, g)

	g.Update(0.5)
	assert.False(t, g.Done)
	assertVec3(t, "halfway", s.Joint(arm).Local.Translation, mgl32.Vec3{2, 2, 2.5})

	g.Update(0.5)
	assert.True(t, g.Done)
	assertVec3(t, "end", s.Joint(arm).Local.Translation, mgl32.Vec3{3, 4, 5})
}

func TestTweenScaleWithCurve(t *testing.T) {
	s := NewSkeleton("root", NewJointPose())

	g := TweenScale(s, s.Root(), mgl32.Vec3{3, 3, 3}, 2, Cubic.TweenFunc())
	g.Update(1)
	assertVec3(t, "halfway", s.Joint(s.Root()).Local.Scale, mgl32.Vec3{2, 2, 2})
	g.Update(1)
	assert.True(t, g.Done)
	assertVec3(t, "end", s.Joint(s.Root()).Local.Scale, mgl32.Vec3{3, 3, 3})
}

func TestTweenRotationSlerps(t *testing.T) {
	s := NewSkeleton("root", NewJointPose())
	to := EulerDegreesToQuat(mgl32.Vec3{0, 0, 90})

	g := TweenRotation(s, s.Root(), to, 1, ease.Linear)
	g.Update(0.5)
	got := s.Joint(s.Root()).Local.Rotation.Rotate(mgl32.Vec3{1, 0, 0})
	assertVec3(t, "halfway", got, mgl32.Vec3{0.70710677, 0.70710677, 0})

	g.Update(0.5)
	assert.True(t, g.Done)
	got = s.Joint(s.Root()).Local.Rotation.Rotate(mgl32.Vec3{1, 0, 0})
	assertVec3(t, "end", got, mgl32.Vec3{0, 1, 0})
}

func TestTweenInvalidJoint(t *testing.T) {
	s := NewSkeleton("root", NewJointPose())
	assert.Nil(t, TweenTranslation(s, 3, mgl32.Vec3{}, 1, ease.Linear))
	assert.Nil(t, TweenScale(s, NoJoint, mgl32.Vec3{}, 1, ease.Linear))
	assert.Nil(t, TweenRotation(s, 3, mgl32.QuatIdent(), 1, ease.Linear))
}

func TestTweenStopsAfterRebuild(t *testing.T) {
	s := NewSkeleton("root", NewJointPose())
	g := TweenTranslation(s, s.Root(), mgl32.Vec3{10, 0, 0}, 1, ease.Linear)
	s.Rebuild("root", NewJointPose())

	g.Update(0.5)
	assert.True(t, g.Done)
	assertVec3(t, "untouched", s.Joint(s.Root()).Local.Translation, mgl32.Vec3{})
}
