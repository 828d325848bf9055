package marionette

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to three components of one joint's local pose.
// Create one via TweenTranslation, TweenScale or TweenRotation and call
// Update(dt) each frame before solving. If the skeleton is rebuilt the group
// stops immediately.
//
// Any ease.TweenFunc works, including Method.TweenFunc.
type TweenGroup struct {
	tweens [3]*gween.Tween
	count  int
	apply  func(j *Joint, vals [3]float32)

	skeleton   *Skeleton
	joint      JointID
	generation uint64

	Done bool
}

func newTweenGroup(s *Skeleton, id JointID) *TweenGroup {
	return &TweenGroup{skeleton: s, joint: id, generation: s.generation}
}

// Update advances all tweens by dt seconds and writes the values into the
// joint's local pose.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.skeleton.generation != g.generation || !g.skeleton.valid(g.joint) {
		g.Done = true
		return
	}

	var vals [3]float32
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		vals[i] = val
		if !finished {
			allDone = false
		}
	}
	g.apply(&g.skeleton.joints[g.joint], vals)
	g.Done = allDone
}

// TweenTranslation moves a joint's local translation to to over duration
// seconds. Returns nil if id is not a joint of s.
func TweenTranslation(s *Skeleton, id JointID, to mgl32.Vec3, duration float32, fn ease.TweenFunc) *TweenGroup {
	j := s.Joint(id)
	if j == nil {
		return nil
	}
	g := newTweenGroup(s, id)
	g.count = 3
	from := j.Local.Translation
	for i := 0; i < 3; i++ {
		g.tweens[i] = gween.New(from[i], to[i], duration, fn)
	}
	g.apply = func(j *Joint, vals [3]float32) {
		j.Local.Translation = mgl32.Vec3(vals)
	}
	return g
}

// TweenScale animates a joint's local scale to to over duration seconds.
// Returns nil if id is not a joint of s.
func TweenScale(s *Skeleton, id JointID, to mgl32.Vec3, duration float32, fn ease.TweenFunc) *TweenGroup {
	j := s.Joint(id)
	if j == nil {
		return nil
	}
	g := newTweenGroup(s, id)
	g.count = 3
	from := j.Local.Scale
	for i := 0; i < 3; i++ {
		g.tweens[i] = gween.New(from[i], to[i], duration, fn)
	}
	g.apply = func(j *Joint, vals [3]float32) {
		j.Local.Scale = mgl32.Vec3(vals)
	}
	return g
}

// TweenRotation turns a joint's local rotation towards to along the shortest
// arc. The easing function shapes the slerp parameter.
// Returns nil if id is not a joint of s.
func TweenRotation(s *Skeleton, id JointID, to mgl32.Quat, duration float32, fn ease.TweenFunc) *TweenGroup {
	j := s.Joint(id)
	if j == nil {
		return nil
	}
	g := newTweenGroup(s, id)
	g.count = 1
	from := j.Local.Rotation
	if from.Dot(to) < 0 {
		to = to.Scale(-1)
	}
	g.tweens[0] = gween.New(0, 1, duration, fn)
	g.apply = func(j *Joint, vals [3]float32) {
		j.Local.Rotation = mgl32.QuatSlerp(from, to, vals[0])
	}
	return g
}
