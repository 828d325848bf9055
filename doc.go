// Package marionette is the animation and kinematics core for small real-time
// 3D demos: a keyframe sampler for position, rotation and scale tracks, and a
// forward-kinematics solver for rigid joint hierarchies.
//
// # Quick start
//
// Build a clip, play it, and sample it each frame:
//
//	clip := marionette.NewClip("slide", 5)
//	clip.Position.Append(marionette.Keyframe[mgl32.Vec3]{Time: 0, Value: mgl32.Vec3{0, 0, 0}})
//	clip.Position.Append(marionette.Keyframe[mgl32.Vec3]{Time: 5, Value: mgl32.Vec3{5, 0, 0}, Method: marionette.Cubic})
//
//	anim := marionette.NewAnimator(clip)
//	anim.Looping = true
//	anim.Play()
//
//	// every frame
//	anim.Update(dt)
//	model := anim.Evaluate().Matrix()
//
// # Interpolation
//
// Each [Keyframe] carries a [Method] that shapes the curve from it into the
// next keyframe: [Linear], [Cubic], [Cosine] or [Exponential]. The curve
// functions are generic over [Blendable] values, so they work on mgl32
// vectors and on [Scalar]. [Method.TweenFunc] exposes the same curves to
// gween tweens.
//
// # Skeletons
//
// A [Skeleton] stores its joints in a flat arena addressed by [JointID].
// Joints are only ever appended under an existing parent, so the hierarchy
// is a tree by construction. Edit local poses, then call [Skeleton.Solve]
// once per frame before reading each joint's Global matrix:
//
//	skel := marionette.NewSkeleton("root", marionette.NewJointPose())
//	arm := skel.MustAddJoint("arm", skel.Root(), marionette.NewJointPose())
//	skel.Joint(arm).Local.Translation = mgl32.Vec3{1, 0, 0}
//	skel.Solve()
//
// [Rig] runs the whole frame in order: advance time, sample, apply edits,
// solve. Skeletons and clips can be loaded from YAML with [LoadSkeleton] and
// [LoadClip].
//
// Nothing in this package is safe for concurrent use.
package marionette
