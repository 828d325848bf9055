package marionette

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// JointPose is a joint's transform relative to its parent.
type JointPose struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Quat
	Scale       mgl32.Vec3
}

// NewJointPose returns the identity pose: no translation, identity rotation
// and unit scale.
func NewJointPose() JointPose {
	return JointPose{
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// Matrix composes the pose into a single matrix. See ComposeTRS.
func (p JointPose) Matrix() mgl32.Mat4 {
	return ComposeTRS(p.Translation, p.Rotation, p.Scale)
}

// EulerDegrees returns the rotation as X, Y, Z Euler angles in degrees.
func (p JointPose) EulerDegrees() mgl32.Vec3 {
	return QuatToEulerDegrees(p.Rotation)
}

// SetEulerDegrees replaces the rotation from X, Y, Z Euler angles in degrees.
func (p *JointPose) SetEulerDegrees(euler mgl32.Vec3) {
	p.Rotation = EulerDegreesToQuat(euler)
}

// Transform is the sampled state of an animated object: position, rotation
// as Euler angles in degrees, and scale.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Vec3
	Scale    mgl32.Vec3
}

// NewTransform returns the transform an empty clip evaluates to.
func NewTransform() Transform {
	return Transform{Scale: mgl32.Vec3{1, 1, 1}}
}

// Matrix returns the model matrix for the transform.
func (t Transform) Matrix() mgl32.Mat4 {
	return ComposeTRS(t.Position, EulerDegreesToQuat(t.Rotation), t.Scale)
}

// Pose converts the transform into a joint pose.
func (t Transform) Pose() JointPose {
	return JointPose{
		Translation: t.Position,
		Rotation:    EulerDegreesToQuat(t.Rotation),
		Scale:       t.Scale,
	}
}

// ComposeTRS builds translate * rotate * scale: a point is scaled first, then
// rotated, then translated.
func ComposeTRS(translation mgl32.Vec3, rotation mgl32.Quat, scale mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Translate3D(translation[0], translation[1], translation[2]).
		Mul4(rotation.Mat4()).
		Mul4(mgl32.Scale3D(scale[0], scale[1], scale[2]))
}

// EulerDegreesToQuat converts X, Y, Z Euler angles in degrees to a quaternion
// applying X first, then Y, then Z (q = qz * qy * qx).
func EulerDegreesToQuat(euler mgl32.Vec3) mgl32.Quat {
	qx := mgl32.QuatRotate(mgl32.DegToRad(euler[0]), mgl32.Vec3{1, 0, 0})
	qy := mgl32.QuatRotate(mgl32.DegToRad(euler[1]), mgl32.Vec3{0, 1, 0})
	qz := mgl32.QuatRotate(mgl32.DegToRad(euler[2]), mgl32.Vec3{0, 0, 1})
	return qz.Mul(qy).Mul(qx)
}

// QuatToEulerDegrees is the inverse of EulerDegreesToQuat. The Y angle is
// limited to [-90, 90].
func QuatToEulerDegrees(q mgl32.Quat) mgl32.Vec3 {
	w, x, y, z := float64(q.W), float64(q.V[0]), float64(q.V[1]), float64(q.V[2])

	pitch := math.Atan2(2*(y*z+w*x), w*w-x*x-y*y+z*z)
	sinYaw := -2 * (x*z - w*y)
	yaw := math.Asin(math.Max(-1, math.Min(1, sinYaw)))
	roll := math.Atan2(2*(x*y+w*z), w*w+x*x-y*y-z*z)

	return mgl32.Vec3{
		mgl32.RadToDeg(float32(pitch)),
		mgl32.RadToDeg(float32(yaw)),
		mgl32.RadToDeg(float32(roll)),
	}
}
