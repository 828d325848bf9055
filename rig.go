package marionette

// Rig runs one frame of the animation core in a fixed order: advance the
// playback clock, sample every channel at that single instant, write the
// sample into the driven joint, run Edit, then solve the skeleton.
type Rig struct {
	Animator *Animator
	Skeleton *Skeleton

	// Driven receives the sampled transform as its local pose. NoJoint
	// leaves the skeleton untouched; the sample is still available from
	// Current.
	Driven JointID

	// Edit runs after sampling and before solving. Use it to apply UI or
	// tween edits to local poses.
	Edit func(r *Rig, dt float32)

	current Transform
}

// NewRig binds an animator to a skeleton without driving any joint.
func NewRig(a *Animator, s *Skeleton) *Rig {
	return &Rig{Animator: a, Skeleton: s, Driven: NoJoint, current: NewTransform()}
}

// Step advances the rig by dt seconds.
func (r *Rig) Step(dt float32) {
	r.Animator.Update(dt)
	r.current = r.Animator.Evaluate()
	if j := r.Skeleton.Joint(r.Driven); j != nil {
		j.Local = r.current.Pose()
	}
	if r.Edit != nil {
		r.Edit(r, dt)
	}
	r.Skeleton.Solve()
}

// Current returns the transform sampled by the last Step.
func (r *Rig) Current() Transform {
	return r.current
}
