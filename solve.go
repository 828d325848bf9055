package marionette

// SolveFK recomputes Global for id and every joint below it, parents before
// children. The root's Global is its composed local pose; every other
// joint's Global is its parent's Global times its composed local pose.
//
// The solver trusts the hierarchy: a cycle recurses forever and a joint
// listed under two parents is solved twice. Check with Validate when the
// topology comes from outside.
func (s *Skeleton) SolveFK(id JointID) {
	j := &s.joints[id]
	if j.Parent == NoJoint {
		j.Global = j.Local.Matrix()
	} else {
		j.Global = s.joints[j.Parent].Global.Mul4(j.Local.Matrix())
	}
	for _, c := range j.Children {
		s.SolveFK(c)
	}
}

// Solve runs SolveFK from the root. Call it once per frame after the last
// pose edit and before any Global is read.
func (s *Skeleton) Solve() {
	if len(s.joints) == 0 {
		return
	}
	s.SolveFK(s.root)
}
