package marionette

// Selection is an editor's handle on one joint. It remembers the skeleton
// generation it was taken in and stops resolving once the skeleton is
// rebuilt.
type Selection struct {
	skeleton   *Skeleton
	id         JointID
	generation uint64
}

// Select returns a selection of id, or an empty selection if id is invalid.
func (s *Skeleton) Select(id JointID) Selection {
	if !s.valid(id) {
		return Selection{}
	}
	return Selection{skeleton: s, id: id, generation: s.generation}
}

// ID returns the selected joint, or NoJoint if nothing valid is selected.
func (sel Selection) ID() JointID {
	if !sel.Valid() {
		return NoJoint
	}
	return sel.id
}

// Valid reports whether the selection still addresses a joint.
func (sel Selection) Valid() bool {
	return sel.skeleton != nil &&
		sel.generation == sel.skeleton.generation &&
		sel.skeleton.valid(sel.id)
}

// Joint returns the selected joint, or nil once the selection is stale.
func (sel Selection) Joint() *Joint {
	if !sel.Valid() {
		return nil
	}
	return &sel.skeleton.joints[sel.id]
}

// Next moves the selection to the following joint in ID order, wrapping
// around. A stale selection starts over at the root.
func (sel Selection) Next() Selection {
	if sel.skeleton == nil {
		return sel
	}
	s := sel.skeleton
	if !sel.Valid() {
		return s.Select(s.root)
	}
	return s.Select(JointID((int(sel.id) + 1) % len(s.joints)))
}
