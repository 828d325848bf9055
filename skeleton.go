package marionette

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	// ErrNoJoint reports a JointID that does not address a joint.
	ErrNoJoint = errors.New("marionette: no such joint")
	// ErrMalformedHierarchy reports a skeleton that is not a rooted tree.
	ErrMalformedHierarchy = errors.New("marionette: malformed joint hierarchy")
)

// JointID addresses a joint inside its Skeleton.
type JointID int32

// NoJoint is the parent of the root joint.
const NoJoint JointID = -1

// Joint is a node of the skeleton hierarchy.
type Joint struct {
	Name     string
	Parent   JointID
	Children []JointID

	// Local is the pose relative to the parent. Edit freely between solves.
	Local JointPose

	// Global is the world transform written by the last SolveFK. Read-only
	// for everything except the solver.
	Global mgl32.Mat4
}

// Skeleton stores joints in a flat arena. IDs are stable for the lifetime
// of the skeleton because joints are never removed, only added.
type Skeleton struct {
	joints     []Joint
	root       JointID
	generation uint64
}

// NewSkeleton creates a skeleton holding a single root joint.
func NewSkeleton(rootName string, pose JointPose) *Skeleton {
	s := &Skeleton{}
	s.Rebuild(rootName, pose)
	return s
}

// Rebuild discards every joint and starts over with a fresh root. Selections
// taken before the call stop resolving.
func (s *Skeleton) Rebuild(rootName string, pose JointPose) JointID {
	s.generation++
	s.joints = s.joints[:0]
	s.joints = append(s.joints, Joint{
		Name:   rootName,
		Parent: NoJoint,
		Local:  pose,
		Global: mgl32.Ident4(),
	})
	s.root = 0
	return s.root
}

// AddJoint appends a child of parent and returns its ID.
func (s *Skeleton) AddJoint(name string, parent JointID, pose JointPose) (JointID, error) {
	if !s.valid(parent) {
		return NoJoint, fmt.Errorf("%w: parent %d of %q", ErrNoJoint, parent, name)
	}
	id := JointID(len(s.joints))
	s.joints = append(s.joints, Joint{
		Name:   name,
		Parent: parent,
		Local:  pose,
		Global: mgl32.Ident4(),
	})
	s.joints[parent].Children = append(s.joints[parent].Children, id)
	if globalDebug {
		debugCheckTreeDepth(s, id)
		debugCheckChildCount(s, parent)
	}
	return id, nil
}

// MustAddJoint is AddJoint for hierarchies built from constants. Panics on
// an invalid parent.
func (s *Skeleton) MustAddJoint(name string, parent JointID, pose JointPose) JointID {
	id, err := s.AddJoint(name, parent, pose)
	if err != nil {
		panic(err)
	}
	return id
}

func (s *Skeleton) valid(id JointID) bool {
	return id >= 0 && int(id) < len(s.joints)
}

// Root returns the root joint's ID.
func (s *Skeleton) Root() JointID { return s.root }

// Len returns the number of joints.
func (s *Skeleton) Len() int { return len(s.joints) }

// Generation counts Rebuild calls.
func (s *Skeleton) Generation() uint64 { return s.generation }

// Joint returns the joint with the given ID, or nil. The pointer is
// invalidated by the next AddJoint or Rebuild.
func (s *Skeleton) Joint(id JointID) *Joint {
	if !s.valid(id) {
		return nil
	}
	return &s.joints[id]
}

// Find returns the ID of the first joint with the given name.
func (s *Skeleton) Find(name string) (JointID, bool) {
	for i := range s.joints {
		if s.joints[i].Name == name {
			return JointID(i), true
		}
	}
	return NoJoint, false
}

// Walk visits every joint reachable from the root breadth-first, parents
// before children. fn must not add joints.
func (s *Skeleton) Walk(fn func(id JointID, j *Joint)) {
	if len(s.joints) == 0 {
		return
	}
	queue := []JointID{s.root}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		j := &s.joints[id]
		fn(id, j)
		queue = append(queue, j.Children...)
	}
}

// Validate checks that the joints form a single rooted tree: exactly one
// joint without a parent, every other joint listed exactly once in its
// parent's children, and every joint reachable from the root.
func (s *Skeleton) Validate() error {
	n := len(s.joints)
	if n == 0 {
		return fmt.Errorf("%w: no joints", ErrMalformedHierarchy)
	}

	roots := 0
	listed := make([]int, n)
	for i := range s.joints {
		j := &s.joints[i]
		if j.Parent == NoJoint {
			roots++
			if JointID(i) != s.root {
				return fmt.Errorf("%w: joint %q has no parent but is not the root", ErrMalformedHierarchy, j.Name)
			}
		} else if !s.valid(j.Parent) {
			return fmt.Errorf("%w: joint %q has parent %d", ErrNoJoint, j.Name, j.Parent)
		}
		for _, c := range j.Children {
			if !s.valid(c) {
				return fmt.Errorf("%w: joint %q lists child %d", ErrNoJoint, j.Name, c)
			}
			if s.joints[c].Parent != JointID(i) {
				return fmt.Errorf("%w: %q lists %q as a child but its parent is %d",
					ErrMalformedHierarchy, j.Name, s.joints[c].Name, s.joints[c].Parent)
			}
			listed[c]++
		}
	}
	if roots != 1 {
		return fmt.Errorf("%w: %d roots", ErrMalformedHierarchy, roots)
	}
	for i, count := range listed {
		if JointID(i) == s.root {
			if count != 0 {
				return fmt.Errorf("%w: root %q is listed as a child", ErrMalformedHierarchy, s.joints[i].Name)
			}
			continue
		}
		if count != 1 {
			return fmt.Errorf("%w: joint %q is listed as a child %d times", ErrMalformedHierarchy, s.joints[i].Name, count)
		}
	}

	// With one listing per joint and agreeing parent links, any joint not
	// reached from the root sits on a cycle.
	reached := 0
	s.Walk(func(JointID, *Joint) { reached++ })
	if reached != n {
		return fmt.Errorf("%w: %d joints unreachable from the root", ErrMalformedHierarchy, n-reached)
	}
	return nil
}
