package marionette

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// ErrEmptySkeleton reports a skeleton document without a root joint.
var ErrEmptySkeleton = errors.New("marionette: skeleton document has no root")

// ParseClip decodes a clip document:
//
//	name: wave
//	duration: 5
//	position:
//	  - {time: 0, value: [0, 0, 0], method: linear}
//	  - {time: 5, value: [5, 0, 0], method: cubic}
//
// Missing methods default to linear. Tracks are kept as written; problems
// found by Clip.Validate are logged, not returned.
func ParseClip(data []byte) (*Clip, error) {
	var clip Clip
	if err := yaml.Unmarshal(data, &clip); err != nil {
		return nil, fmt.Errorf("marionette: failed to parse clip: %w", err)
	}
	if err := clip.Validate(); err != nil {
		logger.Warn("clip document has malformed tracks", zap.String("clip", clip.Name), zap.Error(err))
	}
	return &clip, nil
}

// LoadClip reads and parses a clip document from path.
func LoadClip(path string) (*Clip, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("marionette: read clip %s: %w", path, err)
	}
	return ParseClip(data)
}

// MarshalClip encodes a clip in the format ParseClip reads.
func MarshalClip(c *Clip) ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marionette: failed to encode clip: %w", err)
	}
	return data, nil
}

// jointDoc is one joint of a skeleton document. Rotation is in Euler
// degrees; a missing scale means unit scale.
type jointDoc struct {
	Name        string      `yaml:"name"`
	Translation mgl32.Vec3  `yaml:"translation"`
	Rotation    mgl32.Vec3  `yaml:"rotation"`
	Scale       *mgl32.Vec3 `yaml:"scale"`
	Children    []jointDoc  `yaml:"children"`
}

func (d jointDoc) pose() JointPose {
	p := NewJointPose()
	p.Translation = d.Translation
	p.SetEulerDegrees(d.Rotation)
	if d.Scale != nil {
		p.Scale = *d.Scale
	}
	return p
}

// ParseSkeleton decodes a skeleton document. Nesting under children defines
// the hierarchy, so the result is always a well-formed tree:
//
//	name: root
//	translation: [0, 2, 0]
//	scale: [0.5, 0.5, 0.5]
//	children:
//	  - name: head
//	    translation: [0, 2.5, 0]
func ParseSkeleton(data []byte) (*Skeleton, error) {
	var root jointDoc
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("marionette: failed to parse skeleton: %w", err)
	}
	if root.Name == "" {
		return nil, ErrEmptySkeleton
	}

	s := NewSkeleton(root.Name, root.pose())
	var add func(parent JointID, docs []jointDoc) error
	add = func(parent JointID, docs []jointDoc) error {
		for _, d := range docs {
			if d.Name == "" {
				return fmt.Errorf("marionette: joint under %q has no name", s.joints[parent].Name)
			}
			id, err := s.AddJoint(d.Name, parent, d.pose())
			if err != nil {
				return err
			}
			if err := add(id, d.Children); err != nil {
				return err
			}
		}
		return nil
	}
	if err := add(s.Root(), root.Children); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadSkeleton reads and parses a skeleton document from path.
func LoadSkeleton(path string) (*Skeleton, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("marionette: read skeleton %s: %w", path, err)
	}
	return ParseSkeleton(data)
}
