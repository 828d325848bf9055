package marionette

import "go.uber.org/zap"

// debugMaxTreeDepth is the depth past which joint insertion warns.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(s *Skeleton, id JointID) {
	depth := 0
	for p := id; p != NoJoint; p = s.joints[p].Parent {
		depth++
		if depth > len(s.joints) {
			logger.Warn("joint parent chain loops", zap.String("joint", s.joints[id].Name))
			return
		}
	}
	if depth > debugMaxTreeDepth {
		logger.Warn("skeleton depth exceeds threshold",
			zap.String("joint", s.joints[id].Name),
			zap.Int("depth", depth),
			zap.Int("threshold", debugMaxTreeDepth))
	}
}

// debugMaxChildCount is the fan-out past which joint insertion warns.
const debugMaxChildCount = 256

func debugCheckChildCount(s *Skeleton, id JointID) {
	if n := len(s.joints[id].Children); n > debugMaxChildCount {
		logger.Warn("joint has many children",
			zap.String("joint", s.joints[id].Name),
			zap.Int("children", n),
			zap.Int("threshold", debugMaxChildCount))
	}
}
