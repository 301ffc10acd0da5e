package pose

import (
	"fmt"

	"github.com/poseform/formtrack/internal/common"
)

// DefaultThreshold is the canonical confidence cut-off for counting a
// keypoint as detected.
const DefaultThreshold = 0.3

// Score converts one pose into a frame quality score in [0,100]: the
// percentage of keypoints whose confidence exceeds threshold.
//
// A pose must carry the complete keypoint set: the model always reports all
// of them, so a missing or unknown name means malformed input and returns
// common.ErrInvalidFrameData. Scoring a partial pose over its own count
// would inflate the frame score. Callers are expected to skip the frame
// rather than feed the error value into aggregation.
func Score(p Pose, threshold float64) (float64, error) {
	if len(p) == 0 {
		return 0, fmt.Errorf("empty keypoint set: %w", common.ErrInvalidFrameData)
	}
	if len(p) != len(KeypointNames) {
		return 0, fmt.Errorf("incomplete keypoint set (%d of %d): %w", len(p), len(KeypointNames), common.ErrInvalidFrameData)
	}

	detected := 0
	for name, kp := range p {
		if !knownKeypoint(name) {
			return 0, fmt.Errorf("unknown keypoint %q: %w", name, common.ErrInvalidFrameData)
		}
		if kp.Confidence > threshold {
			detected++
		}
	}

	return 100 * float64(detected) / float64(len(KeypointNames)), nil
}

func knownKeypoint(name KeypointName) bool {
	for _, n := range KeypointNames {
		if n == name {
			return true
		}
	}
	return false
}
