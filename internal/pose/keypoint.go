// Package pose holds the frame-scoring domain: keypoint definitions,
// per-frame detection scoring and session-level aggregation.
package pose

// KeypointName identifies one anatomical point in the single-person
// 17-point model output.
type KeypointName string

const (
	Nose          KeypointName = "nose"
	LeftEye       KeypointName = "left_eye"
	RightEye      KeypointName = "right_eye"
	LeftEar       KeypointName = "left_ear"
	RightEar      KeypointName = "right_ear"
	LeftShoulder  KeypointName = "left_shoulder"
	RightShoulder KeypointName = "right_shoulder"
	LeftElbow     KeypointName = "left_elbow"
	RightElbow    KeypointName = "right_elbow"
	LeftWrist     KeypointName = "left_wrist"
	RightWrist    KeypointName = "right_wrist"
	LeftHip       KeypointName = "left_hip"
	RightHip      KeypointName = "right_hip"
	LeftKnee      KeypointName = "left_knee"
	RightKnee     KeypointName = "right_knee"
	LeftAnkle     KeypointName = "left_ankle"
	RightAnkle    KeypointName = "right_ankle"
)

// KeypointNames lists every keypoint the model reports, in model output order.
var KeypointNames = []KeypointName{
	Nose, LeftEye, RightEye, LeftEar, RightEar,
	LeftShoulder, RightShoulder, LeftElbow, RightElbow,
	LeftWrist, RightWrist, LeftHip, RightHip,
	LeftKnee, RightKnee, LeftAnkle, RightAnkle,
}

// Keypoint is one detected point: image-space position plus the model's
// confidence in [0,1].
type Keypoint struct {
	X          float64
	Y          float64
	Confidence float64
}

// Pose maps keypoint names to detections for one video frame.
type Pose map[KeypointName]Keypoint
