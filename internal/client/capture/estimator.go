package capture

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/poseform/formtrack/internal/common"
	"github.com/poseform/formtrack/internal/pose"
)

// HTTPEstimator requests pose estimates from a detection service over HTTP.
// Each frame is posted as a raw image and the service answers with the
// detected keypoints.
type HTTPEstimator struct {
	endpoint   string
	httpClient *http.Client
}

func NewHTTPEstimator(endpoint string, timeout time.Duration) *HTTPEstimator {
	return &HTTPEstimator{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type estimateKeypoint struct {
	Name  string  `json:"name"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Score float64 `json:"score"`
}

type estimateResponse struct {
	Keypoints []estimateKeypoint `json:"keypoints"`
}

// EstimatePose posts the frame to the detection service. Transport
// failures and non-200 answers surface as common.ErrModelUnavailable so
// the caller can treat them as a recoverable model outage.
func (e *HTTPEstimator) EstimatePose(ctx context.Context, frame Frame) (pose.Pose, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint, bytes.NewReader(frame.Data))
	if err != nil {
		return nil, fmt.Errorf("building estimate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrModelUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", common.ErrModelUnavailable, resp.StatusCode)
	}

	var body estimateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", common.ErrModelUnavailable, err)
	}

	p := make(pose.Pose, len(body.Keypoints))
	for _, kp := range body.Keypoints {
		p[pose.KeypointName(kp.Name)] = pose.Keypoint{X: kp.X, Y: kp.Y, Confidence: kp.Score}
	}
	return p, nil
}
