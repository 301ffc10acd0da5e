package pose

import (
	"fmt"

	"github.com/poseform/formtrack/internal/common"
)

// Result summarizes one completed capture run.
type Result struct {
	Accuracy    float64
	Feedback    string
	Frames      int
	NoDetection bool
}

// Aggregator accumulates frame scores for a single capture run.
// It is not safe for concurrent use; the capture loop feeds it from one
// goroutine only.
type Aggregator struct {
	sum       float64
	count     int
	finalized bool
}

func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// AddFrame accumulates one frame score. Returns common.ErrFinalized after
// Finalize has been called.
func (a *Aggregator) AddFrame(score float64) error {
	if a.finalized {
		return common.ErrFinalized
	}
	a.sum += score
	a.count++
	return nil
}

// Frames reports how many frame scores have been accumulated.
func (a *Aggregator) Frames() int {
	return a.count
}

// Finalize computes the session result and retires the aggregator.
//
// With zero accumulated frames the result carries accuracy 0 and
// NoDetection=true instead of a division by zero. Otherwise accuracy is the
// mean of the accumulated scores and the feedback line repeats the exercise
// name with the rounded accuracy.
func (a *Aggregator) Finalize(exercise string) (Result, error) {
	if a.finalized {
		return Result{}, common.ErrFinalized
	}
	a.finalized = true

	if a.count == 0 {
		return Result{
			Feedback:    fmt.Sprintf("No pose detected during %s", exercise),
			NoDetection: true,
		}, nil
	}

	accuracy := a.sum / float64(a.count)
	return Result{
		Accuracy: accuracy,
		Feedback: fmt.Sprintf("Completed %s with %.1f%% accuracy", exercise, accuracy),
		Frames:   a.count,
	}, nil
}
