// Package capture drives a capture run: it pulls frames from a source,
// requests one pose estimate per frame from the external model, scores the
// detections and aggregates them into a session that is submitted to the
// server when the stream ends.
package capture

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/poseform/formtrack/internal/logging"
	"github.com/poseform/formtrack/internal/pose"
)

// State is the observable phase of the capture loop.
type State string

const (
	StateIdle       State = "idle"
	StatePlaying    State = "playing"
	StateFinalizing State = "finalizing"
)

// Frame is one video frame handed to the pose model.
type Frame struct {
	Index int
	Data  []byte
}

// FrameSource yields frames on demand and reports io.EOF at end of stream.
// Decoding the video is the source's problem, not the loop's.
type FrameSource interface {
	Next(ctx context.Context) (Frame, error)
	Close() error
}

// Estimator is the external pose-estimation collaborator.
type Estimator interface {
	EstimatePose(ctx context.Context, frame Frame) (pose.Pose, error)
}

// SessionSaver submits the finished session. The api.Client satisfies it.
type SessionSaver interface {
	SaveSession(ctx context.Context, exercise string, accuracy float64, feedback string) error
}

// Loop processes frames strictly sequentially: the only suspension point
// per tick is awaiting one pose estimate, and a second estimate is never
// requested before the first resolves. Stop and context cancellation are
// checked before each tick, never mid-tick.
type Loop struct {
	source    FrameSource
	estimator Estimator
	saver     SessionSaver
	logger    logging.Logger
	threshold float64

	mu    sync.Mutex
	state State

	stop      chan struct{}
	stopOnce  sync.Once
	closeOnce sync.Once
	closeErr  error
}

func NewLoop(source FrameSource, estimator Estimator, saver SessionSaver, logger logging.Logger, threshold float64) *Loop {
	return &Loop{
		source:    source,
		estimator: estimator,
		saver:     saver,
		logger:    logger.With("module", "capture"),
		threshold: threshold,
		state:     StateIdle,
		stop:      make(chan struct{}),
	}
}

func (l *Loop) setState(s State) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state = s
}

// State reports the loop's current phase.
func (l *Loop) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Stop pauses the run: the loop finishes the in-flight tick, then moves to
// finalization. Safe to call more than once and from other goroutines.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}

// Close releases the frame source. It runs at most once; Run calls it on
// every exit path.
func (l *Loop) Close() error {
	l.closeOnce.Do(func() { l.closeErr = l.source.Close() })
	return l.closeErr
}

func (l *Loop) stopped(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	case <-l.stop:
		return true
	default:
		return false
	}
}

// Run executes the capture loop until end of stream, Stop, or context
// cancellation, then finalizes and submits the session. Context
// cancellation is teardown: the source is released and no session is
// submitted. Per-frame model failures are recovered by skipping the frame.
func (l *Loop) Run(ctx context.Context, exercise string) (pose.Result, error) {
	defer l.Close()

	l.setState(StatePlaying)
	agg := pose.NewAggregator()

	for {
		if l.stopped(ctx) {
			if ctx.Err() != nil {
				l.setState(StateIdle)
				return pose.Result{}, ctx.Err()
			}
			break
		}

		frame, err := l.source.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			l.setState(StateIdle)
			return pose.Result{}, err
		}

		p, err := l.estimator.EstimatePose(ctx, frame)
		if err != nil {
			// model hiccups cost one frame, not the run
			l.logger.Warn(ctx, "skipping frame: estimate failed", "frame", frame.Index, "error", err.Error())
			continue
		}

		score, err := pose.Score(p, l.threshold)
		if err != nil {
			l.logger.Warn(ctx, "skipping frame: invalid pose", "frame", frame.Index, "error", err.Error())
			continue
		}

		if err := agg.AddFrame(score); err != nil {
			l.setState(StateIdle)
			return pose.Result{}, err
		}
	}

	l.setState(StateFinalizing)

	result, err := agg.Finalize(exercise)
	if err != nil {
		l.setState(StateIdle)
		return pose.Result{}, err
	}

	if l.saver != nil {
		if err := l.saver.SaveSession(ctx, exercise, result.Accuracy, result.Feedback); err != nil {
			l.setState(StateIdle)
			return result, err
		}
	}

	l.setState(StateIdle)
	return result, nil
}
