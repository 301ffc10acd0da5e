package pose

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poseform/formtrack/internal/common"
)

func TestAggregator_MeanOfScores(t *testing.T) {
	t.Parallel()

	a := NewAggregator()
	scores := []float64{70.0, 80.0, 90.0}
	for _, s := range scores {
		require.NoError(t, a.AddFrame(s))
	}

	res, err := a.Finalize("Squats")
	require.NoError(t, err)

	assert.InDelta(t, 80.0, res.Accuracy, 1e-9)
	assert.Equal(t, 3, res.Frames)
	assert.False(t, res.NoDetection)
	assert.Equal(t, "Completed Squats with 80.0% accuracy", res.Feedback)
}

func TestAggregator_TwoFrameSession(t *testing.T) {
	t.Parallel()

	// 12 of 17 keypoints, then 17 of 17.
	a := NewAggregator()
	require.NoError(t, a.AddFrame(100*12.0/17.0))
	require.NoError(t, a.AddFrame(100.0))

	res, err := a.Finalize("Push-ups")
	require.NoError(t, err)

	assert.InDelta(t, 85.3, res.Accuracy, 0.05)
}

func TestAggregator_ZeroFramesFallback(t *testing.T) {
	t.Parallel()

	a := NewAggregator()
	res, err := a.Finalize("Lunges")
	require.NoError(t, err)

	assert.Equal(t, 0.0, res.Accuracy)
	assert.True(t, res.NoDetection)
	assert.Equal(t, "No pose detected during Lunges", res.Feedback)
	// the guarded fallback must never yield NaN
	assert.False(t, res.Accuracy != res.Accuracy)
}

func TestAggregator_FinalizeIsTerminal(t *testing.T) {
	t.Parallel()

	a := NewAggregator()
	require.NoError(t, a.AddFrame(50))

	_, err := a.Finalize("Squats")
	require.NoError(t, err)

	_, err = a.Finalize("Squats")
	assert.ErrorIs(t, err, common.ErrFinalized)

	err = a.AddFrame(10)
	assert.ErrorIs(t, err, common.ErrFinalized)
}
