package sampler_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tanakalab/csar/sampler"
)

func TestSampler_EmptyMeanIsZero(t *testing.T) {
	s := sampler.New()
	require.Zero(t, s.Mean())
	require.Zero(t, s.Trial())
}

func TestSampler_MeanMatchesAverage(t *testing.T) {
	s := sampler.New()
	observations := []float64{2, 4, 6, 8}
	for _, x := range observations {
		s.Observe(x)
	}

	require.Equal(t, len(observations), s.Trial())
	require.InDelta(t, 5.0, s.Mean(), 1e-9)
}
