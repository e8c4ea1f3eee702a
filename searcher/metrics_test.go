package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counting iterations and playouts", func(t *testing.T) {
		c := NewCollector()
		c.Start(2)
		c.AddIteration()
		c.AddIteration()
		c.AddAborted()
		c.AddPlayout(10, true)
		c.AddPlayout(20, true)
		c.AddPlayout(30, false)

		metric := c.Complete()

		require.Equal(t, 2, metric.Workers)
		require.Equal(t, int64(2), metric.Iterations)
		require.Equal(t, int64(1), metric.Aborted)
		require.Equal(t, int64(2), metric.FullPlayouts)
		require.Equal(t, int64(1), metric.Stalls)
		require.InDelta(t, 20.0, metric.MeanScore, 1e-9)
		require.InDelta(t, 10.0, metric.ScoreStdDev, 1e-9, "Should report the sample standard deviation")
		require.Positive(t, int64(metric.Duration))
	})

	t.Run("resetting on start", func(t *testing.T) {
		c := NewCollector()
		c.Start(1)
		c.AddIteration()
		c.AddPlayout(5, true)

		c.Start(1)
		metric := c.Complete()

		require.Equal(t, int64(0), metric.Iterations)
		require.Equal(t, int64(0), metric.FullPlayouts)
		require.Equal(t, 0.0, metric.MeanScore)
	})

	t.Run("describing a single playout", func(t *testing.T) {
		c := NewCollector()
		c.Start(1)
		c.AddPlayout(12, true)

		metric := c.Complete()

		require.Equal(t, 12.0, metric.MeanScore)
		require.Equal(t, 0.0, metric.ScoreStdDev)
	})

	t.Run("collecting nothing when disabled", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(4)
		c.AddIteration()
		c.AddPlayout(3, true)

		require.Equal(t, SearchMetric{}, c.Complete())
	})
}
