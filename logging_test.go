package timetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNilLoggerDoesNotPanic covers S8: every solver constructor must
// tolerate a nil *zap.Logger, falling back to a no-op logger.
func TestNilLoggerDoesNotPanic(t *testing.T) {
	p := minimalFeasibleProblem(t)

	assert.NotPanics(t, func() {
		sa, err := NewSA(p, WithSALogger(nil))
		require.NoError(t, err)
		sa.Search()
	})

	assert.NotPanics(t, func() {
		hc, err := NewHCSteepestAscent(p, WithHCLogger(nil))
		require.NoError(t, err)
		hc.Search()
	})

	assert.NotPanics(t, func() {
		ga, err := NewGA(p, WithGALogger(nil), WithGAParams(GAParams{
			PopulationSize: 2, MaxGenerations: 1, CrossoverRate: 0.5,
			MutationRate: 0.1, TournamentK: 2, Elitism: 0,
		}))
		require.NoError(t, err)
		ga.Search()
	})
}
