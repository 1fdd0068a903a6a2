package metrics_test

import (
	"testing"

	"github.com/katalvlaran/lvlath/cosmo/accumulator"
	"github.com/katalvlaran/lvlath/cosmo/metrics"
	"github.com/stretchr/testify/require"
)

func TestDecide(t *testing.T) {
	rec := accumulator.Record{
		"entropy":   accumulator.Scalar(1.2),
		"empty":     accumulator.Sequence(nil),
		"closeness": accumulator.Sequence([]float64{1, 2, 3}),
		"wrongkind": accumulator.Scalar(3),
		"laplacian": accumulator.Ref("/x.npz"),
	}
	cases := []struct {
		name    string
		metric  string
		policy  metrics.Policy
		wantLen int
		want    metrics.Decision
	}{
		{"scalar missing", "hurst", metrics.PolicyScalar, -1, metrics.Missing},
		{"scalar present", "entropy", metrics.PolicyScalar, -1, metrics.Trusted},
		{"sequence missing", "betweenness", metrics.PolicySequence, 3, metrics.Missing},
		{"sequence empty", "empty", metrics.PolicySequence, 3, metrics.Retryable},
		{"sequence populated", "closeness", metrics.PolicySequence, 3, metrics.Trusted},
		{"sequence stale length", "closeness", metrics.PolicySequence, 4, metrics.Retryable},
		{"sequence unchecked length", "closeness", metrics.PolicySequence, -1, metrics.Trusted},
		{"sequence wrong kind", "wrongkind", metrics.PolicySequence, 1, metrics.Retryable},
		{"always present", "laplacian", metrics.PolicyAlways, -1, metrics.Retryable},
		{"always missing", "nothing", metrics.PolicyAlways, -1, metrics.Missing},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := metrics.Decide(rec, tc.metric, tc.policy, tc.wantLen)
			require.Equal(t, tc.want, got)
			require.Equal(t, tc.want != metrics.Trusted, got.NeedsCompute())
		})
	}
}

func TestDecisionStrings(t *testing.T) {
	require.Equal(t, "retryable", metrics.Retryable.String())
	require.Equal(t, "sequence", metrics.PolicySequence.String())
}
