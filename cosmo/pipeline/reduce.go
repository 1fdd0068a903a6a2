package pipeline

import (
	"github.com/katalvlaran/lvlath/cosmo/accumulator"
	"github.com/katalvlaran/lvlath/cosmo/logging"
)

// ReduceStats summarizes one Reduce call.
type ReduceStats struct {
	Merged    int
	Conflicts int
}

// Reduce merges every result into tree in slice order. A result whose key
// shape clashes with its simulation is logged and skipped. When two results
// share a key the later one wins per metric.
func Reduce(tree *accumulator.Tree, results []Result, logger *logging.Logger) ReduceStats {
	if logger == nil {
		logger = logging.NewNop()
	}
	var st ReduceStats
	for _, r := range results {
		if err := tree.Merge(r.Key, r.Record); err != nil {
			st.Conflicts++
			logger.Warn("result skipped", "path", r.Path, "key", r.Key.String(), "error", err)
			continue
		}
		st.Merged++
	}

	return st
}
