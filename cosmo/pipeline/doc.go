// Package pipeline runs the metric catalog over many graph artifacts in
// parallel and folds the per-artifact results back into the accumulator
// tree.
//
// Each task reads only its own record of the prior tree, works on a private
// copy and returns it; tasks never share mutable state. Failures are scoped:
// an artifact that cannot be classified or loaded is logged and dropped, a
// metric that fails is logged and left for the next run. Reduce is the only
// place the tree is written.
package pipeline
