package metrics

import "fmt"

// ComputationError reports one failed metric of one artifact.
type ComputationError struct {
	Metric string
	Path   string
	Err    error
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("metrics: %s on %s: %v", e.Metric, e.Path, e.Err)
}

func (e *ComputationError) Unwrap() error { return e.Err }
