package pipeline

import (
	"errors"
	"fmt"
)

// ErrInterrupted is returned by Run when its context ends before every
// task has been collected. No results are returned with it.
var ErrInterrupted = errors.New("pipeline: run interrupted")

// ArtifactError reports an artifact dropped before any metric ran.
type ArtifactError struct {
	Path  string
	Stage string
	Err   error
}

func (e *ArtifactError) Error() string {
	return fmt.Sprintf("pipeline: %s %s: %v", e.Stage, e.Path, e.Err)
}

func (e *ArtifactError) Unwrap() error { return e.Err }
