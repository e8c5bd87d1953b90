package pipeline

import "errors"

var (
	// ErrInvalidStep is returned when a step expression or a pipeline file
	// entry cannot be parsed.
	ErrInvalidStep = errors.New("pipeline: invalid step")

	// ErrEmptyPipeline is returned by Load when no step was configured.
	ErrEmptyPipeline = errors.New("pipeline: no steps")
)
