package dynamo

import "errors"

// Domain errors for attractor operations.
var (
	// ErrUnrepresentable indicates a projected coordinate that cannot be
	// converted to a screen pixel (NaN, Inf or outside the int32 range).
	ErrUnrepresentable = errors.New("dynamo: coordinate not representable as a pixel")

	// ErrDisplayUnavailable indicates the rendering surface could not be acquired.
	ErrDisplayUnavailable = errors.New("dynamo: display unavailable")

	// ErrUnknownFamily indicates an attractor tag with no registered field.
	ErrUnknownFamily = errors.New("dynamo: unknown attractor family")

	// ErrMissingParam indicates a field constructor was given an incomplete parameter set.
	ErrMissingParam = errors.New("dynamo: missing field parameter")

	// ErrNoInitialPoints indicates an attractor instance built without trajectories.
	ErrNoInitialPoints = errors.New("dynamo: no initial points")

	// ErrInvalidConfig indicates a configuration value outside its valid range.
	ErrInvalidConfig = errors.New("dynamo: invalid configuration")
)

// ScenarioError wraps an error with the scenario that produced it.
type ScenarioError struct {
	Scenario string
	Index    int
	Wrapped  error
}

func (e *ScenarioError) Error() string {
	return "scenario " + e.Scenario + ": " + e.Wrapped.Error()
}

func (e *ScenarioError) Unwrap() error {
	return e.Wrapped
}
