package model

// EstimatorState tracks whether a trainable model has been fitted.
type EstimatorState int

const (
	// NotFitted marks a model before Fit.
	NotFitted EstimatorState = iota
	// Fitted marks a model after a successful Fit.
	Fitted
)

// BaseEstimator is embedded by trainable model types to carry fit state.
type BaseEstimator struct {
	state EstimatorState
}

// IsFitted reports whether the model has been fitted.
func (e *BaseEstimator) IsFitted() bool {
	return e.state == Fitted
}

// SetFitted marks the model as fitted.
func (e *BaseEstimator) SetFitted() {
	e.state = Fitted
}

// Reset returns the model to the unfitted state.
func (e *BaseEstimator) Reset() {
	e.state = NotFitted
}
