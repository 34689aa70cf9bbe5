package estimator

import "errors"

var (
	// ErrModelUnavailable covers every failure to load or invoke the
	// regression model. Callers surface it as FailureMessage.
	ErrModelUnavailable = errors.New("estimator: model unavailable")
	// ErrInvalidInput is returned when an input is outside its domain.
	ErrInvalidInput = errors.New("estimator: invalid input")
)

const (
	SuccessTitle   = "Your ideal sleep time is…"
	FailureTitle   = "Something went wrong"
	FailureMessage = "There was an error when calculating sleep time."
)
