package model

import "time"

// CollectorOption defines the interface for options observing the collection flow.
type CollectorOption interface {
	// New initialises the collector option.
	New() error

	// PrepareStep runs before the step prompts the operator.
	PrepareStep(parentStep, step *StepInfo) error
	// OnStepAttempt runs everytime the operator answers the step prompt.
	// err is nil when the answer was accepted.
	OnStepAttempt(step *StepInfo, elapsed time.Duration, err error) error
	// AfterStep runs once the step holds an accepted value.
	AfterStep(step *StepInfo, totalDuration time.Duration) error

	// Finish runs after the collection is finished.
	Finish() error
}
