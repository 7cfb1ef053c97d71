package measure

import "time"

// Measure holds one metric per step of the collection flow.
type Measure interface {
	AddMetric(name string) Metric
	GetMetric(name string) Metric
	AllMetrics() map[string]Metric
}

// Metric records the operator answers given to a single step.
type Metric interface {
	AddAttempt(elapsed time.Duration, accepted bool)
	Attempts() int64
	Rejected() int64
	AVGDuration() time.Duration
	SetTotalDuration(totalDuration time.Duration)
	GetTotalDuration() time.Duration
}
