package measure

import (
	"sync"
	"time"
)

type DefaultMetric struct {
	mu            *sync.Mutex
	TotalDuration time.Duration
	stepElapsed   time.Duration
	total         int64
	rejected      int64
}

func (mt *DefaultMetric) AddAttempt(elapsed time.Duration, accepted bool) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.total++
	mt.stepElapsed += elapsed
	if !accepted {
		mt.rejected++
	}
}

func (mt *DefaultMetric) Attempts() int64 {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	return mt.total
}

func (mt *DefaultMetric) Rejected() int64 {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	return mt.rejected
}

func (mt *DefaultMetric) SetTotalDuration(totalDuration time.Duration) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.TotalDuration = totalDuration
}

func (mt *DefaultMetric) GetTotalDuration() time.Duration {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	return mt.TotalDuration
}

func (mt *DefaultMetric) AVGDuration() time.Duration {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	if mt.total == 0 {
		return time.Duration(0)
	}

	return round(time.Duration(float64(mt.stepElapsed) / float64(mt.total)))
}

func round(d time.Duration) time.Duration {
	switch {
	case d > time.Hour:
		d = d.Round(time.Minute)
	case d > time.Minute:
		d = d.Round(time.Second)
	case d > time.Second:
		d = d.Round(time.Millisecond)
	case d > time.Millisecond:
		d = d.Round(time.Microsecond)
	}

	return d
}
