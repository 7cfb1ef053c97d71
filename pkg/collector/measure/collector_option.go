package measure

import (
	"time"

	"github.com/askiada/pipeline-params/pkg/collector/model"
)

type collectorMeasure struct {
	Measure
}

func (cm *collectorMeasure) New() error {
	cm.AddMetric(model.StartStep.Name)
	cm.AddMetric(model.EndStep.Name)
	return nil
}

func (cm *collectorMeasure) PrepareStep(_, step *model.StepInfo) error {
	cm.AddMetric(step.Name)
	return nil
}

func (cm *collectorMeasure) OnStepAttempt(step *model.StepInfo, elapsed time.Duration, err error) error {
	if mt := cm.GetMetric(step.Name); mt != nil {
		mt.AddAttempt(elapsed, err == nil)
	}
	return nil
}

func (cm *collectorMeasure) AfterStep(step *model.StepInfo, totalDuration time.Duration) error {
	if mt := cm.GetMetric(step.Name); mt != nil {
		mt.SetTotalDuration(totalDuration)
	}
	return nil
}

func (cm *collectorMeasure) Finish() error {
	return nil
}

// CollectorMeasure records every step of the collection flow into measure.
func CollectorMeasure(measure Measure) model.CollectorOption {
	return &collectorMeasure{measure}
}
