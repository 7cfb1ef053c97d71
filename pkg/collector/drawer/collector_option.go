package drawer

import (
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/pipeline-params/pkg/collector/measure"
	"github.com/askiada/pipeline-params/pkg/collector/model"
)

type collectorDrawer struct {
	Drawer
	measure measure.Measure
	last    string
}

func (cd *collectorDrawer) New() error {
	cd.last = model.StartStep.Name
	return cd.AddStep(model.StartStep.Name)
}

func (cd *collectorDrawer) PrepareStep(parentStep, step *model.StepInfo) error {
	err := cd.AddStep(step.Name)
	if err != nil {
		return err
	}

	err = cd.AddLink(parentStep.Name, step.Name)
	if err != nil {
		return err
	}

	cd.last = step.Name

	return nil
}

func (cd *collectorDrawer) OnStepAttempt(_ *model.StepInfo, _ time.Duration, _ error) error {
	return nil
}

func (cd *collectorDrawer) AfterStep(step *model.StepInfo, totalDuration time.Duration) error {
	return cd.SetTotalTime(step.Name, totalDuration)
}

func (cd *collectorDrawer) Finish() error {
	err := cd.AddStep(model.EndStep.Name)
	if err != nil {
		return err
	}

	err = cd.AddLink(cd.last, model.EndStep.Name)
	if err != nil {
		return err
	}

	if cd.measure != nil {
		err = cd.AddMeasure(cd.measure)
		if err != nil {
			return errors.Wrap(err, "unable to add measure")
		}
	}

	return cd.Draw()
}

// CollectorDrawer draws the collection flow once it is finished.
// msr is optional; when set, steps are coloured by the time spent in them.
func CollectorDrawer(drawer Drawer, msr measure.Measure) model.CollectorOption {
	return &collectorDrawer{Drawer: drawer, measure: msr}
}
