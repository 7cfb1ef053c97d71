package drawer

import (
	"io"
	"time"

	"github.com/askiada/pipeline-params/pkg/collector/measure"
)

// Drawer is an interface that defines the methods for drawing the collection flow.
type Drawer interface {
	// AddStep adds a step to the flow drawer.
	AddStep(stepName string) error
	// AddLink adds a link between parent and children steps.
	AddLink(parentStepName, childrenStepName string) error
	// SetTotalTime sets the time spent in the step.
	SetTotalTime(stepName string, totalTime time.Duration) error
	// AddMeasure colours the steps from the measure.
	AddMeasure(measure measure.Measure) error
	// Render writes the flow graph to w.
	Render(w io.Writer) error
	// Draw creates a file with the flow graph.
	Draw() error
}
