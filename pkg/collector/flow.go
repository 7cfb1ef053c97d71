package collector

import (
	"context"
	"time"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"

	"github.com/askiada/pipeline-params/internal/store"
	"github.com/askiada/pipeline-params/pkg/collector/model"
)

// StepFunc fills in the values of a step. observe must be called after every answer.
type StepFunc func(ctx context.Context, c *Collector, v *Values, observe func(elapsed time.Duration, err error)) error

// Step is one prompt of the collection flow.
type Step struct {
	Info *model.StepInfo
	run  StepFunc
}

// NewStep creates a step running fn.
func NewStep(info *model.StepInfo, fn StepFunc) *Step {
	return &Step{Info: info, run: fn}
}

func stepHash(s *Step) string {
	return s.Info.Name
}

// Flow is the directed acyclic graph of the collection steps.
type Flow struct {
	store store.CustomStore[string, *Step]
	graph graph.Graph[string, *Step]
}

func NewFlow() *Flow {
	s := store.NewOrderedStore[string, *Step]()
	return &Flow{
		store: s,
		graph: graph.NewWithStore(stepHash, s, graph.Directed(), graph.PreventCycles()),
	}
}

// AddStep adds step to the flow, running after every step named in after.
func (f *Flow) AddStep(step *Step, after ...string) error {
	err := f.graph.AddVertex(step)
	if err != nil {
		if errors.Is(err, graph.ErrVertexAlreadyExists) {
			return errors.Wrap(ErrStepExists, step.Info.Name)
		}
		return errors.Wrapf(err, "unable to add step %s", step.Info.Name)
	}

	for _, parent := range after {
		err := f.Link(parent, step.Info.Name)
		if err != nil {
			return err
		}
	}

	return nil
}

// Link makes child run after parent.
func (f *Flow) Link(parent, child string) error {
	err := f.graph.AddEdge(parent, child)
	if err != nil {
		if errors.Is(err, graph.ErrVertexNotFound) {
			return errors.Wrapf(ErrUnknownStep, "unable to link %s to %s", parent, child)
		}
		return errors.Wrapf(err, "unable to link %s to %s", parent, child)
	}

	return nil
}

// Step returns the step with the given name.
func (f *Flow) Step(name string) (*Step, error) {
	step, err := f.graph.Vertex(name)
	if err != nil {
		return nil, errors.Wrap(ErrUnknownStep, name)
	}

	return step, nil
}

// Steps returns the steps in execution order. Steps that could run in any
// order keep the order in which they were added.
func (f *Flow) Steps() ([]*Step, error) {
	names, err := graph.StableTopologicalSort(f.graph, func(a, b string) bool {
		return f.store.Position(a) < f.store.Position(b)
	})
	if err != nil {
		return nil, errors.Wrap(err, "unable to order steps")
	}

	steps := make([]*Step, 0, len(names))
	for _, name := range names {
		step, err := f.Step(name)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}

	return steps, nil
}
