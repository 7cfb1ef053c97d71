package collector

import (
	"context"
	"testing"
	"time"

	"github.com/dominikbraun/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/pipeline-params/pkg/collector/model"
)

func noopStep(name string) *Step {
	return NewStep(&model.StepInfo{Type: model.FieldStepType, Name: name},
		func(context.Context, *Collector, *Values, func(time.Duration, error)) error { return nil })
}

func stepNames(t *testing.T, flow *Flow) []string {
	t.Helper()
	steps, err := flow.Steps()
	require.NoError(t, err)
	names := make([]string, 0, len(steps))
	for _, step := range steps {
		names = append(names, step.Info.Name)
	}
	return names
}

func TestDefaultFlowOrder(t *testing.T) {
	flow, err := defaultFlow()
	require.NoError(t, err)
	assert.Equal(t, []string{StepInputDir, StepOutdir, StepDoNorm, StepProfile, StepConfirm}, stepNames(t, flow))

	confirm, err := flow.Step(StepConfirm)
	require.NoError(t, err)
	assert.Equal(t, model.ConfirmStepType, confirm.Info.Type)
}

func TestFlowInsertionOrderBreaksTies(t *testing.T) {
	flow := NewFlow()
	for _, name := range []string{"c", "a", "b"} {
		require.NoError(t, flow.AddStep(noopStep(name)))
	}
	assert.Equal(t, []string{"c", "a", "b"}, stepNames(t, flow))
}

func TestFlowErrors(t *testing.T) {
	flow := NewFlow()
	require.NoError(t, flow.AddStep(noopStep("a")))
	require.NoError(t, flow.AddStep(noopStep("b"), "a"))

	assert.ErrorIs(t, flow.AddStep(noopStep("a")), ErrStepExists)
	assert.ErrorIs(t, flow.AddStep(noopStep("c"), "missing"), ErrUnknownStep)
	assert.ErrorIs(t, flow.Link("b", "a"), graph.ErrEdgeCreatesCycle)

	_, err := flow.Step("missing")
	assert.ErrorIs(t, err, ErrUnknownStep)
}
