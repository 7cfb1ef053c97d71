package drawer

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/pipeline-params/pkg/collector/measure"
	"github.com/askiada/pipeline-params/pkg/collector/model"
)

func TestRenderKeepsStepOrder(t *testing.T) {
	d := NewDOTDrawer("")
	for _, name := range []string{"start", "input_dir", "outdir", "end"} {
		require.NoError(t, d.AddStep(name))
	}
	require.NoError(t, d.AddLink("start", "input_dir"))
	require.NoError(t, d.AddLink("input_dir", "outdir"))
	require.NoError(t, d.AddLink("outdir", "end"))
	require.NoError(t, d.SetTotalTime("input_dir", 2*time.Second))

	buf := &bytes.Buffer{}
	require.NoError(t, d.Render(buf))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "strict digraph {"))
	assert.Contains(t, out, `"input_dir" [ label=<input_dir <BR /> <FONT POINT-SIZE="12">2s</FONT>>, weight=0 ];`)
	assert.Contains(t, out, `"start" [ weight=0 ];`)

	first := strings.Index(out, `"start" -> "input_dir";`)
	second := strings.Index(out, `"input_dir" -> "outdir";`)
	third := strings.Index(out, `"outdir" -> "end";`)
	assert.True(t, first > 0 && first < second && second < third, out)
}

func TestAddStepErrors(t *testing.T) {
	d := NewDOTDrawer("")
	require.NoError(t, d.AddStep("a"))
	assert.Error(t, d.AddStep("a"))
	assert.Error(t, d.AddLink("a", "missing"))
	assert.Error(t, d.SetTotalTime("missing", time.Second))
}

func TestAddMeasureColoursSteps(t *testing.T) {
	d := NewDOTDrawer("")
	require.NoError(t, d.AddStep("fast"))
	require.NoError(t, d.AddStep("slow"))
	require.NoError(t, d.AddStep("idle"))

	m := measure.NewDefaultMeasure()
	m.AddMetric("fast").SetTotalDuration(time.Second)
	slow := m.AddMetric("slow")
	slow.AddAttempt(time.Second, false)
	slow.AddAttempt(2*time.Second, true)
	slow.SetTotalDuration(3 * time.Second)
	m.AddMetric("idle")

	require.NoError(t, d.AddMeasure(m))

	buf := &bytes.Buffer{}
	require.NoError(t, d.Render(buf))
	out := buf.String()

	assert.Contains(t, out, "3s, 2 attempt(s)")
	assert.Contains(t, out, "1s, 0 attempt(s)")
	assert.Equal(t, 2, strings.Count(out, `style="filled"`))
	assert.Contains(t, out, `"idle" [ weight=0 ];`)
}

func TestCollectorDrawerWritesFile(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "flow.dot")
	m := measure.NewDefaultMeasure()
	opt := CollectorDrawer(NewDOTDrawer(fileName), m)

	step := &model.StepInfo{Type: model.FieldStepType, Name: "profile"}
	m.AddMetric(step.Name).SetTotalDuration(time.Millisecond)

	require.NoError(t, opt.New())
	require.NoError(t, opt.PrepareStep(model.StartStep, step))
	require.NoError(t, opt.OnStepAttempt(step, time.Millisecond, nil))
	require.NoError(t, opt.AfterStep(step, time.Millisecond))
	require.NoError(t, opt.Finish())

	b, err := os.ReadFile(fileName)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"start" -> "profile";`)
	assert.Contains(t, string(b), `"profile" -> "end";`)
	assert.Contains(t, string(b), `fillcolor=`)
}
