package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPipelineParamsValidate(t *testing.T) {
	tcs := map[string]struct {
		params  PipelineParams
		wantErr error
	}{
		"complete":      {params: PipelineParams{InputDir: "/tmp/in", Outdir: DefaultOutdir, DoNorm: true}},
		"only required": {params: PipelineParams{InputDir: "data"}},
		"missing input": {params: PipelineParams{Outdir: DefaultOutdir}, wantErr: ErrRequiredField},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			err := tc.params.Validate()
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestFieldsOrder(t *testing.T) {
	params := PipelineParams{InputDir: "/tmp/in", Outdir: "./results", DoNorm: false}
	assert.Equal(t, []Field{
		{Key: "input_dir", Value: "/tmp/in"},
		{Key: "outdir", Value: "./results"},
		{Key: "do_norm", Value: false},
	}, params.Fields())

	opts := ExecutionOptions{Profile: "hpc"}
	assert.Equal(t, []Field{{Key: "profile", Value: "hpc"}}, opts.Fields())
}

func TestJSONKeys(t *testing.T) {
	b, err := json.Marshal(PipelineParams{InputDir: "/tmp/in", Outdir: "./results", DoNorm: true})
	assert.NoError(t, err)
	assert.JSONEq(t, `{"input_dir": "/tmp/in", "outdir": "./results", "do_norm": true}`, string(b))

	b, err = json.Marshal(ExecutionOptions{Profile: "conda"})
	assert.NoError(t, err)
	assert.JSONEq(t, `{"profile": "conda"}`, string(b))
}

func TestIsKnownProfile(t *testing.T) {
	assert.True(t, IsKnownProfile("conda"))
	assert.True(t, IsKnownProfile("hpc"))
	assert.False(t, IsKnownProfile("slurm"))
	assert.False(t, IsKnownProfile(""))
}
