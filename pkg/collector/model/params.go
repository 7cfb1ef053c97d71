package model

import "github.com/pkg/errors"

const (
	DefaultOutdir     = "./results"
	DefaultDoNorm     = true
	DefaultProfile    = "conda"
	DefaultParamsFile = "pipeline_params.json"
	DefaultExecFile   = "execution_opts.json"
	DefaultLauncher   = "./bin/run_pipeline.sh"
)

// KnownProfiles is printed as guidance. A profile outside of it is accepted.
var KnownProfiles = []string{"conda", "hpc"}

var ErrRequiredField = errors.New("required field is empty")

// Field is a single key/value pair of a document.
type Field struct {
	Key   string
	Value any
}

// PipelineParams is the document configuring the runner input, output and processing flags.
type PipelineParams struct {
	InputDir string `json:"input_dir"`
	Outdir   string `json:"outdir"`
	DoNorm   bool   `json:"do_norm"`
}

// Validate checks that every required field is set.
func (p PipelineParams) Validate() error {
	if p.InputDir == "" {
		return errors.Wrap(ErrRequiredField, "input_dir")
	}

	return nil
}

// Fields returns the document fields in the order they are written.
func (p PipelineParams) Fields() []Field {
	return []Field{
		{Key: "input_dir", Value: p.InputDir},
		{Key: "outdir", Value: p.Outdir},
		{Key: "do_norm", Value: p.DoNorm},
	}
}

// ExecutionOptions is the document carrying the runner execution profile.
type ExecutionOptions struct {
	Profile string `json:"profile"`
}

// Fields returns the document fields in the order they are written.
func (o ExecutionOptions) Fields() []Field {
	return []Field{
		{Key: "profile", Value: o.Profile},
	}
}

// IsKnownProfile reports whether profile is one of KnownProfiles.
func IsKnownProfile(profile string) bool {
	for _, known := range KnownProfiles {
		if known == profile {
			return true
		}
	}

	return false
}
