package collector

import (
	"context"
	"strings"
	"time"

	"github.com/askiada/pipeline-params/pkg/collector/model"
)

const (
	StepInputDir = "input_dir"
	StepOutdir   = "outdir"
	StepDoNorm   = "do_norm"
	StepProfile  = "profile"
	StepConfirm  = "confirm"
)

// Values holds the documents while they are being collected.
type Values struct {
	Params    model.PipelineParams
	Exec      model.ExecutionOptions
	Confirmed bool
}

func defaultFlow() (*Flow, error) {
	flow := NewFlow()

	parent := ""
	for _, step := range []*Step{inputDirStep(), outdirStep(), doNormStep(), profileStep(), confirmStep()} {
		var after []string
		if parent != "" {
			after = append(after, parent)
		}
		err := flow.AddStep(step, after...)
		if err != nil {
			return nil, err
		}
		parent = step.Info.Name
	}

	return flow, nil
}

func inputDirStep() *Step {
	info := &model.StepInfo{
		Type:    model.FieldStepType,
		Name:    StepInputDir,
		Section: "--- Essential Parameters ---",
		Label:   "Input directory path",
	}

	return NewStep(info, func(ctx context.Context, c *Collector, v *Values, observe func(time.Duration, error)) error {
		dir, err := Ask(ctx, c.prompter, info.Label, ParseString, OnAttempt[string](observe))
		if err != nil {
			return err
		}
		v.Params.InputDir = dir

		exists, err := ValidateDirectory(ctx, c.prompter, dir)
		if err != nil {
			return err
		}
		if !exists {
			c.prompter.Println("Warning: Input directory does not exist!")
			c.logger.Warn("input directory does not exist", "path", dir)
		}

		return nil
	})
}

func outdirStep() *Step {
	info := &model.StepInfo{
		Type:  model.FieldStepType,
		Name:  StepOutdir,
		Label: "Output directory path",
	}

	return NewStep(info, func(ctx context.Context, c *Collector, v *Values, observe func(time.Duration, error)) error {
		dir, err := Ask(ctx, c.prompter, info.Label, ParseString, WithDefault(model.DefaultOutdir), OnAttempt[string](observe))
		if err != nil {
			return err
		}
		v.Params.Outdir = dir

		// A missing output directory is left to the pipeline runner.
		_, err = ValidateDirectory(ctx, c.prompter, dir)

		return err
	})
}

func doNormStep() *Step {
	info := &model.StepInfo{
		Type:    model.FieldStepType,
		Name:    StepDoNorm,
		Section: "--- Processing Options ---",
		Label:   "Perform normalization? (true/false)",
	}

	return NewStep(info, func(ctx context.Context, c *Collector, v *Values, observe func(time.Duration, error)) error {
		doNorm, err := Ask(ctx, c.prompter, info.Label, ParseBool, WithDefault(model.DefaultDoNorm), OnAttempt[bool](observe))
		if err != nil {
			return err
		}
		v.Params.DoNorm = doNorm

		return nil
	})
}

func profileStep() *Step {
	info := &model.StepInfo{
		Type:    model.FieldStepType,
		Name:    StepProfile,
		Section: "--- Execution Options ---",
		Label:   "Execution profile",
	}

	return NewStep(info, func(ctx context.Context, c *Collector, v *Values, observe func(time.Duration, error)) error {
		c.prompter.Println("Available profiles: " + strings.Join(model.KnownProfiles, ", "))

		profile, err := Ask(ctx, c.prompter, info.Label, ParseString, WithDefault(model.DefaultProfile), OnAttempt[string](observe))
		if err != nil {
			return err
		}
		if !model.IsKnownProfile(profile) {
			c.logger.Warn("profile is not one of the known profiles", "profile", profile, "known", model.KnownProfiles)
		}
		v.Exec.Profile = profile

		return nil
	})
}

func confirmStep() *Step {
	info := &model.StepInfo{
		Type:  model.ConfirmStepType,
		Name:  StepConfirm,
		Label: "Save these parameters? (y/n)",
	}

	return NewStep(info, func(ctx context.Context, c *Collector, v *Values, observe func(time.Duration, error)) error {
		answer, err := Ask(ctx, c.prompter, info.Label, ParseString, WithDefault("y"), OnAttempt[string](observe))
		if err != nil {
			return err
		}
		v.Confirmed = IsYes(answer)

		return nil
	})
}
