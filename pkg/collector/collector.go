package collector

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/pipeline-params/pkg/collector/model"
)

// Outcome is the terminal state of a run.
type Outcome int

const (
	Declined Outcome = iota
	Saved
)

func (o Outcome) String() string {
	if o == Saved {
		return "saved"
	}
	return "declined"
}

// Collector runs the collection flow against a single operator.
type Collector struct {
	prompter *Prompter
	out      io.Writer
	logger   *slog.Logger
	flow     *Flow
	opts     []model.CollectorOption

	paramsFile string
	execFile   string
	launcher   string
}

// New creates a collector reading answers from in and writing prompts to out.
func New(in io.Reader, out io.Writer, opts ...Option) (*Collector, error) {
	c := &Collector{
		prompter:   NewPrompter(in, out),
		out:        out,
		logger:     slog.Default(),
		paramsFile: model.DefaultParamsFile,
		execFile:   model.DefaultExecFile,
		launcher:   model.DefaultLauncher,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.flow == nil {
		flow, err := defaultFlow()
		if err != nil {
			return nil, errors.Wrap(err, "unable to build collection flow")
		}
		c.flow = flow
	}

	for _, opt := range c.opts {
		err := opt.New()
		if err != nil {
			return nil, errors.Wrap(err, "unable to apply collector option")
		}
	}

	return c, nil
}

// Close releases the input reader.
func (c *Collector) Close() {
	c.prompter.Close()
}

// Collect prompts for every field of both documents.
func (c *Collector) Collect(ctx context.Context) (model.PipelineParams, model.ExecutionOptions, error) {
	v := &Values{}
	_, err := c.collect(ctx, v)

	return v.Params, v.Exec, err
}

func (c *Collector) collect(ctx context.Context, v *Values) (*model.StepInfo, error) {
	steps, err := c.flow.Steps()
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(c.out, "\n%s\nPipeline Parameter Configuration\n%s\n\n", banner, banner)

	parent := model.StartStep
	sectionPrinted := false
	for _, step := range steps {
		if step.Info.Type != model.FieldStepType {
			continue
		}

		if step.Info.Section != "" {
			if sectionPrinted {
				fmt.Fprintln(c.out)
			}
			fmt.Fprintln(c.out, step.Info.Section)
			sectionPrinted = true
		}

		err := c.runStep(ctx, parent, step, v)
		if err != nil {
			return nil, err
		}
		parent = step.Info
	}

	return parent, nil
}

func (c *Collector) runStep(ctx context.Context, parent *model.StepInfo, step *Step, v *Values) error {
	for _, opt := range c.opts {
		err := opt.PrepareStep(parent, step.Info)
		if err != nil {
			return errors.Wrapf(err, "unable to prepare step %s", step.Info.Name)
		}
	}

	c.logger.Debug("step started", "step", step.Info.Name)
	start := time.Now()

	var hookErr error
	observe := func(elapsed time.Duration, attemptErr error) {
		if attemptErr != nil {
			c.logger.Debug("answer rejected", "step", step.Info.Name, "error", attemptErr)
		}
		for _, opt := range c.opts {
			err := opt.OnStepAttempt(step.Info, elapsed, attemptErr)
			if err != nil && hookErr == nil {
				hookErr = errors.Wrapf(err, "unable to observe step %s", step.Info.Name)
			}
		}
	}

	err := step.run(ctx, c, v, observe)
	if err != nil {
		return errors.Wrapf(err, "step %s", step.Info.Name)
	}
	if hookErr != nil {
		return hookErr
	}

	total := time.Since(start)
	c.logger.Debug("step finished", "step", step.Info.Name, "duration", total)

	for _, opt := range c.opts {
		err := opt.AfterStep(step.Info, total)
		if err != nil {
			return errors.Wrapf(err, "unable to finish step %s", step.Info.Name)
		}
	}

	return nil
}

// Run collects the parameters, shows a summary and saves both documents
// when the operator confirms.
func (c *Collector) Run(ctx context.Context) (Outcome, error) {
	v := &Values{}
	last, err := c.collect(ctx, v)
	if err != nil {
		return Declined, err
	}

	DisplaySummary(c.out, v.Params, v.Exec)

	confirm, err := c.flow.Step(StepConfirm)
	if err != nil {
		return Declined, err
	}

	err = c.runStep(ctx, last, confirm, v)
	if err != nil {
		return Declined, err
	}

	if !v.Confirmed {
		fmt.Fprintln(c.out, "Parameters not saved.")
		c.logger.Info("parameters not saved")
		return Declined, c.finish()
	}

	err = Save(ctx, c.out, v.Params, v.Exec, c.paramsFile, c.execFile)
	if err != nil {
		return Declined, err
	}
	c.logger.Info("parameters saved", "params_file", c.paramsFile, "exec_file", c.execFile)

	fmt.Fprintf(c.out, "\nYou can now run your pipeline with:\n  %s\n", c.launcher)
	fmt.Fprintf(c.out, "\nOr manually:\n  nextflow run main.nf -params-file %s -profile %s\n", c.paramsFile, v.Exec.Profile)

	return Saved, c.finish()
}

func (c *Collector) finish() error {
	for _, opt := range c.opts {
		err := opt.Finish()
		if err != nil {
			return errors.Wrap(err, "unable to finish collector option")
		}
	}

	return nil
}
