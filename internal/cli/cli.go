package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/askiada/pipeline-params/pkg/collector"
	"github.com/askiada/pipeline-params/pkg/collector/drawer"
	"github.com/askiada/pipeline-params/pkg/collector/measure"
	"github.com/askiada/pipeline-params/pkg/collector/model"
)

// Streams are the process input and outputs.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
	// Signals interrupts the collection when it receives a value. It may be nil.
	Signals <-chan os.Signal
}

// Config holds the command-line configuration.
type Config struct {
	ParamsFile string
	ExecFile   string
	Launcher   string
	DrawFile   string
	LogLevel   string
	LogFormat  string
}

func (cfg *Config) validate() error {
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return &ExitError{Code: ExitUsage, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return &ExitError{Code: ExitUsage, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	if cfg.ParamsFile == "" || cfg.ExecFile == "" {
		return &ExitError{Code: ExitUsage, Message: "params-file and exec-file cannot be empty"}
	}
	if cfg.ParamsFile == cfg.ExecFile {
		return &ExitError{Code: ExitUsage, Message: "params-file and exec-file must be different files"}
	}

	return nil
}

// NewRootCommand creates the pipeline-params command.
func NewRootCommand(streams Streams) *cobra.Command {
	cfg := &Config{}

	cmd := &cobra.Command{
		Use:   "pipeline-params",
		Short: "pipeline-params collects the parameters of a pipeline run",
		Long: `pipeline-params asks for the parameters of a pipeline run, shows a summary
and, once confirmed, writes them as two JSON files for the pipeline runner:
the pipeline parameters and the execution options.

Usage:
  pipeline-params [flags]`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				return &ExitError{Code: ExitUsage, Message: fmt.Sprintf("unexpected arguments: %s", strings.Join(args, " "))}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := cfg.validate()
			if err != nil {
				return err
			}

			return run(cmd.Context(), cfg, streams)
		},
	}

	cmd.SetIn(streams.In)
	cmd.SetOut(streams.Out)
	cmd.SetErr(streams.Err)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ExitError{Code: ExitUsage, Message: err.Error()}
	})

	flags := cmd.Flags()
	flags.StringVar(&cfg.ParamsFile, "params-file", model.DefaultParamsFile, "Path of the pipeline parameters JSON file.")
	flags.StringVar(&cfg.ExecFile, "exec-file", model.DefaultExecFile, "Path of the execution options JSON file.")
	flags.StringVar(&cfg.Launcher, "launcher", model.DefaultLauncher, "Command suggested to start the pipeline.")
	flags.StringVar(&cfg.DrawFile, "draw", "", "Write the collection flow as a Graphviz DOT file. Empty is disabled.")
	flags.StringVar(&cfg.LogLevel, "log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flags.StringVar(&cfg.LogFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")

	return cmd
}

func run(ctx context.Context, cfg *Config, streams Streams) error {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, streams.Err)
	logger.Debug("configuration parsed", "params_file", cfg.ParamsFile, "exec_file", cfg.ExecFile, "draw", cfg.DrawFile)

	msr := measure.NewDefaultMeasure()
	hooks := []model.CollectorOption{measure.CollectorMeasure(msr)}
	if cfg.DrawFile != "" {
		hooks = append(hooks, drawer.CollectorDrawer(drawer.NewDOTDrawer(cfg.DrawFile), msr))
	}

	c, err := collector.New(streams.In, streams.Out,
		collector.WithParamsFile(cfg.ParamsFile),
		collector.WithExecFile(cfg.ExecFile),
		collector.WithLauncher(cfg.Launcher),
		collector.WithLogger(logger),
		collector.WithCollectorOptions(hooks...),
	)
	if err != nil {
		return errors.Wrap(err, "unable to create collector")
	}
	defer c.Close()

	done := make(chan struct{})
	errGrp, gCtx := errgroup.WithContext(ctx)

	errGrp.Go(func() error {
		select {
		case sig := <-streams.Signals:
			select {
			case <-done:
				return nil
			default:
			}
			logger.Debug("signal received", "signal", sig)
			return collector.ErrInterrupted
		case <-done:
			return nil
		}
	})

	errGrp.Go(func() error {
		defer close(done)

		outcome, err := c.Run(gCtx)
		if err != nil {
			return err
		}
		logger.Debug("collection finished", "outcome", outcome)
		logMetrics(logger, msr)

		return nil
	})

	return errGrp.Wait()
}

func logMetrics(logger *slog.Logger, msr measure.Measure) {
	metrics := msr.AllMetrics()
	names := make([]string, 0, len(metrics))
	for name := range metrics {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		mt := metrics[name]
		if mt.Attempts() == 0 {
			continue
		}
		logger.Debug("step metrics",
			"step", name,
			"attempts", mt.Attempts(),
			"rejected", mt.Rejected(),
			"avg", mt.AVGDuration(),
			"total", mt.GetTotalDuration(),
		)
	}
}
