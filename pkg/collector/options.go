package collector

import (
	"log/slog"

	"github.com/askiada/pipeline-params/pkg/collector/model"
)

type Option func(c *Collector)

func WithParamsFile(path string) Option {
	return func(c *Collector) {
		c.paramsFile = path
	}
}

func WithExecFile(path string) Option {
	return func(c *Collector) {
		c.execFile = path
	}
}

// WithLauncher sets the command suggested to start the pipeline once saved.
func WithLauncher(launcher string) Option {
	return func(c *Collector) {
		c.launcher = launcher
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Collector) {
		c.logger = logger
	}
}

// WithCollectorOptions registers hooks observing every step.
func WithCollectorOptions(opts ...model.CollectorOption) Option {
	return func(c *Collector) {
		c.opts = append(c.opts, opts...)
	}
}

// WithFlow replaces the default collection flow.
func WithFlow(flow *Flow) Option {
	return func(c *Collector) {
		c.flow = flow
	}
}
