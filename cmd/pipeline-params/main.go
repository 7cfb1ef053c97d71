package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/askiada/pipeline-params/internal/cli"
)

func main() {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	cmd := cli.NewRootCommand(cli.Streams{
		In:      os.Stdin,
		Out:     os.Stdout,
		Err:     os.Stderr,
		Signals: signals,
	})

	err := cmd.ExecuteContext(context.Background())
	os.Exit(cli.ExitCode(err, os.Stdout, os.Stderr))
}
