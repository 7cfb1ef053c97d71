package cli

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/askiada/pipeline-params/pkg/collector"
)

const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitInterrupted = 1
	ExitUsage       = 2
)

// ExitError is an error carrying the process exit code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// ExitCode reports err to the operator and returns the exit code of the process.
func ExitCode(err error, stdout, stderr io.Writer) int {
	if err == nil {
		return ExitOK
	}

	if errors.Is(err, collector.ErrInterrupted) {
		fmt.Fprintln(stdout, "\n\nOperation cancelled by user.")
		return ExitInterrupted
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		fmt.Fprintln(stderr, exitErr.Message)
		return exitErr.Code
	}

	fmt.Fprintln(stderr, "error:", err)
	return ExitFailure
}
