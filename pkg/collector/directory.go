package collector

import (
	"context"
	"os"

	"github.com/pkg/errors"
)

const dirPerm = 0o755

// ValidateDirectory reports whether path exists. When it does not, the operator is
// asked whether to create it, parents included. An empty path never exists.
func ValidateDirectory(ctx context.Context, p *Prompter, path string) (bool, error) {
	if p == nil {
		return false, ErrPrompterIsNil
	}

	if path == "" {
		return false, nil
	}

	if _, err := os.Stat(path); err == nil {
		return true, nil
	}

	p.Printf("Directory '%s' does not exist. Create it? (y/n): ", path)
	answer, err := p.ReadLine(ctx)
	if err != nil {
		return false, err
	}

	if !IsYes(answer) {
		return false, nil
	}

	err = os.MkdirAll(path, dirPerm)
	if err != nil {
		return false, errors.Wrapf(err, "unable to create directory %s", path)
	}
	p.Printf("Created directory '%s'\n", path)

	return true, nil
}
