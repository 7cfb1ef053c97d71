package collector

import (
	"github.com/pkg/errors"
)

var (
	ErrInvalidBool   = errors.New("invalid boolean")
	ErrInvalidUTF8   = errors.New("answer is not valid UTF-8")
	ErrInputClosed   = errors.New("input closed")
	ErrInterrupted   = errors.New("operation cancelled by user")
	ErrStepExists    = errors.New("step already exists")
	ErrUnknownStep   = errors.New("unknown step")
	ErrPrompterIsNil = errors.New("prompter must be set")
)

// ParseError reports an answer that cannot be coerced to the expected type.
type ParseError struct {
	Expected string
	Input    string
}

func (e *ParseError) Error() string {
	return "cannot parse " + e.Input + " as " + e.Expected
}

func hint(err error) string {
	var parseErr *ParseError
	switch {
	case errors.Is(err, ErrInvalidBool):
		return "Please enter true/false or yes/no"
	case errors.Is(err, ErrInvalidUTF8):
		return "Invalid input. Answers must be valid UTF-8"
	case errors.As(err, &parseErr):
		return "Invalid input. Expected " + parseErr.Expected
	default:
		return "Invalid input. " + err.Error()
	}
}
