package collector

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/askiada/pipeline-params/pkg/collector/model"
)

const requiredMessage = "This field is required. Please provide a value."

type lineResult struct {
	text string
	err  error
}

// Prompter writes prompts to an output and reads the answers line by line.
// Lines are read by a single background goroutine so that a pending read
// can be abandoned when the context is cancelled.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer

	once      sync.Once
	lines     chan lineResult
	done      chan struct{}
	closeOnce sync.Once
	// err is the terminal read error, reported by every later read.
	err error
}

// NewPrompter creates a prompter reading answers from in and writing prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:    bufio.NewReader(in),
		out:   out,
		lines: make(chan lineResult),
		done:  make(chan struct{}),
	}
}

// Close stops the background reader. A read already blocked on the input is left behind.
func (p *Prompter) Close() {
	p.closeOnce.Do(func() {
		close(p.done)
	})
}

func (p *Prompter) readLoop() {
	for {
		text, err := p.in.ReadString('\n')
		if text != "" {
			if !p.send(lineResult{text: strings.TrimRight(text, "\r\n")}) {
				return
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = ErrInputClosed
			}
			p.send(lineResult{err: err})
			return
		}
	}
}

func (p *Prompter) send(res lineResult) bool {
	select {
	case p.lines <- res:
		return true
	case <-p.done:
		return false
	}
}

// ReadLine blocks until a line is available, the input is closed or ctx is done.
func (p *Prompter) ReadLine(ctx context.Context) (string, error) {
	if p.err != nil {
		return "", p.err
	}

	p.once.Do(func() {
		go p.readLoop()
	})

	select {
	case <-ctx.Done():
		return "", errors.Wrap(ctx.Err(), "unable to read answer")
	case <-p.done:
		return "", ErrInputClosed
	case res := <-p.lines:
		if res.err != nil {
			p.err = errors.Wrap(res.err, "unable to read answer")
			return "", p.err
		}
		return res.text, nil
	}
}

// Printf writes to the prompter output.
func (p *Prompter) Printf(format string, a ...any) {
	fmt.Fprintf(p.out, format, a...)
}

// Println writes a line to the prompter output.
func (p *Prompter) Println(a ...any) {
	fmt.Fprintln(p.out, a...)
}

// ParseFunc coerces an answer to T.
type ParseFunc[T any] func(input string) (T, error)

// ParseString accepts any answer.
func ParseString(input string) (string, error) {
	return input, nil
}

// ParseBool accepts true/yes/y/1 and false/no/n/0 in any letter case.
func ParseBool(input string) (bool, error) {
	switch strings.ToLower(input) {
	case "true", "yes", "y", "1":
		return true, nil
	case "false", "no", "n", "0":
		return false, nil
	default:
		return false, errors.Wrap(ErrInvalidBool, input)
	}
}

func ParseInt(input string) (int, error) {
	v, err := strconv.Atoi(input)
	if err != nil {
		return 0, &ParseError{Expected: "int", Input: input}
	}
	return v, nil
}

func ParseFloat(input string) (float64, error) {
	v, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return 0, &ParseError{Expected: "float", Input: input}
	}
	return v, nil
}

type askConfig[T any] struct {
	hasDefault bool
	def        T
	onAttempt  func(elapsed time.Duration, err error)
}

type AskOption[T any] func(c *askConfig[T])

// WithDefault makes a blank answer return def instead of re-prompting.
func WithDefault[T any](def T) AskOption[T] {
	return func(c *askConfig[T]) {
		c.hasDefault = true
		c.def = def
	}
}

// OnAttempt calls fn after every answer. err is nil when the answer was accepted.
func OnAttempt[T any](fn func(elapsed time.Duration, err error)) AskOption[T] {
	return func(c *askConfig[T]) {
		c.onAttempt = fn
	}
}

// Ask prompts for label until the answer can be parsed.
// A blank answer returns the default when there is one and re-prompts otherwise.
// Ask only fails when the input is closed or ctx is done.
func Ask[T any](ctx context.Context, p *Prompter, label string, parse ParseFunc[T], opts ...AskOption[T]) (T, error) {
	var zero T
	if p == nil {
		return zero, ErrPrompterIsNil
	}

	cfg := &askConfig[T]{onAttempt: func(time.Duration, error) {}}
	for _, opt := range opts {
		opt(cfg)
	}

	prompt := label + ": "
	if cfg.hasDefault {
		prompt = fmt.Sprintf("%s [%v]: ", label, cfg.def)
	}

	for {
		start := time.Now()
		p.Printf("%s", prompt)

		line, err := p.ReadLine(ctx)
		if err != nil {
			return zero, err
		}

		input := strings.TrimSpace(line)
		if input == "" {
			if cfg.hasDefault {
				cfg.onAttempt(time.Since(start), nil)
				return cfg.def, nil
			}
			p.Println(requiredMessage)
			cfg.onAttempt(time.Since(start), model.ErrRequiredField)
			continue
		}

		if !utf8.ValidString(input) {
			p.Println(hint(ErrInvalidUTF8))
			cfg.onAttempt(time.Since(start), ErrInvalidUTF8)
			continue
		}

		v, err := parse(input)
		if err != nil {
			p.Println(hint(err))
			cfg.onAttempt(time.Since(start), err)
			continue
		}

		cfg.onAttempt(time.Since(start), nil)
		return v, nil
	}
}

// IsYes reports whether the answer is y or yes, in any letter case.
func IsYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
