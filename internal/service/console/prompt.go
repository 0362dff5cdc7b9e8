package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/logger"
)

const (
	// PromptMessage asks for the alarm time.
	PromptMessage = "Enter alarm time in HH:MM:SS format: "
	// InvalidFormatMessage is printed before asking again.
	InvalidFormatMessage = "Invalid format. Please use HH:MM:SS (e.g., 14:30:00)."
)

// ErrNoInput is returned when the input ends before a valid time was entered.
var ErrNoInput = errors.New("input closed before a valid alarm time was entered")

// line is one read from the input stream.
type line struct {
	text string
	err  error
}

// Prompter reads lines from an input stream and writes prompts to an output stream.
// Lines are read by a background goroutine so waits can be cancelled.
type Prompter struct {
	out   io.Writer
	lines chan line
	done  chan struct{}
	once  sync.Once
}

// NewPrompter starts reading lines from in.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	p := &Prompter{
		out:   out,
		lines: make(chan line),
		done:  make(chan struct{}),
	}

	go p.read(in)

	return p
}

// read forwards lines until the input ends; the final value carries the error.
func (p *Prompter) read(in io.Reader) {
	defer close(p.lines)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if !p.send(line{text: strings.TrimSuffix(scanner.Text(), "\r")}) {
			return
		}
	}

	err := scanner.Err()
	if err == nil {
		err = io.EOF
	}

	p.send(line{err: err})
}

// send hands l to a reader unless the prompter was closed.
func (p *Prompter) send(l line) bool {
	select {
	case p.lines <- l:
		return true
	case <-p.done:
		return false
	}
}

// Close stops forwarding lines. A read already blocked on the input stream
// finishes only when that stream delivers data or ends.
func (p *Prompter) Close() {
	p.once.Do(func() {
		close(p.done)
	})
}

// ReadLine waits for the next line of input.
// It returns io.EOF once the input is exhausted.
func (p *Prompter) ReadLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-p.lines:
		if !ok {
			return "", io.EOF
		}

		return l.text, l.err
	}
}

// ReadTime prompts until a valid HH:MM:SS time is entered.
func (p *Prompter) ReadTime(ctx context.Context) (alarm.TimeOfDay, error) {
	for {
		p.printf("%s", PromptMessage)

		text, err := p.ReadLine(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return alarm.TimeOfDay{}, ErrNoInput
			}

			return alarm.TimeOfDay{}, fmt.Errorf("read alarm time: %w", err)
		}

		target, err := p.Validate(ctx, text)
		if err == nil {
			return target, nil
		}
	}
}

// Validate parses text and prints the format hint when it is invalid.
func (p *Prompter) Validate(ctx context.Context, text string) (alarm.TimeOfDay, error) {
	target, err := alarm.ParseTimeOfDay(text)
	if err != nil {
		logger.DebugKV(ctx, "Rejected alarm time", "input", text, "error", err)
		p.printf("%s\n", InvalidFormatMessage)

		return alarm.TimeOfDay{}, err
	}

	return target, nil
}

// printf writes to the output; a broken terminal is not worth failing over.
func (p *Prompter) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}
