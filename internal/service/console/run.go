package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/oshokin/alarm-clock/internal/config"
	"github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/logger"
	"github.com/oshokin/alarm-clock/internal/service/notify"
	"github.com/oshokin/alarm-clock/internal/service/scheduler"
)

const (
	// HeaderMessage opens the session.
	HeaderMessage = "--- Console Alarm Clock ---"
	// ExitHintMessage tells the user how to leave.
	ExitHintMessage = "Press Enter to exit at any time."
)

// Options controls the console session.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// ConfigRequired makes a missing settings file an error instead of using defaults.
	ConfigRequired bool
	// InitialTime is an optional HH:MM:SS value used before prompting.
	InitialTime string
	// Rearm prompts for a new time after each alarm instead of only waiting for Enter.
	Rearm bool

	// In is the input stream, os.Stdin when nil.
	In io.Reader
	// Out is the output stream, os.Stdout when nil.
	Out io.Writer
	// Clock overrides the scheduler clock.
	Clock scheduler.Clock
	// Alert overrides the desktop notification backend.
	Alert notify.AlertFunc
}

// Run executes one console session and blocks until the user exits,
// the input ends or ctx is cancelled.
// In re-arm mode every alarm is followed by a prompt for the next time.
//
//nolint:cyclop,funlen // One linear session flow; splitting it hides the order of prompts.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "alarm-clock")

	cfg, err := loadConfig(opts)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	if level, ok := logger.ParseLogLevel(cfg.LogLevel); ok {
		logger.SetLevel(level)
	}

	in, out := opts.In, opts.Out
	if in == nil {
		in = os.Stdin
	}

	if out == nil {
		out = os.Stdout
	}

	_, _ = fmt.Fprintln(out, HeaderMessage)

	prompter := NewPrompter(in, out)
	defer prompter.Close()

	target, err := initialTarget(ctx, prompter, opts.InitialTime)
	if err != nil {
		return exitError(err)
	}

	clock := newScheduler(cfg, opts, out)

	fired := make(chan scheduler.Event, 1)
	clock.Subscribe(func(_ context.Context, event scheduler.Event) {
		select {
		case fired <- event:
		default:
		}
	})

	clock.SetAlarm(ctx, target)
	_, _ = fmt.Fprintf(out, "Alarm set for: %s\n", target)

	clock.Start(ctx)
	defer clock.Stop(ctx)

	_, _ = fmt.Fprintln(out, ExitHintMessage)

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "Context canceled, exiting")
			return nil
		case event := <-fired:
			logger.InfoKV(ctx, "Alarm rang", "target", event.Target.String())

			if !opts.Rearm {
				continue
			}

			target, err = prompter.ReadTime(ctx)
			if err != nil {
				return exitError(err)
			}

			clock.SetAlarm(ctx, target)
			_, _ = fmt.Fprintf(out, "Alarm set for: %s\n", target)
			_, _ = fmt.Fprintln(out, ExitHintMessage)
		case l, ok := <-prompter.lines:
			// Enter or the end of input closes the session.
			if ok && l.err != nil {
				return exitError(fmt.Errorf("read input: %w", l.err))
			}

			return nil
		}
	}
}

// exitError maps the ways a session ends to the error reported by Run.
func exitError(err error) error {
	switch {
	case errors.Is(err, io.EOF), errors.Is(err, ErrNoInput), errors.Is(err, context.Canceled):
		return nil
	default:
		return err
	}
}

// loadConfig reads the settings file, falling back to defaults when allowed.
func loadConfig(opts *Options) (*config.Config, error) {
	if opts.ConfigRequired {
		return config.Load(opts.ConfigPath)
	}

	return config.LoadOrDefault(opts.ConfigPath)
}

// initialTarget validates the preset time, prompting when it is absent or invalid.
func initialTarget(ctx context.Context, p *Prompter, preset string) (alarm.TimeOfDay, error) {
	if preset != "" {
		if target, err := p.Validate(ctx, preset); err == nil {
			return target, nil
		}
	}

	return p.ReadTime(ctx)
}

// newScheduler builds the scheduler and subscribes the configured sinks.
func newScheduler(cfg *config.Config, opts *Options, out io.Writer) *scheduler.Scheduler {
	clock := scheduler.New(
		scheduler.WithInterval(cfg.TickInterval),
		scheduler.WithClock(opts.Clock),
	)

	if cfg.ConsoleBanner {
		clock.Subscribe(notify.NewBanner(out).Notify)
	}

	if cfg.DesktopNotification {
		desktop := notify.NewDesktop()
		if opts.Alert != nil {
			desktop = notify.NewDesktopWithAlert(opts.Alert)
		}

		clock.Subscribe(desktop.Notify)
	}

	return clock
}
