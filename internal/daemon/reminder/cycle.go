package reminder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/eyecare-io/eyecare/internal/models"
)

const (
	// DefaultPollInterval is how often the probe is checked during a break.
	DefaultPollInterval = time.Second

	// DefaultActivityGrace ignores input right after the break starts, which
	// is usually the click that dismissed the prompt.
	DefaultActivityGrace = time.Second
)

// ErrAlreadyRunning is returned by Run when the cycle is already active.
var ErrAlreadyRunning = errors.New("reminder cycle already running")

// Options configures a Cycle. Config, Notifier and Alerter are required.
type Options struct {
	Config   *models.ReminderConfig
	Notifier Notifier
	Alerter  Alerter

	// Probe is optional. When set, the cycle shows the continued-away banner
	// if the user becomes active during a break.
	Probe        ActivityProbe
	PollInterval time.Duration
	// ActivityGrace defaults to DefaultActivityGrace; negative disables it.
	ActivityGrace time.Duration

	Clock  Clock
	Logger *slog.Logger

	// OnPhase is called on the cycle goroutine whenever a phase begins.
	OnPhase func(cycle int, phase Phase)
}

// Cycle runs the Working → AwaitingAcknowledgement → Away → Alerting loop.
type Cycle struct {
	cfg      *models.ReminderConfig
	notifier Notifier
	alerter  Alerter
	probe    ActivityProbe
	poll     time.Duration
	grace    time.Duration
	clock    Clock
	logger   *slog.Logger
	onPhase  func(int, Phase)

	running atomic.Bool
}

// New creates a reminder cycle.
func New(opts Options) (*Cycle, error) {
	if opts.Config == nil {
		return nil, errors.New("reminder: config is required")
	}
	if opts.Notifier == nil {
		return nil, errors.New("reminder: notifier is required")
	}
	if opts.Alerter == nil {
		return nil, errors.New("reminder: alerter is required")
	}

	c := &Cycle{
		cfg:      opts.Config,
		notifier: opts.Notifier,
		alerter:  opts.Alerter,
		probe:    opts.Probe,
		poll:     opts.PollInterval,
		grace:    opts.ActivityGrace,
		clock:    opts.Clock,
		logger:   opts.Logger,
		onPhase:  opts.OnPhase,
	}
	if c.poll <= 0 {
		c.poll = DefaultPollInterval
	}
	if c.grace < 0 {
		c.grace = 0
	} else if c.grace == 0 {
		c.grace = DefaultActivityGrace
	}
	if c.clock == nil {
		c.clock = SystemClock
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}
	return c, nil
}

// Run executes reminder cycles until ctx is cancelled and returns ctx.Err().
// An acknowledgement prompt that is already showing is not interrupted.
func (c *Cycle) Run(ctx context.Context) error {
	if !c.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer c.running.Store(false)

	c.logger.Info("reminder cycle started",
		"screen_interval", c.cfg.ScreenInterval(),
		"away_interval", c.cfg.AwayInterval(),
		"sound_frequency_hz", c.cfg.SoundFrequencyHz,
		"sound_duration_ms", c.cfg.SoundDurationMs)

	for n := 1; ; n++ {
		if err := c.runOnce(ctx, n); err != nil {
			c.logger.Info("reminder cycle stopped", "cycle", n, "reason", err)
			return err
		}
	}
}

// Running reports whether Run is active.
func (c *Cycle) Running() bool {
	return c.running.Load()
}

func (c *Cycle) runOnce(ctx context.Context, n int) error {
	c.enter(n, PhaseWorking)
	if err := c.sleep(ctx, c.cfg.ScreenInterval()); err != nil {
		return err
	}

	c.enter(n, PhaseAwaitingAcknowledgement)
	req := AckRequest{
		ID:       uuid.New(),
		Cycle:    n,
		AwayFor:  c.cfg.AwayInterval(),
		IssuedAt: c.clock.Now(),
	}
	c.logger.Debug("waiting for acknowledgement", "request", req.ID, "cycle", n)
	c.notifier.PromptAcknowledgement(req)
	c.logger.Debug("acknowledged", "request", req.ID,
		"waited", c.clock.Now().Sub(req.IssuedAt))
	if err := ctx.Err(); err != nil {
		return err
	}

	c.enter(n, PhaseAway)
	if err := c.away(ctx, n); err != nil {
		return err
	}

	c.enter(n, PhaseAlerting)
	c.alert(n)
	return nil
}

func (c *Cycle) enter(n int, p Phase) {
	c.logger.Debug("phase", "cycle", n, "phase", p)
	if c.onPhase != nil {
		c.onPhase(n, p)
	}
}

// sleep waits for d or until ctx is done. Cancellation wins over an already
// elapsed timer.
func (c *Cycle) sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-c.clock.After(d):
		return nil
	}
}

func (c *Cycle) away(ctx context.Context, n int) error {
	if c.probe == nil {
		return c.sleep(ctx, c.cfg.AwayInterval())
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	start := c.clock.Now()
	done := c.clock.After(c.cfg.AwayInterval())
	bannerShown := false
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-done:
			return nil
		case <-c.clock.After(c.poll):
			if bannerShown || !c.activeSince(start.Add(c.grace)) {
				continue
			}
			bannerShown = true
			c.logger.Debug("activity during break", "cycle", n)
			if err := c.notifier.ShowContinuedAwayBanner(); err != nil {
				c.logger.Warn("failed to show away banner", "cycle", n, "error", err)
			}
		}
	}
}

func (c *Cycle) activeSince(t time.Time) bool {
	last, err := c.probe.LastInput()
	if err != nil {
		c.logger.Debug("activity probe failed", "error", err)
		return false
	}
	return last.After(t)
}

// alert emits the end-of-break tone. Failures never stop the cycle.
func (c *Cycle) alert(n int) {
	if err := c.emit(); err != nil {
		c.logger.Warn("error playing sound", "cycle", n, "error", err)
	}
}

func (c *Cycle) emit() (err error) {
	freq, dur := c.cfg.SoundFrequencyHz, c.cfg.SoundDurationMs
	defer func() {
		if r := recover(); r != nil {
			err = &SignalError{FrequencyHz: freq, DurationMs: dur, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	if err := c.alerter.Emit(freq, dur); err != nil {
		var sigErr *SignalError
		if errors.As(err, &sigErr) {
			return err
		}
		return &SignalError{FrequencyHz: freq, DurationMs: dur, Err: err}
	}
	return nil
}
