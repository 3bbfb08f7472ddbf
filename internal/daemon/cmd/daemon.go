package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eyecare-io/eyecare/internal/buildinfo"
	"github.com/eyecare-io/eyecare/internal/config"
	"github.com/eyecare-io/eyecare/internal/daemon/reminder"
	"github.com/eyecare-io/eyecare/internal/daemon/tray"
	"github.com/eyecare-io/eyecare/internal/logging"
	"github.com/eyecare-io/eyecare/internal/models"
	"github.com/eyecare-io/eyecare/internal/platform"
)

type daemonOptions struct {
	ConfigPath string
	Debug      bool
	Foreground bool
}

// warner shows the startup configuration warning.
type warner interface {
	Warn(title, message string)
}

func newLogger(enabled bool) (*logging.Logger, error) {
	if !enabled {
		return logging.Nop(), nil
	}
	path, err := config.GlobalDebugLogFile()
	if err != nil {
		return nil, err
	}
	return logging.New(logging.Options{Enabled: true, Path: path, Level: slog.LevelDebug})
}

// runDaemon starts the reminder cycle and blocks until the user exits.
// Unsupported platforms and duplicate instances are clean no-op runs.
func runDaemon(ctx context.Context, opts daemonOptions) error {
	logger, err := newLogger(opts.Debug)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}
	defer logger.Close()

	logger.Info("application started",
		"at", time.Now().Format("2006-01-02 15:04:05"),
		"version", buildinfo.Short())

	if err := platform.Check(); err != nil {
		logger.Info("reminder not started", "reason", err)
		return nil
	}

	if err := config.EnsureGlobalDir(); err != nil {
		logger.Warn("failed to create global directory", "error", err)
	}
	lock, ok := acquireLock(logger)
	if !ok {
		return nil
	}
	defer func() {
		if err := lock.Release(); err != nil {
			logger.Warn("failed to release instance lock", "error", err)
		}
	}()

	notifier, err := platform.NewNotifier(logger.Logger)
	if err != nil {
		return fmt.Errorf("failed to create notifier: %w", err)
	}

	path, err := resolveConfigPath(opts.ConfigPath)
	if err != nil {
		logger.Warn("failed to resolve config path", "error", err)
	}
	cfg := loadConfig(path, notifier, logger)

	cycleOpts := reminder.Options{
		Config:   cfg,
		Notifier: notifier,
		Alerter:  platform.NewBeeper(),
		Logger:   logger.With("component", "reminder"),
	}
	if probe, err := platform.NewIdleProbe(); err != nil {
		logger.Debug("idle probe unavailable, away banner disabled", "error", err)
	} else {
		cycleOpts.Probe = probe
	}
	cycle, err := reminder.New(cycleOpts)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if opts.Foreground {
		logger.Info("running in foreground mode (no system tray)")
		return runForeground(ctx, cycle, logger)
	}
	runWithTray(ctx, cancel, cycle, logger)
	return nil
}

// acquireLock takes the single-instance lock. ok is false only when another
// instance holds it; any other lock failure is logged and the daemon runs
// without one.
func acquireLock(logger *logging.Logger) (lock *config.InstanceLock, ok bool) {
	path, err := config.GlobalLockFile()
	if err != nil {
		logger.Warn("failed to resolve lock file", "error", err)
		return nil, true
	}
	lock, err = config.AcquireInstanceLock(path)
	switch {
	case errors.Is(err, config.ErrAlreadyLocked):
		logger.Info("reminder not started", "reason", err)
		return nil, false
	case err != nil:
		logger.Warn("running without instance lock", "error", err)
		return nil, true
	}
	return lock, true
}

// loadConfig loads the reminder config once. Problems are reported to the
// user with a single dialog and the defaults are used.
func loadConfig(path string, w warner, logger *logging.Logger) *models.ReminderConfig {
	cfg, err := config.LoadReminder(path)
	if err == nil {
		logger.Info("variables correctly initialized", "path", path)
		return cfg
	}

	logger.Warn("using default values", "error", err)
	var cfgErr *config.ConfigError
	if errors.As(err, &cfgErr) {
		w.Warn(config.WarningTitle, cfgErr.Message())
	}
	return cfg
}

// runCycle runs the reminder loop and logs anything but a normal stop.
func runCycle(ctx context.Context, cycle *reminder.Cycle, logger *logging.Logger) {
	if err := cycle.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("reminder cycle stopped unexpectedly", "error", err)
	}
}

// runForeground runs the cycle without a tray, blocking on signals.
func runForeground(ctx context.Context, cycle *reminder.Cycle, logger *logging.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runCycle(ctx, cycle, logger)
	logger.Info("daemon stopped")
	fmt.Println("Daemon stopped")
	return nil
}

// runWithTray runs the tray on the calling goroutine (must be main) and the
// reminder cycle on its own goroutine.
func runWithTray(ctx context.Context, cancel context.CancelFunc, cycle *reminder.Cycle, logger *logging.Logger) {
	onStart := func() {
		go runCycle(ctx, cycle, logger)

		// Handle OS signals: quit tray on SIGINT/SIGTERM
		go func() {
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			select {
			case sig := <-sigCh:
				logger.Info("received signal, shutting down", "signal", sig)
				cancel()
				tray.Quit()
			case <-ctx.Done():
			}
		}()
	}

	onExit := func() {
		cancel()
		logger.Info("daemon stopped")
	}

	// This blocks the main goroutine until the tray exits.
	tray.Run(tray.ControllerFunc(cancel), logger.Logger, onStart, onExit)
}
