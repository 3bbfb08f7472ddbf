//go:build !windows

package platform

import (
	"log/slog"
	"time"

	"github.com/eyecare-io/eyecare/internal/daemon/reminder"
)

// Notifier is unavailable outside Windows.
type Notifier struct{}

// NewNotifier always fails with ErrUnsupported.
func NewNotifier(*slog.Logger) (*Notifier, error) {
	return nil, Check()
}

func (*Notifier) PromptAcknowledgement(reminder.AckRequest) {}

func (*Notifier) ShowContinuedAwayBanner() error { return ErrUnsupported }

func (*Notifier) Warn(string, string) {}

// IdleProbe is unavailable outside Windows.
type IdleProbe struct{}

// NewIdleProbe always fails with ErrUnsupported.
func NewIdleProbe() (*IdleProbe, error) {
	return nil, ErrUnsupported
}

func (IdleProbe) LastInput() (time.Time, error) { return time.Time{}, ErrUnsupported }
