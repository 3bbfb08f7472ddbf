package reminder

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AckRequest is a single pending "ready to look away?" prompt.
type AckRequest struct {
	ID       uuid.UUID
	Cycle    int
	AwayFor  time.Duration
	IssuedAt time.Time
}

// Message is the prompt body shown to the user.
func (r AckRequest) Message() string {
	return fmt.Sprintf("Press OK once you are ready to look away\nand I'll ring a bell after %d seconds",
		int(r.AwayFor/time.Second))
}

// Notifier displays reminder dialogs.
type Notifier interface {
	// PromptAcknowledgement blocks until the user dismisses the prompt and
	// returns focus to whatever window was active before it appeared.
	PromptAcknowledgement(req AckRequest)

	// ShowContinuedAwayBanner shows a non-blocking hint to keep looking away.
	ShowContinuedAwayBanner() error
}

// Alerter emits the end-of-break signal.
type Alerter interface {
	Emit(frequencyHz, durationMs int) error
}

// ActivityProbe reports when the user last touched the keyboard or mouse.
type ActivityProbe interface {
	LastInput() (time.Time, error)
}

// SignalError is returned by an Alerter that could not play its tone.
type SignalError struct {
	FrequencyHz int
	DurationMs  int
	Err         error
}

func (e *SignalError) Error() string {
	return fmt.Sprintf("emit %dHz tone for %dms: %v", e.FrequencyHz, e.DurationMs, e.Err)
}

func (e *SignalError) Unwrap() error { return e.Err }
