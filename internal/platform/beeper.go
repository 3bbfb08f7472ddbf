package platform

import (
	"fmt"

	"github.com/gen2brain/beeep"

	"github.com/eyecare-io/eyecare/internal/daemon/reminder"
	"github.com/eyecare-io/eyecare/internal/models"
)

// Beeper plays the end-of-break tone through the system speaker.
type Beeper struct {
	beep func(freq float64, duration int) error
}

// NewBeeper creates a Beeper backed by beeep.
func NewBeeper() *Beeper {
	return &Beeper{beep: beeep.Beep}
}

// Emit plays a tone at frequencyHz for durationMs. Frequencies the speaker
// cannot play are rejected rather than passed to beeep, which would silently
// substitute a different tone.
func (b *Beeper) Emit(frequencyHz, durationMs int) error {
	if frequencyHz < models.MinSoundFrequencyHz || frequencyHz > models.MaxSoundFrequencyHz {
		return &reminder.SignalError{FrequencyHz: frequencyHz, DurationMs: durationMs,
			Err: fmt.Errorf("frequency must be between %d and %d Hz", models.MinSoundFrequencyHz, models.MaxSoundFrequencyHz)}
	}
	if durationMs <= 0 {
		return &reminder.SignalError{FrequencyHz: frequencyHz, DurationMs: durationMs,
			Err: fmt.Errorf("duration must be positive")}
	}
	if err := b.beep(float64(frequencyHz), durationMs); err != nil {
		return &reminder.SignalError{FrequencyHz: frequencyHz, DurationMs: durationMs, Err: err}
	}
	return nil
}
