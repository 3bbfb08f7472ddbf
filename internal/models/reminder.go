// Package models defines the data types shared across the daemon.
package models

import "time"

// Built-in reminder defaults.
const (
	DefaultScreenIntervalSeconds = 1200
	DefaultAwayIntervalSeconds   = 20
	DefaultSoundFrequencyHz      = 1000
	DefaultSoundDurationMs       = 125
)

// Tone frequencies the Windows Beep call can play.
const (
	MinSoundFrequencyHz = 37
	MaxSoundFrequencyHz = 32767
)

// ReminderConfig holds the reminder timing and alert parameters.
// This corresponds to ~/.eyecare/config.yaml.
type ReminderConfig struct {
	ScreenIntervalSeconds int `json:"screen_interval_seconds" yaml:"screen_interval_seconds" toml:"screen_interval_seconds"`
	AwayIntervalSeconds   int `json:"away_interval_seconds" yaml:"away_interval_seconds" toml:"away_interval_seconds"`
	SoundFrequencyHz      int `json:"sound_frequency_hz" yaml:"sound_frequency_hz" toml:"sound_frequency_hz"`
	SoundDurationMs       int `json:"sound_duration_ms" yaml:"sound_duration_ms" toml:"sound_duration_ms"`
}

// NewReminderConfig creates a reminder config with default values.
func NewReminderConfig() *ReminderConfig {
	return &ReminderConfig{
		ScreenIntervalSeconds: DefaultScreenIntervalSeconds,
		AwayIntervalSeconds:   DefaultAwayIntervalSeconds,
		SoundFrequencyHz:      DefaultSoundFrequencyHz,
		SoundDurationMs:       DefaultSoundDurationMs,
	}
}

// ScreenInterval is how long the user works between breaks.
func (c *ReminderConfig) ScreenInterval() time.Duration {
	return time.Duration(c.ScreenIntervalSeconds) * time.Second
}

// AwayInterval is how long each break lasts.
func (c *ReminderConfig) AwayInterval() time.Duration {
	return time.Duration(c.AwayIntervalSeconds) * time.Second
}
