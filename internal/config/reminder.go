package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"sort"
	"strings"

	"github.com/eyecare-io/eyecare/internal/models"
)

// WarningTitle is the dialog title used for configuration warnings.
const WarningTitle = "Eye care reminder"

// ErrorKind classifies why the reminder config could not be used as written.
type ErrorKind int

const (
	// KindNotFound means the config file does not exist.
	KindNotFound ErrorKind = iota
	// KindMalformed means the file exists but could not be decoded.
	KindMalformed
	// KindRead covers every other failure while reading the file.
	KindRead
	// KindInvalidValue means the file decoded but some fields were rejected.
	KindInvalidValue
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindMalformed:
		return "malformed"
	case KindRead:
		return "read"
	case KindInvalidValue:
		return "invalid_value"
	default:
		return "unknown"
	}
}

// ConfigError reports a recovered configuration problem. Defaults have
// already been substituted by the time a caller sees it.
type ConfigError struct {
	Kind   ErrorKind
	Path   string
	Fields []string // rejected keys, KindInvalidValue only
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("config %s (%s): %v", e.Path, e.Kind, e.Err)
	}
	return fmt.Sprintf("config %s (%s)", e.Path, e.Kind)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Message returns the text shown to the user in the warning dialog.
func (e *ConfigError) Message() string {
	switch e.Kind {
	case KindNotFound:
		return fmt.Sprintf("Config file not found at %s.\nUsing default values.", e.Path)
	case KindMalformed:
		return fmt.Sprintf("Error decoding config file at %s. Using default values.", e.Path)
	case KindInvalidValue:
		return fmt.Sprintf("Invalid values for %s in %s.\nUsing default values for those settings.",
			strings.Join(e.Fields, ", "), e.Path)
	default:
		return fmt.Sprintf("Error initializing variables: %v. \nUsing default values.", e.Err)
	}
}

// reminderField is a recognized key, the field it populates and its allowed
// range. A zero min means 1 and a zero max means unbounded.
type reminderField struct {
	field func(*models.ReminderConfig) *int
	min   int
	max   int
}

var reminderKeys = map[string]reminderField{
	"screen_interval_seconds": {field: func(c *models.ReminderConfig) *int { return &c.ScreenIntervalSeconds }},
	"away_interval_seconds":   {field: func(c *models.ReminderConfig) *int { return &c.AwayIntervalSeconds }},
	"sound_frequency_hz": {
		field: func(c *models.ReminderConfig) *int { return &c.SoundFrequencyHz },
		min:   models.MinSoundFrequencyHz,
		max:   models.MaxSoundFrequencyHz,
	},
	"sound_duration_ms": {field: func(c *models.ReminderConfig) *int { return &c.SoundDurationMs }},
}

func (f reminderField) accepts(n int) bool {
	if n < max(f.min, 1) {
		return false
	}
	return f.max == 0 || n <= f.max
}

// LoadReminder loads the reminder config from path. It always returns a
// usable config; the error, if any, is a *ConfigError describing what was
// replaced by defaults.
func LoadReminder(path string) (*models.ReminderConfig, error) {
	cfg := models.NewReminderConfig()

	var raw map[string]interface{}
	if err := LoadFile(path, &raw); err != nil {
		kind := KindRead
		switch {
		case errors.Is(err, fs.ErrNotExist):
			kind = KindNotFound
		case errors.Is(err, ErrDecode):
			kind = KindMalformed
		}
		return cfg, &ConfigError{Kind: kind, Path: path, Err: err}
	}

	var invalid []string
	for key, f := range reminderKeys {
		v, ok := raw[key]
		if !ok {
			continue
		}
		n, ok := positiveInt(v)
		if !ok || !f.accepts(n) {
			invalid = append(invalid, key)
			continue
		}
		*f.field(cfg) = n
	}

	if len(invalid) > 0 {
		sort.Strings(invalid)
		return cfg, &ConfigError{
			Kind:   KindInvalidValue,
			Path:   path,
			Fields: invalid,
			Err:    fmt.Errorf("out of range or not an integer: %s", strings.Join(invalid, ", ")),
		}
	}
	return cfg, nil
}

// WriteDefaultReminder writes a config file populated with the defaults.
func WriteDefaultReminder(path string) error {
	return SaveFile(path, models.NewReminderConfig())
}

// positiveInt accepts the integer shapes produced by the YAML and TOML
// decoders, plus floats with no fractional part.
func positiveInt(v interface{}) (int, bool) {
	var n int64
	switch x := v.(type) {
	case int:
		n = int64(x)
	case int64:
		n = x
	case uint64:
		if x > math.MaxInt32 {
			return 0, false
		}
		n = int64(x)
	case float64:
		if x != math.Trunc(x) || x > math.MaxInt32 || x < 0 {
			return 0, false
		}
		n = int64(x)
	default:
		return 0, false
	}
	if n <= 0 || n > math.MaxInt32 {
		return 0, false
	}
	return int(n), true
}
