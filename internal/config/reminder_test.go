package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eyecare-io/eyecare/internal/models"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func requireConfigError(t *testing.T, err error) *ConfigError {
	t.Helper()
	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr), "expected *ConfigError, got %v", err)
	return cfgErr
}

func TestLoadReminderMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := LoadReminder(path)

	assert.Equal(t, models.NewReminderConfig(), cfg)
	cfgErr := requireConfigError(t, err)
	assert.Equal(t, KindNotFound, cfgErr.Kind)
	assert.Equal(t, "Config file not found at "+path+".\nUsing default values.", cfgErr.Message())
}

func TestLoadReminderMalformedFile(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{name: "broken json", file: "config.json", content: `{"screen_interval_seconds": 10,`},
		{name: "broken yaml", file: "config.yaml", content: "screen_interval_seconds: [1, 2\n"},
		{name: "broken toml", file: "config.toml", content: "screen_interval_seconds = = 3\n"},
		{name: "scalar document", file: "config.yaml", content: "just a string\n"},
		{name: "empty file", file: "config.json", content: "  \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.file, tt.content)

			cfg, err := LoadReminder(path)

			assert.Equal(t, models.NewReminderConfig(), cfg)
			cfgErr := requireConfigError(t, err)
			assert.Equal(t, KindMalformed, cfgErr.Kind)
			assert.True(t, errors.Is(err, ErrDecode))
			assert.Contains(t, cfgErr.Message(), "Error decoding config file at "+path)
		})
	}
}

func TestLoadReminderMessagesDiffer(t *testing.T) {
	missing := &ConfigError{Kind: KindNotFound, Path: "config.json"}
	malformed := &ConfigError{Kind: KindMalformed, Path: "config.json"}

	assert.NotEqual(t, missing.Message(), malformed.Message())
}

func TestLoadReminderFormats(t *testing.T) {
	want := &models.ReminderConfig{
		ScreenIntervalSeconds: 600,
		AwayIntervalSeconds:   30,
		SoundFrequencyHz:      440,
		SoundDurationMs:       250,
	}

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "json",
			file: "config.json",
			content: `{"screen_interval_seconds": 600, "away_interval_seconds": 30,
				"sound_frequency_hz": 440, "sound_duration_ms": 250}`,
		},
		{
			name: "yaml",
			file: "config.yaml",
			content: "screen_interval_seconds: 600\naway_interval_seconds: 30\n" +
				"sound_frequency_hz: 440\nsound_duration_ms: 250\n",
		},
		{
			name: "toml",
			file: "config.toml",
			content: "screen_interval_seconds = 600\naway_interval_seconds = 30\n" +
				"sound_frequency_hz = 440\nsound_duration_ms = 250\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadReminder(writeConfig(t, tt.file, tt.content))
			require.NoError(t, err)
			assert.Equal(t, want, cfg)
		})
	}
}

func TestLoadReminderPartialDefaults(t *testing.T) {
	path := writeConfig(t, "config.json", `{"away_interval_seconds": 45, "unknown_key": "ignored"}`)

	cfg, err := LoadReminder(path)

	require.NoError(t, err)
	assert.Equal(t, 45, cfg.AwayIntervalSeconds)
	assert.Equal(t, models.DefaultScreenIntervalSeconds, cfg.ScreenIntervalSeconds)
	assert.Equal(t, models.DefaultSoundFrequencyHz, cfg.SoundFrequencyHz)
	assert.Equal(t, models.DefaultSoundDurationMs, cfg.SoundDurationMs)
}

func TestLoadReminderInvalidValues(t *testing.T) {
	path := writeConfig(t, "config.yaml",
		"screen_interval_seconds: -5\naway_interval_seconds: 10\nsound_frequency_hz: loud\nsound_duration_ms: 12.5\n")

	cfg, err := LoadReminder(path)

	assert.Equal(t, &models.ReminderConfig{
		ScreenIntervalSeconds: models.DefaultScreenIntervalSeconds,
		AwayIntervalSeconds:   10,
		SoundFrequencyHz:      models.DefaultSoundFrequencyHz,
		SoundDurationMs:       models.DefaultSoundDurationMs,
	}, cfg)

	cfgErr := requireConfigError(t, err)
	assert.Equal(t, KindInvalidValue, cfgErr.Kind)
	assert.Equal(t, []string{"screen_interval_seconds", "sound_duration_ms", "sound_frequency_hz"}, cfgErr.Fields)
	assert.Contains(t, cfgErr.Message(), "screen_interval_seconds, sound_duration_ms, sound_frequency_hz")
}

func TestLoadReminderSoundFrequencyRange(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
		wantErr bool
	}{
		{name: "below speaker range", content: "sound_frequency_hz: 20\n", want: models.DefaultSoundFrequencyHz, wantErr: true},
		{name: "above speaker range", content: "sound_frequency_hz: 40000\n", want: models.DefaultSoundFrequencyHz, wantErr: true},
		{name: "lowest playable", content: "sound_frequency_hz: 37\n", want: 37},
		{name: "highest playable", content: "sound_frequency_hz: 32767\n", want: 32767},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadReminder(writeConfig(t, "config.yaml", tt.content))

			assert.Equal(t, tt.want, cfg.SoundFrequencyHz)
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			cfgErr := requireConfigError(t, err)
			assert.Equal(t, KindInvalidValue, cfgErr.Kind)
			assert.Equal(t, []string{"sound_frequency_hz"}, cfgErr.Fields)
		})
	}
}

func TestLoadReminderJSONDuplicateKey(t *testing.T) {
	path := writeConfig(t, "config.json", `{"away_interval_seconds": 30, "away_interval_seconds": 45}`)

	cfg, err := LoadReminder(path)

	require.NoError(t, err)
	assert.Equal(t, 45, cfg.AwayIntervalSeconds)
}

func TestLoadReminderIntegralFloat(t *testing.T) {
	cfg, err := LoadReminder(writeConfig(t, "config.json", `{"screen_interval_seconds": 900.0}`))

	require.NoError(t, err)
	assert.Equal(t, 900, cfg.ScreenIntervalSeconds)
}

func TestLoadReminderReadError(t *testing.T) {
	// A directory cannot be read as a file.
	dir := t.TempDir()

	cfg, err := LoadReminder(dir)

	assert.Equal(t, models.NewReminderConfig(), cfg)
	cfgErr := requireConfigError(t, err)
	assert.Equal(t, KindRead, cfgErr.Kind)
	assert.Contains(t, cfgErr.Message(), "Error initializing variables:")
}

func TestWriteDefaultReminder(t *testing.T) {
	for _, name := range []string{"config.yaml", "config.json", "config.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)
			require.NoError(t, WriteDefaultReminder(path))
			assert.True(t, FileExists(path))

			cfg, err := LoadReminder(path)
			require.NoError(t, err)
			assert.Equal(t, models.NewReminderConfig(), cfg)
		})
	}
}

func TestDefaultReminderFileHonorsEnv(t *testing.T) {
	t.Setenv(EnvConfigFile, "/tmp/custom.toml")

	path, err := DefaultReminderFile()

	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.toml", path)
}

func TestDebugEnabled(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"1", true},
		{"true", true},
		{"yes", true},
		{"0", false},
		{"", false},
		{"maybe", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv(EnvDebug, tt.value)
			if got := DebugEnabled(); got != tt.want {
				t.Errorf("DebugEnabled() with %q = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}
