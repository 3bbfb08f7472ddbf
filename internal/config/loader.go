package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrDecode marks a file that was read but whose content could not be parsed.
var ErrDecode = errors.New("invalid file content")

// LoadFile loads a YAML, JSON or TOML file into the provided value.
// The format is chosen by extension; anything but .toml and .json goes
// through the YAML decoder. JSON files keep JSON semantics, so a repeated
// key takes its last value instead of failing as it would under YAML.
func LoadFile(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return fmt.Errorf("failed to parse %s: %w: empty file", path, ErrDecode)
	}
	switch format(path) {
	case formatTOML:
		err = toml.Unmarshal(data, v)
	case formatJSON:
		err = json.Unmarshal(data, v)
	default:
		err = yaml.Unmarshal(data, v)
	}
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w: %w", path, ErrDecode, err)
	}
	return nil
}

// SaveFile saves a struct to a YAML, JSON or TOML file, creating parent
// directories.
func SaveFile(path string, v interface{}) error {
	var (
		data []byte
		err  error
	)
	switch format(path) {
	case formatTOML:
		data, err = toml.Marshal(v)
	case formatJSON:
		data, err = json.MarshalIndent(v, "", "  ")
	default:
		data, err = yaml.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

type fileFormat int

const (
	formatYAML fileFormat = iota
	formatJSON
	formatTOML
)

func format(path string) fileFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return formatTOML
	case ".json":
		return formatJSON
	default:
		return formatYAML
	}
}
