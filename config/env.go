package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// DefaultEnvFile is the environment file read when none is given.
const DefaultEnvFile = ".env"

// LoadEnvFile loads KEY=VALUE pairs from the given files into the process
// environment. Files that do not exist are skipped, and variables already set
// in the environment win over the file.
func LoadEnvFile(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{DefaultEnvFile}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("load env file %s: %w", p, err)
		}
	}
	return nil
}

// Resolve builds the process configuration: env files first, then the YAML
// file at path (if any), then the environment overlay.
func Resolve(path string, envFiles ...string) (*Config, error) {
	if err := LoadEnvFile(envFiles...); err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if path != "" {
		var err error
		cfg, err = LoadFile(path)
		if err != nil {
			return nil, err
		}
	}

	if err := cfg.FromEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}
