// Package config provides configuration for the flight function.
// Configuration is sourced once at process start (defaults, optional YAML
// file, optional .env file, then the process environment) and passed into the
// handler explicitly.
package config

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variables read by FromEnv.
const (
	EnvAgentKey     = "FLIGHT_AGENT_KEY"
	EnvAgentBaseURL = "FLIGHT_AGENT_BASE_URL"
	EnvAgentModel   = "FLIGHT_AGENT_MODEL"
	EnvAgentTimeout = "FLIGHT_AGENT_TIMEOUT"
)

// Config represents the complete function configuration.
type Config struct {
	Agent   AgentConfig   `yaml:"agent"`
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
}

// AgentConfig holds the completion service settings.
type AgentConfig struct {
	// Key is the agent access key. Usually set through FLIGHT_AGENT_KEY.
	Key string `yaml:"key"`

	// BaseURL is the agent endpoint. Usually set through FLIGHT_AGENT_BASE_URL.
	BaseURL string `yaml:"base_url"`

	// APIPath is appended to BaseURL to reach the chat completions API
	// (default: /api/v1)
	APIPath string `yaml:"api_path"`

	// Model is the model identifier sent with every request
	Model string `yaml:"model"`

	// Temperature is the sampling temperature (default: 0.7)
	Temperature float32 `yaml:"temperature"`

	// MaxTokens caps the completion length (default: 2000)
	MaxTokens int `yaml:"max_tokens"`

	// Timeout bounds the single completion round trip (default: 60s)
	Timeout time.Duration `yaml:"timeout"`
}

// HasCredentials reports whether both the key and the endpoint are set.
func (a AgentConfig) HasCredentials() bool {
	return a.Key != "" && a.BaseURL != ""
}

// Endpoint returns the base URL the chat client should use.
func (a AgentConfig) Endpoint() string {
	base := strings.TrimRight(a.BaseURL, "/")
	path := strings.Trim(a.APIPath, "/")
	if path == "" {
		return base
	}
	return base + "/" + path
}

// ServerConfig holds settings for the HTTP web action.
type ServerConfig struct {
	// Port specifies the HTTP server port (default: 8080)
	Port int `yaml:"port"`

	// ReadTimeout is the maximum duration for reading the entire request
	ReadTimeout time.Duration `yaml:"read_timeout"`

	// WriteTimeout must exceed Agent.Timeout; zero disables it
	WriteTimeout time.Duration `yaml:"write_timeout"`

	// MaxHeaderBytes limits request header size (default: 1MB)
	MaxHeaderBytes int `yaml:"max_header_bytes"`

	// ShutdownTimeout bounds graceful shutdown (default: 15s)
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	// Level sets logging verbosity: debug, info, warn, error
	Level string `yaml:"level"`

	// Format specifies log output format: json or text
	Format string `yaml:"format"`
}

// DefaultConfig returns a configuration with every field except the agent
// credentials filled in.
func DefaultConfig() *Config {
	return &Config{
		Agent: AgentConfig{
			APIPath:     "/api/v1",
			Model:       "llama3-8b-instruct",
			Temperature: 0.7,
			MaxTokens:   2000,
			Timeout:     60 * time.Second,
		},
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    90 * time.Second,
			MaxHeaderBytes:  1 << 20,
			ShutdownTimeout: 15 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// LoadFile loads configuration from a YAML file.
func LoadFile(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// expandEnvVars resolves ${VAR} and ${VAR:-default} references.
func expandEnvVars(s string) string {
	return os.Expand(s, func(key string) string {
		if i := strings.Index(key, ":-"); i >= 0 {
			if val := os.Getenv(key[:i]); val != "" {
				return val
			}
			return key[i+2:]
		}
		return os.Getenv(key)
	})
}

// Load reads YAML from r on top of DefaultConfig and validates the result.
func Load(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()

	dec := yaml.NewDecoder(strings.NewReader(expandEnvVars(string(data))))
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// FromEnv overlays the agent environment variables onto c. Unset variables
// leave the current value alone.
func (c *Config) FromEnv() error {
	if v := os.Getenv(EnvAgentKey); v != "" {
		c.Agent.Key = v
	}
	if v := os.Getenv(EnvAgentBaseURL); v != "" {
		c.Agent.BaseURL = v
	}
	if v := os.Getenv(EnvAgentModel); v != "" {
		c.Agent.Model = v
	}
	if v := os.Getenv(EnvAgentTimeout); v != "" {
		d, err := parseDuration(v)
		if err != nil {
			return fmt.Errorf("parse %s: %w", EnvAgentTimeout, err)
		}
		c.Agent.Timeout = d
	}
	return nil
}

// parseDuration accepts Go durations ("45s") and bare seconds ("45").
func parseDuration(v string) (time.Duration, error) {
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	return time.ParseDuration(v)
}

// Validate checks everything except the agent credentials. Missing
// credentials are reported per invocation, not at startup.
func (c *Config) Validate() error {
	if c.Agent.Model == "" {
		return fmt.Errorf("empty agent model")
	}
	if c.Agent.Temperature < 0 || c.Agent.Temperature > 2 {
		return fmt.Errorf("agent temperature out of range: %v", c.Agent.Temperature)
	}
	if c.Agent.MaxTokens <= 0 {
		return fmt.Errorf("agent max tokens must be positive: %d", c.Agent.MaxTokens)
	}
	if c.Agent.Timeout <= 0 {
		return fmt.Errorf("agent timeout must be positive: %v", c.Agent.Timeout)
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}
	if c.Server.ReadTimeout < 0 {
		return fmt.Errorf("negative read timeout: %v", c.Server.ReadTimeout)
	}
	if c.Server.WriteTimeout < 0 {
		return fmt.Errorf("negative write timeout: %v", c.Server.WriteTimeout)
	}
	if c.Server.WriteTimeout > 0 && c.Server.WriteTimeout <= c.Agent.Timeout {
		return fmt.Errorf("write timeout %v must exceed agent timeout %v", c.Server.WriteTimeout, c.Agent.Timeout)
	}
	if c.Server.MaxHeaderBytes < 0 {
		return fmt.Errorf("negative max header bytes: %d", c.Server.MaxHeaderBytes)
	}
	if c.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("negative shutdown timeout: %v", c.Server.ShutdownTimeout)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "json", "text":
	default:
		return fmt.Errorf("invalid log format: %s", c.Logging.Format)
	}

	return nil
}
