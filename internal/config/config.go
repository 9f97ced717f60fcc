// Package config loads the stocks-mcp configuration from the environment and an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/stocksmcp/stocks-mcp/internal"
	"gopkg.in/yaml.v3"
)

const (
	BaseURLEnvVar = "FINANCE_API_BASE_URL"

	// APIKeyEnvVar is the primary variable holding the stock.indianapi.in key.
	APIKeyEnvVar = "INDIANAPI_KEY"
	// AltAPIKeyEnvVar is read when APIKeyEnvVar is unset.
	AltAPIKeyEnvVar = "FINANCE_API_KEY"

	ConfigFileEnvVar       = "STOCKS_MCP_CONFIG"
	TransportEnvVar        = "STOCKS_MCP_TRANSPORT"
	PortEnvVar             = "PORT"
	AccessTokenEnvVar      = "MCP_ACCESS_TOKEN"
	HistoryEnabledEnvVar   = "CALL_HISTORY_ENABLED"
	DBUrlEnvVar            = "DATABASE_URL"
	TelemetryEnabledEnvVar = "OTEL_ENABLED"
)

const (
	DefaultBaseURL = "https://stock.indianapi.in"
	DefaultPort    = "8080"
)

// Transport selects how the MCP server is exposed.
type Transport string

const (
	TransportStdio Transport = "stdio"
	TransportHTTP  Transport = "http"
)

// API is the configuration of the upstream financial data API.
// It is resolved once at startup and never mutated afterwards.
type API struct {
	BaseURL string
	APIKey  string
}

// HasKey reports whether an API key is configured.
func (a API) HasKey() bool {
	return a.APIKey != ""
}

// Config is the complete, immutable configuration of a stocks-mcp process.
type Config struct {
	API API

	Transport Transport
	Port      string

	// AccessToken, if set, must be presented as a bearer token by HTTP clients.
	AccessToken string

	HistoryEnabled bool
	DatabaseURL    string

	TelemetryEnabled bool
}

// fileConfig mirrors the YAML configuration file.
// Pointers distinguish "not set" from zero values so the environment can fill the gaps.
type fileConfig struct {
	BaseURL     string `yaml:"base_url"`
	APIKey      string `yaml:"api_key"`
	Transport   string `yaml:"transport"`
	Port        string `yaml:"port"`
	AccessToken string `yaml:"access_token"`
	History     *bool  `yaml:"history"`
	DatabaseURL string `yaml:"database_url"`
	Telemetry   *bool  `yaml:"telemetry"`
}

// Load resolves the configuration.
// Precedence: environment variable > config file > default.
// path is the YAML config file to read; if empty, the STOCKS_MCP_CONFIG environment variable is consulted.
// A missing API key is not an error: every tool call will then report a ConfigurationError.
func Load(fs afero.Fs, path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(ConfigFileEnvVar)
	}

	var fc fileConfig
	if path != "" {
		data, err := afero.ReadFile(fs, path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	apiKey, err := resolveAPIKey(fs)
	if err != nil {
		return nil, err
	}
	if apiKey == "" {
		apiKey = fc.APIKey
	}

	c := &Config{
		API: API{
			BaseURL: strings.TrimRight(firstNonEmpty(os.Getenv(BaseURLEnvVar), fc.BaseURL, DefaultBaseURL), "/"),
			APIKey:  apiKey,
		},
		Transport:   Transport(strings.ToLower(firstNonEmpty(os.Getenv(TransportEnvVar), fc.Transport, string(TransportStdio)))),
		Port:        firstNonEmpty(os.Getenv(PortEnvVar), fc.Port, DefaultPort),
		DatabaseURL: firstNonEmpty(os.Getenv(DBUrlEnvVar), fc.DatabaseURL),
	}

	c.AccessToken, err = getEnvOrFile(fs, AccessTokenEnvVar)
	if err != nil {
		return nil, err
	}
	if c.AccessToken == "" {
		c.AccessToken = fc.AccessToken
	}

	if c.HistoryEnabled, err = envBool(HistoryEnabledEnvVar, fc.History); err != nil {
		return nil, err
	}
	if c.TelemetryEnabled, err = envBool(TelemetryEnabledEnvVar, fc.Telemetry); err != nil {
		return nil, err
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the values that would make the server unusable.
func (c *Config) Validate() error {
	if c.Transport != TransportStdio && c.Transport != TransportHTTP {
		return fmt.Errorf(
			"invalid transport '%s', valid values are '%s' and '%s'", c.Transport, TransportStdio, TransportHTTP,
		)
	}
	if c.AccessToken != "" {
		if err := internal.ValidateAccessToken(c.AccessToken); err != nil {
			return fmt.Errorf("invalid value for %s: %w", AccessTokenEnvVar, err)
		}
	}
	return nil
}

// resolveAPIKey returns the first API key found among the recognized variables.
func resolveAPIKey(fs afero.Fs) (string, error) {
	for _, name := range []string{APIKeyEnvVar, AltAPIKeyEnvVar} {
		key, err := getEnvOrFile(fs, name)
		if err != nil {
			return "", err
		}
		if key != "" {
			return key, nil
		}
	}
	return "", nil
}

// getEnvOrFile returns the value of the given environment variable.
// If the environment variable is not set, it checks for a corresponding
// _FILE environment variable and reads the value from the file if it exists.
// If neither is set, it returns an empty string.
func getEnvOrFile(fs afero.Fs, envVar string) (string, error) {
	val := os.Getenv(envVar)
	if val != "" {
		return val, nil
	}

	fileEnvVar := envVar + "_FILE"
	filePath := os.Getenv(fileEnvVar)
	if filePath != "" {
		data, err := afero.ReadFile(fs, filePath)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", fileEnvVar, err)
		}
		return strings.TrimSpace(string(data)), nil
	}

	return "", nil
}

var errInvalidBool = errors.New("valid values are 'true' or 'false'")

// envBool reads a boolean environment variable, falling back to the file value and then to false.
func envBool(envVar string, fileVal *bool) (bool, error) {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(envVar)))
	switch v {
	case "":
		if fileVal != nil {
			return *fileVal, nil
		}
		return false, nil
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid value for %s environment variable: '%s': %w", envVar, v, errInvalidBool)
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
