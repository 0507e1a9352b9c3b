package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	envPrefix     = "TERMINALCONFESS"
	defaultAPIURL = "https://backend-confession.vercel.app"
)

// Config holds application-level configuration.
type Config struct {
	APIURL      string        // e.g. "https://backend-confession.vercel.app"
	StateDir    string        // Token, user record, liked set, UI state and logs
	HTTPTimeout time.Duration // Per-request timeout
	LogLevel    string        // debug, info, warn, error
	LogFormat   string        // json or console
}

// UIStatePath returns the path of the persisted UI state.
func (c Config) UIStatePath() string { return filepath.Join(c.StateDir, "ui_state.json") }

// LogPath returns the path of the log file.
func (c Config) LogPath() string { return filepath.Join(c.StateDir, "terminalconfess.log") }

// Load reads configuration from environment variables and an optional
// config.yaml in the state directory. Environment wins over the file.
//
//	TERMINALCONFESS_API_URL       backend base URL (default: https://backend-confession.vercel.app)
//	TERMINALCONFESS_STATE_DIR     state directory (default: ~/.config/terminalconfess)
//	TERMINALCONFESS_HTTP_TIMEOUT  request timeout (default: 15s)
//	TERMINALCONFESS_LOG_LEVEL     log level (default: info)
//	TERMINALCONFESS_LOG_FORMAT    json or console (default: json)
func Load() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("cannot determine home directory: %w", err)
	}
	v.SetDefault("state_dir", filepath.Join(home, ".config", "terminalconfess"))
	v.SetDefault("api_url", defaultAPIURL)
	v.SetDefault("http_timeout", "15s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(v.GetString("state_dir"))
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	apiURL, err := normalizeAPIURL(v.GetString("api_url"))
	if err != nil {
		return Config{}, err
	}

	timeout := v.GetDuration("http_timeout")
	if timeout <= 0 {
		return Config{}, fmt.Errorf("invalid %s_HTTP_TIMEOUT: must be a positive duration", envPrefix)
	}

	format := strings.ToLower(v.GetString("log.format"))
	if format != "json" && format != "console" {
		return Config{}, fmt.Errorf("invalid %s_LOG_FORMAT %q: want json or console", envPrefix, format)
	}

	return Config{
		APIURL:      apiURL,
		StateDir:    v.GetString("state_dir"),
		HTTPTimeout: timeout,
		LogLevel:    v.GetString("log.level"),
		LogFormat:   format,
	}, nil
}

func normalizeAPIURL(raw string) (string, error) {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", fmt.Errorf("invalid %s_API_URL: must be an absolute URL", envPrefix)
	}
	if parsed.Scheme != "https" && parsed.Scheme != "http" {
		return "", fmt.Errorf("invalid %s_API_URL: only http and https are allowed", envPrefix)
	}
	return strings.TrimRight(parsed.String(), "/"), nil
}

// UIState is remembered between runs.
type UIState struct {
	LastRoute string `json:"last_route,omitempty"`
}

// LoadUIState reads the UI state file. A missing file yields zero state.
func LoadUIState(path string) (UIState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return UIState{}, nil
		}
		return UIState{}, fmt.Errorf("reading ui state: %w", err)
	}
	var st UIState
	if err := json.Unmarshal(data, &st); err != nil {
		return UIState{}, fmt.Errorf("parsing ui state: %w", err)
	}
	return st, nil
}

// SaveUIState writes the UI state file.
func SaveUIState(path string, st UIState) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating ui state dir: %w", err)
	}
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encoding ui state: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing ui state: %w", err)
	}
	return nil
}
