package config

import (
	"io"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"gopkg.in/yaml.v3"

	"github.com/vango-dev/mdc/internal/errors"
)

const (
	// DefaultPort is the default gallery server port.
	DefaultPort = 3000

	// DefaultHost is the default gallery server host.
	DefaultHost = "localhost"

	// DefaultMDCVersion is the material-components-web release the
	// gallery page loads.
	DefaultMDCVersion = "14.0.0"

	// DefaultMetricsPath is where metrics are served.
	DefaultMetricsPath = "/metrics"
)

// FileNames are the configuration files Load looks for, in order.
var FileNames = []string{"mdc.yaml", "mdc.yml", "mdc.json"}

// Config represents the mdc.yaml or mdc.json configuration.
type Config struct {
	// Server contains the gallery server configuration.
	Server ServerConfig `json:"server" yaml:"server"`

	// Metrics contains Prometheus configuration.
	Metrics MetricsConfig `json:"metrics" yaml:"metrics"`

	// Tracing contains OpenTelemetry configuration.
	Tracing TracingConfig `json:"tracing" yaml:"tracing"`

	// Log contains logging configuration.
	Log LogConfig `json:"log" yaml:"log"`

	// Assets contains the MDC asset configuration.
	Assets AssetsConfig `json:"assets" yaml:"assets"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig contains gallery server settings.
type ServerConfig struct {
	// Host is the host to bind to.
	Host string `json:"host,omitempty" yaml:"host,omitempty"`

	// Port is the port to listen on.
	Port int `json:"port,omitempty" yaml:"port,omitempty"`

	// ReadTimeout bounds the time between two client messages on a
	// widget connection (e.g., "60s").
	ReadTimeout string `json:"readTimeout,omitempty" yaml:"readTimeout,omitempty"`

	// MaxMessageSize limits client messages, in bytes.
	MaxMessageSize int64 `json:"maxMessageSize,omitempty" yaml:"maxMessageSize,omitempty"`
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	Enabled   bool   `json:"enabled" yaml:"enabled"`
	Path      string `json:"path,omitempty" yaml:"path,omitempty"`
	Namespace string `json:"namespace,omitempty" yaml:"namespace,omitempty"`
}

// TracingConfig contains OpenTelemetry settings. Spans go to the global
// tracer provider; the program installs the exporter.
type TracingConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn or error.
	Level string `json:"level,omitempty" yaml:"level,omitempty"`

	// Format is text or json.
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
}

// AssetsConfig contains the MDC asset settings.
type AssetsConfig struct {
	// MDCVersion is the material-components-web version loaded from the
	// CDN.
	MDCVersion string `json:"mdcVersion,omitempty" yaml:"mdcVersion,omitempty"`

	// CDN is the base URL of the package CDN.
	CDN string `json:"cdn,omitempty" yaml:"cdn,omitempty"`
}

// New returns a configuration with default values.
func New() *Config {
	return &Config{
		Server: ServerConfig{
			Host:           DefaultHost,
			Port:           DefaultPort,
			ReadTimeout:    "60s",
			MaxMessageSize: 64 << 10,
		},
		Metrics: MetricsConfig{
			Enabled:   true,
			Path:      DefaultMetricsPath,
			Namespace: "mdc",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Assets: AssetsConfig{
			MDCVersion: DefaultMDCVersion,
			CDN:        "https://unpkg.com",
		},
	}
}

// Load reads the first of FileNames found in dir. Without a config file
// it returns the defaults.
func Load(dir string) (*Config, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}
	return New(), nil
}

// LoadFile reads configuration from path. Files ending in .yaml or .yml
// are YAML, anything else JSON.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E130").
				WithDetail("No config file at " + path).
				WithSuggestion("Create " + filepath.Base(path) + " or run without --config to use the defaults")
		}
		return nil, errors.New("E130").Wrap(err)
	}

	cfg := New()
	if isYAML(path) {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.New("E130").
				WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error()).
				WithSuggestion("Check that " + filepath.Base(path) + " is valid YAML")
		}
	} else if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E130").
			WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error()).
			WithSuggestion("Check that " + filepath.Base(path) + " is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()
	return cfg, nil
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// SaveTo writes the configuration to path in the format its extension
// names.
func (c *Config) SaveTo(path string) error {
	var data []byte
	var err error
	if isYAML(path) {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.Marshal(c, json.Deterministic(true), jsontext.WithIndent("  "))
		data = append(data, '\n')
	}
	if err != nil {
		return errors.New("E130").Wrap(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E130").Wrap(err)
	}
	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from, or the empty
// string for defaults.
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	d := New()
	if c.Server.Host == "" {
		c.Server.Host = d.Server.Host
	}
	if c.Server.Port == 0 {
		c.Server.Port = d.Server.Port
	}
	if c.Server.ReadTimeout == "" {
		c.Server.ReadTimeout = d.Server.ReadTimeout
	}
	if c.Server.MaxMessageSize == 0 {
		c.Server.MaxMessageSize = d.Server.MaxMessageSize
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = d.Metrics.Path
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = d.Metrics.Namespace
	}
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = d.Log.Format
	}
	if c.Assets.MDCVersion == "" {
		c.Assets.MDCVersion = d.Assets.MDCVersion
	}
	if c.Assets.CDN == "" {
		c.Assets.CDN = d.Assets.CDN
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return errors.New("E131").
			WithDetail("Port " + strconv.Itoa(c.Server.Port) + " is out of range")
	}
	if _, err := time.ParseDuration(c.Server.ReadTimeout); err != nil {
		return errors.New("E130").
			WithDetail("server.readTimeout: " + err.Error()).
			WithSuggestion(`Use a Go duration such as "60s" or "2m"`)
	}
	if c.Server.MaxMessageSize <= 0 {
		return errors.New("E130").WithDetail("server.maxMessageSize must be positive")
	}
	if _, ok := levels[c.Log.Level]; !ok {
		return errors.New("E130").
			WithDetail("log.level " + strconv.Quote(c.Log.Level) + " is not one of debug, info, warn, error")
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return errors.New("E130").
			WithDetail("log.format " + strconv.Quote(c.Log.Format) + " is not text or json")
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return errors.New("E130").WithDetail("metrics.path must start with /")
	}
	return nil
}

// Address returns the host:port the server listens on.
func (c *Config) Address() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// ReadTimeout returns server.readTimeout, or zero when it does not parse.
func (c *Config) ReadTimeout() time.Duration {
	d, _ := time.ParseDuration(c.Server.ReadTimeout)
	return d
}

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Logger returns a logger writing to w as log.format and log.level say.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: levels[c.Log.Level]}
	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// StyleSheet returns the URL of the MDC stylesheet.
func (c *Config) StyleSheet() string {
	return c.assetURL("material-components-web.min.css")
}

// Script returns the URL of the MDC script.
func (c *Config) Script() string {
	return c.assetURL("material-components-web.min.js")
}

func (c *Config) assetURL(file string) string {
	return strings.TrimSuffix(c.Assets.CDN, "/") + "/material-components-web@" + c.Assets.MDCVersion + "/dist/" + file
}
