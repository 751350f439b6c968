// Package config loads trex settings from a YAML file or command line flags.
// Credentials never live in the YAML file, they are read from the environment,
// optionally seeded from a .env file.
package config

import (
	"flag"
	"io"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/vadiminshakov/trex/internal/domain"
)

const (
	ModeLive     = "live"
	ModeSimulate = "simulate"

	EnvAPIKey    = "BITTREX_API_KEY"
	EnvAPISecret = "BITTREX_API_SECRET"

	DefaultBaseURL     = "https://bittrex.com/api/v1.1/"
	DefaultEnvFile     = ".env"
	DefaultJournalDir  = "./wal/fills"
	defaultHTTPTimeout = 30 * time.Second
	defaultLogEnv      = "production"
)

// Retry is the transport retry policy of the exchange client.
type Retry struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Multiplier      float64
}

type Config struct {
	Mode        string
	BaseURL     string
	HTTPTimeout time.Duration
	Retry       Retry
	JournalDir  string
	LogEnv      string
	// Markets are used by commands that take no market argument, e.g. summary.
	Markets []string

	APIKey    string
	APISecret string
}

// ConfigTmp is the on-disk YAML layout.
type ConfigTmp struct {
	Mode                 string        `yaml:"mode"`
	BaseURL              string        `yaml:"base_url,omitempty"`
	HTTPTimeout          time.Duration `yaml:"http_timeout,omitempty"`
	MaxRetries           *int          `yaml:"max_retries,omitempty"`
	RetryInitialInterval time.Duration `yaml:"retry_initial_interval,omitempty"`
	RetryMaxInterval     time.Duration `yaml:"retry_max_interval,omitempty"`
	RetryMultiplier      float64       `yaml:"retry_multiplier,omitempty"`
	JournalDir           string        `yaml:"journal_dir,omitempty"`
	LogEnv               string        `yaml:"log_env,omitempty"`
	Markets              []string      `yaml:"markets,omitempty"`
}

// Default returns a live configuration with default transport settings.
func Default() Config {
	return Config{
		Mode:        ModeLive,
		BaseURL:     DefaultBaseURL,
		HTTPTimeout: defaultHTTPTimeout,
		Retry: Retry{
			MaxRetries:      3,
			InitialInterval: 500 * time.Millisecond,
			MaxInterval:     10 * time.Second,
			Multiplier:      2,
		},
		JournalDir: DefaultJournalDir,
		LogEnv:     defaultLogEnv,
	}
}

// Get parses global flags from args and returns the config together with the
// remaining arguments. If --config is given the YAML file wins over flags.
func Get(args []string) (Config, []string, error) {
	def := Default()

	fs := flag.NewFlagSet("trex", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	configPath := fs.String("config", "", "path to yaml config")
	envFile := fs.String("env", DefaultEnvFile, "path to .env file with credentials")
	mode := fs.String("mode", def.Mode, "live or simulate")
	baseURL := fs.String("baseurl", def.BaseURL, "exchange API root")
	timeout := fs.Duration("timeout", def.HTTPTimeout, "http timeout")
	retries := fs.Int("retries", def.Retry.MaxRetries, "max transport retries")
	journalDir := fs.String("journal", def.JournalDir, "simulated fills journal dir")
	logEnv := fs.String("log", def.LogEnv, "log env: production, development or nop")
	markets := fs.String("markets", "", "comma separated markets, example: BTC-LTC,BTC-ETH")

	if err := fs.Parse(args); err != nil {
		return Config{}, nil, errors.Wrap(err, "parse flags")
	}

	var cfg Config
	if *configPath != "" {
		c, err := getYaml(*configPath)
		if err != nil {
			return Config{}, nil, err
		}
		cfg = c
	} else {
		cfg = def
		cfg.Mode = *mode
		cfg.BaseURL = *baseURL
		cfg.HTTPTimeout = *timeout
		cfg.Retry.MaxRetries = *retries
		cfg.JournalDir = *journalDir
		cfg.LogEnv = *logEnv
		cfg.Markets = splitMarkets(*markets)
	}

	if err := loadEnv(*envFile); err != nil {
		return Config{}, nil, err
	}
	cfg.APIKey = os.Getenv(EnvAPIKey)
	cfg.APISecret = os.Getenv(EnvAPISecret)

	if err := cfg.Validate(); err != nil {
		return Config{}, nil, err
	}

	return cfg, fs.Args(), nil
}

// HasCredentials reports whether both the key and the secret are set.
func (c Config) HasCredentials() bool {
	return c.APIKey != "" && c.APISecret != ""
}

// Validate checks the config for values the client cannot work with.
func (c Config) Validate() error {
	if c.Mode != ModeLive && c.Mode != ModeSimulate {
		return errors.Wrapf(ErrInvalidMode, "got %q", c.Mode)
	}
	if !strings.HasSuffix(c.BaseURL, "/") {
		return errors.Wrapf(ErrInvalidBaseURL, "got %q", c.BaseURL)
	}
	if c.HTTPTimeout <= 0 {
		return errors.Wrapf(ErrInvalidTimeout, "got %s", c.HTTPTimeout)
	}
	if c.Retry.MaxRetries < 0 {
		return errors.Wrapf(ErrInvalidRetry, "max retries %d", c.Retry.MaxRetries)
	}
	if c.Retry.InitialInterval <= 0 || c.Retry.MaxInterval < c.Retry.InitialInterval {
		return errors.Wrapf(ErrInvalidRetry, "intervals %s..%s", c.Retry.InitialInterval, c.Retry.MaxInterval)
	}
	if c.Retry.Multiplier < 1 {
		return errors.Wrapf(ErrInvalidRetry, "multiplier %v", c.Retry.Multiplier)
	}
	switch c.LogEnv {
	case "production", "development", "nop":
	default:
		return errors.Wrapf(ErrInvalidLogEnv, "got %q", c.LogEnv)
	}
	for _, m := range c.Markets {
		if _, err := domain.ParsePair(m); err != nil {
			return err
		}
	}

	return nil
}

func getYaml(path string) (Config, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "read config")
	}

	var tmp ConfigTmp
	if err := yaml.Unmarshal(f, &tmp); err != nil {
		return Config{}, errors.Wrap(err, "parse yaml config")
	}

	return tmp.toConfig(), nil
}

func (t ConfigTmp) toConfig() Config {
	cfg := Default()
	if t.Mode != "" {
		cfg.Mode = t.Mode
	}
	if t.BaseURL != "" {
		cfg.BaseURL = t.BaseURL
	}
	if t.HTTPTimeout != 0 {
		cfg.HTTPTimeout = t.HTTPTimeout
	}
	if t.MaxRetries != nil {
		cfg.Retry.MaxRetries = *t.MaxRetries
	}
	if t.RetryInitialInterval != 0 {
		cfg.Retry.InitialInterval = t.RetryInitialInterval
	}
	if t.RetryMaxInterval != 0 {
		cfg.Retry.MaxInterval = t.RetryMaxInterval
	}
	if t.RetryMultiplier != 0 {
		cfg.Retry.Multiplier = t.RetryMultiplier
	}
	if t.JournalDir != "" {
		cfg.JournalDir = t.JournalDir
	}
	if t.LogEnv != "" {
		cfg.LogEnv = t.LogEnv
	}
	cfg.Markets = t.Markets

	return cfg
}

// loadEnv seeds the process environment from path. Variables already set win.
// A missing file is not an error.
func loadEnv(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return errors.Wrapf(err, "load %s", path)
	}

	return nil
}

func splitMarkets(s string) []string {
	var out []string
	for _, m := range strings.Split(s, ",") {
		if m = strings.TrimSpace(m); m != "" {
			out = append(out, m)
		}
	}

	return out
}
