package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// Every field can be set from an optional YAML file and overridden by
// CORRECTHORSE_* environment variables; unset fields take their env-default.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"CORRECTHORSE_ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel is the minimum level written to stderr
	LogLevel string `env:"CORRECTHORSE_LOG_LEVEL" env-default:"warn" yaml:"logLevel"`
	// Seed makes generation reproducible when non-zero
	Seed uint64 `env:"CORRECTHORSE_SEED" env-default:"0" yaml:"seed"`

	// Wordlist controls where word lists are looked up
	Wordlist struct {
		// Dir is the search directory for bare list names
		Dir string `env:"CORRECTHORSE_WORDLIST_DIR" env-default:"/usr/share/correcthorse" yaml:"dir"`
		// DisableBuiltin turns off the fallback to the lists compiled into the binary
		DisableBuiltin bool `env:"CORRECTHORSE_WORDLIST_DISABLE_BUILTIN" env-default:"false" yaml:"disableBuiltin"`
	} `yaml:"wordlist"`

	// Defaults are used when the matching command line flag is not given
	Defaults struct {
		// Chars is the minimum number of characters
		Chars int `env:"CORRECTHORSE_CHARS" env-default:"12" yaml:"chars"`
		// Words is the minimum number of words
		Words int `env:"CORRECTHORSE_WORDS" env-default:"4" yaml:"words"`
		// Lists are the word lists to draw from
		Lists []string `env:"CORRECTHORSE_LISTS" env-default:"english" env-separator:"," yaml:"lists"`
		// Sep is placed between words
		Sep string `env:"CORRECTHORSE_SEP" yaml:"sep"`
		// CamelCase capitalizes every word
		CamelCase bool `env:"CORRECTHORSE_CAMELCASE" env-default:"false" yaml:"camelCase"`
	} `yaml:"defaults"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"CORRECTHORSE_HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"CORRECTHORSE_HTTP_READ_TIMEOUT" env-default:"30s" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"CORRECTHORSE_HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"` //nolint: lll
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"CORRECTHORSE_HTTP_WRITE_TIMEOUT" env-default:"30s" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"CORRECTHORSE_HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"CORRECTHORSE_HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"CORRECTHORSE_HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"CORRECTHORSE_HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// Pprof exposes the profiling endpoints under /debug/pprof/
		Pprof bool `env:"CORRECTHORSE_HTTP_PPROF" env-default:"false" yaml:"pprof"`
		// MaxWords caps the minimum number of words a single request may ask for
		MaxWords int `env:"CORRECTHORSE_HTTP_MAX_WORDS" env-default:"64" yaml:"maxWords"`
		// MaxChars caps the minimum number of characters a single request may ask for
		MaxChars int `env:"CORRECTHORSE_HTTP_MAX_CHARS" env-default:"512" yaml:"maxChars"`
		// MaxCount caps the number of passphrases a single request may ask for
		MaxCount int `env:"CORRECTHORSE_HTTP_MAX_COUNT" env-default:"100" yaml:"maxCount"`
	} `yaml:"http"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"CORRECTHORSE_GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config
// struct. An empty path reads the environment only.
func Load(configPath string) (*Config, error) {
	var cfg Config

	var err error
	if configPath == "" {
		err = cleanenv.ReadEnv(&cfg)
	} else {
		err = cleanenv.ReadConfig(configPath, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
