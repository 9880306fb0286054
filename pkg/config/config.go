// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Loads defaults and overrides through viper and validates them with ozzo-validation

package config

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/viper"
)

// Port is the fixed listening port of the extraction endpoint. It is not
// read from the environment or flags.
const Port = 277

// Log levels accepted by LOG_LEVEL
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// Log formats accepted by LOG_FORMAT
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig `mapstructure:"server"`

	// Log contains logger configuration
	Log LogConfig `mapstructure:"log"`

	// Fetch contains outbound fetch configuration shared by both capabilities
	Fetch FetchConfig `mapstructure:"fetch"`

	// Reader contains article extraction options
	Reader ReaderConfig `mapstructure:"reader"`

	// Feed contains feed reading options
	Feed FeedConfig `mapstructure:"feed"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is always the Port constant
	Port int `mapstructure:"-"`

	// ErrorDetail appends ": <message>" to the ERROR body of failed requests
	ErrorDetail bool `mapstructure:"error_detail"`

	// MaxInFlight caps concurrent extractions; 0 means unbounded
	MaxInFlight int `mapstructure:"max_in_flight"`

	// ShutdownTimeout bounds graceful shutdown
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string `mapstructure:"level"`

	// Format is json or text
	Format string `mapstructure:"format"`

	// File, when set, also writes logs to a rotating file
	File string `mapstructure:"file"`
}

// FetchConfig holds outbound HTTP configuration
type FetchConfig struct {
	// Timeout bounds a single fetch including redirects and body read
	Timeout time.Duration `mapstructure:"timeout"`

	// MaxAttempts is the number of tries for transport errors and 5xx answers
	MaxAttempts int `mapstructure:"max_attempts"`

	// MaxBodyBytes caps how much of a fetched document is read
	MaxBodyBytes int64 `mapstructure:"max_body_bytes"`

	// UserAgent is sent with every fetch
	UserAgent string `mapstructure:"user_agent"`
}

// ReaderConfig holds article extraction options
type ReaderConfig struct {
	// Markdown adds a markdown rendering of the article content
	Markdown bool `mapstructure:"markdown"`
}

// FeedConfig holds feed reading options
type FeedConfig struct {
	// DescriptionMaxLen truncates entry descriptions; 0 disables truncation
	DescriptionMaxLen int `mapstructure:"description_max_len"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.error_detail", true)
	v.SetDefault("server.max_in_flight", 0)
	v.SetDefault("server.shutdown_timeout", 30*time.Second)

	v.SetDefault("log.level", LogLevelInfo)
	v.SetDefault("log.format", LogFormatJSON)
	v.SetDefault("log.file", "")

	v.SetDefault("fetch.timeout", 30*time.Second)
	v.SetDefault("fetch.max_attempts", 1)
	v.SetDefault("fetch.max_body_bytes", 5*1024*1024)
	v.SetDefault("fetch.user_agent", "Mozilla/5.0 (compatible; ArticleParser/1.0)")

	v.SetDefault("reader.markdown", false)

	v.SetDefault("feed.description_max_len", 210)
}

// LoadFromEnv loads configuration from environment variables.
// Nested keys map to upper-case names with underscores, e.g. fetch.timeout
// is read from FETCH_TIMEOUT.
func LoadFromEnv() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	cfg.Server.Port = Port

	return &cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Server),
		validation.Field(&c.Log),
		validation.Field(&c.Fetch),
		validation.Field(&c.Feed),
	)
}

// Validate checks the server settings
func (s ServerConfig) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Port, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&s.MaxInFlight, validation.Min(0)),
		validation.Field(&s.ShutdownTimeout, validation.Required),
	)
}

// Validate checks the logger settings
func (l LogConfig) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Level,
			validation.Required,
			validation.In(LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError),
		),
		validation.Field(&l.Format,
			validation.Required,
			validation.In(LogFormatJSON, LogFormatText),
		),
	)
}

// Validate checks the fetch settings
func (f FetchConfig) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Timeout, validation.Required),
		validation.Field(&f.MaxAttempts, validation.Required, validation.Min(1), validation.Max(10)),
		validation.Field(&f.MaxBodyBytes, validation.Required, validation.Min(int64(1024))),
		validation.Field(&f.UserAgent, validation.Required),
	)
}

// Validate checks the feed settings
func (f FeedConfig) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.DescriptionMaxLen, validation.Min(0)),
	)
}
