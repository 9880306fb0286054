package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            Port,
			ErrorDetail:     true,
			ShutdownTimeout: 30 * time.Second,
		},
		Log: LogConfig{
			Level:  LogLevelInfo,
			Format: LogFormatJSON,
		},
		Fetch: FetchConfig{
			Timeout:      30 * time.Second,
			MaxAttempts:  1,
			MaxBodyBytes: 5 * 1024 * 1024,
			UserAgent:    "ArticleParser/1.0",
		},
		Feed: FeedConfig{
			DescriptionMaxLen: 210,
		},
	}
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}

	if cfg.Server.Port != 277 {
		t.Errorf("Port = %v, want 277", cfg.Server.Port)
	}
	if !cfg.Server.ErrorDetail {
		t.Error("ErrorDetail should default to true")
	}
	if cfg.Server.MaxInFlight != 0 {
		t.Errorf("MaxInFlight = %v, want 0", cfg.Server.MaxInFlight)
	}
	if cfg.Log.Level != LogLevelInfo {
		t.Errorf("Log.Level = %v, want %v", cfg.Log.Level, LogLevelInfo)
	}
	if cfg.Fetch.Timeout != 30*time.Second {
		t.Errorf("Fetch.Timeout = %v, want 30s", cfg.Fetch.Timeout)
	}
	if cfg.Fetch.MaxAttempts != 1 {
		t.Errorf("Fetch.MaxAttempts = %v, want 1", cfg.Fetch.MaxAttempts)
	}
	if cfg.Feed.DescriptionMaxLen != 210 {
		t.Errorf("Feed.DescriptionMaxLen = %v, want 210", cfg.Feed.DescriptionMaxLen)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default configuration should be valid, got %v", err)
	}
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	tests := []struct {
		name   string
		env    map[string]string
		assert func(t *testing.T, cfg *Config)
	}{
		{
			name: "error detail disabled",
			env:  map[string]string{"SERVER_ERROR_DETAIL": "false"},
			assert: func(t *testing.T, cfg *Config) {
				if cfg.Server.ErrorDetail {
					t.Error("ErrorDetail = true, want false")
				}
			},
		},
		{
			name: "in-flight cap",
			env:  map[string]string{"SERVER_MAX_IN_FLIGHT": "16"},
			assert: func(t *testing.T, cfg *Config) {
				if cfg.Server.MaxInFlight != 16 {
					t.Errorf("MaxInFlight = %v, want 16", cfg.Server.MaxInFlight)
				}
			},
		},
		{
			name: "fetch settings",
			env: map[string]string{
				"FETCH_TIMEOUT":      "5s",
				"FETCH_MAX_ATTEMPTS": "3",
				"FETCH_USER_AGENT":   "custom-agent",
			},
			assert: func(t *testing.T, cfg *Config) {
				if cfg.Fetch.Timeout != 5*time.Second {
					t.Errorf("Fetch.Timeout = %v, want 5s", cfg.Fetch.Timeout)
				}
				if cfg.Fetch.MaxAttempts != 3 {
					t.Errorf("Fetch.MaxAttempts = %v, want 3", cfg.Fetch.MaxAttempts)
				}
				if cfg.Fetch.UserAgent != "custom-agent" {
					t.Errorf("Fetch.UserAgent = %v, want custom-agent", cfg.Fetch.UserAgent)
				}
			},
		},
		{
			name: "logging and markdown",
			env: map[string]string{
				"LOG_LEVEL":       "debug",
				"LOG_FORMAT":      "text",
				"READER_MARKDOWN": "true",
			},
			assert: func(t *testing.T, cfg *Config) {
				if cfg.Log.Level != LogLevelDebug || cfg.Log.Format != LogFormatText {
					t.Errorf("Log = %+v, want debug/text", cfg.Log)
				}
				if !cfg.Reader.Markdown {
					t.Error("Reader.Markdown = false, want true")
				}
			},
		},
		{
			name: "port is not configurable",
			env:  map[string]string{"PORT": "8080", "SERVER_PORT": "8080"},
			assert: func(t *testing.T, cfg *Config) {
				if cfg.Server.Port != Port {
					t.Errorf("Port = %v, want %v", cfg.Server.Port, Port)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := LoadFromEnv()
			if err != nil {
				t.Fatalf("LoadFromEnv() error = %v", err)
			}
			tt.assert(t, cfg)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(cfg *Config) {}},
		{
			name:    "unknown log level",
			mutate:  func(cfg *Config) { cfg.Log.Level = "verbose" },
			wantErr: "Level",
		},
		{
			name:    "unknown log format",
			mutate:  func(cfg *Config) { cfg.Log.Format = "xml" },
			wantErr: "Format",
		},
		{
			name:    "negative in-flight cap",
			mutate:  func(cfg *Config) { cfg.Server.MaxInFlight = -1 },
			wantErr: "MaxInFlight",
		},
		{
			name:    "zero fetch timeout",
			mutate:  func(cfg *Config) { cfg.Fetch.Timeout = 0 },
			wantErr: "Timeout",
		},
		{
			name:    "zero attempts",
			mutate:  func(cfg *Config) { cfg.Fetch.MaxAttempts = 0 },
			wantErr: "MaxAttempts",
		},
		{
			name:    "tiny body limit",
			mutate:  func(cfg *Config) { cfg.Fetch.MaxBodyBytes = 10 },
			wantErr: "MaxBodyBytes",
		},
		{
			name:    "negative description length",
			mutate:  func(cfg *Config) { cfg.Feed.DescriptionMaxLen = -5 },
			wantErr: "DescriptionMaxLen",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}

			if err == nil {
				t.Fatalf("Validate() expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}
