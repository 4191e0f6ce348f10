package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Environment string `envconfig:"ENVIRONMENT" default:"local"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`

	Host string `envconfig:"HOST" default:"0.0.0.0"`
	Port int    `envconfig:"PORT" default:"8080"`

	OpenAIAPIKey      string  `envconfig:"OPENAI_API_KEY" required:"true"`
	OpenAIModel       string  `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
	OpenAITemperature float32 `envconfig:"OPENAI_TEMPERATURE" default:"0.3"`

	TargetLocale   string `envconfig:"TARGET_LOCALE" default:"es_ES"`
	VoiceDirective string `envconfig:"VOICE_DIRECTIVE" default:"Preserve the author's voice and register."`

	SourceBaseURL string `envconfig:"SOURCE_BASE_URL" required:"true"`

	RedisURL string `envconfig:"REDIS_URL" default:""`

	RequestsPerMinute  int    `envconfig:"UPSTREAM_RPM" default:"30"`
	MaxRetries         int    `envconfig:"UPSTREAM_MAX_RETRIES" default:"3"`
	CORSAllowedOrigins string `envconfig:"CORS_ALLOWED_ORIGINS" default:""`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.OpenAIAPIKey) == "" {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}
	if strings.TrimSpace(c.SourceBaseURL) == "" {
		return fmt.Errorf("SOURCE_BASE_URL is required")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535")
	}
	if c.RequestsPerMinute < 1 {
		return fmt.Errorf("UPSTREAM_RPM must be >= 1")
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("UPSTREAM_MAX_RETRIES must be >= 0")
	}
	return nil
}

func (c *Config) CORSAllowedOriginsList() []string {
	parts := strings.Split(c.CORSAllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin == "" {
			continue
		}
		if _, exists := seen[origin]; exists {
			continue
		}
		seen[origin] = struct{}{}
		origins = append(origins, origin)
	}
	return origins
}
