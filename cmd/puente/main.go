// Command puente serves translated article renderings.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/ZaguanLabs/puente"
	"github.com/ZaguanLabs/puente/cache"
	"github.com/ZaguanLabs/puente/fetch"
	"github.com/ZaguanLabs/puente/internal/config"
	"github.com/ZaguanLabs/puente/internal/httpapi"
	"github.com/ZaguanLabs/puente/internal/logging"
	"github.com/ZaguanLabs/puente/provider"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Best effort: absence of a .env file is fine outside local runs.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		return err
	}

	var store cache.Store
	if cfg.RedisURL != "" {
		redisStore, err := cache.NewRedisStore(cache.RedisConfig{URL: cfg.RedisURL})
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer redisStore.Close()
		store = redisStore
		logger.Info().Msg("using redis translation store")
	} else {
		store = cache.NewMemoryStore()
		logger.Info().Msg("using in-memory translation store")
	}

	var upstream puente.Upstream = provider.NewOpenAIProvider(provider.OpenAIConfig{
		APIKey:      cfg.OpenAIAPIKey,
		Model:       cfg.OpenAIModel,
		Temperature: cfg.OpenAITemperature,
	})
	upstream = puente.NewRateLimitedUpstream(upstream, puente.RateLimitConfig{
		RequestsPerMinute: cfg.RequestsPerMinute,
	})
	retryCfg := puente.DefaultRetryConfig()
	retryCfg.MaxRetries = cfg.MaxRetries
	upstream = puente.NewRetryableUpstream(upstream, retryCfg)

	pipeline := puente.NewPipeline(upstream, store, puente.WithDirectives(puente.Directives{
		Voice:        cfg.VoiceDirective,
		TargetLocale: cfg.TargetLocale,
	}))

	fetcher := fetch.New(fetch.Options{})

	server := httpapi.NewServer(pipeline, fetcher, logger, httpapi.Options{
		Host:           cfg.Host,
		Port:           cfg.Port,
		SourceBaseURL:  cfg.SourceBaseURL,
		AllowedOrigins: cfg.CORSAllowedOriginsList(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.Start(ctx)
}
