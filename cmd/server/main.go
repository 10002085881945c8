// Command server runs the chatbot HTTP API.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/elvin-babanli/personabot-go/internal/adapters/embedding"
	"github.com/elvin-babanli/personabot-go/internal/adapters/factswatch"
	"github.com/elvin-babanli/personabot-go/internal/adapters/history"
	"github.com/elvin-babanli/personabot-go/internal/adapters/llm"
	"github.com/elvin-babanli/personabot-go/internal/adapters/personafile"
	"github.com/elvin-babanli/personabot-go/internal/adapters/weather"
	"github.com/elvin-babanli/personabot-go/internal/domain/persona"
	"github.com/elvin-babanli/personabot-go/internal/domain/ports"
	"github.com/elvin-babanli/personabot-go/internal/domain/usecases"
	"github.com/elvin-babanli/personabot-go/internal/infrastructure/config"
	personahttp "github.com/elvin-babanli/personabot-go/internal/infrastructure/http"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "personabot",
	})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("loading configuration", "error", err)
	}

	facts, err := personafile.Load(cfg.FactsPath)
	if err != nil {
		logger.Fatal("loading persona facts", "error", err, "path", cfg.FactsPath)
	}

	intents, err := usecases.NewIntentMatcher(facts)
	if err != nil {
		logger.Fatal("building intent matcher", "error", err)
	}

	embedder := embedding.NewOpenAIAdapter(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.EmbeddingsModel)
	semantic, err := usecases.NewSemanticMatcher(embedder, persona.QACorpus(facts), logger)
	if err != nil {
		logger.Fatal("building semantic matcher", "error", err)
	}

	completer := llm.NewOpenAIAdapter(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.CompletionsModel)
	generator := usecases.NewGenerator(completer, facts)
	router := usecases.NewRouter(intents, semantic, generator, logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	store := newHistoryStore(ctx, cfg, logger)
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("closing history store", "error", err)
		}
	}()

	var weatherSvc ports.WeatherService
	if cfg.OpenWeatherAPIKey != "" {
		weatherSvc = weather.NewOpenWeatherAdapter(cfg.OpenWeatherAPIKey, "")
	}

	if cfg.FactsPath != "" {
		watchFacts(ctx, cfg.FactsPath, logger)
	}

	server := personahttp.NewServer(router, store, weatherSvc, logger, cfg.Addr, cfg.AllowedOrigins)
	if err := server.Start(ctx); err != nil {
		logger.Fatal("server stopped", "error", err)
	}
	logger.Info("server stopped")
}

// newHistoryStore picks the configured backend, falling back to memory.
func newHistoryStore(ctx context.Context, cfg *config.Config, logger *log.Logger) ports.HistoryStore {
	if cfg.RedisAddr != "" {
		store, err := history.NewRedisStore(ctx, cfg.RedisAddr)
		if err != nil {
			logger.Warn("redis unavailable, using in-memory history", "error", err)
		} else {
			logger.Info("session history", "backend", "redis", "addr", cfg.RedisAddr)
			return store
		}
	}
	if cfg.HistoryDBPath != "" {
		store, err := history.NewSQLiteStore(cfg.HistoryDBPath)
		if err != nil {
			logger.Warn("sqlite unavailable, using in-memory history", "error", err)
		} else {
			logger.Info("session history", "backend", "sqlite", "path", cfg.HistoryDBPath)
			return store
		}
	}
	return history.NewMemoryStore()
}

// watchFacts logs a notice when the facts file changes on disk. The loaded
// facts are immutable for the process lifetime, so a change means a restart
// is needed to pick it up.
func watchFacts(ctx context.Context, path string, logger *log.Logger) {
	watcher, err := factswatch.NewFSNotifyWatcher()
	if err != nil {
		logger.Warn("facts watcher unavailable", "error", err)
		return
	}
	events, err := watcher.Watch(ctx, path)
	if err != nil {
		logger.Warn("watching facts file", "error", err, "path", path)
		return
	}
	go func() {
		defer func() {
			_ = watcher.Stop()
		}()
		for ev := range events {
			logger.Warn("facts file changed on disk, restart to apply", "path", ev.Path, "op", ev.Operation)
		}
	}()
}
