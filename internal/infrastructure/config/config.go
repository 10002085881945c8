// Package config loads process configuration from the environment, with
// an optional .env file for local development.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config carries everything main needs to wire the process.
type Config struct {
	Addr              string
	OpenAIAPIKey      string
	OpenAIBaseURL     string
	CompletionsModel  string
	EmbeddingsModel   string
	FactsPath         string
	RedisAddr         string
	HistoryDBPath     string
	OpenWeatherAPIKey string
	AllowedOrigins    []string
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// Load reads the environment (after godotenv, which is a no-op when no
// .env file exists) and applies defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	conf := &Config{
		Addr:              ":" + getEnv("PORT", "8001"),
		OpenAIAPIKey:      getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:     getEnv("OPENAI_BASE_URL", ""),
		CompletionsModel:  getEnv("COMPLETIONS_MODEL", "gpt-4.1-mini"),
		EmbeddingsModel:   getEnv("EMBEDDINGS_MODEL", "text-embedding-3-small"),
		FactsPath:         getEnv("FACTS_PATH", ""),
		RedisAddr:         getEnv("REDIS_ADDR", ""),
		HistoryDBPath:     getEnv("HISTORY_DB_PATH", ""),
		OpenWeatherAPIKey: getEnv("OPENWEATHER_API_KEY", ""),
		AllowedOrigins:    splitOrigins(getEnv("ALLOWED_ORIGINS", defaultOrigins)),
	}
	return conf, nil
}

// defaultOrigins mirrors the deployed front-end hosts plus local dev.
const defaultOrigins = "https://elvin-codebase.onrender.com," +
	"https://elvin-babanli.com," +
	"https://www.elvin-babanli.com," +
	"http://localhost:8000," +
	"http://127.0.0.1:8000"

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
