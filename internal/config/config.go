package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Data    DataConfig
	Session SessionConfig
	Keys    APIKeys
	Ai      AIConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	AnalyticsLogPath   string
	AnalyticsTopic     string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
}

type DataConfig struct {
	CareerDataDir string
}

type SessionConfig struct {
	Store          string // "memory" or "redis"
	TimeoutMinutes int
	SweepMinutes   int
}

type APIKeys struct {
	OpenAI    string
	JWTSecret string
}

type AIConfig struct {
	RewriteEnabled        bool
	LLMProvider           string // "ollama", "openai"
	LLMModel              string // e.g. "llama3", "gpt-4o-mini"
	OllamaBaseURL         string
	RewriteTimeoutSeconds int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			AnalyticsLogPath:   getEnv("ANALYTICS_LOG_PATH", "logs/analytics.log"),
			AnalyticsTopic:     getEnv("ANALYTICS_TOPIC_NAME", "GUIDANCE_ANALYTICS"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", ""),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Data: DataConfig{
			CareerDataDir: getEnv("CAREER_DATA_DIR", "data/career-data"),
		},
		Session: SessionConfig{
			Store:          getEnv("SESSION_STORE", "memory"),
			TimeoutMinutes: getEnvAsInt("SESSION_TIMEOUT_MINUTES", 30),
			SweepMinutes:   getEnvAsInt("SESSION_SWEEP_MINUTES", 10),
		},
		Keys: APIKeys{
			OpenAI:    getEnv("OPENAI_API_KEY", ""),
			JWTSecret: getEnv("JWT_SECRET", ""),
		},
		Ai: AIConfig{
			RewriteEnabled:        getEnvAsBool("REWRITE_ENABLED", true),
			LLMProvider:           getEnv("LLM_PROVIDER", "openai"),
			LLMModel:              getEnv("LLM_MODEL", "gpt-4o-mini"),
			OllamaBaseURL:         getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			RewriteTimeoutSeconds: getEnvAsInt("REWRITE_TIMEOUT_SECONDS", 10),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
