package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultURLhausEndpoint  = "https://urlhaus-api.abuse.ch/v1/url/"
	DefaultURLhausUserAgent = "linkguard/1.0 (+https://github.com/Vovarama1992/linkguard)"
)

type Config struct {
	Port          string
	AllowedOrigin string
	StaticDir     string

	// OpenAI
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string
	PersonaFile   string

	// URLhaus
	URLhausEndpoint  string
	URLhausAuthKey   string
	URLhausUserAgent string
	URLhausTimeout   time.Duration
}

func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port:             getEnvDefault("PORT", "3000"),
		AllowedOrigin:    getEnvDefault("ALLOWED_ORIGIN", "*"),
		StaticDir:        getEnvDefault("STATIC_DIR", "public"),
		OpenAIAPIKey:     os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:      getEnvDefault("OPENAI_MODEL", "gpt-3.5-turbo"),
		OpenAIBaseURL:    os.Getenv("OPENAI_BASE_URL"),
		PersonaFile:      os.Getenv("PERSONA_FILE"),
		URLhausEndpoint:  getEnvDefault("URLHAUS_ENDPOINT", DefaultURLhausEndpoint),
		URLhausAuthKey:   os.Getenv("URLHAUS_AUTH_KEY"),
		URLhausUserAgent: getEnvDefault("URLHAUS_USER_AGENT", DefaultURLhausUserAgent),
		URLhausTimeout:   getEnvDurationDefault("URLHAUS_TIMEOUT", 10*time.Second),
	}

	if cfg.OpenAIAPIKey == "" {
		log.Println("warning: OPENAI_API_KEY is not set; /api/chat will fail until provided")
	}
	return cfg
}

func getEnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getEnvDurationDefault falls back to def on unparsable or non-positive values,
// so a typo can never disable the lookup timeout.
func getEnvDurationDefault(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("warning: invalid %s=%q, using %s", key, v, def)
		return def
	}
	return d
}
