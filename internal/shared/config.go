package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string
	MySQLDSN    string
	RedisAddr   string
	RedisDB     int
	RedisPass   string

	AIProvider  string // gemini|openai
	GeminiKey   string
	GeminiModel string
	OpenAIKey   string
	OpenAIModel string
	AITimeout   time.Duration

	WeatherBase string
	WeatherKey  string
	FXBase      string
	FXKey       string
	PexelsBase  string
	PexelsKey   string

	OutboundRPS int
	CacheTTL    time.Duration
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ":9100"),
		MySQLDSN:    env("MYSQL_DSN", "root:root@tcp(localhost:3306)/trips?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:   env("REDIS_ADDR", "localhost:6379"),
		RedisPass:   env("REDIS_PASSWORD", ""),
		RedisDB:     atoi("REDIS_DB", 0),

		AIProvider:  env("AI_PROVIDER", "gemini"),
		GeminiKey:   env("GEMINI_API_KEY", ""),
		GeminiModel: env("GEMINI_MODEL", "gemini-1.5-flash"),
		OpenAIKey:   env("OPENAI_API_KEY", ""),
		OpenAIModel: env("OPENAI_MODEL", ""),
		AITimeout:   time.Duration(atoi("AI_TIMEOUT_MS", 10000)) * time.Millisecond,

		WeatherBase: env("OPENWEATHER_BASE_URL", ""),
		WeatherKey:  env("OPENWEATHER_API_KEY", ""),
		FXBase:      env("EXCHANGE_RATE_BASE_URL", ""),
		FXKey:       env("EXCHANGE_RATE_API_KEY", ""),
		PexelsBase:  env("PEXELS_BASE_URL", ""),
		PexelsKey:   env("PEXELS_API_KEY", ""),

		OutboundRPS: atoi("OUTBOUND_RPS", 5),
		CacheTTL:    time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
	}
	if c.GeminiKey == "" && c.OpenAIKey == "" {
		log.Warn().Msg("no AI provider key set; itineraries will use fallback content only")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
