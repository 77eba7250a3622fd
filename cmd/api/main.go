package main

import (
	"context"
	"database/sql"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"trip_planner/internal/adapters/exchangerate"
	"trip_planner/internal/adapters/gemini"
	"trip_planner/internal/adapters/geocode"
	server "trip_planner/internal/adapters/http_server"
	"trip_planner/internal/adapters/observability"
	openaiad "trip_planner/internal/adapters/openai"
	"trip_planner/internal/adapters/openweather"
	"trip_planner/internal/adapters/pexels"
	redisad "trip_planner/internal/adapters/redis"
	"trip_planner/internal/app"
	"trip_planner/internal/domain"
	"trip_planner/internal/shared"
	mysqlrepo "trip_planner/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// db
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("database connection ok")

	// deps
	repo := mysqlrepo.New(db)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	gen := newTextGenerator(ctx, cfg)
	weather := newWeatherClient(cfg)
	currency := exchangerate.New(cfg.FXBase, cfg.FXKey, cfg.OutboundRPS)
	images := newImageSearcher(cfg)

	genSvc := app.NewGeneratorService(gen, cfg.AITimeout)
	enrichSvc := app.NewEnrichmentService(weather, currency, geocode.New(), images, cache, cfg.CacheTTL)
	savedSvc := app.NewSavedItineraryService(repo, cache, cfg.CacheTTL)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Gen: genSvc, Enrich: enrichSvc, Saved: savedSvc})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}

// newTextGenerator builds the configured AI provider, or returns nil so
// the generator service serves fallback content.
func newTextGenerator(ctx context.Context, cfg shared.Config) domain.TextGenerator {
	switch cfg.AIProvider {
	case "openai":
		if cfg.OpenAIKey == "" {
			return nil
		}
		c, err := openaiad.New(cfg.OpenAIKey, cfg.OpenAIModel)
		if err != nil {
			log.Warn().Err(err).Msg("openai client init failed, falling back to canned content")
			return nil
		}
		return c
	default:
		if cfg.GeminiKey == "" {
			return nil
		}
		c, err := gemini.New(ctx, cfg.GeminiKey, cfg.GeminiModel)
		if err != nil {
			log.Warn().Err(err).Msg("gemini client init failed, falling back to canned content")
			return nil
		}
		return c
	}
}

func newWeatherClient(cfg shared.Config) domain.WeatherClient {
	if cfg.WeatherKey == "" {
		return nil
	}
	c, err := openweather.New(cfg.WeatherBase, cfg.WeatherKey, cfg.OutboundRPS)
	if err != nil {
		log.Warn().Err(err).Msg("weather client init failed")
		return nil
	}
	return c
}

func newImageSearcher(cfg shared.Config) domain.ImageSearcher {
	if cfg.PexelsKey == "" {
		return nil
	}
	c, err := pexels.New(cfg.PexelsBase, cfg.PexelsKey, cfg.OutboundRPS)
	if err != nil {
		log.Warn().Err(err).Msg("image client init failed")
		return nil
	}
	return c
}
