package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"trip_planner/internal/adapters/exchangerate"
	"trip_planner/internal/adapters/gemini"
	"trip_planner/internal/adapters/geocode"
	"trip_planner/internal/adapters/observability"
	openaiad "trip_planner/internal/adapters/openai"
	"trip_planner/internal/adapters/openweather"
	"trip_planner/internal/adapters/pexels"
	"trip_planner/internal/app"
	"trip_planner/internal/domain"
	"trip_planner/internal/export"
	"trip_planner/internal/shared"
)

// plan generates itineraries for one or more destinations and writes
// them to disk in the requested export formats.
func main() {
	var (
		destinations = flag.String("destinations", "", "comma-separated destinations (required)")
		days         = flag.Int("days", 3, "trip length in days")
		budget       = flag.String("budget", "mid", "budget tier: budget|mid|luxury|premium")
		interests    = flag.String("interests", "", "comma-separated interests")
		formats      = flag.String("formats", "json,text", "comma-separated export formats: json|text|pdf|calendar")
		outDir       = flag.String("out", ".", "output directory")
		workers      = flag.Int("workers", 3, "concurrent generations")
	)
	flag.Parse()

	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	dests := splitList(*destinations)
	if len(dests) == 0 {
		fmt.Fprintln(os.Stderr, "usage: plan -destinations Mumbai,Goa [-days N] [-budget tier] [-interests a,b] [-formats json,pdf] [-out dir]")
		os.Exit(2)
	}
	tier, ok := domain.ParseTier(*budget)
	if !ok {
		log.Fatal().Str("budget", *budget).Msg("unknown budget tier")
	}
	wanted := splitList(*formats)
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatal().Err(err).Msg("create output directory failed")
	}

	genSvc := app.NewGeneratorService(newTextGenerator(ctx, cfg), cfg.AITimeout)
	enrichSvc := app.NewEnrichmentService(
		newWeatherClient(cfg),
		exchangerate.New(cfg.FXBase, cfg.FXKey, cfg.OutboundRPS),
		geocode.New(),
		newImageSearcher(cfg),
		nil, // no cache for a one-shot CLI run
		0,
	)

	sem := semaphore.NewWeighted(int64(*workers))
	var wg sync.WaitGroup

	for _, dest := range dests {
		dest := dest

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			req := domain.GenerateRequest{
				Destination: dest,
				Duration:    *days,
				Budget:      tier,
				Interests:   splitList(*interests),
			}
			it, err := genSvc.Generate(ctx, req)
			if err != nil {
				log.Warn().Str("destination", dest).Err(err).Msg("generation failed")
				return
			}
			enrichSvc.Enrich(ctx, &it)

			if err := writeExports(it, wanted, *outDir); err != nil {
				log.Warn().Str("destination", dest).Err(err).Msg("export failed")
				return
			}
			log.Info().Str("destination", dest).Str("source", string(it.GeneratedBy)).Msg("itinerary written")
		}()
	}

	wg.Wait()
	log.Info().Msg("planning completed")
}

func writeExports(it domain.Itinerary, formats []string, dir string) error {
	slug := strings.ToLower(strings.ReplaceAll(it.Destination, " ", "-"))
	base := filepath.Join(dir, fmt.Sprintf("%s-%dd", slug, it.Duration))

	for _, f := range formats {
		var err error
		switch f {
		case "json":
			_, err = export.JSON(it, time.Now(), base+".json")
		case "text":
			_, err = export.Text(it, base+".txt")
		case "pdf":
			_, err = export.PDF(it, base+".pdf")
		case "calendar", "ics":
			_, _, err = export.Calendar(it, time.Now(), base+".ics")
		default:
			err = fmt.Errorf("unknown format %q", f)
		}
		if err != nil {
			return fmt.Errorf("export %s: %w", f, err)
		}
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

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
