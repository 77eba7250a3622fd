package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"trip_planner/internal/adapters/observability"
	"trip_planner/internal/domain"
	"trip_planner/internal/planner"
)

// GeneratorService runs the generation pipeline up to assembly:
// prompt -> AI call -> parse, with the fallback tables covering every
// AI-path failure. Enrichment is a separate service.
type GeneratorService struct {
	gen       domain.TextGenerator // nil when no provider is configured
	aiTimeout time.Duration
}

func NewGeneratorService(gen domain.TextGenerator, aiTimeout time.Duration) *GeneratorService {
	if aiTimeout <= 0 {
		aiTimeout = 10 * time.Second
	}
	return &GeneratorService{gen: gen, aiTimeout: aiTimeout}
}

func (s *GeneratorService) Generate(ctx context.Context, req domain.GenerateRequest) (domain.Itinerary, error) {
	if err := req.Validate(); err != nil {
		return domain.Itinerary{}, err
	}

	draft, src := s.draft(ctx, req)
	it, err := planner.Assemble(req, draft, src, time.Now())
	if err != nil {
		return domain.Itinerary{}, err
	}
	observability.ObserveGeneration(string(src))
	return it, nil
}

// draft tries the AI path and degrades to the fallback tables on any
// timeout, transport, parse or validation failure. Those failures are
// logged but never surfaced.
func (s *GeneratorService) draft(ctx context.Context, req domain.GenerateRequest) (planner.Draft, domain.Provenance) {
	if s.gen == nil {
		return planner.FallbackDraft(req), domain.SourceFallback
	}

	prompt := planner.BuildPrompt(req)

	// Timeout enforced here, not left to the provider default.
	cctx, cancel := context.WithTimeout(ctx, s.aiTimeout)
	defer cancel()

	raw, err := s.gen.GenerateText(cctx, prompt)
	if err != nil {
		log.Warn().Err(err).Str("destination", req.Destination).Msg("ai generation failed, using fallback")
		return planner.FallbackDraft(req), domain.SourceFallback
	}

	d, err := planner.ParseResponse(raw, req.Duration)
	if err != nil {
		log.Warn().Err(err).Str("destination", req.Destination).Msg("ai response unusable, using fallback")
		return planner.FallbackDraft(req), domain.SourceFallback
	}
	return d, domain.SourceAI
}
