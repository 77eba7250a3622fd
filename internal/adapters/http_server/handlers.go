// internal/adapters/http_server/handlers.go
package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"trip_planner/internal/app"
	"trip_planner/internal/domain"
	"trip_planner/internal/export"
	"trip_planner/internal/planner"
)

type Handlers struct {
	Gen    *app.GeneratorService
	Enrich *app.EnrichmentService
	Saved  *app.SavedItineraryService
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Post("/v1/itineraries", h.generate)
	s.mux.Post("/v1/itineraries/{format}", h.exportItinerary)

	s.mux.Post("/v1/saved-itineraries", h.saveItinerary)
	s.mux.Get("/v1/saved-itineraries", h.listSaved)
	s.mux.Get("/v1/saved-itineraries/{id}", h.getSaved)

	s.mux.Get("/v1/weather/{city}", h.weather)
	s.mux.Get("/v1/currency/rates/{base}", h.rates)
	s.mux.Get("/v1/currency/convert", h.convert)
	s.mux.Get("/v1/currencies", h.currencies)
	s.mux.Get("/v1/geocode/{place}", h.geocode)
	s.mux.Get("/v1/images/{query}", h.image)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// ---- generation ----

type generateBody struct {
	Destination string    `json:"destination"`
	Days        int       `json:"days"`
	Interests   *[]string `json:"interests"`
	Budget      string    `json:"budget"`
}

func (h *Handlers) decodeRequest(w http.ResponseWriter, r *http.Request) (domain.GenerateRequest, bool) {
	var body generateBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "request body must be JSON")
		return domain.GenerateRequest{}, false
	}
	if body.Interests == nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "interests is required (an empty list is fine)")
		return domain.GenerateRequest{}, false
	}
	tier, ok := domain.ParseTier(body.Budget)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid Budget", "budget must be one of budget, mid, luxury, premium")
		return domain.GenerateRequest{}, false
	}
	req := domain.GenerateRequest{
		Destination: body.Destination,
		Duration:    body.Days,
		Budget:      tier,
		Interests:   *body.Interests,
	}
	if err := req.Validate(); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Request", err.Error())
		return domain.GenerateRequest{}, false
	}
	return req, true
}

func (h *Handlers) generate(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	it, err := h.Gen.Generate(r.Context(), req)
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Generation Failed", err.Error())
		return
	}
	h.Enrich.Enrich(r.Context(), &it)
	writeJSON(w, http.StatusOK, it)
}

// ---- export ----

func (h *Handlers) exportItinerary(w http.ResponseWriter, r *http.Request) {
	var it domain.Itinerary
	if err := json.NewDecoder(r.Body).Decode(&it); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "request body must be an itinerary document")
		return
	}
	if it.Destination == "" || len(it.Days) == 0 {
		writeProblem(w, http.StatusBadRequest, "Invalid Itinerary", "destination and days are required")
		return
	}

	switch chi.URLParam(r, "format") {
	case "pdf":
		data, err := export.PDF(it, "")
		if err != nil {
			writeProblem(w, http.StatusInternalServerError, "Export Failed", err.Error())
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="itinerary.pdf"`)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)

	case "calendar", "ics":
		data, count, err := export.Calendar(it, time.Now(), "")
		if err != nil {
			writeProblem(w, http.StatusInternalServerError, "Export Failed", err.Error())
			return
		}
		w.Header().Set("Content-Type", "text/calendar")
		w.Header().Set("Content-Disposition", `attachment; filename="itinerary.ics"`)
		w.Header().Set("X-Event-Count", strconv.Itoa(count))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)

	case "text":
		data, err := export.Text(it, "")
		if err != nil {
			writeProblem(w, http.StatusInternalServerError, "Export Failed", err.Error())
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)

	case "json":
		data, err := export.JSON(it, time.Now(), "")
		if err != nil {
			writeProblem(w, http.StatusInternalServerError, "Export Failed", err.Error())
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)

	default:
		writeProblem(w, http.StatusBadRequest, "Unknown Format", "format must be one of pdf, calendar, text, json")
	}
}

// ---- saved itineraries ----

type saveBody struct {
	Owner     string           `json:"owner"`
	Itinerary domain.Itinerary `json:"itinerary"`
}

func (h *Handlers) saveItinerary(w http.ResponseWriter, r *http.Request) {
	var body saveBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "request body must be JSON")
		return
	}
	if body.Owner == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "owner is required")
		return
	}
	if body.Itinerary.Destination == "" || len(body.Itinerary.Days) == 0 {
		writeProblem(w, http.StatusBadRequest, "Invalid Itinerary", "destination and days are required")
		return
	}

	si, err := h.Saved.Save(r.Context(), body.Owner, body.Itinerary)
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Save Failed", err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"id": si.ID, "createdAt": si.CreatedAt})
}

func (h *Handlers) getSaved(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	si, err := h.Saved.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeProblem(w, http.StatusNotFound, "Not Found", "itinerary not found")
			return
		}
		writeProblem(w, http.StatusInternalServerError, "Lookup Failed", err.Error())
		return
	}

	etag, body := calcETagAndBody(si.Document)
	// If client already has this version, short-circuit.
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag) // include ETag on 304
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write saved itinerary body")
	}
}

func (h *Handlers) listSaved(w http.ResponseWriter, r *http.Request) {
	owner := r.URL.Query().Get("owner")
	if owner == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid Query", "owner query parameter is required")
		return
	}
	list, err := h.Saved.ListByOwner(r.Context(), owner)
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Lookup Failed", err.Error())
		return
	}

	type entry struct {
		ID          string    `json:"id"`
		Destination string    `json:"destination"`
		Duration    int       `json:"duration"`
		Budget      string    `json:"budget"`
		CreatedAt   time.Time `json:"createdAt"`
	}
	out := make([]entry, 0, len(list))
	for _, si := range list {
		out = append(out, entry{
			ID:          si.ID,
			Destination: si.Document.Destination,
			Duration:    si.Document.Duration,
			Budget:      string(si.Document.Budget),
			CreatedAt:   si.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": out})
}

// ---- enrichment passthroughs ----

func (h *Handlers) weather(w http.ResponseWriter, r *http.Request) {
	city := chi.URLParam(r, "city")
	wr, err := h.Enrich.CurrentWeather(r.Context(), city)
	if err != nil {
		status, title := mapLookupErr(err)
		writeProblem(w, status, title, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, wr)
}

func (h *Handlers) rates(w http.ResponseWriter, r *http.Request) {
	base := chi.URLParam(r, "base")
	t, err := h.Enrich.ExchangeRates(r.Context(), base)
	if err != nil {
		status, title := mapLookupErr(err)
		writeProblem(w, status, title, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"baseCurrency": t.Base,
		"rates":        t.Rates,
		"lastUpdated":  t.UpdatedAt,
	})
}

func (h *Handlers) convert(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, to := q.Get("from"), q.Get("to")
	amount, err := strconv.ParseFloat(q.Get("amount"), 64)
	if from == "" || to == "" || err != nil || amount < 0 {
		writeProblem(w, http.StatusBadRequest, "Invalid Query", "from, to and a non-negative amount are required")
		return
	}

	t, err := h.Enrich.ExchangeRates(r.Context(), from)
	if err != nil {
		status, title := mapLookupErr(err)
		writeProblem(w, status, title, err.Error())
		return
	}
	converted, err := t.Convert(amount, to)
	if err != nil {
		writeProblem(w, http.StatusNotFound, "Unknown Currency", err.Error())
		return
	}
	rate := 1.0
	if to != t.Base {
		rate = t.Rates[to]
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"originalAmount":  amount,
		"convertedAmount": math.Round(converted*100) / 100,
		"fromCurrency":    from,
		"toCurrency":      to,
		"exchangeRate":    rate,
	})
}

func (h *Handlers) currencies(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"currencies": planner.PopularCurrencies()})
}

func (h *Handlers) geocode(w http.ResponseWriter, r *http.Request) {
	place := chi.URLParam(r, "place")
	writeJSON(w, http.StatusOK, h.Enrich.Geocode(place))
}

func (h *Handlers) image(w http.ResponseWriter, r *http.Request) {
	query := chi.URLParam(r, "query")
	writeJSON(w, http.StatusOK, h.Enrich.SearchImage(r.Context(), query))
}

func mapLookupErr(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "Not Found"
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests, "Rate Limited"
	case errors.Is(err, domain.ErrUnavailable):
		return http.StatusServiceUnavailable, "Service Unavailable"
	}
	return http.StatusInternalServerError, "Lookup Failed"
}
