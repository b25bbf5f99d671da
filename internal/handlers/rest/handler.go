// Package rest exposes the catalog, comparison, and diagnosis services
// as a JSON HTTP API.
package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dexkit/pokedex-api/internal/errors"
	"github.com/dexkit/pokedex-api/internal/orchestrators/comparison"
	"github.com/dexkit/pokedex-api/internal/orchestrators/diagnosis"
	"github.com/dexkit/pokedex-api/internal/orchestrators/personality"
	"github.com/dexkit/pokedex-api/internal/orchestrators/pokedex"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	PokedexService     pokedex.Service
	ComparisonService  comparison.Service
	DiagnosisService   diagnosis.Service
	PersonalityService personality.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.PokedexService == nil {
		return errors.InvalidArgument("pokedex service is required")
	}
	if c.ComparisonService == nil {
		return errors.InvalidArgument("comparison service is required")
	}
	if c.DiagnosisService == nil {
		return errors.InvalidArgument("diagnosis service is required")
	}
	if c.PersonalityService == nil {
		return errors.InvalidArgument("personality service is required")
	}
	return nil
}

// Handler serves the JSON API
type Handler struct {
	pokedexService     pokedex.Service
	comparisonService  comparison.Service
	diagnosisService   diagnosis.Service
	personalityService personality.Service
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		pokedexService:     cfg.PokedexService,
		comparisonService:  cfg.ComparisonService,
		diagnosisService:   cfg.DiagnosisService,
		personalityService: cfg.PersonalityService,
	}, nil
}

// Routes builds the request mux
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", h.health)
	mux.HandleFunc("GET /v1/pokemon", h.listPokemon)
	mux.HandleFunc("GET /v1/pokemon/full", h.listPokemonData)
	mux.HandleFunc("GET /v1/pokemon/search", h.searchPokemon)
	mux.HandleFunc("GET /v1/pokemon/{nameOrId}", h.getPokemon)
	mux.HandleFunc("GET /v1/compare/history", h.compareHistory)
	mux.HandleFunc("GET /v1/compare/{name1}/{name2}", h.compare)
	mux.HandleFunc("GET /v1/diagnosis/questions", h.diagnosisQuestions)
	mux.HandleFunc("POST /v1/diagnosis", h.diagnose)
	mux.HandleFunc("GET /v1/personality/questions", h.personalityQuestions)
	mux.HandleFunc("POST /v1/personality", h.personalityDiagnose)

	return mux
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) listPokemon(w http.ResponseWriter, r *http.Request) {
	out, err := h.pokedexService.ListPokemon(r.Context(), &pokedex.ListPokemonInput{
		Limit: queryInt(r, "limit"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toRefList(out.Refs))
}

func (h *Handler) listPokemonData(w http.ResponseWriter, r *http.Request) {
	out, err := h.pokedexService.ListPokemonData(r.Context(), &pokedex.ListPokemonDataInput{
		Limit: queryInt(r, "limit"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toPokemonList(out.Pokemon))
}

func (h *Handler) searchPokemon(w http.ResponseWriter, r *http.Request) {
	out, err := h.pokedexService.SearchPokemon(r.Context(), &pokedex.SearchPokemonInput{
		Query: r.URL.Query().Get("q"),
		Type:  r.URL.Query().Get("type"),
		Limit: queryInt(r, "limit"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toPokemonList(out.Pokemon))
}

func (h *Handler) getPokemon(w http.ResponseWriter, r *http.Request) {
	out, err := h.pokedexService.GetPokemon(r.Context(), &pokedex.GetPokemonInput{
		NameOrID: r.PathValue("nameOrId"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toPokemonView(out.Pokemon))
}

func (h *Handler) compare(w http.ResponseWriter, r *http.Request) {
	out, err := h.comparisonService.Compare(r.Context(), &comparison.CompareInput{
		Name1: r.PathValue("name1"),
		Name2: r.PathValue("name2"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toCompareView(out))
}

func (h *Handler) compareHistory(w http.ResponseWriter, r *http.Request) {
	out, err := h.comparisonService.GetHistory(r.Context(), &comparison.GetHistoryInput{})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toHistoryView(out.Records))
}

func (h *Handler) diagnosisQuestions(w http.ResponseWriter, r *http.Request) {
	mode := diagnosis.Mode(r.URL.Query().Get("mode"))
	if mode == "" {
		mode = diagnosis.ModeSimple
	}

	out, err := h.diagnosisService.ListQuestions(r.Context(), &diagnosis.ListQuestionsInput{Mode: mode})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, out.Questions)
}

func (h *Handler) diagnose(w http.ResponseWriter, r *http.Request) {
	var req diagnoseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.InvalidArgument("malformed request body"))
		return
	}

	out, err := h.diagnosisService.Diagnose(r.Context(), &diagnosis.DiagnoseInput{
		Mode:    diagnosis.Mode(req.Mode),
		Answers: req.Answers,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, diagnoseResponse{
		Pokemon: toPokemonView(out.Pokemon),
		Score:   out.Score,
		Comment: out.Comment,
	})
}

func (h *Handler) personalityQuestions(w http.ResponseWriter, r *http.Request) {
	out, err := h.personalityService.ListQuestions(r.Context(), &personality.ListQuestionsInput{})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, out.Questions)
}

func (h *Handler) personalityDiagnose(w http.ResponseWriter, r *http.Request) {
	var req personalityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.InvalidArgument("malformed request body"))
		return
	}

	out, err := h.personalityService.Diagnose(r.Context(), &personality.DiagnoseInput{
		Answers: req.Answers,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, personalityResponse{
		Pokemon:  toPokemonView(out.Pokemon),
		TypeName: out.TypeName,
		TypeID:   out.TypeID,
		Comment:  out.Comment,
	})
}

func queryInt(r *http.Request, key string) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err.Error())
	}
}

func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := code.HTTPStatus()
	if status >= http.StatusInternalServerError {
		slog.Error("request failed", "code", string(code), "error", err.Error())
	}

	writeJSON(w, status, errorResponse{
		Code:    string(code),
		Message: errors.GetMessage(err),
	})
}
