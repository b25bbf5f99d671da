// Package diagnosis matches a quiz taker to a pokemon by scoring every
// catalog entry against their answers.
package diagnosis

//go:generate mockgen -destination=mock/mock_service.go -package=diagnosismock github.com/dexkit/pokedex-api/internal/orchestrators/diagnosis Service

import (
	"context"
	"log/slog"
	"sort"

	"github.com/dexkit/pokedex-api/internal/clients/pokeapi"
	"github.com/dexkit/pokedex-api/internal/entities/dex"
	"github.com/dexkit/pokedex-api/internal/errors"
)

// Service defines the diagnosis operations
type Service interface {
	// ListQuestions returns the question set for a mode
	ListQuestions(ctx context.Context, input *ListQuestionsInput) (*ListQuestionsOutput, error)

	// Diagnose scores the catalog against the answers and returns the
	// best match with a generated comment
	Diagnose(ctx context.Context, input *DiagnoseInput) (*DiagnoseOutput, error)
}

// ListQuestionsInput defines the input for listing questions
type ListQuestionsInput struct {
	Mode Mode
}

// ListQuestionsOutput defines the output for listing questions
type ListQuestionsOutput struct {
	Questions []Question
}

// DiagnoseInput defines the input for a diagnosis
type DiagnoseInput struct {
	Mode    Mode
	Answers Answers
}

// DiagnoseOutput defines the output for a diagnosis
type DiagnoseOutput struct {
	Pokemon *dex.Pokemon
	Score   float64
	Comment string
}

// Config holds the orchestrator dependencies
type Config struct {
	PokeAPIClient pokeapi.Client
	// CatalogLimit bounds the candidate set. Defaults to the full
	// first-generation catalog.
	CatalogLimit int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.PokeAPIClient == nil {
		return errors.InvalidArgument("pokeapi client is required")
	}
	if c.CatalogLimit == 0 {
		c.CatalogLimit = dex.CatalogSize
	}
	return nil
}

type orchestrator struct {
	client       pokeapi.Client
	catalogLimit int
}

// New creates a new diagnosis orchestrator
func New(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		client:       cfg.PokeAPIClient,
		catalogLimit: cfg.CatalogLimit,
	}, nil
}

// Ensure orchestrator implements Service
var _ Service = (*orchestrator)(nil)

func (o *orchestrator) ListQuestions(_ context.Context, input *ListQuestionsInput) (*ListQuestionsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	questions, err := QuestionsForMode(input.Mode)
	if err != nil {
		return nil, err
	}

	return &ListQuestionsOutput{Questions: questions}, nil
}

func (o *orchestrator) Diagnose(ctx context.Context, input *DiagnoseInput) (*DiagnoseOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if _, err := QuestionsForMode(input.Mode); err != nil {
		return nil, err
	}

	candidates, err := o.client.ListPokemonData(ctx, o.catalogLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to materialize catalog")
	}
	if len(candidates) == 0 {
		return nil, errors.Internal("catalog is empty")
	}

	answers := input.Answers
	if answers == nil {
		answers = Answers{}
	}

	scores := make([]float64, len(candidates))
	for i, p := range candidates {
		scores[i] = score(p, answers, input.Mode)
	}

	// Stable sort keeps catalog order among equal scores, so ties
	// resolve to the earliest entry.
	order := make([]int, len(candidates))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	best := candidates[order[0]]

	slog.Info("diagnosis complete",
		"mode", string(input.Mode),
		"answered", len(answers),
		"result", best.Name,
		"score", scores[order[0]])

	return &DiagnoseOutput{
		Pokemon: best,
		Score:   scores[order[0]],
		Comment: buildComment(best, answers),
	}, nil
}
