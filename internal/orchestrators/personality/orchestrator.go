// Package personality maps quiz answers to a personality type named
// after a pokemon, via a prime-weighted hash over the answers.
package personality

//go:generate mockgen -destination=mock/mock_service.go -package=personalitymock github.com/dexkit/pokedex-api/internal/orchestrators/personality Service

import (
	"context"
	"log/slog"

	"github.com/dexkit/pokedex-api/internal/clients/pokeapi"
	"github.com/dexkit/pokedex-api/internal/entities/dex"
	"github.com/dexkit/pokedex-api/internal/errors"
)

// Service defines the personality diagnosis operations
type Service interface {
	// ListQuestions returns the fixed ten-question set
	ListQuestions(ctx context.Context, input *ListQuestionsInput) (*ListQuestionsOutput, error)

	// Diagnose maps the answers to a personality type
	Diagnose(ctx context.Context, input *DiagnoseInput) (*DiagnoseOutput, error)
}

// ListQuestionsInput defines the input for listing questions
type ListQuestionsInput struct{}

// ListQuestionsOutput defines the output for listing questions
type ListQuestionsOutput struct {
	Questions []Question
}

// DiagnoseInput defines the input for a personality diagnosis
type DiagnoseInput struct {
	Answers Answers
}

// DiagnoseOutput defines the output for a personality diagnosis
type DiagnoseOutput struct {
	Pokemon *dex.Pokemon
	// TypeName is the personality type, the display name suffixed with 型
	TypeName string
	TypeID   int
	Comment  string
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

// New creates a new personality orchestrator
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

func (o *orchestrator) ListQuestions(_ context.Context, _ *ListQuestionsInput) (*ListQuestionsOutput, error) {
	return &ListQuestionsOutput{Questions: Questions()}, nil
}

func (o *orchestrator) Diagnose(ctx context.Context, input *DiagnoseInput) (*DiagnoseOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	answers := input.Answers
	if answers == nil {
		answers = Answers{}
	}

	candidates, err := o.client.ListPokemonData(ctx, o.catalogLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to materialize catalog")
	}
	if len(candidates) == 0 {
		return nil, errors.Internal("catalog is empty")
	}

	id := typeID(answers)

	// Fall back to the first candidate when the computed ID is outside
	// the loaded catalog.
	match := candidates[0]
	for _, p := range candidates {
		if p.ID == id {
			match = p
			break
		}
	}

	slog.Info("personality diagnosis complete",
		"answered", len(answers),
		"type_id", id,
		"result", match.Name)

	return &DiagnoseOutput{
		Pokemon:  match,
		TypeName: match.DisplayName + "型",
		TypeID:   id,
		Comment:  buildComment(match, answers),
	}, nil
}
