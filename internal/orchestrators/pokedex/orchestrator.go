// Package pokedex orchestrates catalog listing and lookup on top of the
// PokeAPI client.
package pokedex

//go:generate mockgen -destination=mock/mock_service.go -package=pokedexmock github.com/dexkit/pokedex-api/internal/orchestrators/pokedex Service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/dexkit/pokedex-api/internal/clients/pokeapi"
	"github.com/dexkit/pokedex-api/internal/entities/dex"
	"github.com/dexkit/pokedex-api/internal/errors"
)

// Service defines the catalog operations
type Service interface {
	// ListPokemon returns lightweight catalog references
	ListPokemon(ctx context.Context, input *ListPokemonInput) (*ListPokemonOutput, error)

	// ListPokemonData returns fully normalized catalog entries
	ListPokemonData(ctx context.Context, input *ListPokemonDataInput) (*ListPokemonDataOutput, error)

	// GetPokemon returns one normalized entry by canonical name or numeric ID
	GetPokemon(ctx context.Context, input *GetPokemonInput) (*GetPokemonOutput, error)

	// SearchPokemon filters the materialized catalog by name substring
	// and/or type tag
	SearchPokemon(ctx context.Context, input *SearchPokemonInput) (*SearchPokemonOutput, error)
}

// ListPokemonInput defines the input for listing catalog references
type ListPokemonInput struct {
	Limit int
}

// ListPokemonOutput defines the output for listing catalog references
type ListPokemonOutput struct {
	Refs []*dex.Ref
}

// ListPokemonDataInput defines the input for bulk materialization
type ListPokemonDataInput struct {
	Limit int
}

// ListPokemonDataOutput defines the output for bulk materialization
type ListPokemonDataOutput struct {
	Pokemon []*dex.Pokemon
}

// GetPokemonInput defines the input for a single lookup
type GetPokemonInput struct {
	NameOrID string
}

// GetPokemonOutput defines the output for a single lookup
type GetPokemonOutput struct {
	Pokemon *dex.Pokemon
}

// SearchPokemonInput defines the input for a catalog search.
// Query matches canonical and localized names case-insensitively;
// Type filters on the canonical type tag. Both are optional.
type SearchPokemonInput struct {
	Query string
	Type  string
	Limit int
}

// SearchPokemonOutput defines the output for a catalog search
type SearchPokemonOutput struct {
	Pokemon []*dex.Pokemon
}

// Config holds the orchestrator dependencies
type Config struct {
	PokeAPIClient pokeapi.Client
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.PokeAPIClient == nil {
		return errors.InvalidArgument("pokeapi client is required")
	}
	return nil
}

type orchestrator struct {
	client pokeapi.Client
}

// New creates a new catalog orchestrator
func New(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		client: cfg.PokeAPIClient,
	}, nil
}

// Ensure orchestrator implements Service
var _ Service = (*orchestrator)(nil)

func (o *orchestrator) ListPokemon(ctx context.Context, input *ListPokemonInput) (*ListPokemonOutput, error) {
	if input == nil {
		input = &ListPokemonInput{}
	}

	refs, err := o.client.ListPokemon(ctx, input.Limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pokemon")
	}

	return &ListPokemonOutput{Refs: refs}, nil
}

func (o *orchestrator) ListPokemonData(ctx context.Context, input *ListPokemonDataInput) (*ListPokemonDataOutput, error) {
	if input == nil {
		input = &ListPokemonDataInput{}
	}

	pokemon, err := o.client.ListPokemonData(ctx, input.Limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pokemon data")
	}

	return &ListPokemonDataOutput{Pokemon: pokemon}, nil
}

func (o *orchestrator) GetPokemon(ctx context.Context, input *GetPokemonInput) (*GetPokemonOutput, error) {
	if input == nil || input.NameOrID == "" {
		return nil, errors.InvalidArgument("pokemon name or id is required")
	}

	pokemon, err := o.client.GetPokemon(ctx, input.NameOrID)
	if err != nil {
		return nil, err
	}

	return &GetPokemonOutput{Pokemon: pokemon}, nil
}

func (o *orchestrator) SearchPokemon(ctx context.Context, input *SearchPokemonInput) (*SearchPokemonOutput, error) {
	if input == nil {
		input = &SearchPokemonInput{}
	}

	all, err := o.client.ListPokemonData(ctx, input.Limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to materialize catalog for search")
	}

	query := strings.ToLower(strings.TrimSpace(input.Query))
	typeTag := strings.ToLower(strings.TrimSpace(input.Type))

	matched := make([]*dex.Pokemon, 0, len(all))
	for _, p := range all {
		if query != "" && !matchesQuery(p, query) {
			continue
		}
		if typeTag != "" && !p.HasType(typeTag) {
			continue
		}
		matched = append(matched, p)
	}

	slog.Debug("catalog search",
		"query", query,
		"type", typeTag,
		"matched", len(matched))

	return &SearchPokemonOutput{Pokemon: matched}, nil
}

func matchesQuery(p *dex.Pokemon, query string) bool {
	return strings.Contains(strings.ToLower(p.Name), query) ||
		strings.Contains(strings.ToLower(p.DisplayName), query)
}
