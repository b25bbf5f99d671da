// Package comparison orchestrates head-to-head stat and type matchups.
package comparison

//go:generate mockgen -destination=mock/mock_service.go -package=comparisonmock github.com/dexkit/pokedex-api/internal/orchestrators/comparison Service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/dexkit/pokedex-api/internal/clients/pokeapi"
	"github.com/dexkit/pokedex-api/internal/entities/dex"
	"github.com/dexkit/pokedex-api/internal/errors"
	comparisonhistory "github.com/dexkit/pokedex-api/internal/repositories/comparison_history"
)

// Service defines the comparison operations
type Service interface {
	// Compare fetches two pokemon and scores them against each other
	Compare(ctx context.Context, input *CompareInput) (*CompareOutput, error)

	// GetHistory returns recent comparisons, newest first
	GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error)
}

// CompareInput defines the input for a comparison
type CompareInput struct {
	Name1 string
	Name2 string
}

// Side holds one pokemon's share of a comparison result
type Side struct {
	Pokemon       *dex.Pokemon
	TotalStats    int
	// Effectiveness is this side's attack multiplier against the other side
	Effectiveness float64
}

// CompareOutput defines the output for a comparison.
// Winner is nil when totals are equal.
type CompareOutput struct {
	Side1  *Side
	Side2  *Side
	Winner *dex.Pokemon
}

// GetHistoryInput defines the input for listing comparison history
type GetHistoryInput struct{}

// GetHistoryOutput defines the output for listing comparison history
type GetHistoryOutput struct {
	Records []*comparisonhistory.Record
}

// Config holds the orchestrator dependencies
type Config struct {
	PokeAPIClient pokeapi.Client
	HistoryRepo   comparisonhistory.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.PokeAPIClient == nil {
		return errors.InvalidArgument("pokeapi client is required")
	}
	if c.HistoryRepo == nil {
		return errors.InvalidArgument("history repository is required")
	}
	return nil
}

type orchestrator struct {
	client      pokeapi.Client
	historyRepo comparisonhistory.Repository
}

// New creates a new comparison orchestrator
func New(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		client:      cfg.PokeAPIClient,
		historyRepo: cfg.HistoryRepo,
	}, nil
}

// Ensure orchestrator implements Service
var _ Service = (*orchestrator)(nil)

func (o *orchestrator) Compare(ctx context.Context, input *CompareInput) (*CompareOutput, error) {
	if input == nil || input.Name1 == "" || input.Name2 == "" {
		return nil, errors.InvalidArgument("two pokemon names are required")
	}

	names := []string{input.Name1, input.Name2}
	fetched := make([]*dex.Pokemon, len(names))
	errChan := make(chan error, len(names))
	var wg sync.WaitGroup

	for i, name := range names {
		wg.Add(1)
		go func(idx int, name string) {
			defer wg.Done()

			pokemon, err := o.client.GetPokemon(ctx, name)
			if err != nil {
				errChan <- errors.Wrapf(err, "failed to fetch %s", name)
				return
			}
			fetched[idx] = pokemon
		}(i, name)
	}

	wg.Wait()
	close(errChan)

	if err := <-errChan; err != nil {
		return nil, err
	}

	p1, p2 := fetched[0], fetched[1]

	out := &CompareOutput{
		Side1: &Side{
			Pokemon:       p1,
			TotalStats:    p1.TotalStats(),
			Effectiveness: attackEffectiveness(p1.Types, p2.Types),
		},
		Side2: &Side{
			Pokemon:       p2,
			TotalStats:    p2.TotalStats(),
			Effectiveness: attackEffectiveness(p2.Types, p1.Types),
		},
	}

	switch {
	case out.Side1.TotalStats > out.Side2.TotalStats:
		out.Winner = p1
	case out.Side2.TotalStats > out.Side1.TotalStats:
		out.Winner = p2
	}

	// History is a convenience feature. A storage failure must not fail
	// the comparison itself.
	if _, err := o.historyRepo.Save(ctx, comparisonhistory.SaveInput{
		Name1:        p1.Name,
		DisplayName1: p1.DisplayName,
		Name2:        p2.Name,
		DisplayName2: p2.DisplayName,
	}); err != nil {
		slog.Warn("failed to record comparison history",
			"name1", p1.Name,
			"name2", p2.Name,
			"error", err.Error())
	}

	return out, nil
}

func (o *orchestrator) GetHistory(ctx context.Context, _ *GetHistoryInput) (*GetHistoryOutput, error) {
	out, err := o.historyRepo.List(ctx, comparisonhistory.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comparison history")
	}

	return &GetHistoryOutput{Records: out.Records}, nil
}
