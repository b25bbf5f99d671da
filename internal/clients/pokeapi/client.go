package pokeapi

//go:generate mockgen -destination=mock/mock_client.go -package=pokeapimock github.com/dexkit/pokedex-api/internal/clients/pokeapi Client

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dexkit/pokedex-api/internal/entities/dex"
	"github.com/dexkit/pokedex-api/internal/errors"
)

const (
	defaultBaseURL     = "https://pokeapi.co/api/v2/"
	defaultHTTPTimeout = 30 * time.Second
	defaultLanguage    = "ja"
)

// Client fetches creature data from PokeAPI and normalizes it into
// catalog entities.
type Client interface {
	// ListPokemon returns lightweight references for the first limit
	// catalog entries, with display names localized where available.
	ListPokemon(ctx context.Context, limit int) ([]*dex.Ref, error)

	// GetPokemon fetches and normalizes a single creature by canonical
	// name or numeric ID.
	GetPokemon(ctx context.Context, nameOrID string) (*dex.Pokemon, error)

	// ListPokemonData fetches and normalizes the first limit catalog
	// entries in full. Entries keep catalog order.
	ListPokemonData(ctx context.Context, limit int) ([]*dex.Pokemon, error)
}

// Config holds the client configuration.
type Config struct {
	BaseURL     string
	HTTPTimeout time.Duration
	// Language selects the localization used for display names.
	// Defaults to "ja".
	Language   string
	HTTPClient *http.Client
}

// Validate applies defaults. The zero Config is usable.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if !strings.HasSuffix(cfg.BaseURL, "/") {
		cfg.BaseURL += "/"
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = defaultHTTPTimeout
	}
	if cfg.Language == "" {
		cfg.Language = defaultLanguage
	}
	return nil
}

type client struct {
	baseURL    string
	language   string
	httpClient *http.Client
}

// New creates a PokeAPI client from the given configuration.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}

	return &client{
		baseURL:    cfg.BaseURL,
		language:   cfg.Language,
		httpClient: httpClient,
	}, nil
}

func (c *client) ListPokemon(ctx context.Context, limit int) ([]*dex.Ref, error) {
	if limit <= 0 {
		limit = dex.CatalogSize
	}

	var list listResponse
	if err := c.get(ctx, fmt.Sprintf("pokemon?limit=%d", limit), &list); err != nil {
		return nil, err
	}

	refs := make([]*dex.Ref, len(list.Results))
	var wg sync.WaitGroup

	for i, res := range list.Results {
		id, err := idFromURL(res.URL)
		if err != nil {
			return nil, err
		}
		refs[i] = &dex.Ref{
			ID:          id,
			Name:        res.Name,
			DisplayName: res.Name,
		}

		wg.Add(1)
		go func(ref *dex.Ref) {
			defer wg.Done()

			name, _, err := c.speciesInfo(ctx, ref.ID)
			if err != nil {
				slog.Debug("species lookup failed, keeping canonical name",
					"pokemon", ref.Name,
					"error", err.Error())
				return
			}
			ref.DisplayName = name
		}(refs[i])
	}

	wg.Wait()

	return refs, nil
}

func (c *client) GetPokemon(ctx context.Context, nameOrID string) (*dex.Pokemon, error) {
	if nameOrID == "" {
		return nil, errors.InvalidArgument("pokemon name or id is required")
	}

	var raw pokemonPayload
	if err := c.get(ctx, "pokemon/"+strings.ToLower(nameOrID), &raw); err != nil {
		return nil, err
	}

	return c.normalize(ctx, &raw)
}

func (c *client) ListPokemonData(ctx context.Context, limit int) ([]*dex.Pokemon, error) {
	refs, err := c.ListPokemon(ctx, limit)
	if err != nil {
		return nil, err
	}

	results := make([]*dex.Pokemon, len(refs))
	errChan := make(chan error, len(refs))
	var wg sync.WaitGroup

	for i, ref := range refs {
		wg.Add(1)
		go func(idx int, name string) {
			defer wg.Done()

			pokemon, err := c.GetPokemon(ctx, name)
			if err != nil {
				errChan <- errors.Wrapf(err, "failed to fetch %s", name)
				return
			}
			results[idx] = pokemon
		}(i, ref.Name)
	}

	wg.Wait()
	close(errChan)

	if err := <-errChan; err != nil {
		return nil, err
	}

	return results, nil
}

// get performs a GET against the API and decodes the JSON body into out.
func (c *client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return errors.Wrapf(err, "failed to build request for %s", path)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.WrapWithCodef(err, errors.CodeUnavailable, "request to %s failed", path)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return errors.NotFoundf("resource %s not found", path)
	}
	if resp.StatusCode != http.StatusOK {
		return errors.Unavailablef("unexpected status %d from %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to decode %s payload", path)
	}

	return nil
}

// idFromURL extracts the trailing numeric ID from a resource URL such
// as https://pokeapi.co/api/v2/pokemon/25/.
func idFromURL(rawURL string) (int, error) {
	parts := strings.Split(strings.Trim(rawURL, "/"), "/")
	if len(parts) == 0 {
		return 0, errors.Internalf("malformed resource url %q", rawURL)
	}
	id, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return 0, errors.Internalf("malformed resource url %q", rawURL)
	}
	return id, nil
}
