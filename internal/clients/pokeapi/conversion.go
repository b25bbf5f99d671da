package pokeapi

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dexkit/pokedex-api/internal/entities/dex"
	"github.com/dexkit/pokedex-api/internal/errors"
)

// defaultGenderRate is the eighths-female value assumed when the species
// lookup fails. Rate 4 means both genders occur.
const defaultGenderRate = 4

// normalize converts a raw API payload into a catalog entity. Localization
// lookups run concurrently and individually fall back to canonical names;
// structural problems in the core payload fail the whole conversion.
func (c *client) normalize(ctx context.Context, raw *pokemonPayload) (*dex.Pokemon, error) {
	if len(raw.Types) == 0 || len(raw.Types) > 2 {
		return nil, errors.Internalf("pokemon %s has %d types, want 1 or 2", raw.Name, len(raw.Types))
	}

	stats, err := orderStats(raw)
	if err != nil {
		return nil, err
	}

	pokemon := &dex.Pokemon{
		ID:           raw.ID,
		Name:         raw.Name,
		DisplayName:  raw.Name,
		Height:       float64(raw.Height) / 10, // decimeters to meters
		Weight:       float64(raw.Weight) / 10, // hectograms to kilograms
		Types:        make([]string, len(raw.Types)),
		TypeNames:    make([]string, len(raw.Types)),
		Abilities:    make([]string, len(raw.Abilities)),
		AbilityNames: make([]string, len(raw.Abilities)),
		Stats:        stats,
		Sprites:      resolveSprites(&raw.Sprites),
		Gender:       dex.GenderFromRate(defaultGenderRate),
	}

	for i, t := range raw.Types {
		pokemon.Types[i] = t.Type.Name
		pokemon.TypeNames[i] = t.Type.Name
	}
	for i, a := range raw.Abilities {
		pokemon.Abilities[i] = a.Ability.Name
		pokemon.AbilityNames[i] = a.Ability.Name
	}

	// Legacy single-image fields mirror the front sprite slots.
	pokemon.Image = pokemon.Sprites.FrontDefault
	pokemon.ImageAnimated = pokemon.Sprites.FrontDefaultAnimated

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()

		name, genderRate, err := c.speciesInfo(ctx, raw.ID)
		if err != nil {
			slog.Warn("species lookup failed, using defaults",
				"pokemon", raw.Name,
				"error", err.Error())
			return
		}
		pokemon.DisplayName = name
		pokemon.Gender = dex.GenderFromRate(genderRate)
	}()

	for i, t := range raw.Types {
		wg.Add(1)
		go func(idx int, typeName string) {
			defer wg.Done()

			name, err := c.typeName(ctx, typeName)
			if err != nil {
				slog.Debug("type localization failed, keeping canonical name",
					"type", typeName,
					"error", err.Error())
				return
			}
			pokemon.TypeNames[idx] = name
		}(i, t.Type.Name)
	}

	for i, a := range raw.Abilities {
		wg.Add(1)
		go func(idx int, abilityName string) {
			defer wg.Done()

			name, err := c.abilityName(ctx, abilityName)
			if err != nil {
				slog.Debug("ability localization failed, keeping canonical name",
					"ability", abilityName,
					"error", err.Error())
				return
			}
			pokemon.AbilityNames[idx] = name
		}(i, a.Ability.Name)
	}

	wg.Wait()

	return pokemon, nil
}

// speciesInfo fetches the localized display name and gender rate for
// one species. A missing localization falls back to the canonical name.
func (c *client) speciesInfo(ctx context.Context, id int) (string, int, error) {
	var species speciesPayload
	if err := c.get(ctx, fmt.Sprintf("pokemon-species/%d", id), &species); err != nil {
		return "", 0, err
	}
	return localizedFrom(species.Names, c.language, species.Name), species.GenderRate, nil
}

func (c *client) typeName(ctx context.Context, name string) (string, error) {
	var payload typePayload
	if err := c.get(ctx, "type/"+name, &payload); err != nil {
		return "", err
	}
	return localizedFrom(payload.Names, c.language, name), nil
}

func (c *client) abilityName(ctx context.Context, name string) (string, error) {
	var payload abilityPayload
	if err := c.get(ctx, "ability/"+name, &payload); err != nil {
		return "", err
	}
	return localizedFrom(payload.Names, c.language, name), nil
}

// localizedFrom picks the entry matching lang, or fallback when absent.
func localizedFrom(names []localizedName, lang, fallback string) string {
	for _, n := range names {
		if n.Language.Name == lang {
			return n.Name
		}
	}
	return fallback
}

// orderStats reorders the payload's stats into the fixed six-stat order.
// Every stat must be present exactly once.
func orderStats(raw *pokemonPayload) ([]dex.Stat, error) {
	byName := make(map[string]int, len(raw.Stats))
	for _, s := range raw.Stats {
		byName[s.Stat.Name] = s.BaseStat
	}

	stats := make([]dex.Stat, 0, len(dex.StatOrder))
	for _, name := range dex.StatOrder {
		value, ok := byName[name]
		if !ok {
			return nil, errors.Internalf("pokemon %s payload missing stat %s", raw.Name, name)
		}
		stats = append(stats, dex.Stat{Name: name, Value: value})
	}

	return stats, nil
}

// resolveSprites maps the raw sprite tree onto the eight catalog slots.
// Each slot takes the first non-empty source in its priority order; the
// static front slot prefers official artwork over the plain game sprite.
func resolveSprites(sp *spritesPayload) dex.SpriteSet {
	anim := sp.Versions.GenerationV.BlackWhite.Animated

	return dex.SpriteSet{
		FrontDefault:         firstNonEmpty(sp.Other.OfficialArtwork.FrontDefault, sp.FrontDefault),
		FrontDefaultAnimated: anim.FrontDefault,
		FrontFemale:          sp.FrontFemale,
		FrontFemaleAnimated:  anim.FrontFemale,
		BackDefault:          sp.BackDefault,
		BackDefaultAnimated:  anim.BackDefault,
		BackFemale:           sp.BackFemale,
		BackFemaleAnimated:   anim.BackFemale,
	}
}

func firstNonEmpty(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return ""
}
