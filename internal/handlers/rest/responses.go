package rest

import (
	"github.com/dexkit/pokedex-api/internal/entities/dex"
	"github.com/dexkit/pokedex-api/internal/orchestrators/comparison"
	"github.com/dexkit/pokedex-api/internal/orchestrators/diagnosis"
	"github.com/dexkit/pokedex-api/internal/orchestrators/personality"
	comparisonhistory "github.com/dexkit/pokedex-api/internal/repositories/comparison_history"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type refView struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
}

type statView struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type spriteView struct {
	FrontDefault         string `json:"frontDefault,omitempty"`
	FrontDefaultAnimated string `json:"frontDefaultAnimated,omitempty"`
	FrontFemale          string `json:"frontFemale,omitempty"`
	FrontFemaleAnimated  string `json:"frontFemaleAnimated,omitempty"`
	BackDefault          string `json:"backDefault,omitempty"`
	BackDefaultAnimated  string `json:"backDefaultAnimated,omitempty"`
	BackFemale           string `json:"backFemale,omitempty"`
	BackFemaleAnimated   string `json:"backFemaleAnimated,omitempty"`
}

type genderView struct {
	HasMale    bool `json:"hasMale"`
	HasFemale  bool `json:"hasFemale"`
	Genderless bool `json:"genderless"`
}

type pokemonView struct {
	ID            int        `json:"id"`
	Name          string     `json:"name"`
	DisplayName   string     `json:"displayName"`
	Types         []string   `json:"types"`
	TypeNames     []string   `json:"typeNames"`
	Height        float64    `json:"height"`
	Weight        float64    `json:"weight"`
	Abilities     []string   `json:"abilities"`
	AbilityNames  []string   `json:"abilityNames"`
	Stats         []statView `json:"stats"`
	TotalStats    int        `json:"totalStats"`
	Sprites       spriteView `json:"sprites"`
	Gender        genderView `json:"gender"`
	Image         string     `json:"image,omitempty"`
	ImageAnimated string     `json:"imageAnimated,omitempty"`
}

type compareSideView struct {
	Pokemon       pokemonView `json:"pokemon"`
	TotalStats    int         `json:"totalStats"`
	Effectiveness float64     `json:"effectiveness"`
}

type compareView struct {
	Side1 compareSideView `json:"side1"`
	Side2 compareSideView `json:"side2"`
	// Winner is omitted on a tie
	Winner *refView `json:"winner,omitempty"`
}

type historyRecordView struct {
	ID           string `json:"id"`
	Name1        string `json:"name1"`
	DisplayName1 string `json:"displayName1"`
	Name2        string `json:"name2"`
	DisplayName2 string `json:"displayName2"`
	Timestamp    int64  `json:"timestamp"`
}

type diagnoseRequest struct {
	Mode    string            `json:"mode"`
	Answers diagnosis.Answers `json:"answers"`
}

type diagnoseResponse struct {
	Pokemon pokemonView `json:"pokemon"`
	Score   float64     `json:"score"`
	Comment string      `json:"comment"`
}

type personalityRequest struct {
	Answers personality.Answers `json:"answers"`
}

type personalityResponse struct {
	Pokemon  pokemonView `json:"pokemon"`
	TypeName string      `json:"typeName"`
	TypeID   int         `json:"typeId"`
	Comment  string      `json:"comment"`
}

func toRefView(ref *dex.Ref) refView {
	return refView{
		ID:          ref.ID,
		Name:        ref.Name,
		DisplayName: ref.DisplayName,
	}
}

func toRefList(refs []*dex.Ref) []refView {
	views := make([]refView, len(refs))
	for i, ref := range refs {
		views[i] = toRefView(ref)
	}
	return views
}

func toPokemonView(p *dex.Pokemon) pokemonView {
	stats := make([]statView, len(p.Stats))
	for i, s := range p.Stats {
		stats[i] = statView{Name: s.Name, Value: s.Value}
	}

	return pokemonView{
		ID:           p.ID,
		Name:         p.Name,
		DisplayName:  p.DisplayName,
		Types:        p.Types,
		TypeNames:    p.TypeNames,
		Height:       p.Height,
		Weight:       p.Weight,
		Abilities:    p.Abilities,
		AbilityNames: p.AbilityNames,
		Stats:        stats,
		TotalStats:   p.TotalStats(),
		Sprites: spriteView{
			FrontDefault:         p.Sprites.FrontDefault,
			FrontDefaultAnimated: p.Sprites.FrontDefaultAnimated,
			FrontFemale:          p.Sprites.FrontFemale,
			FrontFemaleAnimated:  p.Sprites.FrontFemaleAnimated,
			BackDefault:          p.Sprites.BackDefault,
			BackDefaultAnimated:  p.Sprites.BackDefaultAnimated,
			BackFemale:           p.Sprites.BackFemale,
			BackFemaleAnimated:   p.Sprites.BackFemaleAnimated,
		},
		Gender: genderView{
			HasMale:    p.Gender.HasMale,
			HasFemale:  p.Gender.HasFemale,
			Genderless: p.Gender.Genderless,
		},
		Image:         p.Image,
		ImageAnimated: p.ImageAnimated,
	}
}

func toPokemonList(pokemon []*dex.Pokemon) []pokemonView {
	views := make([]pokemonView, len(pokemon))
	for i, p := range pokemon {
		views[i] = toPokemonView(p)
	}
	return views
}

func toCompareView(out *comparison.CompareOutput) compareView {
	view := compareView{
		Side1: compareSideView{
			Pokemon:       toPokemonView(out.Side1.Pokemon),
			TotalStats:    out.Side1.TotalStats,
			Effectiveness: out.Side1.Effectiveness,
		},
		Side2: compareSideView{
			Pokemon:       toPokemonView(out.Side2.Pokemon),
			TotalStats:    out.Side2.TotalStats,
			Effectiveness: out.Side2.Effectiveness,
		},
	}

	if out.Winner != nil {
		winner := toRefView(&dex.Ref{
			ID:          out.Winner.ID,
			Name:        out.Winner.Name,
			DisplayName: out.Winner.DisplayName,
		})
		view.Winner = &winner
	}

	return view
}

func toHistoryView(records []*comparisonhistory.Record) []historyRecordView {
	views := make([]historyRecordView, len(records))
	for i, rec := range records {
		views[i] = historyRecordView{
			ID:           rec.ID,
			Name1:        rec.Name1,
			DisplayName1: rec.DisplayName1,
			Name2:        rec.Name2,
			DisplayName2: rec.DisplayName2,
			Timestamp:    rec.Timestamp,
		}
	}
	return views
}
