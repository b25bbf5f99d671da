package diagnosis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dexkit/pokedex-api/internal/entities/dex"
)

func statLine(hp, atk, def, spAtk, spDef, spd int) []dex.Stat {
	return []dex.Stat{
		{Name: dex.StatHP, Value: hp},
		{Name: dex.StatAttack, Value: atk},
		{Name: dex.StatDefense, Value: def},
		{Name: dex.StatSpecialAttack, Value: spAtk},
		{Name: dex.StatSpecialDefense, Value: spDef},
		{Name: dex.StatSpeed, Value: spd},
	}
}

func TestScoreTypeMatch(t *testing.T) {
	p := &dex.Pokemon{ID: 4, Types: []string{"fire"}, Stats: statLine(39, 52, 43, 60, 50, 65)}

	answers := Answers{QuestionFavoriteType: "fire"}
	assert.InDelta(t, 40, score(p, answers, ModeSimple), 0.0001)
	assert.InDelta(t, 30, score(p, answers, ModeDetailed), 0.0001)

	assert.InDelta(t, 0, score(p, Answers{QuestionFavoriteType: "water"}, ModeSimple), 0.0001)
}

func TestScorePersonality(t *testing.T) {
	p := &dex.Pokemon{ID: 25, Types: []string{"electric"}, Stats: statLine(35, 55, 40, 50, 50, 90)}

	assert.InDelta(t, 55*0.4, score(p, Answers{QuestionPersonality: "aggressive"}, ModeSimple), 0.0001)
	assert.InDelta(t, (40+35)*0.25, score(p, Answers{QuestionPersonality: "defensive"}, ModeSimple), 0.0001)
	assert.InDelta(t, 90*0.3, score(p, Answers{QuestionPersonality: "speed"}, ModeDetailed), 0.0001)
	assert.InDelta(t, 320*0.06, score(p, Answers{QuestionPersonality: "balanced"}, ModeSimple), 0.0001)
}

func TestScorePreferenceCuteStacks(t *testing.T) {
	// Small and normal-typed, so both cute bonuses apply.
	p := &dex.Pokemon{ID: 16, Height: 0.3, Types: []string{"normal", "flying"}, Stats: statLine(40, 45, 40, 35, 35, 56)}

	assert.InDelta(t, 25+15, score(p, Answers{QuestionPreference: "cute"}, ModeSimple), 0.0001)
	assert.InDelta(t, 20+10, score(p, Answers{QuestionPreference: "cute"}, ModeDetailed), 0.0001)
}

func TestScoreSizeOnlyCountsInDetailedMode(t *testing.T) {
	p := &dex.Pokemon{ID: 25, Height: 0.4, Types: []string{"electric"}, Stats: statLine(35, 55, 40, 50, 50, 90)}

	assert.InDelta(t, 0, score(p, Answers{QuestionSize: "small"}, ModeSimple), 0.0001)
	assert.InDelta(t, 20, score(p, Answers{QuestionSize: "small"}, ModeDetailed), 0.0001)
}

func TestScoreImportantStat(t *testing.T) {
	p := &dex.Pokemon{ID: 25, Types: []string{"electric"}, Stats: statLine(35, 55, 40, 50, 50, 90)}

	assert.InDelta(t, 90*0.3, score(p, Answers{QuestionImportantStat: "speed"}, ModeSimple), 0.0001)
	assert.InDelta(t, 90*0.4, score(p, Answers{QuestionImportantStat: "speed"}, ModeDetailed), 0.0001)
}

func TestScoreBattleStyle(t *testing.T) {
	p := &dex.Pokemon{ID: 6, Types: []string{"fire", "flying"}, Stats: statLine(78, 84, 78, 109, 85, 100)}

	assert.InDelta(t, 100*0.2, score(p, Answers{QuestionBattleStyle: "first-strike"}, ModeDetailed), 0.0001)
	assert.InDelta(t, (78+78)*0.15, score(p, Answers{QuestionBattleStyle: "endurance"}, ModeDetailed), 0.0001)
	// one-hit takes the stronger of the two attack stats
	assert.InDelta(t, 109*0.2, score(p, Answers{QuestionBattleStyle: "one-hit"}, ModeDetailed), 0.0001)
	// support grants nothing
	assert.InDelta(t, 0, score(p, Answers{QuestionBattleStyle: "support"}, ModeDetailed), 0.0001)
}

func TestScoreEvolutionStage(t *testing.T) {
	basic := &dex.Pokemon{ID: 1, Types: []string{"grass"}, Stats: statLine(45, 49, 49, 65, 65, 45)}
	final := &dex.Pokemon{ID: 3, Types: []string{"grass"}, Stats: statLine(80, 82, 83, 100, 100, 80)}
	lapras := &dex.Pokemon{ID: 131, Types: []string{"water", "ice"}, Stats: statLine(130, 85, 80, 85, 95, 60)}

	assert.InDelta(t, 15, score(basic, Answers{QuestionEvolutionStage: "basic"}, ModeDetailed), 0.0001)
	assert.InDelta(t, 0, score(final, Answers{QuestionEvolutionStage: "basic"}, ModeDetailed), 0.0001)
	assert.InDelta(t, 15, score(final, Answers{QuestionEvolutionStage: "final"}, ModeDetailed), 0.0001)
	assert.InDelta(t, 15, score(lapras, Answers{QuestionEvolutionStage: "no-evolution"}, ModeDetailed), 0.0001)
	assert.InDelta(t, 0, score(basic, Answers{QuestionEvolutionStage: "no-evolution"}, ModeDetailed), 0.0001)
}

func TestScoreRarity(t *testing.T) {
	mewtwo := &dex.Pokemon{ID: 150, Types: []string{"psychic"}, Stats: statLine(106, 110, 90, 154, 90, 130)}
	caterpie := &dex.Pokemon{ID: 10, Types: []string{"bug"}, Stats: statLine(45, 30, 35, 20, 20, 45)}
	charizard := &dex.Pokemon{ID: 6, Types: []string{"fire", "flying"}, Stats: statLine(78, 84, 78, 109, 85, 100)}

	assert.InDelta(t, 20, score(mewtwo, Answers{QuestionRarity: "legendary"}, ModeDetailed), 0.0001)
	assert.InDelta(t, 15, score(caterpie, Answers{QuestionRarity: "common"}, ModeDetailed), 0.0001)
	assert.InDelta(t, 15, score(charizard, Answers{QuestionRarity: "rare"}, ModeDetailed), 0.0001)
	assert.InDelta(t, 0, score(caterpie, Answers{QuestionRarity: "legendary"}, ModeDetailed), 0.0001)
}

func TestScoreCollectionAlwaysGrants(t *testing.T) {
	p := &dex.Pokemon{ID: 10, Types: []string{"bug"}, Stats: statLine(45, 30, 35, 20, 20, 45)}

	assert.InDelta(t, 10, score(p, Answers{QuestionPurpose: "collection"}, ModeDetailed), 0.0001)
}

func TestScoreNoAnswers(t *testing.T) {
	p := &dex.Pokemon{ID: 1, Types: []string{"grass"}, Stats: statLine(45, 49, 49, 65, 65, 45)}

	assert.InDelta(t, 0, score(p, Answers{}, ModeSimple), 0.0001)
	assert.InDelta(t, 0, score(p, Answers{}, ModeDetailed), 0.0001)
}
