package diagnosis

import "github.com/dexkit/pokedex-api/internal/errors"

// Mode selects the question set
type Mode string

const (
	// ModeSimple asks the five core questions
	ModeSimple Mode = "simple"
	// ModeDetailed asks all ten questions
	ModeDetailed Mode = "detailed"
)

// Question IDs. The simple set is a strict prefix of the detailed set.
const (
	QuestionFavoriteType     = "favoriteType"
	QuestionPersonality      = "personality"
	QuestionPreference       = "preference"
	QuestionSize             = "size"
	QuestionImportantStat    = "importantStat"
	QuestionBattleStyle      = "battleStyle"
	QuestionEvolutionStage   = "evolutionStage"
	QuestionWeightPreference = "weightPreference"
	QuestionRarity           = "rarity"
	QuestionPurpose          = "purpose"
)

// Option is one selectable answer
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Question is one quiz entry
type Question struct {
	ID      string   `json:"id"`
	Prompt  string   `json:"question"`
	Options []Option `json:"options"`
}

// Answers maps question IDs to the chosen option value.
// Unanswered questions simply contribute nothing.
type Answers map[string]string

var detailedQuestions = []Question{
	{
		ID:     QuestionFavoriteType,
		Prompt: "好きなタイプは？",
		Options: []Option{
			{Value: "fire", Label: "ほのお"},
			{Value: "water", Label: "みず"},
			{Value: "grass", Label: "くさ"},
			{Value: "electric", Label: "でんき"},
			{Value: "psychic", Label: "エスパー"},
			{Value: "ice", Label: "こおり"},
			{Value: "dragon", Label: "ドラゴン"},
			{Value: "dark", Label: "あく"},
			{Value: "fairy", Label: "フェアリー"},
			{Value: "normal", Label: "ノーマル"},
		},
	},
	{
		ID:     QuestionPersonality,
		Prompt: "あなたの性格は？",
		Options: []Option{
			{Value: "aggressive", Label: "攻撃的"},
			{Value: "defensive", Label: "防御的"},
			{Value: "balanced", Label: "バランス型"},
			{Value: "speed", Label: "素早い行動派"},
			{Value: "special", Label: "特殊能力重視"},
		},
	},
	{
		ID:     QuestionPreference,
		Prompt: "どのようなポケモンが好きですか？",
		Options: []Option{
			{Value: "cute", Label: "かわいい"},
			{Value: "cool", Label: "かっこいい"},
			{Value: "strong", Label: "強そう"},
			{Value: "mysterious", Label: "神秘的"},
			{Value: "elegant", Label: "優雅"},
		},
	},
	{
		ID:     QuestionSize,
		Prompt: "ポケモンの大きさは？",
		Options: []Option{
			{Value: "small", Label: "小さい（0.3m〜0.5m）"},
			{Value: "medium", Label: "中くらい（0.5m〜1.5m）"},
			{Value: "large", Label: "大きい（1.5m以上）"},
		},
	},
	{
		ID:     QuestionImportantStat,
		Prompt: "どのステータスが重要ですか？",
		Options: []Option{
			{Value: "hp", Label: "HP（体力）"},
			{Value: "attack", Label: "攻撃"},
			{Value: "defense", Label: "防御"},
			{Value: "special-attack", Label: "特攻"},
			{Value: "special-defense", Label: "特防"},
			{Value: "speed", Label: "素早さ"},
		},
	},
	{
		ID:     QuestionBattleStyle,
		Prompt: "バトルスタイルは？",
		Options: []Option{
			{Value: "first-strike", Label: "先制攻撃重視"},
			{Value: "endurance", Label: "持久戦"},
			{Value: "one-hit", Label: "一撃必殺"},
			{Value: "support", Label: "サポート型"},
			{Value: "versatile", Label: "オールラウンド"},
		},
	},
	{
		ID:     QuestionEvolutionStage,
		Prompt: "どの進化段階のポケモンが好きですか？",
		Options: []Option{
			{Value: "basic", Label: "進化前（かわいい）"},
			{Value: "middle", Label: "中間進化（バランス）"},
			{Value: "final", Label: "最終進化（強力）"},
			{Value: "no-evolution", Label: "進化しない（シンプル）"},
		},
	},
	{
		ID:     QuestionWeightPreference,
		Prompt: "ポケモンの重さは？",
		Options: []Option{
			{Value: "light", Label: "軽い（10kg以下）"},
			{Value: "medium", Label: "普通（10kg〜50kg）"},
			{Value: "heavy", Label: "重い（50kg以上）"},
		},
	},
	{
		ID:     QuestionRarity,
		Prompt: "どのようなレアリティが好きですか？",
		Options: []Option{
			{Value: "common", Label: "普通（よく見かける）"},
			{Value: "rare", Label: "珍しい（見つけにくい）"},
			{Value: "legendary", Label: "伝説・幻（非常に珍しい）"},
		},
	},
	{
		ID:     QuestionPurpose,
		Prompt: "ポケモンとの関わり方は？",
		Options: []Option{
			{Value: "battle", Label: "バトルで活躍させる"},
			{Value: "care", Label: "かわいがる"},
			{Value: "collection", Label: "コレクション"},
			{Value: "adventure", Label: "冒険のパートナー"},
		},
	},
}

const simpleQuestionCount = 5

// QuestionsForMode returns the fixed question set for a mode
func QuestionsForMode(mode Mode) ([]Question, error) {
	switch mode {
	case ModeSimple:
		return detailedQuestions[:simpleQuestionCount], nil
	case ModeDetailed:
		return detailedQuestions, nil
	default:
		return nil, errors.InvalidArgumentf("unknown diagnosis mode %q", mode)
	}
}
