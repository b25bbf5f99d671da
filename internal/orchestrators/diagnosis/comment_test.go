package diagnosis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dexkit/pokedex-api/internal/entities/dex"
)

func TestBuildCommentRuleOrder(t *testing.T) {
	p := &dex.Pokemon{
		ID:    150,
		Types: []string{"psychic"},
		Stats: statLine(106, 110, 90, 154, 90, 130), // 680
	}
	answers := Answers{
		QuestionPreference:  "mysterious",
		QuestionPersonality: "special",
	}

	got := buildComment(p, answers)
	want := "あなたは知性的で深く考える性格です。" +
		"神秘的で奥深い魅力に惹かれる、独特な感性を持っています。" +
		"知的な判断と深い思考力があります。" +
		"非常に高い潜在能力を持っており、どんな困難にも立ち向かえる強さがあります。"
	assert.Equal(t, want, got)
}

func TestBuildCommentLowTotal(t *testing.T) {
	p := &dex.Pokemon{
		ID:    10,
		Types: []string{"bug"},
		Stats: statLine(45, 30, 35, 20, 20, 45), // 195
	}

	got := buildComment(p, Answers{})
	assert.Equal(t, "あなたは努力家で粘り強い性格です。シンプルで純粋な魅力があり、周囲に優しい影響を与えます。", got)
}

func TestBuildCommentDefault(t *testing.T) {
	// A type with no phrase and a middling total trips no rule.
	p := &dex.Pokemon{
		ID:    999,
		Types: []string{"unknown"},
		Stats: statLine(70, 70, 70, 70, 70, 70), // 420
	}

	got := buildComment(p, Answers{})
	assert.Equal(t, "あなたの個性が、このポケモンとぴったり合っています。", got)
}
