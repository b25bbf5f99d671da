package diagnosis

import (
	"strings"

	"github.com/dexkit/pokedex-api/internal/entities/dex"
)

var typePhrases = map[string]string{
	dex.TypeFire:     "情熱的でエネルギッシュ",
	dex.TypeWater:    "柔軟で適応力が高い",
	dex.TypeGrass:    "成長を大切にする穏やかさ",
	dex.TypeElectric: "行動力がありスピード感がある",
	dex.TypePsychic:  "知性的で深く考える",
	dex.TypeIce:      "冷静で落ち着いている",
	dex.TypeDragon:   "力強くリーダーシップがある",
	dex.TypeDark:     "神秘的で独立心が強い",
	dex.TypeFairy:    "優しく調和を大切にする",
	dex.TypeNormal:   "バランスが取れて安定している",
	dex.TypeFighting: "正義感が強く努力を惜しまない",
	dex.TypePoison:   "独特な魅力と強い個性を持つ",
	dex.TypeGround:   "堅実で地に足がついている",
	dex.TypeFlying:   "自由を愛し広い視野を持つ",
	dex.TypeBug:      "努力家で粘り強い",
	dex.TypeRock:     "堅実で安定感がある",
	dex.TypeGhost:    "神秘的で深い洞察力を持つ",
	dex.TypeSteel:    "強靭で困難に立ち向かう",
}

var preferencePhrases = map[string]string{
	"cute":       "かわいらしいものを好む、優しい心の持ち主です",
	"cool":       "かっこいいものを好む、スタイリッシュなセンスがあります",
	"strong":     "強さを重視する、向上心が高い性格です",
	"mysterious": "神秘的で奥深い魅力に惹かれる、独特な感性を持っています",
	"elegant":    "優雅さを好む、上品で洗練された性格です",
}

var personalityPhrases = map[string]string{
	"aggressive": "積極的に行動し、目標に向かって突き進む力があります",
	"defensive":  "慎重で、周囲を守ることを大切にします",
	"speed":      "素早い判断力と行動力を持っています",
	"special":    "知的な判断と深い思考力があります",
	"balanced":   "バランスの取れた能力を持っています",
}

const defaultComment = "あなたの個性が、このポケモンとぴったり合っています"

// buildComment assembles the result text from the fixed rules, joined
// with Japanese periods. Rule order is part of the output contract.
func buildComment(p *dex.Pokemon, answers Answers) string {
	total := p.TotalStats()
	var comments []string

	if phrase, ok := typePhrases[p.PrimaryType()]; ok {
		comments = append(comments, "あなたは"+phrase+"性格です")
	}

	if phrase, ok := preferencePhrases[answers[QuestionPreference]]; ok {
		comments = append(comments, phrase)
	}

	if phrase, ok := personalityPhrases[answers[QuestionPersonality]]; ok {
		comments = append(comments, phrase)
	}

	if total > 580 {
		comments = append(comments, "非常に高い潜在能力を持っており、どんな困難にも立ち向かえる強さがあります")
	} else if total < 350 {
		comments = append(comments, "シンプルで純粋な魅力があり、周囲に優しい影響を与えます")
	}

	if len(comments) == 0 {
		comments = append(comments, defaultComment)
	}

	return strings.Join(comments, "。") + "。"
}
