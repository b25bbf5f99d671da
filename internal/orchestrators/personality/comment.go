package personality

import (
	"strings"

	"github.com/dexkit/pokedex-api/internal/entities/dex"
)

var typePhrases = map[string]string{
	dex.TypeFire:     "情熱的でエネルギッシュな性格",
	dex.TypeWater:    "柔軟で適応力の高い性格",
	dex.TypeGrass:    "成長を大切にする穏やかな性格",
	dex.TypeElectric: "行動力があり、スピード感のある性格",
	dex.TypePsychic:  "知性的で深く考える性格",
	dex.TypeIce:      "冷静で落ち着いた性格",
	dex.TypeDragon:   "力強く、リーダーシップのある性格",
	dex.TypeDark:     "神秘的で独立心の強い性格",
	dex.TypeFairy:    "優しく、調和を大切にする性格",
	dex.TypeNormal:   "バランスが取れた安定した性格",
	dex.TypeFighting: "正義感が強く、努力を惜しまない性格",
	dex.TypePoison:   "独特な魅力と、強い個性を持つ性格",
	dex.TypeGround:   "堅実で、地に足のついた性格",
	dex.TypeFlying:   "自由を愛し、広い視野を持つ性格",
	dex.TypeBug:      "努力家で、粘り強く取り組む性格",
	dex.TypeRock:     "堅実で、安定感のある性格",
	dex.TypeGhost:    "神秘的で、深い洞察力を持つ性格",
	dex.TypeSteel:    "強靭で、困難に立ち向かう性格",
}

const defaultComment = "あなたの個性が、このポケモンとぴったり合っています"

// Tally ties resolve to the earliest trait in this order.
var traitOrder = []string{TraitAggressive, TraitDefensive, TraitBalanced, TraitSpeed, TraitSpecial}

// dominantTrait tallies the trait tags of the chosen options
func dominantTrait(answers Answers) string {
	counts := map[string]int{}
	for _, q := range questions {
		if opt, ok := findOption(q, answers[q.ID]); ok {
			counts[opt.Trait]++
		}
	}

	dominant := traitOrder[0]
	for _, trait := range traitOrder[1:] {
		if counts[trait] > counts[dominant] {
			dominant = trait
		}
	}
	return dominant
}

// buildComment assembles the result text from the fixed rules, joined
// with Japanese periods. Rule order is part of the output contract.
func buildComment(p *dex.Pokemon, answers Answers) string {
	total := p.TotalStats()
	var comments []string

	if phrase, ok := typePhrases[p.PrimaryType()]; ok {
		comments = append(comments, phrase)
	}

	trait := dominantTrait(answers)
	switch {
	case trait == TraitAggressive && p.StatValue(dex.StatAttack) > 80:
		comments = append(comments, "積極的に行動し、目標に向かって突き進む力があります")
	case trait == TraitDefensive && p.StatValue(dex.StatDefense) > 80:
		comments = append(comments, "慎重で、周囲を守ることを大切にします")
	case trait == TraitSpeed && p.StatValue(dex.StatSpeed) > 80:
		comments = append(comments, "素早い判断力と行動力を持っています")
	case trait == TraitSpecial && p.StatValue(dex.StatSpecialAttack) > 80:
		comments = append(comments, "知的な判断と深い思考力があります")
	case total > 500:
		comments = append(comments, "バランスの取れた能力を持っています")
	}

	if p.Height < 0.5 {
		comments = append(comments, "小さくても、その存在感は抜群です")
	} else if p.Height >= 1.5 {
		comments = append(comments, "堂々とした風格と、人を惹きつける魅力があります")
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
