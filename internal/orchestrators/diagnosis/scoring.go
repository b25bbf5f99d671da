package diagnosis

import "github.com/dexkit/pokedex-api/internal/entities/dex"

// First-generation pokemon that do not evolve any further.
var noEvolutionIDs = map[int]bool{
	83: true, 106: true, 107: true, 108: true, 113: true, 115: true,
	122: true, 123: true, 124: true, 125: true, 126: true, 127: true,
	128: true, 129: true, 130: true, 131: true, 132: true, 133: true,
	134: true, 135: true, 136: true, 137: true, 138: true, 139: true,
	140: true, 141: true, 142: true, 143: true, 144: true, 145: true,
	146: true, 147: true, 148: true, 149: true, 150: true, 151: true,
}

var legendaryIDs = map[int]bool{
	144: true, 145: true, 146: true, 150: true, 151: true,
}

// score rates one pokemon against the answers. The simple mode weighs the
// core questions more heavily; the detailed mode spreads weight across all
// ten and adds the detail-only rules.
func score(p *dex.Pokemon, answers Answers, mode Mode) float64 {
	simple := mode == ModeSimple
	total := float64(p.TotalStats())
	s := 0.0

	if t := answers[QuestionFavoriteType]; t != "" && p.HasType(t) {
		s += pick(simple, 40, 30)
	}

	switch answers[QuestionPersonality] {
	case "aggressive":
		s += float64(p.StatValue(dex.StatAttack)) * pick(simple, 0.4, 0.3)
	case "defensive":
		s += float64(p.StatValue(dex.StatDefense)+p.StatValue(dex.StatHP)) * pick(simple, 0.25, 0.2)
	case "speed":
		s += float64(p.StatValue(dex.StatSpeed)) * pick(simple, 0.4, 0.3)
	case "special":
		s += float64(p.StatValue(dex.StatSpecialAttack)) * pick(simple, 0.4, 0.3)
	case "balanced":
		s += total * pick(simple, 0.06, 0.05)
	}

	switch answers[QuestionPreference] {
	case "cute":
		if p.Height < 0.5 {
			s += pick(simple, 25, 20)
		}
		if p.HasType(dex.TypeFairy) || p.HasType(dex.TypeNormal) {
			s += pick(simple, 15, 10)
		}
	case "cool":
		if p.HasType(dex.TypeDragon) || p.HasType(dex.TypeFire) || p.HasType(dex.TypeElectric) {
			s += pick(simple, 20, 15)
		}
	case "strong":
		if total > 500 {
			s += pick(simple, 25, 20)
		}
	case "mysterious":
		if p.HasType(dex.TypeGhost) || p.HasType(dex.TypePsychic) || p.HasType(dex.TypeDark) {
			s += pick(simple, 20, 15)
		}
	case "elegant":
		if p.HasType(dex.TypeFairy) || p.HasType(dex.TypePsychic) {
			s += pick(simple, 20, 15)
		}
	}

	if !simple {
		switch answers[QuestionSize] {
		case "small":
			if p.Height < 0.5 {
				s += 20
			}
		case "medium":
			if p.Height >= 0.5 && p.Height < 1.5 {
				s += 20
			}
		case "large":
			if p.Height >= 1.5 {
				s += 20
			}
		}
	}

	if stat := answers[QuestionImportantStat]; stat != "" {
		s += float64(p.StatValue(stat)) * pick(simple, 0.3, 0.4)
	}

	if !simple {
		switch answers[QuestionBattleStyle] {
		case "first-strike":
			s += float64(p.StatValue(dex.StatSpeed)) * 0.2
		case "endurance":
			s += float64(p.StatValue(dex.StatHP)+p.StatValue(dex.StatDefense)) * 0.15
		case "one-hit":
			s += float64(max(p.StatValue(dex.StatAttack), p.StatValue(dex.StatSpecialAttack))) * 0.2
		case "versatile":
			s += total * 0.03
		}

		switch answers[QuestionEvolutionStage] {
		case "basic":
			if p.ID <= dex.CatalogSize && p.ID%3 == 1 {
				s += 15
			}
		case "final":
			if p.ID <= dex.CatalogSize && p.ID%3 == 0 {
				s += 15
			}
		case "no-evolution":
			if noEvolutionIDs[p.ID] {
				s += 15
			}
		}

		switch answers[QuestionWeightPreference] {
		case "light":
			if p.Weight < 10 {
				s += 15
			}
		case "medium":
			if p.Weight >= 10 && p.Weight < 50 {
				s += 15
			}
		case "heavy":
			if p.Weight >= 50 {
				s += 15
			}
		}

		switch answers[QuestionRarity] {
		case "legendary":
			if legendaryIDs[p.ID] || total > 580 {
				s += 20
			}
		case "common":
			if total < 400 {
				s += 15
			}
		case "rare":
			if total >= 400 && total <= 580 {
				s += 15
			}
		}

		switch answers[QuestionPurpose] {
		case "battle":
			if total > 450 {
				s += 15
			}
		case "care":
			if p.Height < 0.6 || p.HasType(dex.TypeFairy) || p.HasType(dex.TypeNormal) {
				s += 15
			}
		case "collection":
			s += 10
		case "adventure":
			if total >= 350 && total <= 550 {
				s += 15
			}
		}
	}

	return s
}

func pick(simple bool, simpleValue, detailedValue float64) float64 {
	if simple {
		return simpleValue
	}
	return detailedValue
}
