package comparison

import "github.com/dexkit/pokedex-api/internal/entities/dex"

// Simplified first-generation style effectiveness chart. Each attacking
// type lists the defending types it hits for double or half damage;
// anything unlisted is neutral. Immunities are folded into neutral.
var superEffective = map[string][]string{
	dex.TypeFire:     {dex.TypeGrass, dex.TypeBug, dex.TypeIce, dex.TypeSteel},
	dex.TypeWater:    {dex.TypeFire, dex.TypeGround, dex.TypeRock},
	dex.TypeElectric: {dex.TypeWater, dex.TypeFlying},
	dex.TypeGrass:    {dex.TypeWater, dex.TypeGround, dex.TypeRock},
	dex.TypeIce:      {dex.TypeGrass, dex.TypeGround, dex.TypeFlying, dex.TypeDragon},
	dex.TypeFighting: {dex.TypeNormal, dex.TypeIce, dex.TypeRock, dex.TypeDark, dex.TypeSteel},
	dex.TypePoison:   {dex.TypeGrass, dex.TypeFairy},
	dex.TypeGround:   {dex.TypeFire, dex.TypeElectric, dex.TypePoison, dex.TypeRock, dex.TypeSteel},
	dex.TypeFlying:   {dex.TypeGrass, dex.TypeFighting, dex.TypeBug},
	dex.TypePsychic:  {dex.TypeFighting, dex.TypePoison},
	dex.TypeBug:      {dex.TypeGrass, dex.TypePsychic, dex.TypeDark},
	dex.TypeRock:     {dex.TypeFire, dex.TypeIce, dex.TypeFlying, dex.TypeBug},
	dex.TypeGhost:    {dex.TypePsychic, dex.TypeGhost},
	dex.TypeDragon:   {dex.TypeDragon},
	dex.TypeDark:     {dex.TypePsychic, dex.TypeGhost},
	dex.TypeSteel:    {dex.TypeIce, dex.TypeRock, dex.TypeFairy},
	dex.TypeFairy:    {dex.TypeFighting, dex.TypeDragon, dex.TypeDark},
}

var notVeryEffective = map[string][]string{
	dex.TypeFire:     {dex.TypeFire, dex.TypeWater, dex.TypeRock, dex.TypeDragon},
	dex.TypeWater:    {dex.TypeWater, dex.TypeGrass, dex.TypeDragon},
	dex.TypeElectric: {dex.TypeElectric, dex.TypeGrass, dex.TypeDragon},
	dex.TypeGrass:    {dex.TypeFire, dex.TypeGrass, dex.TypePoison, dex.TypeFlying, dex.TypeBug, dex.TypeDragon, dex.TypeSteel},
	dex.TypeIce:      {dex.TypeFire, dex.TypeWater, dex.TypeIce, dex.TypeSteel},
	dex.TypeFighting: {dex.TypePoison, dex.TypeFlying, dex.TypePsychic, dex.TypeBug, dex.TypeFairy},
	dex.TypePoison:   {dex.TypePoison, dex.TypeGround, dex.TypeRock, dex.TypeGhost},
	dex.TypeGround:   {dex.TypeGrass, dex.TypeBug},
	dex.TypeFlying:   {dex.TypeElectric, dex.TypeRock, dex.TypeSteel},
	dex.TypePsychic:  {dex.TypePsychic, dex.TypeSteel},
	dex.TypeBug:      {dex.TypeFire, dex.TypeFighting, dex.TypePoison, dex.TypeFlying, dex.TypeGhost, dex.TypeSteel, dex.TypeFairy},
	dex.TypeRock:     {dex.TypeFighting, dex.TypeGround, dex.TypeSteel},
	dex.TypeGhost:    {dex.TypeDark},
	dex.TypeDragon:   {dex.TypeSteel},
	dex.TypeDark:     {dex.TypeFighting, dex.TypeDark, dex.TypeFairy},
	dex.TypeSteel:    {dex.TypeFire, dex.TypeWater, dex.TypeElectric, dex.TypeSteel},
	dex.TypeFairy:    {dex.TypeFire, dex.TypePoison, dex.TypeSteel},
}

// typeEffectiveness compounds one attacking type against every defending
// type: x2 per super-effective hit, x0.5 per resisted hit.
func typeEffectiveness(attackType string, defenderTypes []string) float64 {
	multiplier := 1.0
	for _, defender := range defenderTypes {
		if contains(superEffective[attackType], defender) {
			multiplier *= 2
		}
		if contains(notVeryEffective[attackType], defender) {
			multiplier *= 0.5
		}
	}
	return multiplier
}

// attackEffectiveness compounds every attacking type of one side against
// the other side's type set.
func attackEffectiveness(attackerTypes, defenderTypes []string) float64 {
	multiplier := 1.0
	for _, attack := range attackerTypes {
		multiplier *= typeEffectiveness(attack, defenderTypes)
	}
	return multiplier
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
