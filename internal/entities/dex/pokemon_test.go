package dex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dexkit/pokedex-api/internal/entities/dex"
)

func TestTotalStats(t *testing.T) {
	p := &dex.Pokemon{
		Stats: []dex.Stat{
			{Name: dex.StatHP, Value: 45},
			{Name: dex.StatAttack, Value: 49},
			{Name: dex.StatDefense, Value: 49},
			{Name: dex.StatSpecialAttack, Value: 65},
			{Name: dex.StatSpecialDefense, Value: 65},
			{Name: dex.StatSpeed, Value: 45},
		},
	}

	assert.Equal(t, 318, p.TotalStats())
	assert.Equal(t, 65, p.StatValue(dex.StatSpecialAttack))
	assert.Equal(t, 0, p.StatValue("evasion"))
}

func TestTypeHelpers(t *testing.T) {
	p := &dex.Pokemon{Types: []string{dex.TypeGrass, dex.TypePoison}}

	assert.Equal(t, dex.TypeGrass, p.PrimaryType())
	assert.True(t, p.HasType(dex.TypePoison))
	assert.False(t, p.HasType(dex.TypeFire))

	empty := &dex.Pokemon{}
	assert.Equal(t, "", empty.PrimaryType())
}

func TestSpriteSetSlots(t *testing.T) {
	s := dex.SpriteSet{
		FrontDefault:         "front.png",
		FrontDefaultAnimated: "front.gif",
		BackDefault:          "back.png",
	}

	assert.Equal(t, "front.png", s.Slot(dex.SlotFrontDefault))
	assert.Equal(t, "front.gif", s.Slot(dex.SlotFrontDefaultAnimated))
	assert.Equal(t, "", s.Slot(dex.SlotBackFemale))

	assert.Equal(t, []string{
		dex.SlotFrontDefault,
		dex.SlotFrontDefaultAnimated,
		dex.SlotBackDefault,
	}, s.Available())
}
