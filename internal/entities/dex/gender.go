package dex

// GenderlessRate is the species gender-rate value meaning no gender concept
const GenderlessRate = -1

// GenderProfile describes which sex presentations exist for a species
type GenderProfile struct {
	HasMale    bool
	HasFemale  bool
	Genderless bool
}

// GenderFromRate derives the gender profile from the species gender rate.
// rate is -1 for genderless, otherwise 0..8 encoding the female fraction in
// eighths: 0 = always male, 8 = always female, anything between means both
// presentations occur.
func GenderFromRate(rate int) GenderProfile {
	if rate == GenderlessRate {
		return GenderProfile{Genderless: true}
	}
	return GenderProfile{
		HasMale:   rate != 8,
		HasFemale: rate != 0,
	}
}
