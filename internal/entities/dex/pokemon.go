// Package dex implements the normalized catalog entities.
package dex

// Pokemon is the canonical per-creature record. It is built once by the
// PokeAPI client's normalizer and is immutable after construction.
// NOTE: This is a data-only struct; scoring and comparison logic live in the
// orchestrator packages.
type Pokemon struct {
	ID          int
	Name        string // canonical (API) name
	DisplayName string // localized name, falls back to Name

	// Types has 1 or 2 entries; the first is the primary type.
	// TypeNames holds the localized labels, index-parallel to Types.
	Types     []string
	TypeNames []string

	// Height in meters, Weight in kilograms (source stores decimeters and
	// hectograms; both divided by 10, never rounded).
	Height float64
	Weight float64

	Abilities    []string
	AbilityNames []string

	// Stats always has exactly 6 entries in StatOrder.
	Stats []Stat

	Sprites SpriteSet
	Gender  GenderProfile

	// Legacy single-image fields kept for simpler consumers; they mirror
	// Sprites.FrontDefault and Sprites.FrontDefaultAnimated.
	Image         string
	ImageAnimated string
}

// Stat is one named base-stat value
type Stat struct {
	Name  string
	Value int
}

// TotalStats returns the aggregate strength: the sum of all six stat values
func (p *Pokemon) TotalStats() int {
	total := 0
	for _, s := range p.Stats {
		total += s.Value
	}
	return total
}

// StatValue returns the value of the named stat, or 0 if absent
func (p *Pokemon) StatValue(name string) int {
	for _, s := range p.Stats {
		if s.Name == name {
			return s.Value
		}
	}
	return 0
}

// HasType reports whether t is one of the entity's type tags
func (p *Pokemon) HasType(t string) bool {
	for _, pt := range p.Types {
		if pt == t {
			return true
		}
	}
	return false
}

// PrimaryType returns the first type tag; flavor-text rules key off it
func (p *Pokemon) PrimaryType() string {
	if len(p.Types) == 0 {
		return ""
	}
	return p.Types[0]
}

// Ref is a lightweight catalog reference: enough to list and to fetch
type Ref struct {
	ID          int
	Name        string
	DisplayName string
}
