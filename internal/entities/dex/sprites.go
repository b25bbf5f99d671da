package dex

// SpriteSet holds the resolved image variants for one entity, keyed by
// orientation (front/back), sex (default/female), and motion
// (static/animated). FrontDefault is the only slot guaranteed non-empty;
// every other slot may be absent (empty string).
type SpriteSet struct {
	FrontDefault         string
	FrontDefaultAnimated string
	FrontFemale          string
	FrontFemaleAnimated  string
	BackDefault          string
	BackDefaultAnimated  string
	BackFemale           string
	BackFemaleAnimated   string
}

// Sprite slot identifiers
const (
	SlotFrontDefault         = "front/default/static"
	SlotFrontDefaultAnimated = "front/default/animated"
	SlotFrontFemale          = "front/female/static"
	SlotFrontFemaleAnimated  = "front/female/animated"
	SlotBackDefault          = "back/default/static"
	SlotBackDefaultAnimated  = "back/default/animated"
	SlotBackFemale           = "back/female/static"
	SlotBackFemaleAnimated   = "back/female/animated"
)

// Slot returns the resolved reference for the named slot, or "" if absent
func (s SpriteSet) Slot(name string) string {
	switch name {
	case SlotFrontDefault:
		return s.FrontDefault
	case SlotFrontDefaultAnimated:
		return s.FrontDefaultAnimated
	case SlotFrontFemale:
		return s.FrontFemale
	case SlotFrontFemaleAnimated:
		return s.FrontFemaleAnimated
	case SlotBackDefault:
		return s.BackDefault
	case SlotBackDefaultAnimated:
		return s.BackDefaultAnimated
	case SlotBackFemale:
		return s.BackFemale
	case SlotBackFemaleAnimated:
		return s.BackFemaleAnimated
	default:
		return ""
	}
}

// Available lists the slot names that resolved to a non-empty reference
func (s SpriteSet) Available() []string {
	all := []string{
		SlotFrontDefault,
		SlotFrontDefaultAnimated,
		SlotFrontFemale,
		SlotFrontFemaleAnimated,
		SlotBackDefault,
		SlotBackDefaultAnimated,
		SlotBackFemale,
		SlotBackFemaleAnimated,
	}
	var out []string
	for _, name := range all {
		if s.Slot(name) != "" {
			out = append(out, name)
		}
	}
	return out
}
