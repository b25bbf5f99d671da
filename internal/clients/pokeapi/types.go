package pokeapi

// Raw payload schemas for the PokeAPI endpoints this client consumes.
// Fields not listed here are ignored on decode. Sprite fields are null for
// many entries upstream; decoding null into a string leaves it empty, which
// is exactly the "absent" representation the resolver expects.

type listResponse struct {
	Count   int           `json:"count"`
	Results []resourceRef `json:"results"`
}

type resourceRef struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type namedResource struct {
	Name string `json:"name"`
}

type localizedName struct {
	Name     string        `json:"name"`
	Language namedResource `json:"language"`
}

type pokemonPayload struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	Height    int             `json:"height"` // decimeters
	Weight    int             `json:"weight"` // hectograms
	Types     []typeSlot      `json:"types"`
	Abilities []abilitySlot   `json:"abilities"`
	Stats     []statEntry     `json:"stats"`
	Sprites   spritesPayload  `json:"sprites"`
}

type typeSlot struct {
	Slot int           `json:"slot"`
	Type namedResource `json:"type"`
}

type abilitySlot struct {
	Slot    int           `json:"slot"`
	Ability namedResource `json:"ability"`
}

type statEntry struct {
	BaseStat int           `json:"base_stat"`
	Stat     namedResource `json:"stat"`
}

type spritesPayload struct {
	FrontDefault string `json:"front_default"`
	FrontFemale  string `json:"front_female"`
	BackDefault  string `json:"back_default"`
	BackFemale   string `json:"back_female"`
	Other        struct {
		OfficialArtwork struct {
			FrontDefault string `json:"front_default"`
		} `json:"official-artwork"`
	} `json:"other"`
	Versions struct {
		GenerationV struct {
			BlackWhite struct {
				Animated animatedSprites `json:"animated"`
			} `json:"black-white"`
		} `json:"generation-v"`
	} `json:"versions"`
}

type animatedSprites struct {
	FrontDefault string `json:"front_default"`
	FrontFemale  string `json:"front_female"`
	BackDefault  string `json:"back_default"`
	BackFemale   string `json:"back_female"`
}

type speciesPayload struct {
	Name       string          `json:"name"`
	GenderRate int             `json:"gender_rate"`
	Names      []localizedName `json:"names"`
}

type typePayload struct {
	Names []localizedName `json:"names"`
}

type abilityPayload struct {
	Names []localizedName `json:"names"`
}
