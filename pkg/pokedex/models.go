package pokedex

// ListingEntry is one creature in the index listing.
type ListingEntry struct {
	ID        string     `json:"id"`         // Trailing path segment of SourceURL, e.g. "25"
	Name      string     `json:"name"`       // Display name, e.g. "Mr Mime"
	Slug      string     `json:"slug"`       // Upstream name, e.g. "mr-mime"
	Species   string     `json:"species"`    // Species name, e.g. "deoxys" for "deoxys-normal"
	ImageURL  string     `json:"image_url"`  // Official artwork URL
	SourceURL string     `json:"source_url"` // Upstream resource URL
	Types     []TypeSlot `json:"types"`      // Ordered by slot
}

// TypeSlot is one of a creature's elemental types.
// Slot is 1-based and unique within a creature's type list.
type TypeSlot struct {
	Slot     int    `json:"slot"`
	TypeName string `json:"type_name"`
}

// DetailRecord is the normalized detail view of one creature.
type DetailRecord struct {
	ID        int            `json:"id"`
	Name      string         `json:"name"`
	Slug      string         `json:"slug"`
	Height    int            `json:"height"` // decimetres
	Weight    int            `json:"weight"` // hectograms
	Types     []TypeSlot     `json:"types"`
	Stats     []StatEntry    `json:"stats"`
	Abilities []AbilityEntry `json:"abilities"`
	Sprites   SpriteURLs     `json:"sprites"`
}

// StatEntry is one base stat with its display form.
type StatEntry struct {
	BaseValue         int    `json:"base_value"`
	DisplayPercentage int    `json:"display_percentage"` // in [0,100]
	DisplayName       string `json:"display_name"`
}

// AbilityEntry is one ability with a display-formatted name.
type AbilityEntry struct {
	Name      string `json:"name"`
	SourceURL string `json:"source_url"`
	IsHidden  bool   `json:"is_hidden"`
}

// SpriteURLs holds image links for a creature. Either may be empty.
type SpriteURLs struct {
	FrontDefault    string `json:"front_default"`
	OfficialArtwork string `json:"official_artwork"`
}

// TypeCategory lists the species carrying one elemental type.
type TypeCategory struct {
	Name        string   `json:"name"`
	MemberNames []string `json:"member_names"`
}

// GenerationGroup describes one game generation and its species.
type GenerationGroup struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Games       []string `json:"games"`
	MainRegion  string   `json:"main_region"`
	MemberNames []string `json:"member_names"`
}
