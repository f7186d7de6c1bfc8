package pokeapi

import (
	"errors"
	"fmt"
)

// NamedResource is PokeAPI's {name, url} reference to another resource.
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

func (r NamedResource) validate(what string) error {
	if r.Name == "" {
		return fmt.Errorf("%s: missing name", what)
	}
	if r.URL == "" {
		return fmt.Errorf("%s %q: missing url", what, r.Name)
	}
	return nil
}

// ResourceList is a paginated list of named resources. Both the pokemon
// listing and the type catalog use this shape.
type ResourceList struct {
	Count   int             `json:"count"`
	Results []NamedResource `json:"results"`
}

// Validate checks that every result carries a name and url.
func (l *ResourceList) Validate() error {
	if l.Results == nil {
		return errors.New("missing results")
	}
	for i, r := range l.Results {
		if err := r.validate(fmt.Sprintf("results[%d]", i)); err != nil {
			return err
		}
	}
	return nil
}

// Pokemon is the detail resource at /pokemon/{id}.
type Pokemon struct {
	ID        int              `json:"id"`
	Name      string           `json:"name"`
	Height    int              `json:"height"` // decimetres
	Weight    int              `json:"weight"` // hectograms
	Types     []PokemonType    `json:"types"`
	Stats     []PokemonStat    `json:"stats"`
	Abilities []PokemonAbility `json:"abilities"`
	Sprites   Sprites          `json:"sprites"`
	Species   NamedResource    `json:"species"` // e.g. "deoxys" for "deoxys-normal"
}

// PokemonType is one entry of a creature's type list.
type PokemonType struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

// PokemonStat is one base stat, e.g. {base_stat: 35, stat: {name: "hp"}}.
type PokemonStat struct {
	BaseStat int           `json:"base_stat"`
	Effort   int           `json:"effort"`
	Stat     NamedResource `json:"stat"`
}

// PokemonAbility is one ability slot.
type PokemonAbility struct {
	Ability  NamedResource `json:"ability"`
	IsHidden bool          `json:"is_hidden"`
	Slot     int           `json:"slot"`
}

// Sprites holds the image URLs used by the pokedex. Either may be empty;
// PokeAPI sends null for missing artwork.
type Sprites struct {
	FrontDefault string `json:"front_default"`
	Other        struct {
		OfficialArtwork struct {
			FrontDefault string `json:"front_default"`
		} `json:"official-artwork"`
	} `json:"other"`
}

// Validate checks identity fields and that type slots are 1-based and unique.
func (p *Pokemon) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("invalid id %d", p.ID)
	}
	if p.Name == "" {
		return errors.New("missing name")
	}
	seen := make(map[int]bool, len(p.Types))
	for _, t := range p.Types {
		if t.Slot < 1 {
			return fmt.Errorf("type %q: slot %d out of range", t.Type.Name, t.Slot)
		}
		if seen[t.Slot] {
			return fmt.Errorf("duplicate type slot %d", t.Slot)
		}
		seen[t.Slot] = true
		if t.Type.Name == "" {
			return fmt.Errorf("type slot %d: missing name", t.Slot)
		}
	}
	for i, s := range p.Stats {
		if s.Stat.Name == "" {
			return fmt.Errorf("stats[%d]: missing name", i)
		}
	}
	for i, a := range p.Abilities {
		if a.Ability.Name == "" {
			return fmt.Errorf("abilities[%d]: missing name", i)
		}
	}
	return nil
}

// Generation is the resource at /generation/{id}.
type Generation struct {
	ID             int             `json:"id"`
	Name           string          `json:"name"`
	MainRegion     NamedResource   `json:"main_region"`
	PokemonSpecies []NamedResource `json:"pokemon_species"`
}

// Validate checks the generation name and species references.
func (g *Generation) Validate() error {
	if g.Name == "" {
		return errors.New("missing name")
	}
	for i, s := range g.PokemonSpecies {
		if s.Name == "" {
			return fmt.Errorf("pokemon_species[%d]: missing name", i)
		}
	}
	return nil
}

// Pokedex is the regional dex resource at /pokedex/{name}.
type Pokedex struct {
	ID             int            `json:"id"`
	Name           string         `json:"name"`
	PokemonEntries []PokedexEntry `json:"pokemon_entries"`
}

// PokedexEntry numbers one species within a regional dex.
type PokedexEntry struct {
	EntryNumber    int           `json:"entry_number"`
	PokemonSpecies NamedResource `json:"pokemon_species"`
}

// Validate checks the dex name and species references.
func (d *Pokedex) Validate() error {
	if d.Name == "" {
		return errors.New("missing name")
	}
	for i, e := range d.PokemonEntries {
		if e.PokemonSpecies.Name == "" {
			return fmt.Errorf("pokemon_entries[%d]: missing species name", i)
		}
	}
	return nil
}

// SpeciesNames returns the species names in dex order.
func (d *Pokedex) SpeciesNames() []string {
	names := make([]string, len(d.PokemonEntries))
	for i, e := range d.PokemonEntries {
		names[i] = e.PokemonSpecies.Name
	}
	return names
}

// Type is the elemental type resource at /type/{name}.
type Type struct {
	ID      int          `json:"id"`
	Name    string       `json:"name"`
	Pokemon []TypeMember `json:"pokemon"`
}

// TypeMember is one creature carrying a type.
type TypeMember struct {
	Slot    int           `json:"slot"`
	Pokemon NamedResource `json:"pokemon"`
}

// Validate checks the type name and member references.
func (t *Type) Validate() error {
	if t.Name == "" {
		return errors.New("missing name")
	}
	for i, m := range t.Pokemon {
		if m.Pokemon.Name == "" {
			return fmt.Errorf("pokemon[%d]: missing name", i)
		}
	}
	return nil
}

// MemberNames returns the names of all creatures carrying the type.
func (t *Type) MemberNames() []string {
	names := make([]string, len(t.Pokemon))
	for i, m := range t.Pokemon {
		names[i] = m.Pokemon.Name
	}
	return names
}
