package pokedex

import "strings"

// generation is a static row of the generations table. dex names the
// regional pokedex that lists the generation's species, which does not
// always match the region name upstream.
type generation struct {
	id     int
	name   string
	games  []string
	region string
	dex    string
}

var generations = []generation{
	{1, "Generation I", []string{"Red", "Blue", "Yellow"}, "Kanto", "kanto"},
	{2, "Generation II", []string{"Gold", "Silver", "Crystal"}, "Johto", "original-johto"},
	{3, "Generation III", []string{"Ruby", "Sapphire", "Emerald"}, "Hoenn", "hoenn"},
	{4, "Generation IV", []string{"Diamond", "Pearl", "Platinum"}, "Sinnoh", "original-sinnoh"},
	{5, "Generation V", []string{"Black", "White", "Black 2", "White 2"}, "Unova", "original-unova"},
	{6, "Generation VI", []string{"X", "Y", "Omega Ruby", "Alpha Sapphire"}, "Kalos", "kalos-central"},
	{7, "Generation VII", []string{"Sun", "Moon", "Ultra Sun", "Ultra Moon"}, "Alola", "original-alola"},
	{8, "Generation VIII", []string{"Sword", "Shield"}, "Galar", "galar"},
}

// Regions returns the main region of every known generation, in
// generation order.
func Regions() []string {
	out := make([]string, len(generations))
	for i, g := range generations {
		out[i] = g.region
	}
	return out
}

func (g generation) group(members []string) GenerationGroup {
	if members == nil {
		members = []string{}
	}
	return GenerationGroup{
		ID:          g.id,
		Name:        g.name,
		Games:       append([]string(nil), g.games...),
		MainRegion:  g.region,
		MemberNames: members,
	}
}

func findGeneration(id int) (generation, bool) {
	for _, g := range generations {
		if g.id == id {
			return g, true
		}
	}
	return generation{}, false
}

// dexName maps a region name to the pokedex that lists its species.
// Regions outside the generations table are passed through lower-cased.
func dexName(region string) string {
	region = strings.ToLower(strings.TrimSpace(region))
	for _, g := range generations {
		if strings.ToLower(g.region) == region {
			return g.dex
		}
	}
	return region
}
