// Package pokeapi provides a client for the public PokeAPI REST service.
//
// # Overview
//
// PokeAPI (https://pokeapi.co) serves Pokémon data as JSON. This client
// covers the resources the pokedex needs:
//
//   - /pokemon?limit=N: the listing of all creatures
//   - /pokemon/{id}: per-creature detail (types, stats, abilities, sprites)
//   - /generation/{id}: species introduced in a generation
//   - /pokedex/{region}: species of a regional dex
//   - /type/ and /type/{name}: the type catalog and its members
//
// # Usage
//
//	client := pokeapi.NewClient("", cache.NewMemoryCache(), 0)
//	mon, err := client.FetchPokemon(ctx, "25")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(mon.Name) // pikachu
//
// # Validation
//
// Every response type implements [integrations.Validator]. A payload that
// decodes but is missing required fields fails with PARSE_ERROR instead of
// reaching callers half-filled.
//
// # Caching
//
// Responses are cached by URL through the embedded [integrations.Client].
// Two calls for the same resource cost one request.
//
// [integrations.Validator]: github.com/matzehuels/pokedex/pkg/integrations.Validator
// [integrations.Client]: github.com/matzehuels/pokedex/pkg/integrations.Client
package pokeapi
