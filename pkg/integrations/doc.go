// Package integrations provides the shared HTTP fetch layer for upstream
// JSON APIs.
//
// # Overview
//
// The [Client] type issues GET requests, validates the response status,
// decodes JSON into typed records and caches raw bodies through a
// [cache.Cache]. API-specific clients embed it:
//
//   - [pokeapi]: the public Pokémon REST API
//
// # Failure Kinds
//
// Every request fails with one of three error codes from [errors]:
//
//   - NETWORK_ERROR when the transport fails
//   - API_ERROR (an [errors.APIError]) when the status is outside 2xx
//   - PARSE_ERROR when the body is not JSON or fails [Validator]
//
// A request is attempted once unless [WithRetries] is given. Retries apply
// only to transport failures and 5xx responses.
//
// # Caching
//
// [Client.Cached] implements get-or-fetch keyed by URL. The first call
// stores the raw body; later calls decode the stored copy. Concurrent calls
// for the same URL share one request.
//
//	client := integrations.NewClient(cache.NewMemoryCache(), "pokeapi", 0, nil)
//	var page Listing
//	err := client.Cached(ctx, "https://pokeapi.co/api/v2/pokemon?limit=20", &page)
//
// [pokeapi]: github.com/matzehuels/pokedex/pkg/integrations/pokeapi
// [cache.Cache]: github.com/matzehuels/pokedex/pkg/cache.Cache
// [errors]: github.com/matzehuels/pokedex/pkg/errors
// [errors.APIError]: github.com/matzehuels/pokedex/pkg/errors.APIError
package integrations
