// Package pkg provides the core libraries for the pokedex data layer.
//
// # Overview
//
// Pokedex fetches creature data from PokeAPI, normalizes it into display
// records, and aggregates it into listing, detail and category views. The
// pkg directory is organized into four main areas:
//
//  1. [pokedex] - Domain logic (normalizer, aggregators, filter)
//  2. [integrations] - External API clients (the fetch layer and PokeAPI)
//  3. [cache] - Response caching (memory, file, redis, mongo)
//  4. [errors], [observability], [buildinfo] - Shared infrastructure
//
// # Architecture
//
// The typical data flow:
//
//	PokeAPI
//	   ↓
//	[integrations/pokeapi] package (typed resources, validated)
//	   ↓  raw JSON is cached by [integrations.Client] in a [cache.Cache]
//	[pokedex] package (fan-out, normalize, preserve order)
//	   ↓
//	ListingEntry / DetailRecord / TypeCategory / GenerationGroup
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/pokedex/pkg/cache"
//	    "github.com/matzehuels/pokedex/pkg/integrations/pokeapi"
//	    "github.com/matzehuels/pokedex/pkg/pokedex"
//	)
//
//	api := pokeapi.NewClient("", cache.NewMemoryCache(), 0)
//	svc := pokedex.NewService(api, pokedex.Options{}, nil)
//
//	entries := svc.ListAll(ctx, 151)
//	detail, ok := svc.GetDetail(ctx, "pikachu")
//
// # Main Packages
//
// [pokedex] - Aggregators over the fetch layer. ListAll and the category
// views fan out sub-fetches concurrently with a bound and keep upstream
// order. Failures yield empty results; the E-suffixed variants surface the
// error instead.
//
// [integrations] - Shared HTTP client: cache-first reads, in-flight
// de-duplication, opt-in retries, and the NETWORK / API / PARSE error
// classification. [integrations/pokeapi] adds typed PokeAPI resources and a
// fake server for tests in pokeapitest.
//
// [cache] - The Cache interface with four backends: MemoryCache (default,
// process lifetime), FileCache (CLI runs), RedisCache and MongoCache
// (shared between `pokedex serve` instances).
//
// [observability] - Hook interfaces for cache, HTTP and aggregation events.
//
// # Testing
//
// Run tests:
//
//	go test ./...                        # All tests
//	go test ./pkg/pokedex/...            # Specific package
//	go test -run Example ./pkg/...       # Examples only
//	go test -tags integration ./pkg/...  # Include redis and mongo tests
//
// [pokedex]: https://pkg.go.dev/github.com/matzehuels/pokedex/pkg/pokedex
// [integrations]: https://pkg.go.dev/github.com/matzehuels/pokedex/pkg/integrations
// [integrations/pokeapi]: https://pkg.go.dev/github.com/matzehuels/pokedex/pkg/integrations/pokeapi
// [cache]: https://pkg.go.dev/github.com/matzehuels/pokedex/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/pokedex/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/pokedex/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/pokedex/pkg/buildinfo
//
// [integrations.Client]: https://pkg.go.dev/github.com/matzehuels/pokedex/pkg/integrations#Client
// [cache.Cache]: https://pkg.go.dev/github.com/matzehuels/pokedex/pkg/cache#Cache
package pkg
