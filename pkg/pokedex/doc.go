// Package pokedex turns PokeAPI payloads into display-ready records.
//
// # Overview
//
// The package has two layers:
//
//   - Normalizer functions ([FormatDisplayName], [FormatStatLabel],
//     [StatPercentage], [ImageURL], [ExtractID]) are pure transforms with
//     no I/O.
//   - [Service] aggregates several upstream fetches into one collection,
//     running independent fetches concurrently and keeping upstream order.
//
// # Failure Policy
//
// Each aggregator comes in two forms. The plain form (ListAll, GetDetail,
// ...) logs failures and returns an empty collection or absent value, so a
// caller cannot tell "no data" from "fetch failed". The E form (ListAllE,
// GetDetailE, ...) returns the underlying error for callers that need it.
//
//	svc := pokedex.NewService(api, pokedex.Options{}, logger)
//	entries := svc.ListAll(ctx, 151)
//	detail, ok := svc.GetDetail(ctx, "25")
//	if !ok {
//	    // render a not-found page
//	}
//
// # Concurrency
//
// Fan-out uses errgroup with a bounded number of goroutines
// ([Options.Concurrency]). Results are written into pre-sized slices by
// index, so completion order never affects output order.
package pokedex
