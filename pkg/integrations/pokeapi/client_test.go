package pokeapi_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/matzehuels/pokedex/pkg/buildinfo"
	"github.com/matzehuels/pokedex/pkg/cache"
	perrors "github.com/matzehuels/pokedex/pkg/errors"
	"github.com/matzehuels/pokedex/pkg/integrations/pokeapi"
	"github.com/matzehuels/pokedex/pkg/integrations/pokeapi/pokeapitest"
)

func newTestClient(t *testing.T) (*pokeapi.Client, *pokeapitest.Server) {
	t.Helper()
	srv := pokeapitest.NewServer()
	t.Cleanup(srv.Close)
	return pokeapi.NewClient(srv.BaseURL(), cache.NewMemoryCache(), 0), srv
}

func TestNewClientDefaultBaseURL(t *testing.T) {
	c := pokeapi.NewClient("", nil, 0)
	if c.BaseURL() != pokeapi.DefaultBaseURL {
		t.Errorf("BaseURL() = %q, want %q", c.BaseURL(), pokeapi.DefaultBaseURL)
	}

	c = pokeapi.NewClient("http://localhost:8000/api/v2/", nil, 0)
	if c.BaseURL() != "http://localhost:8000/api/v2" {
		t.Errorf("trailing slash not trimmed: %q", c.BaseURL())
	}
}

func TestFetchListing(t *testing.T) {
	client, srv := newTestClient(t)
	srv.AddPokemon(1, "bulbasaur", "grass", "poison")
	srv.AddPokemon(4, "charmander", "fire")
	srv.AddPokemon(7, "squirtle", "water")

	list, err := client.FetchListing(context.Background(), 2)
	if err != nil {
		t.Fatalf("FetchListing() error: %v", err)
	}
	if len(list.Results) != 2 {
		t.Fatalf("len(Results) = %d, want 2", len(list.Results))
	}
	if list.Results[0].Name != "bulbasaur" || list.Results[1].Name != "charmander" {
		t.Errorf("Results = %+v", list.Results)
	}
	if list.Results[1].URL != srv.ResourceURL("pokemon", "4") {
		t.Errorf("URL = %q", list.Results[1].URL)
	}
	if srv.Hits("/pokemon?limit=2") != 1 {
		t.Errorf("hits = %d, want 1", srv.Hits("/pokemon?limit=2"))
	}
}

func TestUserAgent(t *testing.T) {
	client, srv := newTestClient(t)
	srv.AddPokemon(25, "pikachu", "electric")

	if _, err := client.FetchPokemon(context.Background(), "pikachu"); err != nil {
		t.Fatalf("FetchPokemon() error: %v", err)
	}
	if got, want := srv.UserAgent(), buildinfo.UserAgent(); got != want {
		t.Errorf("User-Agent = %q, want %q", got, want)
	}
}

func TestFetchListingNegativeLimit(t *testing.T) {
	client, srv := newTestClient(t)

	_, err := client.FetchListing(context.Background(), -1)
	if !perrors.Is(err, perrors.ErrCodeInvalidInput) {
		t.Errorf("FetchListing(-1) error = %v, want INVALID_INPUT", err)
	}
	if srv.TotalHits() != 0 {
		t.Error("invalid input should not reach the server")
	}
}

func TestFetchPokemon(t *testing.T) {
	client, srv := newTestClient(t)
	srv.AddPokemon(25, "pikachu", "electric")

	tests := []struct {
		name string
		ref  string
	}{
		{"by id", "25"},
		{"by name", "pikachu"},
		{"mixed case", "  Pikachu "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mon, err := client.FetchPokemon(context.Background(), tt.ref)
			if err != nil {
				t.Fatalf("FetchPokemon(%q) error: %v", tt.ref, err)
			}
			if mon.ID != 25 || mon.Name != "pikachu" {
				t.Errorf("got %d %q", mon.ID, mon.Name)
			}
			if len(mon.Types) != 1 || mon.Types[0].Type.Name != "electric" || mon.Types[0].Slot != 1 {
				t.Errorf("Types = %+v", mon.Types)
			}
			if len(mon.Stats) != 6 {
				t.Errorf("len(Stats) = %d, want 6", len(mon.Stats))
			}
			if mon.Sprites.Other.OfficialArtwork.FrontDefault == "" {
				t.Error("official artwork sprite missing")
			}
		})
	}
}

func TestFetchPokemonNotFound(t *testing.T) {
	client, _ := newTestClient(t)

	_, err := client.FetchPokemon(context.Background(), "missingno")
	if !perrors.Is(err, perrors.ErrCodeNotFound) {
		t.Errorf("error = %v, want NOT_FOUND", err)
	}
	if perrors.Status(err) != http.StatusNotFound {
		t.Errorf("Status() = %d, want 404", perrors.Status(err))
	}
}

func TestFetchPokemonInvalidName(t *testing.T) {
	client, srv := newTestClient(t)

	for _, ref := range []string{"", "../type", "a/b"} {
		_, err := client.FetchPokemon(context.Background(), ref)
		if !perrors.Is(err, perrors.ErrCodeInvalidInput) {
			t.Errorf("FetchPokemon(%q) error = %v, want INVALID_INPUT", ref, err)
		}
	}
	if srv.TotalHits() != 0 {
		t.Error("invalid input should not reach the server")
	}
}

func TestFetchPokemonShapeMismatch(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `<html>oops</html>`},
		{"missing id", `{"name":"pikachu"}`},
		{"zero type slot", `{"id":25,"name":"pikachu","types":[{"slot":0,"type":{"name":"electric"}}]}`},
		{"duplicate slot", `{"id":6,"name":"charizard","types":[{"slot":1,"type":{"name":"fire"}},{"slot":1,"type":{"name":"flying"}}]}`},
		{"wrong field type", `{"id":"twenty-five","name":"pikachu"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, srv := newTestClient(t)
			srv.Respond("/pokemon/25", http.StatusOK, tt.body)

			_, err := client.FetchPokemon(context.Background(), "25")
			if !perrors.Is(err, perrors.ErrCodeParse) {
				t.Errorf("error = %v, want PARSE_ERROR", err)
			}
		})
	}
}

func TestFetchPokemonCached(t *testing.T) {
	client, srv := newTestClient(t)
	srv.AddPokemon(25, "pikachu", "electric")

	for range 3 {
		if _, err := client.FetchPokemon(context.Background(), "25"); err != nil {
			t.Fatal(err)
		}
	}
	if srv.Hits("/pokemon/25") != 1 {
		t.Errorf("hits = %d, want 1", srv.Hits("/pokemon/25"))
	}
}

func TestFetchGeneration(t *testing.T) {
	client, srv := newTestClient(t)
	srv.AddGeneration(1, "kanto", "bulbasaur", "ivysaur")

	gen, err := client.FetchGeneration(context.Background(), 1)
	if err != nil {
		t.Fatalf("FetchGeneration() error: %v", err)
	}
	if gen.MainRegion.Name != "kanto" || len(gen.PokemonSpecies) != 2 {
		t.Errorf("got %+v", gen)
	}

	if _, err := client.FetchGeneration(context.Background(), 0); !perrors.Is(err, perrors.ErrCodeInvalidInput) {
		t.Errorf("FetchGeneration(0) error = %v, want INVALID_INPUT", err)
	}
	if _, err := client.FetchGeneration(context.Background(), 9); !perrors.Is(err, perrors.ErrCodeNotFound) {
		t.Errorf("FetchGeneration(9) error = %v, want NOT_FOUND", err)
	}
}

func TestFetchPokedex(t *testing.T) {
	client, srv := newTestClient(t)
	srv.AddPokedex("kanto", "bulbasaur", "ivysaur", "venusaur")

	dex, err := client.FetchPokedex(context.Background(), "Kanto")
	if err != nil {
		t.Fatalf("FetchPokedex() error: %v", err)
	}
	names := dex.SpeciesNames()
	if len(names) != 3 || names[0] != "bulbasaur" || names[2] != "venusaur" {
		t.Errorf("SpeciesNames() = %v", names)
	}
	if srv.Hits("/pokedex/kanto") != 1 {
		t.Error("region name should be lower-cased in the request path")
	}
}

func TestFetchTypeCatalogAndType(t *testing.T) {
	client, srv := newTestClient(t)
	srv.AddType("fire", "charmander", "vulpix")
	srv.AddType("unknown")

	catalog, err := client.FetchTypeCatalog(context.Background())
	if err != nil {
		t.Fatalf("FetchTypeCatalog() error: %v", err)
	}
	if len(catalog.Results) != 2 {
		t.Fatalf("len(Results) = %d, want 2", len(catalog.Results))
	}

	byURL, err := client.FetchType(context.Background(), catalog.Results[0].URL)
	if err != nil {
		t.Fatalf("FetchType(url) error: %v", err)
	}
	names := byURL.MemberNames()
	if len(names) != 2 || names[0] != "charmander" {
		t.Errorf("MemberNames() = %v", names)
	}

	byName, err := client.FetchType(context.Background(), "Fire")
	if err != nil {
		t.Fatalf("FetchType(name) error: %v", err)
	}
	if byName.Name != "fire" {
		t.Errorf("Name = %q", byName.Name)
	}
}

func TestFetchTypeRejectsBadScheme(t *testing.T) {
	client, _ := newTestClient(t)
	if _, err := client.FetchType(context.Background(), "file:///etc/passwd"); !perrors.Is(err, perrors.ErrCodeInvalidInput) {
		t.Errorf("error = %v, want INVALID_INPUT", err)
	}
}
