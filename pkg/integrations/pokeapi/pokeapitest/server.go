// Package pokeapitest provides an in-process PokeAPI stand-in for tests.
//
// The server answers the routes used by [pokeapi.Client] from fixtures
// registered by the test and counts every request, so tests can assert how
// many upstream calls an operation made.
//
//	srv := pokeapitest.NewServer()
//	defer srv.Close()
//	srv.AddPokemon(25, "pikachu", "electric")
//	client := pokeapi.NewClient(srv.BaseURL(), cache.NewMemoryCache(), 0)
//
// [pokeapi.Client]: github.com/matzehuels/pokedex/pkg/integrations/pokeapi.Client
package pokeapitest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/pokedex/pkg/integrations/pokeapi"
)

const apiPrefix = "/api/v2"

type override struct {
	status int
	body   string
}

// Server is a fake PokeAPI backed by [httptest.Server].
// Fixture methods may be called while the server is running.
type Server struct {
	*httptest.Server

	mu          sync.Mutex
	pokemon     []pokeapi.Pokemon
	types       []string
	typeMembers map[string][]string
	generations map[int]pokeapi.Generation
	dexes       map[string][]string
	overrides   map[string]override
	hits        map[string]int
	total       int
	userAgent   string
}

// NewServer starts a Server. Callers must Close it.
func NewServer() *Server {
	s := &Server{
		typeMembers: make(map[string][]string),
		generations: make(map[int]pokeapi.Generation),
		dexes:       make(map[string][]string),
		overrides:   make(map[string]override),
		hits:        make(map[string]int),
	}

	r := chi.NewRouter()
	r.Use(s.record, middleware.StripSlashes)
	r.Route(apiPrefix, func(r chi.Router) {
		r.Get("/pokemon", s.listing)
		r.Get("/pokemon/{ref}", s.detail)
		r.Get("/type", s.typeCatalog)
		r.Get("/type/{name}", s.typeDetail)
		r.Get("/generation/{id}", s.generation)
		r.Get("/pokedex/{name}", s.pokedex)
	})
	s.Server = httptest.NewServer(r)
	return s
}

// BaseURL returns the API root to pass to [pokeapi.NewClient].
func (s *Server) BaseURL() string { return s.URL + apiPrefix }

// ResourceURL returns the absolute URL of a resource, with the trailing
// slash PokeAPI puts on references.
func (s *Server) ResourceURL(kind, name string) string {
	return fmt.Sprintf("%s/%s/%s/", s.BaseURL(), kind, name)
}

// AddPokemon registers a creature with default stats and abilities.
// Types are assigned slots in the order given. The creature is appended to
// the listing.
func (s *Server) AddPokemon(id int, name string, types ...string) {
	p := pokeapi.Pokemon{
		ID:      id,
		Name:    name,
		Height:  4,
		Weight:  60,
		Species: pokeapi.NamedResource{Name: name, URL: s.ResourceURL("pokemon-species", strconv.Itoa(id))},
		Stats: []pokeapi.PokemonStat{
			{BaseStat: 35, Stat: pokeapi.NamedResource{Name: "hp"}},
			{BaseStat: 55, Stat: pokeapi.NamedResource{Name: "attack"}},
			{BaseStat: 40, Stat: pokeapi.NamedResource{Name: "defense"}},
			{BaseStat: 50, Stat: pokeapi.NamedResource{Name: "special-attack"}},
			{BaseStat: 50, Stat: pokeapi.NamedResource{Name: "special-defense"}},
			{BaseStat: 90, Stat: pokeapi.NamedResource{Name: "speed"}},
		},
		Abilities: []pokeapi.PokemonAbility{
			{Ability: pokeapi.NamedResource{Name: "static", URL: s.ResourceURL("ability", "9")}, Slot: 1},
			{Ability: pokeapi.NamedResource{Name: "lightning-rod", URL: s.ResourceURL("ability", "31")}, IsHidden: true, Slot: 3},
		},
	}
	for i, t := range types {
		p.Types = append(p.Types, pokeapi.PokemonType{
			Slot: i + 1,
			Type: pokeapi.NamedResource{Name: t, URL: s.ResourceURL("type", t)},
		})
	}
	p.Sprites.FrontDefault = fmt.Sprintf("https://sprites.test/%d.png", id)
	p.Sprites.Other.OfficialArtwork.FrontDefault = fmt.Sprintf("https://sprites.test/official/%d.png", id)
	s.AddPokemonDetail(p)
}

// AddPokemonDetail registers a fully specified creature.
func (s *Server) AddPokemonDetail(p pokeapi.Pokemon) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pokemon = append(s.pokemon, p)
}

// AddType registers a type and its members. Types appear in the catalog
// in registration order.
func (s *Server) AddType(name string, members ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.typeMembers[name]; !ok {
		s.types = append(s.types, name)
	}
	s.typeMembers[name] = members
}

// AddGeneration registers generation id with its species.
func (s *Server) AddGeneration(id int, region string, species ...string) {
	gen := pokeapi.Generation{
		ID:         id,
		Name:       "generation-" + strconv.Itoa(id),
		MainRegion: pokeapi.NamedResource{Name: region, URL: s.ResourceURL("region", region)},
	}
	for _, sp := range species {
		gen.PokemonSpecies = append(gen.PokemonSpecies, pokeapi.NamedResource{Name: sp, URL: s.ResourceURL("pokemon-species", sp)})
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generations[id] = gen
}

// AddPokedex registers a regional dex with its species in dex order.
func (s *Server) AddPokedex(name string, species ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dexes[name] = species
}

// Respond overrides the response for path (relative to the API root,
// including any query string) with a fixed status and raw body.
func (s *Server) Respond(path string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides[path] = override{status: status, body: body}
}

// Fail makes path answer with status and its standard reason phrase.
func (s *Server) Fail(path string, status int) {
	s.Respond(path, status, http.StatusText(status))
}

// Hits returns how many requests were made for path (relative to the API
// root, including any query string).
func (s *Server) Hits(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[path]
}

// TotalHits returns the number of requests served.
func (s *Server) TotalHits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

// UserAgent returns the User-Agent of the most recent request.
func (s *Server) UserAgent() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userAgent
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := strings.TrimPrefix(r.URL.RequestURI(), apiPrefix)

		s.mu.Lock()
		s.hits[key]++
		s.total++
		s.userAgent = r.UserAgent()
		o, overridden := s.overrides[key]
		s.mu.Unlock()

		if overridden {
			w.WriteHeader(o.status)
			fmt.Fprint(w, o.body)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) listing(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	limit := len(s.pokemon)
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "bad limit", http.StatusBadRequest)
			return
		}
		limit = min(n, len(s.pokemon))
	}

	list := pokeapi.ResourceList{Count: len(s.pokemon), Results: []pokeapi.NamedResource{}}
	for _, p := range s.pokemon[:limit] {
		list.Results = append(list.Results, pokeapi.NamedResource{
			Name: p.Name,
			URL:  s.ResourceURL("pokemon", strconv.Itoa(p.ID)),
		})
	}
	writeJSON(w, list)
}

func (s *Server) detail(w http.ResponseWriter, r *http.Request) {
	ref := chi.URLParam(r, "ref")

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.pokemon {
		if strconv.Itoa(p.ID) == ref || p.Name == ref {
			writeJSON(w, p)
			return
		}
	}
	http.NotFound(w, r)
}

func (s *Server) typeCatalog(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := pokeapi.ResourceList{Count: len(s.types), Results: []pokeapi.NamedResource{}}
	for _, name := range s.types {
		list.Results = append(list.Results, pokeapi.NamedResource{Name: name, URL: s.ResourceURL("type", name)})
	}
	writeJSON(w, list)
}

func (s *Server) typeDetail(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	s.mu.Lock()
	defer s.mu.Unlock()
	members, ok := s.typeMembers[name]
	if !ok {
		http.NotFound(w, r)
		return
	}
	typ := pokeapi.Type{Name: name, Pokemon: []pokeapi.TypeMember{}}
	for _, m := range members {
		typ.Pokemon = append(typ.Pokemon, pokeapi.TypeMember{
			Slot:    1,
			Pokemon: pokeapi.NamedResource{Name: m, URL: s.ResourceURL("pokemon", m)},
		})
	}
	writeJSON(w, typ)
}

func (s *Server) generation(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	gen, ok := s.generations[id]
	if !ok {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, gen)
}

func (s *Server) pokedex(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	s.mu.Lock()
	defer s.mu.Unlock()
	species, ok := s.dexes[name]
	if !ok {
		http.NotFound(w, r)
		return
	}
	dex := pokeapi.Pokedex{Name: name, PokemonEntries: []pokeapi.PokedexEntry{}}
	for i, sp := range species {
		dex.PokemonEntries = append(dex.PokemonEntries, pokeapi.PokedexEntry{
			EntryNumber:    i + 1,
			PokemonSpecies: pokeapi.NamedResource{Name: sp, URL: s.ResourceURL("pokemon-species", sp)},
		})
	}
	writeJSON(w, dex)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
