package pokedex

import (
	"cmp"
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	perrors "github.com/matzehuels/pokedex/pkg/errors"
	"github.com/matzehuels/pokedex/pkg/integrations/pokeapi"
	"github.com/matzehuels/pokedex/pkg/observability"
)

const (
	// DefaultLimit is the listing size used when a caller passes 0.
	DefaultLimit = 1510

	// DefaultConcurrency bounds in-flight detail fetches per aggregation.
	DefaultConcurrency = 20
)

// pseudoTypes are catalog entries no creature can be filtered by.
var pseudoTypes = map[string]bool{"unknown": true, "shadow": true}

// Fetcher retrieves typed PokeAPI resources. [pokeapi.Client] implements it.
type Fetcher interface {
	FetchListing(ctx context.Context, limit int) (*pokeapi.ResourceList, error)
	FetchPokemon(ctx context.Context, idOrName string) (*pokeapi.Pokemon, error)
	FetchGeneration(ctx context.Context, id int) (*pokeapi.Generation, error)
	FetchPokedex(ctx context.Context, region string) (*pokeapi.Pokedex, error)
	FetchTypeCatalog(ctx context.Context) (*pokeapi.ResourceList, error)
	FetchType(ctx context.Context, ref string) (*pokeapi.Type, error)
}

var _ Fetcher = (*pokeapi.Client)(nil)

// Options configures a Service.
type Options struct {
	Concurrency    int    // Max concurrent sub-fetches (default: 20)
	SpriteTemplate string // Image URL template with "{id}" (default: official artwork)
}

// WithDefaults returns a copy of o with zero fields set to their defaults.
func (o Options) WithDefaults() Options {
	if o.Concurrency <= 0 {
		o.Concurrency = DefaultConcurrency
	}
	if o.SpriteTemplate == "" {
		o.SpriteTemplate = DefaultSpriteTemplate
	}
	return o
}

// Service composes PokeAPI fetches into display records.
//
// The Service holds no per-request state. Multiple goroutines can safely
// share one Service.
type Service struct {
	API    Fetcher
	Opts   Options
	Logger *log.Logger
}

// NewService creates a Service over api.
// If logger is nil, log output is discarded.
func NewService(api Fetcher, opts Options, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Service{
		API:    api,
		Opts:   opts.WithDefaults(),
		Logger: logger,
	}
}

// ListAll returns the first limit creatures with their types, in listing
// order. A limit of 0 selects [DefaultLimit]. Any failure yields an empty
// slice; see [Service.ListAllE] for the cause.
func (s *Service) ListAll(ctx context.Context, limit int) []ListingEntry {
	entries, err := s.ListAllE(ctx, limit)
	if err != nil {
		s.Logger.Error("error fetching pokemon list", "op", "list_all", "limit", limit, "err", err)
		return []ListingEntry{}
	}
	return entries
}

// ListAllE is [Service.ListAll] with the error surfaced. One failed detail
// fetch fails the whole batch and cancels the rest.
func (s *Service) ListAllE(ctx context.Context, limit int) (entries []ListingEntry, err error) {
	done := s.track(ctx, "list_all")
	defer func() { done(len(entries), err) }()

	if limit == 0 {
		limit = DefaultLimit
	}
	list, err := s.API.FetchListing(ctx, limit)
	if err != nil {
		return nil, err
	}

	entries = make([]ListingEntry, len(list.Results))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.Opts.Concurrency)

	for i, res := range list.Results {
		g.Go(func() error {
			id := ExtractID(res.URL)
			if id == "" {
				return perrors.New(perrors.ErrCodeParse, "no id in resource url %q", res.URL)
			}
			mon, err := s.API.FetchPokemon(gctx, id)
			if err != nil {
				return err
			}
			entries[i] = ListingEntry{
				ID:        id,
				Name:      FormatDisplayName(res.Name),
				Slug:      res.Name,
				Species:   cmp.Or(mon.Species.Name, res.Name),
				ImageURL:  ImageURLFrom(s.Opts.SpriteTemplate, id),
				SourceURL: res.URL,
				Types:     typeSlots(mon.Types),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.Logger.Debug("listed pokemon", "count", len(entries))
	return entries, nil
}

// GetDetail returns the normalized detail for idOrName. ok is false when
// the fetch failed for any reason, including a 404.
func (s *Service) GetDetail(ctx context.Context, idOrName string) (*DetailRecord, bool) {
	detail, err := s.GetDetailE(ctx, idOrName)
	if err != nil {
		s.Logger.Error("error fetching pokemon details", "op", "get_detail", "id", idOrName, "err", err)
		return nil, false
	}
	return detail, true
}

// GetDetailE is [Service.GetDetail] with the error surfaced.
func (s *Service) GetDetailE(ctx context.Context, idOrName string) (detail *DetailRecord, err error) {
	done := s.track(ctx, "get_detail")
	defer func() { done(boolToInt(detail != nil), err) }()

	mon, err := s.API.FetchPokemon(ctx, idOrName)
	if err != nil {
		return nil, err
	}
	return normalizeDetail(mon), nil
}

// ListByRegion returns the species names of a region's pokedex in dex
// order. Region names are case-insensitive. Failure yields an empty slice.
func (s *Service) ListByRegion(ctx context.Context, region string) []string {
	names, err := s.ListByRegionE(ctx, region)
	if err != nil {
		s.Logger.Error("error fetching region", "op", "list_by_region", "region", region, "err", err)
		return []string{}
	}
	return names
}

// ListByRegionE is [Service.ListByRegion] with the error surfaced.
func (s *Service) ListByRegionE(ctx context.Context, region string) (names []string, err error) {
	done := s.track(ctx, "list_by_region")
	defer func() { done(len(names), err) }()

	dex, err := s.API.FetchPokedex(ctx, dexName(region))
	if err != nil {
		return nil, err
	}
	return dex.SpeciesNames(), nil
}

// ListByGeneration returns the species introduced in generation id.
// Failure yields an empty slice.
func (s *Service) ListByGeneration(ctx context.Context, id int) []string {
	names, err := s.ListByGenerationE(ctx, id)
	if err != nil {
		s.Logger.Error("error fetching generation", "op", "list_by_generation", "generation", id, "err", err)
		return []string{}
	}
	return names
}

// ListByGenerationE is [Service.ListByGeneration] with the error surfaced.
func (s *Service) ListByGenerationE(ctx context.Context, id int) (names []string, err error) {
	done := s.track(ctx, "list_by_generation")
	defer func() { done(len(names), err) }()

	gen, err := s.API.FetchGeneration(ctx, id)
	if err != nil {
		return nil, err
	}
	names = make([]string, len(gen.PokemonSpecies))
	for i, sp := range gen.PokemonSpecies {
		names[i] = sp.Name
	}
	return names, nil
}

// ListTypeCategories returns every selectable type with its members, in
// catalog order. Failure to load the catalog yields an empty slice.
func (s *Service) ListTypeCategories(ctx context.Context) []TypeCategory {
	cats, err := s.ListTypeCategoriesE(ctx)
	if err != nil {
		s.Logger.Error("error fetching pokemon types", "op", "type_categories", "err", err)
		return []TypeCategory{}
	}
	return cats
}

// ListTypeCategoriesE is [Service.ListTypeCategories] with the catalog
// error surfaced. A failed member lookup leaves that category with an
// empty member list and does not fail the call.
func (s *Service) ListTypeCategoriesE(ctx context.Context) (cats []TypeCategory, err error) {
	done := s.track(ctx, "type_categories")
	defer func() { done(len(cats), err) }()

	catalog, err := s.API.FetchTypeCatalog(ctx)
	if err != nil {
		return nil, err
	}

	var selectable []pokeapi.NamedResource
	for _, t := range catalog.Results {
		if !pseudoTypes[t.Name] {
			selectable = append(selectable, t)
		}
	}

	cats = make([]TypeCategory, len(selectable))
	var g errgroup.Group
	g.SetLimit(s.Opts.Concurrency)

	for i, ref := range selectable {
		g.Go(func() error {
			cats[i] = TypeCategory{Name: ref.Name, MemberNames: []string{}}
			typ, err := s.API.FetchType(ctx, ref.URL)
			if err != nil {
				s.Logger.Warn("type members unavailable", "type", ref.Name, "url", ref.URL, "err", err)
				return nil
			}
			cats[i].MemberNames = typ.MemberNames()
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return cats, nil
}

// Generations returns the generations table with each generation's
// species filled from its regional pokedex. A failed lookup leaves that
// generation's member list empty.
func (s *Service) Generations(ctx context.Context) []GenerationGroup {
	done := s.track(ctx, "generations")

	groups := make([]GenerationGroup, len(generations))
	var g errgroup.Group
	g.SetLimit(s.Opts.Concurrency)

	for i, gen := range generations {
		g.Go(func() error {
			groups[i] = gen.group(s.ListByRegion(ctx, gen.region))
			return nil
		})
	}
	_ = g.Wait()

	done(len(groups), nil)
	return groups
}

// Generation returns one row of the generations table with its species.
// ok is false for an unknown id.
func (s *Service) Generation(ctx context.Context, id int) (*GenerationGroup, bool) {
	gen, ok := findGeneration(id)
	if !ok {
		return nil, false
	}
	group := gen.group(s.ListByRegion(ctx, gen.region))
	return &group, true
}

// track reports an aggregation to the observability hooks and returns the
// completion callback.
func (s *Service) track(ctx context.Context, op string) func(items int, err error) {
	hooks := observability.Aggregate()
	hooks.OnAggregateStart(ctx, op)
	start := time.Now()
	return func(items int, err error) {
		hooks.OnAggregateComplete(ctx, op, items, time.Since(start), err)
	}
}

func typeSlots(types []pokeapi.PokemonType) []TypeSlot {
	out := make([]TypeSlot, len(types))
	for i, t := range types {
		out[i] = TypeSlot{Slot: t.Slot, TypeName: t.Type.Name}
	}
	return out
}

func normalizeDetail(mon *pokeapi.Pokemon) *DetailRecord {
	d := &DetailRecord{
		ID:        mon.ID,
		Name:      FormatDisplayName(mon.Name),
		Slug:      mon.Name,
		Height:    mon.Height,
		Weight:    mon.Weight,
		Types:     typeSlots(mon.Types),
		Stats:     make([]StatEntry, len(mon.Stats)),
		Abilities: make([]AbilityEntry, len(mon.Abilities)),
		Sprites: SpriteURLs{
			FrontDefault:    mon.Sprites.FrontDefault,
			OfficialArtwork: mon.Sprites.Other.OfficialArtwork.FrontDefault,
		},
	}
	for i, st := range mon.Stats {
		d.Stats[i] = StatEntry{
			BaseValue:         st.BaseStat,
			DisplayPercentage: StatPercentage(st.BaseStat),
			DisplayName:       FormatStatLabel(st.Stat.Name),
		}
	}
	for i, a := range mon.Abilities {
		d.Abilities[i] = AbilityEntry{
			Name:      FormatDisplayName(a.Ability.Name),
			SourceURL: a.Ability.URL,
			IsHidden:  a.IsHidden,
		}
	}
	return d
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
