package pokedex

import (
	"cmp"
	"context"
	"slices"
	"strings"
)

// Filter narrows a listing the way the index page does: by search query,
// by region, and by type. Zero-valued fields do not filter.
type Filter struct {
	Query   string   // Matches name substrings (case-insensitive) or an exact id
	Regions []string // Keep entries whose species belongs to any of these regions
	Types   []string // Keep entries carrying any of these types
}

// IsZero reports whether f filters nothing.
func (f Filter) IsZero() bool {
	return strings.TrimSpace(f.Query) == "" && len(f.Regions) == 0 && len(f.Types) == 0
}

// Apply returns the entries of list that pass f, in order. Region
// membership is resolved through svc with one regional lookup per selected
// region; a failed lookup contributes no members.
func (f Filter) Apply(ctx context.Context, svc *Service, list []ListingEntry) []ListingEntry {
	if f.IsZero() {
		return list
	}

	var members map[string]bool
	if len(f.Regions) > 0 {
		members = make(map[string]bool)
		for _, region := range f.Regions {
			for _, name := range svc.ListByRegion(ctx, region) {
				members[name] = true
			}
		}
	}

	out := make([]ListingEntry, 0, len(list))
	for _, e := range list {
		if f.Match(e, members) {
			out = append(out, e)
		}
	}
	return out
}

// Match reports whether e passes f. regionMembers holds the species names of
// the selected regions and is ignored when f selects no regions. Region
// membership is checked by species, falling back to the slug.
func (f Filter) Match(e ListingEntry, regionMembers map[string]bool) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		if !strings.Contains(strings.ToLower(e.Name), q) &&
			!strings.Contains(e.Slug, q) && e.ID != q {
			return false
		}
	}
	if len(f.Regions) > 0 && !regionMembers[cmp.Or(e.Species, e.Slug)] {
		return false
	}
	if len(f.Types) > 0 && !slices.ContainsFunc(e.Types, func(t TypeSlot) bool {
		return slices.ContainsFunc(f.Types, func(want string) bool {
			return strings.EqualFold(want, t.TypeName)
		})
	}) {
		return false
	}
	return true
}
