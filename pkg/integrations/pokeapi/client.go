package pokeapi

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/matzehuels/pokedex/pkg/buildinfo"
	"github.com/matzehuels/pokedex/pkg/cache"
	perrors "github.com/matzehuels/pokedex/pkg/errors"
	"github.com/matzehuels/pokedex/pkg/integrations"
)

// DefaultBaseURL is the public PokeAPI v2 endpoint.
const DefaultBaseURL = "https://pokeapi.co/api/v2"

// Namespace prefixes cache keys for PokeAPI responses.
const Namespace = "pokeapi"

// Client provides access to the PokeAPI REST service.
// It handles HTTP requests with caching and optional retries.
//
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a PokeAPI client.
//
// Parameters:
//   - baseURL: API root; empty selects [DefaultBaseURL]
//   - backend: cache for raw responses (nil disables caching)
//   - cacheTTL: how long responses are kept; 0 keeps them until cleared
//   - opts: transport settings such as [integrations.WithTimeout]
//
// The returned Client is safe for concurrent use.
func NewClient(baseURL string, backend cache.Cache, cacheTTL time.Duration, opts ...integrations.Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		Client: integrations.NewClient(backend, Namespace, cacheTTL, map[string]string{
			"User-Agent": buildinfo.UserAgent(),
		}, opts...),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// BaseURL returns the API root this client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

// FetchListing retrieves the first limit entries of the pokemon listing.
//
// Returns:
//   - ResourceList with one {name, url} per creature, in API order
//   - INVALID_INPUT if limit is negative
//   - NETWORK_ERROR, API_ERROR or PARSE_ERROR from the fetch layer
func (c *Client) FetchListing(ctx context.Context, limit int) (*ResourceList, error) {
	if limit < 0 {
		return nil, perrors.New(perrors.ErrCodeInvalidInput, "limit must not be negative: %d", limit)
	}
	url := fmt.Sprintf("%s/pokemon?limit=%d", c.baseURL, limit)

	var list ResourceList
	if err := c.Cached(ctx, url, &list); err != nil {
		return nil, fmt.Errorf("pokeapi listing: %w", err)
	}
	return &list, nil
}

// FetchPokemon retrieves the detail resource for a creature.
//
// The idOrName parameter is normalized automatically ("Mr Mime" becomes
// "mr-mime"). A 404 from the API matches errors.ErrCodeNotFound.
//
// The returned Pokemon pointer is never nil if err is nil.
func (c *Client) FetchPokemon(ctx context.Context, idOrName string) (*Pokemon, error) {
	name := integrations.NormalizeName(idOrName)
	if err := perrors.ValidateResourceName(name); err != nil {
		return nil, err
	}

	var mon Pokemon
	if err := c.Cached(ctx, integrations.JoinURL(c.baseURL, "pokemon", name), &mon); err != nil {
		return nil, fmt.Errorf("pokeapi pokemon %s: %w", name, err)
	}
	return &mon, nil
}

// FetchGeneration retrieves the species list of generation id (1-based).
func (c *Client) FetchGeneration(ctx context.Context, id int) (*Generation, error) {
	if id < 1 {
		return nil, perrors.New(perrors.ErrCodeInvalidInput, "generation id must be positive: %d", id)
	}

	var gen Generation
	if err := c.Cached(ctx, integrations.JoinURL(c.baseURL, "generation", strconv.Itoa(id)), &gen); err != nil {
		return nil, fmt.Errorf("pokeapi generation %d: %w", id, err)
	}
	return &gen, nil
}

// FetchPokedex retrieves a regional dex. Region names are case-insensitive.
func (c *Client) FetchPokedex(ctx context.Context, region string) (*Pokedex, error) {
	name := integrations.NormalizeName(region)
	if err := perrors.ValidateResourceName(name); err != nil {
		return nil, err
	}

	var dex Pokedex
	if err := c.Cached(ctx, integrations.JoinURL(c.baseURL, "pokedex", name), &dex); err != nil {
		return nil, fmt.Errorf("pokeapi pokedex %s: %w", name, err)
	}
	return &dex, nil
}

// FetchTypeCatalog retrieves the list of elemental types, including the
// pseudo-types "unknown" and "shadow". Filtering is up to the caller.
func (c *Client) FetchTypeCatalog(ctx context.Context) (*ResourceList, error) {
	var list ResourceList
	if err := c.Cached(ctx, c.baseURL+"/type/", &list); err != nil {
		return nil, fmt.Errorf("pokeapi type catalog: %w", err)
	}
	return &list, nil
}

// FetchType retrieves one elemental type and its members.
//
// The ref parameter is either a type name ("fire") or the absolute
// resource URL from the type catalog. URLs are fetched as given so they
// share cache entries with the catalog's references.
func (c *Client) FetchType(ctx context.Context, ref string) (*Type, error) {
	url, err := c.resolve("type", ref)
	if err != nil {
		return nil, err
	}

	var typ Type
	if err := c.Cached(ctx, url, &typ); err != nil {
		return nil, fmt.Errorf("pokeapi type %s: %w", ref, err)
	}
	return &typ, nil
}

// resolve turns a name or absolute URL into a resource URL under kind.
func (c *Client) resolve(kind, ref string) (string, error) {
	if strings.Contains(ref, "://") {
		if err := perrors.ValidateURL(ref); err != nil {
			return "", err
		}
		return ref, nil
	}
	name := integrations.NormalizeName(ref)
	if err := perrors.ValidateResourceName(name); err != nil {
		return "", err
	}
	return integrations.JoinURL(c.baseURL, kind, name), nil
}
