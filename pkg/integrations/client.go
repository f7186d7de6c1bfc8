package integrations

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/singleflight"

	"github.com/matzehuels/pokedex/pkg/cache"
	perrors "github.com/matzehuels/pokedex/pkg/errors"
	"github.com/matzehuels/pokedex/pkg/observability"
)

// Validator is implemented by response types that check their own shape
// after decoding. A failed validation is reported as a PARSE_ERROR.
type Validator interface {
	Validate() error
}

// Client provides shared HTTP functionality for upstream API clients.
// It handles response caching, in-flight deduplication, optional retries
// and common request headers.
//
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	http      *http.Client
	cache     cache.Cache
	keyer     cache.Keyer
	namespace string
	ttl       time.Duration
	headers   map[string]string
	retries   int
	backoff   time.Duration
	logger    *log.Logger
	inflight  singleflight.Group
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout sets a per-request timeout. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithRetries enables up to n additional attempts for transport failures
// and 5xx responses, starting at backoff and doubling each time.
func WithRetries(n int, backoff time.Duration) Option {
	return func(c *Client) {
		c.retries = max(n, 0)
		c.backoff = backoff
	}
}

// WithKeyer sets the cache key strategy.
func WithKeyer(k cache.Keyer) Option {
	return func(c *Client) {
		if k != nil {
			c.keyer = k
		}
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient creates a Client backed by the given cache.
// Keys are namespaced so several upstreams can share one backend.
// A nil backend disables caching. Pass nil for headers if no default
// headers are needed.
func NewClient(backend cache.Cache, namespace string, ttl time.Duration, headers map[string]string, opts ...Option) *Client {
	if backend == nil {
		backend = cache.NewNullCache()
	}
	c := &Client{
		http:      NewHTTPClient(),
		cache:     backend,
		keyer:     cache.NewDefaultKeyer(),
		namespace: namespace,
		ttl:       ttl,
		headers:   headers,
		logger:    log.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Cached decodes the response for rawURL into v, consulting the cache first.
//
// The first call for a URL performs the request and stores the raw body.
// Later calls decode the stored bytes without touching the network.
// Concurrent callers for the same URL share a single in-flight request.
// Canceling one caller's context does not fail the others.
// Only bodies that are valid JSON are stored.
func (c *Client) Cached(ctx context.Context, rawURL string, v any) error {
	key := c.keyer.HTTPKey(c.namespace, rawURL)

	if data, ok, err := c.cache.Get(ctx, key); err != nil {
		c.logger.Warn("cache read failed", "key", key, "err", err)
	} else if ok {
		if err := decode(rawURL, data, v); err == nil {
			observability.Cache().OnCacheHit(ctx, c.namespace)
			return nil
		}
		c.logger.Debug("dropping unreadable cache entry", "key", key)
		_ = c.cache.Delete(ctx, key)
	}
	observability.Cache().OnCacheMiss(ctx, c.namespace)

	if err := ctx.Err(); err != nil {
		return perrors.Wrap(perrors.ErrCodeNetwork, err, "GET %s", rawURL)
	}

	// The shared request outlives any single caller; each caller stops
	// waiting when its own context ends.
	shared := context.WithoutCancel(ctx)
	ch := c.inflight.DoChan(key, func() (any, error) {
		body, err := c.fetch(shared, rawURL)
		if err != nil {
			return nil, err
		}
		if !json.Valid(body) {
			return nil, perrors.New(perrors.ErrCodeParse, "invalid JSON from %s", rawURL)
		}
		if err := c.cache.Set(shared, key, body, c.ttl); err != nil {
			c.logger.Warn("cache write failed", "key", key, "err", err)
		} else {
			observability.Cache().OnCacheSet(shared, c.namespace, len(body))
		}
		return body, nil
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return perrors.Wrap(perrors.ErrCodeNetwork, ctx.Err(), "GET %s", rawURL)
	case res = <-ch:
	}
	if res.Err != nil {
		return res.Err
	}

	if err := decode(rawURL, res.Val.([]byte), v); err != nil {
		_ = c.cache.Delete(ctx, key)
		return err
	}
	return nil
}

// Get performs an uncached HTTP GET request and JSON-decodes the response
// into v. It uses the client's default headers and retry settings.
func (c *Client) Get(ctx context.Context, rawURL string, v any) error {
	body, err := c.fetch(ctx, rawURL)
	if err != nil {
		return err
	}
	return decode(rawURL, body, v)
}

func (c *Client) fetch(ctx context.Context, rawURL string) ([]byte, error) {
	var body []byte
	err := cache.Retry(ctx, c.retries+1, c.backoff, func() error {
		var err error
		body, err = c.doRequest(ctx, rawURL)
		return err
	})
	var re *cache.RetryableError
	if errors.As(err, &re) {
		err = re.Err
	}
	return body, err
}

func (c *Client) doRequest(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, perrors.Wrap(perrors.ErrCodeInvalidInput, err, "bad request URL %s", rawURL)
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	host, path := splitURL(req.URL)
	hooks := observability.HTTP()
	hooks.OnRequest(ctx, req.Method, host, path)
	c.logger.Debug("GET", "url", rawURL)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		hooks.OnError(ctx, req.Method, host, path, err)
		return nil, cache.Retryable(perrors.Wrap(perrors.ErrCodeNetwork, err, "GET %s", rawURL))
	}
	defer resp.Body.Close()
	hooks.OnResponse(ctx, req.Method, host, path, resp.StatusCode, time.Since(start))

	if err := checkStatus(rawURL, resp); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, cache.Retryable(perrors.Wrap(perrors.ErrCodeNetwork, err, "read body of %s", rawURL))
	}
	return body, nil
}

func checkStatus(rawURL string, resp *http.Response) error {
	code := resp.StatusCode
	if code >= 200 && code < 300 {
		return nil
	}
	apiErr := perrors.NewAPIError(rawURL, code, statusText(resp))
	if code >= 500 {
		return cache.Retryable(apiErr)
	}
	return apiErr
}

// statusText returns the reason phrase sent by the server, e.g. "Not Found"
// from a "404 Not Found" status line.
func statusText(resp *http.Response) string {
	return strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
}

func decode(rawURL string, data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(v); err != nil {
		return perrors.Wrap(perrors.ErrCodeParse, err, "decode %s", rawURL)
	}
	if val, ok := v.(Validator); ok {
		if err := val.Validate(); err != nil {
			return perrors.Wrap(perrors.ErrCodeParse, err, "unexpected shape from %s", rawURL)
		}
	}
	return nil
}

func splitURL(u *url.URL) (host, path string) {
	if u == nil {
		return "", ""
	}
	return u.Host, u.Path
}
