// Package cli implements the pokedex command-line interface.
//
// This package provides commands for listing and inspecting creatures from
// PokeAPI, browsing them interactively, serving the JSON load API used by
// front ends, and managing the HTTP response cache. The CLI is built using
// cobra and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - list: Print the listing, optionally filtered by name, type or region
//   - show: Print one creature's detail with stat bars
//   - types, region, generations: Print the aggregated category views
//   - browse: Pick a creature from an interactive list
//   - serve: Run the JSON load API
//   - cache: Manage the HTTP response cache
//
// # Configuration
//
// Settings are read from $XDG_CONFIG_HOME/pokedex/config.toml when present
// and can be overridden with POKEDEX_* environment variables and flags.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// logs every cache and HTTP event. Loggers are passed through
// context.Context to allow structured progress tracking.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pokedex/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
// The returned progress should call done when the operation completes.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// The duration is rounded to the nearest millisecond.
// Example output: "Listed 151 pokemon (1.234s)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ctxKey is the type for context keys used in this package.
// Using a distinct type prevents collisions with other packages.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
// The logger can be retrieved later with loggerFromContext.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
// This ensures commands always have a valid logger even if context setup fails.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// registerDebugHooks logs cache, HTTP and aggregation events at debug level.
func registerDebugHooks(l *log.Logger) {
	h := debugHooks{logger: l}
	observability.SetCacheHooks(h)
	observability.SetHTTPHooks(h)
	observability.SetAggregateHooks(h)
}

type debugHooks struct {
	logger *log.Logger
}

func (h debugHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "key", keyType)
}

func (h debugHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "key", keyType)
}

func (h debugHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "key", keyType, "bytes", size)
}

func (h debugHooks) OnRequest(_ context.Context, method, host, path string) {
	h.logger.Debug("request", "method", method, "host", host, "path", path)
}

func (h debugHooks) OnResponse(_ context.Context, method, host, path string, status int, d time.Duration) {
	h.logger.Debug("response", "method", method, "path", path, "status", status, "took", d.Round(time.Millisecond))
}

func (h debugHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.logger.Debug("request failed", "method", method, "host", host, "path", path, "err", err)
}

func (h debugHooks) OnAggregateStart(_ context.Context, op string) {
	h.logger.Debug("aggregate start", "op", op)
}

func (h debugHooks) OnAggregateComplete(_ context.Context, op string, items int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("aggregate failed", "op", op, "took", d.Round(time.Millisecond), "err", err)
		return
	}
	h.logger.Debug("aggregate done", "op", op, "items", items, "took", d.Round(time.Millisecond))
}
