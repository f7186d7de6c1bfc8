package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Aggregate hooks
	a := NoopAggregateHooks{}
	a.OnAggregateStart(ctx, "list_all")
	a.OnAggregateComplete(ctx, "list_all", 151, time.Second, nil)

	// Cache hooks
	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "pokeapi")
	c.OnCacheMiss(ctx, "pokeapi")
	c.OnCacheSet(ctx, "pokeapi", 1024)

	// HTTP hooks
	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "GET", "pokeapi.co", "/api/v2/pokemon/25")
	h.OnResponse(ctx, "GET", "pokeapi.co", "/api/v2/pokemon/25", 200, time.Second)
	h.OnError(ctx, "GET", "pokeapi.co", "/api/v2/pokemon/25", nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Aggregate().(NoopAggregateHooks); !ok {
		t.Error("Aggregate() should return NoopAggregateHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	// Set custom hooks
	customAggregate := &testAggregateHooks{}
	SetAggregateHooks(customAggregate)
	if Aggregate() != customAggregate {
		t.Error("SetAggregateHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Aggregate().(NoopAggregateHooks); !ok {
		t.Error("Reset() should restore NoopAggregateHooks")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("Reset() should restore NoopHTTPHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testAggregateHooks{}
	SetAggregateHooks(custom)

	// Setting nil should be ignored
	SetAggregateHooks(nil)

	if Aggregate() != custom {
		t.Error("SetAggregateHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testAggregateHooks struct{ NoopAggregateHooks }
type testCacheHooks struct{ NoopCacheHooks }
type testHTTPHooks struct{ NoopHTTPHooks }
