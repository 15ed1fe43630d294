package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/trailatlas/trails-api/internal/core/cache"
	"github.com/trailatlas/trails-api/internal/core/domain"
	"github.com/trailatlas/trails-api/internal/core/geo"
)

type stubProvider struct {
	calls     int
	lastQuery string
	data      domain.RouteData
	err       error
}

func (p *stubProvider) Execute(_ context.Context, query string) (domain.RouteData, error) {
	p.calls++
	p.lastQuery = query
	if p.err != nil {
		return nil, p.err
	}
	return p.data, nil
}

func TestRouteService_SearchByID_Query(t *testing.T) {
	provider := &stubProvider{data: domain.RouteData(`{"elements":[]}`)}
	svc := NewRouteService(provider, cache.New(), zerolog.Nop())

	if _, err := svc.SearchByID(context.Background(), "241066"); err != nil {
		t.Fatalf("SearchByID returned error: %v", err)
	}

	for _, want := range []string{"(id:241066)", `"type"="route"`, `"route"="hiking"`, "out body center tags geom"} {
		if !strings.Contains(provider.lastQuery, want) {
			t.Fatalf("query missing %q: %s", want, provider.lastQuery)
		}
	}
}

func TestRouteService_SearchByID_ProviderFailure(t *testing.T) {
	provider := &stubProvider{err: errors.New("gateway timeout")}
	svc := NewRouteService(provider, cache.New(), zerolog.Nop())

	if _, err := svc.SearchByID(context.Background(), "1"); err == nil {
		t.Fatalf("expected provider error")
	}
}

func TestRouteService_SearchByArea_Query(t *testing.T) {
	provider := &stubProvider{data: domain.RouteData(`{"elements":[]}`)}
	svc := NewRouteService(provider, cache.New(), zerolog.Nop())

	q := geo.NormalizeAreaQuery("20000", "59.1219", "18.1081")
	if _, err := svc.SearchByArea(context.Background(), q); err != nil {
		t.Fatalf("SearchByArea returned error: %v", err)
	}

	// Clamped radius, full-precision coordinates.
	if !strings.Contains(provider.lastQuery, "around:10000,59.1219,18.1081") {
		t.Fatalf("unexpected around clause: %s", provider.lastQuery)
	}
	if !strings.Contains(provider.lastQuery, `"route"="hiking"`) {
		t.Fatalf("query missing hiking filter: %s", provider.lastQuery)
	}
}

func TestRouteService_SearchByArea_SecondCallServedFromCache(t *testing.T) {
	provider := &stubProvider{data: domain.RouteData(`{"elements":[{"id":1}]}`)}
	svc := NewRouteService(provider, cache.New(), zerolog.Nop())

	q := geo.NormalizeAreaQuery("3000", "59.12", "18.11")

	first, err := svc.SearchByArea(context.Background(), q)
	if err != nil {
		t.Fatalf("first search: %v", err)
	}
	second, err := svc.SearchByArea(context.Background(), q)
	if err != nil {
		t.Fatalf("second search: %v", err)
	}

	if provider.calls != 1 {
		t.Fatalf("expected exactly one provider call, got %d", provider.calls)
	}
	if string(first) != string(second) {
		t.Fatalf("cached response must match the original")
	}
}

func TestRouteService_SearchByArea_QuantizedInputsShareEntry(t *testing.T) {
	provider := &stubProvider{data: domain.RouteData(`{}`)}
	svc := NewRouteService(provider, cache.New(), zerolog.Nop())

	if _, err := svc.SearchByArea(context.Background(), geo.NormalizeAreaQuery("3000", "59.1219", "18.1081")); err != nil {
		t.Fatalf("first search: %v", err)
	}
	if _, err := svc.SearchByArea(context.Background(), geo.NormalizeAreaQuery("3000", "59.1241", "18.1139")); err != nil {
		t.Fatalf("second search: %v", err)
	}

	if provider.calls != 1 {
		t.Fatalf("coordinates equal after quantization must share a cache entry, got %d calls", provider.calls)
	}
}

func TestRouteService_SearchByArea_DistinctKeysCallProvider(t *testing.T) {
	provider := &stubProvider{data: domain.RouteData(`{}`)}
	svc := NewRouteService(provider, cache.New(), zerolog.Nop())

	_, _ = svc.SearchByArea(context.Background(), geo.NormalizeAreaQuery("3000", "59.12", "18.11"))
	_, _ = svc.SearchByArea(context.Background(), geo.NormalizeAreaQuery("4000", "59.12", "18.11"))

	if provider.calls != 2 {
		t.Fatalf("different radius means a different key, expected 2 calls, got %d", provider.calls)
	}
}

func TestRouteService_SearchByArea_FailureLeavesCacheUnpopulated(t *testing.T) {
	provider := &stubProvider{err: errors.New("overpass down")}
	queryCache := cache.New()
	svc := NewRouteService(provider, queryCache, zerolog.Nop())

	q := geo.NormalizeAreaQuery("3000", "59.12", "18.11")

	if _, err := svc.SearchByArea(context.Background(), q); err == nil {
		t.Fatalf("expected provider error")
	}
	if queryCache.Len() != 0 {
		t.Fatalf("cache must stay unpopulated on provider failure")
	}

	// Provider recovers; the identical request retries instead of serving an error.
	provider.err = nil
	provider.data = domain.RouteData(`{"elements":[]}`)

	if _, err := svc.SearchByArea(context.Background(), q); err != nil {
		t.Fatalf("retry after recovery failed: %v", err)
	}
	if provider.calls != 2 {
		t.Fatalf("expected the miss to retry the provider, got %d calls", provider.calls)
	}
}
