package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/trailatlas/trails-api/internal/core/domain"
	"github.com/trailatlas/trails-api/internal/core/geo"
)

type stubSearchService struct {
	byIDFn   func(ctx context.Context, routeID string) (domain.RouteData, error)
	byAreaFn func(ctx context.Context, q geo.AreaQuery) (domain.RouteData, error)
}

func (s *stubSearchService) SearchByID(ctx context.Context, routeID string) (domain.RouteData, error) {
	return s.byIDFn(ctx, routeID)
}

func (s *stubSearchService) SearchByArea(ctx context.Context, q geo.AreaQuery) (domain.RouteData, error) {
	return s.byAreaFn(ctx, q)
}

func TestTrackHandler_GetByID_Success(t *testing.T) {
	stub := &stubSearchService{
		byIDFn: func(ctx context.Context, routeID string) (domain.RouteData, error) {
			if routeID != "241066" {
				t.Fatalf("unexpected route id: %s", routeID)
			}
			return domain.RouteData(`{"elements":[{"id":241066}]}`), nil
		},
	}
	h := NewTrackHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/tracks/241066", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("241066")

	if err := h.GetByID(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["status"] != "success" {
		t.Fatalf("expected status=success, got %v", resp)
	}
	payload := resp["response"].(map[string]any)
	if _, found := payload["data"]; !found {
		t.Fatalf("expected data in response, got %v", payload)
	}
}

func TestTrackHandler_GetByID_ProviderError(t *testing.T) {
	stub := &stubSearchService{
		byIDFn: func(ctx context.Context, routeID string) (domain.RouteData, error) {
			return nil, context.DeadlineExceeded
		},
	}
	h := NewTrackHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/tracks/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	_ = h.GetByID(c)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["status"] != "error" {
		t.Fatalf("expected status=error, got %v", resp)
	}
	payload := resp["response"].(map[string]any)
	if _, found := payload["error"]; !found {
		t.Fatalf("expected error message in response, got %v", payload)
	}
}

func TestTrackHandler_Search_NormalizesParams(t *testing.T) {
	var got geo.AreaQuery
	stub := &stubSearchService{
		byAreaFn: func(ctx context.Context, q geo.AreaQuery) (domain.RouteData, error) {
			got = q
			return domain.RouteData(`{"elements":[]}`), nil
		},
	}
	h := NewTrackHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/tracks?radius=20000&lat=59.1219&long=18.1081", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Search(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got.Radius != geo.MaxRadiusMeters {
		t.Fatalf("expected clamped radius, got %v", got.Radius)
	}
	if got.Lat != 59.1219 || got.Long != 18.1081 {
		t.Fatalf("expected full-precision coordinates, got %+v", got)
	}
}

func TestTrackHandler_Search_DefaultsWhenMissing(t *testing.T) {
	var got geo.AreaQuery
	stub := &stubSearchService{
		byAreaFn: func(ctx context.Context, q geo.AreaQuery) (domain.RouteData, error) {
			got = q
			return domain.RouteData(`{}`), nil
		},
	}
	h := NewTrackHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/tracks", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Search(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got.Radius != geo.DefaultRadiusMeters || got.Lat != geo.DefaultLat || got.Long != geo.DefaultLong {
		t.Fatalf("expected defaults, got %+v", got)
	}
}
