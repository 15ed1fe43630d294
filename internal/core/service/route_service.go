package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/trailatlas/trails-api/internal/api/metrics"
	"github.com/trailatlas/trails-api/internal/core/cache"
	"github.com/trailatlas/trails-api/internal/core/domain"
	"github.com/trailatlas/trails-api/internal/core/geo"
	"github.com/trailatlas/trails-api/internal/core/ports"
)

// RouteService is the search gateway: it builds provider queries and fronts
// area searches with the process-local query cache.
type RouteService struct {
	provider ports.RouteProvider
	cache    *cache.QueryCache
	logger   zerolog.Logger
}

func NewRouteService(provider ports.RouteProvider, queryCache *cache.QueryCache, logger zerolog.Logger) *RouteService {
	return &RouteService{provider: provider, cache: queryCache, logger: logger}
}

func (s *RouteService) SearchByID(ctx context.Context, routeID string) (domain.RouteData, error) {
	timer := time.Now()
	defer func() { metrics.SearchDuration.WithLabelValues("id").Observe(time.Since(timer).Seconds()) }()

	data, err := s.provider.Execute(ctx, relationQuery(routeID))
	if err != nil {
		metrics.ProviderRequestsTotal.WithLabelValues("id", "error").Inc()
		s.logger.Error().Err(err).Str("route_id", routeID).Msg("provider search by id failed")
		return nil, err
	}

	metrics.ProviderRequestsTotal.WithLabelValues("id", "success").Inc()
	return data, nil
}

// SearchByArea serves from the cache when the quantized key is already
// populated. On a miss it calls the provider and stores the result under the
// same key; on provider failure the cache stays unpopulated so an identical
// request retries. Concurrent misses on one key are not coalesced.
func (s *RouteService) SearchByArea(ctx context.Context, q geo.AreaQuery) (domain.RouteData, error) {
	timer := time.Now()
	defer func() { metrics.SearchDuration.WithLabelValues("area").Observe(time.Since(timer).Seconds()) }()

	key := q.CacheKey()
	if data, ok := s.cache.Get(key); ok {
		metrics.SearchCacheTotal.WithLabelValues("hit").Inc()
		s.logger.Debug().Str("key", key).Msg("area search cache hit")
		return data, nil
	}
	metrics.SearchCacheTotal.WithLabelValues("miss").Inc()

	data, err := s.provider.Execute(ctx, aroundQuery(q.Radius, q.Lat, q.Long))
	if err != nil {
		metrics.ProviderRequestsTotal.WithLabelValues("area", "error").Inc()
		s.logger.Error().Err(err).Str("key", key).Msg("provider area search failed")
		return nil, err
	}
	metrics.ProviderRequestsTotal.WithLabelValues("area", "success").Inc()

	s.cache.Put(key, data)
	return data, nil
}
