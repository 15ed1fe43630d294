package ports

import (
	"context"

	"github.com/trailatlas/trails-api/internal/core/domain"
	"github.com/trailatlas/trails-api/internal/core/geo"
)

// RouteProvider executes a prepared query against the external route search
// service and returns its raw response.
type RouteProvider interface {
	Execute(ctx context.Context, query string) (domain.RouteData, error)
}

// RouteSearchService is the search gateway consumed by the HTTP layer.
type RouteSearchService interface {
	// SearchByID fetches the single hiking-route relation with the given id.
	SearchByID(ctx context.Context, routeID string) (domain.RouteData, error)

	// SearchByArea returns hiking routes within q.Radius meters of
	// (q.Lat, q.Long), consulting the query cache before the provider.
	SearchByArea(ctx context.Context, q geo.AreaQuery) (domain.RouteData, error)
}
