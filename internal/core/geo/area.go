// Package geo normalizes the fuzzy query parameters of an area search.
//
// Radius, latitude and longitude arrive as raw query-string values that may
// be absent or malformed. Normalization applies documented defaults, clamps
// the radius, and derives the quantized cache key that makes nearby searches
// share a cache entry.
package geo

import (
	"fmt"
	"strconv"
)

const (
	// MaxRadiusMeters is the hard cap on search radius. Larger values are
	// clamped, never rejected.
	MaxRadiusMeters = 10000

	// DefaultRadiusMeters applies when no radius is given.
	DefaultRadiusMeters = 5000

	// DefaultLat and DefaultLong apply when coordinates are missing.
	DefaultLat  = 59.122
	DefaultLong = 18.108
)

// AreaQuery is a normalized area search: radius clamped, coordinates at
// full precision. The provider query uses these values as-is; only the
// cache key quantizes them.
type AreaQuery struct {
	Radius float64
	Lat    float64
	Long   float64
}

// NormalizeAreaQuery turns raw query-string values into an AreaQuery.
// Missing or unparsable values fall back to the defaults; a radius above
// MaxRadiusMeters is clamped to it.
func NormalizeAreaQuery(rawRadius, rawLat, rawLong string) AreaQuery {
	return AreaQuery{
		Radius: min(parseFloat(rawRadius, DefaultRadiusMeters), MaxRadiusMeters),
		Lat:    parseFloat(rawLat, DefaultLat),
		Long:   parseFloat(rawLong, DefaultLong),
	}
}

// CacheKey renders "<radius>-<lat>-<long>" with both coordinates rounded to
// two decimal places (~1.1 km north-south). Searches that differ only beyond
// the second decimal produce the same key and share a cache entry.
func (q AreaQuery) CacheKey() string {
	return fmt.Sprintf("%s-%.2f-%.2f", strconv.FormatFloat(q.Radius, 'f', -1, 64), q.Lat, q.Long)
}

func parseFloat(raw string, fallback float64) float64 {
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return v
}
