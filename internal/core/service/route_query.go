package service

import (
	"fmt"
	"strconv"
)

// Overpass QL builders. Both queries filter to relations tagged as hiking
// routes and request body, centroid, tags and geometry output.

func relationQuery(routeID string) string {
	return fmt.Sprintf(
		`[out:json];relation(id:%s)["type"="route"]["route"="hiking"];out body center tags geom;`,
		routeID,
	)
}

// aroundQuery selects hiking-route relations within radius meters of the
// center point. Coordinates go out at full precision; only the cache key
// quantizes them.
func aroundQuery(radius, lat, long float64) string {
	return fmt.Sprintf(
		`[out:json];relation["type"="route"]["route"="hiking"](around:%s,%s,%s);out body center tags geom;`,
		strconv.FormatFloat(radius, 'f', -1, 64),
		strconv.FormatFloat(lat, 'f', -1, 64),
		strconv.FormatFloat(long, 'f', -1, 64),
	)
}
