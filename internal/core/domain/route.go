package domain

import "encoding/json"

// RouteData is the raw feature payload returned by the route search
// provider. It is treated as opaque: cached and served to clients verbatim,
// never decoded or reshaped by the core.
type RouteData = json.RawMessage
