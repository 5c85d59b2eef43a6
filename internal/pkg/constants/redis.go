package constants

// Redis key formats
const (
	KeyBookingDraft = "booking:draft:%s"    // Format: booking:draft:{session_id}
	KeyRouteCache   = "booking:route:%s:%s" // Format: booking:route:{pickup_geohash}:{dropoff_geohash}
)

// RouteCachePrecision is the geohash length used for route cache keys,
// roughly a 150m cell.
const RouteCachePrecision = 7
