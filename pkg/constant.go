package pkg

const (
	// wait time sentinel shared by the maxWait filter and the wait sort key.
	// a spot without a reported wait time must fail any finite maxWait filter
	// and sort after every spot with a real wait time.
	MISSING_WAIT_SENTINEL_MINUTES = 999.0

	// route polylines are downsampled to at most this many points before
	// corridor matching. stride = max(1, len/MAX_ROUTE_SAMPLE_POINTS).
	MAX_ROUTE_SAMPLE_POINTS = 500

	// each cluster carries at most this many sample members, insertion order.
	MAX_CLUSTER_SAMPLE_MEMBERS = 10

	DIST_TO_ROUTE_PRECISION  = 2
	ROUTE_PROGRESS_PRECISION = 3
)

const (
	DEBUG = false
)
