package phenodb

// ResultCache stores serialized responses of the long-aggregation
// endpoints with a multi-hour freshness window. Entries expire by time
// only; no code path invalidates on write, which is acceptable because
// the underlying dataset is near-static.
type ResultCache interface {
	// Get returns the cached payload for key, or ok=false when the key
	// is absent or expired.
	Get(key string) (payload []byte, ok bool, err error)

	// Set stores a payload under key with the configured TTL.
	Set(key string, payload []byte) error

	// Close releases the cache store.
	Close() error
}
