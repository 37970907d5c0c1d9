// Package cache holds the list-response cache used by the public GET
// endpoints. Only the unfiltered list of each collection is cached; any
// mutation on a collection invalidates its entry.
package cache

import "context"

type ListCache interface {
	// Get returns the cached list payload for a collection, or ok=false on a
	// miss. Errors are treated as misses by callers.
	Get(ctx context.Context, collection string) (payload []byte, ok bool)
	// Set stores the rendered list payload for a collection.
	Set(ctx context.Context, collection string, payload []byte) error
	// Invalidate drops the cached payload for a collection.
	Invalidate(ctx context.Context, collection string) error
}

type noopCache struct{}

func (noopCache) Get(context.Context, string) ([]byte, bool) { return nil, false }
func (noopCache) Set(context.Context, string, []byte) error  { return nil }
func (noopCache) Invalidate(context.Context, string) error   { return nil }

// Noop returns a cache that never hits, for deployments without redis.
func Noop() ListCache {
	return noopCache{}
}
