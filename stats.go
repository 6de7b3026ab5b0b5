package arenalru

/*
Stats represents runtime performance counters of a Cache.

================================================================================
PURPOSE
================================================================================

- Hits      → successful Query() calls
- Misses    → failed Query() calls (missing or expired key)
- Evictions → entries removed by LRU capacity eviction or TTL retirement

Incrementing a plain uint64 field is just bookkeeping that every mutating
Cache method already performs synchronously, so it adds no concurrency or
suspension of its own.

================================================================================
OBSERVABILITY VALUE
================================================================================

    hit_ratio = Hits / (Hits + Misses)

Useful for capacity planning and for judging whether a configured TTL is
too aggressive relative to access patterns.
*/

// Stats is a snapshot of a Cache's hit/miss/eviction counters.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}
