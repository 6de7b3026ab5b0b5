package arenalru

import "errors"

// Exported error kinds. NotFound and Full are the only errors a Cache
// caller should ever see; OutOfMemory is the arena-level failure that
// List.PushFront (and so Cache.Insert) reports as Full when it is
// (defensively) reached. Full is returned as is and does not wrap
// OutOfMemory, so errors.Is(err, ErrOutOfMemory) is false for it.
var (
	// ErrNotFound is returned by Query and Remove when the key is
	// absent from the cache. It is a lookup miss, not exceptional.
	ErrNotFound = errors.New("arenalru: key not found")

	// ErrFull is returned when an insertion cannot proceed because no
	// eviction is possible. Reachable only from invalid configurations
	// (e.g. a misconfigured capacity of zero, which is rejected at
	// construction) — a healthy cache always evicts instead.
	ErrFull = errors.New("arenalru: cache full")

	// ErrOutOfMemory is returned by Arena.Insert when the arena has no
	// free slot and is already at its capacity ceiling.
	ErrOutOfMemory = errors.New("arenalru: arena out of memory")
)
