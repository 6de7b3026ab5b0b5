package arenalru

import "time"

/*
List is a doubly-linked list whose nodes live inside an Arena: links are
Handles, not pointers. It is the ordering backbone of Cache, but
intrusively — a node's storage is addressed by slot+generation rather than
by a separately heap-allocated pointer.

================================================================================
HEAD / TAIL CONVENTION
================================================================================

head is the most-recently-used end; tail is the least-recently-used end.
PushFront always lands at head. Retirement always scans from tail, because
every node's expiry is set (or refreshed) at insertion or promotion time,
which keeps expiries monotonically non-increasing from head to tail — the
tail is always the next node to expire.

================================================================================
TTL
================================================================================

When ttlEnabled is true, every node's expiry is computed as now+ttl at
PushFront and refreshed to now+ttl at MoveToFront. Retire walks from the
tail and stops at the first node whose expiry is still in the future,
giving O(k) eviction for k expired entries rather than an O(n) scan.
*/

// Node is the payload stored inside a List's arena. expiry is the zero
// Time when TTL is disabled for the list.
type Node[T any] struct {
	value  T
	expiry time.Time
	prev   Handle
	next   Handle
}

// List is an intrusive doubly-linked list of T, backed by an Arena of
// Node[T].
type List[T any] struct {
	arena      *Arena[Node[T]]
	head, tail Handle
	length     int
	ttl        time.Duration
	ttlEnabled bool
}

// NewList constructs a List whose arena has room for capacity nodes. If
// ttlEnabled is false, ttl is ignored and Retire is permanently a no-op.
func NewList[T any](capacity int, ttl time.Duration, ttlEnabled bool) *List[T] {
	return &List[T]{
		arena:      NewArena[Node[T]](capacity),
		ttl:        ttl,
		ttlEnabled: ttlEnabled,
	}
}

// Len returns the number of nodes currently in the list.
func (l *List[T]) Len() int {
	return l.length
}

// IsEmpty reports whether the list has no nodes.
func (l *List[T]) IsEmpty() bool {
	return l.length == 0
}

func (l *List[T]) nodeExpiry(now time.Time) time.Time {
	if !l.ttlEnabled {
		return time.Time{}
	}
	return now.Add(l.ttl)
}

// PushFront allocates a node carrying value and splices it in at head,
// returning its Handle. It propagates the arena's out-of-memory failure as
// ErrFull, since from a List's perspective an exhausted backing arena
// means the list itself cannot accept any more entries.
func (l *List[T]) PushFront(value T) (Handle, error) {
	node := Node[T]{
		value:  value,
		expiry: l.nodeExpiry(time.Now()),
		prev:   Handle{},
		next:   l.head,
	}

	h, err := l.arena.Insert(node)
	if err != nil {
		return Handle{}, ErrFull
	}

	if l.head.IsNone() {
		l.tail = h
	} else {
		if headNode, ok := l.arena.Get(l.head); ok {
			headNode.prev = h
		}
	}
	l.head = h
	l.length++
	return h, nil
}

// Remove unlinks and frees the node named by handle, returning its
// payload. It reports false if handle is not valid.
func (l *List[T]) Remove(handle Handle) (T, bool) {
	var zero T
	node, ok := l.arena.Get(handle)
	if !ok {
		return zero, false
	}

	l.unlink(handle, node)
	removedNode, _ := l.arena.Remove(handle)
	l.length--
	return removedNode.value, true
}

// unlink patches handle's neighbors (or head/tail) to splice it out,
// without freeing its slot. Each neighbor Handle is re-resolved from the
// arena immediately before it is mutated, so no reference to a neighbor
// node is held across the two patches.
func (l *List[T]) unlink(handle Handle, node *Node[T]) {
	if !node.prev.IsNone() {
		if prevNode, ok := l.arena.Get(node.prev); ok {
			prevNode.next = node.next
		}
	} else {
		l.head = node.next
	}

	if !node.next.IsNone() {
		if nextNode, ok := l.arena.Get(node.next); ok {
			nextNode.prev = node.prev
		}
	} else {
		l.tail = node.prev
	}
}

// MoveToFront relocates the node named by handle to the head of the list,
// refreshing its TTL expiry if TTL is enabled. Handle identity across the
// move is not guaranteed: callers must use the returned Handle. It reports
// false if handle is not valid.
func (l *List[T]) MoveToFront(handle Handle) (Handle, bool) {
	value, ok := l.Remove(handle)
	if !ok {
		return Handle{}, false
	}
	newHandle, err := l.PushFront(value)
	if err != nil {
		// The slot we just freed is immediately available again, so
		// PushFront cannot fail here; treat it as an invariant
		// violation rather than swallow it silently.
		panic("arenalru: list.MoveToFront: PushFront failed after Remove: " + err.Error())
	}
	return newHandle, true
}

// PopBack removes and returns the tail node's payload, reporting false if
// the list is empty.
func (l *List[T]) PopBack() (T, bool) {
	var zero T
	if l.tail.IsNone() {
		return zero, false
	}
	return l.Remove(l.tail)
}

// PeekBack returns a pointer to the tail node's payload without removing
// it, or (nil, false) if the list is empty.
func (l *List[T]) PeekBack() (*T, bool) {
	if l.tail.IsNone() {
		return nil, false
	}
	node, ok := l.arena.Get(l.tail)
	if !ok {
		return nil, false
	}
	return &node.value, true
}

// Retire removes every node whose expiry has passed, scanning from the
// tail and stopping at the first node that has not yet expired. It
// returns (nil, false) if TTL is disabled for this list or if nothing
// expired this call — those two cases are indistinguishable by design,
// since both mean "nothing changed." When at least one node expires, it
// returns the expired payloads in tail-to-head order and true.
func (l *List[T]) Retire() ([]T, bool) {
	if !l.ttlEnabled {
		return nil, false
	}

	now := time.Now()
	var retired []T
	for {
		if l.tail.IsNone() {
			break
		}
		node, ok := l.arena.Get(l.tail)
		if !ok || node.expiry.After(now) {
			break
		}
		value, _ := l.Remove(l.tail)
		retired = append(retired, value)
	}

	if len(retired) == 0 {
		return nil, false
	}
	return retired, true
}
