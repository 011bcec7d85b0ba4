// Package heap provides Heap, an ordered-unique min-heap over (vertex, key)
// pairs with decrease-key Push semantics, used by bmssp's base case.
//
// Unlike a lazy-decrease-key priority queue, which pushes a duplicate entry
// on every key decrease and filters stale ones out on pop, Heap enforces a
// stronger invariant: each vertex appears at most once, at all times. It is
// built on container/heap with an explicit vertex→index map so Push can
// Fix() an existing entry in place instead of leaving a stale duplicate
// behind.
package heap
