// Package blockheap provides BlockHeap, the bucketed pull-many priority
// structure the bmssp recursion uses to surface a distance-contiguous block
// of up to M vertices per Pull, along with the residual minimum bound for
// whatever remains.
//
// BlockHeap is built directly on top of heap.Heap: Insert and BatchPrepend
// both reduce to the same decrease-key Push, so the whole structure only
// ever needs one ordered-unique core. BatchPrepend's name suggests an
// ordered prepend ahead of the next block, but it re-inserts into the same
// ordered heap instead: a bucket that is always drained before the main
// heap can surface a higher-keyed entry ahead of a lower-keyed one the
// block-size budget cuts off first, which would let a pulled block contain
// a key above the residual bound it reports. Re-insertion keeps the heap
// globally sorted and never has that problem.
package blockheap
