// Package queue implements the bounded work queue that fans raster work out
// to the worker pool each frame.
//
// The design is single-producer / multi-consumer: the host goroutine is the
// only producer and also participates in consumption while it waits for the
// frame's work to finish. Entries live in a fixed 512-slot ring. Consumers
// claim entries by compare-and-swap on the read index, so idle workers steal
// work without locks; a counting semaphore parks them when the ring is
// empty.
//
// Two rules make the counter reset in Complete safe and must be upheld by
// callers: only the host goroutine calls Enqueue and Complete, and a frame's
// entries are fully drained before the next frame enqueues. Shutdown is not
// supported; workers live until process exit.
package queue

import (
	"fmt"
	"runtime"
	"sync/atomic"
)

// Capacity is the fixed ring size. One slot stays reserved so a full ring
// is distinguishable from an empty one, leaving room for Capacity-1 pending
// entries.
const Capacity = 512

// TaskFunc is a queued callback. Callbacks must not panic for expected
// failures; anything they can fail on travels through their data value.
type TaskFunc func(data any)

type entry struct {
	data any
	work TaskFunc
}

// Queue is the shared ring. The index words sit on separate cache lines so
// producer stores do not bounce the consumers' line.
type Queue struct {
	_          [64]byte
	readIndex  atomic.Uint32
	_          [60]byte
	writeIndex atomic.Uint32
	_          [60]byte

	completionTarget atomic.Uint32
	completionCount  atomic.Uint32

	sem     chan struct{}
	entries [Capacity]entry
}

// New creates an empty queue with no workers attached.
func New() *Queue {
	return &Queue{sem: make(chan struct{}, Capacity)}
}

// DefaultWorkerCount is the pool size the game runs with: one worker per
// processor, capped at 8.
func DefaultWorkerCount() int {
	n := runtime.NumCPU()
	if n > 8 {
		n = 8
	}
	return n
}

// Start launches the worker pool. Each worker loops forever: claim an
// entry, or park on the semaphore when the ring is empty. When recoverFn is
// non-nil it receives the value of any callback panic, standing in for the
// process crash handler.
func (q *Queue) Start(workers int, recoverFn func(any)) {
	for i := 0; i < workers; i++ {
		go func() {
			if recoverFn != nil {
				defer func() {
					if r := recover(); r != nil {
						recoverFn(r)
					}
				}()
			}
			for {
				if q.tryDequeue() {
					<-q.sem
				}
			}
		}()
	}
}

// Enqueue publishes one entry. Host goroutine only. Overflow is a
// programmer error: per-frame work is bounded and must fit the ring.
func (q *Queue) Enqueue(data any, work TaskFunc) {
	write := q.writeIndex.Load()
	newWrite := (write + 1) % Capacity
	if newWrite == q.readIndex.Load() {
		panic(fmt.Sprintf("work queue overflow: %d entries pending", Capacity-1))
	}

	q.entries[write] = entry{data: data, work: work}
	q.completionTarget.Add(1)

	// The entry write above must be visible before consumers can observe
	// the advanced write index.
	q.writeIndex.Store(newWrite)

	// Wakeup hint. With the channel capacity matching the ring, a dropped
	// token means enough tokens are already outstanding to wake every
	// sleeper, so no pending entry can be stranded.
	select {
	case q.sem <- struct{}{}:
	default:
	}
}

// tryDequeue attempts to claim and run one entry. It reports true when the
// ring looked empty, which is the signal to wait on the semaphore. A lost
// claim race reports false so the caller retries immediately.
func (q *Queue) tryDequeue() (empty bool) {
	read := q.readIndex.Load()
	if read == q.writeIndex.Load() {
		return true
	}

	newRead := (read + 1) % Capacity
	if q.readIndex.CompareAndSwap(read, newRead) {
		claimed := q.entries[read]
		claimed.work(claimed.data)
		q.completionCount.Add(1)
	}
	return false
}

// Complete blocks until every enqueued callback has run, then resets both
// completion counters. The caller drains entries itself and never touches
// the semaphore, so the frame finishes even if every worker is descheduled.
// Host goroutine only; the reset is safe only because the sole producer is
// the goroutine sitting here.
func (q *Queue) Complete() {
	for q.completionTarget.Load() > q.completionCount.Load() {
		if q.tryDequeue() {
			// Ring empty but callbacks still in flight on workers.
			runtime.Gosched()
		}
	}
	q.completionTarget.Store(0)
	q.completionCount.Store(0)
}

// Pending reports how many published entries have not been claimed yet.
// The value is a snapshot and can be stale immediately.
func (q *Queue) Pending() int {
	read := q.readIndex.Load()
	write := q.writeIndex.Load()
	return int((write + Capacity - read) % Capacity)
}
