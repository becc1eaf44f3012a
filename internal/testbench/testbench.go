package testbench

import (
	"context"
	"time"

	"github.com/unixisevil/queue/pkg/queue"
)

// Config describes one bench run.
type Config struct {
	// Capacity is handed to bounded engines; unbounded engines ignore it.
	Capacity int
	// Warmup is how many push/pop pairs run before the timed window.
	Warmup int
}

// RunTimedTest pushes and pops on q from a single goroutine until the test
// duration expires, then drains whatever is still queued. Both engines in
// this module are single-threaded by contract, so the harness never shares
// the queue across goroutines.
// Returns the total pushes accepted, total pops that yielded an element,
// and the actual elapsed time.
func RunTimedTest[T any, Q queue.Queue[T]](
	q Q,
	cfg Config,
	testDuration time.Duration,
	valueGenerator func(int) T,
) (pushedCount, poppedCount int64, elapsed time.Duration) {

	for i := 0; i < cfg.Warmup; i++ {
		if q.Push(valueGenerator(i)) {
			q.Pop()
		}
	}

	// Create a context that will cancel after testDuration. Warmup runs
	// before this point so it never eats into the timed window.
	ctx, cancel := context.WithTimeout(context.Background(), testDuration)
	defer cancel()

	var pushed, popped int64
	idx := 0
	start := time.Now()

	// Check the deadline once per batch; a per-operation ctx.Err() call
	// would dominate the measurement.
	const batch = 1024
	for ctx.Err() == nil {
		for i := 0; i < batch; i++ {
			if q.Push(valueGenerator(idx)) {
				pushed++
			}
			idx++
			if _, ok := q.Pop(); ok {
				popped++
			}
		}
	}

	// Drain the queue until empty.
	for {
		if _, ok := q.Pop(); !ok {
			break
		}
		popped++
	}

	elapsed = time.Since(start)
	return pushed, popped, elapsed
}
