package testbench

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/unixisevil/queue/pkg/bound"
	"github.com/unixisevil/queue/pkg/queue"
	"github.com/unixisevil/queue/pkg/unbound"
)

func TestRunTimedTest(t *testing.T) {
	tests := []struct {
		name string
		q    queue.Queue[int]
	}{
		{"bound", bound.New[int](128)},
		{"unbound", unbound.New[int]()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pushed, popped, elapsed := RunTimedTest(
				tt.q,
				Config{Capacity: 128, Warmup: 10},
				50*time.Millisecond,
				func(i int) int { return i },
			)

			require.Positive(t, pushed, "timed window must push something")
			// Every accepted push is popped either inline or by the
			// final drain.
			require.Equal(t, pushed, popped)
			require.True(t, tt.q.IsEmpty(), "harness must leave the queue drained")
			require.GreaterOrEqual(t, elapsed, 50*time.Millisecond)
		})
	}
}
