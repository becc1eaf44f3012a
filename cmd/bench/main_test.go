package main

import (
	"testing"
	"time"

	"github.com/unixisevil/queue/internal/testbench"
)

func TestGetImplementations(t *testing.T) {
	impls := getImplementations()
	if len(impls) != 2 {
		t.Fatalf("got %d implementations, want 2", len(impls))
	}
	for _, impl := range impls {
		if impl.newQueue == nil {
			t.Fatalf("%s has no constructor", impl.name)
		}
		q := impl.newQueue(8)
		v := 7
		if !q.Push(&v) {
			t.Errorf("%s: Push on fresh queue failed", impl.name)
		}
		got, ok := q.Pop()
		if !ok || *got != 7 {
			t.Errorf("%s: round trip failed", impl.name)
		}
	}
}

func TestShortBenchRun(t *testing.T) {
	for _, impl := range getImplementations() {
		t.Run(impl.name, func(t *testing.T) {
			q := impl.newQueue(64)
			pushed, popped, _ := testbench.RunTimedTest(
				q,
				testbench.Config{Capacity: 64, Warmup: 8},
				20*time.Millisecond,
				func(i int) *int {
					v := i
					return &v
				},
			)
			if pushed == 0 {
				t.Error("no pushes recorded")
			}
			if pushed != popped {
				t.Errorf("pushed %d but popped %d; drain must account for every element", pushed, popped)
			}
		})
	}
}
