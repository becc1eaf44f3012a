package bound

import (
	"slices"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantCap int
	}{
		{"regular", 10, 10},
		{"one", 1, 1},
		{"zero_clamped", 0, 1},
		{"negative_clamped", -5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := New[int](tt.size)
			if got := q.Cap(); got != tt.wantCap {
				t.Errorf("Cap() = %d, want %d", got, tt.wantCap)
			}
			// Raw allocation keeps one reserved slot beyond the capacity.
			if got := len(q.buf); got != tt.wantCap+1 {
				t.Errorf("len(buf) = %d, want %d", got, tt.wantCap+1)
			}
			if !q.IsEmpty() {
				t.Error("new queue should be empty")
			}
		})
	}
}

func TestPushPopRoundTrip(t *testing.T) {
	q := New[int](10)
	for i := 1; i <= 10; i++ {
		if !q.Push(i) {
			t.Fatalf("Push(%d) = false, want true", i)
		}
		got, ok := q.Pop()
		if !ok || got != i {
			t.Fatalf("Pop() = (%d, %v), want (%d, true)", got, ok, i)
		}
	}
	if !q.IsEmpty() {
		t.Error("queue should be empty after round trips")
	}
}

func TestFIFO(t *testing.T) {
	q := New[int](8)
	for i := 0; i < 8; i++ {
		if !q.Push(i) {
			t.Fatalf("Push(%d) = false, want true", i)
		}
	}
	for i := 0; i < 8; i++ {
		got, ok := q.Pop()
		if !ok {
			t.Fatalf("Pop() empty at item %d", i)
		}
		if got != i {
			t.Errorf("FIFO violation: got %d, want %d", got, i)
		}
	}
	if _, ok := q.Pop(); ok {
		t.Error("Pop() on drained queue should return false")
	}
}

func TestCapacityBoundary(t *testing.T) {
	q := New[int](3)

	for i := 1; i <= 3; i++ {
		if !q.Push(i) {
			t.Fatalf("Push(%d) = false, want true", i)
		}
	}
	// Tail now sits in the last raw slot with head at 0: a non-modular
	// tail+1 == head comparison would miss this full state.
	if !q.IsFull() {
		t.Error("IsFull() = false on a queue holding Cap() elements")
	}
	if q.Push(4) {
		t.Error("Push(4) = true on a full queue, want false")
	}
	if got := q.Len(); got != 3 {
		t.Errorf("Len() = %d after discarded push, want 3", got)
	}

	for want := 1; want <= 3; want++ {
		got, ok := q.Pop()
		if !ok || got != want {
			t.Fatalf("Pop() = (%d, %v), want (%d, true)", got, ok, want)
		}
	}
	if _, ok := q.Pop(); ok {
		t.Error("Pop() = true on empty queue, want false")
	}
	if !q.IsEmpty() {
		t.Error("IsEmpty() = false after draining")
	}
}

func TestFullAtEveryHeadPosition(t *testing.T) {
	// Rotate the occupied window through every slot of the raw buffer and
	// check fullness detection at each alignment.
	q := New[int](3)
	for i := 0; i < 3; i++ {
		q.Push(i)
	}
	for step := 0; step < 10; step++ {
		if !q.IsFull() {
			t.Fatalf("step %d: IsFull() = false with %d elements", step, q.Len())
		}
		if q.Push(99) {
			t.Fatalf("step %d: Push succeeded on full queue", step)
		}
		if _, ok := q.Pop(); !ok {
			t.Fatalf("step %d: Pop failed on full queue", step)
		}
		if !q.Push(step) {
			t.Fatalf("step %d: Push failed with one free slot", step)
		}
	}
}

func TestWraparoundFIFO(t *testing.T) {
	q := New[int](4)
	next := 0
	popped := 0
	q.Push(next)
	next++
	q.Push(next)
	next++
	// Keep two elements resident while pushing and popping across the
	// wrap point several times over.
	for i := 0; i < 25; i++ {
		q.Push(next)
		next++
		got, ok := q.Pop()
		if !ok || got != popped {
			t.Fatalf("Pop() = (%d, %v), want (%d, true)", got, ok, popped)
		}
		popped++
	}
	if got := q.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2", got)
	}
}

func TestPopZeroesSlot(t *testing.T) {
	q := New[*int](3)
	a, b := 1, 2
	q.Push(&a)
	q.Push(&b)

	if _, ok := q.Pop(); !ok {
		t.Fatal("Pop() failed")
	}
	if q.buf[0] != nil {
		t.Error("vacated slot still references the popped element")
	}
	if q.buf[1] == nil {
		t.Error("occupied slot was zeroed")
	}
}

func TestClear(t *testing.T) {
	q := New[*int](3)
	vals := []int{1, 2, 3, 4, 5}
	// Rotate the window off slot 0 so Clear has to wrap.
	q.Push(&vals[0])
	q.Push(&vals[1])
	q.Pop()
	q.Pop()
	q.Push(&vals[2])
	q.Push(&vals[3])
	q.Push(&vals[4])

	q.Clear()

	if !q.IsEmpty() {
		t.Error("IsEmpty() = false after Clear")
	}
	for i, p := range q.buf {
		if p != nil {
			t.Errorf("buf[%d] still holds a reference after Clear", i)
		}
	}
	if _, ok := q.Pop(); ok {
		t.Error("Pop() = true after Clear")
	}

	// Queue stays usable.
	if !q.Push(&vals[0]) {
		t.Error("Push failed after Clear")
	}
	got, ok := q.Pop()
	if !ok || got != &vals[0] {
		t.Error("round trip failed after Clear")
	}
}

func TestAll(t *testing.T) {
	q := New[int](10)
	q.Push(1)
	q.Push(2)
	q.Push(3)

	want := []int{1, 2, 3}
	if got := slices.Collect(q.All()); !slices.Equal(got, want) {
		t.Errorf("All() = %v, want %v", got, want)
	}
	// Restartable, and the queue is untouched.
	if got := slices.Collect(q.All()); !slices.Equal(got, want) {
		t.Errorf("second All() = %v, want %v", got, want)
	}
	if got := q.Len(); got != 3 {
		t.Errorf("Len() = %d after All, want 3", got)
	}
}

func TestAllWrapped(t *testing.T) {
	q := New[int](3)
	q.Push(1)
	q.Push(2)
	q.Push(3)
	q.Pop()
	q.Push(4) // tail wraps into slot 0

	want := []int{2, 3, 4}
	if got := slices.Collect(q.All()); !slices.Equal(got, want) {
		t.Errorf("All() = %v, want %v", got, want)
	}
}

func TestAllEarlyStop(t *testing.T) {
	q := New[int](10)
	q.Push(1)
	q.Push(2)
	q.Push(3)

	var got []int
	for v := range q.All() {
		got = append(got, v)
		if len(got) == 2 {
			break
		}
	}
	if want := []int{1, 2}; !slices.Equal(got, want) {
		t.Errorf("partial All() = %v, want %v", got, want)
	}
}

func TestMut(t *testing.T) {
	q := New[int](10)
	q.Push(1)
	q.Push(2)
	q.Push(3)

	for p := range q.Mut() {
		*p *= 10
	}

	want := []int{10, 20, 30}
	if got := slices.Collect(q.All()); !slices.Equal(got, want) {
		t.Errorf("after Mut: All() = %v, want %v", got, want)
	}
}

func TestDrain(t *testing.T) {
	q := New[int](10)
	q.Push(1)
	q.Push(2)
	q.Push(3)

	want := []int{1, 2, 3}
	if got := slices.Collect(q.Drain()); !slices.Equal(got, want) {
		t.Errorf("Drain() = %v, want %v", got, want)
	}
	if !q.IsEmpty() {
		t.Error("queue not empty after Drain")
	}
	if got := slices.Collect(q.Drain()); len(got) != 0 {
		t.Errorf("Drain() on empty queue = %v, want none", got)
	}
}

func BenchmarkPushPop(b *testing.B) {
	q := New[int](1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Push(i)
		q.Pop()
	}
}

func BenchmarkPushPopWrapped(b *testing.B) {
	q := New[int](1024)
	for i := 0; i < 512; i++ {
		q.Push(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Push(i)
		q.Pop()
	}
}
