// Command demo performs one push/pop round trip on each queue engine and
// prints the popped values.
package main

import (
	"fmt"

	"github.com/unixisevil/queue/pkg/bound"
	"github.com/unixisevil/queue/pkg/queue"
	"github.com/unixisevil/queue/pkg/unbound"
)

func main() {
	pushPop[int32](bound.New[int32](10), 432)
	pushPop[string](unbound.New[string](), "hello")
}

func pushPop[T any](q queue.Queue[T], item T) {
	q.Push(item)
	v, ok := q.Pop()
	fmt.Printf("%#v %v\n", v, ok)
}
