package vector

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// Example demonstrates basic vector usage
func Example() {
	// The zero value is ready to use and draws from the Go heap
	var v Vector[int]
	defer v.Release()

	for i := range 5 {
		if err := v.PushBack(i * 10); err != nil {
			panic(err)
		}
	}
	fmt.Printf("Len: %d, Cap: %d\n", v.Len(), v.Cap())

	// Insert two copies of -1 before index 2
	if err := v.Insert(2, 2, -1); err != nil {
		panic(err)
	}
	fmt.Printf("After insert: %v\n", v.Slice())

	for i, x := range v.Backward() {
		if i < v.Len()-2 {
			break
		}
		fmt.Printf("v[%d] = %d\n", i, x)
	}

	// Output:
	// Len: 5, Cap: 8
	// After insert: [0 10 -1 -1 20 30 40]
	// v[6] = 40
	// v[5] = 30
}

// ExampleVector_Reserve demonstrates capacity control
func ExampleVector_Reserve() {
	v := New[string](nil)
	defer v.Release()

	if err := v.Reserve(100); err != nil {
		panic(err)
	}
	fmt.Printf("Len: %d, Cap: %d\n", v.Len(), v.Cap())

	// No reallocation until capacity runs out
	for i := range 100 {
		_ = v.PushBack(fmt.Sprint(i))
	}
	fmt.Printf("Len: %d, Cap: %d\n", v.Len(), v.Cap())

	_ = v.PushBack("one more")
	fmt.Printf("Len: %d, Cap: %d\n", v.Len(), v.Cap())

	// Output:
	// Len: 0, Cap: 100
	// Len: 100, Cap: 100
	// Len: 101, Cap: 200
}

// ExampleVector_Get demonstrates checked access
func ExampleVector_Get() {
	v, _ := NewFromSlice[rune](nil, []rune("go"))

	if r, err := v.Get(1); err == nil {
		fmt.Printf("v[1] = %c\n", r)
	}
	if _, err := v.Get(5); err != nil {
		fmt.Println(err)
	}

	// Output:
	// v[1] = o
	// vector: get 5 of 2: vector: index out of range
}

// ExampleArenaAllocator demonstrates request-scoped vectors backed by one arena
func ExampleArenaAllocator() {
	handleRequest := func(requestID int) {
		a := NewArenaAllocator[int64](4096) // 512 slots per chunk
		defer a.Release()

		ids := New[int64](a)
		for i := range 100 {
			_ = ids.PushBack(int64(requestID*1000 + i))
		}

		fmt.Printf("Request %d: %d ids, last %d\n", requestID, ids.Len(), ids.Back())
		fmt.Printf("Arena utilization: %.1f%%\n", a.Utilization()*100)
	}

	for i := 1; i <= 2; i++ {
		handleRequest(i)
	}

	// Output:
	// Request 1: 100 ids, last 1099
	// Arena utilization: 49.8%
	// Request 2: 100 ids, last 2099
	// Arena utilization: 49.8%
}

// ExampleCountingAllocator demonstrates auditing a vector's storage traffic
func ExampleCountingAllocator() {
	ca := NewCountingAllocator[string](nil)
	v, _ := NewFilled[string](ca, 3, "x")
	_ = v.PushBack("y")
	v.Release()

	s := ca.Stats()
	fmt.Printf("allocs=%d deallocs=%d constructs=%d destroys=%d\n",
		s.Allocs, s.Deallocs, s.Constructs, s.Destroys)

	// Output:
	// allocs=2 deallocs=2 constructs=7 destroys=7
}

// ExampleTracingAllocator demonstrates logging allocator traffic
func ExampleTracingAllocator() {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetLevel(logrus.DebugLevel)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	v := New[int](NewTracingAllocator[int](nil, logger))
	_ = v.Append(1, 2, 3)
	v.Release()

	// Output:
	// level=debug msg="Allocated storage" elem=int op=allocate prefix=vector slots=3
	// level=debug msg="Released storage" elem=int op=deallocate prefix=vector slots=3
}
