package famines

import (
	"sync"
	"testing"
)

func TestSampleQueueFIFO(t *testing.T) {
	q := NewSampleQueue(8)
	for i := 0; i < 5; i++ {
		q.Push(float32(i))
	}
	for i := 0; i < 5; i++ {
		got, ok := q.Pop()
		if !ok || got != float32(i) {
			t.Fatalf("pop %d = %f,%v", i, got, ok)
		}
	}
	if _, ok := q.Pop(); ok {
		t.Fatal("pop from empty queue succeeded")
	}
}

func TestSampleQueueDropsOldestWhenFull(t *testing.T) {
	q := NewSampleQueue(4)
	for i := 0; i < 6; i++ {
		q.Push(float32(i))
	}
	// capacity 4: samples 0 and 1 were overwritten
	want := []float32{2, 3, 4, 5}
	for _, w := range want {
		got, ok := q.Pop()
		if !ok || got != w {
			t.Fatalf("pop = %f,%v, want %f", got, ok, w)
		}
	}
}

func TestSampleQueueCapacityRoundsUp(t *testing.T) {
	q := NewSampleQueue(5)
	if len(q.buf) != 8 {
		t.Fatalf("capacity = %d, want 8", len(q.buf))
	}
}

func TestSampleQueueConcurrentProducerConsumer(t *testing.T) {
	q := NewSampleQueue(1024)
	const n = 100000

	var wg sync.WaitGroup
	wg.Add(1)
	producerDone := make(chan struct{})
	var outOfOrder bool
	go func() {
		defer wg.Done()
		lastSeen := float32(-1)
		for {
			v, ok := q.Pop()
			if !ok {
				select {
				case <-producerDone:
					if q.Len() == 0 {
						return
					}
				default:
				}
				continue
			}
			if v <= lastSeen {
				outOfOrder = true
				return
			}
			lastSeen = v
		}
	}()

	for i := 0; i < n; i++ {
		q.Push(float32(i))
	}
	close(producerDone)
	wg.Wait()

	if outOfOrder {
		t.Fatal("samples observed out of FIFO order")
	}
}
