//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestQueue_RunsInOrderOnOneGoroutine posts from many goroutines and checks FIFO per producer.
func TestQueue_RunsInOrderOnOneGoroutine(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	q := NewQueue()

	done := make(chan struct{})

	go func() {
		q.Run(ctx)
		close(done)
	}()

	const producers, perProducer = 4, 50

	var (
		mu   sync.Mutex
		seen = make(map[int][]int)
		wg   sync.WaitGroup
	)

	for p := range producers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for i := range perProducer {
				q.Post(func() {
					mu.Lock()
					seen[p] = append(seen[p], i)
					mu.Unlock()
				})
			}
		}()
	}

	wg.Wait()

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()

		total := 0
		for _, values := range seen {
			total += len(values)
		}

		return total == producers*perProducer
	}, time.Second, time.Millisecond)

	mu.Lock()
	for p := range producers {
		for i, v := range seen[p] {
			require.Equal(t, i, v)
		}
	}
	mu.Unlock()

	cancel()
	<-done
}

// TestQueue_DropsAfterRunReturns ensures posts after shutdown are ignored.
func TestQueue_DropsAfterRunReturns(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	q := NewQueue()
	q.Run(ctx)

	called := false

	q.Post(func() { called = true })

	require.False(t, called)
	_, ok := q.pop()
	require.False(t, ok)
}

// TestDispatcherFunc checks the adapter forwards callbacks.
func TestDispatcherFunc(t *testing.T) {
	t.Parallel()

	ran := false

	var d Dispatcher = DispatcherFunc(func(fn func()) { fn() })

	d.Post(func() { ran = true })
	require.True(t, ran)
}
