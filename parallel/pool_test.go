package parallel_test

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tigleym/ray-tracer/parallel"
)

func TestPool_RunsEveryJob(t *testing.T) {
	for _, workers := range []int{0, 1, 4} {
		pool := parallel.Start(workers)

		var n atomic.Int64
		for range 100 {
			pool.Do(func() { n.Add(1) })
		}
		pool.Wait(true)

		assert.Equal(t, int64(100), n.Load(), "workers=%d", workers)
	}
}

func TestPool_WaitTwice(t *testing.T) {
	pool := parallel.Start(2)
	pool.Do(func() {})
	pool.Wait(true)
	assert.NotPanics(t, func() { pool.Wait(true) })
}
