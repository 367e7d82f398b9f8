// Package parallel runs independent jobs, such as encoding one canvas into
// several formats, on a fixed number of goroutines.
package parallel

import (
	"runtime"
	"sync"
)

type (
	// WorkerFunc schedules a job.
	WorkerFunc func(func())
	// WaitFunc blocks until scheduled jobs finish. When done is true the pool
	// stops accepting jobs first.
	WaitFunc func(done bool)
)

type Pool struct {
	wg    sync.WaitGroup
	work  chan func()
	close func()

	Do   WorkerFunc
	Wait WaitFunc
}

// Start launches numWorkers goroutines, or GOMAXPROCS when numWorkers < 1.
// A single worker runs every job inline on the caller's goroutine.
func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := &Pool{}
	if numWorkers == 1 {
		pool.Do = func(f func()) { f() }
		pool.Wait = func(bool) {}
		return pool
	}

	pool.work = make(chan func(), numWorkers)
	pool.close = sync.OnceFunc(func() { close(pool.work) })
	for range numWorkers {
		pool.wg.Go(func() {
			for f := range pool.work {
				f()
			}
		})
	}

	pool.Do = func(f func()) {
		pool.work <- f
	}
	pool.Wait = func(done bool) {
		if done {
			pool.close()
		}
		pool.wg.Wait()
	}
	return pool
}
