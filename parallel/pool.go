// Package parallel runs independent jobs on a fixed set of workers.
package parallel

import (
	"runtime"
	"sync"
)

type (
	// WorkerFunc queues a job. It may block while all workers are busy.
	WorkerFunc func(func())
	// WaitFunc blocks until queued jobs are finished. With done set, no
	// further jobs may be queued.
	WaitFunc   func(done bool)
	CancelFunc func()
)

type Pool struct {
	wg      sync.WaitGroup
	Workers int
	Do      WorkerFunc
	Wait    WaitFunc
	Cancel  CancelFunc
}

// Start launches numWorkers workers, GOMAXPROCS when below one. A single
// worker runs every job inline on the caller's goroutine.
func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := &Pool{
		Workers: numWorkers,
		Do: func(f func()) {
			f()
		},
		Wait:   func(bool) {},
		Cancel: func() {},
	}

	if numWorkers > 1 {
		jobs := make(chan func(), numWorkers)
		var pending sync.WaitGroup

		for range numWorkers {
			pool.wg.Go(func() {
				for f := range jobs {
					f()
					pending.Done()
				}
			})
		}

		pool.Do = func(f func()) {
			pending.Add(1)
			jobs <- f
		}

		pool.Cancel = sync.OnceFunc(func() { close(jobs) })
		pool.Wait = func(done bool) {
			if done {
				pool.Cancel()
				pool.wg.Wait()
				return
			}
			pending.Wait()
		}
	}

	return pool
}
