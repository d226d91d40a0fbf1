package concurrent

import (
	"errors"
	"sync"
	"time"
)

var ErrScheduleTimeout = errors.New("schedule error: timed out")

type JobFunc[T any, G any] func(job T) G

// WorkerPool runs jobs on a fixed set of goroutines. it is used two ways:
// Start/AddJob/CollectResults for typed batch work (importer), and
// Spawn/Schedule/ScheduleTimeout for fire-and-forget tasks (websocket
// request handling).
type WorkerPool[T any, G any] struct {
	numWorkers int
	jobQueue   chan T
	results    chan G
	wg         sync.WaitGroup

	work   chan func()
	taskWg sync.WaitGroup
}

func NewWorkerPool[T any, G any](numWorkers, jobQueueSize int) *WorkerPool[T, G] {
	return &WorkerPool[T, G]{
		numWorkers: numWorkers,
		jobQueue:   make(chan T, jobQueueSize),
		results:    make(chan G, jobQueueSize),
		work:       make(chan func(), jobQueueSize),
	}
}

func (wp *WorkerPool[T, G]) worker(id int, jobFunc JobFunc[T, G]) {
	defer wp.wg.Done()
	for job := range wp.jobQueue {
		res := jobFunc(job)
		wp.results <- res
	}
}

func (wp *WorkerPool[T, G]) Start(jobFunc JobFunc[T, G]) {
	for i := 1; i <= wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.worker(i, jobFunc)
	}
}

func (wp *WorkerPool[T, G]) Wait() {
	wp.wg.Wait()
	close(wp.results)
}

func (wp *WorkerPool[T, G]) AddJob(job T) {
	wp.jobQueue <- job
}

func (wp *WorkerPool[T, G]) CollectResults() chan G {
	return wp.results
}

// Spawn launches n resident goroutines consuming scheduled tasks.
func (wp *WorkerPool[T, G]) Spawn(n int) {
	for i := 0; i < n; i++ {
		wp.taskWg.Add(1)
		go func() {
			defer wp.taskWg.Done()
			for task := range wp.work {
				task()
			}
		}()
	}
}

// Schedule blocks until a worker accepts the task.
func (wp *WorkerPool[T, G]) Schedule(task func()) {
	wp.work <- task
}

// ScheduleTimeout gives up with ErrScheduleTimeout when no worker accepts
// the task within timeout.
func (wp *WorkerPool[T, G]) ScheduleTimeout(timeout time.Duration, task func()) error {
	select {
	case wp.work <- task:
		return nil
	case <-time.After(timeout):
		return ErrScheduleTimeout
	}
}

// Close stops both intake channels; resident workers drain and exit.
func (wp *WorkerPool[T, G]) Close() {
	close(wp.jobQueue)
	close(wp.work)
	wp.taskWg.Wait()
}
