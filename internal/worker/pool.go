package worker

import (
	"context"
	"sync"
)

// Job represents a unit of work to be executed
type Job interface {
	Execute(ctx context.Context) Result
}

// Result represents the result of a job execution
type Result interface {
	GetError() error
}

// Pool runs jobs on a fixed number of goroutines. Results are drained by a
// collector as they arrive, so Submit never waits on result consumers.
type Pool struct {
	workers     int
	jobQueue    chan Job
	results     chan Result
	collected   []Result
	collectDone chan struct{}
	wg          sync.WaitGroup
	ctx         context.Context
	cancelFunc  context.CancelFunc
	closeOnce   sync.Once
}

// NewPool creates a pool bound to ctx. Cancelling ctx stops the workers and
// drops queued jobs.
func NewPool(ctx context.Context, workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}

	ctx, cancel := context.WithCancel(ctx)

	return &Pool{
		workers:     workers,
		jobQueue:    make(chan Job, workers*2),
		results:     make(chan Result, workers*2),
		collectDone: make(chan struct{}),
		ctx:         ctx,
		cancelFunc:  cancel,
	}
}

// Start launches the workers and the result collector.
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	go p.collect()
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.ctx.Done():
			return
		case job, ok := <-p.jobQueue:
			if !ok {
				return
			}
			p.results <- job.Execute(p.ctx)
		}
	}
}

func (p *Pool) collect() {
	defer close(p.collectDone)
	for result := range p.results {
		p.collected = append(p.collected, result)
	}
}

// Submit queues a job. It returns false if the pool was cancelled first.
// Submit must not be called after Wait.
func (p *Pool) Submit(job Job) bool {
	select {
	case <-p.ctx.Done():
		return false
	case p.jobQueue <- job:
		return true
	}
}

// Wait closes the queue, waits for the workers and returns every result in
// completion order.
func (p *Pool) Wait() []Result {
	p.closeOnce.Do(func() {
		close(p.jobQueue)
		p.wg.Wait()
		close(p.results)
	})
	<-p.collectDone
	p.cancelFunc()
	return p.collected
}

type indexedJob[T any] struct {
	index int
	fn    func(ctx context.Context, i int) (T, error)
}

type indexedResult[T any] struct {
	index int
	value T
	err   error
}

func (r *indexedResult[T]) GetError() error { return r.err }

func (j *indexedJob[T]) Execute(ctx context.Context) Result {
	v, err := j.fn(ctx, j.index)
	return &indexedResult[T]{index: j.index, value: v, err: err}
}

// Map runs fn for every index in [0,n) on a pool and returns values and
// errors in index order. Indexes that never ran because ctx ended carry the
// context error.
func Map[T any](ctx context.Context, workers, n int, fn func(ctx context.Context, i int) (T, error)) ([]T, []error) {
	values := make([]T, n)
	errs := make([]error, n)
	if n == 0 {
		return values, errs
	}
	if workers > n {
		workers = n
	}

	pool := NewPool(ctx, workers)
	pool.Start()
	for i := 0; i < n; i++ {
		if !pool.Submit(&indexedJob[T]{index: i, fn: fn}) {
			break
		}
	}

	ran := make([]bool, n)
	for _, r := range pool.Wait() {
		res := r.(*indexedResult[T])
		values[res.index] = res.value
		errs[res.index] = res.err
		ran[res.index] = true
	}
	for i := range ran {
		if !ran[i] {
			errs[i] = context.Cause(ctx)
			if errs[i] == nil {
				errs[i] = context.Canceled
			}
		}
	}
	return values, errs
}
