package worker

import (
	"log/slog"
	"sync"

	"github.com/getsentry/sentry-go"
)

// Pool runs jobs on a fixed amount of background goroutines. A job that panics is reported to Sentry
// and logged, and the goroutine keeps serving the queue.
type Pool struct {
	log   *slog.Logger
	queue chan func()
	wg    sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

// New starts a Pool with the amount of workers passed. With a single worker, jobs run in the order they
// were submitted.
func New(log *slog.Logger, workers int) *Pool {
	if workers < 1 {
		workers = 1
	}
	p := &Pool{log: log, queue: make(chan func(), 64)}
	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.work()
	}
	return p
}

func (p *Pool) work() {
	defer p.wg.Done()
	for f := range p.queue {
		p.run(f)
	}
}

func (p *Pool) run(f func()) {
	defer func() {
		if v := recover(); v != nil {
			p.log.Error("worker job panicked", "err", v)
			sentry.CurrentHub().Recover(v)
		}
	}()
	f()
}

// Submit queues a job. It blocks while the queue is full and returns false if the Pool was closed, in
// which case the job is not run.
func (p *Pool) Submit(f func()) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return false
	}
	p.queue <- f
	return true
}

// Close stops accepting jobs and waits until all queued jobs have finished.
func (p *Pool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.queue)
	p.mu.Unlock()

	p.wg.Wait()
}
