// worker/pool.go
package worker

// Job is a unit of persistence work run off the request path.
type Job func() error

// Result reports the outcome of one job.
type Result struct {
	JobID string
	Err   error
}

// Pool runs jobs on a fixed set of workers and reports outcomes on a
// channel so the owner can log failures.
type Pool struct {
	jobs    chan jobWrapper
	results chan Result
}

type jobWrapper struct {
	id string
	fn Job
}

func NewPool(workerCount int, bufferSize int) *Pool {
	p := &Pool{
		jobs:    make(chan jobWrapper, bufferSize),
		results: make(chan Result, bufferSize),
	}

	for i := 0; i < workerCount; i++ {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	for job := range p.jobs {
		p.results <- Result{
			JobID: job.id,
			Err:   job.fn(),
		}
	}
}

func (p *Pool) Submit(id string, fn Job) {
	p.jobs <- jobWrapper{id: id, fn: fn}
}

func (p *Pool) Results() <-chan Result {
	return p.results
}
