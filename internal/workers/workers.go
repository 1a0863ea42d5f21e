package workers

// Workers runs a fixed set of workers in registration order.
type Workers struct {
	workers []Worker
}

// NewWorkers registers the given workers.
func NewWorkers(w ...Worker) *Workers {
	return &Workers{workers: w}
}

// Run starts every registered worker in order.
func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
