package worklist

// Worklist is a FIFO queue driving fixed-point iteration. Elements may be
// enqueued more than once; convergence is the processing function's
// responsibility (monotone transfer over a finite-height lattice).
type Worklist[T any] struct {
	list []T
}

func Empty[T any]() Worklist[T] {
	return Worklist[T]{}
}

// Start runs worklist iteration from a single element. The iteration
// function receives the next element and a function with which to enqueue
// further elements.
func Start[T any](start T, do func(next T, add func(el T))) {
	StartV([]T{start}, do)
}

// StartV runs worklist iteration with a preloaded queue.
func StartV[T any](start []T, do func(next T, add func(el T))) {
	w := Empty[T]()
	for _, el := range start {
		w.Add(el)
	}
	w.Process(do)
}

func (w *Worklist[T]) Add(el T) {
	w.list = append(w.list, el)
}

func (w *Worklist[T]) GetNext() (next T) {
	if len(w.list) == 0 {
		return
	}
	next = w.list[0]
	w.list = w.list[1:]
	return next
}

func (w *Worklist[T]) IsEmpty() bool {
	return len(w.list) == 0
}

func (w *Worklist[T]) Process(do func(next T, add func(el T))) {
	for !w.IsEmpty() {
		do(w.GetNext(), w.Add)
	}
}
