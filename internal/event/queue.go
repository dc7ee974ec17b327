package event

// Queue collects events raised during a simulation tick. The session drains
// it once per tick so listeners always observe tick order.
type Queue struct {
	pending []Event
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push appends an event.
func (q *Queue) Push(e Event) {
	q.pending = append(q.pending, e)
}

// Len reports events waiting to be drained.
func (q *Queue) Len() int {
	return len(q.pending)
}

// Drain dispatches every queued event in FIFO order and empties the queue.
// Events pushed by listeners during the drain are delivered in the same call.
func (q *Queue) Drain(d *Dispatcher) int {
	n := 0
	for n < len(q.pending) {
		e := q.pending[n]
		n++
		if d != nil {
			d.Dispatch(e)
		}
	}
	q.pending = q.pending[:0]
	return n
}
