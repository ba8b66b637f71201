package pressure

import "container/heap"

// Queue is a FIFO queue.
type Queue[T any] struct {
	q    []T
	head int
}

// NewQueue returns a queue holding in, front first.
func NewQueue[T any](in ...T) Queue[T] {
	return Queue[T]{q: in}
}

func (q *Queue[T]) Len() int {
	return len(q.q) - q.head
}

func (q *Queue[T]) Push(v T) {
	q.q = append(q.q, v)
}

func (q *Queue[T]) Pop() (T, bool) {
	if q.Len() == 0 {
		var zero T
		return zero, false
	}
	v := q.q[q.head]
	q.head++
	if q.head == len(q.q) {
		q.q, q.head = q.q[:0], 0
	}
	return v, true
}

// While pops values until the queue is empty or f returns false.
func (q *Queue[T]) While(f func(T) bool) {
	for {
		v, ok := q.Pop()
		if !ok || !f(v) {
			return
		}
	}
}

// PQI is an item in a PQ with priority P.
type PQI[T any] struct {
	V  T
	P  int
	ix int
}

// PQ is a min priority queue: Pop returns the item with the lowest P.
type PQ[T any] struct {
	pq pq[T]
}

func (pq *PQ[T]) Push(v *PQI[T]) {
	heap.Push(&pq.pq, v)
}

func (pq *PQ[T]) Pop() *PQI[T] {
	return heap.Pop(&pq.pq).(*PQI[T])
}

func (pq *PQ[T]) Len() int {
	return pq.pq.Len()
}

type pq[T any] []*PQI[T]

func (pq pq[T]) Len() int           { return len(pq) }
func (pq pq[T]) Less(i, j int) bool { return pq[i].P < pq[j].P }

func (pq pq[T]) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].ix = i
	pq[j].ix = j
}

func (pq *pq[T]) Push(x any) {
	i := x.(*PQI[T])
	i.ix = len(*pq)
	*pq = append(*pq, i)
}

func (pq *pq[T]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil // avoid memory leak
	item.ix = -1
	*pq = old[:n-1]
	return item
}
