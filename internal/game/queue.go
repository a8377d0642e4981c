package game

import "github.com/gammazero/deque"

// MoveQueue records one color's placements in placement order. The head is
// the oldest piece still tracked.
type MoveQueue struct {
	entries deque.Deque[Pos]
}

func NewMoveQueue() *MoveQueue {
	return &MoveQueue{}
}

func (q *MoveQueue) Enqueue(p Pos) {
	q.entries.PushBack(p)
}

func (q *MoveQueue) Dequeue() (Pos, error) {
	if q.entries.Len() == 0 {
		return Pos{}, ErrEmptyQueue
	}
	return q.entries.PopFront(), nil
}

func (q *MoveQueue) PeekHead() (Pos, error) {
	if q.entries.Len() == 0 {
		return Pos{}, ErrEmptyQueue
	}
	return q.entries.Front(), nil
}

func (q *MoveQueue) Len() int {
	return q.entries.Len()
}

// Positions returns a copy of the tracked positions, head first.
func (q *MoveQueue) Positions() []Pos {
	out := make([]Pos, q.entries.Len())
	for i := range out {
		out[i] = q.entries.At(i)
	}
	return out
}

// transform builds a new queue holding fn applied to every entry, in order.
func (q *MoveQueue) transform(fn func(Pos) Pos) *MoveQueue {
	out := NewMoveQueue()
	for i := 0; i < q.entries.Len(); i++ {
		out.entries.PushBack(fn(q.entries.At(i)))
	}
	return out
}
