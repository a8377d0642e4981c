package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveQueueFIFO(t *testing.T) {
	q := NewMoveQueue()
	assert.Equal(t, 0, q.Len())

	q.Enqueue(Pos{Row: 1, Col: 1})
	q.Enqueue(Pos{Row: 5, Col: 7})
	assert.Equal(t, 2, q.Len())

	head, err := q.PeekHead()
	require.NoError(t, err)
	assert.Equal(t, Pos{Row: 1, Col: 1}, head)

	got, err := q.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, Pos{Row: 1, Col: 1}, got)
	assert.Equal(t, 1, q.Len())

	head, err = q.PeekHead()
	require.NoError(t, err)
	assert.Equal(t, Pos{Row: 5, Col: 7}, head)

	_, err = q.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, 0, q.Len())
}

func TestMoveQueueEmpty(t *testing.T) {
	q := NewMoveQueue()
	_, err := q.Dequeue()
	assert.ErrorIs(t, err, ErrEmptyQueue)
	_, err = q.PeekHead()
	assert.ErrorIs(t, err, ErrEmptyQueue)
	assert.Empty(t, q.Positions())
}

func TestMoveQueuePositionsIsACopy(t *testing.T) {
	q := NewMoveQueue()
	q.Enqueue(Pos{Row: 2, Col: 2})
	q.Enqueue(Pos{Row: 3, Col: 0})

	ps := q.Positions()
	require.Equal(t, []Pos{{Row: 2, Col: 2}, {Row: 3, Col: 0}}, ps)
	ps[0] = Pos{Row: 9, Col: 9}

	head, err := q.PeekHead()
	require.NoError(t, err)
	assert.Equal(t, Pos{Row: 2, Col: 2}, head)
}

func TestMoveQueueTransformKeepsOrder(t *testing.T) {
	q := NewMoveQueue()
	for i := 0; i < 5; i++ {
		q.Enqueue(Pos{Row: i, Col: 10 - i})
	}
	swapped := q.transform(func(p Pos) Pos { return Pos{Row: p.Col, Col: p.Row} })

	want := []Pos{{Row: 10, Col: 0}, {Row: 9, Col: 1}, {Row: 8, Col: 2}, {Row: 7, Col: 3}, {Row: 6, Col: 4}}
	assert.Equal(t, want, swapped.Positions())
	assert.Equal(t, 5, q.Len())
	head, _ := q.PeekHead()
	assert.Equal(t, Pos{Row: 0, Col: 10}, head)
}
