package game

import "sync/atomic"

const wordBits = 32

// cellStore is the representation behind a Board. Indexes are already
// bounds-checked by the Board.
type cellStore interface {
	get(row, col int) Cell
	set(row, col int, c Cell)
}

type denseStore struct {
	rows [][]Cell
}

func newDenseStore(width, height int) *denseStore {
	rows := make([][]Cell, height)
	for r := range rows {
		rows[r] = make([]Cell, width)
	}
	return &denseStore{rows: rows}
}

func (s *denseStore) get(row, col int) Cell {
	return s.rows[row][col]
}

func (s *denseStore) set(row, col int, c Cell) {
	s.rows[row][col] = c
}

// packedStore keeps two bits per cell, little-endian within uint32 words.
type packedStore struct {
	width int
	words []uint32
}

func newPackedStore(width, height int) *packedStore {
	bits := 2 * width * height
	return &packedStore{
		width: width,
		words: make([]uint32, (bits+wordBits-1)/wordBits),
	}
}

func (s *packedStore) offset(row, col int) (word int, shift uint) {
	i := 2 * (row*s.width + col)
	return i / wordBits, uint(i % wordBits)
}

func (s *packedStore) get(row, col int) Cell {
	w, shift := s.offset(row, col)
	return Cell((atomic.LoadUint32(&s.words[w]) >> shift) & 0x3)
}

// set swaps the whole word so writers of different cells in the same word
// (neighbouring rows during rotation) never drop each other's bits.
func (s *packedStore) set(row, col int, c Cell) {
	w, shift := s.offset(row, col)
	mask := uint32(0x3) << shift
	for {
		old := atomic.LoadUint32(&s.words[w])
		next := (old &^ mask) | (uint32(c)&0x3)<<shift
		if atomic.CompareAndSwapUint32(&s.words[w], old, next) {
			return
		}
	}
}
