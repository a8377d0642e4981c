package game

import "strings"

// Label returns the single-character coordinate label for index i:
// digits, then uppercase, then lowercase letters, then '?'.
func Label(i int) byte {
	switch {
	case i < 0:
		return '?'
	case i < 10:
		return byte('0' + i)
	case i < 36:
		return byte('A' + i - 10)
	case i < 62:
		return byte('a' + i - 36)
	}
	return '?'
}

// ParseLabel is the inverse of Label for the 62 addressable indexes.
func ParseLabel(ch byte) (int, bool) {
	switch {
	case ch >= '0' && ch <= '9':
		return int(ch - '0'), true
	case ch >= 'A' && ch <= 'Z':
		return int(ch-'A') + 10, true
	case ch >= 'a' && ch <= 'z':
		return int(ch-'a') + 36, true
	}
	return 0, false
}

// Symbol is the display character for a cell.
func Symbol(c Cell) byte {
	switch c {
	case Black:
		return '*'
	case White:
		return 'o'
	}
	return '.'
}

// Rows returns each board row as a string of display symbols.
func (b *Board) Rows() []string {
	rows := make([]string, b.height)
	buf := make([]byte, b.width)
	for r := 0; r < b.height; r++ {
		for c := 0; c < b.width; c++ {
			buf[c] = Symbol(b.at(r, c))
		}
		rows[r] = string(buf)
	}
	return rows
}

// Render draws the board with coordinate labels:
//
//	  0 1 2
//	0 . * .
//	1 o . .
func (b *Board) Render() string {
	var sb strings.Builder
	sb.WriteString("  ")
	for c := 0; c < b.width; c++ {
		sb.WriteByte(Label(c))
		sb.WriteByte(' ')
	}
	sb.WriteByte('\n')
	for r := 0; r < b.height; r++ {
		sb.WriteByte(Label(r))
		sb.WriteByte(' ')
		for c := 0; c < b.width; c++ {
			sb.WriteByte(Symbol(b.at(r, c)))
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
