package game

// Scan reports the outcome of board b when run pieces in a row win.
//
// Rows are checked first, then columns, then down-right diagonals; the first
// run found decides the result. Down-left diagonals are not considered.
func Scan(b *Board, run int) Outcome {
	if run <= 0 {
		return InProgress
	}
	for r := 0; r < b.height; r++ {
		if o := scanLine(b, run, r, 0, 0, 1); o != InProgress {
			return o
		}
	}
	for c := 0; c < b.width; c++ {
		if o := scanLine(b, run, 0, c, 1, 0); o != InProgress {
			return o
		}
	}
	for r := 0; r+run <= b.height; r++ {
		for c := 0; c+run <= b.width; c++ {
			if o := diagonalWindow(b, run, r, c); o != InProgress {
				return o
			}
		}
	}
	if b.Count(Empty) == 0 {
		return Draw
	}
	return InProgress
}

// scanLine walks from (r, c) in steps of (dr, dc) counting consecutive
// same-colored cells.
func scanLine(b *Board, run, r, c, dr, dc int) Outcome {
	var prev Cell
	count := 0
	for ; r < b.height && c < b.width; r, c = r+dr, c+dc {
		cur := b.at(r, c)
		switch {
		case cur == Empty:
			count = 0
		case cur == prev:
			count++
		default:
			count = 1
		}
		prev = cur
		if count == run {
			return winFor(cur)
		}
	}
	return InProgress
}

// diagonalWindow checks the run cells starting at (r, c) going down-right.
func diagonalWindow(b *Board, run, r, c int) Outcome {
	first := b.at(r, c)
	if first == Empty {
		return InProgress
	}
	for k := 1; k < run; k++ {
		if b.at(r+k, c+k) != first {
			return InProgress
		}
	}
	return winFor(first)
}
