package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boardFromRows(t *testing.T, kind StorageKind, rows ...string) *Board {
	t.Helper()
	b, err := NewBoard(len(rows[0]), len(rows), kind)
	require.NoError(t, err)
	for r, line := range rows {
		for c := 0; c < len(line); c++ {
			var v Cell
			switch line[c] {
			case '*':
				v = Black
			case 'o':
				v = White
			}
			require.NoError(t, b.Set(Pos{Row: r, Col: c}, v))
		}
	}
	return b
}

func patterned(t *testing.T, kind StorageKind, width, height int) *Board {
	t.Helper()
	b, err := NewBoard(width, height, kind)
	require.NoError(t, err)
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			require.NoError(t, b.Set(Pos{Row: r, Col: c}, Cell((r*5+c*2+r*c)%3)))
		}
	}
	return b
}

func assertSameCells(t *testing.T, want, got *Board) {
	t.Helper()
	require.Equal(t, want.Width(), got.Width())
	require.Equal(t, want.Height(), got.Height())
	assert.Equal(t, want.Rows(), got.Rows())
}

func TestRotateBoardSmall(t *testing.T) {
	for _, kind := range kinds {
		old := boardFromRows(t, kind,
			"*.o",
			"o*.",
		)

		cw, err := RotateBoard(old, true)
		require.NoError(t, err)
		assert.Equal(t, 2, cw.Width())
		assert.Equal(t, 3, cw.Height())
		assert.Equal(t, []string{"o*", "*.", ".o"}, cw.Rows())

		ccw, err := RotateBoard(old, false)
		require.NoError(t, err)
		assert.Equal(t, []string{"o.", ".*", "*o"}, ccw.Rows())

		assert.Equal(t, []string{"*.o", "o*."}, old.Rows(), "source board must not change")
	}
}

func TestRotateRoundTrip(t *testing.T) {
	shapes := [][2]int{{1, 1}, {1, 7}, {7, 1}, {3, 3}, {10, 6}, {17, 9}, {33, 2}}
	for _, kind := range kinds {
		for _, s := range shapes {
			orig := patterned(t, kind, s[0], s[1])

			cw, err := RotateBoard(orig, true)
			require.NoError(t, err)
			assert.Equal(t, s[1], cw.Width())
			assert.Equal(t, s[0], cw.Height())
			back, err := RotateBoard(cw, false)
			require.NoError(t, err)
			assertSameCells(t, orig, back)

			ccw, err := RotateBoard(orig, false)
			require.NoError(t, err)
			back, err = RotateBoard(ccw, true)
			require.NoError(t, err)
			assertSameCells(t, orig, back)

			full := orig
			for i := 0; i < 4; i++ {
				full, err = RotateBoard(full, true)
				require.NoError(t, err)
			}
			assertSameCells(t, orig, full)
		}
	}
}

func TestRotatePosRoundTrip(t *testing.T) {
	width, height := 10, 6
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			p := Pos{Row: r, Col: c}
			// the rotated board is height wide and width tall
			cw := RotatePos(p, true, height, width)
			assert.Equal(t, p, RotatePos(cw, false, width, height))
			ccw := RotatePos(p, false, height, width)
			assert.Equal(t, p, RotatePos(ccw, true, width, height))
		}
	}
}

func TestRotatePosMatchesBoardRotation(t *testing.T) {
	for _, kind := range kinds {
		for _, clockwise := range []bool{true, false} {
			old := patterned(t, kind, 7, 4)
			next, err := RotateBoard(old, clockwise)
			require.NoError(t, err)

			for r := 0; r < old.Height(); r++ {
				for c := 0; c < old.Width(); c++ {
					p := Pos{Row: r, Col: c}
					want, _ := old.Get(p)
					got, err := next.Get(RotatePos(p, clockwise, next.Width(), next.Height()))
					require.NoError(t, err)
					assert.Equal(t, want, got, "%s clockwise=%v", p, clockwise)
				}
			}
		}
	}
}

func TestParallelRotatorWorkerLimit(t *testing.T) {
	for _, kind := range kinds {
		old := patterned(t, kind, 17, 9)
		unbounded, err := ParallelRotator{}.Rotate(old, true)
		require.NoError(t, err)
		for _, workers := range []int{1, 2, 5, 64} {
			limited, err := ParallelRotator{Workers: workers}.Rotate(old, true)
			require.NoError(t, err)
			assertSameCells(t, unbounded, limited)
		}
	}
}

func TestRotationKeepsQueuesConsistent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, kind := range kinds {
		g, err := NewGame(4, 9, 5, kind)
		require.NoError(t, err)

		for i := 0; i < 30; i++ {
			switch rng.Intn(4) {
			case 0:
				_ = g.Rotate(true)
			case 1:
				_ = g.Rotate(false)
			default:
				b := g.Board()
				_ = g.Place(Pos{Row: rng.Intn(b.Height()), Col: rng.Intn(b.Width())})
			}
			assertQueuesMatchBoard(t, g)
		}
	}
}

func assertQueuesMatchBoard(t *testing.T, g *Game) {
	t.Helper()
	for _, color := range []Cell{Black, White} {
		tracked := g.Tracked(color)
		assert.Equal(t, g.Board().Count(color), len(tracked), "%s count", color)
		for _, p := range tracked {
			got, err := g.Board().Get(p)
			require.NoError(t, err)
			assert.Equal(t, color, got, "%s tracked at %s", color, p)
		}
	}
}
