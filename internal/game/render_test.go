package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabel(t *testing.T) {
	cases := map[int]byte{
		0: '0', 9: '9', 10: 'A', 35: 'Z', 36: 'a', 61: 'z', 62: '?', 100: '?', -1: '?',
	}
	for i, want := range cases {
		assert.Equal(t, string(want), string(Label(i)), "index %d", i)
	}
}

func TestParseLabelInvertsLabel(t *testing.T) {
	for i := 0; i < 62; i++ {
		got, ok := ParseLabel(Label(i))
		require.True(t, ok, "index %d", i)
		assert.Equal(t, i, got)
	}
	for _, ch := range []byte{'?', '!', ' ', '-'} {
		_, ok := ParseLabel(ch)
		assert.False(t, ok, "%q", ch)
	}
}

func TestRender(t *testing.T) {
	for _, kind := range kinds {
		b, err := NewBoard(3, 2, kind)
		require.NoError(t, err)
		require.NoError(t, b.Set(Pos{Row: 0, Col: 0}, Black))
		require.NoError(t, b.Set(Pos{Row: 0, Col: 2}, White))

		assert.Equal(t, "  0 1 2 \n0 * . o \n1 . . . \n", b.Render())
		assert.Equal(t, []string{"*.o", "..."}, b.Rows())
	}
}

func TestRenderLabelsWideBoards(t *testing.T) {
	b, err := NewBoard(12, 1, Packed)
	require.NoError(t, err)
	assert.Equal(t, "  0 1 2 3 4 5 6 7 8 9 A B \n0 . . . . . . . . . . . . \n", b.Render())
}
