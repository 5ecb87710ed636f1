package tilemap

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tile bool

func solid(t tile) bool { return bool(t) }

func TestGetSet(t *testing.T) {
	var m TileMap[tile]
	m.Set(0, 0, true)
	m.Set(Size-1, Size-1, true)
	m.Set(3, 7, true)

	assert.True(t, bool(m.Get(0, 0)))
	assert.True(t, bool(m.Get(Size-1, Size-1)))
	assert.True(t, bool(m.Get(3, 7)))
	assert.False(t, bool(m.Get(7, 3)), "x and y must not be transposed")
	assert.False(t, bool(m.Get(-1, -1)), "padding stays empty")
	assert.False(t, bool(m.Get(Size, Size)))
}

func TestCopyIsDeep(t *testing.T) {
	var a TileMap[tile]
	a.Set(1, 1, true)
	b := a
	b.Set(1, 1, false)
	assert.True(t, bool(a.Get(1, 1)))
}

func TestSingleSolidNeighbor(t *testing.T) {
	var m TileMap[tile]
	const x, y = 10, 20
	m.Set(x, y, true)

	// querying from each neighbor sees the solid tile in the opposite direction
	cases := []struct {
		dx, dy int
		want   NeighborMask
	}{
		{-1, -1, BotRight},
		{0, -1, Bot},
		{1, -1, BotLeft},
		{-1, 0, Right},
		{1, 0, Left},
		{-1, 1, TopRight},
		{0, 1, Top},
		{1, 1, TopLeft},
	}
	for _, tc := range cases {
		got := m.FilterNeighbors(x+tc.dx, y+tc.dy, solid)
		assert.Equal(t, tc.want, got, "query at offset (%d,%d)", tc.dx, tc.dy)
	}
}

func TestNeighborsAtEdgeReadPadding(t *testing.T) {
	var m TileMap[tile]
	m.Set(0, 0, true)
	m.Set(1, 0, true)
	assert.Equal(t, Right, m.FilterNeighbors(0, 0, solid))
	assert.Equal(t, Empty, m.FilterNeighbors(Size-1, Size-1, solid))
}

func TestNeighborsOrder(t *testing.T) {
	var m TileMap[tile]
	var dirs []NeighborMask
	m.Neighbors(5, 5, func(d NeighborMask, _ tile) { dirs = append(dirs, d) })
	assert.Equal(t, []NeighborMask{TopLeft, Top, TopRight, Left, Right, BotLeft, Bot, BotRight}, dirs)
}

func TestReduceDropsLoneDiagonals(t *testing.T) {
	assert.Equal(t, Empty, Reduce(TopLeft|TopRight|BotLeft|BotRight))
	assert.Equal(t, Top|Left|TopLeft, Reduce(Top|Left|TopLeft|BotRight))
	all := TopLeft | Top | TopRight | Left | Right | BotLeft | Bot | BotRight
	assert.Equal(t, all, Reduce(all))
}

func TestCanonicalMasksMapToThemselves(t *testing.T) {
	seen := map[Offset]bool{}
	for _, c := range canonical {
		assert.Equal(t, c.mask, Reduce(c.mask), "canonical mask %08b must be reduced", uint8(c.mask))
		assert.Equal(t, c.off, CanonicalOffset(c.mask))
		assert.False(t, seen[c.off], "offset %v used twice", c.off)
		seen[c.off] = true
		assert.Less(t, int(c.off.X), TilesetCols)
		assert.Less(t, int(c.off.Y), TilesetRows)
	}
	assert.False(t, seen[Offset{10, 1}])
}

func TestTableMatchesCanonicalLayout(t *testing.T) {
	for m := 0; m < 256; m++ {
		assert.Equal(t, CanonicalOffset(NeighborMask(m)), OffsetFor(NeighborMask(m)), "mask %08b", m)
	}
}

func TestGeneratedTableIsUpToDate(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf))

	onDisk, err := os.ReadFile("mask_table.go")
	require.NoError(t, err)
	assert.Equal(t, string(onDisk), buf.String(), "run go generate ./internal/tilemap")
}

func TestKnownOffsets(t *testing.T) {
	assert.Equal(t, Offset{0, 3}, OffsetFor(Empty))
	assert.Equal(t, Offset{0, 3}, OffsetFor(TopLeft), "lone diagonal looks isolated")
	assert.Equal(t, Offset{9, 2}, OffsetFor(0xFF))
	assert.Equal(t, Offset{2, 1}, OffsetFor(Top|Bot|Left|Right))
}
