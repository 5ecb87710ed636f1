// Package tilemap stores square tile grids with one cell of padding on every
// side, so neighbor lookups around any logical cell never need bounds checks.
package tilemap

// Size is the logical width and height of every TileMap.
const Size = 256

const (
	sizePad   = Size + 2
	sizePadSq = sizePad * sizePad
)

// NeighborMask has one bit per compass direction around a cell.
type NeighborMask uint8

const (
	TopLeft NeighborMask = 1 << iota
	Top
	TopRight
	Left
	Right
	BotLeft
	Bot
	BotRight

	Empty NeighborMask = 0
)

// neighbors is laid out like so, where T is the tile:
//
//	0 1 2
//	3 T 4
//	5 6 7
var neighbors = [8]struct {
	bit    NeighborMask
	dx, dy int
}{
	{TopLeft, -1, -1},
	{Top, 0, -1},
	{TopRight, 1, -1},
	{Left, -1, 0},
	{Right, 1, 0},
	{BotLeft, -1, 1},
	{Bot, 0, 1},
	{BotRight, 1, 1},
}

// TileMap is a Size x Size grid of tiles. It is a plain value: assigning a
// TileMap copies every tile.
type TileMap[T any] struct {
	tiles [sizePadSq]T
}

func (m *TileMap[T]) Size() int { return Size }

func index(x, y int) int { return (y+1)*sizePad + (x + 1) }

// Get returns the tile at logical (x, y). Valid coordinates are -1..Size,
// where -1 and Size address the padding ring. Out-of-range coordinates are
// the caller's bug.
func (m *TileMap[T]) Get(x, y int) T { return m.tiles[index(x, y)] }

// Ptr returns a pointer to the tile at logical (x, y).
func (m *TileMap[T]) Ptr(x, y int) *T { return &m.tiles[index(x, y)] }

func (m *TileMap[T]) Set(x, y int, t T) { m.tiles[index(x, y)] = t }

// FilterNeighbors tests pred against the 8 neighbors of (x, y), which must be
// an interior logical coordinate (0..Size-1), and sets the bit of each
// neighbor that matches.
func (m *TileMap[T]) FilterNeighbors(x, y int, pred func(T) bool) NeighborMask {
	var mask NeighborMask
	for _, n := range neighbors {
		if pred(m.tiles[index(x+n.dx, y+n.dy)]) {
			mask |= n.bit
		}
	}
	return mask
}

// Neighbors calls fn with every neighbor of (x, y) and its direction, in
// reading order.
func (m *TileMap[T]) Neighbors(x, y int, fn func(NeighborMask, T)) {
	for _, n := range neighbors {
		fn(n.bit, m.tiles[index(x+n.dx, y+n.dy)])
	}
}
