package tilemap

import (
	"bufio"
	"fmt"
	"io"
)

//go:generate go run ../../cmd/xtask gen-tiles -o mask_table.go

// Offset is the position of a sub-tile, in tiles, inside a 12x4 tileset.
type Offset struct{ X, Y uint8 }

const (
	TilesetCols = 12
	TilesetRows = 4
)

// canonical is the sub-tile layout as drawn in tileset images. Any mask not
// listed here reduces to one of these entries after Reduce.
var canonical = [47]struct {
	mask NeighborMask
	off  Offset
}{
	{Bot, Offset{0, 0}},
	{Bot | Right, Offset{1, 0}},
	{Bot | Right | Left, Offset{2, 0}},
	{Bot | Left, Offset{3, 0}},
	{Top | Bot, Offset{0, 1}},
	{Top | Bot | Right, Offset{1, 1}},
	{Top | Bot | Right | Left, Offset{2, 1}},
	{Top | Bot | Left, Offset{3, 1}},
	{Top, Offset{0, 2}},
	{Top | Right, Offset{1, 2}},
	{Top | Right | Left, Offset{2, 2}},
	{Top | Left, Offset{3, 2}},
	{Empty, Offset{0, 3}},
	{Right, Offset{1, 3}},
	{Right | Left, Offset{2, 3}},
	{Left, Offset{3, 3}},

	{TopLeft | Top | Right | Left | Bot, Offset{4, 0}},
	{Left | Right | Bot | BotRight, Offset{5, 0}},
	{Left | Right | Bot | BotLeft, Offset{6, 0}},
	{TopRight | Top | Right | Left | Bot, Offset{7, 0}},
	{Top | Right | Bot | BotRight, Offset{4, 1}},
	{Top | TopRight | Left | Right | BotLeft | Bot | BotRight, Offset{5, 1}},
	{TopLeft | Top | Left | Right | BotLeft | Bot | BotRight, Offset{6, 1}},
	{Top | Left | BotLeft | Bot, Offset{7, 1}},
	{Top | TopRight | Right | Bot, Offset{4, 2}},
	{TopLeft | Top | TopRight | Left | Right | Bot | BotRight, Offset{5, 2}},
	{TopLeft | Top | TopRight | Left | Right | BotLeft | Bot, Offset{6, 2}},
	{TopLeft | Top | Left | Bot, Offset{7, 2}},
	{Top | Left | Right | BotLeft | Bot, Offset{4, 3}},
	{Top | TopRight | Left | Right, Offset{5, 3}},
	{TopLeft | Top | Left | Right, Offset{6, 3}},
	{Top | Left | Right | Bot | BotRight, Offset{7, 3}},

	{Right | Bot | BotRight, Offset{8, 0}},
	{Top | Left | Right | BotRight | Bot | BotLeft, Offset{9, 0}},
	{Left | Right | BotRight | Bot | BotLeft, Offset{10, 0}},
	{Left | BotLeft | Bot, Offset{11, 0}},
	{Top | TopRight | Right | Bot | BotRight, Offset{8, 1}},
	{Top | TopRight | Left | Right | BotLeft | Bot, Offset{9, 1}},
	// (10, 1) is a hole in the tileset image
	{TopLeft | Top | Left | BotLeft | Bot, Offset{11, 1}},
	{Top | TopRight | Left | Right | Bot | BotRight, Offset{8, 2}},
	{TopLeft | Top | TopRight | Left | Right | BotLeft | Bot | BotRight, Offset{9, 2}},
	{TopLeft | Top | Left | Right | Bot | BotRight, Offset{10, 2}},
	{TopLeft | Top | Left | Right | BotLeft | Bot, Offset{11, 2}},
	{Top | TopRight | Right, Offset{8, 3}},
	{TopLeft | Top | TopRight | Right | Left, Offset{9, 3}},
	{TopLeft | Top | TopRight | Right | Left | Bot, Offset{10, 3}},
	{TopLeft | Top | Left, Offset{11, 3}},
}

// Reduce drops every diagonal bit whose two adjacent cardinal bits are not
// both set. A lone diagonal neighbor does not change how a tile looks.
func Reduce(m NeighborMask) NeighborMask {
	keep := Top | Bot | Left | Right
	if m&Top != 0 && m&Right != 0 {
		keep |= TopRight
	}
	if m&Top != 0 && m&Left != 0 {
		keep |= TopLeft
	}
	if m&Bot != 0 && m&Right != 0 {
		keep |= BotRight
	}
	if m&Bot != 0 && m&Left != 0 {
		keep |= BotLeft
	}
	return m & keep
}

// CanonicalOffset resolves any mask against the canonical layout. It is only
// used to build the lookup table; a mask with no match is a bug in the layout.
func CanonicalOffset(m NeighborMask) Offset {
	r := Reduce(m)
	for _, c := range canonical {
		if c.mask == r {
			return c.off
		}
	}
	panic(fmt.Sprintf("tilemap: mask %08b (reduced %08b) has no canonical tile", uint8(m), uint8(r)))
}

// OffsetFor returns the tileset sub-tile for a neighbor mask.
func OffsetFor(m NeighborMask) Offset { return maskOffsets[m] }

// WriteTable writes the Go source of the 256-entry lookup table.
func WriteTable(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprint(bw, "// Code generated by xtask gen-tiles. DO NOT EDIT.\n\npackage tilemap\n\nvar maskOffsets = [256]Offset{\n")
	for m := 0; m < 256; m++ {
		off := CanonicalOffset(NeighborMask(m))
		fmt.Fprintf(bw, "\t{%d, %d},\n", off.X, off.Y)
	}
	fmt.Fprint(bw, "}\n")
	return bw.Flush()
}
