package assets

import "fmt"

// Outdoor map dimensions (spec.md §4.2).
const (
	MapWidthSupertiles  = 54
	MapHeightSupertiles = 34
	SupertileDim        = 4 // 4x4 tiles per supertile
)

// Supertile is a 4x4 block of tile indices.
type Supertile [SupertileDim * SupertileDim]uint8

// SupertileCatalog is the library of distinct supertiles the map refers
// to by index. A small placeholder set (grass, path, fence, gate) is
// enough to exercise the tile expander's strip-update logic; the full
// outdoor art is asset authoring, out of scope (spec.md §1).
var SupertileCatalog = []Supertile{
	0: {1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}, // grass
	1: {2, 2, 2, 2, 2, 3, 3, 2, 2, 3, 3, 2, 2, 2, 2, 2}, // path
	2: {4, 4, 4, 4, 4, 5, 5, 4, 4, 5, 5, 4, 4, 4, 4, 4}, // fence
	3: {6, 6, 7, 6, 6, 7, 7, 6, 6, 7, 7, 6, 6, 7, 6, 6}, // gate
}

// MapRefs is the 54x34 array of supertile-catalog indices tiling the
// world. Populated procedurally (grass everywhere, a path ring and a
// gate) so every strip-update direction in the tile expander has real
// data to copy.
var MapRefs = buildMapRefs()

func buildMapRefs() [MapHeightSupertiles][MapWidthSupertiles]uint8 {
	var m [MapHeightSupertiles][MapWidthSupertiles]uint8
	for y := 0; y < MapHeightSupertiles; y++ {
		for x := 0; x < MapWidthSupertiles; x++ {
			switch {
			case y == 0 || y == MapHeightSupertiles-1 || x == 0 || x == MapWidthSupertiles-1:
				m[y][x] = 2 // fence ring
			case y == MapHeightSupertiles/2:
				m[y][x] = 1 // path
			default:
				m[y][x] = 0 // grass
			}
		}
	}
	m[MapHeightSupertiles/2][MapWidthSupertiles/2] = 3 // gate
	return m
}

// SupertileAt returns the supertile at a given macro-cell, panicking on an
// out-of-range coordinate.
func SupertileAt(col, row int) Supertile {
	if col < 0 || col >= MapWidthSupertiles || row < 0 || row >= MapHeightSupertiles {
		panic(fmt.Sprintf("assets: supertile coordinate (%d,%d) out of range", col, row))
	}
	idx := MapRefs[row][col]
	if int(idx) >= len(SupertileCatalog) {
		panic(fmt.Sprintf("assets: supertile index %d out of range", idx))
	}
	return SupertileCatalog[idx]
}

// Tile8x8 is one 8x8 1bpp glyph, 8 bytes, one per row.
type Tile8x8 [8]byte

// tileBank holds the 8x8 bitmap table for one RoomKind (spec.md §4.2's
// plot_interior_tiles picks one of four banks by room kind).
type tileBank []Tile8x8

// TileBanks indexes by RoomKind. Populated with small, distinct
// placeholder glyphs per tile index — enough to exercise expansion and
// plotting without the real hand-drawn art (out of scope, spec.md §1).
var TileBanks = buildTileBanks()

func buildTileBanks() [4]tileBank {
	mk := func(seed byte) tileBank {
		bank := make(tileBank, 16)
		for i := range bank {
			for row := 0; row < 8; row++ {
				bank[i][row] = seed + byte(i) + byte(row)
			}
		}
		return bank
	}
	return [4]tileBank{
		RoomKindIndoor:       mk(0x10),
		RoomKindOutdoorBank0: mk(0x20),
		RoomKindOutdoorBank1: mk(0x30),
		RoomKindOutdoorBank2: mk(0x40),
	}
}

// TileByIndex looks up a glyph from the bank for kind, panicking on an
// out-of-range tile index.
func TileByIndex(kind RoomKind, idx uint8) Tile8x8 {
	bank := TileBanks[kind]
	if int(idx) >= len(bank) {
		panic(fmt.Sprintf("assets: tile index %d out of range for bank %d", idx, kind))
	}
	return bank[idx]
}
