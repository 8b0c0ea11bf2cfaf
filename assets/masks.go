package assets

import (
	"fmt"

	"github.com/dpt-reimpl/greatescape/coords"
)

// MaskBounds is a mask descriptor's cull rectangle, in projected
// isometric pixels (spec.md §4.3).
type MaskBounds struct {
	X0, X1, Y0, Y1 int16
}

// MaskDescriptor is one entry in the 47-entry interior mask table (or the
// separate outdoor table).
type MaskDescriptor struct {
	Index  uint8 // selects the RLE-compressed mask tile stream
	Bounds MaskBounds
	Pos    coords.Pos8 // world-space occlusion test point
	TileDim uint8       // tile width in the mask's own RLE stream (first byte)
	RLE     []byte      // raw, not yet expanded
}

// MaskDescriptorTable is the full 47-entry interior mask table the room
// definitions' mask-byte lists index into. The real mask shapes and
// occlusion points are not part of the recovered source (only the
// per-room index lists are), so the shapes here are deterministic
// placeholders: each descriptor covers a distinct region of the window,
// with an occlusion point stepping through the room space.
var MaskDescriptorTable = buildMaskDescriptorTable()

const numInteriorMasks = 47

func buildMaskDescriptorTable() []MaskDescriptor {
	t := make([]MaskDescriptor, numInteriorMasks)
	for i := range t {
		x0 := int16((i % 6) * 32)
		y0 := int16((i / 6) * 16)
		t[i] = MaskDescriptor{
			Index:   uint8(i),
			Bounds:  MaskBounds{X0: x0, X1: x0 + 32, Y0: y0, Y1: y0 + 16},
			Pos:     coords.Pos8{U: uint8(20 + i), V: uint8(20 + i), W: 0},
			TileDim: 4,
			// Four bytes per row, sixteen rows: the top half of the
			// covered region masks off, the bottom half shows through.
			RLE: []byte{0xFF, 0xA0, 0x00, 0xFF, 0xA0, 0xFF},
		}
	}
	return t
}

// MaskDescriptorByIndex looks up an interior mask descriptor referenced by
// a RoomDef.MaskRefs entry.
func MaskDescriptorByIndex(idx uint8) MaskDescriptor {
	if int(idx) >= len(MaskDescriptorTable) {
		panic(fmt.Sprintf("assets: mask descriptor index %d out of range", idx))
	}
	return MaskDescriptorTable[idx]
}

// OutdoorMaskDescriptorTable is the separate outdoor mask table.
var OutdoorMaskDescriptorTable = []MaskDescriptor{
	{Index: 0, Bounds: MaskBounds{X0: 100, X1: 132, Y0: 60, Y1: 92}, Pos: coords.Pos8{U: 20, V: 20, W: 0}, TileDim: 4, RLE: []byte{0xFF, 0x84, 0x30}},
}

// SearchlightScriptStep is one (counter, direction) pair in a searchlight
// movement script (spec.md §4.11).
type SearchlightScriptStep struct {
	Counter   uint8
	Direction Direction
}

// searchlightEnd terminates a script, matching the original's 0xFF
// sentinel.
const searchlightEnd = 0xFF

// SearchlightScripts holds the three independent movement scripts.
var SearchlightScripts = [3][]SearchlightScriptStep{
	{
		{Counter: 20, Direction: DirTopLeft},
		{Counter: 20, Direction: DirTopRight},
		{Counter: 20, Direction: DirBottomRight},
		{Counter: 20, Direction: DirBottomLeft},
	},
	{
		{Counter: 15, Direction: DirBottomLeft},
		{Counter: 15, Direction: DirTopLeft},
	},
	{
		{Counter: 30, Direction: DirTopRight},
		{Counter: 10, Direction: DirBottomRight},
		{Counter: 30, Direction: DirBottomLeft},
		{Counter: 10, Direction: DirTopLeft},
	},
}

// SearchlightStart is each searchlight's starting screen position.
var SearchlightStart = [3]coords.Pos8{
	{U: 40, V: 20, W: 0},
	{U: 60, V: 60, W: 0},
	{U: 90, V: 30, W: 0},
}
