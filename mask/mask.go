// Package mask implements the foreground mask store and the per-frame
// rebuild that lets static room furniture occlude characters standing
// behind it (spec.md §4.3).
package mask

import (
	"fmt"

	"github.com/dpt-reimpl/greatescape/assets"
	"github.com/dpt-reimpl/greatescape/coords"
)

// BufferWidthBytes and BufferHeightTiles size the mask buffer: a
// 32-byte-wide strip, MASK_BUFFER_HEIGHT tiles (8 pixel rows each) tall
// (spec.md §4.3).
const (
	BufferWidthBytes  = 32
	BufferHeightTiles = 17
	BufferHeightRows  = BufferHeightTiles * 8
)

// Buffer is the foreground mask: 1 bits show the sprite pixel beneath
// them, 0 bits hide it. Rebuild starts every frame from all-ones.
type Buffer struct {
	Rows [BufferHeightRows][BufferWidthBytes]byte
}

// Reset fills the buffer with all-ones ("nothing masked yet").
func (b *Buffer) Reset() {
	for y := range b.Rows {
		for x := range b.Rows[y] {
			b.Rows[y][x] = 0xFF
		}
	}
}

// Rect is an iso-pixel rectangle, used both for a mask descriptor's
// culling bounds and for the drawable's own bounding box.
type Rect struct {
	X0, X1, Y0, Y1 int16
}

func fromBounds(b assets.MaskBounds) Rect {
	return Rect{X0: b.X0, X1: b.X1, Y0: b.Y0, Y1: b.Y1}
}

func overlaps(a, b Rect) bool {
	return a.X0 < b.X1 && a.X1 > b.X0 && a.Y0 < b.Y1 && a.Y1 > b.Y0
}

func intersect(a, b Rect) Rect {
	r := Rect{X0: a.X0, X1: a.X1, Y0: a.Y0, Y1: a.Y1}
	if b.X0 > r.X0 {
		r.X0 = b.X0
	}
	if b.X1 < r.X1 {
		r.X1 = b.X1
	}
	if b.Y0 > r.Y0 {
		r.Y0 = b.Y0
	}
	if b.Y1 < r.Y1 {
		r.Y1 = b.Y1
	}
	return r
}

// Drawable is the subset of a vischar's state the mask rebuild needs:
// its projected bounding box and its stashed world position.
type Drawable struct {
	IsoBounds Rect
	WorldPos  coords.Pos8
}

// behind reports whether the drawable's world position is behind a mask
// descriptor's occlusion point (spec.md §4.3: "u greater *and* v
// greater-or-equal").
func behind(pos coords.Pos8, maskPos coords.Pos8) bool {
	return pos.U > maskPos.U && pos.V >= maskPos.V
}

func expandRows(desc assets.MaskDescriptor) ([][]byte, error) {
	decoded, err := assets.DecodeRLE(desc.RLE)
	if err != nil {
		return nil, fmt.Errorf("mask: decoding descriptor %d: %w", desc.Index, err)
	}
	width := int(desc.TileDim)
	if width == 0 {
		width = 1
	}
	var rows [][]byte
	for i := 0; i+width <= len(decoded); i += width {
		rows = append(rows, decoded[i:i+width])
	}
	return rows, nil
}

// RebuildForDrawable applies every mask descriptor that occludes
// drawable into buf, ANDing the clipped, RLE-decoded mask tiles row by
// row (spec.md §4.3 steps 1-4). Call once per drawable per frame, after
// Reset.
func RebuildForDrawable(buf *Buffer, drawable Drawable, descriptors []assets.MaskDescriptor) error {
	for _, d := range descriptors {
		bounds := fromBounds(d.Bounds)
		if !overlaps(drawable.IsoBounds, bounds) {
			continue
		}
		if !behind(drawable.WorldPos, d.Pos) {
			continue
		}

		clip := intersect(drawable.IsoBounds, bounds)
		if clip.X1 <= clip.X0 || clip.Y1 <= clip.Y0 {
			continue
		}

		rows, err := expandRows(d)
		if err != nil {
			return err
		}

		leftSkipBytes := int(clip.X0-bounds.X0) / 8
		topSkipRows := int(clip.Y0 - bounds.Y0)
		runWidthBytes := int(clip.X1-clip.X0) / 8
		runHeightRows := int(clip.Y1 - clip.Y0)
		destCol0 := int(clip.X0) / 8
		destRow0 := int(clip.Y0)

		for py := 0; py < runHeightRows; py++ {
			srcRow := topSkipRows + py
			destRow := destRow0 + py
			if srcRow < 0 || srcRow >= len(rows) || destRow < 0 || destRow >= BufferHeightRows {
				continue
			}
			rowBytes := rows[srcRow]
			for bx := 0; bx < runWidthBytes; bx++ {
				srcCol := leftSkipBytes + bx
				destCol := destCol0 + bx
				if srcCol < 0 || srcCol >= len(rowBytes) || destCol < 0 || destCol >= BufferWidthBytes {
					continue
				}
				buf.Rows[destRow][destCol] &= rowBytes[srcCol]
			}
		}
	}
	return nil
}

// SearchlightMaskTest samples 8 rows of the mask buffer from the middle
// of the hero's sprite, restricted to the hero's own byte columns
// [heroCol0, heroCol1): the buffer resets to all-ones each frame and the
// rebuild only ANDs down the region under each drawable, so bytes
// outside the hero's columns stay 0xFF and must not count as "visible".
// Any non-zero sampled byte means some of the hero still shows; all-zero
// means scenery fully hides them. Returns true when the hero is hidden
// (spec.md §4.10 step 4).
func SearchlightMaskTest(buf *Buffer, heroRow, heroCol0, heroCol1 int) bool {
	if heroRow < 0 {
		heroRow = 0
	}
	end := heroRow + 8
	if end > BufferHeightRows {
		end = BufferHeightRows
	}
	if heroCol0 < 0 {
		heroCol0 = 0
	}
	if heroCol1 > BufferWidthBytes {
		heroCol1 = BufferWidthBytes
	}
	for y := heroRow; y < end; y++ {
		for x := heroCol0; x < heroCol1; x++ {
			if buf.Rows[y][x] != 0 {
				return false
			}
		}
	}
	return true
}
