package mask

import (
	"testing"

	"github.com/dpt-reimpl/greatescape/assets"
	"github.com/dpt-reimpl/greatescape/coords"
)

func TestResetFillsAllOnes(t *testing.T) {
	var buf Buffer
	buf.Reset()
	if buf.Rows[0][0] != 0xFF {
		t.Errorf("Reset() left Rows[0][0] = %#x, want 0xFF", buf.Rows[0][0])
	}
}

func TestRebuildSkipsNonOverlappingDescriptor(t *testing.T) {
	var buf Buffer
	buf.Reset()
	drawable := Drawable{
		IsoBounds: Rect{X0: 200, X1: 220, Y0: 200, Y1: 216},
		WorldPos:  coords.Pos8{U: 10, V: 10},
	}
	if err := RebuildForDrawable(&buf, drawable, assets.MaskDescriptorTable); err != nil {
		t.Fatalf("RebuildForDrawable: %v", err)
	}
	for _, row := range buf.Rows {
		for _, b := range row {
			if b != 0xFF {
				t.Fatalf("non-overlapping descriptor changed buffer: got %#x", b)
			}
		}
	}
}

func TestRebuildSkipsDrawableInFrontOfMask(t *testing.T) {
	var buf Buffer
	buf.Reset()
	d := assets.MaskDescriptorTable[0]
	drawable := Drawable{
		IsoBounds: fromBounds(d.Bounds),
		WorldPos:  coords.Pos8{U: d.Pos.U - 1, V: d.Pos.V},
	}
	if err := RebuildForDrawable(&buf, drawable, []assets.MaskDescriptor{d}); err != nil {
		t.Fatalf("RebuildForDrawable: %v", err)
	}
	for _, row := range buf.Rows {
		for _, b := range row {
			if b != 0xFF {
				t.Fatalf("drawable in front of mask should not be occluded: got %#x", b)
			}
		}
	}
}

func TestRebuildAndsOverlappingDescriptor(t *testing.T) {
	var buf Buffer
	buf.Reset()
	d := assets.MaskDescriptorTable[0]
	drawable := Drawable{
		IsoBounds: fromBounds(d.Bounds),
		WorldPos:  coords.Pos8{U: d.Pos.U + 1, V: d.Pos.V},
	}
	if err := RebuildForDrawable(&buf, drawable, []assets.MaskDescriptor{d}); err != nil {
		t.Fatalf("RebuildForDrawable: %v", err)
	}

	changed := false
	destRow := int(d.Bounds.Y0)
	destCol := int(d.Bounds.X0) / 8
	if destRow >= 0 && destRow < BufferHeightRows && destCol >= 0 && destCol < BufferWidthBytes {
		if buf.Rows[destRow][destCol] != 0xFF {
			changed = true
		}
	}
	if !changed {
		t.Errorf("expected mask descriptor to AND some buffer byte away from all-ones")
	}
}

func TestSearchlightMaskTestHiddenWhenAllZero(t *testing.T) {
	var buf Buffer
	if !SearchlightMaskTest(&buf, 0, 0, BufferWidthBytes) {
		t.Errorf("SearchlightMaskTest on zeroed buffer should report hidden")
	}
}

func TestSearchlightMaskTestVisibleWhenAnyBitSet(t *testing.T) {
	var buf Buffer
	buf.Reset()
	if SearchlightMaskTest(&buf, 0, 0, BufferWidthBytes) {
		t.Errorf("SearchlightMaskTest on all-ones buffer should report visible")
	}
}

func TestSearchlightMaskTestAfterRebuildSamplesHeroColumnsOnly(t *testing.T) {
	// A freshly Reset buffer is all-ones, and a rebuild only ANDs down
	// the bytes under the drawable: the sample must therefore confine
	// itself to the hero's own columns, or the untouched 0xFF bytes
	// elsewhere in the row would always read as "visible".
	var buf Buffer
	buf.Reset()

	d := assets.MaskDescriptor{
		Index:   0,
		Bounds:  assets.MaskBounds{X0: 16, X1: 48, Y0: 40, Y1: 56},
		Pos:     coords.Pos8{U: 20, V: 20},
		TileDim: 4,
		RLE:     []byte{0xFF, 0xC0, 0x00}, // 64 zero bytes: 4 per row, 16 rows
	}
	drawable := Drawable{
		IsoBounds: Rect{X0: 16, X1: 48, Y0: 40, Y1: 56},
		WorldPos:  coords.Pos8{U: 21, V: 20}, // behind the mask point
	}
	if err := RebuildForDrawable(&buf, drawable, []assets.MaskDescriptor{d}); err != nil {
		t.Fatalf("RebuildForDrawable: %v", err)
	}

	if !SearchlightMaskTest(&buf, 40, 2, 6) {
		t.Errorf("a hero fully under the mask should read as hidden within their own columns")
	}
	if SearchlightMaskTest(&buf, 40, 0, BufferWidthBytes) {
		t.Errorf("sampling the whole row must still see the untouched 0xFF bytes outside the drawable")
	}
}
