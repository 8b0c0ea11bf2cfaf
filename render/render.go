// Package render composites vischars and items into the window buffer:
// depth ordering, clipping, and the 16-wide/24-wide sprite compositors
// (spec.md §4.10).
package render

import (
	"github.com/dpt-reimpl/greatescape/assets"
	"github.com/dpt-reimpl/greatescape/coords"
	"github.com/dpt-reimpl/greatescape/item"
	"github.com/dpt-reimpl/greatescape/machine"
	"github.com/dpt-reimpl/greatescape/mask"
	"github.com/dpt-reimpl/greatescape/vischar"
	"github.com/dpt-reimpl/greatescape/winbuf"
)

// windowWidthPx and windowHeightPx are the window buffer's pixel extent
// (spec.md §4.10 glossary: 24x17 tiles).
const (
	windowWidthPx  = winbuf.Columns * 8
	windowHeightPx = winbuf.Rows * 8
)

// Entry is one candidate for plot_sprites: either a vischar slot or a
// nearby item, carrying just what get_next_drawable and the compositor
// need.
type Entry struct {
	IsVischar bool
	Index     int // vischar slot, or item index

	DepthKey int32 // u+v, used for back-to-front ordering
	WorldPos coords.Pos8
	IsoPos   coords.IsoPos
	Sprite   assets.Sprite
	Flip     bool

	drawn bool
}

// BuildEntries gathers every drawable vischar and every nearby,
// not-held item into depth-sortable entries (spec.md §4.10 step 1).
// Depth keys are u+v in live map units; outdoor item positions rest at
// half that scale and are doubled so both kinds sort in one space.
func BuildEntries(vt *vischar.Table, it *item.Table, outdoors bool) []Entry {
	var entries []Entry

	for i := range vt.Slots {
		v := &vt.Slots[i]
		if v.Empty || v.Flags&vischar.FlagDrawable == 0 {
			continue
		}
		spriteIdx := v.MI.SpriteIndex &^ 0x80
		sprite := assets.SpriteByIndex(spriteIdx)
		entries = append(entries, Entry{
			IsVischar: true,
			Index:     i,
			DepthKey:  int32(v.MI.Pos.U) + int32(v.MI.Pos.V),
			WorldPos:  v.MI.Pos.Narrow(),
			IsoPos:    v.IsoPos,
			Sprite:    sprite,
			Flip:      v.MI.SpriteIndex&0x80 != 0,
		})
	}

	for i := range it.Items {
		thing := &it.Items[i]
		if thing.Held || !(thing.Nearby6 || thing.Nearby7) {
			continue
		}
		key := int32(thing.Pos.U) + int32(thing.Pos.V)
		if outdoors {
			key *= 2
		}
		sprite := assets.SpriteByIndex(assets.ItemSpriteTable[i])
		entries = append(entries, Entry{
			IsVischar: false,
			Index:     i,
			DepthKey:  key,
			WorldPos:  thing.Pos,
			IsoPos:    thing.IsoPos,
			Sprite:    sprite,
		})
	}

	return entries
}

// GetNextDrawable returns the undrawn entry with the greatest depth key,
// implementing get_next_drawable's back-to-front selection (spec.md
// §4.10 step 2). Ties break by table order. Returns ok=false once every
// entry has been drawn.
func GetNextDrawable(entries []Entry) (idx int, ok bool) {
	best := -1
	var bestKey int32
	for i := range entries {
		if entries[i].drawn {
			continue
		}
		if best == -1 || entries[i].DepthKey > bestKey {
			best = i
			bestKey = entries[i].DepthKey
		}
	}
	if best == -1 {
		return 0, false
	}
	entries[best].drawn = true
	return best, true
}

// clipResult is the outcome of clipping a sprite's bounding box against
// the window buffer: how many source rows/columns to skip, and where
// the visible run lands in the destination.
type clipResult struct {
	ok          bool
	shift       int // sub-byte horizontal shift (0..7)
	destColByte int // destination byte column of the shifted run's first byte
	srcRowSkip  int
	destRowStart int
	visibleRows int
}

func setupPlotting(isoPos coords.IsoPos, height int, origin coords.IsoPos) clipResult {
	localX := int(isoPos.X) - int(origin.X)
	localY := int(isoPos.Y) - int(origin.Y)

	if localX < 0 || localX >= windowWidthPx {
		return clipResult{}
	}
	if localY+height <= 0 || localY >= windowHeightPx {
		return clipResult{}
	}

	r := clipResult{
		ok:          true,
		shift:       localX & 7,
		destColByte: localX / 8,
	}
	if localY < 0 {
		r.srcRowSkip = -localY
		r.destRowStart = 0
	} else {
		r.destRowStart = localY
	}
	r.visibleRows = height - r.srcRowSkip
	if r.destRowStart+r.visibleRows > windowHeightPx {
		r.visibleRows = windowHeightPx - r.destRowStart
	}
	return r
}

// reverseAndFlip mirrors a sprite row for the flip bit: each byte is
// bit-reversed via FlipTable and the byte order itself is reversed
// (spec.md §4.10: "3-byte sprites swap byte0/byte2 after reversing each
// byte's bits").
func reverseAndFlip(row []byte) []byte {
	out := make([]byte, len(row))
	for i, b := range row {
		out[len(row)-1-i] = assets.FlipTable[b]
	}
	return out
}

// shiftRightInto expands n source bytes into n+1 destination bytes,
// shifted right by shift bits, filling vacated bits with ones (for a
// mask row, where 1 means "unmasked") or zeros (for a bitmap row).
func shiftRightInto(src []byte, shift int, fillOnes bool) []byte {
	n := len(src)
	out := make([]byte, n+1)
	var fill byte
	if fillOnes {
		fill = 0xFF
	}
	for i := range out {
		out[i] = fill
	}
	if shift == 0 {
		copy(out, src)
		return out
	}
	for i := 0; i < n; i++ {
		out[i] = out[i]&^(0xFF>>uint(shift)) | src[i]>>uint(shift)
		out[i+1] = out[i+1]&^(0xFF<<uint(8-shift)) | src[i]<<uint(8-shift)
	}
	return out
}

// PlotSprite composites one entry's sprite into wb, masking it against
// mb, implementing the AND-OR compositing formula from spec.md §4.10
// step 3: dst = (~fg_mask | sprite_mask) & dst | (sprite_bits & fg_mask).
// origin is the world iso position mapped to the window buffer's (0,0).
func PlotSprite(wb *winbuf.Buffer, mb *mask.Buffer, origin coords.IsoPos, e Entry) {
	width := int(e.Sprite.Width)
	height := int(e.Sprite.Height)
	clip := setupPlotting(e.IsoPos, height, origin)
	if !clip.ok {
		return
	}

	for row := 0; row < clip.visibleRows; row++ {
		srcRow := clip.srcRowSkip + row
		destRow := clip.destRowStart + row

		bitmapRow := e.Sprite.Bitmap[srcRow*width : srcRow*width+width]
		maskRow := e.Sprite.Mask[srcRow*width : srcRow*width+width]
		if e.Flip {
			bitmapRow = reverseAndFlip(bitmapRow)
			maskRow = reverseAndFlip(maskRow)
		}

		destBitmap := shiftRightInto(bitmapRow, clip.shift, false)
		destMask := shiftRightInto(maskRow, clip.shift, true)

		for col := range destBitmap {
			destCol := clip.destColByte + col
			if destCol < 0 || destCol >= winbuf.Columns || destCol >= mask.BufferWidthBytes {
				continue
			}
			fg := mb.Rows[destRow][destCol]
			dst := wb.Rows[destRow][destCol]
			spriteBits := destBitmap[col]
			spriteMask := destMask[col]
			wb.Rows[destRow][destCol] = (^fg|spriteMask)&dst | (spriteBits & fg)
		}
	}
}

// ToMaskDrawable projects an entry's sprite bounds into the iso-pixel
// rectangle RebuildForDrawable expects, so plot_sprites can rebuild the
// foreground mask before compositing each entry (spec.md §4.3 step 0,
// §4.10 step 3).
func ToMaskDrawable(e Entry) mask.Drawable {
	width := int16(int(e.Sprite.Width) * 8)
	height := int16(e.Sprite.Height)
	return mask.Drawable{
		IsoBounds: mask.Rect{
			X0: e.IsoPos.X,
			X1: e.IsoPos.X + width,
			Y0: e.IsoPos.Y,
			Y1: e.IsoPos.Y + height,
		},
		WorldPos: e.WorldPos,
	}
}

// PlotAll drives plot_sprites end to end: it repeatedly takes the next
// back-to-front entry, rebuilds the foreground mask for it, and
// composites it into wb. descriptors supplies the current room's mask
// table (spec.md §4.10 step 3, §4.3). When the hero is plotted, the
// freshly rebuilt mask is sampled around the hero's rows and heroHidden
// (if non-nil) records whether scenery fully covers them — the input to
// the searchlight's lost-the-hero countdown (spec.md §4.10 step 4).
func PlotAll(wb *winbuf.Buffer, mb *mask.Buffer, origin coords.IsoPos, entries []Entry, descriptors []assets.MaskDescriptor, heroHidden *bool) error {
	for {
		idx, ok := GetNextDrawable(entries)
		if !ok {
			return nil
		}
		e := entries[idx]
		mb.Reset()
		if err := mask.RebuildForDrawable(mb, ToMaskDrawable(e), descriptors); err != nil {
			return err
		}
		if heroHidden != nil && e.IsVischar && e.Index == vischar.HeroSlot {
			row := int(e.IsoPos.Y-origin.Y) + int(e.Sprite.Height)/2
			col0 := int(e.IsoPos.X-origin.X) / 8
			col1 := col0 + int(e.Sprite.Width) + 1 // shifted rows widen by one byte
			*heroHidden = mask.SearchlightMaskTest(mb, row, col0, col1)
		}
		PlotSprite(wb, mb, origin, e)
	}
}

// CopyToFramebuffer copies wb into the host framebuffer, offsetting by
// the smooth-scroll phase offsetX/offsetY in pixels (spec.md §4.10). The
// game loop steps both axes alike, one pixel per scroll step through
// -7..7; there is no separate 4-phase horizontal / 2-phase vertical
// scheme.
func CopyToFramebuffer(screen *machine.Screen, wb *winbuf.Buffer, offsetX, offsetY int) {
	for y := 0; y < windowHeightPx; y++ {
		srcY := y
		dstY := y - offsetY
		if dstY < 0 || dstY >= 192 {
			continue
		}
		for x := 0; x < windowWidthPx; x++ {
			dstX := x - offsetX
			if dstX < 0 || dstX >= 256 {
				continue
			}
			byteCol := x / 8
			bit := uint8(7 - (x & 7))
			set := wb.Rows[srcY][byteCol]&(1<<bit) != 0
			machine.PutPixel(screen, dstX, dstY, set)
		}
	}
}

// ZoomBoxOrigin and ZoomBoxMax bound the concentric zoom-box transition's
// tile-space rectangle (spec.md §4.10: "starting at (12,8)... growing to
// 22x15").
var (
	ZoomBoxOrigin = struct{ Col, Row int }{Col: 12, Row: 8}
	ZoomBoxMax    = struct{ W, H int }{W: 22, H: 15}
)

// ZoomBoxRect is one frame's tile-space rectangle of the growing box.
type ZoomBoxRect struct {
	Col, Row, W, H int
}

// ZoomBoxStep returns the rectangle for zoom-box frame n (0-based),
// expanding by one tile in each direction per frame until clamped at
// ZoomBoxMax, and reports whether the transition is complete (spec.md
// §4.10 step (a)).
func ZoomBoxStep(n int) (rect ZoomBoxRect, done bool) {
	w := 2 + n*2
	h := 2 + n*2
	if w > ZoomBoxMax.W {
		w = ZoomBoxMax.W
	}
	if h > ZoomBoxMax.H {
		h = ZoomBoxMax.H
	}
	done = w == ZoomBoxMax.W && h == ZoomBoxMax.H
	col := ZoomBoxOrigin.Col - w/2
	row := ZoomBoxOrigin.Row - h/2
	if col < 0 {
		col = 0
	}
	if row < 0 {
		row = 0
	}
	return ZoomBoxRect{Col: col, Row: row, W: w, H: h}, done
}

// ZoomBoxSleepTStates returns how long to sleep after a zoom-box frame,
// proportional to the rectangle's perimeter (spec.md §4.10 step (d)).
func ZoomBoxSleepTStates(r ZoomBoxRect) uint32 {
	return uint32(r.W+r.H) * 2000
}

// CopyZoomBoxRegion copies just the zoom-box's current tile rectangle
// from wb into the framebuffer at the matching pixel offset (spec.md
// §4.10 step (b)). It draws nothing around the rectangle; the game loop's
// caller paints only the attribute cells ringing it, and no border tile
// glyphs are drawn.
func CopyZoomBoxRegion(screen *machine.Screen, wb *winbuf.Buffer, r ZoomBoxRect) {
	for row := r.Row; row < r.Row+r.H && row < winbuf.Rows; row++ {
		for py := 0; py < 8; py++ {
			srcY := row*8 + py
			for col := r.Col; col < r.Col+r.W && col < winbuf.Columns; col++ {
				b := wb.Rows[srcY][col]
				for bit := 0; bit < 8; bit++ {
					x := col*8 + bit
					if x >= 256 || srcY >= 192 {
						continue
					}
					set := b&(1<<uint(7-bit)) != 0
					machine.PutPixel(screen, x, srcY, set)
				}
			}
		}
	}
}
