// Package winbuf defines the window buffer the renderer composites into
// before it is copied to the host framebuffer (spec.md §4.10 glossary).
package winbuf

// Columns and Rows give the window buffer's extent in 8x8-pixel tiles:
// 24x17 tiles = 192x136 pixels, each pixel row stored as 24 packed bytes.
const (
	Columns = 24
	Rows    = 17
	Stride  = Columns // bytes per pixel-row
)

// Buffer is COLUMNS*ROWS*8 bytes of byte-packed 1bpp pixel rows, using the
// same left-to-right bit order as the host framebuffer.
type Buffer struct {
	Rows [Rows * 8][Stride]byte
}

// Clear zeroes the buffer.
func (b *Buffer) Clear() {
	for i := range b.Rows {
		for j := range b.Rows[i] {
			b.Rows[i][j] = 0
		}
	}
}

// PutTileRow writes one 8x8 tile's row `r` (0..7) of pixel byte `v` at
// tile column `col`, tile row `tileRow`.
func (b *Buffer) PutTileRow(tileRow, col int, r int, v byte) {
	b.Rows[tileRow*8+r][col] = v
}
