package tile

import (
	"fmt"

	"github.com/dpt-reimpl/greatescape/assets"
	"github.com/dpt-reimpl/greatescape/winbuf"
)

// OutdoorWindowSupertiles is the visible window of supertile refs the
// expander maintains (spec.md §4.2: "working array of 7x5 refs").
const (
	OutdoorWindowCols = 7
	OutdoorWindowRows = 5
)

// OutdoorGridCols/Rows is the expanded tile-index grid behind that
// window.
const (
	OutdoorGridCols = OutdoorWindowCols * assets.SupertileDim
	OutdoorGridRows = OutdoorWindowRows * assets.SupertileDim
)

// ScrollDir names the four strip-update directions a camera move can
// trigger (spec.md §4.2): distinct from the isometric facing directions
// used elsewhere, since the outdoor expander updates screen-relative
// edges, not world-relative ones.
type ScrollDir uint8

const (
	ScrollUp ScrollDir = iota
	ScrollDown
	ScrollLeft
	ScrollRight
)

// OutdoorExpander tracks the supertile window covering the current
// map-position and its expanded tile grid.
type OutdoorExpander struct {
	originCol, originRow int // top-left supertile macro-cell of the window
	grid                 [OutdoorGridRows][OutdoorGridCols]uint8
}

// NewOutdoorExpander builds the initial window around (col,row) and fully
// expands it.
func NewOutdoorExpander(col, row int) *OutdoorExpander {
	e := &OutdoorExpander{originCol: col, originRow: row}
	e.RebuildAll()
	return e
}

// RebuildAll re-expands every supertile in the window. Used at startup
// and after a room transition; per-tick camera moves use Scroll instead.
func (e *OutdoorExpander) RebuildAll() {
	for wr := 0; wr < OutdoorWindowRows; wr++ {
		for wc := 0; wc < OutdoorWindowCols; wc++ {
			e.expandCell(wc, wr)
		}
	}
}

func (e *OutdoorExpander) expandCell(windowCol, windowRow int) {
	st := assets.SupertileAt(e.originCol+windowCol, e.originRow+windowRow)
	base := windowRow * assets.SupertileDim
	baseCol := windowCol * assets.SupertileDim
	for ty := 0; ty < assets.SupertileDim; ty++ {
		for tx := 0; tx < assets.SupertileDim; tx++ {
			e.grid[base+ty][baseCol+tx] = st[ty*assets.SupertileDim+tx]
		}
	}
}

// Scroll shifts the window by one supertile in dir and re-expands only
// the strip that became newly visible, rather than rebuilding the whole
// buffer (spec.md §4.2).
func (e *OutdoorExpander) Scroll(dir ScrollDir) {
	switch dir {
	case ScrollUp:
		e.originRow--
		e.shiftRows(1)
		for wc := 0; wc < OutdoorWindowCols; wc++ {
			e.expandCell(wc, 0)
		}
	case ScrollDown:
		e.originRow++
		e.shiftRows(-1)
		for wc := 0; wc < OutdoorWindowCols; wc++ {
			e.expandCell(wc, OutdoorWindowRows-1)
		}
	case ScrollLeft:
		e.originCol--
		e.shiftCols(1)
		for wr := 0; wr < OutdoorWindowRows; wr++ {
			e.expandCell(0, wr)
		}
	case ScrollRight:
		e.originCol++
		e.shiftCols(-1)
		for wr := 0; wr < OutdoorWindowRows; wr++ {
			e.expandCell(OutdoorWindowCols-1, wr)
		}
	default:
		panic(fmt.Sprintf("tile: invalid scroll direction %d", dir))
	}
}

// shiftRows moves the whole tile grid by n supertile-rows (positive moves
// content down, making room at the top; negative makes room at the
// bottom), reusing already-expanded data instead of re-decoding it.
func (e *OutdoorExpander) shiftRows(n int) {
	shift := n * assets.SupertileDim
	var newGrid [OutdoorGridRows][OutdoorGridCols]uint8
	for y := 0; y < OutdoorGridRows; y++ {
		src := y - shift
		if src < 0 || src >= OutdoorGridRows {
			continue
		}
		newGrid[y] = e.grid[src]
	}
	e.grid = newGrid
}

func (e *OutdoorExpander) shiftCols(n int) {
	shift := n * assets.SupertileDim
	var newGrid [OutdoorGridRows][OutdoorGridCols]uint8
	for y := 0; y < OutdoorGridRows; y++ {
		for x := 0; x < OutdoorGridCols; x++ {
			src := x - shift
			if src < 0 || src >= OutdoorGridCols {
				continue
			}
			newGrid[y][x] = e.grid[y][src]
		}
	}
	e.grid = newGrid
}

// TileAt returns the expanded tile index at a grid cell.
func (e *OutdoorExpander) TileAt(col, row int) uint8 {
	return e.grid[row][col]
}

// Origin returns the window's top-left supertile macro-cell.
func (e *OutdoorExpander) Origin() (col, row int) {
	return e.originCol, e.originRow
}

// PlotOutdoorTiles copies the visible top-left Columns x Rows corner of
// the expanded supertile window into the window buffer, expanding each
// tile index through the outdoor bitmap bank for kind (spec.md §4.2). The
// window is deliberately wider and taller than the visible area so a
// Scroll never exposes an unexpanded edge.
func PlotOutdoorTiles(e *OutdoorExpander, kind assets.RoomKind, wb *winbuf.Buffer) {
	for row := 0; row < winbuf.Rows; row++ {
		for col := 0; col < winbuf.Columns; col++ {
			idx := e.TileAt(col, row)
			glyph := assets.TileByIndex(kind, idx)
			for r := 0; r < 8; r++ {
				wb.PutTileRow(row, col, r, glyph[r])
			}
		}
	}
}
