package tile

import (
	"github.com/dpt-reimpl/greatescape/assets"
	"github.com/dpt-reimpl/greatescape/winbuf"
)

// IndoorColumns and IndoorRows size the per-room tile-index grid
// (spec.md §4.2: "24x16 tile buffer").
const (
	IndoorColumns = 24
	IndoorRows    = 16
)

// Grid is a room's expanded tile-index buffer. A zero entry means
// "background" (not drawn over) rather than a real tile 0, matching the
// RLE decoder's transparency rule.
type Grid [IndoorRows][IndoorColumns]uint8

// ExpandRoom lays out a room's placed objects into a tile-index grid,
// honouring shadow-table overrides for mutated objects (bed/bench state)
// and the RLE stream's "zero is transparent" rule (spec.md §4.2).
func ExpandRoom(room uint8, shadow *ShadowTable) Grid {
	rd := assets.RoomByNumber(room)
	var g Grid

	for i, pl := range rd.Placements {
		objID := pl.ObjectID
		if shadow != nil {
			if v := shadow.GetRoomdef(room, uint8(i)); v != pl.ObjectID {
				objID = v
			}
		}
		obj := assets.ObjectByID(objID)
		for dy := 0; dy < int(obj.Height); dy++ {
			row := int(pl.Row) + dy
			if row < 0 || row >= IndoorRows {
				continue
			}
			for dx := 0; dx < int(obj.Width); dx++ {
				col := int(pl.Col) + dx
				if col < 0 || col >= IndoorColumns {
					continue
				}
				v := obj.Tiles[dy*int(obj.Width)+dx]
				if v == 0 {
					continue // transparent: leave destination untouched
				}
				g[row][col] = v
			}
		}
	}
	return g
}

// PlotInteriorTiles copies a room's expanded tile grid into the window
// buffer as rows of 8 pixel bytes, expanding each tile index through the
// indoor bitmap bank (spec.md §4.2).
func PlotInteriorTiles(g Grid, wb *winbuf.Buffer) {
	for row := 0; row < IndoorRows; row++ {
		for col := 0; col < IndoorColumns; col++ {
			idx := g[row][col]
			glyph := assets.TileByIndex(assets.RoomKindIndoor, idx)
			for r := 0; r < 8; r++ {
				wb.PutTileRow(row, col, r, glyph[r])
			}
		}
	}
}
