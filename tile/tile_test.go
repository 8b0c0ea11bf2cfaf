package tile

import (
	"testing"

	"github.com/dpt-reimpl/greatescape/assets"
	"github.com/dpt-reimpl/greatescape/winbuf"
)

func TestShadowTableOverridesFallBackToStatic(t *testing.T) {
	s := NewShadowTable()
	before := s.GetRoomdef(2, 0)
	s.SetRoomdef(2, 0, before+1)
	if got := s.GetRoomdef(2, 0); got != before+1 {
		t.Errorf("GetRoomdef after override = %d, want %d", got, before+1)
	}
	s.Reset()
	if got := s.GetRoomdef(2, 0); got != before {
		t.Errorf("GetRoomdef after Reset = %d, want %d (static)", got, before)
	}
}

func TestShadowTableEvictsAtCapacity(t *testing.T) {
	s := NewShadowTable()
	for i := 0; i < MaxShadowEntries+4; i++ {
		s.SetRoomdef(2, uint8(i), 1)
	}
	if len(s.overrides) > MaxShadowEntries {
		t.Errorf("shadow table grew past capacity: %d entries", len(s.overrides))
	}
}

func TestExpandRoomAppliesShadowOverride(t *testing.T) {
	shadow := NewShadowTable()
	base := ExpandRoom(2, shadow)

	shadow.SetRoomdef(2, assets.RoomDef2Bed, assets.ObjectIDBedEmpty)
	overridden := ExpandRoom(2, shadow)

	same := true
	for r := range base {
		for c := range base[r] {
			if base[r][c] != overridden[r][c] {
				same = false
			}
		}
	}
	if same {
		t.Errorf("ExpandRoom did not reflect shadow override")
	}
}

func TestPlotInteriorTilesFillsWindowBuffer(t *testing.T) {
	g := ExpandRoom(2, nil)
	var wb winbuf.Buffer
	PlotInteriorTiles(g, &wb)

	nonZero := false
	for _, row := range wb.Rows {
		for _, b := range row {
			if b != 0 {
				nonZero = true
			}
		}
	}
	if !nonZero {
		t.Errorf("PlotInteriorTiles left window buffer entirely blank")
	}
}

func TestOutdoorExpanderRebuildMatchesScroll(t *testing.T) {
	e := NewOutdoorExpander(10, 10)
	before := e.TileAt(OutdoorGridCols-1, 2)

	e.Scroll(ScrollRight)
	col, row := e.Origin()
	if col != 11 || row != 10 {
		t.Errorf("Origin after ScrollRight = (%d,%d), want (11,10)", col, row)
	}

	// The column that used to be one-past-the-new-left-edge should now
	// sit at the old rightmost column's position minus one supertile.
	if got := e.TileAt(OutdoorGridCols-1-assets.SupertileDim, 2); got != before {
		t.Errorf("shifted column tile = %d, want %d (old rightmost column)", got, before)
	}

	rebuilt := NewOutdoorExpander(11, 10)
	for r := 0; r < OutdoorGridRows; r++ {
		for c := 0; c < OutdoorGridCols; c++ {
			if e.TileAt(c, r) != rebuilt.TileAt(c, r) {
				t.Fatalf("scrolled grid differs from a rebuild at (%d,%d): got %d, want %d",
					c, r, e.TileAt(c, r), rebuilt.TileAt(c, r))
			}
		}
	}
}

func TestOutdoorExpanderScrollRoundTrip(t *testing.T) {
	e := NewOutdoorExpander(20, 20)
	e.Scroll(ScrollDown)
	e.Scroll(ScrollUp)
	col, row := e.Origin()
	if col != 20 || row != 20 {
		t.Errorf("Origin after Down+Up round trip = (%d,%d), want (20,20)", col, row)
	}

	rebuilt := NewOutdoorExpander(20, 20)
	for r := 0; r < OutdoorGridRows; r++ {
		for c := 0; c < OutdoorGridCols; c++ {
			if e.TileAt(c, r) != rebuilt.TileAt(c, r) {
				t.Fatalf("tile grid diverged at (%d,%d) after scroll round trip: got %d, want %d",
					c, r, e.TileAt(c, r), rebuilt.TileAt(c, r))
			}
		}
	}
}

func TestOutdoorExpanderScrollHorizontalRoundTrip(t *testing.T) {
	e := NewOutdoorExpander(20, 20)
	e.Scroll(ScrollLeft)
	e.Scroll(ScrollRight)

	rebuilt := NewOutdoorExpander(20, 20)
	for r := 0; r < OutdoorGridRows; r++ {
		for c := 0; c < OutdoorGridCols; c++ {
			if e.TileAt(c, r) != rebuilt.TileAt(c, r) {
				t.Fatalf("tile grid diverged at (%d,%d) after scroll round trip: got %d, want %d",
					c, r, e.TileAt(c, r), rebuilt.TileAt(c, r))
			}
		}
	}
}

func TestPlotOutdoorTilesFillsWindowBuffer(t *testing.T) {
	e := NewOutdoorExpander(20, 20)
	var wb winbuf.Buffer
	PlotOutdoorTiles(e, assets.RoomKindOutdoorBank0, &wb)

	nonZero := false
	for _, row := range wb.Rows {
		for _, b := range row {
			if b != 0 {
				nonZero = true
			}
		}
	}
	if !nonZero {
		t.Errorf("PlotOutdoorTiles left window buffer entirely blank")
	}
}

func TestInvalidScrollDirPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Scroll() expected panic for invalid direction")
		}
	}()
	e := NewOutdoorExpander(20, 20)
	e.Scroll(ScrollDir(99))
}
