package searchlight

import (
	"testing"

	"github.com/dpt-reimpl/greatescape/assets"
	"github.com/dpt-reimpl/greatescape/coords"
	"github.com/dpt-reimpl/greatescape/machine"
)

func TestNewTableSeedsFromScripts(t *testing.T) {
	tbl := NewTable()
	for i, l := range tbl.Lights {
		want := assets.SearchlightScripts[i][0]
		if l.Counter != want.Counter || l.Direction != want.Direction {
			t.Errorf("light %d: got counter=%d dir=%v, want counter=%d dir=%v", i, l.Counter, l.Direction, want.Counter, want.Direction)
		}
		if l.Pos != assets.SearchlightStart[i] {
			t.Errorf("light %d should start at its scripted position", i)
		}
	}
}

func TestStepDecrementsCounterThenAdvancesScript(t *testing.T) {
	d := &Descriptor{Counter: 1, Direction: assets.SearchlightScripts[0][0].Direction}
	Step(d)
	if d.Counter != assets.SearchlightScripts[0][1].Counter {
		t.Errorf("counter hitting zero should advance to the next script step, got counter=%d", d.Counter)
	}
	if d.StepIdx != 1 {
		t.Errorf("expected StepIdx 1, got %d", d.StepIdx)
	}
}

func TestStepBouncesAtScriptEndWithReverseToggle(t *testing.T) {
	script := assets.SearchlightScripts[0]
	d := &Descriptor{Counter: 1, StepIdx: len(script) - 1, Direction: script[len(script)-1].Direction}
	Step(d)
	if !d.Reverse {
		t.Errorf("overrunning the script end should toggle Reverse")
	}
	if d.StepIdx != len(script)-1 {
		t.Errorf("StepIdx should stay clamped at the last step, got %d", d.StepIdx)
	}
}

func TestStepMovesPositionByDirectionDelta(t *testing.T) {
	d := &Descriptor{Pos: coords.Pos8{U: 50, V: 50, W: 0}, Counter: 5, Direction: assets.DirBottomRight}
	Step(d)
	if d.Pos.U != 51 || d.Pos.V != 52 {
		t.Errorf("DirBottomRight should move (+1,+2), got U=%d V=%d", d.Pos.U, d.Pos.V)
	}
}

func TestCaughtLatchesStateAndReturnsIndex(t *testing.T) {
	tbl := NewTable()
	tbl.Lights[1].Pos = coords.Pos8{U: 60, V: 60, W: 0}

	idx, ok := Caught(tbl, coords.Pos8{U: 61, V: 61, W: 0})
	if !ok || idx != 1 {
		t.Fatalf("hero within the catch rectangle should be caught by light 1, got idx=%d ok=%v", idx, ok)
	}
	if tbl.State != StateCaught {
		t.Errorf("State should latch to StateCaught")
	}
}

func TestCaughtFalseWhenHeroFarFromEveryLight(t *testing.T) {
	tbl := NewTable()
	if _, ok := Caught(tbl, coords.Pos8{U: 200, V: 200, W: 0}); ok {
		t.Errorf("a hero far from every searchlight should not be caught")
	}
}

func TestStepAllSuppressedOnceCaught(t *testing.T) {
	tbl := NewTable()
	tbl.State = StateCaught
	before := tbl.Lights[0].Pos
	StepAll(tbl)
	if tbl.Lights[0].Pos != before {
		t.Errorf("StepAll should not move searchlights once caught")
	}
}

func TestTrackHeroMovesOneUnitPerTick(t *testing.T) {
	tbl := NewTable()
	tbl.State = StateCaught
	tbl.Lights[0].Pos = coords.Pos8{U: 50, V: 50, W: 0}

	TrackHero(tbl, 0, coords.Pos8{U: 55, V: 45, W: 0})
	if tbl.Lights[0].Pos.U != 51 || tbl.Lights[0].Pos.V != 49 {
		t.Errorf("tracking should step one unit toward the hero, got %+v", tbl.Lights[0].Pos)
	}
}

func TestPlotPaintsWithinClipOnly(t *testing.T) {
	var screen machine.Screen
	Plot(&screen, coords.IsoPos{X: 4, Y: 4}, ClipRect{X0: 0, Y0: 0, X1: 256, Y1: 192})

	found := false
	for _, b := range screen.Attributes {
		if b != 0 {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("plotting a disc within the clip rectangle should paint some attribute cells")
	}
}

func TestPlotRespectsClipRectangle(t *testing.T) {
	var screen machine.Screen
	Plot(&screen, coords.IsoPos{X: 100, Y: 100}, ClipRect{X0: 0, Y0: 0, X1: 1, Y1: 1})

	for _, b := range screen.Attributes {
		if b != 0 {
			t.Errorf("a disc entirely outside the clip rectangle should not paint anything")
			break
		}
	}
}
