package anim

import (
	"testing"

	"github.com/dpt-reimpl/greatescape/assets"
	"github.com/dpt-reimpl/greatescape/coords"
	"github.com/dpt-reimpl/greatescape/machine"
	"github.com/dpt-reimpl/greatescape/vischar"
)

func acceptAll(*vischar.Vischar, coords.Pos16, uint8) bool { return true }

func TestStepSkipsEmptyVischar(t *testing.T) {
	v := &vischar.Vischar{Empty: true}
	Step(v, 0, acceptAll)
	if v.MI.Pos != (coords.Pos16{}) {
		t.Errorf("Step on an empty vischar should do nothing")
	}
}

func TestStepSetsNoCollideFlag(t *testing.T) {
	v := &vischar.Vischar{}
	Step(v, 0, acceptAll)
	if v.Flags&vischar.FlagNoCollide == 0 {
		t.Errorf("Step should set FlagNoCollide")
	}
}

func TestStepAppliesFrameDeltaOnAccept(t *testing.T) {
	v := &vischar.Vischar{AnimCurrent: 0} // walk animation: nonzero (du,dv) every frame
	before := v.MI.Pos
	Step(v, 0, acceptAll)
	if v.MI.Pos == before {
		t.Errorf("accepted walk-animation step should move the vischar, stayed at %+v", before)
	}
	if v.IsoPos != coords.Project(v.MI.Pos) {
		t.Errorf("IsoPos should be recomputed from the committed position")
	}
}

func TestStepRejectedByTouchLeavesPositionUnchanged(t *testing.T) {
	v := &vischar.Vischar{}
	v.AnimCurrent = 0 // walk animation, has nonzero deltas
	before := v.MI.Pos
	beforeIdx := v.AnimIndex
	reject := func(*vischar.Vischar, coords.Pos16, uint8) bool { return false }
	Step(v, 0, reject)
	if v.MI.Pos != before {
		t.Errorf("rejected touch should leave position unchanged: got %+v, want %+v", v.MI.Pos, before)
	}
	if v.AnimIndex != beforeIdx {
		t.Errorf("rejected touch should leave animation index unchanged")
	}
}

func TestStepKickForcesReselect(t *testing.T) {
	v := &vischar.Vischar{AnimCurrent: 4, AnimIndex: 0} // parked on a wait anim
	Step(v, machine.InputKick, acceptAll)
	want, _ := assets.AnimIndexFor(v.DirectionCrawl, 0)
	if v.AnimCurrent != want {
		t.Errorf("kick should re-select animindices[direction][input]: got %d, want %d", v.AnimCurrent, want)
	}
}

func TestStepOverrunReselects(t *testing.T) {
	v := &vischar.Vischar{AnimCurrent: 0} // walk anim, 4 frames
	v.AnimIndex = 3                       // last valid frame
	Step(v, 0, acceptAll)                 // should overrun and reselect
	a := assets.AnimByIndex(v.AnimCurrent)
	frameIdx := v.AnimIndex &^ assets.ReverseBit
	if int(frameIdx) >= len(a.Frames) {
		t.Errorf("after overrun, animindex %d should be in range for animation %d (%d frames)", frameIdx, v.AnimCurrent, len(a.Frames))
	}
}

func TestStepReverseStepsDownToZeroThenReselects(t *testing.T) {
	v := &vischar.Vischar{AnimCurrent: 0, AnimIndex: 1 | assets.ReverseBit}
	Step(v, 0, acceptAll)
	if v.AnimIndex&assets.ReverseBit == 0 {
		// fine: overran into a fresh forward-selected animation
	} else if v.AnimIndex&^assets.ReverseBit != 0 {
		t.Errorf("reverse step should decrement toward zero, got index %d", v.AnimIndex&^assets.ReverseBit)
	}
}

func TestCameraScrollAlternatesAxes(t *testing.T) {
	var c CameraScroll
	got := []ScrollAxis{
		c.Step(0, false),
		c.Step(0, false),
		c.Step(0, false),
		c.Step(0, false),
	}
	want := []ScrollAxis{ScrollY, ScrollX, ScrollY, ScrollNone}
	for i, g := range got {
		if g != want[i] {
			t.Errorf("phase %d: got %v, want %v", i, g, want[i])
		}
	}
}

func TestCameraScrollSuppressedWhenClamped(t *testing.T) {
	var c CameraScroll
	if got := c.Step(0, true); got != ScrollNone {
		t.Errorf("clamped scroll should return ScrollNone, got %v", got)
	}
}

func TestShouldScrollUsesAnimMapMoveDir(t *testing.T) {
	var c CameraScroll
	v := &vischar.Vischar{AnimCurrent: 0} // walk anim, has a real MapMoveDir
	if got := c.ShouldScroll(v, false); got != ScrollY {
		t.Errorf("ShouldScroll on first phase = %v, want ScrollY", got)
	}

	vWait := &vischar.Vischar{AnimCurrent: 4} // wait anim, MapMoveDir = none
	if got := c.ShouldScroll(vWait, false); got != ScrollNone {
		t.Errorf("ShouldScroll for a wait animation = %v, want ScrollNone", got)
	}
}
