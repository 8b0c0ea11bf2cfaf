package route

import (
	"testing"

	"github.com/dpt-reimpl/greatescape/assets"
)

func fixedPRNG(v uint8) PRNG {
	return func() uint8 { return v }
}

func TestGetTargetRouteEndsAtTerminator(t *testing.T) {
	rt := assets.Route{Index: 1, Step: 2} // route 1 is {loc,loc,END}
	target := GetTarget(rt, fixedPRNG(0))
	if target.Kind != TargetRouteEnds {
		t.Errorf("GetTarget at terminator = %v, want TargetRouteEnds", target.Kind)
	}
}

func TestGetTargetLocation(t *testing.T) {
	rt := assets.Route{Index: 1, Step: 0}
	target := GetTarget(rt, fixedPRNG(0))
	if target.Kind != TargetLocation {
		t.Errorf("GetTarget kind = %v, want TargetLocation", target.Kind)
	}
}

func TestGetTargetDoor(t *testing.T) {
	rt := assets.Route{Index: 2, Step: 0} // route 2 is {0, 2, END}: door indices
	target := GetTarget(rt, fixedPRNG(0))
	if target.Kind != TargetDoor {
		t.Errorf("GetTarget kind = %v, want TargetDoor", target.Kind)
	}
	if target.DoorIndex != 0 {
		t.Errorf("GetTarget door index = %d, want 0", target.DoorIndex)
	}
}

func TestGetTargetDoorReversedPicksPeer(t *testing.T) {
	rt := assets.Route{Index: 2, Step: 0, Reverse: true}
	target := GetTarget(rt, fixedPRNG(0))
	if target.Kind != TargetDoor {
		t.Fatalf("GetTarget kind = %v, want TargetDoor", target.Kind)
	}
	if target.DoorIndex != assets.PeerIndex(0) {
		t.Errorf("reversed route door index = %d, want peer %d", target.DoorIndex, assets.PeerIndex(0))
	}
}

func TestGetTargetWanderUsesPRNGWindow(t *testing.T) {
	rt := assets.Route{Index: assets.RouteIndexWander, Step: 16}
	target := GetTarget(rt, fixedPRNG(3))
	want := assets.LocationByIndex(19)
	if target.Kind != TargetLocation || target.Pos != want {
		t.Errorf("wander target = %+v, want location %+v", target, want)
	}
}

func TestAdvanceStepForwardAndReverse(t *testing.T) {
	rt := assets.Route{Step: 3}
	if got := AdvanceStep(rt).Step; got != 4 {
		t.Errorf("forward AdvanceStep = %d, want 4", got)
	}
	rt.Reverse = true
	if got := AdvanceStep(rt).Step; got != 2 {
		t.Errorf("reverse AdvanceStep = %d, want 2", got)
	}
	rt.Step = 0
	if got := AdvanceStep(rt).Step; got != 0 {
		t.Errorf("reverse AdvanceStep at floor = %d, want 0 (clamped)", got)
	}
}

func TestRouteEndedHeroFiresCharacterEvent(t *testing.T) {
	rt := assets.Route{Index: 1, Reverse: false}
	_, action, ev := RouteEnded(assets.Hero, rt)
	if action != ActionCharacterEvent {
		t.Errorf("RouteEnded action = %v, want ActionCharacterEvent", action)
	}
	if ev == assets.EventNone {
		t.Errorf("RouteEnded for hero route 1 should map to a real event")
	}
}

func TestRouteEndedGuardReversesAndSteps(t *testing.T) {
	rt := assets.Route{Index: 99, Reverse: false, Step: 5}
	newRoute, action, ev := RouteEnded(assets.GuardFirst, rt)
	if action != ActionReverseAndStepBack {
		t.Errorf("RouteEnded action = %v, want ActionReverseAndStepBack", action)
	}
	if ev != assets.EventNone {
		t.Errorf("RouteEnded for generic guard route should not fire an event, got %v", ev)
	}
	if !newRoute.Reverse {
		t.Errorf("RouteEnded should toggle reverse")
	}
	if newRoute.Step != 4 {
		t.Errorf("RouteEnded step after reverse = %d, want 4", newRoute.Step)
	}
}
