// Package route implements the route/target system (spec.md §4.6):
// turning a character's route index and step into a concrete movement
// target, advancing the step when the target is reached, and dispatching
// the character-event table when a route runs out.
package route

import (
	"fmt"

	"github.com/dpt-reimpl/greatescape/assets"
	"github.com/dpt-reimpl/greatescape/coords"
)

// TargetKind distinguishes the three things get_target can return.
type TargetKind uint8

const (
	TargetRouteEnds TargetKind = iota
	TargetDoor
	TargetLocation
)

// Target is the outcome of resolving a route's current step.
type Target struct {
	Kind      TargetKind
	DoorIndex int
	Pos       coords.Pos8
}

// PRNG supplies the random 3-bit offset used by wander routes.
type PRNG func() uint8

// GetTarget resolves a route's current step to a concrete target
// (spec.md §4.6).
func GetTarget(rt assets.Route, prng PRNG) Target {
	if rt.Index == assets.RouteIndexWander {
		offset := prng() & 0x07
		base := rt.Step &^ 0x07
		return Target{Kind: TargetLocation, Pos: assets.LocationByIndex(int(base + offset))}
	}

	bytes := assets.RouteBytes(rt.Index)
	if int(rt.Step) >= len(bytes) {
		return Target{Kind: TargetRouteEnds}
	}
	b := bytes[rt.Step]
	if b == assets.RouteByteEnd {
		return Target{Kind: TargetRouteEnds}
	}

	byteReverse := b&assets.RouteReverseBit != 0
	val := b &^ assets.RouteReverseBit

	if val < assets.RouteByteLocBase {
		doorIdx := int(val)
		// The byte's own approach-side bit and the route's overall
		// traversal direction combine: walking a route in reverse flips
		// which side of the door pair you approach from.
		if byteReverse != rt.Reverse {
			doorIdx = assets.PeerIndex(doorIdx)
		}
		return Target{Kind: TargetDoor, DoorIndex: doorIdx, Pos: assets.DoorByIndex(doorIdx).Pos}
	}
	if val < assets.RouteByteLocLimit {
		return Target{Kind: TargetLocation, Pos: assets.LocationByIndex(int(val - assets.RouteByteLocBase))}
	}
	return Target{Kind: TargetRouteEnds}
}

// AdvanceStep moves a route's step index one position in its current
// direction, as target_reached does before calling GetTarget again
// (spec.md §4.6).
func AdvanceStep(rt assets.Route) assets.Route {
	if rt.Reverse {
		if rt.Step == 0 {
			return rt
		}
		rt.Step--
	} else {
		rt.Step++
	}
	return rt
}

// EndedAction is what a character should do when its route runs out,
// keyed by character class (spec.md §4.6).
type EndedAction uint8

const (
	// ActionCharacterEvent fires the character-event handler for the
	// route's (index, reverse) pair and leaves the route as-is.
	ActionCharacterEvent EndedAction = iota
	// ActionReverseAndStepBack toggles the reverse flag and steps back
	// into the route instead of off the end.
	ActionReverseAndStepBack
)

// RouteEnded decides how a character reacts when GetTarget reports
// TargetRouteEnds, and returns the updated route plus any character
// event to dispatch.
func RouteEnded(id assets.CharacterID, rt assets.Route) (assets.Route, EndedAction, assets.CharacterEvent) {
	switch {
	case id == assets.Hero:
		return rt, ActionCharacterEvent, assets.CharacterEventFor(rt.Index, rt.Reverse)
	case id == assets.Commandant:
		// The commandant's solitary route also fires a character event;
		// other routes of his behave like a regular guard.
		if ev := assets.CharacterEventFor(rt.Index, rt.Reverse); ev != assets.EventNone {
			return rt, ActionCharacterEvent, ev
		}
		fallthrough
	default:
		rt.Reverse = !rt.Reverse
		rt = AdvanceStep(rt)
		return rt, ActionReverseAndStepBack, assets.EventNone
	}
}

func init() {
	// Guard against a miscounted location window at package init time
	// rather than deep inside a tick: the wander table must be large
	// enough for every base&^7 .. base|7 window used in practice.
	if len(assets.LocationTable) < 8 {
		panic(fmt.Sprintf("route: location table too small for wander windows: %d entries", len(assets.LocationTable)))
	}
}
