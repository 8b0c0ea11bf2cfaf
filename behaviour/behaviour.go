// Package behaviour implements the per-tick pursuit/route driver, the
// axis-dominant movement math, the per-step contact test, collision
// detection, and door transitions (spec.md §4.7, §4.8).
package behaviour

import (
	"github.com/dpt-reimpl/greatescape/assets"
	"github.com/dpt-reimpl/greatescape/coords"
	"github.com/dpt-reimpl/greatescape/machine"
	"github.com/dpt-reimpl/greatescape/route"
	"github.com/dpt-reimpl/greatescape/vischar"
)

// Movement scale factors applied to a target's static position before
// computing axis deltas (spec.md §4.7).
const (
	ScaleIndoor      = 1
	ScaleOutdoorDoor = 4
	ScaleOutdoor     = 8
)

// dogFoodFreshTicks and dogFoodPoisonedTicks are how long a dog halts at
// a food item before "dying" (spec.md §4.7).
const (
	dogFoodFreshTicks    = 32
	dogFoodPoisonedTicks = 255
)

// stallTicks is the head-on-collision stall duration (spec.md §4.7).
const stallTicks = 5

// hassleRadius is how close, in live map units, a guard must be to a
// player-controlled hero before it starts hassling (spec.md §4.7 mode 2
// names the trigger "a guard sees a player-controlled hero" without a
// constant).
const hassleRadius = 48

// pushRange bounds how far a pushed movable item can travel from its
// reset position (spec.md §4.7 describes "a fixed [centre-range ..
// centre+range] window" without naming the constant).
const pushRange = 16

// doorProximityThreshold is the "within ±3" test door_handling uses against
// the hero's position (spec.md §4.8).
const doorProximityThreshold = 3

// Transition is the non-local jump a door or action can trigger: the game
// loop must restart with the hero positioned at Pos in Room (spec.md §4.8,
// §5's discriminated continuation value).
type Transition struct {
	Room uint8
	Pos  coords.Pos8
}

// FoodFinder reports a nearby food item, if any, for the
// DOG_FOOD pursuit mode (spec.md §4.7). Wired to the item package by the
// game orchestration layer.
type FoodFinder func() (pos coords.Pos8, poisoned bool, found bool)

// Engine bundles the live state CharacterBehaviour and Touch need. The
// game package owns one and wires its hooks once per tick/room.
type Engine struct {
	Table      *vischar.Table
	Characters *[assets.NumCharacters]assets.CharacterStruct
	Movables   *[3]assets.MovableItemDefault
	LockedDoors []assets.LockedDoor

	CurrentRoom uint8
	Outdoors    bool

	// HeroAutomatic is true while the hero is under AI/auto control,
	// false while the player drives directly.
	HeroAutomatic bool

	// AutomaticPlayerCounter is reloaded to its full value on every tick
	// the player provides input and counts down while idle; the hero
	// goes automatic when it reaches zero. Door transitions only fire
	// while it's nonzero (the player is actively steering).
	AutomaticPlayerCounter uint8

	// SearchlightCaught mirrors the searchlight table's caught state for
	// the pursuit triggers.
	SearchlightCaught bool

	PRNG                    route.PRNG
	FoodFinder              FoodFinder
	BribedCharacterSlot     int // -1 when no bribe is active
	DispatchCharacterEvent  func(assets.CharacterEvent)
	QueueMessage            func(string)
	OnAcceptBribe           func(slot int)
	OnHeroCaught            func()

	HaltCounters [vischar.NumSlots]uint16

	// ForcedInput holds a one-shot input override armed by a head-on
	// collision's stall (spec.md §8 scenario 6): CharacterBehaviour
	// returns and clears it in place of the slot's usual route/pursuit
	// input on the tick after the collision, so the stalled actor's next
	// anim.Step sees the kick bit and snaps to its new facing direction.
	ForcedInput [vischar.NumSlots]uint8

	// PendingTransition is set by Touch when a door fires; the game loop
	// must check it after every anim.Step and perform the non-local jump
	// before continuing the tick.
	PendingTransition *Transition
}

// NewEngine returns an Engine with no active bribe and every hook left
// for the caller to wire.
func NewEngine(t *vischar.Table, characters *[assets.NumCharacters]assets.CharacterStruct, movables *[3]assets.MovableItemDefault) *Engine {
	return &Engine{
		Table:               t,
		Characters:          characters,
		Movables:            movables,
		LockedDoors:         append([]assets.LockedDoor(nil), assets.LockedDoorsDefault...),
		BribedCharacterSlot: -1,
	}
}

// CharacterBehaviour is the per-tick driver for one vischar slot
// (spec.md §4.7). It returns the movement input bits for this tick (0 if
// the actor should not move), which the caller feeds into anim.Step.
func CharacterBehaviour(e *Engine, slot int) uint8 {
	v := &e.Table.Slots[slot]
	if v.Empty {
		return 0
	}

	if forced := e.ForcedInput[slot]; forced != 0 {
		e.ForcedInput[slot] = 0
		return forced
	}

	switch v.Kind() {
	case vischar.PursuitPursue:
		return behavePursue(e, slot)
	case vischar.PursuitHassle:
		return behaveHassle(e, slot)
	case vischar.PursuitDogFood:
		return behaveDogFood(e, slot)
	case vischar.PursuitSawBribe:
		return behaveSawBribe(e, slot)
	default:
		return behaveRoute(e, slot)
	}
}

// heroPos returns the hero's position at the scale behaviour targets
// use: map units outdoors (live divided by 8), room units indoors.
func heroPos(e *Engine) coords.Pos8 {
	return targetScale(e, e.Table.Slots[vischar.HeroSlot].MI.Pos)
}

func targetScale(e *Engine, live coords.Pos16) coords.Pos8 {
	if e.Outdoors {
		return coords.ScaleDown(live)
	}
	return live.Narrow()
}

func behavePursue(e *Engine, slot int) uint8 {
	v := &e.Table.Slots[slot]
	v.Target = route.Target{Kind: route.TargetLocation, Pos: heroPos(e)}
	v.TargetIsDoor = false

	input := computeMovementInput(v, e.Outdoors)
	if input == 0 {
		if e.BribedCharacterSlot == slot {
			if e.OnAcceptBribe != nil {
				e.OnAcceptBribe(slot)
			}
			v.SetKind(vischar.PursuitNone)
		} else if e.OnHeroCaught != nil {
			e.OnHeroCaught()
		}
	}
	return input
}

func behaveHassle(e *Engine, slot int) uint8 {
	v := &e.Table.Slots[slot]
	if e.HeroAutomatic {
		v.SetKind(vischar.PursuitNone)
		return behaveRoute(e, slot)
	}
	v.Target = route.Target{Kind: route.TargetLocation, Pos: heroPos(e)}
	v.TargetIsDoor = false
	return computeMovementInput(v, e.Outdoors)
}

func behaveDogFood(e *Engine, slot int) uint8 {
	v := &e.Table.Slots[slot]
	if e.HaltCounters[slot] > 0 {
		e.HaltCounters[slot]--
		if e.HaltCounters[slot] == 0 {
			vischar.ResetVisibleCharacter(e.Table, slot, e.Characters, e.Movables)
		}
		return 0
	}
	if e.FoodFinder == nil {
		return 0
	}
	pos, poisoned, found := e.FoodFinder()
	if !found {
		return 0
	}
	v.Target = route.Target{Kind: route.TargetLocation, Pos: pos}
	v.TargetIsDoor = false

	input := computeMovementInput(v, e.Outdoors)
	if input == 0 {
		if poisoned {
			e.HaltCounters[slot] = dogFoodPoisonedTicks
		} else {
			e.HaltCounters[slot] = dogFoodFreshTicks
		}
	}
	return input
}

func behaveSawBribe(e *Engine, slot int) uint8 {
	v := &e.Table.Slots[slot]
	if e.BribedCharacterSlot < 0 || e.BribedCharacterSlot == slot {
		return 0
	}
	target := &e.Table.Slots[e.BribedCharacterSlot]
	v.Target = route.Target{Kind: route.TargetLocation, Pos: targetScale(e, target.MI.Pos)}
	v.TargetIsDoor = false
	return computeMovementInput(v, e.Outdoors)
}

func behaveRoute(e *Engine, slot int) uint8 {
	v := &e.Table.Slots[slot]
	if v.Route.Index == 0 {
		return 0 // route.index == 0: actor stands still (spec.md §3)
	}
	if v.Counter() > 0 {
		v.SetCounter(v.Counter() - 1)
		return 0
	}
	input := computeMovementInput(v, e.Outdoors)
	if input == 0 {
		targetReached(e, slot)
	}
	return input
}

// Automatics is the per-tick pursuit-trigger pass, run over every
// non-hero slot before CharacterBehaviour (spec.md §4.7's trigger
// column): a raised red flag or a searchlight catch turns every visible
// hostile onto the hero; a dog with food flagged nearby starts the
// dog-food pursuit; a guard close to a player-controlled hero starts
// hassling. Already-armed modes are left alone so a pursuit survives its
// trigger going away.
func Automatics(e *Engine, redFlag bool) {
	for i := 1; i < vischar.NumSlots; i++ {
		v := &e.Table.Slots[i]
		if v.Empty || assets.IsMovableItem(v.Character) {
			continue
		}
		class := assets.ClassOf(v.Character)
		if !assets.IsHostile(class) {
			continue
		}

		if (redFlag || e.SearchlightCaught) && v.Kind() != vischar.PursuitDogFood {
			v.SetKind(vischar.PursuitPursue)
			continue
		}
		if v.Kind() != vischar.PursuitNone {
			continue
		}

		if class == assets.ClassDog && e.FoodFinder != nil {
			if _, _, found := e.FoodFinder(); found {
				v.SetKind(vischar.PursuitDogFood)
				continue
			}
		}
		if (class == assets.ClassGuard || class == assets.ClassCommandant) && !e.HeroAutomatic {
			hero := e.Table.Slots[vischar.HeroSlot].MI.Pos
			if abs16(v.MI.Pos.U-hero.U) <= hassleRadius && abs16(v.MI.Pos.V-hero.V) <= hassleRadius {
				v.SetKind(vischar.PursuitHassle)
			}
		}
	}
}

// SawBribe marks every visible hostile as having witnessed the hero's
// bribe (spec.md §4.7 mode 4): they abandon their routes to converge on
// the bribed character's vischar.
func SawBribe(e *Engine, bribedSlot int) {
	e.BribedCharacterSlot = bribedSlot
	for i := 1; i < vischar.NumSlots; i++ {
		v := &e.Table.Slots[i]
		if v.Empty || assets.IsMovableItem(v.Character) {
			continue
		}
		if i != bribedSlot && assets.IsHostile(assets.ClassOf(v.Character)) {
			v.SetKind(vischar.PursuitSawBribe)
		}
	}
}

// targetReached advances a route's step and re-resolves its target,
// dispatching a character event if the route runs out (spec.md §4.6).
func targetReached(e *Engine, slot int) {
	v := &e.Table.Slots[slot]
	v.Route = route.AdvanceStep(v.Route)
	t := route.GetTarget(v.Route, e.PRNG)

	if t.Kind == route.TargetRouteEnds {
		newRoute, action, ev := route.RouteEnded(v.Character, v.Route)
		v.Route = newRoute
		if action == route.ActionCharacterEvent && ev != assets.EventNone && e.DispatchCharacterEvent != nil {
			e.DispatchCharacterEvent(ev)
		}
		t = route.GetTarget(v.Route, e.PRNG)
	}

	v.Target = t
	v.TargetIsDoor = t.Kind == route.TargetDoor
}

// InitializeSpawnedVischar runs spawn_character's final two steps (spec.md
// §4.4 step 7): set the route's target, then step the behaviour engine
// once.
func InitializeSpawnedVischar(e *Engine, slot int) uint8 {
	v := &e.Table.Slots[slot]
	t := route.GetTarget(v.Route, e.PRNG)
	v.Target = t
	v.TargetIsDoor = t.Kind == route.TargetDoor
	return CharacterBehaviour(e, slot)
}

type axis uint8

const (
	axisU axis = iota
	axisV
)

// axisInput maps an axis delta's sign to the diagonal that shrinks it:
// +u projects up-left on screen, so an actor whose u exceeds its
// target's walks down-right, and symmetrically for the other three
// cases (spec.md §4.7's LEFT+UP/RIGHT+DOWN and LEFT+DOWN/RIGHT+UP
// pairs).
func axisInput(a axis, positive bool) uint8 {
	switch a {
	case axisU:
		if positive {
			return machine.InputRightDown
		}
		return machine.InputLeftUp
	default:
		if positive {
			return machine.InputLeftDown
		}
		return machine.InputRightUp
	}
}

func axisDelta(a axis, v *vischar.Vischar, scale int32) int32 {
	switch a {
	case axisU:
		return int32(v.MI.Pos.U) - int32(v.Target.Pos.U)*scale
	default:
		return int32(v.MI.Pos.V) - int32(v.Target.Pos.V)*scale
	}
}

// computeMovementInput implements the axis-dominant movement math
// (spec.md §4.7): compute the primary axis's delta; if it's large enough,
// return the input for that axis. Otherwise the axis has been reached —
// toggle dominance and try the secondary axis. Zero from both means
// target_reached.
func computeMovementInput(v *vischar.Vischar, outdoors bool) uint8 {
	scale := int32(ScaleIndoor)
	if outdoors {
		if v.TargetIsDoor {
			scale = ScaleOutdoorDoor
		} else {
			scale = ScaleOutdoor
		}
	}

	primary, secondary := axisU, axisV
	if v.YDominant() {
		primary, secondary = axisV, axisU
	}

	for _, a := range [2]axis{primary, secondary} {
		delta := axisDelta(a, v, scale)
		if delta >= 3 {
			return axisInput(a, true)
		}
		if delta <= -3 {
			return axisInput(a, false)
		}
		v.ToggleDominance()
	}
	return 0
}
