// Package game wires the leaf packages (machine, assets, tile, mask,
// vischar, anim, route, behaviour, render, item, event, searchlight) into
// the top-level simulation loop: one State value, start-of-game setup,
// reset, solitary, and the end-of-game escape evaluator (spec.md §4.1).
// Grounded on console.Bus's role: a single struct that owns every live
// subsystem and a Run-style loop that ticks them in order.
package game

import (
	"fmt"

	"github.com/dpt-reimpl/greatescape/anim"
	"github.com/dpt-reimpl/greatescape/assets"
	"github.com/dpt-reimpl/greatescape/behaviour"
	"github.com/dpt-reimpl/greatescape/coords"
	"github.com/dpt-reimpl/greatescape/event"
	"github.com/dpt-reimpl/greatescape/item"
	"github.com/dpt-reimpl/greatescape/machine"
	"github.com/dpt-reimpl/greatescape/mask"
	"github.com/dpt-reimpl/greatescape/searchlight"
	"github.com/dpt-reimpl/greatescape/tile"
	"github.com/dpt-reimpl/greatescape/vischar"
	"github.com/dpt-reimpl/greatescape/winbuf"
)

// MoraleMax and MoraleLow are the clamp ceiling and the "morale is zero"
// game-over floor (spec.md §3, §4.1).
const (
	MoraleMax = 200
	MoraleLow = 0
)

// TickTStates is the reference sleep duration between ticks: the
// original's outdoor average of 367,731 T-states (spec.md §5). The host
// converts this to wall-clock time; the core never reads a clock itself.
const TickTStates = 367731

// eventDispatchEvery matches event.Clock's internal period; re-stated
// here only as documentation for main_loop's "every 64 ticks" ordering.
const eventDispatchEvery = 64

// State is the single value the simulation core mutates (spec.md §5): no
// other package-level mutable state exists outside the immutable asset
// tables.
type State struct {
	Pack assets.Pack

	Characters [assets.NumCharacters]assets.CharacterStruct
	Movables   [3]assets.MovableItemDefault

	VC    *vischar.Table
	Items *item.Table

	ItemEngine      *item.Engine
	BehaviourEngine *behaviour.Engine

	Clock    event.Clock
	Messages event.Queue
	Bell     event.Bell

	Searchlights *searchlight.Table

	Shadow  *tile.ShadowTable
	Outdoor *tile.OutdoorExpander
	Indoor  tile.Grid

	Win   winbuf.Buffer
	Mask  mask.Buffer
	Scroll anim.CameraScroll

	PRNG assets.PRNGCursor

	CurrentRoom uint8
	Outdoors    bool

	// CameraOrigin is the world iso position mapped to the window
	// buffer's (0,0) corner; it moves as the camera/map scroll steps.
	CameraOrigin coords.IsoPos
	// OffsetX/OffsetY are the sub-tile smooth-scroll phase applied when
	// copying the window buffer to the host framebuffer (spec.md §4.10).
	OffsetX, OffsetY int

	Morale int
	Score  int

	RedFlag      bool
	InSolitary   bool
	HeroInBed    bool
	NightTime    bool

	// SearchlightsOn gates the searchlight update separately from
	// NightTime: the dispatcher flips it on partway through the night
	// rather than the moment night falls (spec.md §4.12's timed-event
	// table keeps EventNightTime and EventSearchlightOn distinct).
	SearchlightsOn       bool
	SearchlightCaughtIdx int

	// HeroHidden records whether scenery fully masked the hero when they
	// were last plotted; a caught searchlight that can't see the hero
	// for long enough gives up and resumes its patrol.
	HeroHidden           bool
	SearchlightHideTicks int

	HeroAutomatic bool

	// WireCutTicks counts down the hero's cutting-wire window after the
	// wire snips are used; the cutting flag clears when it expires.
	WireCutTicks int

	InputRoutine machine.InputRoutine

	tickCount uint64
	// messageCol is message_display's cursor within the on-screen
	// message row.
	messageCol int
}

// NewState builds a fresh State against pack, with the shadow roomdef
// table initialised empty (it survives across games, spec.md §4.2) and
// every other subsystem in its zeroed pre-reset shape. Call Reset before
// the first tick.
func NewState(pack assets.Pack) *State {
	s := &State{
		Pack:         pack,
		VC:           vischar.NewTable(),
		Shadow:       tile.NewShadowTable(),
		Searchlights: searchlight.NewTable(),
		InputRoutine:         machine.Keyboard(machine.DefaultKeyMap),
		SearchlightCaughtIdx: -1,
	}
	s.Items = item.NewTable()
	s.ItemEngine = item.NewEngine(s.Items)
	s.BehaviourEngine = behaviour.NewEngine(s.VC, &s.Characters, &s.Movables)
	s.wireHooks()
	return s
}

// wireHooks connects the item and behaviour engines' callbacks to this
// State's own fields, the way a constructor wires a bus's memory-mapped
// peripherals.
func (s *State) wireHooks() {
	s.ItemEngine.PlayClick = func() {}
	s.ItemEngine.RedrawInventory = func() {}
	s.ItemEngine.AwardFirstPickup = func(moraleDelta, scoreDelta int) {
		s.AdjustMorale(moraleDelta)
		s.Score += scoreDelta
	}
	s.ItemEngine.QueueMessage = func(msg string) { s.Messages.Enqueue(msg) }
	s.ItemEngine.AdjustMorale = func(delta int) { s.AdjustMorale(delta) }

	s.BehaviourEngine.PRNG = s.PRNG.Next
	s.BehaviourEngine.FoodFinder = func() (coords.Pos8, bool, bool) {
		pos, poisoned, found := item.NearestFood(s.Items)
		if found && s.Outdoors {
			// Behaviour targets are map-scale; outdoor item positions
			// rest at half the live scale (4x the map scale).
			pos = coords.Pos8{U: pos.U / 4, V: pos.V / 4, W: pos.W / 4}
		}
		return pos, poisoned, found
	}
	s.BehaviourEngine.BribedCharacterSlot = -1
	s.BehaviourEngine.QueueMessage = func(msg string) { s.Messages.Enqueue(msg) }
	s.BehaviourEngine.DispatchCharacterEvent = func(ev assets.CharacterEvent) { DispatchCharacterEvent(s, ev) }
	s.BehaviourEngine.OnAcceptBribe = func(slot int) {
		// The bribe is honoured: the witness calls off the chase, and
		// every hostile still converging on the bribed character stands
		// down with it.
		s.BehaviourEngine.BribedCharacterSlot = -1
		for i := range s.VC.Slots {
			v := &s.VC.Slots[i]
			if !v.Empty && v.Kind() == vischar.PursuitSawBribe {
				v.SetKind(vischar.PursuitNone)
			}
		}
	}
	s.BehaviourEngine.OnHeroCaught = func() {
		if !s.heroWearingUniform() {
			Solitary(s)
		}
	}
}

// AdjustMorale applies delta, clamping to [MoraleLow, MoraleMax] (spec.md
// §8 invariant 7: "decreased... clamped >= 0").
func (s *State) AdjustMorale(delta int) {
	s.Morale += delta
	if s.Morale < MoraleLow {
		s.Morale = MoraleLow
	}
	if s.Morale > MoraleMax {
		s.Morale = MoraleMax
	}
}

func (s *State) heroWearingUniform() bool {
	for _, idx := range s.Items.Inventory {
		if idx < 0 {
			continue
		}
		id := s.Items.Items[idx].ID
		if id == assets.ItemUniform || id == assets.ItemUniform2 {
			return true
		}
	}
	return false
}

// Ticks reports how many times Tick has run, for diagnostics
// (debugmon's breakpoint/status display).
func (s *State) Ticks() uint64 { return s.tickCount }

// heroVischar returns the hero's always-present slot 0 entry.
func (s *State) heroVischar() *vischar.Vischar {
	return &s.VC.Slots[vischar.HeroSlot]
}

// heroPos8 narrows the hero's live position for callers needing the
// static width (door proximity tests, item range checks).
func (s *State) heroPos8() coords.Pos8 {
	return s.heroVischar().MI.Pos.Narrow()
}

// heroMapPos is the hero's position in map units: live divided by the
// outdoor scale when outdoors, the room-scale position indoors. The
// camp-bounds and map-boundary tests run in this space.
func (s *State) heroMapPos() coords.Pos8 {
	if s.Outdoors {
		return coords.ScaleDown(s.heroVischar().MI.Pos)
	}
	return s.heroVischar().MI.Pos.Narrow()
}

// cameraWindow derives the vischar/item camera-grace-border window from
// the current CameraOrigin (spec.md §4.4, §4.9 both expand off the same
// camera rectangle).
func (s *State) cameraWindow() vischar.CameraWindow {
	return vischar.CameraWindow{
		X0: s.CameraOrigin.X,
		X1: s.CameraOrigin.X + int16(winbuf.Columns*8),
		Y0: s.CameraOrigin.Y,
		Y1: s.CameraOrigin.Y + int16(winbuf.Rows*8),
	}
}

// DispatchCharacterEvent runs the handler a route-ended character event
// names (spec.md §4.6). Most handlers are small state transitions the
// original implements as one-liners; unhandled events are a no-op rather
// than a panic, since not every character ever reaches every event.
func DispatchCharacterEvent(s *State, ev assets.CharacterEvent) {
	switch ev {
	case assets.EventNone:
		// route.RouteEnded only calls this hook when it actually found a
		// handler; kept as a no-op guard for direct callers/tests.
	case assets.EventGoToBed, assets.EventHeroSleeps:
		s.HeroInBed = true
		setHeroBed(s, assets.ObjectIDBedOccupied)
	case assets.EventHeroSits, assets.EventGoToBreakfast:
		s.HeroInBed = false
		setHeroBed(s, assets.ObjectIDBedEmpty)
	case assets.EventAcceptSolitaryRelease, assets.EventHeroLeaveSolitary:
		s.InSolitary = false
	case assets.EventCommandantToYard:
		// The commandant's solitary-release route hands off to his
		// regular yard patrol; nothing further to model here.
	case assets.EventWanderTop, assets.EventWanderLeft, assets.EventWanderYard:
		// Wander routes simply keep cycling; no state transition.
	case assets.EventExitHut2, assets.EventExitHut3:
		// Handled by the door-transition path, not here.
	case assets.EventSitDown, assets.EventSleepInAssignedBed:
		// Cosmetic animation states only.
	default:
		panic(fmt.Sprintf("game: unhandled character event %d", ev))
	}
}

// setHeroBed swaps the hero's hut-2 bed between its occupied and empty
// variants through the shadow roomdef table — the static definition
// bytes are never written (spec.md §4.2, §9) — and re-expands the room's
// tile grid if it's the one on screen.
func setHeroBed(s *State, objectID uint8) {
	const heroBedRoom = 2
	s.Shadow.SetRoomdef(heroBedRoom, assets.RoomDef2Bed, objectID)
	if s.CurrentRoom == heroBedRoom {
		s.Indoor = tile.ExpandRoom(heroBedRoom, s.Shadow)
	}
}
