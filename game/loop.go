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
	"github.com/dpt-reimpl/greatescape/render"
	"github.com/dpt-reimpl/greatescape/route"
	"github.com/dpt-reimpl/greatescape/searchlight"
	"github.com/dpt-reimpl/greatescape/tile"
	"github.com/dpt-reimpl/greatescape/vischar"
)

// Setup implements spec.md §6.4's setup: wipe the display and reset the
// score, ready for the menu. The original's "draw menu frame" is the
// host's job once it owns a text/tile renderer (out of scope here, spec.md
// §1); this leaves the framebuffer blank rather than drawing a placeholder.
func Setup(s *State, m machine.Machine) {
	*m.Screen() = machine.Screen{}
	for i := range m.Screen().Attributes {
		m.Screen().Attributes[i] = machine.Attribute{Ink: 7}.Byte() // white on black
	}
	m.Out(machine.PortBorder, 0)
	s.Score = 0
	m.Draw(nil)
}

// Menu implements spec.md §6.4's menu: it blocks, polling the input
// routine once per tick, until the fire key is pressed, then returns 0 so
// setup2 can start a game. A host-requested quit during the wait is
// reported by returning -1.
func Menu(s *State, m machine.Machine) int32 {
	for {
		if machine.FirePressed(s.InputRoutine(m)) {
			return 0
		}
		if m.Sleep(TickTStates) {
			return -1
		}
	}
}

// Setup2 implements spec.md §6.4's setup2: initialise in-game state via
// Reset. The "install the control-flow anchor" step has no separate
// runtime representation here: Main always re-enters via Tick, so every
// call is already equivalent to resuming at the anchor (spec.md §5's "the
// anchor is armed once and never unarmed").
func Setup2(s *State, m machine.Machine) {
	Reset(s)
}

// Main implements spec.md §6.4's main: one iteration of the top-level
// loop, called repeatedly by the host. It reports whether the host should
// stop calling it.
func Main(s *State, m machine.Machine) bool {
	return Tick(s, m)
}

// breakKeyHeld reports whether CAPS SHIFT and SPACE are both down, the
// original's break-game combination (spec.md §4.1).
func breakKeyHeld(m machine.Machine) bool {
	const (
		portCapsShift = 0xFEFE
		portSpace     = 0x7FFE
	)
	return m.In(portCapsShift)&0x01 == 0 && m.In(portSpace)&0x01 == 0
}

// Tick runs one iteration of main_loop (spec.md §4.1), in the order the
// original observes it. The break-key path skips the original's
// confirmation prompt and resets immediately, since this core has no text
// input/overlay system of its own to host one (spec.md §1).
func Tick(s *State, m machine.Machine) (quit bool) {
	s.tickCount++

	if s.Morale <= MoraleLow {
		s.Messages.Enqueue(assets.MsgMoraleIsZero)
		Reset(s)
		return false
	}

	if breakKeyHeld(m) {
		Reset(s)
		return false
	}

	displayMessageChar(s, m)

	heroInput := s.InputRoutine(m)
	if machine.FirePressed(heroInput) {
		HandleFire(s)
	}

	// The automatic-control counter reloads on any player input and
	// decays while idle; at zero the behaviour engine drives the hero.
	if heroInput != machine.InputNone {
		s.BehaviourEngine.AutomaticPlayerCounter = 31
	} else if s.BehaviourEngine.AutomaticPlayerCounter > 0 {
		s.BehaviourEngine.AutomaticPlayerCounter--
	}
	heroInput = machine.MovementOnly(heroInput)
	s.HeroAutomatic = s.BehaviourEngine.AutomaticPlayerCounter == 0
	s.BehaviourEngine.HeroAutomatic = s.HeroAutomatic

	if s.WireCutTicks > 0 {
		s.WireCutTicks--
		if s.WireCutTicks == 0 && s.heroVischar().Kind() == vischar.PursuitCuttingWire {
			s.heroVischar().SetKind(vischar.PursuitNone)
		}
	}

	heroPos := s.heroMapPos()
	s.RedFlag = s.Outdoors && !assets.InCampBounds(heroPos.U, heroPos.V)

	if s.Outdoors && assets.AtMapBoundary(heroPos.U, heroPos.V) {
		Escape(s)
		return m.Sleep(TickTStates)
	}

	s.Win.Clear()
	if s.Outdoors {
		tile.PlotOutdoorTiles(s.Outdoor, assets.RoomKindOutdoorBank0, &s.Win)
	} else {
		tile.PlotInteriorTiles(s.Indoor, &s.Win)
	}

	advanceOffscreenCharacter(s)

	s.BehaviourEngine.SearchlightCaught = s.Searchlights.State == searchlight.StateCaught
	behaviour.Automatics(s.BehaviourEngine, s.RedFlag)

	var inputs [vischar.NumSlots]uint8
	for i := range s.VC.Slots {
		v := &s.VC.Slots[i]
		if v.Empty {
			continue
		}
		if i == vischar.HeroSlot && !s.HeroAutomatic {
			inputs[i] = heroInput
		} else {
			inputs[i] = behaviour.CharacterBehaviour(s.BehaviourEngine, i)
		}
	}

	camera := s.cameraWindow()
	vischar.PurgeInvisibleCharacters(s.VC, s.CurrentRoom, camera, &s.Characters, &s.Movables)
	spawnCharacters(s, m, camera, &inputs)
	if s.Outdoors {
		spawnMovables(s, camera)
	}

	item.MarkNearbyItems(s.Items, s.CurrentRoom, camera)

	tickBell(s, m)

	for i := range s.VC.Slots {
		slot := i
		v := &s.VC.Slots[slot]
		if v.Empty {
			continue
		}
		anim.Step(v, inputs[slot], func(_ *vischar.Vischar, pos coords.Pos16, spr uint8) bool {
			return behaviour.Touch(s.BehaviourEngine, slot, pos, spr)
		})
		if t := s.BehaviourEngine.PendingTransition; t != nil {
			s.BehaviourEngine.PendingTransition = nil
			enterRoom(s, t.Room, t.Pos)
			playZoomBoxTransition(s, m)
			break
		}
	}

	stepCameraScroll(s)

	displayMessageChar(s, m)
	tickBell(s, m)

	entries := render.BuildEntries(s.VC, s.Items, s.Outdoors)
	if err := render.PlotAll(&s.Win, &s.Mask, s.CameraOrigin, entries, maskDescriptorsFor(s), &s.HeroHidden); err != nil {
		panic(fmt.Sprintf("game: rendering failed: %v", err))
	}

	render.CopyToFramebuffer(m.Screen(), &s.Win, s.OffsetX, s.OffsetY)
	m.Draw(nil)

	tickBell(s, m)

	if s.NightTime && s.SearchlightsOn {
		stepSearchlights(s, m)
	}

	if handler, ok := s.Clock.Tick(); ok {
		dispatchTimedEvent(s, handler)
	}

	return m.Sleep(TickTStates)
}

// pulseSpeaker emits one click through the border/speaker port
// (spec.md §6.1: port 0x00FE bit 4).
func pulseSpeaker(m machine.Machine) {
	m.Out(machine.PortBorder, machine.SpeakerBit)
	m.Out(machine.PortBorder, 0)
}

// tickBell runs one ring_bell step: while ringing, it stamps the current
// ringer bitmap at its fixed screen spot and clicks the speaker
// (spec.md §4.13).
func tickBell(s *State, m machine.Machine) {
	sprite, click := s.Bell.Tick()
	if !click {
		return
	}
	for row, b := range sprite {
		for bit := 0; bit < 8; bit++ {
			machine.PutPixel(m.Screen(), 248+bit, row, b&(1<<uint(7-bit)) != 0)
		}
	}
	pulseSpeaker(m)
}

// displayMessageChar advances message_display's per-character state
// machine by one call, rendering the character into the message row at
// the bottom of the screen with a click (spec.md §4.12). The row clears
// once the queue drains.
func displayMessageChar(s *State, m machine.Machine) {
	ch, ok := s.Messages.DisplayNext()
	if !ok {
		if s.messageCol != 0 {
			clearMessageRow(m.Screen())
			s.messageCol = 0
		}
		return
	}
	if s.messageCol >= 32 {
		clearMessageRow(m.Screen())
		s.messageCol = 0
	}
	glyph := assets.FontGlyph(ch)
	for r := 0; r < 8; r++ {
		for bit := 0; bit < 8; bit++ {
			machine.PutPixel(m.Screen(), s.messageCol*8+bit, messageRowY+r, glyph[r]&(1<<uint(7-bit)) != 0)
		}
	}
	s.messageCol++
	pulseSpeaker(m)
}

// messageRowY is the top pixel row of the one-line message area at the
// bottom of the screen.
const messageRowY = 184

func clearMessageRow(screen *machine.Screen) {
	for y := messageRowY; y < 192; y++ {
		for x := 0; x < 256; x++ {
			machine.PutPixel(screen, x, y, false)
		}
	}
}

// advanceOffscreenCharacter nudges a single off-screen character's route
// forward each tick, round-robin by tick count, rather than simulating
// every offscreen actor in full (spec.md §4.1's "advance one off-screen
// character").
func advanceOffscreenCharacter(s *State) {
	id := assets.CharacterID(s.tickCount % uint64(assets.NumCharacters))
	if id == assets.Hero {
		return
	}
	cs := &s.Characters[id]
	if cs.OnScreen || cs.Route.Index == 0 || cs.Route.Index == assets.RouteIndexWander {
		return
	}
	cs.Route = route.AdvanceStep(cs.Route)
	if t := route.GetTarget(cs.Route, s.BehaviourEngine.PRNG); t.Kind == route.TargetRouteEnds {
		newRoute, _, _ := route.RouteEnded(cs.ID, cs.Route)
		cs.Route = newRoute
	}
}

// spawnCharacters implements spec.md §4.4's spawn pass for every
// off-screen character resting in the current room whose projected
// position has entered the camera's spawn window.
func spawnCharacters(s *State, m machine.Machine, camera vischar.CameraWindow, inputs *[vischar.NumSlots]uint8) {
	for i := range s.Characters {
		cid := assets.CharacterID(i)
		if cid == assets.Hero {
			continue
		}
		cs := &s.Characters[cid]
		if cs.OnScreen || cs.Room != s.CurrentRoom {
			continue
		}

		scratch := cs.Pos.ToPos16()
		if s.Outdoors {
			scratch = coords.ScaleUp(cs.Pos)
		}
		if !vischar.InSpawnWindow(coords.Project(scratch), camera) {
			continue
		}

		slot, ok := vischar.SpawnCharacter(s.VC, cs, s.Outdoors, func(p coords.Pos16) bool {
			return behaviour.BoundsCheck(cs.Room, p) && !behaviour.CollisionAt(s.BehaviourEngine, p)
		})
		if !ok {
			continue
		}
		if !s.Outdoors {
			// Two enter-room clicks accompany an indoor spawn.
			pulseSpeaker(m)
			pulseSpeaker(m)
		}
		inputs[slot] = behaviour.InitializeSpawnedVischar(s.BehaviourEngine, slot)
	}
}

// spawnMovables mirrors spawnCharacters for the three movable props
// (stove, two crates), which live outside the character table (spec.md
// §4.4, §4.7's push_item).
func spawnMovables(s *State, camera vischar.CameraWindow) {
	for i := range s.Movables {
		id := assets.MovableStove + assets.CharacterID(i)
		if findVischarSlot(s, id) >= 0 {
			continue
		}
		md := &s.Movables[i]
		if !vischar.InSpawnWindow(coords.Project(md.Pos), camera) {
			continue
		}
		// Movable items' saved positions are already live-scale, so the
		// spawn must not scale them up again.
		cs := assets.CharacterStruct{ID: id, Room: assets.Outdoors, Pos: md.Pos.Narrow()}
		slot, ok := vischar.SpawnCharacter(s.VC, &cs, false, func(p coords.Pos16) bool {
			return !behaviour.CollisionAt(s.BehaviourEngine, p)
		})
		if ok {
			s.VC.Slots[slot].MI.SpriteIndex = md.SpriteIdx
		}
	}
}

// stepCameraScroll implements spec.md §4.5's move_map: the committed
// animation's declared scroll direction advances the sub-pixel phase
// state machine, and a full elapsed tile shifts the camera origin and
// re-expands the outdoor window's newly visible strip. Indoor rooms never
// scroll: their tile grid is static for the room's lifetime.
func stepCameraScroll(s *State) {
	if !s.Outdoors {
		return
	}
	hero := s.heroVischar()
	dir, scrolls := anim.MapMoveDirFor(hero)
	if !scrolls {
		return
	}

	switch s.Scroll.ShouldScroll(hero, cameraClamped(s, assets.Direction(dir))) {
	case anim.ScrollX:
		positive := assets.Direction(dir) == assets.DirTopRight || assets.Direction(dir) == assets.DirBottomRight
		shiftAxis(&s.OffsetX, positive, &s.CameraOrigin.X, func(rightward bool) {
			if rightward {
				scrollOutdoor(s, tile.ScrollRight)
			} else {
				scrollOutdoor(s, tile.ScrollLeft)
			}
		})
	case anim.ScrollY:
		positive := assets.Direction(dir) == assets.DirBottomLeft || assets.Direction(dir) == assets.DirBottomRight
		shiftAxis(&s.OffsetY, positive, &s.CameraOrigin.Y, func(downward bool) {
			if downward {
				scrollOutdoor(s, tile.ScrollDown)
			} else {
				scrollOutdoor(s, tile.ScrollUp)
			}
		})
	}
}

// cameraClamped reports whether the supertile window is already pressed
// against the map edge the hero's movement would scroll toward, which
// suppresses the scroll entirely (spec.md §4.5).
func cameraClamped(s *State, dir assets.Direction) bool {
	col, row := s.Outdoor.Origin()
	atRight := col >= assets.MapWidthSupertiles-tile.OutdoorWindowCols
	atLeft := col <= 0
	atBottom := row >= assets.MapHeightSupertiles-tile.OutdoorWindowRows
	atTop := row <= 0
	switch dir {
	case assets.DirTopRight:
		return atRight && atTop
	case assets.DirBottomRight:
		return atRight && atBottom
	case assets.DirBottomLeft:
		return atLeft && atBottom
	default: // DirTopLeft
		return atLeft && atTop
	}
}

// scrollOutdoor shifts the expander window one supertile in dir unless
// that would walk it off the map.
func scrollOutdoor(s *State, dir tile.ScrollDir) {
	col, row := s.Outdoor.Origin()
	switch dir {
	case tile.ScrollLeft:
		if col <= 0 {
			return
		}
	case tile.ScrollRight:
		if col >= assets.MapWidthSupertiles-tile.OutdoorWindowCols {
			return
		}
	case tile.ScrollUp:
		if row <= 0 {
			return
		}
	case tile.ScrollDown:
		if row >= assets.MapHeightSupertiles-tile.OutdoorWindowRows {
			return
		}
	}
	s.Outdoor.Scroll(dir)
}

// shiftAxis advances a sub-tile pixel offset by one step, and once a full
// 8px tile has elapsed, resets the offset, shifts the matching camera
// origin axis, and invokes scrollWindow to re-expand the exposed strip.
func shiftAxis(offset *int, positive bool, origin *int16, scrollWindow func(positive bool)) {
	if positive {
		*offset++
	} else {
		*offset--
	}
	if *offset >= 8 {
		*offset = 0
		*origin += 8
		scrollWindow(true)
	} else if *offset <= -8 {
		*offset = 0
		*origin -= 8
		scrollWindow(false)
	}
}

// playZoomBoxTransition implements spec.md §4.10's zoom-box: it re-plots
// the just-entered room's tiles into the window buffer, then grows a
// concentric rectangle from ZoomBoxOrigin to ZoomBoxMax, copying each
// frame's region into the host framebuffer and sleeping proportional to
// its perimeter, matching §4.10 step (d) exactly.
func playZoomBoxTransition(s *State, m machine.Machine) {
	s.Win.Clear()
	if s.Outdoors {
		tile.PlotOutdoorTiles(s.Outdoor, assets.RoomKindOutdoorBank0, &s.Win)
	} else {
		tile.PlotInteriorTiles(s.Indoor, &s.Win)
	}

	for n := 0; ; n++ {
		rect, done := render.ZoomBoxStep(n)
		render.CopyZoomBoxRegion(m.Screen(), &s.Win, rect)
		paintZoomBoxBorder(m.Screen(), rect)
		m.Draw(nil)
		if m.Sleep(render.ZoomBoxSleepTStates(rect)) {
			return
		}
		if done {
			return
		}
	}
}

// paintZoomBoxBorder paints the attribute cells ringing the zoom-box's
// current rectangle in the game-window attribute (spec.md §4.10 step
// (c)).
func paintZoomBoxBorder(screen *machine.Screen, r render.ZoomBoxRect) {
	attr := machine.Attribute{Ink: 7} // white on black, the game window's attribute
	for col := r.Col - 1; col <= r.Col+r.W; col++ {
		if col < 0 || col >= 32 {
			continue
		}
		for _, row := range [2]int{r.Row - 1, r.Row + r.H} {
			if row < 0 || row >= 24 {
				continue
			}
			screen.Attributes[row*32+col] = attr.Byte()
		}
	}
	for row := r.Row; row < r.Row+r.H; row++ {
		if row < 0 || row >= 24 {
			continue
		}
		for _, col := range [2]int{r.Col - 1, r.Col + r.W} {
			if col < 0 || col >= 32 {
				continue
			}
			screen.Attributes[row*32+col] = attr.Byte()
		}
	}
}

// maskDescriptorsFor selects the current room's interior mask refs, or
// the single outdoor mask table, for PlotAll's occlusion rebuild (spec.md
// §4.3).
func maskDescriptorsFor(s *State) []assets.MaskDescriptor {
	if s.Outdoors {
		return assets.OutdoorMaskDescriptorTable
	}
	rd := assets.RoomByNumber(s.CurrentRoom)
	descriptors := make([]assets.MaskDescriptor, len(rd.MaskRefs))
	for i, ref := range rd.MaskRefs {
		descriptors[i] = assets.MaskDescriptorByIndex(ref)
	}
	return descriptors
}

// searchlightLoseTicks is how many consecutive ticks the hero must stay
// masked by scenery before a caught searchlight gives up and resumes its
// patrol (spec.md §4.10 step 4's countdown).
const searchlightLoseTicks = 64

// stepSearchlights implements spec.md §4.11's nightly update: step every
// patrolling light; on the first hit latch the caught state, ring the
// bell perpetually, and drop morale (the hostiles' PURSUE trigger then
// picks the catch up via Automatics); once caught, track the hero with
// the catching light — unless scenery hides them long enough to shake
// the light off — and plot all three discs.
func stepSearchlights(s *State, m machine.Machine) {
	hero := s.heroMapPos()
	if s.Searchlights.State == searchlight.StatePatrolling {
		searchlight.StepAll(s.Searchlights)
		if idx, caught := searchlight.Caught(s.Searchlights, hero); caught {
			s.SearchlightCaughtIdx = idx
			s.SearchlightHideTicks = searchlightLoseTicks
			s.Bell.Ring(event.BellPerpetual)
			s.AdjustMorale(-10)
		}
	} else if s.HeroHidden {
		s.SearchlightHideTicks--
		if s.SearchlightHideTicks <= 0 {
			s.Searchlights.State = searchlight.StatePatrolling
			s.SearchlightCaughtIdx = -1
			s.Bell.Stop()
		}
	} else {
		s.SearchlightHideTicks = searchlightLoseTicks
		searchlight.TrackHero(s.Searchlights, s.SearchlightCaughtIdx, hero)
	}

	clip := searchlight.ClipRect{X0: 0, Y0: 0, X1: 256, Y1: 192}
	screen := m.Screen()
	for i := range s.Searchlights.Lights {
		l := &s.Searchlights.Lights[i]
		p := coords.Project(l.Pos.ToPos16())
		local := coords.IsoPos{
			X: p.X - s.CameraOrigin.X - int16(s.OffsetX),
			Y: p.Y - s.CameraOrigin.Y - int16(s.OffsetY),
		}
		searchlight.Plot(screen, local, clip)
	}
}

// dispatchTimedEvent runs the handler named by the day clock's 15-entry
// schedule (spec.md §4.12). Most entries are the small one-shot state
// transitions the original implements inline at the call site; a few
// (breakfast/bed markers) are schedule bookkeeping with nothing further
// to model without a roll-call/attendance subsystem (out of spec scope,
// spec.md §1).
func dispatchTimedEvent(s *State, handler assets.EventHandlerID) {
	switch handler {
	case assets.EventAnotherDayDawns:
		s.NightTime = false
		s.SearchlightsOn = false
		s.SearchlightCaughtIdx = -1
		s.Searchlights = searchlight.NewTable()
		s.Bell.Stop()
	case assets.EventWakeUp:
		s.Bell.Ring(40)
		s.Messages.Enqueue(assets.MsgTimeToWakeUp)
		s.HeroInBed = false
		// The morning shuffle sends the commandant's block back to the
		// huts: the first half to hut 2's right side, the rest to hut 3.
		for id := assets.Commandant; id <= assets.HutPrisonerLast; id++ {
			cs := &s.Characters[id]
			if cs.OnScreen {
				continue
			}
			if id <= assets.Commandant+2 {
				cs.Room = 2
			} else {
				cs.Room = 3
			}
		}
	case assets.EventNewRedCrossParcel:
		for i := range s.Items.Items {
			it := &s.Items.Items[i]
			if !it.Held && (it.ID == assets.ItemFood || it.ID == assets.ItemPoisonedFood) {
				item.ResetToDefault(s.Items, i)
			}
		}
	case assets.EventGoToRollCall:
		s.Bell.Ring(20)
	case assets.EventGoToBreakfast2, assets.EventEndOfBreakfast, assets.EventGoToBed2:
		// Schedule markers only; nothing further to model here.
	case assets.EventGoToExercise:
		setMainGateLocked(s, false)
	case assets.EventExerciseDone:
		setMainGateLocked(s, true)
	case assets.EventTimeForBed:
		s.Bell.Ring(40)
	case assets.EventNightTime:
		s.NightTime = true
	case assets.EventSearchlightOn:
		s.SearchlightsOn = true
	default:
		panic(fmt.Sprintf("game: unhandled timed event %d", handler))
	}
}

// setMainGateLocked locks or unlocks the two main-gate door sides (door
// pair 0), matching exercise-yard open/closed scheduling (spec.md §3).
func setMainGateLocked(s *State, locked bool) {
	for i := range s.BehaviourEngine.LockedDoors {
		if ld := &s.BehaviourEngine.LockedDoors[i]; ld.DoorIndex == 0 || ld.DoorIndex == 1 {
			ld.Locked = locked
		}
	}
}
