package behaviour

import (
	"github.com/dpt-reimpl/greatescape/assets"
	"github.com/dpt-reimpl/greatescape/coords"
	"github.com/dpt-reimpl/greatescape/machine"
	"github.com/dpt-reimpl/greatescape/vischar"
)

// Touch is the per-step contact test animation calls before committing a
// candidate position (spec.md §4.7). Matches the anim.Touch signature so
// it can be passed directly as the anim.Step callback.
func Touch(e *Engine, slot int, candidatePos coords.Pos16, candidateSpriteIndex uint8) bool {
	v := &e.Table.Slots[slot]
	v.Flags |= vischar.FlagDontMoveMap | vischar.FlagDrawable

	// Door transitions fire only while the player is actively steering
	// the hero (the automatic counter is reloaded by input and decays
	// while idle); the engine-driven hero changes rooms through its
	// character events instead.
	if slot == vischar.HeroSlot && e.AutomaticPlayerCounter > 0 &&
		v.Kind() != vischar.PursuitPickingLock && v.Kind() != vischar.PursuitCuttingWire {
		var t *Transition
		if e.Outdoors {
			t = doorHandling(e, candidatePos)
		} else {
			t = doorHandlingInterior(e, candidatePos)
		}
		if t != nil {
			e.PendingTransition = t
			return false
		}
	}

	cuttingWire := slot == vischar.HeroSlot && v.Kind() == vischar.PursuitCuttingWire
	if !cuttingWire {
		if !BoundsCheck(v.Room, candidatePos) {
			return false
		}
	}

	if !assets.IsMovableItem(v.Character) {
		if !collision(e, slot, candidatePos) {
			return false
		}
	}

	v.Flags &^= vischar.FlagDontMoveMap
	return true
}

// BoundsCheck rejects a candidate position outside a room's dimensions
// or inside one of its interior obstacle rectangles (spec.md §4.7).
// Exported because spawn_character runs the same test against its
// scratch position before committing a slot (spec.md §4.4 step 4).
// Outdoor wall/fence collision would need per-supertile solidity data
// the asset tables don't carry (out of scope, spec.md §1), so outdoors
// always passes.
func BoundsCheck(room uint8, candidate coords.Pos16) bool {
	if room == assets.Outdoors {
		return true
	}
	rd := assets.RoomByNumber(room)
	dim := rd.Dimensions()
	p := candidate.Narrow()

	if p.U < dim.MinU || p.U > dim.MaxU || p.V < dim.MinV || p.V > dim.MaxV || p.W < dim.MinW || p.W > dim.MaxW {
		return false
	}
	for _, b := range rd.InteriorBounds {
		if p.U >= b.MinU && p.U <= b.MaxU && p.V >= b.MinV && p.V <= b.MaxV {
			return false
		}
	}
	return true
}

// CollisionAt reports whether a candidate position overlaps any occupied
// vischar slot: the side-effect-free spawn-time variant of the per-step
// collision test (spec.md §4.4 step 4 — a spawn that would land on an
// existing actor aborts, with none of collision()'s push or stall
// handling).
func CollisionAt(e *Engine, candidate coords.Pos16) bool {
	for i := range e.Table.Slots {
		o := &e.Table.Slots[i]
		if o.Empty {
			continue
		}
		if abs16(candidate.U-o.MI.Pos.U) > 4 || abs16(candidate.V-o.MI.Pos.V) > 4 || abs16(candidate.W-o.MI.Pos.W) >= 24 {
			continue
		}
		return true
	}
	return false
}

func abs16(n int16) int16 {
	if n < 0 {
		return -n
	}
	return n
}

// collision iterates the 8 vischars, rejecting a move that would overlap
// another slot within the fixed proximity test, with special handling
// for pushable items and head-on stalls (spec.md §4.7).
func collision(e *Engine, slot int, candidate coords.Pos16) bool {
	v := &e.Table.Slots[slot]
	for i := range e.Table.Slots {
		if i == slot {
			continue
		}
		other := &e.Table.Slots[i]
		if other.Empty {
			continue
		}
		if abs16(candidate.U-other.MI.Pos.U) > 4 || abs16(candidate.V-other.MI.Pos.V) > 4 || abs16(candidate.W-other.MI.Pos.W) >= 24 {
			continue
		}

		if assets.IsMovableItem(other.Character) {
			if pushItem(e, i, v.DirectionCrawl) {
				continue
			}
			return false
		}

		if headOn(v, other) {
			stall(e, slot, v)
			stall(e, i, other)
		}
		return false
	}
	return true
}

// pushItem nudges a movable item's position by one unit along the
// pusher's facing direction, refusing the push once the item leaves its
// fixed window around its reset position (spec.md §4.7).
func pushItem(e *Engine, itemSlot int, pusherDirectionCrawl uint8) bool {
	item := &e.Table.Slots[itemSlot]
	idx := int(item.Character) - int(assets.MovableStove)
	centre := assets.MovableItemDefaults[idx].Pos
	dir := assets.Direction(pusherDirectionCrawl & 0x03)

	switch dir {
	case assets.DirTopLeft, assets.DirBottomRight:
		delta := int16(1)
		if dir == assets.DirTopLeft {
			delta = -1
		}
		newU := item.MI.Pos.U + delta
		if newU < centre.U-pushRange || newU > centre.U+pushRange {
			return false
		}
		item.MI.Pos.U = newU
	case assets.DirTopRight, assets.DirBottomLeft:
		delta := int16(1)
		if dir == assets.DirTopRight {
			delta = -1
		}
		newV := item.MI.Pos.V + delta
		if newV < centre.V-pushRange || newV > centre.V+pushRange {
			return false
		}
		item.MI.Pos.V = newV
	}
	item.IsoPos = coords.Project(item.MI.Pos)
	return true
}

func oppositeDirection(d uint8) uint8 { return (d + 2) & 0x03 }

func headOn(a, b *vischar.Vischar) bool {
	return a.DirectionCrawl&0x03 == oppositeDirection(b.DirectionCrawl&0x03)
}

// stall halts an actor for stallTicks and turns it to face the opposite
// direction, leaving the crawl bit untouched (spec.md §4.7). It also arms
// e.ForcedInput so the actor's next behaviour step carries the matching
// direction bits plus the kick bit, making its next anim.Step pick a fresh
// animation for the new facing immediately rather than waiting out however
// many frames remain of the one it was mid-step on (spec.md §8 scenario 6).
func stall(e *Engine, slot int, v *vischar.Vischar) {
	v.SetCounter(stallTicks)
	dir := oppositeDirection(v.DirectionCrawl & 0x03)
	crawl := v.DirectionCrawl &^ 0x03
	v.DirectionCrawl = crawl | dir
	e.ForcedInput[slot] = directionInput(dir) | machine.InputKick
}

// directionInput maps a facing direction to the input state that walks
// the same way (spec.md §8 scenario 6: an actor turned to face TOP_LEFT
// is armed with the LEFT+UP input, and so on around the compass).
func directionInput(dir uint8) uint8 {
	switch assets.Direction(dir) {
	case assets.DirTopLeft:
		return machine.InputLeftUp
	case assets.DirTopRight:
		return machine.InputRightUp
	case assets.DirBottomRight:
		return machine.InputRightDown
	default:
		return machine.InputLeftDown
	}
}

// doorHandling is called for the steered hero outdoors: it scans the
// first 16 door pairs for a matching, nearby side (spec.md §4.8).
// Outdoor door sides are stored at a quarter of the live scale, so the
// hero's candidate position scales down before the proximity test.
func doorHandling(e *Engine, heroPos coords.Pos16) *Transition {
	hero := &e.Table.Slots[vischar.HeroSlot]
	p := coords.Pos8{U: uint8(heroPos.U / 4), V: uint8(heroPos.V / 4), W: uint8(heroPos.W / 4)}

	limit := 16 * 2 // 16 pairs, two sides each
	if limit > len(assets.DoorTable) {
		limit = len(assets.DoorTable)
	}
	for i := 0; i < limit; i++ {
		d := assets.DoorTable[i]
		if d.Direction != assets.Direction(hero.DirectionCrawl&0x03) {
			continue
		}
		if !near(p, d.Pos, doorProximityThreshold) {
			continue
		}
		return enterDoor(e, i)
	}
	return nil
}

// doorHandlingInterior mirrors doorHandling against a room's live
// interior-door list (spec.md §4.8).
func doorHandlingInterior(e *Engine, heroPos coords.Pos16) *Transition {
	hero := &e.Table.Slots[vischar.HeroSlot]
	p := heroPos.Narrow()

	for _, id := range assets.InteriorDoorsForRoom(e.CurrentRoom) {
		d := assets.DoorByIndex(id.DoorIndex)
		wantDir := d.Direction
		if id.Reverse {
			wantDir = assets.Direction(oppositeDirection(uint8(wantDir)))
		}
		if wantDir != assets.Direction(hero.DirectionCrawl&0x03) {
			continue
		}
		if !near(p, d.Pos, doorProximityThreshold) {
			continue
		}
		return enterDoor(e, id.DoorIndex)
	}
	return nil
}

func near(a, b coords.Pos8, threshold int16) bool {
	return abs16(int16(a.U)-int16(b.U)) <= threshold && abs16(int16(a.V)-int16(b.V)) <= threshold
}

// enterDoor checks the lock state of doorIdx's pair and either queues a
// "door is locked" message or arms a room-transition (spec.md §4.8).
func enterDoor(e *Engine, doorIdx int) *Transition {
	for _, ld := range e.LockedDoors {
		if (ld.DoorIndex == doorIdx || ld.DoorIndex == assets.PeerIndex(doorIdx)) && ld.Locked {
			if e.QueueMessage != nil {
				e.QueueMessage(assets.MsgDoorLocked)
			}
			return nil
		}
	}

	peer := assets.DoorByIndex(assets.PeerIndex(doorIdx))
	hero := &e.Table.Slots[vischar.HeroSlot]
	hero.Room = peer.Room
	pos := peer.Pos
	if peer.Room == assets.Outdoors {
		// Outdoor door sides are stored at a quarter of the live scale;
		// the transition target is map-scale.
		pos = coords.Pos8{U: pos.U / 2, V: pos.V / 2, W: pos.W / 2}
	}
	return &Transition{Room: peer.Room, Pos: pos}
}

// NearestDoor scans the engine's live locked_doors for the entry nearest
// pos, used by the lockpick and key actions (spec.md §4.8). The outdoor
// search considers entries 0..4, the indoor search entries 2..8. The
// returned index addresses e.LockedDoors, so the caller can flip the
// live lock state.
func (e *Engine) NearestDoor(pos coords.Pos8, outdoors bool) (lockedIdx int, ok bool) {
	lo, hi := 2, 9
	if outdoors {
		lo, hi = 0, 5
	}
	if hi > len(e.LockedDoors) {
		hi = len(e.LockedDoors)
	}

	best := -1
	var bestDist int32 = 1 << 30
	for i := lo; i < hi; i++ {
		d := assets.DoorByIndex(e.LockedDoors[i].DoorIndex)
		du := int32(int16(d.Pos.U) - int16(pos.U))
		dv := int32(int16(d.Pos.V) - int16(pos.V))
		dist := du*du + dv*dv
		if dist < bestDist {
			bestDist = dist
			best = i
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}
