// Player actions: the fire-key handlers that pick up, drop, and use
// items (spec.md §4.9's pick_up_item/drop_item plus §4.8's key and
// lockpick actions and §8 scenario 4's action_papers).
package game

import (
	"github.com/dpt-reimpl/greatescape/assets"
	"github.com/dpt-reimpl/greatescape/behaviour"
	"github.com/dpt-reimpl/greatescape/coords"
	"github.com/dpt-reimpl/greatescape/item"
	"github.com/dpt-reimpl/greatescape/vischar"
)

// Reward constants for a successful papers use at the main gate
// (spec.md §8 scenario 4).
const (
	papersMoraleBonus = 10
	papersScoreBonus  = 50
)

// wireCutTicks is how long the hero stays in the cutting-wire state
// after using the wire snips, during which bounds checks are skipped
// (spec.md §4.7 touch step 3).
const wireCutTicks = 32

// doorActionThreshold bounds how far, in door-scale units, the hero can
// stand from a locked door and still work a key or lockpick on it.
const doorActionThreshold = 3

// heroItemPos is the hero's position in item space: outdoor items rest
// at half the live actor scale, indoor items at the room scale.
func heroItemPos(s *State) coords.Pos8 {
	live := s.heroVischar().MI.Pos
	if s.Outdoors {
		return coords.Pos8{U: uint8(live.U / 2), V: uint8(live.V / 2), W: uint8(live.W / 2)}
	}
	return live.Narrow()
}

// heroDoorPos is the hero's position in door space (a quarter of the
// live scale outdoors, the room scale indoors), for key/lockpick
// proximity tests.
func heroDoorPos(s *State) coords.Pos8 {
	live := s.heroVischar().MI.Pos
	if s.Outdoors {
		return coords.Pos8{U: uint8(live.U / 4), V: uint8(live.V / 4), W: uint8(live.W / 4)}
	}
	return live.Narrow()
}

// HandleFire runs the fire-key action for this tick: pick up an in-range
// item if one exists and a slot is free, otherwise use the first held
// item.
func HandleFire(s *State) {
	if _, ok := item.PickUpItem(s.ItemEngine, s.CurrentRoom, heroItemPos(s), s.Outdoors); ok {
		s.Messages.Enqueue(assets.MsgPickedUpItem)
		return
	}
	for slot, idx := range s.Items.Inventory {
		if idx >= 0 {
			UseItem(s, slot)
			return
		}
	}
}

// UseItem dispatches on the held item's identity (spec.md §4.9; the use
// handlers themselves come from §4.1/§4.8). Items with no use handler
// are dropped in place instead.
func UseItem(s *State, inventorySlot int) {
	if inventorySlot < 0 || inventorySlot >= item.InventorySlots {
		return
	}
	idx := s.Items.Inventory[inventorySlot]
	if idx < 0 {
		return
	}

	switch s.Items.Items[idx].ID {
	case assets.ItemPapers:
		ActionPapers(s)
	case assets.ItemKey:
		ActionKey(s)
	case assets.ItemLockPick:
		ActionLockpick(s)
	case assets.ItemBribe:
		ActionBribe(s, inventorySlot)
	case assets.ItemWireSnips:
		ActionWireSnips(s)
	default:
		DropHeldItem(s, inventorySlot)
	}
}

// DropHeldItem puts the held slot's item back into the world at the
// hero's feet (spec.md §4.9's drop_item).
func DropHeldItem(s *State, inventorySlot int) {
	live := s.heroVischar().MI.Pos
	if item.DropItem(s.ItemEngine, inventorySlot, s.CurrentRoom, live, s.Outdoors) {
		s.Messages.Enqueue(assets.MsgDroppedItem)
	}
}

// ActionPapers shows the hero's papers at the main gate: standing by the
// outer gate door walks the hero straight through to the far side
// (spec.md §8 scenario 4). Whether the hero wears the uniform is not
// checked. Away from the gate the papers do nothing.
func ActionPapers(s *State) {
	if !s.Outdoors {
		return
	}
	gate := assets.DoorByIndex(0)
	pos := heroDoorPos(s)
	if !within3(pos, gate.Pos) {
		return
	}

	peer := assets.DoorByIndex(assets.PeerIndex(0))
	s.AdjustMorale(papersMoraleBonus)
	s.Score += papersScoreBonus
	enterRoom(s, peer.Room, doorScaleToMap(peer.Pos))
}

// ActionKey unlocks the nearest locked door if the hero is standing at
// it; anywhere else the key doesn't fit (spec.md §7's "INCORRECT KEY").
func ActionKey(s *State) {
	unlockNearestDoor(s, assets.MsgIncorrectKey)
}

// ActionLockpick works like the key: the same nearest-door search over
// the outdoor or indoor lock range, whichever the hero is in. Only the
// failure message differs.
func ActionLockpick(s *State) {
	unlockNearestDoor(s, assets.MsgDoorLocked)
}

func unlockNearestDoor(s *State, failMsg string) {
	e := s.BehaviourEngine
	pos := heroDoorPos(s)
	lockedIdx, ok := e.NearestDoor(pos, s.Outdoors)
	if !ok {
		s.Messages.Enqueue(failMsg)
		return
	}
	ld := &e.LockedDoors[lockedIdx]
	d := assets.DoorByIndex(ld.DoorIndex)
	if !within3(pos, d.Pos) {
		s.Messages.Enqueue(failMsg)
		return
	}
	ld.Locked = false
}

// ActionBribe hands the bribe to the nearest visible hostile: that
// character will call off a pursuit on reaching the hero, while every
// other hostile that saw the exchange turns onto the bribed character
// instead (spec.md §4.7 modes 1 and 4). The bribe itself is spent.
func ActionBribe(s *State, inventorySlot int) {
	bribed := nearestHostileSlot(s)
	if bribed < 0 {
		return
	}
	behaviour.SawBribe(s.BehaviourEngine, bribed)

	idx := s.Items.Inventory[inventorySlot]
	s.Items.Inventory[inventorySlot] = -1
	item.ResetToDefault(s.Items, idx)
}

// ActionWireSnips starts the hero cutting the wire: for the next
// wireCutTicks the contact test skips its bounds check so the hero can
// crawl through the fence line (spec.md §4.7 touch step 3).
func ActionWireSnips(s *State) {
	if !s.Outdoors {
		return
	}
	s.heroVischar().SetKind(vischar.PursuitCuttingWire)
	s.WireCutTicks = wireCutTicks
}

func nearestHostileSlot(s *State) int {
	hero := s.heroVischar().MI.Pos
	best, bestDist := -1, int32(1<<30)
	for i := 1; i < vischar.NumSlots; i++ {
		v := &s.VC.Slots[i]
		if v.Empty || assets.IsMovableItem(v.Character) {
			continue
		}
		if !assets.IsHostile(assets.ClassOf(v.Character)) {
			continue
		}
		du := int32(v.MI.Pos.U - hero.U)
		dv := int32(v.MI.Pos.V - hero.V)
		dist := du*du + dv*dv
		if dist < bestDist {
			bestDist = dist
			best = i
		}
	}
	return best
}

func within3(a, b coords.Pos8) bool {
	return absDiff(a.U, b.U) <= doorActionThreshold && absDiff(a.V, b.V) <= doorActionThreshold
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}

// doorScaleToMap converts an outdoor door-side position (stored at a
// quarter of the live scale) to the map scale enterRoom expects; indoor
// door positions already are room-scale.
func doorScaleToMap(p coords.Pos8) coords.Pos8 {
	return coords.Pos8{U: p.U / 2, V: p.V / 2, W: p.W / 2}
}
