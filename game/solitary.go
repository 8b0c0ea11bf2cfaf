package game

import (
	"github.com/dpt-reimpl/greatescape/assets"
	"github.com/dpt-reimpl/greatescape/item"
)

// solitaryMoraleDelta is the fixed morale penalty for being caught
// without the uniform (spec.md §4.1, §8 invariant 7).
const solitaryMoraleDelta = -35

// Solitary implements spec.md §4.1's solitary: drops and discovers the
// hero's held items, sweeps every outdoor item inside the camp bounds
// into discovery, teleports the hero to the fixed cell, scripts the
// commandant's release route, and queues the sentencing messages.
func Solitary(s *State) {
	for slot, idx := range s.Items.Inventory {
		if idx < 0 {
			continue
		}
		item.ItemDiscovered(s.ItemEngine, idx)
		s.Items.Inventory[slot] = -1
	}

	item.DiscoverOutdoorInBounds(s.ItemEngine, assets.InCampBounds)

	s.InSolitary = true
	enterRoom(s, assets.CellRoom, assets.HeroCellPosition)

	commandant := findVischarSlot(s, assets.Commandant)
	if commandant >= 0 {
		v := &s.VC.Slots[commandant]
		v.Route = assets.Route{Index: 3, Reverse: false}
		v.SetKind(0)
	} else {
		s.Characters[assets.Commandant].Route = assets.Route{Index: 3, Reverse: false}
	}

	s.AdjustMorale(solitaryMoraleDelta)

	s.Messages.Enqueue(assets.MsgSentToSolitary1)
	s.Messages.Enqueue(assets.MsgSentToSolitary2)
	s.Messages.Enqueue(assets.MsgItemDiscovered)
}

// findVischarSlot returns the slot currently holding character id, or -1.
func findVischarSlot(s *State, id assets.CharacterID) int {
	for i := range s.VC.Slots {
		v := &s.VC.Slots[i]
		if !v.Empty && v.Character == id {
			return i
		}
	}
	return -1
}
