package assets

import (
	"fmt"

	"github.com/dpt-reimpl/greatescape/coords"
)

// ItemID identifies one of the 16 item-struct entries (spec.md §4.9).
type ItemID uint8

const (
	ItemWireSnips ItemID = iota
	ItemShovel
	ItemLockPick
	ItemPapers
	ItemTorch
	ItemFood
	ItemPoisonedFood
	ItemPurse
	ItemUniform
	ItemBribe
	ItemUniform2
	ItemRadio
	ItemTunnel
	ItemFlag
	ItemKey
	ItemCompass
)

// NumItems is the fixed item-struct table size.
const NumItems = 16

// NoRoom is the item-and-room sentinel meaning "in the hero's inventory".
const NoRoom uint8 = 63

// ItemDefault is one item's default (room, pos) pair plus whether it
// starts poisoned (only ItemPoisonedFood).
type ItemDefault struct {
	ID       ItemID
	Room     uint8
	Pos      coords.Pos8
	Poisoned bool
}

// ItemDefaults is the fixed table item_discovered resets an item to
// (spec.md §4.9).
var ItemDefaults = [NumItems]ItemDefault{
	{ID: ItemWireSnips, Room: Outdoors, Pos: coords.Pos8{U: 30, V: 30, W: 0}},
	{ID: ItemShovel, Room: Outdoors, Pos: coords.Pos8{U: 34, V: 30, W: 0}},
	{ID: ItemLockPick, Room: 10, Pos: coords.Pos8{U: 56, V: 32, W: 0}},
	{ID: ItemPapers, Room: 11, Pos: coords.Pos8{U: 50, V: 30, W: 0}},
	{ID: ItemTorch, Room: 14, Pos: coords.Pos8{U: 40, V: 40, W: 0}},
	{ID: ItemFood, Room: 19, Pos: coords.Pos8{U: 40, V: 40, W: 0}},
	{ID: ItemPoisonedFood, Room: Outdoors, Pos: coords.Pos8{U: 52, V: 50, W: 0}, Poisoned: true},
	{ID: ItemPurse, Room: Outdoors, Pos: coords.Pos8{U: 44, V: 36, W: 0}},
	{ID: ItemUniform, Room: 15, Pos: coords.Pos8{U: 40, V: 36, W: 0}},
	{ID: ItemBribe, Room: 22, Pos: coords.Pos8{U: 44, V: 40, W: 0}},
	{ID: ItemUniform2, Room: 15, Pos: coords.Pos8{U: 44, V: 48, W: 0}},
	{ID: ItemRadio, Room: 18, Pos: coords.Pos8{U: 60, V: 30, W: 0}},
	{ID: ItemTunnel, Room: Outdoors, Pos: coords.Pos8{U: 64, V: 62, W: 0}},
	{ID: ItemFlag, Room: Outdoors, Pos: coords.Pos8{U: 70, V: 40, W: 0}},
	{ID: ItemKey, Room: 9, Pos: coords.Pos8{U: 40, V: 36, W: 0}},
	{ID: ItemCompass, Room: 11, Pos: coords.Pos8{U: 50, V: 50, W: 0}},
}

// ItemDefaultByID looks up a default entry, panicking on an out-of-range
// id.
func ItemDefaultByID(id ItemID) ItemDefault {
	if int(id) >= NumItems {
		panic(fmt.Sprintf("assets: item id %d out of range", id))
	}
	return ItemDefaults[id]
}

// EscapeMask bits name the four items the escape evaluator branches on
// (spec.md §4.1). Bit positions match the original item-and-flags low
// nibble ordering closely enough to be stable within this repo.
type EscapeMask uint8

const (
	EscapeHasCompass EscapeMask = 1 << iota
	EscapeHasPapers
	EscapeHasPurse
	EscapeHasUniform
)

// EscapeVerdict is the outcome of crossing the map boundary (spec.md
// §4.1).
type EscapeVerdict uint8

const (
	EscapeWon EscapeVerdict = iota
	EscapeShot
	EscapeLost
	EscapeUnprepared
)

// Evaluate implements the branch table from spec.md §4.1. The winning
// combinations match exactly — carrying the uniform alongside an
// otherwise-winning pair still gets the hero shot, as in the original:
//
//	{compass, papers} exactly    -> won
//	{compass, purse} exactly     -> won
//	any other mask with uniform  -> shot
//	nothing at all               -> unprepared
//	anything else                -> lost
func (m EscapeMask) Evaluate() EscapeVerdict {
	switch {
	case m == EscapeHasCompass|EscapeHasPapers, m == EscapeHasCompass|EscapeHasPurse:
		return EscapeWon
	case m&EscapeHasUniform != 0:
		return EscapeShot
	case m == 0:
		return EscapeUnprepared
	default:
		return EscapeLost
	}
}

// EscapeMessages is the on-screen string sequence for each verdict
// (spec.md §4.1 scenario 5).
var EscapeMessages = map[EscapeVerdict][]string{
	EscapeWon: {
		"WELL DONE",
		"YOU HAVE ESCAPED",
		"FROM THE CAMP",
		"AND WILL CROSS THE",
		"BORDER SUCCESSFULLY",
	},
	EscapeShot:       {"YOU HAVE BEEN SHOT", "BY A GUARD"},
	EscapeLost:       {"YOU HAVE BEEN CAUGHT", "WANDERING THE", "COUNTRYSIDE", "WITHOUT PAPERS"},
	EscapeUnprepared: {"YOU WERE NOT", "PREPARED FOR", "YOUR ESCAPE"},
}
