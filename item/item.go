// Package item implements the 16-entry item-struct table, the two-slot
// inventory, and item discovery (spec.md §4.9).
package item

import (
	"github.com/dpt-reimpl/greatescape/assets"
	"github.com/dpt-reimpl/greatescape/coords"
	"github.com/dpt-reimpl/greatescape/vischar"
)

// pickUpRangeOutdoors and pickUpRangeIndoors are the "in-range" distance
// thresholds pick_up_item tests against (spec.md §4.9).
const (
	pickUpRangeOutdoors = 1
	pickUpRangeIndoors  = 6
)

// InventorySlots is the hero's fixed two-slot inventory (spec.md §3).
const InventorySlots = 2

// Item is one of the 16 fixed item-struct entries.
type Item struct {
	ID       assets.ItemID
	Held     bool
	Poisoned bool
	Room     uint8 // assets.NoRoom: in the hero's inventory
	Nearby6  bool
	Nearby7  bool
	Pos      coords.Pos8
	IsoPos   coords.IsoPos
}

// Table is the live item-struct table plus the inventory slot index
// (-1 for an empty slot) and the one-time pickup-bonus tracker.
type Table struct {
	Items         [assets.NumItems]Item
	Inventory     [InventorySlots]int
	everPickedUp  [assets.NumItems]bool
}

// NewTable resets every item to its default location and an empty
// inventory.
func NewTable() *Table {
	var t Table
	for i := range t.Inventory {
		t.Inventory[i] = -1
	}
	resetAll(&t)
	return &t
}

func resetAll(t *Table) {
	for i := range t.Items {
		d := assets.ItemDefaults[i]
		t.Items[i] = Item{
			ID:       d.ID,
			Poisoned: d.Poisoned,
			Room:     d.Room,
			Pos:      d.Pos,
			IsoPos:   isoFor(d.Pos, d.Room == assets.Outdoors),
		}
	}
}

// isoFor projects an item's resting position into the same iso space the
// vischars and the camera window live in. Outdoor item positions are
// stored at half the live actor scale (spec.md §4.9's drop_item divides
// by two), so they double back up before projecting; indoor positions
// project as-is.
func isoFor(pos coords.Pos8, outdoors bool) coords.IsoPos {
	live := pos.ToPos16()
	if outdoors {
		live.U *= 2
		live.V *= 2
		live.W *= 2
	}
	return coords.Project(live)
}

func (t *Table) freeInventorySlot() int {
	for i, idx := range t.Inventory {
		if idx == -1 {
			return i
		}
	}
	return -1
}

func distance(a, b coords.Pos8) int {
	du := int(a.U) - int(b.U)
	if du < 0 {
		du = -du
	}
	dv := int(a.V) - int(b.V)
	if dv < 0 {
		dv = -dv
	}
	if du > dv {
		return du
	}
	return dv
}

// Engine bundles the callbacks pick_up_item/drop_item/item_discovered
// trigger, so this package doesn't need to know about morale, score, or
// sound (spec.md §4.9).
type Engine struct {
	Table *Table

	PlayClick        func()
	RedrawInventory  func()
	AwardFirstPickup func(moraleDelta, scoreDelta int)
	QueueMessage     func(string)
	AdjustMorale     func(delta int)
}

// NewEngine returns an Engine over t with every hook left for the caller
// to wire.
func NewEngine(t *Table) *Engine { return &Engine{Table: t} }

// PickUpItem implements spec.md §4.9's pick_up_item: it finds the
// lowest-indexed in-range, not-yet-held item in the current room and
// moves it into the first empty inventory slot.
func PickUpItem(e *Engine, currentRoom uint8, heroPos coords.Pos8, outdoors bool) (assets.ItemID, bool) {
	slot := e.Table.freeInventorySlot()
	if slot == -1 {
		return 0, false
	}

	threshold := pickUpRangeIndoors
	if outdoors {
		threshold = pickUpRangeOutdoors
	}

	for i := range e.Table.Items {
		it := &e.Table.Items[i]
		if it.Held || it.Room != currentRoom {
			continue
		}
		if distance(it.Pos, heroPos) >= threshold {
			continue
		}

		it.Held = true
		it.Room = assets.NoRoom
		e.Table.Inventory[slot] = i

		if !e.Table.everPickedUp[i] {
			e.Table.everPickedUp[i] = true
			if e.AwardFirstPickup != nil {
				e.AwardFirstPickup(5, 5)
			}
		}
		if e.PlayClick != nil {
			e.PlayClick()
		}
		if e.RedrawInventory != nil {
			e.RedrawInventory()
		}
		return it.ID, true
	}
	return 0, false
}

// DropItem implements spec.md §4.9's drop_item: it puts the item held in
// inventorySlot back into the world at the hero's live position, halving
// the coordinates outdoors (items rest at half the outdoor actor scale)
// and copying them as-is indoors.
func DropItem(e *Engine, inventorySlot int, currentRoom uint8, heroPos coords.Pos16, outdoors bool) bool {
	if inventorySlot < 0 || inventorySlot >= InventorySlots {
		return false
	}
	idx := e.Table.Inventory[inventorySlot]
	if idx == -1 {
		return false
	}

	it := &e.Table.Items[idx]
	it.Held = false
	it.Room = currentRoom
	if outdoors {
		it.Pos = coords.Pos8{U: uint8(heroPos.U / 2), V: uint8(heroPos.V / 2), W: uint8(heroPos.W / 2)}
	} else {
		it.Pos = heroPos.Narrow()
	}
	it.IsoPos = isoFor(it.Pos, outdoors)

	e.Table.Inventory[inventorySlot] = -1
	if e.RedrawInventory != nil {
		e.RedrawInventory()
	}
	return true
}

// MarkNearbyItems implements spec.md §4.9's mark_nearby_items: every item
// in the current room whose projected position falls within the camera
// window plus a one-cell margin gets Nearby6 and Nearby7 set; everything
// else is cleared.
func MarkNearbyItems(t *Table, currentRoom uint8, camera vischar.CameraWindow) {
	const marginCells = 1
	d := int16(marginCells * 8)
	w := vischar.CameraWindow{X0: camera.X0 - d, X1: camera.X1 + d, Y0: camera.Y0 - d, Y1: camera.Y1 + d}

	for i := range t.Items {
		it := &t.Items[i]
		near := it.Room == currentRoom &&
			it.IsoPos.X >= w.X0 && it.IsoPos.X < w.X1 &&
			it.IsoPos.Y >= w.Y0 && it.IsoPos.Y < w.Y1
		it.Nearby6 = near
		it.Nearby7 = near
	}
}

// ItemDiscovered implements spec.md §4.9's item_discovered: resets idx to
// its default location and pose, clears held, and signals the discovery
// warning.
func ItemDiscovered(e *Engine, idx int) {
	if idx < 0 || idx >= len(e.Table.Items) {
		return
	}
	for slot, held := range e.Table.Inventory {
		if held == idx {
			e.Table.Inventory[slot] = -1
		}
	}

	ResetToDefault(e.Table, idx)

	if e.QueueMessage != nil {
		e.QueueMessage(assets.MsgItemDiscovered)
	}
	if e.AdjustMorale != nil {
		e.AdjustMorale(-5)
	}
}

// ResetToDefault restores one item to its static default row, including
// its projected position. Discovery and the spent-bribe path both land
// here.
func ResetToDefault(t *Table, idx int) {
	d := assets.ItemDefaults[idx]
	t.Items[idx] = Item{
		ID:       d.ID,
		Poisoned: d.Poisoned,
		Room:     d.Room,
		Pos:      d.Pos,
		IsoPos:   isoFor(d.Pos, d.Room == assets.Outdoors),
	}
}

// DiscoverOutdoorInBounds discovers every unheld item currently resting
// outdoors within any of the caller-supplied bounds, implementing
// solitary's "auto-discover everything in the yard" sweep (spec.md §4.1).
func DiscoverOutdoorInBounds(e *Engine, inBounds func(u, v uint8) bool) {
	for i := range e.Table.Items {
		it := &e.Table.Items[i]
		if it.Held || it.Room != assets.Outdoors {
			continue
		}
		if inBounds(it.Pos.U, it.Pos.V) {
			ItemDiscovered(e, i)
		}
	}
}

// NearestFood reports the first (lowest-indexed) nearby (Nearby7) unheld
// food item; distance is not compared. It is used
// by the DOG_FOOD pursuit mode (spec.md §4.7) via behaviour.FoodFinder.
func NearestFood(t *Table) (pos coords.Pos8, poisoned bool, found bool) {
	for i := range t.Items {
		it := &t.Items[i]
		if it.Held || !it.Nearby7 {
			continue
		}
		if it.ID != assets.ItemFood && it.ID != assets.ItemPoisonedFood {
			continue
		}
		return it.Pos, it.ID == assets.ItemPoisonedFood, true
	}
	return coords.Pos8{}, false, false
}
