package item

import (
	"testing"

	"github.com/dpt-reimpl/greatescape/assets"
	"github.com/dpt-reimpl/greatescape/coords"
	"github.com/dpt-reimpl/greatescape/vischar"
)

func TestNewTableStartsWithEmptyInventory(t *testing.T) {
	tbl := NewTable()
	for i, idx := range tbl.Inventory {
		if idx != -1 {
			t.Errorf("slot %d should start empty, got %d", i, idx)
		}
	}
}

func TestPickUpItemIndoorsWithinRange(t *testing.T) {
	tbl := NewTable()
	e := NewEngine(tbl)
	var clicked, redrawn bool
	e.PlayClick = func() { clicked = true }
	e.RedrawInventory = func() { redrawn = true }
	var moraleBonus, scoreBonus int
	e.AwardFirstPickup = func(m, s int) { moraleBonus, scoreBonus = m, s }

	hero := tbl.Items[assets.ItemLockPick].Pos // same room as lock pick default
	id, ok := PickUpItem(e, assets.ItemDefaults[assets.ItemLockPick].Room, hero, false)
	if !ok || id != assets.ItemLockPick {
		t.Fatalf("expected to pick up the lock pick, got id=%v ok=%v", id, ok)
	}
	if !clicked || !redrawn {
		t.Errorf("pickup should play a click and redraw the inventory")
	}
	if moraleBonus != 5 || scoreBonus != 5 {
		t.Errorf("first pickup should award +5 morale and +5 score, got %d/%d", moraleBonus, scoreBonus)
	}
	if tbl.Inventory[0] != int(assets.ItemLockPick) {
		t.Errorf("picked-up item should occupy inventory slot 0, got %d", tbl.Inventory[0])
	}
	if tbl.Items[assets.ItemLockPick].Room != assets.NoRoom {
		t.Errorf("held item's room should become NoRoom")
	}
}

func TestPickUpItemSecondTimeSkipsBonus(t *testing.T) {
	tbl := NewTable()
	e := NewEngine(tbl)
	calls := 0
	e.AwardFirstPickup = func(int, int) { calls++ }

	hero := assets.ItemDefaults[assets.ItemLockPick].Pos
	room := assets.ItemDefaults[assets.ItemLockPick].Room
	PickUpItem(e, room, hero, false)
	DropItem(e, 0, room, hero.ToPos16(), false)
	PickUpItem(e, room, hero, false)

	if calls != 1 {
		t.Errorf("the pickup bonus should only be awarded once per item, got %d calls", calls)
	}
}

func TestPickUpItemOutOfRangeFails(t *testing.T) {
	tbl := NewTable()
	e := NewEngine(tbl)
	room := assets.ItemDefaults[assets.ItemLockPick].Room
	far := coords.Pos8{U: 250, V: 250, W: 0}

	if _, ok := PickUpItem(e, room, far, false); ok {
		t.Errorf("an item far from the hero should not be picked up")
	}
}

func TestPickUpItemFailsWhenInventoryFull(t *testing.T) {
	tbl := NewTable()
	tbl.Inventory[0] = 0
	tbl.Inventory[1] = 1
	e := NewEngine(tbl)
	room := assets.ItemDefaults[assets.ItemLockPick].Room
	hero := assets.ItemDefaults[assets.ItemLockPick].Pos

	if _, ok := PickUpItem(e, room, hero, false); ok {
		t.Errorf("a full inventory should refuse the pickup")
	}
}

func TestDropItemOutdoorsHalvesCoordinates(t *testing.T) {
	tbl := NewTable()
	e := NewEngine(tbl)
	tbl.Inventory[0] = int(assets.ItemTorch)
	tbl.Items[assets.ItemTorch].Held = true
	tbl.Items[assets.ItemTorch].Room = assets.NoRoom

	hero := coords.Pos16{U: 40, V: 60, W: 8}
	if !DropItem(e, 0, assets.Outdoors, hero, true) {
		t.Fatalf("drop should succeed")
	}
	got := tbl.Items[assets.ItemTorch].Pos
	want := coords.Pos8{U: 20, V: 30, W: 4}
	if got != want {
		t.Errorf("outdoor drop should halve the hero's position: got %+v, want %+v", got, want)
	}
	if tbl.Inventory[0] != -1 {
		t.Errorf("inventory slot should be freed after a drop")
	}
}

func TestDropItemIndoorsCopiesPosition(t *testing.T) {
	tbl := NewTable()
	e := NewEngine(tbl)
	tbl.Inventory[1] = int(assets.ItemTorch)
	tbl.Items[assets.ItemTorch].Held = true

	hero := coords.Pos8{U: 10, V: 12, W: 0}
	DropItem(e, 1, 1, hero.ToPos16(), false)
	if tbl.Items[assets.ItemTorch].Pos != hero {
		t.Errorf("indoor drop should copy the hero's position verbatim")
	}
}

func TestMarkNearbyItemsRespectsRoomAndCameraMargin(t *testing.T) {
	tbl := NewTable()
	tbl.Items[0].Room = 5
	tbl.Items[0].IsoPos = coords.IsoPos{X: 100, Y: 100}
	tbl.Items[1].Room = 5
	tbl.Items[1].IsoPos = coords.IsoPos{X: 1000, Y: 1000}
	tbl.Items[2].Room = 6
	tbl.Items[2].IsoPos = coords.IsoPos{X: 100, Y: 100}

	camera := vischar.CameraWindow{X0: 90, X1: 110, Y0: 90, Y1: 110}
	MarkNearbyItems(tbl, 5, camera)

	if !tbl.Items[0].Nearby6 || !tbl.Items[0].Nearby7 {
		t.Errorf("item in-room and in-camera should be marked nearby")
	}
	if tbl.Items[1].Nearby6 {
		t.Errorf("item far outside the camera window should not be marked nearby")
	}
	if tbl.Items[2].Nearby6 {
		t.Errorf("item in a different room should not be marked nearby, regardless of position")
	}
}

func TestItemDiscoveredResetsAndPenalisesMorale(t *testing.T) {
	tbl := NewTable()
	e := NewEngine(tbl)
	tbl.Items[3].Held = true
	tbl.Items[3].Room = assets.NoRoom
	tbl.Inventory[0] = 3
	var penalty int
	e.AdjustMorale = func(d int) { penalty = d }
	var msg string
	e.QueueMessage = func(m string) { msg = m }

	ItemDiscovered(e, 3)

	if tbl.Items[3].Held {
		t.Errorf("discovered item should no longer be held")
	}
	if tbl.Items[3].Room != assets.ItemDefaults[3].Room {
		t.Errorf("discovered item should reset to its default room")
	}
	if tbl.Inventory[0] != -1 {
		t.Errorf("discovering a held item should free its inventory slot")
	}
	if penalty != -5 {
		t.Errorf("discovery should penalise morale by 5, got %d", penalty)
	}
	if msg == "" {
		t.Errorf("discovery should queue a message")
	}
}

func TestNearestFoodFindsUnpoisonedFoodFirst(t *testing.T) {
	tbl := NewTable()
	for i := range tbl.Items {
		tbl.Items[i].Nearby7 = false
	}
	tbl.Items[assets.ItemFood].Nearby7 = true
	tbl.Items[assets.ItemFood].Pos = coords.Pos8{U: 5, V: 6, W: 0}

	pos, poisoned, found := NearestFood(tbl)
	if !found || poisoned {
		t.Fatalf("expected to find the unpoisoned nearby food, got found=%v poisoned=%v", found, poisoned)
	}
	if pos != (coords.Pos8{U: 5, V: 6, W: 0}) {
		t.Errorf("unexpected food position %+v", pos)
	}
}
