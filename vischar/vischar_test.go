package vischar

import (
	"testing"

	"github.com/dpt-reimpl/greatescape/assets"
	"github.com/dpt-reimpl/greatescape/coords"
)

func TestNewTableHeroSlotZero(t *testing.T) {
	tbl := NewTable()
	if tbl.Slots[HeroSlot].Empty {
		t.Fatalf("hero slot should never be empty")
	}
	if tbl.Slots[HeroSlot].Character != assets.Hero {
		t.Errorf("slot 0 character = %v, want Hero", tbl.Slots[HeroSlot].Character)
	}
	for i := 1; i < NumSlots; i++ {
		if !tbl.Slots[i].Empty {
			t.Errorf("slot %d should start empty", i)
		}
	}
}

func TestSpawnCharacterFillsFirstFreeSlot(t *testing.T) {
	tbl := NewTable()
	cs := assets.CharacterByID(assets.GuardFirst)
	slot, ok := SpawnCharacter(tbl, &cs, true, func(coords.Pos16) bool { return true })
	if !ok || slot != 1 {
		t.Fatalf("SpawnCharacter = (%d, %v), want (1, true)", slot, ok)
	}
	if !cs.OnScreen {
		t.Errorf("SpawnCharacter should mark the character struct on-screen")
	}
	if tbl.Slots[1].Empty {
		t.Errorf("filled slot should not be empty")
	}
}

func TestSpawnCharacterRejectsWhenAlreadyOnScreen(t *testing.T) {
	tbl := NewTable()
	cs := assets.CharacterByID(assets.GuardFirst)
	cs.OnScreen = true
	_, ok := SpawnCharacter(tbl, &cs, true, func(coords.Pos16) bool { return true })
	if ok {
		t.Errorf("SpawnCharacter should reject an already on-screen character")
	}
}

func TestSpawnCharacterRejectsOnValidatorFailure(t *testing.T) {
	tbl := NewTable()
	cs := assets.CharacterByID(assets.GuardFirst)
	_, ok := SpawnCharacter(tbl, &cs, true, func(coords.Pos16) bool { return false })
	if ok {
		t.Errorf("SpawnCharacter should reject when validator fails")
	}
	if cs.OnScreen {
		t.Errorf("rejected spawn should not mark character on-screen")
	}
}

func TestSpawnCharacterNoFreeSlots(t *testing.T) {
	tbl := NewTable()
	for i := 1; i < NumSlots; i++ {
		tbl.Slots[i].Empty = false
	}
	cs := assets.CharacterByID(assets.GuardFirst)
	_, ok := SpawnCharacter(tbl, &cs, true, nil)
	if ok {
		t.Errorf("SpawnCharacter should reject when the table is full")
	}
}

func TestResetVisibleCharacterSavesMovableItem(t *testing.T) {
	tbl := NewTable()
	tbl.Slots[2] = Vischar{Character: assets.MovableStove, MI: MI{Pos: coords.Pos16{U: 5, V: 6, W: 7}, SpriteIndex: 9}}

	var characters [assets.NumCharacters]assets.CharacterStruct
	movables := assets.MovableItemDefaults

	ResetVisibleCharacter(tbl, 2, &characters, &movables)

	if !tbl.Slots[2].Empty {
		t.Errorf("ResetVisibleCharacter should empty the slot")
	}
	idx := int(assets.MovableStove) - int(assets.MovableStove)
	if movables[idx].Pos != (coords.Pos16{U: 5, V: 6, W: 7}) {
		t.Errorf("ResetVisibleCharacter did not save movable item position: %+v", movables[idx])
	}
}

func TestResetVisibleCharacterSavesRealCharacter(t *testing.T) {
	tbl := NewTable()
	tbl.Slots[3] = Vischar{
		Character: assets.PrisonerFirst,
		Room:      5,
		MI:        MI{Pos: coords.Pos16{U: 10, V: 20, W: 0}},
	}

	characters := assets.CharacterDefaults
	characters[assets.PrisonerFirst].OnScreen = true
	movables := assets.MovableItemDefaults

	ResetVisibleCharacter(tbl, 3, &characters, &movables)

	cs := characters[assets.PrisonerFirst]
	if cs.OnScreen {
		t.Errorf("ResetVisibleCharacter should clear on-screen")
	}
	if cs.Room != 5 {
		t.Errorf("ResetVisibleCharacter should save room, got %d", cs.Room)
	}
	if cs.Pos != (coords.Pos8{U: 10, V: 20, W: 0}) {
		t.Errorf("ResetVisibleCharacter should narrow and save position, got %+v", cs.Pos)
	}
}

func TestResetVisibleCharacterDogGetsWanderRoute(t *testing.T) {
	tbl := NewTable()
	tbl.Slots[4] = Vischar{Character: assets.Dog2}

	characters := assets.CharacterDefaults
	movables := assets.MovableItemDefaults

	ResetVisibleCharacter(tbl, 4, &characters, &movables)

	got := characters[assets.Dog2].Route
	if got.Index != assets.RouteIndexWander || got.Step != 24 {
		t.Errorf("Dog2 reset route = %+v, want wander window at step 24", got)
	}
}

func TestResetVisibleCharacterPanicsOnInvalidSlot(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("ResetVisibleCharacter expected panic for slot 0")
		}
	}()
	tbl := NewTable()
	var characters [assets.NumCharacters]assets.CharacterStruct
	movables := assets.MovableItemDefaults
	ResetVisibleCharacter(tbl, HeroSlot, &characters, &movables)
}

func TestPurgeInvisibleCharactersFreesOutOfRoomSlot(t *testing.T) {
	tbl := NewTable()
	tbl.Slots[1] = Vischar{Character: assets.GuardFirst, Room: 2}

	characters := assets.CharacterDefaults
	characters[assets.GuardFirst].OnScreen = true
	movables := assets.MovableItemDefaults

	camera := CameraWindow{X0: 0, X1: 100, Y0: 0, Y1: 100}
	PurgeInvisibleCharacters(tbl, 3, camera, &characters, &movables)

	if !tbl.Slots[1].Empty {
		t.Errorf("PurgeInvisibleCharacters should free a slot whose room no longer matches")
	}
}

func TestInSpawnAndPurgeWindows(t *testing.T) {
	camera := CameraWindow{X0: 0, X1: 80, Y0: 0, Y1: 80}
	withinGrace := coords.IsoPos{X: -10, Y: 40} // 10px outside camera, within both 8- and 9-cell borders
	if !InSpawnWindow(withinGrace, camera) {
		t.Errorf("a point within the 8-cell spawn grace border should be in the spawn window")
	}
	if !InPurgeWindow(withinGrace, camera) {
		t.Errorf("a point within the 9-cell purge grace border should remain visible")
	}

	farOutside := coords.IsoPos{X: -1000, Y: 40}
	if InSpawnWindow(farOutside, camera) {
		t.Errorf("a point far outside the camera should not be in the spawn window")
	}
	if InPurgeWindow(farOutside, camera) {
		t.Errorf("a point far outside the camera should not be in the purge window")
	}
}
