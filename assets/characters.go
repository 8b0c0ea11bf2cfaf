package assets

import (
	"fmt"

	"github.com/dpt-reimpl/greatescape/coords"
)

// CharacterID identifies one of the 26 persistent character slots.
// Id 0 is always the hero (spec.md §3 invariant).
type CharacterID uint8

const (
	Hero CharacterID = 0

	GuardFirst CharacterID = 1
	GuardLast  CharacterID = 11

	PrisonerFirst CharacterID = 12
	PrisonerLast  CharacterID = 15

	Dog1 CharacterID = 16
	Dog2 CharacterID = 17

	Commandant CharacterID = 20

	HutPrisonerFirst CharacterID = 21
	HutPrisonerLast  CharacterID = 25
)

// NumCharacters is the size of the persistent character-slot table.
const NumCharacters = 26

// Movable item ids occupy the id space directly above the character
// table (spec.md §4.4's reset_visible_character branches on "ids 26..28").
const (
	MovableStove CharacterID = 26
	MovableCrate0 CharacterID = 27
	MovableCrate1 CharacterID = 28
)

// IsMovableItem reports whether id names a pushable stove/crate rather
// than a real character.
func IsMovableItem(id CharacterID) bool {
	return id >= MovableStove && id <= MovableCrate1
}

// CharacterClass selects a vischar's sprite/animation base (spec.md §9
// design notes: "polymorphism over character class").
type CharacterClass uint8

const (
	ClassPrisoner CharacterClass = iota
	ClassGuard
	ClassDog
	ClassCommandant
)

// ClassOf derives a character's class from its id range.
func ClassOf(id CharacterID) CharacterClass {
	switch {
	case id == Commandant:
		return ClassCommandant
	case id >= GuardFirst && id <= GuardLast:
		return ClassGuard
	case id == Dog1 || id == Dog2:
		return ClassDog
	default:
		return ClassPrisoner
	}
}

// IsHostile reports whether a character class will pursue/hassle the hero.
func IsHostile(c CharacterClass) bool {
	return c == ClassGuard || c == ClassDog || c == ClassCommandant
}

// CharacterStruct is one of the 26 persistent records (spec.md §3).
type CharacterStruct struct {
	ID       CharacterID
	OnScreen bool
	Room     uint8
	Pos      coords.Pos8
	Route    Route
}

// Route is the (index, step) pair stored per character slot (spec.md §3).
type Route struct {
	Index   uint8 // 7 bits; top bit elsewhere carries "reverse" at the vischar level
	Reverse bool
	Step    uint8
}

// CharacterDefaults is the fixed table Reset restores every character
// slot from (spec.md §4.1).
var CharacterDefaults = buildCharacterDefaults()

func buildCharacterDefaults() [NumCharacters]CharacterStruct {
	var t [NumCharacters]CharacterStruct

	t[Hero] = CharacterStruct{ID: Hero, Room: 2, Pos: HeroBedPosition, Route: Route{Index: 1}}

	for id := GuardFirst; id <= GuardLast; id++ {
		t[id] = CharacterStruct{ID: id, Room: Outdoors, Pos: coords.Pos8{U: 40 + uint8(id)*4, V: 40, W: 0}, Route: Route{Index: 2}}
	}
	prisonerSpots := [...]coords.Pos8{
		{U: 20, V: 20, W: 0},
		{U: 20, V: 60, W: 0},
		{U: 70, V: 20, W: 0},
		{U: 70, V: 60, W: 0},
	}
	for id := PrisonerFirst; id <= PrisonerLast; id++ {
		t[id] = CharacterStruct{ID: id, Room: 2, Pos: prisonerSpots[id-PrisonerFirst], Route: Route{Index: 4}}
	}
	t[Dog1] = CharacterStruct{ID: Dog1, Room: Outdoors, Pos: coords.Pos8{U: 50, V: 50, W: 0}, Route: Route{Index: 4, Step: 0}}
	t[Dog2] = CharacterStruct{ID: Dog2, Room: Outdoors, Pos: coords.Pos8{U: 70, V: 50, W: 0}, Route: Route{Index: 4, Step: 24}}
	t[Commandant] = CharacterStruct{ID: Commandant, Room: Outdoors, Pos: coords.Pos8{U: 100, V: 60, W: 0}, Route: Route{Index: 2}}
	hutSpots := [...]coords.Pos8{
		{U: 40, V: 24, W: 0},
		{U: 40, V: 40, W: 0},
		{U: 40, V: 56, W: 0},
		{U: 24, V: 24, W: 0},
		{U: 24, V: 40, W: 0},
	}
	for id := HutPrisonerFirst; id <= HutPrisonerLast; id++ {
		t[id] = CharacterStruct{ID: id, Room: 3, Pos: hutSpots[id-HutPrisonerFirst], Route: Route{Index: 1}}
	}

	return t
}

// MovableItemDefault is one of the 3 movable items' reset state
// (spec.md §3).
type MovableItemDefault struct {
	ID         CharacterID
	Pos        coords.Pos16
	SpriteIdx  uint8
}

var MovableItemDefaults = [3]MovableItemDefault{
	{ID: MovableStove, Pos: coords.Pos16{U: 96, V: 96, W: 0}, SpriteIdx: 0},
	{ID: MovableCrate0, Pos: coords.Pos16{U: 120, V: 96, W: 0}, SpriteIdx: 1},
	{ID: MovableCrate1, Pos: coords.Pos16{U: 104, V: 112, W: 0}, SpriteIdx: 1},
}

// CharacterByID looks up a default record, panicking on an out-of-range
// id (spec.md §7).
func CharacterByID(id CharacterID) CharacterStruct {
	if int(id) >= NumCharacters {
		panic(fmt.Sprintf("assets: character id %d out of range", id))
	}
	return CharacterDefaults[id]
}
